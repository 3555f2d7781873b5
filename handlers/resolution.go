package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"venuepilot/config"
	"venuepilot/models"
	"venuepilot/services/resolution"
	"venuepilot/utils"
)

// ResolutionHandler exposes the booking resolution pipeline over HTTP.
type ResolutionHandler struct {
	Service resolution.ResolutionService
	Logger  *zap.Logger
}

func NewResolutionHandler(svc resolution.ResolutionService, logger *zap.Logger) *ResolutionHandler {
	return &ResolutionHandler{Service: svc, Logger: logger}
}

// ResolveBookingHandler runs one resolution. The caller supplies the
// raw email body and a calendar snapshot; pricing is optional and
// defaults to the configured rates.
func (h *ResolutionHandler) ResolveBookingHandler(c *gin.Context) {
	var input struct {
		EmailBody string                 `json:"emailBody" binding:"required"`
		Calendar  []models.CalendarEvent `json:"calendar"`
		Pricing   *models.PricingConfig  `json:"pricing"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	pricing := models.PricingConfig{
		HourlyRate:  config.AppConfig.HourlyRate,
		AttendeeFee: config.AppConfig.AttendeeFee,
		TaxRate:     config.AppConfig.TaxRate,
	}
	if input.Pricing != nil {
		pricing = *input.Pricing
	}

	outcome, err := h.Service.Resolve(c.Request.Context(), input.EmailBody, input.Calendar, pricing)
	if err != nil {
		var cfgErr *resolution.ConfigurationError
		if errors.As(err, &cfgErr) {
			utils.JSONError(c, http.StatusUnprocessableEntity, "invalid pricing configuration", cfgErr.Error())
			return
		}
		h.Logger.Error("resolution failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve booking request", err.Error())
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// CheckAvailabilityHandler answers the availability question alone,
// without running the full pipeline.
func (h *ResolutionHandler) CheckAvailabilityHandler(c *gin.Context) {
	var input struct {
		Request  models.BookingRequest  `json:"request" binding:"required"`
		Calendar []models.CalendarEvent `json:"calendar"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := resolution.CheckAvailability(input.Request, input.Calendar)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}
