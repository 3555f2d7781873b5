package resolution

import (
	"context"
	"time"

	"go.uber.org/zap"

	"venuepilot/models"
	"venuepilot/utils"
)

// Resolve runs the full pipeline for one booking request. Pricing is
// validated up front: an invalid configuration is the only condition
// that aborts a resolution. Everything else degrades to fallbacks so
// the caller always gets a human-readable outcome.
func (s *DefaultResolutionService) Resolve(ctx context.Context, emailBody string, calendar []models.CalendarEvent, pricing models.PricingConfig) (*models.ResolutionOutcome, error) {
	logger := utils.GetLogger()

	if err := ValidatePricing(pricing); err != nil {
		return nil, err
	}

	req := s.Extractor.Extract(ctx, emailBody)

	availability, err := CheckAvailability(req, calendar)
	if err != nil {
		// The extractor validates its output, so an unparsable window
		// here means the request bypassed extraction. Degrade to the
		// placeholder request rather than refusing the resolution.
		logger.Warn("availability check failed on extracted request, substituting placeholder",
			zap.Error(err))
		req = s.Extractor.placeholderRequest()
		if availability, err = CheckAvailability(req, calendar); err != nil {
			// The placeholder window comes from operator settings, so
			// an unparsable one is a configuration problem, not a
			// request problem.
			return nil, newConfigurationError("placeholderWindow", err.Error())
		}
	}

	if !availability.Available {
		alternatives := s.Alternatives.Suggest(ctx, req, calendar)
		message, classification := s.Composer.Compose(ctx, req, availability, alternatives)

		logger.Info("booking request rejected",
			zap.String("eventDate", req.EventDate),
			zap.Int("conflicts", len(availability.Conflicts)),
		)
		return &models.ResolutionOutcome{
			Classification: classification,
			Message:        message,
			Request:        req,
			Conflicts:      availability.Conflicts,
			Alternatives:   alternatives,
		}, nil
	}

	invoice, err := CalculateInvoice(req, pricing, time.Now())
	if err != nil {
		return nil, err
	}
	message, classification := s.Composer.Compose(ctx, req, availability, nil)

	logger.Info("booking request accepted",
		zap.String("eventDate", req.EventDate),
		zap.String("invoice", invoice.InvoiceNumber),
	)
	return &models.ResolutionOutcome{
		Classification: classification,
		Message:        message,
		Request:        req,
		Invoice:        invoice,
	}, nil
}
