package resolution

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"venuepilot/models"
)

// ValidatePricing checks a pricing configuration before any invoice
// math runs. Returns a ConfigurationError describing the first invalid
// field.
func ValidatePricing(pricing models.PricingConfig) error {
	if pricing.HourlyRate <= 0 {
		return newConfigurationError("hourlyRate", "must be positive")
	}
	if pricing.AttendeeFee < 0 {
		return newConfigurationError("attendeeFee", "must not be negative")
	}
	if pricing.TaxRate < 0 || pricing.TaxRate >= 1 {
		return newConfigurationError("taxRate", "must be in [0, 1)")
	}
	return nil
}

// CalculateInvoice derives a priced invoice from a confirmed booking
// request. Billable hours round up: a partial hour counts as a full
// hour. All monetary values stay unrounded; two-decimal rounding is a
// presentation concern.
func CalculateInvoice(req models.BookingRequest, pricing models.PricingConfig, now time.Time) (*models.Invoice, error) {
	if err := ValidatePricing(pricing); err != nil {
		return nil, err
	}

	day, err := parseEventDate(req.EventDate)
	if err != nil {
		return nil, err
	}
	start, err := ParseTimeOfDay(req.StartTime, day)
	if err != nil {
		return nil, err
	}
	end, err := ParseTimeOfDay(req.EndTime, day)
	if err != nil {
		return nil, err
	}

	durationHours := int(math.Ceil(end.Sub(start).Hours()))
	if durationHours < 1 {
		durationHours = 1
	}

	venueCost := pricing.HourlyRate * float64(durationHours)
	attendeeCost := pricing.AttendeeFee * float64(req.NumAttendees)
	subtotal := venueCost + attendeeCost
	tax := subtotal * pricing.TaxRate
	total := subtotal + tax

	return &models.Invoice{
		InvoiceNumber: newInvoiceNumber(now),
		InvoiceDate:   now,
		DueDate:       now.AddDate(0, 0, 30),
		ClientName:    req.ContactName,
		ClientEmail:   req.ContactEmail,
		DurationHours: durationHours,
		Items: []models.InvoiceLineItem{
			{
				Description: fmt.Sprintf("Venue Rental (%d hours at $%.2f/hour)", durationHours, pricing.HourlyRate),
				Amount:      venueCost,
			},
			{
				Description: fmt.Sprintf("Attendee Fee (%d attendees at $%.2f/person)", req.NumAttendees, pricing.AttendeeFee),
				Amount:      attendeeCost,
			},
		},
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}, nil
}

// newInvoiceNumber generates identifiers like "INV-20231125-3F2A9C01".
func newInvoiceNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("INV-%s-%s", now.Format("20060102"), suffix)
}
