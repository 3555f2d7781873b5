package resolution

import (
	"context"

	"venuepilot/models"
)

// ResolutionService resolves free-text booking requests end to end:
// extraction, availability, alternatives, response composition, and
// invoicing. Each call is an independent, stateless unit of work; the
// calendar snapshot and pricing configuration are read-only inputs, so
// resolutions may run concurrently without coordination.
type ResolutionService interface {
	Resolve(ctx context.Context, emailBody string, calendar []models.CalendarEvent, pricing models.PricingConfig) (*models.ResolutionOutcome, error)
}

// DefaultResolutionService implements ResolutionService.
type DefaultResolutionService struct {
	Extractor    *IntentExtractor
	Alternatives *AlternativeSlotGenerator
	Composer     *ResponseComposer
}
