package models

// Response classifications for a resolved booking request.
const (
	ClassificationAcceptance = "acceptance"
	ClassificationRejection  = "rejection"
)

// ResolutionOutcome is the terminal result of one pipeline run. Exactly
// one of Invoice or Alternatives is populated, depending on the
// classification.
type ResolutionOutcome struct {
	Classification string            `json:"classification"` // "acceptance" or "rejection"
	Message        string            `json:"message"`        // Human-readable reply text
	Request        BookingRequest    `json:"request"`        // The structured request that was resolved
	Invoice        *Invoice          `json:"invoice,omitempty"`
	Conflicts      []CalendarEvent   `json:"conflicts,omitempty"`
	Alternatives   []AlternativeSlot `json:"alternatives,omitempty"`
}
