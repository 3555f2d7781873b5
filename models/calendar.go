package models

import "time"

// CalendarEvent is an existing commitment on the venue calendar. The
// caller supplies a fresh snapshot per resolution; the pipeline never
// mutates or persists it.
type CalendarEvent struct {
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AvailabilityResult is the outcome of checking a requested window
// against the calendar snapshot. Conflicts holds every overlapping
// event, not just the first.
type AvailabilityResult struct {
	Available bool            `json:"available"`
	Conflicts []CalendarEvent `json:"conflicts,omitempty"`
}
