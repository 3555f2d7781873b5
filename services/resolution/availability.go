package resolution

import (
	"venuepilot/models"
)

// CheckAvailability decides whether the requested window is free on the
// supplied calendar snapshot. Only events starting on the request's
// calendar day are considered; an event conflicts when its interval
// overlaps the requested one. Every conflicting event is reported, not
// just the first. Pure and deterministic: no I/O, no mutation.
func CheckAvailability(req models.BookingRequest, calendar []models.CalendarEvent) (models.AvailabilityResult, error) {
	day, err := parseEventDate(req.EventDate)
	if err != nil {
		return models.AvailabilityResult{}, err
	}

	reqStart, err := ParseTimeOfDay(req.StartTime, day)
	if err != nil {
		return models.AvailabilityResult{}, err
	}
	reqEnd, err := ParseTimeOfDay(req.EndTime, day)
	if err != nil {
		return models.AvailabilityResult{}, err
	}

	var conflicts []models.CalendarEvent
	for _, event := range calendar {
		if !sameDay(event.Start, reqStart) {
			continue
		}
		if Overlaps(reqStart, reqEnd, event.Start, event.End) {
			conflicts = append(conflicts, event)
		}
	}

	return models.AvailabilityResult{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}
