package models

// AlternativeSlot is a candidate replacement window offered when the
// requested slot conflicts with the calendar.
type AlternativeSlot struct {
	EventDate string `json:"eventDate"` // "YYYY-MM-DD"
	StartTime string `json:"startTime"` // e.g. "8:00 AM"
	EndTime   string `json:"endTime"`   // e.g. "10:00 AM"
	Reason    string `json:"reason"`    // Why this slot was suggested
}
