package models

// BookingRequest is the structured form of a free-text venue booking ask.
// It is produced once per resolution and never mutated afterwards.
type BookingRequest struct {
	EventType       string `json:"eventType"`                 // Category, e.g. "conference", "wedding"
	EventDate       string `json:"eventDate"`                 // Calendar date in "YYYY-MM-DD" format
	StartTime       string `json:"startTime"`                 // Clock time, e.g. "9:00 AM"
	EndTime         string `json:"endTime"`                   // Clock time, e.g. "5:00 PM"
	NumAttendees    int    `json:"numAttendees"`              // Number of people attending
	ContactName     string `json:"contactName"`               // Person making the booking
	ContactEmail    string `json:"contactEmail"`              // Their email address
	Organization    string `json:"organization,omitempty"`    // Optional organization name
	SpecialRequests string `json:"specialRequests,omitempty"` // Optional free-text requirements
}
