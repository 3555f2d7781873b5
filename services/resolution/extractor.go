package resolution

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"venuepilot/models"
	ai "venuepilot/services/intelligence"
	"venuepilot/utils"
)

// PlaceholderConfig describes the booking request substituted when
// extraction fails. Values come from configuration so that the
// degraded-mode behavior stays explicit and testable.
type PlaceholderConfig struct {
	EventType    string
	ContactName  string
	ContactEmail string
	LeadDays     int // placeholder event date is this many days out
	StartTime    string
	EndTime      string
	Attendees    int
}

// DefaultPlaceholders returns the stock placeholder values.
func DefaultPlaceholders() PlaceholderConfig {
	return PlaceholderConfig{
		EventType:    "Event",
		ContactName:  "Valued Client",
		ContactEmail: "client@example.com",
		LeadDays:     7,
		StartTime:    "9:00 AM",
		EndTime:      "11:00 AM",
		Attendees:    10,
	}
}

// IntentExtractor turns a raw email body into a structured
// BookingRequest via the text generation backend. On any failure it
// substitutes the configured placeholder request so the rest of the
// pipeline always has something actionable to work with.
type IntentExtractor struct {
	Generator    ai.TextGenerator
	Timeout      time.Duration
	Placeholders PlaceholderConfig
}

const extractionPromptFmt = `Extract the following booking details from this email:
- Event type (e.g., meeting, conference, workshop)
- Event date
- Start time
- End time
- Number of attendees
- Contact name
- Contact email
- Organization name (if mentioned)
- Special requests (if any)

Format the response as a JSON object with these fields:
{
  "eventType": "...",
  "eventDate": "YYYY-MM-DD",
  "startTime": "H:MM AM/PM",
  "endTime": "H:MM AM/PM",
  "numAttendees": number,
  "contactName": "...",
  "contactEmail": "...",
  "organization": "..." (or null if not mentioned),
  "specialRequests": "..." (or null if not mentioned)
}

Email content:
%s`

// Extract never fails: it returns either the extracted request or the
// placeholder request.
func (e *IntentExtractor) Extract(ctx context.Context, emailBody string) models.BookingRequest {
	logger := utils.GetLogger()

	callCtx, cancel := context.WithTimeout(ctx, e.timeout())
	defer cancel()

	reply, err := e.Generator.Generate(callCtx, fmt.Sprintf(extractionPromptFmt, emailBody))
	if err != nil {
		logger.Warn("intent extraction call failed, using placeholder request",
			zap.Error(&ExternalCallFailure{Stage: "extract", Err: err}))
		return e.placeholderRequest()
	}

	req, err := parseExtractedRequest(reply)
	if err != nil {
		logger.Warn("intent extraction returned unusable output, using placeholder request",
			zap.Error(err))
		return e.placeholderRequest()
	}

	return req
}

func (e *IntentExtractor) timeout() time.Duration {
	if e.Timeout <= 0 {
		return 30 * time.Second
	}
	return e.Timeout
}

func (e *IntentExtractor) placeholderRequest() models.BookingRequest {
	p := e.Placeholders
	return models.BookingRequest{
		EventType:    p.EventType,
		EventDate:    time.Now().AddDate(0, 0, p.LeadDays).Format(dateLayout),
		StartTime:    p.StartTime,
		EndTime:      p.EndTime,
		NumAttendees: p.Attendees,
		ContactName:  p.ContactName,
		ContactEmail: p.ContactEmail,
	}
}

// parseExtractedRequest decodes the model reply and checks that every
// downstream stage can actually consume it: the date and both clock
// times must parse, the window must run forwards, and the attendee
// count must be positive. A reply failing any of these is treated the
// same as a failed call.
func parseExtractedRequest(reply string) (models.BookingRequest, error) {
	raw := ai.ExtractJSON(reply)
	if raw == "" {
		return models.BookingRequest{}, fmt.Errorf("no JSON object in extraction reply")
	}

	var req models.BookingRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return models.BookingRequest{}, fmt.Errorf("decode extraction reply: %w", err)
	}

	day, err := parseEventDate(req.EventDate)
	if err != nil {
		return models.BookingRequest{}, fmt.Errorf("extracted request: %w", err)
	}
	start, err := ParseTimeOfDay(req.StartTime, day)
	if err != nil {
		return models.BookingRequest{}, fmt.Errorf("extracted request: %w", err)
	}
	end, err := ParseTimeOfDay(req.EndTime, day)
	if err != nil {
		return models.BookingRequest{}, fmt.Errorf("extracted request: %w", err)
	}
	if !start.Before(end) {
		return models.BookingRequest{}, fmt.Errorf("extracted request: start %q is not before end %q", req.StartTime, req.EndTime)
	}
	if req.NumAttendees <= 0 {
		return models.BookingRequest{}, fmt.Errorf("extracted request: attendee count %d is not positive", req.NumAttendees)
	}
	if req.ContactName == "" || req.ContactEmail == "" {
		return models.BookingRequest{}, fmt.Errorf("extracted request: missing contact details")
	}
	if req.EventType == "" {
		return models.BookingRequest{}, fmt.Errorf("extracted request: missing event type")
	}

	return req, nil
}
