package resolution

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"venuepilot/models"
	ai "venuepilot/services/intelligence"
	"venuepilot/utils"
)

// alternativeCount is a fixed contract: a rejection always carries
// exactly this many candidate slots.
const alternativeCount = 3

// AlternativeSlotGenerator proposes replacement windows for a
// conflicting request. The primary path asks the text generation
// backend; on any failure it falls back to a deterministic recipe.
//
// Fallback slots are not re-validated against the calendar: the
// same-day and shifted slots may themselves conflict. Callers that
// care must re-run CheckAvailability on a chosen slot.
type AlternativeSlotGenerator struct {
	Generator ai.TextGenerator
	Timeout   time.Duration
}

// Suggest never fails; it returns exactly three alternatives.
func (g *AlternativeSlotGenerator) Suggest(ctx context.Context, req models.BookingRequest, calendar []models.CalendarEvent) []models.AlternativeSlot {
	logger := utils.GetLogger()

	callCtx, cancel := context.WithTimeout(ctx, g.timeout())
	defer cancel()

	reply, err := g.Generator.Generate(callCtx, alternativesPrompt(req, calendar))
	if err != nil {
		logger.Warn("alternative suggestion call failed, using fallback slots",
			zap.Error(&ExternalCallFailure{Stage: "alternatives", Err: err}))
		return g.fallbackSlots(req)
	}

	slots, err := parseSuggestedSlots(reply)
	if err != nil {
		logger.Warn("alternative suggestion returned unusable output, using fallback slots",
			zap.Error(err))
		return g.fallbackSlots(req)
	}

	return slots
}

func (g *AlternativeSlotGenerator) timeout() time.Duration {
	if g.Timeout <= 0 {
		return 30 * time.Second
	}
	return g.Timeout
}

func alternativesPrompt(req models.BookingRequest, calendar []models.CalendarEvent) string {
	var events strings.Builder
	for _, event := range calendar {
		fmt.Fprintf(&events, "- %s: %s to %s - %s\n",
			event.Start.Format(dateLayout),
			event.Start.Format("3:04 PM"),
			event.End.Format("3:04 PM"),
			event.Title,
		)
	}

	return fmt.Sprintf(`I need to suggest alternative time slots for a booking that has conflicts.

Original booking details:
- Date: %s
- Time: %s to %s
- Event type: %s
- Number of attendees: %d

Existing events on the calendar:
%s
Please suggest 3 alternative time slots that avoid conflicts. Consider suggesting slots on the same day at different times, or on nearby dates.

Format the response as a JSON array with objects containing:
[
  {
    "eventDate": "YYYY-MM-DD",
    "startTime": "H:MM AM/PM",
    "endTime": "H:MM AM/PM",
    "reason": "Brief explanation of why this alternative was suggested"
  }
]`,
		req.EventDate, req.StartTime, req.EndTime, req.EventType, req.NumAttendees, events.String())
}

func parseSuggestedSlots(reply string) ([]models.AlternativeSlot, error) {
	raw := ai.ExtractJSONArray(reply)
	if raw == "" {
		return nil, fmt.Errorf("no JSON array in alternatives reply")
	}

	var slots []models.AlternativeSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, fmt.Errorf("decode alternatives reply: %w", err)
	}
	if len(slots) < alternativeCount {
		return nil, fmt.Errorf("expected %d alternatives, got %d", alternativeCount, len(slots))
	}

	slots = slots[:alternativeCount]
	for i, slot := range slots {
		day, err := parseEventDate(slot.EventDate)
		if err != nil {
			return nil, fmt.Errorf("alternative %d: %w", i+1, err)
		}
		if _, err := ParseTimeOfDay(slot.StartTime, day); err != nil {
			return nil, fmt.Errorf("alternative %d: %w", i+1, err)
		}
		if _, err := ParseTimeOfDay(slot.EndTime, day); err != nil {
			return nil, fmt.Errorf("alternative %d: %w", i+1, err)
		}
	}

	return slots, nil
}

// fallbackSlots produces the deterministic recipe: an earlier slot on
// the requested day, then the same window shifted one and two days out.
func (g *AlternativeSlotGenerator) fallbackSlots(req models.BookingRequest) []models.AlternativeSlot {
	base, err := parseEventDate(req.EventDate)
	if err != nil {
		// Unparsable request date; anchor the shifted slots on today.
		base = time.Now()
	}

	return []models.AlternativeSlot{
		{
			EventDate: req.EventDate,
			StartTime: "8:00 AM",
			EndTime:   "10:00 AM",
			Reason:    "Earlier time slot on the same day",
		},
		{
			EventDate: base.AddDate(0, 0, 1).Format(dateLayout),
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Reason:    "Same time slot on the next day",
		},
		{
			EventDate: base.AddDate(0, 0, 2).Format(dateLayout),
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Reason:    "Same time slot two days later",
		},
	}
}
