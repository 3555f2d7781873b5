package resolution

import (
	"context"
	"strings"
	"testing"
	"time"

	"venuepilot/models"
)

const suggestedSlotsReply = "```json\n" + `[
  {"eventDate": "2023-11-25", "startTime": "6:00 PM", "endTime": "10:00 PM", "reason": "Evening slot after the launch event"},
  {"eventDate": "2023-11-26", "startTime": "9:00 AM", "endTime": "5:00 PM", "reason": "Same hours on Sunday"},
  {"eventDate": "2023-11-27", "startTime": "9:00 AM", "endTime": "5:00 PM", "reason": "Same hours on Monday"}
]` + "\n```"

func TestSuggestParsesModelReply(t *testing.T) {
	gen := &stubGenerator{reply: suggestedSlotsReply}
	alternatives := &AlternativeSlotGenerator{Generator: gen}

	slots := alternatives.Suggest(context.Background(), conferenceRequest(), nil)

	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(slots))
	}
	if slots[0].EventDate != "2023-11-25" || slots[0].StartTime != "6:00 PM" {
		t.Errorf("first slot = %+v, want the evening slot from the reply", slots[0])
	}
	if slots[2].Reason != "Same hours on Monday" {
		t.Errorf("third slot reason = %q, want %q", slots[2].Reason, "Same hours on Monday")
	}
}

func TestSuggestTruncatesExtraSlots(t *testing.T) {
	reply := `[
  {"eventDate": "2023-11-26", "startTime": "9:00 AM", "endTime": "5:00 PM", "reason": "Sunday"},
  {"eventDate": "2023-11-27", "startTime": "9:00 AM", "endTime": "5:00 PM", "reason": "Monday"},
  {"eventDate": "2023-11-28", "startTime": "9:00 AM", "endTime": "5:00 PM", "reason": "Tuesday"},
  {"eventDate": "2023-11-29", "startTime": "9:00 AM", "endTime": "5:00 PM", "reason": "Wednesday"}
]`
	alternatives := &AlternativeSlotGenerator{Generator: &stubGenerator{reply: reply}}

	slots := alternatives.Suggest(context.Background(), conferenceRequest(), nil)

	if len(slots) != 3 {
		t.Fatalf("got %d slots, want exactly 3", len(slots))
	}
	if slots[2].Reason != "Tuesday" {
		t.Errorf("third slot reason = %q, want %q", slots[2].Reason, "Tuesday")
	}
}

func TestSuggestFallsBackOnFailure(t *testing.T) {
	tests := []struct {
		name string
		gen  *stubGenerator
	}{
		{name: "backend error", gen: &stubGenerator{err: errBackendDown}},
		{name: "prose reply", gen: &stubGenerator{reply: "Sorry, nothing is free that week."}},
		{name: "too few slots", gen: &stubGenerator{reply: `[{"eventDate":"2023-11-26","startTime":"9:00 AM","endTime":"5:00 PM","reason":"Sunday"}]`}},
		{name: "unparsable slot time", gen: &stubGenerator{reply: `[
  {"eventDate":"2023-11-26","startTime":"09h00","endTime":"5:00 PM","reason":"a"},
  {"eventDate":"2023-11-27","startTime":"9:00 AM","endTime":"5:00 PM","reason":"b"},
  {"eventDate":"2023-11-28","startTime":"9:00 AM","endTime":"5:00 PM","reason":"c"}
]`}},
	}

	req := conferenceRequest()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alternatives := &AlternativeSlotGenerator{Generator: tt.gen}

			slots := alternatives.Suggest(context.Background(), req, nil)

			if len(slots) != 3 {
				t.Fatalf("got %d fallback slots, want 3", len(slots))
			}

			want := []models.AlternativeSlot{
				{EventDate: "2023-11-25", StartTime: "8:00 AM", EndTime: "10:00 AM", Reason: "Earlier time slot on the same day"},
				{EventDate: "2023-11-26", StartTime: "9:00 AM", EndTime: "5:00 PM", Reason: "Same time slot on the next day"},
				{EventDate: "2023-11-27", StartTime: "9:00 AM", EndTime: "5:00 PM", Reason: "Same time slot two days later"},
			}
			for i, slot := range slots {
				if slot != want[i] {
					t.Errorf("slot %d = %+v, want %+v", i+1, slot, want[i])
				}
			}
		})
	}
}

func TestSuggestPromptListsCalendar(t *testing.T) {
	gen := &stubGenerator{reply: suggestedSlotsReply}
	alternatives := &AlternativeSlotGenerator{Generator: gen}
	calendar := []models.CalendarEvent{
		{
			Title: "Product Launch",
			Start: time.Date(2023, 11, 25, 13, 0, 0, 0, time.UTC),
			End:   time.Date(2023, 11, 25, 16, 0, 0, 0, time.UTC),
		},
	}

	alternatives.Suggest(context.Background(), conferenceRequest(), calendar)

	prompt := gen.lastPrompt()
	if !strings.Contains(prompt, "Product Launch") {
		t.Errorf("prompt does not mention the booked event:\n%s", prompt)
	}
	if !strings.Contains(prompt, "2023-11-25") {
		t.Errorf("prompt does not mention the requested date:\n%s", prompt)
	}
}
