package resolution

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"venuepilot/models"
	ai "venuepilot/services/intelligence"
	"venuepilot/utils"
)

// ResponseComposer turns a resolution decision into the reply text sent
// back to the requester. The primary path asks the text generation
// backend for polished prose; on failure a deterministic template is
// substituted. The fallback still names the contact, quotes the
// requested window, and for rejections lists every alternative
// verbatim.
type ResponseComposer struct {
	Generator ai.TextGenerator
	Timeout   time.Duration
}

// Compose returns the message and its classification ("acceptance" or
// "rejection"). It never fails.
func (c *ResponseComposer) Compose(ctx context.Context, req models.BookingRequest, availability models.AvailabilityResult, alternatives []models.AlternativeSlot) (string, string) {
	logger := utils.GetLogger()

	classification := models.ClassificationAcceptance
	if !availability.Available {
		classification = models.ClassificationRejection
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	var prompt string
	if availability.Available {
		prompt = acceptancePrompt(req)
	} else {
		prompt = rejectionPrompt(req, availability.Conflicts, alternatives)
	}

	reply, err := c.Generator.Generate(callCtx, prompt)
	if err != nil || strings.TrimSpace(reply) == "" {
		if err == nil {
			err = fmt.Errorf("empty reply")
		}
		logger.Warn("response composition call failed, using template",
			zap.Error(&ExternalCallFailure{Stage: "compose", Err: err}))
		if availability.Available {
			return acceptanceTemplate(req), classification
		}
		return rejectionTemplate(req, alternatives), classification
	}

	return strings.TrimSpace(reply), classification
}

func (c *ResponseComposer) timeout() time.Duration {
	if c.Timeout <= 0 {
		return 30 * time.Second
	}
	return c.Timeout
}

func acceptancePrompt(req models.BookingRequest) string {
	organization := req.Organization
	if organization == "" {
		organization = "Not specified"
	}
	specialRequests := req.SpecialRequests
	if specialRequests == "" {
		specialRequests = "None"
	}

	return fmt.Sprintf(`Generate a professional email response accepting a booking request with the following details:

- Event type: %s
- Date: %s
- Time: %s to %s
- Number of attendees: %d
- Contact name: %s
- Organization: %s

The response should:
1. Confirm the booking details
2. Mention that an invoice will be generated and sent separately
3. Include information about any special requests: %s
4. Provide contact information for any questions
5. Be professional and courteous

Format the response as a plain text email.`,
		req.EventType, req.EventDate, req.StartTime, req.EndTime,
		req.NumAttendees, req.ContactName, organization, specialRequests)
}

func rejectionPrompt(req models.BookingRequest, conflicts []models.CalendarEvent, alternatives []models.AlternativeSlot) string {
	organization := req.Organization
	if organization == "" {
		organization = "Not specified"
	}

	var conflictLines strings.Builder
	for _, event := range conflicts {
		fmt.Fprintf(&conflictLines, "- %s (%s to %s)\n",
			event.Title, event.Start.Format("3:04 PM"), event.End.Format("3:04 PM"))
	}

	var altLines strings.Builder
	for i, alt := range alternatives {
		fmt.Fprintf(&altLines, "%d. %s from %s to %s - %s\n",
			i+1, alt.EventDate, alt.StartTime, alt.EndTime, alt.Reason)
	}

	return fmt.Sprintf(`Generate a professional email response rejecting a booking request due to scheduling conflicts, but offering alternatives.

Original booking details:
- Event type: %s
- Date: %s
- Time: %s to %s
- Number of attendees: %d
- Contact name: %s
- Organization: %s

Conflicting events on the requested day:
%s
Alternative slots available:
%s
The response should:
1. Politely explain that the requested slot is not available
2. Clearly list each alternative with its date, time, and reason
3. Ask if any of the alternatives would work
4. Provide contact information for questions
5. Be professional and courteous

Format the response as a plain text email.`,
		req.EventType, req.EventDate, req.StartTime, req.EndTime,
		req.NumAttendees, req.ContactName, organization,
		conflictLines.String(), altLines.String())
}

func acceptanceTemplate(req models.BookingRequest) string {
	return fmt.Sprintf(`Dear %s,

Thank you for your booking request. We are pleased to confirm your %s on %s from %s to %s.

An invoice will be sent separately.

Best regards,
The Venue Team`,
		req.ContactName, req.EventType, req.EventDate, req.StartTime, req.EndTime)
}

func rejectionTemplate(req models.BookingRequest, alternatives []models.AlternativeSlot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `Dear %s,

Thank you for your booking request for a %s on %s from %s to %s. Unfortunately, the requested time slot is not available.

We can offer the following alternative slots:
`,
		req.ContactName, req.EventType, req.EventDate, req.StartTime, req.EndTime)

	for i, alt := range alternatives {
		fmt.Fprintf(&sb, "%d. %s from %s to %s - %s\n",
			i+1, alt.EventDate, alt.StartTime, alt.EndTime, alt.Reason)
	}

	sb.WriteString(`
Please let us know if any of these alternatives would work for you, or if you'd like to suggest another time.

Best regards,
The Venue Team`)

	return sb.String()
}
