package ai

import (
	"encoding/json"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantKey string // if non-empty, check this key exists in parsed JSON
		wantErr bool
	}{
		{
			name:    "plain JSON",
			input:   `{"eventType": "conference"}`,
			wantKey: "eventType",
		},
		{
			name:    "markdown code block",
			input:   "```json\n{\"eventType\": \"conference\"}\n```",
			wantKey: "eventType",
		},
		{
			name:    "bare code block",
			input:   "```\n{\"eventType\": \"conference\"}\n```",
			wantKey: "eventType",
		},
		{
			name:    "block with trailing prose",
			input:   "```json\n{\"eventType\": \"wedding\"}\n```\n\nLet me know if you need anything else!",
			wantKey: "eventType",
		},
		{
			name:    "trailing comma",
			input:   "```json\n{\n  \"contactName\": \"John Smith\",\n}\n```",
			wantKey: "contactName",
		},
		{
			name:    "leading prose before bare object",
			input:   "Here are the extracted details: {\"numAttendees\": 50}",
			wantKey: "numAttendees",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "no JSON at all",
			input:   "Sorry, I could not extract any details from that email.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractJSON(tt.input)

			if tt.wantErr {
				if result != "" {
					t.Errorf("expected empty result, got: %s", result)
				}
				return
			}

			if result == "" {
				t.Fatal("expected JSON result, got empty string")
			}

			var parsed map[string]any
			if err := json.Unmarshal([]byte(result), &parsed); err != nil {
				t.Fatalf("result is not valid JSON: %v\nresult: %s", err, result)
			}
			if _, ok := parsed[tt.wantKey]; !ok {
				t.Errorf("expected key %q in parsed JSON", tt.wantKey)
			}
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr bool
	}{
		{
			name:    "plain array",
			input:   `[{"eventDate": "2023-11-26"}, {"eventDate": "2023-11-27"}]`,
			wantLen: 2,
		},
		{
			name:    "fenced array",
			input:   "```json\n[{\"eventDate\": \"2023-11-26\"}]\n```",
			wantLen: 1,
		},
		{
			name:    "fenced array with trailing comma",
			input:   "```json\n[\n  {\"eventDate\": \"2023-11-26\"},\n]\n```",
			wantLen: 1,
		},
		{
			name:    "no array",
			input:   "no structured output here",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractJSONArray(tt.input)

			if tt.wantErr {
				if result != "" {
					t.Errorf("expected empty result, got: %s", result)
				}
				return
			}

			var parsed []map[string]any
			if err := json.Unmarshal([]byte(result), &parsed); err != nil {
				t.Fatalf("result is not valid JSON: %v\nresult: %s", err, result)
			}
			if len(parsed) != tt.wantLen {
				t.Errorf("expected %d elements, got %d", tt.wantLen, len(parsed))
			}
		})
	}
}
