package resolution

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	day := time.Date(2023, 11, 25, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		wantHour int
		wantMin  int
		wantErr  bool
	}{
		{name: "morning", input: "9:00 AM", wantHour: 9, wantMin: 0},
		{name: "afternoon", input: "5:00 PM", wantHour: 17, wantMin: 0},
		{name: "midnight", input: "12:00 AM", wantHour: 0, wantMin: 0},
		{name: "noon", input: "12:00 PM", wantHour: 12, wantMin: 0},
		{name: "half past noon", input: "12:30 PM", wantHour: 12, wantMin: 30},
		{name: "late evening", input: "11:59 PM", wantHour: 23, wantMin: 59},
		{name: "lowercase period", input: "9:00 am", wantHour: 9, wantMin: 0},
		{name: "minutes kept", input: "2:45 PM", wantHour: 14, wantMin: 45},
		{name: "missing period", input: "9:00", wantErr: true},
		{name: "missing colon", input: "900 AM", wantErr: true},
		{name: "bad period", input: "9:00 XM", wantErr: true},
		{name: "non-numeric hour", input: "ab:00 PM", wantErr: true},
		{name: "non-numeric minute", input: "9:xx AM", wantErr: true},
		{name: "hour out of range", input: "13:00 PM", wantErr: true},
		{name: "hour zero", input: "0:30 AM", wantErr: true},
		{name: "minute out of range", input: "9:60 AM", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "trailing words", input: "9:00 AM sharp", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input, day)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTimeOfDay(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimeOfDay(%q) error: %v", tt.input, err)
			}
			if got.Hour() != tt.wantHour || got.Minute() != tt.wantMin {
				t.Errorf("ParseTimeOfDay(%q) = %02d:%02d, want %02d:%02d",
					tt.input, got.Hour(), got.Minute(), tt.wantHour, tt.wantMin)
			}
			if got.Year() != day.Year() || got.Month() != day.Month() || got.Day() != day.Day() {
				t.Errorf("ParseTimeOfDay(%q) landed on %v, want date of %v", tt.input, got, day)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2023, 11, 25, hour, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{name: "disjoint", aStart: at(9), aEnd: at(11), bStart: at(13), bEnd: at(15), want: false},
		{name: "partial overlap", aStart: at(9), aEnd: at(14), bStart: at(13), bEnd: at(16), want: true},
		{name: "containment", aStart: at(9), aEnd: at(17), bStart: at(13), bEnd: at(16), want: true},
		{name: "identical", aStart: at(9), aEnd: at(11), bStart: at(9), bEnd: at(11), want: true},
		{name: "touching boundaries", aStart: at(9), aEnd: at(11), bStart: at(11), bEnd: at(13), want: false},
		{name: "zero-length inside non-empty", aStart: at(9), aEnd: at(11), bStart: at(10), bEnd: at(10), want: false},
		{name: "zero-length at start boundary", aStart: at(9), aEnd: at(11), bStart: at(9), bEnd: at(9), want: false},
		{name: "zero-length both", aStart: at(10), aEnd: at(10), bStart: at(10), bEnd: at(10), want: false},
		{name: "inverted interval", aStart: at(11), aEnd: at(9), bStart: at(9), bEnd: at(17), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			if got != tt.want {
				t.Errorf("Overlaps(%v, %v, %v, %v) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
			// Overlap is symmetric in the two intervals.
			if mirrored := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); mirrored != got {
				t.Errorf("Overlaps is not symmetric: %v vs %v", got, mirrored)
			}
		})
	}
}
