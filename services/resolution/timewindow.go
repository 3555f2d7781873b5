package resolution

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseTimeOfDay parses a clock string of the form "H:MM AM" or
// "H:MM PM" into an instant on referenceDate. 12 AM maps to hour 0,
// 12 PM stays hour 12, and PM hours 1-11 gain 12.
func ParseTimeOfDay(text string, referenceDate time.Time) (time.Time, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) != 2 {
		return time.Time{}, newParseError(text, "expected \"H:MM AM/PM\"")
	}

	clock, period := fields[0], strings.ToUpper(fields[1])
	if period != "AM" && period != "PM" {
		return time.Time{}, newParseError(text, "period must be AM or PM")
	}

	hourStr, minuteStr, ok := strings.Cut(clock, ":")
	if !ok {
		return time.Time{}, newParseError(text, "missing colon")
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return time.Time{}, newParseError(text, "hour is not numeric")
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return time.Time{}, newParseError(text, "minute is not numeric")
	}
	if hour < 1 || hour > 12 {
		return time.Time{}, newParseError(text, "hour out of range")
	}
	if minute < 0 || minute > 59 {
		return time.Time{}, newParseError(text, "minute out of range")
	}

	if period == "PM" && hour < 12 {
		hour += 12
	} else if period == "AM" && hour == 12 {
		hour = 0
	}

	return time.Date(
		referenceDate.Year(), referenceDate.Month(), referenceDate.Day(),
		hour, minute, 0, 0, referenceDate.Location(),
	), nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Zero-length intervals never overlap
// anything.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	if !aStart.Before(aEnd) || !bStart.Before(bEnd) {
		return false
	}
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// sameDay reports whether two instants fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// parseEventDate parses a "YYYY-MM-DD" calendar date.
func parseEventDate(date string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, newParseError(date, "expected YYYY-MM-DD date")
	}
	return parsed, nil
}
