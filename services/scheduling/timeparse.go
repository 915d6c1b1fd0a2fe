package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// To24Hour normalizes an appointment time string to 24-hour "HH:MM" form.
// Strings carrying an AM/PM marker (any case) are parsed as 12-hour time:
// 12 AM maps to 00, 1-11 AM stay, 12 PM stays, 1-11 PM gain 12. Strings
// without a marker are assumed 24-hour and returned as-is (trimmed).
// Malformed strings normalize to "00:00" so a broken time degrades to a
// non-match instead of failing slot generation for the whole day.
func To24Hour(s string) string {
	s = strings.TrimSpace(s)
	upper := strings.ToUpper(s)

	isPM := strings.Contains(upper, "PM")
	isAM := strings.Contains(upper, "AM")
	if !isPM && !isAM {
		return s
	}

	clock := strings.ReplaceAll(upper, "AM", "")
	clock = strings.ReplaceAll(clock, "PM", "")
	hour, min, ok := splitClock(strings.TrimSpace(clock))
	if !ok || hour < 1 || hour > 12 || min < 0 || min > 59 {
		return "00:00"
	}

	if isPM && hour != 12 {
		hour += 12
	}
	if isAM && hour == 12 {
		hour = 0
	}
	return fmt.Sprintf("%02d:%02d", hour, min)
}

// To12Hour renders minutes-from-midnight as "hh:mm AM/PM" with zero-padded
// hour and minute.
func To12Hour(minutes int) string {
	hour := minutes / 60
	min := minutes % 60

	marker := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		marker = "PM"
	case hour > 12:
		display = hour - 12
		marker = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", display, min, marker)
}

// clockToMinutes parses a 24-hour "HH:MM" string into minutes from midnight.
func clockToMinutes(clock string) (int, bool) {
	hour, min, ok := splitClock(strings.TrimSpace(clock))
	if !ok || hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, false
	}
	return hour*60 + min, true
}

func minutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func splitClock(clock string) (hour, min int, ok bool) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	min, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return hour, min, true
}

// weekdayOf resolves a "YYYY-MM-DD" date to its lowercase English weekday
// name. Unparseable dates report ok=false and are treated as disabled days.
func weekdayOf(date string) (string, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", false
	}
	return strings.ToLower(t.Weekday().String()), true
}
