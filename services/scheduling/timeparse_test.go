package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9:00 AM", "09:00"},
		{"09:00 AM", "09:00"},
		{"12:00 AM", "00:00"},
		{"12:30 am", "00:30"},
		{"12:00 PM", "12:00"},
		{"1:00 PM", "13:00"},
		{"11:45 pm", "23:45"},
		{"2:05 Pm", "14:05"},
		{" 3:00 PM ", "15:00"},

		// Already 24-hour: passed through as-is.
		{"14:00", "14:00"},
		{"09:30", "09:30"},
		{"9:30", "9:30"},

		// Malformed 12-hour strings degrade to midnight.
		{"13:00 PM", "00:00"},
		{"0:30 AM", "00:00"},
		{"9:61 PM", "00:00"},
		{"noonish PM", "00:00"},
		{"AM", "00:00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, To24Hour(tc.in), "input %q", tc.in)
	}
}

func TestTo12Hour(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "12:00 AM"},
		{30, "12:30 AM"},
		{9 * 60, "09:00 AM"},
		{11*60 + 45, "11:45 AM"},
		{12 * 60, "12:00 PM"},
		{13 * 60, "01:00 PM"},
		{14 * 60, "02:00 PM"},
		{23*60 + 59, "11:59 PM"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, To12Hour(tc.minutes), "minutes %d", tc.minutes)
	}
}

func TestClockToMinutes(t *testing.T) {
	m, ok := clockToMinutes("09:30")
	assert.True(t, ok)
	assert.Equal(t, 570, m)

	for _, bad := range []string{"24:00", "09:60", "junk", "9"} {
		_, ok := clockToMinutes(bad)
		assert.False(t, ok, "input %q", bad)
	}
}

func TestWeekdayOf(t *testing.T) {
	day, ok := weekdayOf("2025-06-02")
	assert.True(t, ok)
	assert.Equal(t, "monday", day)

	day, ok = weekdayOf("2025-06-08")
	assert.True(t, ok)
	assert.Equal(t, "sunday", day)

	_, ok = weekdayOf("06/02/2025")
	assert.False(t, ok)
}
