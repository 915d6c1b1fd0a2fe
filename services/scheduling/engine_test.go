package scheduling

import (
	"testing"
	"time"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-02 is a Monday.
const monday = "2025-06-02"

func mondayOnly(start, end string) models.WeeklySchedule {
	return models.WeeklySchedule{
		"monday": {Enabled: true, Start: start, End: end},
	}
}

func slotTimes(slots []models.TimeSlot) []string {
	times := make([]string, len(slots))
	for i, s := range slots {
		times[i] = s.Time
	}
	return times
}

func TestAvailableSlotsBasicRange(t *testing.T) {
	slots, err := AvailableSlots(monday, mondayOnly("09:00", "10:00"), 30, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 AM", "09:30 AM"}, slotTimes(slots))
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestAvailableSlotsHalfOpenBoundary(t *testing.T) {
	// 09:30 < 09:45 so the second slot is still generated; a slot may only be
	// excluded when its start is at or past the end time.
	slots, err := AvailableSlots(monday, mondayOnly("09:00", "09:45"), 30, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 AM", "09:30 AM"}, slotTimes(slots))
}

func TestAvailableSlotsMinuteOverflow(t *testing.T) {
	slots, err := AvailableSlots(monday, mondayOnly("09:00", "11:00"), 45, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 AM", "09:45 AM", "10:30 AM"}, slotTimes(slots))
}

func TestAvailableSlotsDisabledDay(t *testing.T) {
	weekly := models.WeeklySchedule{
		"monday": {Enabled: false, Start: "09:00", End: "17:00"},
	}
	slots, err := AvailableSlots(monday, weekly, 30, nil)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestAvailableSlotsDayAbsentFromTemplate(t *testing.T) {
	slots, err := AvailableSlots(monday, models.WeeklySchedule{}, 30, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsUnparseableDate(t *testing.T) {
	slots, err := AvailableSlots("not-a-date", mondayOnly("09:00", "17:00"), 30, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsInvalidDuration(t *testing.T) {
	for _, duration := range []int{0, -15} {
		_, err := AvailableSlots(monday, mondayOnly("09:00", "17:00"), duration, nil)
		assert.ErrorIs(t, err, ErrInvalidSlotDuration)
	}
}

func TestAvailableSlotsStartNotBeforeEnd(t *testing.T) {
	for _, tc := range [][2]string{{"17:00", "09:00"}, {"09:00", "09:00"}} {
		slots, err := AvailableSlots(monday, mondayOnly(tc[0], tc[1]), 30, nil)
		require.NoError(t, err)
		assert.Empty(t, slots)
	}
}

func TestAvailableSlotsOccupancyFormatInsensitive(t *testing.T) {
	// The same appointment expressed in 24-hour and 12-hour form must mark the
	// same slot as taken.
	for _, apptTime := range []string{"14:00", "2:00 PM", "02:00 pm"} {
		appts := []models.Appointment{{
			ID:          "appt-1",
			PatientName: "Jane Mwangi",
			Date:        monday,
			Time:        apptTime,
			Status:      models.AppointmentConfirmed,
		}}
		slots, err := AvailableSlots(monday, mondayOnly("14:00", "15:00"), 30, appts)
		require.NoError(t, err)
		require.Len(t, slots, 2)

		assert.Equal(t, "02:00 PM", slots[0].Time)
		assert.False(t, slots[0].Available, "time %q", apptTime)
		assert.Equal(t, "Jane Mwangi", slots[0].OccupantName)
		assert.Equal(t, "appt-1", slots[0].AppointmentID)

		assert.True(t, slots[1].Available)
		assert.Empty(t, slots[1].OccupantName)
	}
}

func TestAvailableSlotsIgnoresOtherDates(t *testing.T) {
	appts := []models.Appointment{{
		ID:     "appt-1",
		Date:   "2025-06-03",
		Time:   "09:00",
		Status: models.AppointmentPending,
	}}
	slots, err := AvailableSlots(monday, mondayOnly("09:00", "10:00"), 30, appts)
	require.NoError(t, err)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestAvailableSlotsIgnoresCancelledAndRejected(t *testing.T) {
	for _, status := range []string{models.AppointmentCancelled, models.AppointmentRejected} {
		appts := []models.Appointment{{
			ID:     "appt-1",
			Date:   monday,
			Time:   "09:00",
			Status: status,
		}}
		slots, err := AvailableSlots(monday, mondayOnly("09:00", "10:00"), 30, appts)
		require.NoError(t, err)
		assert.True(t, slots[0].Available, "status %q", status)
	}
}

func TestAvailableSlotsMalformedTimeDegradesToMidnight(t *testing.T) {
	appts := []models.Appointment{{
		ID:     "appt-1",
		Date:   monday,
		Time:   "half past nine",
		Status: models.AppointmentPending,
	}}

	// Malformed times normalize to 00:00, so a working day starting at
	// midnight sees the slot taken and every other day sees no match.
	slots, err := AvailableSlots(monday, mondayOnly("00:00", "01:00"), 30, appts)
	require.NoError(t, err)
	assert.False(t, slots[0].Available)

	slots, err = AvailableSlots(monday, mondayOnly("09:00", "10:00"), 30, appts)
	require.NoError(t, err)
	assert.True(t, slots[0].Available)
}

func TestAvailableSlotsOrderedAndDeduplicated(t *testing.T) {
	slots, err := AvailableSlots(monday, mondayOnly("08:00", "18:00"), 20, nil)
	require.NoError(t, err)

	seen := make(map[string]bool)
	prev := -1
	for _, s := range slots {
		m, ok := clockToMinutes(To24Hour(s.Time))
		require.True(t, ok)
		assert.Greater(t, m, prev)
		assert.False(t, seen[s.Time])
		seen[s.Time] = true
		prev = m
	}
}

func TestAvailableSlotsDeterministic(t *testing.T) {
	appts := []models.Appointment{
		{ID: "a", Date: monday, Time: "10:00 AM", PatientName: "Amina", Status: models.AppointmentConfirmed},
		{ID: "b", Date: monday, Time: "15:30", PatientName: "Brian", Status: models.AppointmentPending},
	}
	weekly := mondayOnly("09:00", "17:00")

	first, err := AvailableSlots(monday, weekly, 30, appts)
	require.NoError(t, err)
	second, err := AvailableSlots(monday, weekly, 30, appts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAvailableSlotsDoesNotMutateInputs(t *testing.T) {
	appts := []models.Appointment{
		{ID: "a", Date: monday, Time: "9:00 AM", PatientName: "Amina", Status: models.AppointmentConfirmed},
	}
	weekly := mondayOnly("09:00", "10:00")

	_, err := AvailableSlots(monday, weekly, 30, appts)
	require.NoError(t, err)
	assert.Equal(t, "9:00 AM", appts[0].Time)
	assert.Equal(t, models.DaySetting{Enabled: true, Start: "09:00", End: "10:00"}, weekly["monday"])
}

func TestFilterPastSlotsOnlyAppliesToToday(t *testing.T) {
	slots := []models.TimeSlot{
		{Time: "09:00 AM", Available: true},
		{Time: "02:00 PM", Available: true},
	}

	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	// Another date passes through untouched.
	assert.Equal(t, slots, FilterPastSlots(slots, "2025-06-03", now, MinBookingLead))

	// Today at noon: the morning slot is gone, the afternoon slot survives.
	filtered := FilterPastSlots(slots, monday, now, MinBookingLead)
	assert.Equal(t, []string{"02:00 PM"}, slotTimes(filtered))
}

func TestFilterPastSlotsLeadTimeCutoff(t *testing.T) {
	slots := []models.TimeSlot{
		{Time: "12:15 PM", Available: true},
		{Time: "12:45 PM", Available: true},
	}
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	// With a 30-minute lead, 12:15 is too soon and 12:45 is still bookable.
	filtered := FilterPastSlots(slots, monday, now, MinBookingLead)
	assert.Equal(t, []string{"12:45 PM"}, slotTimes(filtered))
}

func TestFilterPastSlotsKeepsUnparseableLabels(t *testing.T) {
	slots := []models.TimeSlot{{Time: "whenever", Available: true}}
	now := time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, slots, FilterPastSlots(slots, monday, now, MinBookingLead))
}
