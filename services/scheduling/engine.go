// Package scheduling derives bookable time slots for a calendar date from a
// doctor's weekly schedule and the appointments already booked on that date.
// Everything in here is a pure computation: no I/O, no clocks except where a
// caller passes one in, and inputs are never mutated.
package scheduling

import (
	"errors"
	"time"

	"medibook/models"
)

// ErrInvalidSlotDuration reports a non-positive slot duration. This is a
// configuration error, not an empty day: generation refuses to run rather
// than loop forever.
var ErrInvalidSlotDuration = errors.New("slot duration must be a positive number of minutes")

// MinBookingLead is the minimum lead time before a same-day slot may still be
// booked.
const MinBookingLead = 30 * time.Minute

// AvailableSlots computes the ordered slot sequence for one calendar date.
//
// The weekday resolved from date selects a DaySetting from weekly; a missing,
// disabled, or unresolvable day yields an empty (non-nil) slice, which is a
// valid outcome distinct from an error. Slots cover the half-open interval
// [start, end) at slotDuration-minute steps and are labeled in 12-hour
// "hh:mm AM/PM" form. A slot is occupied when an appointment on the same date
// has an equal start time after 24-hour normalization; cancelled and rejected
// appointments never occupy a slot.
func AvailableSlots(date string, weekly models.WeeklySchedule, slotDuration int, appts []models.Appointment) ([]models.TimeSlot, error) {
	if slotDuration <= 0 {
		return nil, ErrInvalidSlotDuration
	}

	day, ok := weekdayOf(date)
	if !ok {
		return []models.TimeSlot{}, nil
	}
	setting, ok := weekly[day]
	if !ok || !setting.Enabled {
		return []models.TimeSlot{}, nil
	}

	start, okStart := clockToMinutes(setting.Start)
	end, okEnd := clockToMinutes(setting.End)
	if !okStart || !okEnd || start >= end {
		return []models.TimeSlot{}, nil
	}

	booked := bookedByTime(date, appts)

	slots := make([]models.TimeSlot, 0, (end-start)/slotDuration+1)
	for m := start; m < end; m += slotDuration {
		slot := models.TimeSlot{
			Time:      To12Hour(m),
			Available: true,
		}
		if appt, taken := booked[minutesToClock(m)]; taken {
			slot.Available = false
			slot.OccupantName = appt.PatientName
			slot.AppointmentID = appt.ID
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// bookedByTime indexes the appointments of one date by normalized 24-hour
// start time. A later appointment at the same time wins, matching the
// last-write behavior of the booking flow.
func bookedByTime(date string, appts []models.Appointment) map[string]models.Appointment {
	booked := make(map[string]models.Appointment)
	for _, appt := range appts {
		if appt.Date != date {
			continue
		}
		if appt.Status == models.AppointmentCancelled || appt.Status == models.AppointmentRejected {
			continue
		}
		booked[To24Hour(appt.Time)] = appt
	}
	return booked
}

// FilterPastSlots drops slots that start before now+lead when date is today
// in now's location. Other dates pass through untouched, as do slots whose
// label fails to parse.
func FilterPastSlots(slots []models.TimeSlot, date string, now time.Time, lead time.Duration) []models.TimeSlot {
	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil || day.Year() != now.Year() || day.YearDay() != now.YearDay() {
		return slots
	}

	cutoff := now.Add(lead)
	kept := make([]models.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		t, err := time.ParseInLocation("03:04 PM", slot.Time, now.Location())
		if err != nil {
			kept = append(kept, slot)
			continue
		}
		at := time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
		if at.After(cutoff) {
			kept = append(kept, slot)
		}
	}
	return kept
}
