package models

import "time"

// Weekdays lists the lowercase English weekday names used as WeeklySchedule keys,
// in calendar order starting from Monday.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// DaySetting configures one recurring weekday of a doctor's schedule.
// Start and End are 24-hour "HH:MM" strings; Start < End when Enabled.
type DaySetting struct {
	Enabled bool   `bson:"enabled" json:"enabled"`
	Start   string `bson:"start" json:"start"`
	End     string `bson:"end" json:"end"`
}

// WeeklySchedule maps lowercase weekday names to their settings.
// Days absent from the map are treated as disabled.
type WeeklySchedule map[string]DaySetting

// Schedule is a doctor's recurring availability configuration.
type Schedule struct {
	ID           string         `bson:"id" json:"id"`
	DoctorID     string         `bson:"doctorId" json:"doctorId"`
	Weekly       WeeklySchedule `bson:"weeklySchedule" json:"weeklySchedule"`
	BlockedDates []string       `bson:"blockedDates" json:"blockedDates"`
	SlotDuration int            `bson:"slotDuration" json:"slotDuration"` // minutes
	UpdatedAt    time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// SetScheduleRequest defines the payload for saving a weekly schedule.
type SetScheduleRequest struct {
	Weekly       WeeklySchedule `json:"weeklySchedule" binding:"required"`
	BlockedDates []string       `json:"blockedDates"`
	SlotDuration int            `json:"slotDuration" binding:"required"`
}
