package models

// TimeSlot is one bookable interval derived from a doctor's weekly schedule.
// It is recomputed on every query and never persisted.
type TimeSlot struct {
	Time          string `json:"time"` // "hh:mm AM/PM", zero-padded
	Available     bool   `json:"available"`
	OccupantName  string `json:"occupantName,omitempty"`
	AppointmentID string `json:"appointmentId,omitempty"`
}
