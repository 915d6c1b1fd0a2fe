package models

import "time"

// Appointment lifecycle states.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentRejected  = "rejected"
	AppointmentCompleted = "completed"
)

// Appointment is a booking between a patient and a doctor. Date is "YYYY-MM-DD";
// Time is kept exactly as submitted, either 24-hour "HH:MM" or 12-hour "hh:mm AM/PM".
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	PatientID       string    `bson:"patientId" json:"patientId"`
	PatientName     string    `bson:"patientName,omitempty" json:"patientName,omitempty"`
	DoctorID        string    `bson:"doctorId" json:"doctorId"`
	DoctorName      string    `bson:"doctorName" json:"doctorName"`
	Date            string    `bson:"date" json:"date"`
	Time            string    `bson:"time" json:"time"`
	Symptoms        string    `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	Type            string    `bson:"type,omitempty" json:"type,omitempty"` // "video" or "in-person"
	Status          string    `bson:"status" json:"status"`
	RejectionReason string    `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateAppointmentRequest is the booking payload submitted by a patient.
type CreateAppointmentRequest struct {
	DoctorID   string `json:"doctorId" binding:"required"`
	DoctorName string `json:"doctorName" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Symptoms   string `json:"symptoms"`
	Type       string `json:"type"`
}

// RescheduleRequest moves an appointment to a new date and time.
type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// CompleteAppointmentRequest carries the consultation outcome a doctor records.
type CompleteAppointmentRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Result      string `json:"result"`
	Notes       string `json:"notes"`
}
