package models

import "time"

// MedicalRecord is the consultation record created when a doctor completes an
// appointment.
type MedicalRecord struct {
	ID          string    `bson:"id" json:"id"`
	PatientID   string    `bson:"patientId" json:"patientId"`
	Date        string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Type        string    `bson:"type" json:"type"`
	Doctor      string    `bson:"doctor" json:"doctor"`
	Description string    `bson:"description" json:"description"`
	Result      string    `bson:"result" json:"result"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
