package models

import "time"

// Notification is an in-app message stored for a user; push delivery via FCM is
// best-effort on top of this record.
type Notification struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	Title       string    `bson:"title" json:"title"`
	Message     string    `bson:"message" json:"message"`
	Type        string    `bson:"type" json:"type"` // "appointment", "success", "warning", "info"
	Link        string    `bson:"link,omitempty" json:"link,omitempty"`
	ReferenceID string    `bson:"referenceId,omitempty" json:"referenceId,omitempty"`
	Read        bool      `bson:"read" json:"read"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
