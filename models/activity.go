package models

import "time"

// Activity is one entry in a user's recent-activity feed.
type Activity struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	Type        string    `bson:"type" json:"type"` // "appointment", "report", ...
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Icon        string    `bson:"icon" json:"icon"`
	Color       string    `bson:"color" json:"color"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}
