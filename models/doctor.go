package models

import "time"

// Verification workflow states for a doctor profile.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// Doctor represents a doctor profile visible to patients once verified.
type Doctor struct {
	ID                 string         `bson:"id" json:"id"`
	UserID             string         `bson:"userId" json:"userId"`
	Name               string         `bson:"name" json:"name"`
	Specialty          string         `bson:"specialty" json:"specialty"`
	Location           string         `bson:"location" json:"location"`
	Availability       []string       `bson:"availability,omitempty" json:"availability"`
	Rating             float64        `bson:"rating" json:"rating"`
	RatingCount        int            `bson:"ratingCount" json:"reviewCount"`
	Experience         int            `bson:"experience,omitempty" json:"experience"`
	ConsultationTypes  []string       `bson:"consultationTypes,omitempty" json:"consultationTypes"`
	Image              string         `bson:"image,omitempty" json:"image"`
	Verified           bool           `bson:"verified" json:"verified"`
	VerificationStatus string         `bson:"verificationStatus" json:"verificationStatus"`
	Pending            *PendingUpdate `bson:"pendingUpdate,omitempty" json:"pendingProfileUpdate,omitempty"`
	Email              string         `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt          time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// PendingUpdate is a staged profile edit awaiting admin review.
// A nil *PendingUpdate on Doctor means no update is staged; while one is
// present the doctor may not submit another.
type PendingUpdate struct {
	Fields      map[string]interface{} `bson:"fields" json:"fields"`
	RequestedAt time.Time              `bson:"requestedAt" json:"requestedAt"`
}

// HasPending reports whether a profile edit is staged for review.
func (d *Doctor) HasPending() bool {
	return d.Pending != nil
}

// ProfileUpdateRequest is the payload a doctor submits to stage a profile edit.
type ProfileUpdateRequest struct {
	Name              string   `json:"name,omitempty"`
	Specialty         string   `json:"specialty,omitempty"`
	Location          string   `json:"location,omitempty"`
	Experience        int      `json:"experience,omitempty"`
	ConsultationTypes []string `json:"consultationTypes,omitempty"`
	Image             string   `json:"image,omitempty"`
}

// PendingUpdateStatus is the GetPendingUpdate response contract.
type PendingUpdateStatus struct {
	HasPendingUpdate bool                   `json:"hasPendingUpdate"`
	PendingData      map[string]interface{} `json:"pendingData,omitempty"`
	RequestedAt      *time.Time             `json:"requestedAt,omitempty"`
}
