// File: services/doctor/verification.go
package doctor

import (
	"context"
	"fmt"
	"time"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// VerifyDoctor marks a doctor as admin-verified, making the profile visible
// to patients.
func (s *DefaultDoctorService) VerifyDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	return s.setVerification(ctx, id, true, models.VerificationVerified)
}

// RejectDoctor declines verification. The profile stays hidden from patients.
func (s *DefaultDoctorService) RejectDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	return s.setVerification(ctx, id, false, models.VerificationRejected)
}

func (s *DefaultDoctorService) setVerification(ctx context.Context, id string, verified bool, status string) (*models.Doctor, error) {
	update := bson.M{"$set": bson.M{
		"verified":           verified,
		"verificationStatus": status,
		"updatedAt":          time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(ctx, id, update); err != nil {
		return nil, fmt.Errorf("failed to set verification status: %w", err)
	}
	s.dropCachedDoctor(ctx, id)
	return s.Repo.GetByID(ctx, id)
}
