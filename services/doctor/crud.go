// File: services/doctor/crud.go
package doctor

import (
	"context"
	"fmt"
	"time"

	"medibook/models"

	"github.com/google/uuid"
)

// CreateDoctor registers a new doctor profile. New profiles always enter the
// verification queue unverified.
func (s *DefaultDoctorService) CreateDoctor(ctx context.Context, doc *models.Doctor) (*models.Doctor, error) {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	doc.Verified = false
	doc.VerificationStatus = models.VerificationPending
	doc.Pending = nil

	if err := s.Repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return doc, nil
}

func (s *DefaultDoctorService) GetDoctorByID(ctx context.Context, id string) (*models.Doctor, error) {
	if doc := s.cachedDoctor(ctx, id); doc != nil {
		return doc, nil
	}
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("doctor not found: %w", err)
	}
	s.cacheDoctor(ctx, doc)
	return doc, nil
}

func (s *DefaultDoctorService) GetDoctorByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	doc, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("doctor not found for user %s: %w", userID, err)
	}
	return doc, nil
}

func (s *DefaultDoctorService) GetAllDoctors(ctx context.Context, verifiedOnly bool) ([]models.Doctor, error) {
	return s.Repo.GetAll(ctx, verifiedOnly)
}

func (s *DefaultDoctorService) GetDoctorsByStatus(ctx context.Context, status string) ([]models.Doctor, error) {
	return s.Repo.GetByVerificationStatus(ctx, status)
}

func (s *DefaultDoctorService) DeleteDoctor(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete doctor with id %s: %w", id, err)
	}
	s.dropCachedDoctor(ctx, id)
	return nil
}
