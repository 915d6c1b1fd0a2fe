// File: services/doctor/pending.go
package doctor

import (
	"context"
	"fmt"
	"time"

	"medibook/models"
)

// RequestProfileUpdate stages a profile edit for admin review. While an
// earlier request is still staged the doctor may not submit another, so
// callers see ErrUpdatePending until an admin approves or rejects it.
func (s *DefaultDoctorService) RequestProfileUpdate(ctx context.Context, id string, req models.ProfileUpdateRequest) (*models.Doctor, error) {
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("doctor not found: %w", err)
	}
	if doc.HasPending() {
		return nil, ErrUpdatePending
	}

	fields := updateFields(req)
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}

	if err := s.Repo.SetPendingUpdate(ctx, id, fields, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to stage profile update: %w", err)
	}
	s.dropCachedDoctor(ctx, id)
	return s.Repo.GetByID(ctx, id)
}

// GetPendingUpdate reports whether a profile edit is staged and, if so, the
// staged fields.
func (s *DefaultDoctorService) GetPendingUpdate(ctx context.Context, id string) (*models.PendingUpdateStatus, error) {
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("doctor not found: %w", err)
	}
	if !doc.HasPending() {
		return &models.PendingUpdateStatus{HasPendingUpdate: false}, nil
	}
	at := doc.Pending.RequestedAt
	return &models.PendingUpdateStatus{
		HasPendingUpdate: true,
		PendingData:      doc.Pending.Fields,
		RequestedAt:      &at,
	}, nil
}

// GetProfileRequests lists all doctors with a staged profile edit, for the
// admin review queue.
func (s *DefaultDoctorService) GetProfileRequests(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.GetWithPendingUpdates(ctx)
}

// ApproveProfileUpdate merges the staged fields into the profile and clears
// the staged edit, reopening the gate.
func (s *DefaultDoctorService) ApproveProfileUpdate(ctx context.Context, id string) (*models.Doctor, error) {
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("doctor not found: %w", err)
	}
	if !doc.HasPending() {
		return nil, ErrNoPendingUpdate
	}

	if err := s.Repo.ApplyPendingUpdate(ctx, id, doc.Pending.Fields); err != nil {
		return nil, fmt.Errorf("failed to apply profile update: %w", err)
	}
	s.dropCachedDoctor(ctx, id)
	return s.Repo.GetByID(ctx, id)
}

// RejectProfileUpdate discards the staged edit without touching the profile.
func (s *DefaultDoctorService) RejectProfileUpdate(ctx context.Context, id string) (*models.Doctor, error) {
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("doctor not found: %w", err)
	}
	if !doc.HasPending() {
		return nil, ErrNoPendingUpdate
	}

	if err := s.Repo.ClearPendingUpdate(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to discard profile update: %w", err)
	}
	s.dropCachedDoctor(ctx, id)
	return s.Repo.GetByID(ctx, id)
}

// updateFields flattens a request into the staged-field map, keeping only the
// fields the doctor actually set.
func updateFields(req models.ProfileUpdateRequest) map[string]interface{} {
	fields := make(map[string]interface{})
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Specialty != "" {
		fields["specialty"] = req.Specialty
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}
	if req.Experience > 0 {
		fields["experience"] = req.Experience
	}
	if len(req.ConsultationTypes) > 0 {
		fields["consultationTypes"] = req.ConsultationTypes
	}
	if req.Image != "" {
		fields["image"] = req.Image
	}
	return fields
}
