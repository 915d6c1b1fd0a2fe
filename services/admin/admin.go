// File: services/admin/admin.go
package admin

import (
	"context"
	"fmt"

	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/doctor"

	"go.mongodb.org/mongo-driver/bson"
)

// AdminService backs the admin dashboard: platform stats, the doctor
// verification queue, and the profile-update review queue.
type AdminService interface {
	Stats(ctx context.Context) (*models.AdminStats, error)
	DoctorsByStatus(ctx context.Context, status string) ([]models.Doctor, error)
	VerifyDoctor(ctx context.Context, id string) (*models.Doctor, error)
	RejectDoctor(ctx context.Context, id string) (*models.Doctor, error)
	ProfileRequests(ctx context.Context) ([]models.Doctor, error)
	ApproveProfileUpdate(ctx context.Context, id string) (*models.Doctor, error)
	RejectProfileUpdate(ctx context.Context, id string) (*models.Doctor, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Doctors  doctor.DoctorService
	DoctorDB doctorRepo.DoctorRepository
	ApptDB   appointmentRepo.AppointmentRepository
}

func (s *DefaultAdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	stats := &models.AdminStats{}

	var err error
	if stats.TotalDoctors, err = s.DoctorDB.Count(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("failed to count doctors: %w", err)
	}
	if stats.VerifiedDoctors, err = s.DoctorDB.Count(ctx, bson.M{"verified": true}); err != nil {
		return nil, fmt.Errorf("failed to count verified doctors: %w", err)
	}
	if stats.PendingVerifications, err = s.DoctorDB.Count(ctx, bson.M{"verificationStatus": models.VerificationPending}); err != nil {
		return nil, fmt.Errorf("failed to count pending verifications: %w", err)
	}
	if stats.PendingUpdates, err = s.DoctorDB.Count(ctx, bson.M{"pendingUpdate": bson.M{"$exists": true, "$ne": nil}}); err != nil {
		return nil, fmt.Errorf("failed to count pending updates: %w", err)
	}
	if stats.TotalAppointments, err = s.ApptDB.Count(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}
	if stats.PendingAppointments, err = s.ApptDB.Count(ctx, bson.M{"status": models.AppointmentPending}); err != nil {
		return nil, fmt.Errorf("failed to count pending appointments: %w", err)
	}
	return stats, nil
}

func (s *DefaultAdminService) DoctorsByStatus(ctx context.Context, status string) ([]models.Doctor, error) {
	return s.Doctors.GetDoctorsByStatus(ctx, status)
}

func (s *DefaultAdminService) VerifyDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	return s.Doctors.VerifyDoctor(ctx, id)
}

func (s *DefaultAdminService) RejectDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	return s.Doctors.RejectDoctor(ctx, id)
}

func (s *DefaultAdminService) ProfileRequests(ctx context.Context) ([]models.Doctor, error) {
	return s.Doctors.GetProfileRequests(ctx)
}

func (s *DefaultAdminService) ApproveProfileUpdate(ctx context.Context, id string) (*models.Doctor, error) {
	return s.Doctors.ApproveProfileUpdate(ctx, id)
}

func (s *DefaultAdminService) RejectProfileUpdate(ctx context.Context, id string) (*models.Doctor, error) {
	return s.Doctors.RejectProfileUpdate(ctx, id)
}
