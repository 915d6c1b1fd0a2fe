package doctor

import (
	"context"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"

	"github.com/go-redis/redis/v8"
)

// DoctorService manages doctor profiles, their verification workflow, and the
// staged profile-update gate.
type DoctorService interface {
	// Profiles
	CreateDoctor(ctx context.Context, doc *models.Doctor) (*models.Doctor, error)
	GetDoctorByID(ctx context.Context, id string) (*models.Doctor, error)
	GetDoctorByUserID(ctx context.Context, userID string) (*models.Doctor, error)
	GetAllDoctors(ctx context.Context, verifiedOnly bool) ([]models.Doctor, error)
	GetDoctorsByStatus(ctx context.Context, status string) ([]models.Doctor, error)
	DeleteDoctor(ctx context.Context, id string) error

	// Verification workflow
	VerifyDoctor(ctx context.Context, id string) (*models.Doctor, error)
	RejectDoctor(ctx context.Context, id string) (*models.Doctor, error)

	// Pending-update gate
	RequestProfileUpdate(ctx context.Context, id string, req models.ProfileUpdateRequest) (*models.Doctor, error)
	GetPendingUpdate(ctx context.Context, id string) (*models.PendingUpdateStatus, error)
	GetProfileRequests(ctx context.Context) ([]models.Doctor, error)
	ApproveProfileUpdate(ctx context.Context, id string) (*models.Doctor, error)
	RejectProfileUpdate(ctx context.Context, id string) (*models.Doctor, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo  doctorRepo.DoctorRepository
	Cache *redis.Client // optional; nil disables profile caching
}
