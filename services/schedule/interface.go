package schedule

import (
	"context"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	scheduleRepo "medibook/database/repository/schedule"
	"medibook/models"

	"github.com/go-redis/redis/v8"
)

// ScheduleService manages a doctor's recurring weekly availability and
// computes bookable slots for concrete dates.
type ScheduleService interface {
	SetSchedule(ctx context.Context, doctorID string, req models.SetScheduleRequest) (*models.Schedule, error)
	GetSchedule(ctx context.Context, doctorID string) (*models.Schedule, error)
	GetAvailableSlots(ctx context.Context, doctorID, date string) ([]models.TimeSlot, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo     scheduleRepo.ScheduleRepository
	ApptRepo appointmentRepo.AppointmentRepository
	Cache    *redis.Client // optional; nil disables schedule caching
	Clock    func() time.Time // optional; nil means time.Now
}
