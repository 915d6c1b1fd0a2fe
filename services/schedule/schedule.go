// File: services/schedule/schedule.go
package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medibook/models"
	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrInvalidDaySetting reports an enabled day whose working window is
// malformed or empty.
var ErrInvalidDaySetting = errors.New("enabled day must have start before end in HH:MM format")

// Doctors without a saved schedule fall back to these working windows,
// half-hour slots from 9 to 11 AM and 2 to 4 PM.
var defaultWindows = []models.DaySetting{
	{Enabled: true, Start: "09:00", End: "11:30"},
	{Enabled: true, Start: "14:00", End: "16:30"},
}

const defaultSlotDuration = 30

// SetSchedule validates and saves a doctor's weekly schedule, replacing any
// previous one.
func (s *DefaultScheduleService) SetSchedule(ctx context.Context, doctorID string, req models.SetScheduleRequest) (*models.Schedule, error) {
	if req.SlotDuration <= 0 {
		return nil, scheduling.ErrInvalidSlotDuration
	}
	for day, setting := range req.Weekly {
		if !setting.Enabled {
			continue
		}
		if err := validateWindow(setting); err != nil {
			return nil, fmt.Errorf("invalid setting for %s: %w", day, err)
		}
	}

	sched := &models.Schedule{
		ID:           uuid.New().String(),
		DoctorID:     doctorID,
		Weekly:       req.Weekly,
		BlockedDates: req.BlockedDates,
		SlotDuration: req.SlotDuration,
		UpdatedAt:    time.Now(),
	}
	if sched.BlockedDates == nil {
		sched.BlockedDates = []string{}
	}
	if err := s.Repo.Upsert(ctx, sched); err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}
	s.dropCachedSchedule(ctx, doctorID)
	return s.Repo.GetByDoctorID(ctx, doctorID)
}

// GetSchedule returns the doctor's saved schedule, or mongo.ErrNoDocuments if
// none has been set.
func (s *DefaultScheduleService) GetSchedule(ctx context.Context, doctorID string) (*models.Schedule, error) {
	if sched := s.cachedSchedule(ctx, doctorID); sched != nil {
		return sched, nil
	}
	sched, err := s.Repo.GetByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	s.cacheSchedule(ctx, sched)
	return sched, nil
}

// GetAvailableSlots computes the bookable slots for a doctor on a date,
// marking slots taken by active appointments and hiding slots too close to
// the current time. Blocked dates yield an empty list; doctors without a
// saved schedule get the default working windows.
func (s *DefaultScheduleService) GetAvailableSlots(ctx context.Context, doctorID, date string) ([]models.TimeSlot, error) {
	appts, err := s.ApptRepo.GetByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	sched, err := s.GetSchedule(ctx, doctorID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("failed to load schedule: %w", err)
		}
		slots, derr := defaultSlots(date, appts)
		if derr != nil {
			return nil, derr
		}
		return scheduling.FilterPastSlots(slots, date, s.now(), scheduling.MinBookingLead), nil
	}

	for _, blocked := range sched.BlockedDates {
		if blocked == date {
			return []models.TimeSlot{}, nil
		}
	}

	slots, err := scheduling.AvailableSlots(date, sched.Weekly, sched.SlotDuration, appts)
	if err != nil {
		return nil, err
	}
	return scheduling.FilterPastSlots(slots, date, s.now(), scheduling.MinBookingLead), nil
}

func (s *DefaultScheduleService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// defaultSlots runs the slot engine over each default working window and
// concatenates the results in order.
func defaultSlots(date string, appts []models.Appointment) ([]models.TimeSlot, error) {
	slots := []models.TimeSlot{}
	for _, window := range defaultWindows {
		weekly := models.WeeklySchedule{}
		for _, day := range models.Weekdays {
			weekly[day] = window
		}
		part, err := scheduling.AvailableSlots(date, weekly, defaultSlotDuration, appts)
		if err != nil {
			return nil, err
		}
		slots = append(slots, part...)
	}
	return slots, nil
}

func validateWindow(setting models.DaySetting) error {
	start, err := time.Parse("15:04", setting.Start)
	if err != nil {
		return ErrInvalidDaySetting
	}
	end, err := time.Parse("15:04", setting.End)
	if err != nil {
		return ErrInvalidDaySetting
	}
	if !start.Before(end) {
		return ErrInvalidDaySetting
	}
	return nil
}

// Cache helpers. Failures are logged and ignored; Mongo stays the source of
// truth.

func (s *DefaultScheduleService) cachedSchedule(ctx context.Context, doctorID string) *models.Schedule {
	if s.Cache == nil {
		return nil
	}
	raw, err := s.Cache.Get(ctx, utils.ScheduleCachePrefix+doctorID).Result()
	if err != nil {
		return nil
	}
	var sched models.Schedule
	if err := json.Unmarshal([]byte(raw), &sched); err != nil {
		zap.L().Warn("Failed to decode cached schedule", zap.String("doctorID", doctorID), zap.Error(err))
		return nil
	}
	return &sched
}

func (s *DefaultScheduleService) cacheSchedule(ctx context.Context, sched *models.Schedule) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(sched)
	if err != nil {
		zap.L().Warn("Failed to encode schedule for cache", zap.String("doctorID", sched.DoctorID), zap.Error(err))
		return
	}
	if err := s.Cache.Set(ctx, utils.ScheduleCachePrefix+sched.DoctorID, raw, utils.ProfileCacheTTL).Err(); err != nil {
		zap.L().Warn("Failed to cache schedule", zap.String("doctorID", sched.DoctorID), zap.Error(err))
	}
}

func (s *DefaultScheduleService) dropCachedSchedule(ctx context.Context, doctorID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.ScheduleCachePrefix+doctorID).Err(); err != nil {
		zap.L().Warn("Failed to drop cached schedule", zap.String("doctorID", doctorID), zap.Error(err))
	}
}
