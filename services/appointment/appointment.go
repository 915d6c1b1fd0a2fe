// File: services/appointment/appointment.go
package appointment

import (
	"context"
	"fmt"
	"time"

	"medibook/models"
	"medibook/services/scheduling"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create books a pending appointment after checking the requested slot is
// offered and free. The doctor is notified and the booking lands in the
// patient's activity feed.
func (s *DefaultAppointmentService) Create(ctx context.Context, patientID, patientName string, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	if err := s.checkSlotFree(ctx, req.DoctorID, req.Date, req.Time, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	appt := &models.Appointment{
		ID:          uuid.New().String(),
		PatientID:   patientID,
		PatientName: patientName,
		DoctorID:    req.DoctorID,
		DoctorName:  req.DoctorName,
		Date:        req.Date,
		Time:        req.Time,
		Symptoms:    req.Symptoms,
		Type:        req.Type,
		Status:      models.AppointmentPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.notifyDoctor(ctx, appt, "New appointment request",
		fmt.Sprintf("%s requested an appointment on %s at %s", patientName, appt.Date, appt.Time))
	s.recordActivity(ctx, patientID, "Appointment requested",
		fmt.Sprintf("Requested %s on %s at %s", appt.DoctorName, appt.Date, appt.Time))

	return appt, nil
}

func (s *DefaultAppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("appointment not found: %w", err)
	}
	return appt, nil
}

func (s *DefaultAppointmentService) ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.Repo.GetByPatientID(ctx, patientID)
}

func (s *DefaultAppointmentService) ListForDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return s.Repo.GetByDoctorID(ctx, doctorID)
}

// checkSlotFree verifies the requested time is one of the doctor's offered
// slots and that no other active appointment holds it. excludeID skips the
// appointment being rescheduled.
func (s *DefaultAppointmentService) checkSlotFree(ctx context.Context, doctorID, date, at, excludeID string) error {
	slots, err := s.Schedule.GetAvailableSlots(ctx, doctorID, date)
	if err != nil {
		return fmt.Errorf("failed to check availability: %w", err)
	}
	want := scheduling.To24Hour(at)
	for _, slot := range slots {
		if scheduling.To24Hour(slot.Time) != want {
			continue
		}
		if !slot.Available && slot.AppointmentID != excludeID {
			return ErrSlotTaken
		}
		return nil
	}
	return ErrSlotUnavailable
}

// notifyDoctor sends an in-app notification to the doctor's user account.
// Failures are logged; a missed notification never fails the booking flow.
func (s *DefaultAppointmentService) notifyDoctor(ctx context.Context, appt *models.Appointment, title, message string) {
	doc, err := s.Doctors.GetByID(ctx, appt.DoctorID)
	if err != nil {
		zap.L().Warn("Failed to resolve doctor for notification",
			zap.String("doctorID", appt.DoctorID), zap.Error(err))
		return
	}
	s.notify(ctx, doc.UserID, appt, title, message)
}

func (s *DefaultAppointmentService) notify(ctx context.Context, userID string, appt *models.Appointment, title, message string) {
	if s.Notifications == nil {
		return
	}
	_, err := s.Notifications.Notify(ctx, &models.Notification{
		UserID:      userID,
		Title:       title,
		Message:     message,
		Type:        "appointment",
		ReferenceID: referenceID(appt.ID),
	})
	if err != nil {
		zap.L().Warn("Failed to send appointment notification",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}

func (s *DefaultAppointmentService) recordActivity(ctx context.Context, userID, title, description string) {
	if s.Activities == nil {
		return
	}
	_, err := s.Activities.Record(ctx, &models.Activity{
		UserID:      userID,
		Type:        "appointment",
		Title:       title,
		Description: description,
		Icon:        "calendar",
		Color:       "#3b82f6",
	})
	if err != nil {
		zap.L().Warn("Failed to record activity", zap.String("userID", userID), zap.Error(err))
	}
}

// referenceID ties notifications to the appointment they concern so they can
// be marked read together when the appointment is acted on.
func referenceID(appointmentID string) string {
	return "appointment:" + appointmentID
}
