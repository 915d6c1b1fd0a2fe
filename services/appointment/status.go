// File: services/appointment/status.go
package appointment

import (
	"context"
	"fmt"
	"time"

	"medibook/models"
	"medibook/services/scheduling"
	"medibook/services/tasks"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Confirm moves a pending appointment to confirmed, notifies the patient, and
// schedules a reminder ahead of the visit.
func (s *DefaultAppointmentService) Confirm(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.AppointmentPending {
		return nil, ErrInvalidTransition
	}

	if err := s.setStatus(ctx, id, models.AppointmentConfirmed, nil); err != nil {
		return nil, err
	}
	appt.Status = models.AppointmentConfirmed

	s.notify(ctx, appt.PatientID, appt, "Appointment confirmed",
		fmt.Sprintf("%s confirmed your appointment on %s at %s", appt.DoctorName, appt.Date, appt.Time))
	s.markDoctorNotificationsRead(ctx, appt)
	s.scheduleReminder(ctx, appt)

	return appt, nil
}

// Cancel lets the doctor call off a pending or confirmed appointment.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, id, cancelledBy string) (*models.Appointment, error) {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.AppointmentPending && appt.Status != models.AppointmentConfirmed {
		return nil, ErrInvalidTransition
	}

	if err := s.setStatus(ctx, id, models.AppointmentCancelled, nil); err != nil {
		return nil, err
	}
	appt.Status = models.AppointmentCancelled

	message := fmt.Sprintf("Your appointment on %s at %s was cancelled", appt.Date, appt.Time)
	if cancelledBy != "" {
		message = fmt.Sprintf("%s by %s", message, cancelledBy)
	}
	s.notify(ctx, appt.PatientID, appt, "Appointment cancelled", message)
	s.markDoctorNotificationsRead(ctx, appt)

	return appt, nil
}

// Reject declines a pending appointment with a reason shown to the patient.
func (s *DefaultAppointmentService) Reject(ctx context.Context, id, reason string) (*models.Appointment, error) {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.AppointmentPending {
		return nil, ErrInvalidTransition
	}

	extra := bson.M{"rejectionReason": reason}
	if err := s.setStatus(ctx, id, models.AppointmentRejected, extra); err != nil {
		return nil, err
	}
	appt.Status = models.AppointmentRejected
	appt.RejectionReason = reason

	message := fmt.Sprintf("%s declined your appointment on %s at %s", appt.DoctorName, appt.Date, appt.Time)
	if reason != "" {
		message = fmt.Sprintf("%s: %s", message, reason)
	}
	s.notify(ctx, appt.PatientID, appt, "Appointment declined", message)
	s.markDoctorNotificationsRead(ctx, appt)

	return appt, nil
}

// Complete closes a confirmed appointment and files the consultation outcome
// as a medical record on the patient's history.
func (s *DefaultAppointmentService) Complete(ctx context.Context, id string, req models.CompleteAppointmentRequest) (*models.Appointment, error) {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.AppointmentConfirmed {
		return nil, ErrInvalidTransition
	}

	if err := s.setStatus(ctx, id, models.AppointmentCompleted, nil); err != nil {
		return nil, err
	}
	appt.Status = models.AppointmentCompleted

	recordType := req.Type
	if recordType == "" {
		recordType = "Consultation"
	}
	record := &models.MedicalRecord{
		ID:          uuid.New().String(),
		PatientID:   appt.PatientID,
		Date:        appt.Date,
		Type:        recordType,
		Doctor:      appt.DoctorName,
		Description: req.Description,
		Result:      req.Result,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
	}
	if err := s.Records.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to file medical record: %w", err)
	}

	s.notify(ctx, appt.PatientID, appt, "Appointment completed",
		fmt.Sprintf("Your visit with %s on %s is complete, the record is in your history", appt.DoctorName, appt.Date))
	s.recordActivity(ctx, appt.PatientID, "Appointment completed",
		fmt.Sprintf("Completed visit with %s on %s", appt.DoctorName, appt.Date))

	return appt, nil
}

// Reschedule moves the appointment to a new free slot and resets it to
// pending so the doctor confirms the new time.
func (s *DefaultAppointmentService) Reschedule(ctx context.Context, id string, req models.RescheduleRequest) (*models.Appointment, error) {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.AppointmentPending && appt.Status != models.AppointmentConfirmed {
		return nil, ErrInvalidTransition
	}

	if err := s.checkSlotFree(ctx, appt.DoctorID, req.Date, req.Time, appt.ID); err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"date":      req.Date,
		"time":      req.Time,
		"status":    models.AppointmentPending,
		"updatedAt": time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(ctx, id, update); err != nil {
		return nil, fmt.Errorf("failed to reschedule appointment: %w", err)
	}
	appt.Date = req.Date
	appt.Time = req.Time
	appt.Status = models.AppointmentPending

	s.notifyDoctor(ctx, appt, "Appointment rescheduled",
		fmt.Sprintf("%s moved their appointment to %s at %s", appt.PatientName, appt.Date, appt.Time))

	return appt, nil
}

// Revoke lets the patient withdraw their own pending or confirmed
// appointment, removing it entirely.
func (s *DefaultAppointmentService) Revoke(ctx context.Context, id, patientID string) error {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appt.PatientID != patientID {
		return ErrNotOwner
	}
	if appt.Status != models.AppointmentPending && appt.Status != models.AppointmentConfirmed {
		return ErrInvalidTransition
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to revoke appointment: %w", err)
	}

	s.notifyDoctor(ctx, appt, "Appointment withdrawn",
		fmt.Sprintf("%s withdrew their appointment on %s at %s", appt.PatientName, appt.Date, appt.Time))
	return nil
}

func (s *DefaultAppointmentService) setStatus(ctx context.Context, id, status string, extra bson.M) error {
	set := bson.M{"status": status, "updatedAt": time.Now()}
	for k, v := range extra {
		set[k] = v
	}
	if err := s.Repo.UpdateWithDocument(ctx, id, bson.M{"$set": set}); err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	return nil
}

// markDoctorNotificationsRead clears the doctor's unread notifications about
// this appointment once it is acted on.
func (s *DefaultAppointmentService) markDoctorNotificationsRead(ctx context.Context, appt *models.Appointment) {
	if s.Notifications == nil {
		return
	}
	doc, err := s.Doctors.GetByID(ctx, appt.DoctorID)
	if err != nil {
		return
	}
	if err := s.Notifications.MarkReadByReference(ctx, doc.UserID, referenceID(appt.ID)); err != nil {
		zap.L().Warn("Failed to mark appointment notifications read",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}

// scheduleReminder enqueues a reminder to fire ahead of the appointment.
// Appointments already inside the lead window get no reminder.
func (s *DefaultAppointmentService) scheduleReminder(ctx context.Context, appt *models.Appointment) {
	if s.Reminders == nil {
		return
	}
	startAt, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+scheduling.To24Hour(appt.Time), time.Local)
	if err != nil {
		zap.L().Warn("Failed to parse appointment time for reminder",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}
	fireAt := startAt.Add(-s.ReminderLead)
	if !fireAt.After(time.Now()) {
		return
	}

	task, opts, err := tasks.NewReminderTask(models.ReminderPayload{
		AppointmentID: appt.ID,
		UserID:        appt.PatientID,
		Title:         "Upcoming appointment",
		Body:          fmt.Sprintf("Your appointment with %s is at %s on %s", appt.DoctorName, appt.Time, appt.Date),
		FireDate:      fireAt.Format(time.RFC3339),
	}, fireAt)
	if err != nil {
		zap.L().Warn("Failed to build reminder task", zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}
	if _, err := s.Reminders.EnqueueContext(ctx, task, opts...); err != nil {
		zap.L().Warn("Failed to enqueue reminder", zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}
