package appointment

import (
	"context"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	recordRepo "medibook/database/repository/record"
	"medibook/models"
	"medibook/services/activity"
	"medibook/services/notification"
	"medibook/services/schedule"

	"github.com/hibiken/asynq"
)

// AppointmentService drives the booking lifecycle from request to completed
// consultation.
type AppointmentService interface {
	Create(ctx context.Context, patientID, patientName string, req models.CreateAppointmentRequest) (*models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListForDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)

	Confirm(ctx context.Context, id string) (*models.Appointment, error)
	Cancel(ctx context.Context, id, cancelledBy string) (*models.Appointment, error)
	Reject(ctx context.Context, id, reason string) (*models.Appointment, error)
	Complete(ctx context.Context, id string, req models.CompleteAppointmentRequest) (*models.Appointment, error)
	Reschedule(ctx context.Context, id string, req models.RescheduleRequest) (*models.Appointment, error)
	Revoke(ctx context.Context, id, patientID string) error
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo          appointmentRepo.AppointmentRepository
	Doctors       doctorRepo.DoctorRepository
	Records       recordRepo.MedicalRecordRepository
	Schedule      schedule.ScheduleService
	Notifications notification.NotificationService
	Activities    activity.ActivityService
	Reminders     *asynq.Client // optional; nil disables reminder scheduling
	ReminderLead  time.Duration
}
