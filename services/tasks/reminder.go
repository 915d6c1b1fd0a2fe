// File: services/tasks/reminder.go
package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"medibook/models"

	"github.com/hibiken/asynq"
)

// TypeAppointmentReminder identifies appointment reminder tasks on the queue.
const TypeAppointmentReminder = "appointment:reminder"

// NewReminderTask builds an asynq task that reminds a user about an upcoming
// appointment. fireAt is when the reminder should be delivered.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode reminder payload: %w", err)
	}
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(3),
		asynq.Timeout(30 * time.Second),
	}
	return asynq.NewTask(TypeAppointmentReminder, data), opts, nil
}
