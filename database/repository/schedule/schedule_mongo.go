// File: database/repository/schedule/schedule_mongo.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Upsert stores the schedule keyed by doctor, replacing any previous one.
func (r *mongoScheduleRepo) Upsert(ctx context.Context, schedule *models.Schedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}
	schedule.UpdatedAt = time.Now()

	filter := bson.M{"doctorId": schedule.DoctorID}
	update := bson.M{"$set": bson.M{
		"doctorId":       schedule.DoctorID,
		"weeklySchedule": schedule.Weekly,
		"blockedDates":   schedule.BlockedDates,
		"slotDuration":   schedule.SlotDuration,
		"updatedAt":      schedule.UpdatedAt,
	}, "$setOnInsert": bson.M{"id": schedule.ID}}

	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert schedule for doctor %s: %w", schedule.DoctorID, err)
	}
	return nil
}

func (r *mongoScheduleRepo) GetByDoctorID(ctx context.Context, doctorID string) (*models.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var schedule models.Schedule
	if err := r.coll.FindOne(ctx, bson.M{"doctorId": doctorID}).Decode(&schedule); err != nil {
		return nil, fmt.Errorf("failed to fetch schedule for doctor %s: %w", doctorID, err)
	}
	return &schedule, nil
}
