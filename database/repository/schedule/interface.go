// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository is the persistence contract for weekly schedules.
type ScheduleRepository interface {
	Upsert(ctx context.Context, schedule *models.Schedule) error
	GetByDoctorID(ctx context.Context, doctorID string) (*models.Schedule, error)
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a ScheduleRepository backed by MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{coll: database.DB().Collection("schedules")}
}
