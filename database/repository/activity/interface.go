// File: database/repository/activity/interface.go
package activityRepo

import (
	"context"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ActivityRepository is the persistence contract for activity feed entries.
type ActivityRepository interface {
	Create(ctx context.Context, a *models.Activity) error
	GetRecentByUserID(ctx context.Context, userID string, limit int64) ([]models.Activity, error)
}

type mongoActivityRepo struct {
	coll *mongo.Collection
}

// NewMongoActivityRepo constructs an ActivityRepository backed by MongoDB.
func NewMongoActivityRepo() ActivityRepository {
	return &mongoActivityRepo{coll: database.DB().Collection("activities")}
}
