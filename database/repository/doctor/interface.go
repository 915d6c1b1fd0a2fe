// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"
	"time"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DoctorRepository is the persistence contract for doctor profiles.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetByUserID(ctx context.Context, userID string) (*models.Doctor, error)
	GetAll(ctx context.Context, verifiedOnly bool) ([]models.Doctor, error)
	GetByVerificationStatus(ctx context.Context, status string) ([]models.Doctor, error)
	GetWithPendingUpdates(ctx context.Context) ([]models.Doctor, error)
	UpdateWithDocument(ctx context.Context, id string, update bson.M) error
	SetPendingUpdate(ctx context.Context, id string, fields map[string]interface{}, at time.Time) error
	ApplyPendingUpdate(ctx context.Context, id string, fields map[string]interface{}) error
	ClearPendingUpdate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a DoctorRepository backed by MongoDB.
func NewMongoDoctorRepo() DoctorRepository {
	return &mongoDoctorRepo{coll: database.DB().Collection("doctors")}
}
