// File: database/repository/doctor/doctor_mongo.go
package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, doctor); err != nil {
		return fmt.Errorf("failed to insert doctor: %w", err)
	}
	return nil
}

func (r *mongoDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var doctor models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doctor); err != nil {
		return nil, fmt.Errorf("failed to fetch doctor with id %s: %w", id, err)
	}
	return &doctor, nil
}

func (r *mongoDoctorRepo) GetByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var doctor models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&doctor); err != nil {
		return nil, fmt.Errorf("failed to fetch doctor for user %s: %w", userID, err)
	}
	return &doctor, nil
}

func (r *mongoDoctorRepo) GetAll(ctx context.Context, verifiedOnly bool) ([]models.Doctor, error) {
	filter := bson.M{}
	if verifiedOnly {
		filter["verified"] = true
	}
	return r.find(ctx, filter)
}

func (r *mongoDoctorRepo) GetByVerificationStatus(ctx context.Context, status string) ([]models.Doctor, error) {
	return r.find(ctx, bson.M{"verificationStatus": status})
}

func (r *mongoDoctorRepo) GetWithPendingUpdates(ctx context.Context) ([]models.Doctor, error) {
	return r.find(ctx, bson.M{"pendingUpdate": bson.M{"$exists": true, "$ne": nil}})
}

func (r *mongoDoctorRepo) find(ctx context.Context, filter bson.M) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve doctors: %w", err)
	}
	defer cursor.Close(ctx)
	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

func (r *mongoDoctorRepo) UpdateWithDocument(ctx context.Context, id string, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update doctor %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoDoctorRepo) SetPendingUpdate(ctx context.Context, id string, fields map[string]interface{}, at time.Time) error {
	return r.UpdateWithDocument(ctx, id, bson.M{
		"$set": bson.M{
			"pendingUpdate": models.PendingUpdate{Fields: fields, RequestedAt: at},
			"updatedAt":     at,
		},
	})
}

// ApplyPendingUpdate merges the staged fields into the canonical profile and
// clears the staged entry in one update.
func (r *mongoDoctorRepo) ApplyPendingUpdate(ctx context.Context, id string, fields map[string]interface{}) error {
	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	return r.UpdateWithDocument(ctx, id, bson.M{
		"$set":   set,
		"$unset": bson.M{"pendingUpdate": ""},
	})
}

func (r *mongoDoctorRepo) ClearPendingUpdate(ctx context.Context, id string) error {
	return r.UpdateWithDocument(ctx, id, bson.M{
		"$set":   bson.M{"updatedAt": time.Now()},
		"$unset": bson.M{"pendingUpdate": ""},
	})
}

func (r *mongoDoctorRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete doctor %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoDoctorRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count doctors: %w", err)
	}
	return n, nil
}
