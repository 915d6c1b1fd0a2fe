// File: database/repository/record/interface.go
package recordRepo

import (
	"context"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MedicalRecordRepository is the persistence contract for consultation records.
type MedicalRecordRepository interface {
	Create(ctx context.Context, record *models.MedicalRecord) error
	GetByPatientID(ctx context.Context, patientID string) ([]models.MedicalRecord, error)
}

type mongoMedicalRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoMedicalRecordRepo constructs a MedicalRecordRepository backed by MongoDB.
func NewMongoMedicalRecordRepo() MedicalRecordRepository {
	return &mongoMedicalRecordRepo{coll: database.DB().Collection("medical_records")}
}
