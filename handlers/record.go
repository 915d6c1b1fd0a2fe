// File: handlers/record.go
package handlers

import (
	"net/http"

	recordRepo "medibook/database/repository/record"
	"medibook/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecordHandler serves a patient's medical history.
type RecordHandler struct {
	Repo recordRepo.MedicalRecordRepository
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(repo recordRepo.MedicalRecordRepository) *RecordHandler {
	return &RecordHandler{Repo: repo}
}

// ListRecordsHandler returns the medical records of a patient.
func (rh *RecordHandler) ListRecordsHandler(c *gin.Context) {
	records, err := rh.Repo.GetByPatientID(c.Request.Context(), c.Param("id"))
	if err != nil {
		zap.L().Error("Failed to list medical records", zap.String("patientID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medical records"})
		return
	}
	if records == nil {
		records = []models.MedicalRecord{}
	}
	c.JSON(http.StatusOK, records)
}
