// File: handlers/doctor.go
package handlers

import (
	"errors"
	"net/http"

	"medibook/models"
	"medibook/services/doctor"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DoctorHandler serves the public doctor directory and the doctor's own
// profile operations.
type DoctorHandler struct {
	Service doctor.DoctorService
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// RegisterDoctorHandler creates a new doctor profile, queued for verification.
func (dh *DoctorHandler) RegisterDoctorHandler(c *gin.Context) {
	var doc models.Doctor
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor payload", "detail": err.Error()})
		return
	}

	created, err := dh.Service.CreateDoctor(c.Request.Context(), &doc)
	if err != nil {
		zap.L().Error("Failed to register doctor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register doctor"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListDoctorsHandler returns verified doctors; ?all=true includes unverified
// profiles as well.
func (dh *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	verifiedOnly := c.Query("all") != "true"
	doctors, err := dh.Service.GetAllDoctors(c.Request.Context(), verifiedOnly)
	if err != nil {
		zap.L().Error("Failed to list doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch doctors"})
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	c.JSON(http.StatusOK, doctors)
}

// GetDoctorHandler returns one doctor profile by id.
func (dh *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	doc, err := dh.Service.GetDoctorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		zap.L().Error("Failed to fetch doctor", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch doctor"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// RequestProfileUpdateHandler stages a profile edit for admin review. A second
// request while one is pending is rejected with 409.
func (dh *DoctorHandler) RequestProfileUpdateHandler(c *gin.Context) {
	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update payload", "detail": err.Error()})
		return
	}

	doc, err := dh.Service.RequestProfileUpdate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, doctor.ErrUpdatePending):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, doctor.ErrEmptyUpdate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		default:
			zap.L().Error("Failed to stage profile update", zap.String("id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit profile update"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile update submitted for review",
		"doctor":  doc,
	})
}

// GetPendingUpdateHandler reports whether the doctor has a staged profile
// edit awaiting review.
func (dh *DoctorHandler) GetPendingUpdateHandler(c *gin.Context) {
	status, err := dh.Service.GetPendingUpdate(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		zap.L().Error("Failed to fetch pending update", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending update"})
		return
	}
	c.JSON(http.StatusOK, status)
}
