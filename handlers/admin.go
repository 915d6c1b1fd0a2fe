// File: handlers/admin.go
package handlers

import (
	"errors"
	"net/http"

	"medibook/models"
	"medibook/services/admin"
	"medibook/services/doctor"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Service admin.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// StatsHandler returns the dashboard summary counters.
func (ah *AdminHandler) StatsHandler(c *gin.Context) {
	stats, err := ah.Service.Stats(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to compute admin stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// VerificationQueueHandler lists doctors by verification status,
// ?status= defaults to pending.
func (ah *AdminHandler) VerificationQueueHandler(c *gin.Context) {
	status := c.DefaultQuery("status", models.VerificationPending)
	doctors, err := ah.Service.DoctorsByStatus(c.Request.Context(), status)
	if err != nil {
		zap.L().Error("Failed to list verification queue", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch doctors"})
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	c.JSON(http.StatusOK, doctors)
}

// VerifyDoctorHandler marks a doctor as verified.
func (ah *AdminHandler) VerifyDoctorHandler(c *gin.Context) {
	doc, err := ah.Service.VerifyDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		ah.writeDoctorError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// RejectDoctorHandler declines a doctor's verification.
func (ah *AdminHandler) RejectDoctorHandler(c *gin.Context) {
	doc, err := ah.Service.RejectDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		ah.writeDoctorError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ProfileRequestsHandler lists doctors with a staged profile edit.
func (ah *AdminHandler) ProfileRequestsHandler(c *gin.Context) {
	doctors, err := ah.Service.ProfileRequests(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list profile requests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile requests"})
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	c.JSON(http.StatusOK, doctors)
}

// ApproveProfileUpdateHandler merges a doctor's staged profile edit.
func (ah *AdminHandler) ApproveProfileUpdateHandler(c *gin.Context) {
	doc, err := ah.Service.ApproveProfileUpdate(c.Request.Context(), c.Param("id"))
	if err != nil {
		ah.writeDoctorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile update approved", "doctor": doc})
}

// RejectProfileUpdateHandler discards a doctor's staged profile edit.
func (ah *AdminHandler) RejectProfileUpdateHandler(c *gin.Context) {
	doc, err := ah.Service.RejectProfileUpdate(c.Request.Context(), c.Param("id"))
	if err != nil {
		ah.writeDoctorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile update rejected", "doctor": doc})
}

func (ah *AdminHandler) writeDoctorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
	case errors.Is(err, doctor.ErrNoPendingUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		zap.L().Error("Admin doctor operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}
