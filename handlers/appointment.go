// File: handlers/appointment.go
package handlers

import (
	"errors"
	"net/http"

	"medibook/models"
	"medibook/services/appointment"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AppointmentHandler drives the booking lifecycle over HTTP.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// bookAppointmentRequest carries the booking payload plus the identity of the
// patient making it.
type bookAppointmentRequest struct {
	models.CreateAppointmentRequest
	PatientID   string `json:"patientId" binding:"required"`
	PatientName string `json:"patientName"`
}

// CreateAppointmentHandler books a pending appointment on a free slot.
func (ah *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var req bookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment payload", "detail": err.Error()})
		return
	}

	appt, err := ah.Service.Create(c.Request.Context(), req.PatientID, req.PatientName, req.CreateAppointmentRequest)
	if err != nil {
		ah.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// GetAppointmentHandler returns one appointment by id.
func (ah *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	appt, err := ah.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		zap.L().Error("Failed to fetch appointment", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointment"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListPatientAppointmentsHandler returns a patient's appointments.
func (ah *AppointmentHandler) ListPatientAppointmentsHandler(c *gin.Context) {
	appts, err := ah.Service.ListForPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		zap.L().Error("Failed to list patient appointments", zap.String("patientID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	c.JSON(http.StatusOK, appts)
}

// ListDoctorAppointmentsHandler returns a doctor's appointments.
func (ah *AppointmentHandler) ListDoctorAppointmentsHandler(c *gin.Context) {
	appts, err := ah.Service.ListForDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		zap.L().Error("Failed to list doctor appointments", zap.String("doctorID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	c.JSON(http.StatusOK, appts)
}

// ConfirmAppointmentHandler lets the doctor accept a pending appointment.
func (ah *AppointmentHandler) ConfirmAppointmentHandler(c *gin.Context) {
	appt, err := ah.Service.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		ah.writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelAppointmentHandler calls off a pending or confirmed appointment.
func (ah *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	var body struct {
		CancelledBy string `json:"cancelledBy"`
	}
	_ = c.ShouldBindJSON(&body)

	appt, err := ah.Service.Cancel(c.Request.Context(), c.Param("id"), body.CancelledBy)
	if err != nil {
		ah.writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// RejectAppointmentHandler declines a pending appointment with a reason.
func (ah *AppointmentHandler) RejectAppointmentHandler(c *gin.Context) {
	var body struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&body)

	appt, err := ah.Service.Reject(c.Request.Context(), c.Param("id"), body.Reason)
	if err != nil {
		ah.writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CompleteAppointmentHandler closes a confirmed appointment and files the
// consultation outcome.
func (ah *AppointmentHandler) CompleteAppointmentHandler(c *gin.Context) {
	var req models.CompleteAppointmentRequest
	_ = c.ShouldBindJSON(&req)

	appt, err := ah.Service.Complete(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		ah.writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// RescheduleAppointmentHandler moves an appointment to a new free slot.
func (ah *AppointmentHandler) RescheduleAppointmentHandler(c *gin.Context) {
	var req models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reschedule payload", "detail": err.Error()})
		return
	}

	appt, err := ah.Service.Reschedule(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		ah.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// RevokeAppointmentHandler lets a patient withdraw their own appointment.
// The patient id comes as ?patientId=.
func (ah *AppointmentHandler) RevokeAppointmentHandler(c *gin.Context) {
	patientID := c.Query("patientId")
	if patientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'patientId' is required"})
		return
	}

	if err := ah.Service.Revoke(c.Request.Context(), c.Param("id"), patientID); err != nil {
		if errors.Is(err, appointment.ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ah.writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment withdrawn"})
}

func (ah *AppointmentHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appointment.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, appointment.ErrSlotUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, appointment.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
	default:
		zap.L().Error("Booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking operation failed"})
	}
}

func (ah *AppointmentHandler) writeLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appointment.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
	default:
		zap.L().Error("Appointment operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Appointment operation failed"})
	}
}
