// File: handlers/schedule.go
package handlers

import (
	"errors"
	"net/http"

	"medibook/models"
	"medibook/services/schedule"
	"medibook/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ScheduleHandler serves a doctor's weekly schedule and the computed slot
// availability patients book against.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// SetScheduleHandler saves the doctor's weekly schedule.
func (sh *ScheduleHandler) SetScheduleHandler(c *gin.Context) {
	var req models.SetScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule payload", "detail": err.Error()})
		return
	}

	saved, err := sh.Service.SetSchedule(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrInvalidSlotDuration), errors.Is(err, schedule.ErrInvalidDaySetting):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			zap.L().Error("Failed to save schedule", zap.String("doctorID", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save schedule"})
		}
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetScheduleHandler returns the doctor's saved weekly schedule.
func (sh *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	sched, err := sh.Service.GetSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No schedule set for this doctor"})
			return
		}
		zap.L().Error("Failed to fetch schedule", zap.String("doctorID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedule"})
		return
	}
	c.JSON(http.StatusOK, sched)
}

// GetAvailableSlotsHandler returns the bookable slots of a doctor for a date
// given as ?date=YYYY-MM-DD.
func (sh *ScheduleHandler) GetAvailableSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'date' is required"})
		return
	}

	slots, err := sh.Service.GetAvailableSlots(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidSlotDuration) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		zap.L().Error("Failed to compute slots",
			zap.String("doctorID", c.Param("id")), zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute available slots"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}
