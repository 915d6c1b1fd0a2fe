// File: handlers/activity.go
package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/activity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ActivityHandler serves a user's recent-activity feed.
type ActivityHandler struct {
	Service activity.ActivityService
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(svc activity.ActivityService) *ActivityHandler {
	return &ActivityHandler{Service: svc}
}

// RecentActivityHandler returns the newest feed entries for a user.
func (ah *ActivityHandler) RecentActivityHandler(c *gin.Context) {
	items, err := ah.Service.RecentForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		zap.L().Error("Failed to fetch activity feed", zap.String("userID", c.Param("userId")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity"})
		return
	}
	if items == nil {
		items = []models.Activity{}
	}
	c.JSON(http.StatusOK, items)
}
