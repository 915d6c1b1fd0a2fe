// File: handlers/notification.go
package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler serves a user's in-app notifications.
type NotificationHandler struct {
	Service notification.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

// ListNotificationsHandler returns a user's notifications, newest first.
func (nh *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	items, err := nh.Service.GetForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		zap.L().Error("Failed to list notifications", zap.String("userID", c.Param("userId")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}
	if items == nil {
		items = []models.Notification{}
	}
	c.JSON(http.StatusOK, items)
}

// MarkReadHandler marks one notification as read.
func (nh *NotificationHandler) MarkReadHandler(c *gin.Context) {
	if err := nh.Service.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllReadHandler marks all of a user's notifications as read.
func (nh *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	if err := nh.Service.MarkAllRead(c.Request.Context(), c.Param("userId")); err != nil {
		zap.L().Error("Failed to mark notifications read", zap.String("userID", c.Param("userId")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications as read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
