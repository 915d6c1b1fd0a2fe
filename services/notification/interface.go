package notification

import (
	"context"

	notificationRepo "medibook/database/repository/notification"
	"medibook/models"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService stores in-app notifications and pushes them to devices
// subscribed to the user's FCM topic.
type NotificationService interface {
	Notify(ctx context.Context, n *models.Notification) (*models.Notification, error)
	GetForUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	MarkReadByReference(ctx context.Context, userID, referenceID string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
	Push *messaging.Client // optional; nil disables push delivery
}
