// File: services/notification/notification.go
package notification

import (
	"context"
	"fmt"
	"time"

	"medibook/models"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notify stores the notification and attempts a push to the user's topic.
// Push failures are logged but never fail the call; the stored record is the
// source of truth.
func (s *DefaultNotificationService) Notify(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.Read = false
	n.CreatedAt = time.Now()

	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to store notification: %w", err)
	}

	s.push(ctx, n)
	return n, nil
}

func (s *DefaultNotificationService) GetForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.GetByUserID(ctx, userID)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, id string) error {
	return s.Repo.MarkRead(ctx, id)
}

func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.Repo.MarkAllRead(ctx, userID)
}

// MarkReadByReference marks every notification of a user that points at the
// given reference, e.g. all notifications about one appointment once it is
// acted on.
func (s *DefaultNotificationService) MarkReadByReference(ctx context.Context, userID, referenceID string) error {
	return s.Repo.MarkReadByReference(ctx, userID, referenceID)
}

// UserTopic names the per-user FCM topic devices subscribe to.
func UserTopic(userID string) string {
	return "users-" + userID
}

func (s *DefaultNotificationService) push(ctx context.Context, n *models.Notification) {
	if s.Push == nil {
		return
	}
	msg := &messaging.Message{
		Topic: UserTopic(n.UserID),
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Message,
		},
		Data: map[string]string{
			"type":        n.Type,
			"referenceId": n.ReferenceID,
			"link":        n.Link,
		},
	}
	if _, err := s.Push.Send(ctx, msg); err != nil {
		zap.L().Warn("Failed to push notification",
			zap.String("userID", n.UserID),
			zap.String("notificationID", n.ID),
			zap.Error(err))
	}
}
