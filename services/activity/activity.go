// File: services/activity/activity.go
package activity

import (
	"context"
	"fmt"
	"time"

	activityRepo "medibook/database/repository/activity"
	"medibook/models"

	"github.com/google/uuid"
)

// DefaultFeedLimit caps how many entries the recent-activity feed returns.
const DefaultFeedLimit = 20

// ActivityService records and serves a user's recent-activity feed.
type ActivityService interface {
	Record(ctx context.Context, a *models.Activity) (*models.Activity, error)
	RecentForUser(ctx context.Context, userID string) ([]models.Activity, error)
}

// DefaultActivityService is the production implementation.
type DefaultActivityService struct {
	Repo activityRepo.ActivityRepository
}

func (s *DefaultActivityService) Record(ctx context.Context, a *models.Activity) (*models.Activity, error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}
	return a, nil
}

func (s *DefaultActivityService) RecentForUser(ctx context.Context, userID string) ([]models.Activity, error) {
	return s.Repo.GetRecentByUserID(ctx, userID, DefaultFeedLimit)
}
