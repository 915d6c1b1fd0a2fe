package notification

import (
	"context"
	"testing"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	stored []models.Notification
	read   map[string]bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{read: make(map[string]bool)}
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *models.Notification) error {
	f.stored = append(f.stored, *n)
	return nil
}

func (f *fakeNotificationRepo) GetByUserID(_ context.Context, userID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.stored {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id string) error {
	f.read[id] = true
	return nil
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	for _, n := range f.stored {
		if n.UserID == userID {
			f.read[n.ID] = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) MarkReadByReference(_ context.Context, userID, referenceID string) error {
	for _, n := range f.stored {
		if n.UserID == userID && n.ReferenceID == referenceID {
			f.read[n.ID] = true
		}
	}
	return nil
}

func TestNotifyStoresUnread(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := &DefaultNotificationService{Repo: repo}

	n, err := svc.Notify(context.Background(), &models.Notification{
		UserID:  "user-1",
		Title:   "Appointment confirmed",
		Message: "See you Monday",
		Type:    "appointment",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, n.ID)
	assert.False(t, n.Read)
	assert.False(t, n.CreatedAt.IsZero())
	require.Len(t, repo.stored, 1)
}

func TestNotifyWithoutPushClient(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := &DefaultNotificationService{Repo: repo}

	// Nil push client means storage only, never an error.
	_, err := svc.Notify(context.Background(), &models.Notification{UserID: "user-1", Title: "Hello"})
	assert.NoError(t, err)
}

func TestMarkReadByReference(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := &DefaultNotificationService{Repo: repo}
	ctx := context.Background()

	first, err := svc.Notify(ctx, &models.Notification{UserID: "doc-user", ReferenceID: "appointment:a1"})
	require.NoError(t, err)
	second, err := svc.Notify(ctx, &models.Notification{UserID: "doc-user", ReferenceID: "appointment:a2"})
	require.NoError(t, err)

	require.NoError(t, svc.MarkReadByReference(ctx, "doc-user", "appointment:a1"))
	assert.True(t, repo.read[first.ID])
	assert.False(t, repo.read[second.ID])
}

func TestUserTopic(t *testing.T) {
	assert.Equal(t, "users-abc", UserTopic("abc"))
}
