package doctor

import (
	"context"
	"testing"
	"time"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeDoctorRepo is an in-memory DoctorRepository for service tests.
type fakeDoctorRepo struct {
	docs map[string]*models.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{docs: make(map[string]*models.Doctor)}
}

func (f *fakeDoctorRepo) Create(_ context.Context, doc *models.Doctor) error {
	cp := *doc
	f.docs[doc.ID] = &cp
	return nil
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *doc
	return &cp, nil
}

func (f *fakeDoctorRepo) GetByUserID(_ context.Context, userID string) (*models.Doctor, error) {
	for _, doc := range f.docs {
		if doc.UserID == userID {
			cp := *doc
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeDoctorRepo) GetAll(_ context.Context, verifiedOnly bool) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, doc := range f.docs {
		if verifiedOnly && !doc.Verified {
			continue
		}
		out = append(out, *doc)
	}
	return out, nil
}

func (f *fakeDoctorRepo) GetByVerificationStatus(_ context.Context, status string) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, doc := range f.docs {
		if doc.VerificationStatus == status {
			out = append(out, *doc)
		}
	}
	return out, nil
}

func (f *fakeDoctorRepo) GetWithPendingUpdates(_ context.Context) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, doc := range f.docs {
		if doc.Pending != nil {
			out = append(out, *doc)
		}
	}
	return out, nil
}

func (f *fakeDoctorRepo) UpdateWithDocument(_ context.Context, id string, update bson.M) error {
	doc, ok := f.docs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if set, ok := update["$set"].(bson.M); ok {
		if v, ok := set["verified"].(bool); ok {
			doc.Verified = v
		}
		if v, ok := set["verificationStatus"].(string); ok {
			doc.VerificationStatus = v
		}
		if v, ok := set["updatedAt"].(time.Time); ok {
			doc.UpdatedAt = v
		}
	}
	return nil
}

func (f *fakeDoctorRepo) SetPendingUpdate(_ context.Context, id string, fields map[string]interface{}, at time.Time) error {
	doc, ok := f.docs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	doc.Pending = &models.PendingUpdate{Fields: fields, RequestedAt: at}
	return nil
}

func (f *fakeDoctorRepo) ApplyPendingUpdate(_ context.Context, id string, fields map[string]interface{}) error {
	doc, ok := f.docs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if v, ok := fields["name"].(string); ok {
		doc.Name = v
	}
	if v, ok := fields["specialty"].(string); ok {
		doc.Specialty = v
	}
	if v, ok := fields["location"].(string); ok {
		doc.Location = v
	}
	if v, ok := fields["experience"].(int); ok {
		doc.Experience = v
	}
	if v, ok := fields["image"].(string); ok {
		doc.Image = v
	}
	doc.Pending = nil
	return nil
}

func (f *fakeDoctorRepo) ClearPendingUpdate(_ context.Context, id string) error {
	doc, ok := f.docs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	doc.Pending = nil
	return nil
}

func (f *fakeDoctorRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.docs[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeDoctorRepo) Count(_ context.Context, _ bson.M) (int64, error) {
	return int64(len(f.docs)), nil
}

func newTestService() (*DefaultDoctorService, *fakeDoctorRepo) {
	repo := newFakeDoctorRepo()
	return &DefaultDoctorService{Repo: repo}, repo
}

func seedDoctor(t *testing.T, svc *DefaultDoctorService) *models.Doctor {
	t.Helper()
	doc, err := svc.CreateDoctor(context.Background(), &models.Doctor{
		UserID:    "user-1",
		Name:      "Dr. Amina Otieno",
		Specialty: "Cardiology",
		Location:  "Nairobi",
	})
	require.NoError(t, err)
	return doc
}

func TestCreateDoctorStartsUnverified(t *testing.T) {
	svc, _ := newTestService()
	doc := seedDoctor(t, svc)

	assert.NotEmpty(t, doc.ID)
	assert.False(t, doc.Verified)
	assert.Equal(t, models.VerificationPending, doc.VerificationStatus)
	assert.Nil(t, doc.Pending)
}

func TestVerifyAndRejectDoctor(t *testing.T) {
	svc, _ := newTestService()
	doc := seedDoctor(t, svc)

	verified, err := svc.VerifyDoctor(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.True(t, verified.Verified)
	assert.Equal(t, models.VerificationVerified, verified.VerificationStatus)

	rejected, err := svc.RejectDoctor(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.False(t, rejected.Verified)
	assert.Equal(t, models.VerificationRejected, rejected.VerificationStatus)
}

func TestRequestProfileUpdateStagesFields(t *testing.T) {
	svc, _ := newTestService()
	doc := seedDoctor(t, svc)

	updated, err := svc.RequestProfileUpdate(context.Background(), doc.ID, models.ProfileUpdateRequest{
		Name:     "Dr. Amina A. Otieno",
		Location: "Mombasa",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Pending)

	// Profile itself is untouched until an admin approves.
	assert.Equal(t, "Dr. Amina Otieno", updated.Name)
	assert.Equal(t, "Nairobi", updated.Location)
	assert.Equal(t, "Dr. Amina A. Otieno", updated.Pending.Fields["name"])
	assert.Equal(t, "Mombasa", updated.Pending.Fields["location"])
}

func TestRequestProfileUpdateRejectedWhilePending(t *testing.T) {
	svc, _ := newTestService()
	doc := seedDoctor(t, svc)

	_, err := svc.RequestProfileUpdate(context.Background(), doc.ID, models.ProfileUpdateRequest{Name: "First"})
	require.NoError(t, err)

	_, err = svc.RequestProfileUpdate(context.Background(), doc.ID, models.ProfileUpdateRequest{Name: "Second"})
	assert.ErrorIs(t, err, ErrUpdatePending)
}

func TestRequestProfileUpdateEmpty(t *testing.T) {
	svc, _ := newTestService()
	doc := seedDoctor(t, svc)

	_, err := svc.RequestProfileUpdate(context.Background(), doc.ID, models.ProfileUpdateRequest{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestApproveProfileUpdateMergesAndClears(t *testing.T) {
	svc, _ := newTestService()
	doc := seedDoctor(t, svc)

	_, err := svc.RequestProfileUpdate(context.Background(), doc.ID, models.ProfileUpdateRequest{
		Name:       "Dr. Amina A. Otieno",
		Experience: 12,
	})
	require.NoError(t, err)

	approved, err := svc.ApproveProfileUpdate(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Amina A. Otieno", approved.Name)
	assert.Equal(t, 12, approved.Experience)
	assert.Nil(t, approved.Pending)

	// Gate reopens once the staged edit is resolved.
	_, err = svc.RequestProfileUpdate(context.Background(), doc.ID, models.ProfileUpdateRequest{Location: "Kisumu"})
	assert.NoError(t, err)
}

func TestRejectProfileUpdateDiscards(t *testing.T) {
	svc, _ := newTestService()
	doc := seedDoctor(t, svc)

	_, err := svc.RequestProfileUpdate(context.Background(), doc.ID, models.ProfileUpdateRequest{Name: "Someone Else"})
	require.NoError(t, err)

	rejected, err := svc.RejectProfileUpdate(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Amina Otieno", rejected.Name)
	assert.Nil(t, rejected.Pending)
}

func TestApproveWithoutPending(t *testing.T) {
	svc, _ := newTestService()
	doc := seedDoctor(t, svc)

	_, err := svc.ApproveProfileUpdate(context.Background(), doc.ID)
	assert.ErrorIs(t, err, ErrNoPendingUpdate)

	_, err = svc.RejectProfileUpdate(context.Background(), doc.ID)
	assert.ErrorIs(t, err, ErrNoPendingUpdate)
}

func TestGetPendingUpdateStatus(t *testing.T) {
	svc, _ := newTestService()
	doc := seedDoctor(t, svc)

	status, err := svc.GetPendingUpdate(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.False(t, status.HasPendingUpdate)
	assert.Nil(t, status.PendingData)

	_, err = svc.RequestProfileUpdate(context.Background(), doc.ID, models.ProfileUpdateRequest{Specialty: "Neurology"})
	require.NoError(t, err)

	status, err = svc.GetPendingUpdate(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.True(t, status.HasPendingUpdate)
	assert.Equal(t, "Neurology", status.PendingData["specialty"])
	assert.NotNil(t, status.RequestedAt)
}

func TestGetProfileRequests(t *testing.T) {
	svc, _ := newTestService()
	doc := seedDoctor(t, svc)

	requests, err := svc.GetProfileRequests(context.Background())
	require.NoError(t, err)
	assert.Empty(t, requests)

	_, err = svc.RequestProfileUpdate(context.Background(), doc.ID, models.ProfileUpdateRequest{Name: "Updated"})
	require.NoError(t, err)

	requests, err = svc.GetProfileRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, doc.ID, requests[0].ID)
}

func TestDeleteDoctor(t *testing.T) {
	svc, _ := newTestService()
	doc := seedDoctor(t, svc)

	require.NoError(t, svc.DeleteDoctor(context.Background(), doc.ID))
	_, err := svc.GetDoctorByID(context.Background(), doc.ID)
	assert.Error(t, err)

	err = svc.DeleteDoctor(context.Background(), "missing")
	assert.Error(t, err)
}
