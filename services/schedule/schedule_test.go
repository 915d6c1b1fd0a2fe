package schedule

import (
	"context"
	"testing"
	"time"

	"medibook/models"
	"medibook/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeScheduleRepo struct {
	byDoctor map[string]*models.Schedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{byDoctor: make(map[string]*models.Schedule)}
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, sched *models.Schedule) error {
	cp := *sched
	f.byDoctor[sched.DoctorID] = &cp
	return nil
}

func (f *fakeScheduleRepo) GetByDoctorID(_ context.Context, doctorID string) (*models.Schedule, error) {
	sched, ok := f.byDoctor[doctorID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *sched
	return &cp, nil
}

type fakeApptRepo struct {
	appts []models.Appointment
}

func (f *fakeApptRepo) Create(_ context.Context, appt *models.Appointment) error {
	f.appts = append(f.appts, *appt)
	return nil
}

func (f *fakeApptRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	for _, a := range f.appts {
		if a.ID == id {
			cp := a
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeApptRepo) GetByPatientID(_ context.Context, patientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) GetByDoctorID(_ context.Context, doctorID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) GetByDoctorAndDate(_ context.Context, doctorID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.DoctorID == doctorID && a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) UpdateWithDocument(_ context.Context, id string, _ bson.M) error {
	for i := range f.appts {
		if f.appts[i].ID == id {
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeApptRepo) Delete(_ context.Context, id string) error {
	for i := range f.appts {
		if f.appts[i].ID == id {
			f.appts = append(f.appts[:i], f.appts[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeApptRepo) Count(_ context.Context, _ bson.M) (int64, error) {
	return int64(len(f.appts)), nil
}

// monday is a fixed reference date so weekday lookups stay deterministic.
const monday = "2025-06-02"

func newTestService() (*DefaultScheduleService, *fakeScheduleRepo, *fakeApptRepo) {
	schedRepo := newFakeScheduleRepo()
	apptRepo := &fakeApptRepo{}
	svc := &DefaultScheduleService{
		Repo:     schedRepo,
		ApptRepo: apptRepo,
		// Well before the reference date, so no slots are filtered as past.
		Clock: func() time.Time {
			return time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
		},
	}
	return svc, schedRepo, apptRepo
}

func mondayOnly(start, end string) models.WeeklySchedule {
	return models.WeeklySchedule{
		"monday": {Enabled: true, Start: start, End: end},
	}
}

func slotTimes(slots []models.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func TestSetScheduleValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SetSchedule(ctx, "doc-1", models.SetScheduleRequest{
		Weekly:       mondayOnly("09:00", "12:00"),
		SlotDuration: 0,
	})
	assert.ErrorIs(t, err, scheduling.ErrInvalidSlotDuration)

	_, err = svc.SetSchedule(ctx, "doc-1", models.SetScheduleRequest{
		Weekly:       mondayOnly("12:00", "09:00"),
		SlotDuration: 30,
	})
	assert.ErrorIs(t, err, ErrInvalidDaySetting)

	_, err = svc.SetSchedule(ctx, "doc-1", models.SetScheduleRequest{
		Weekly:       mondayOnly("morning", "12:00"),
		SlotDuration: 30,
	})
	assert.ErrorIs(t, err, ErrInvalidDaySetting)

	// Disabled days are not validated.
	_, err = svc.SetSchedule(ctx, "doc-1", models.SetScheduleRequest{
		Weekly: models.WeeklySchedule{
			"monday": {Enabled: false, Start: "garbage", End: ""},
		},
		SlotDuration: 30,
	})
	assert.NoError(t, err)
}

func TestSetAndGetSchedule(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	saved, err := svc.SetSchedule(ctx, "doc-1", models.SetScheduleRequest{
		Weekly:       mondayOnly("09:00", "12:00"),
		BlockedDates: []string{"2025-06-09"},
		SlotDuration: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, "doc-1", saved.DoctorID)
	assert.Equal(t, 60, saved.SlotDuration)

	got, err := svc.GetSchedule(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-09"}, got.BlockedDates)
}

func TestGetScheduleMissing(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetSchedule(context.Background(), "nobody")
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}

func TestAvailableSlotsFromSavedSchedule(t *testing.T) {
	svc, _, apptRepo := newTestService()
	ctx := context.Background()

	_, err := svc.SetSchedule(ctx, "doc-1", models.SetScheduleRequest{
		Weekly:       mondayOnly("09:00", "11:00"),
		SlotDuration: 30,
	})
	require.NoError(t, err)

	apptRepo.appts = append(apptRepo.appts, models.Appointment{
		ID:          "appt-1",
		DoctorID:    "doc-1",
		PatientName: "Jane Mwangi",
		Date:        monday,
		Time:        "09:30 AM",
		Status:      models.AppointmentConfirmed,
	})

	slots, err := svc.GetAvailableSlots(ctx, "doc-1", monday)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM"}, slotTimes(slots))

	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available)
	assert.Equal(t, "Jane Mwangi", slots[1].OccupantName)
	assert.Equal(t, "appt-1", slots[1].AppointmentID)
}

func TestAvailableSlotsBlockedDate(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SetSchedule(ctx, "doc-1", models.SetScheduleRequest{
		Weekly:       mondayOnly("09:00", "11:00"),
		BlockedDates: []string{monday},
		SlotDuration: 30,
	})
	require.NoError(t, err)

	slots, err := svc.GetAvailableSlots(ctx, "doc-1", monday)
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestAvailableSlotsDefaultSchedule(t *testing.T) {
	svc, _, _ := newTestService()

	slots, err := svc.GetAvailableSlots(context.Background(), "doc-without-schedule", monday)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM",
		"02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM", "04:00 PM",
	}, slotTimes(slots))
}

func TestAvailableSlotsDefaultScheduleOccupancy(t *testing.T) {
	svc, _, apptRepo := newTestService()

	apptRepo.appts = append(apptRepo.appts, models.Appointment{
		ID:       "appt-2",
		DoctorID: "doc-2",
		Date:     monday,
		Time:     "14:00",
		Status:   models.AppointmentPending,
	})

	slots, err := svc.GetAvailableSlots(context.Background(), "doc-2", monday)
	require.NoError(t, err)

	var taken []string
	for _, s := range slots {
		if !s.Available {
			taken = append(taken, s.Time)
		}
	}
	assert.Equal(t, []string{"02:00 PM"}, taken)
}

func TestAvailableSlotsFilterPastToday(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	// Clock set to 10:00 on the queried date; slots up to 10:30 fall inside
	// the 30-minute booking lead and disappear.
	svc.Clock = func() time.Time {
		return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	}

	_, err := svc.SetSchedule(ctx, "doc-1", models.SetScheduleRequest{
		Weekly:       mondayOnly("09:00", "12:00"),
		SlotDuration: 30,
	})
	require.NoError(t, err)

	slots, err := svc.GetAvailableSlots(ctx, "doc-1", monday)
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00 AM", "11:30 AM"}, slotTimes(slots))
}

func TestAvailableSlotsDisabledDay(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SetSchedule(ctx, "doc-1", models.SetScheduleRequest{
		Weekly:       mondayOnly("09:00", "11:00"),
		SlotDuration: 30,
	})
	require.NoError(t, err)

	// 2025-06-03 is a Tuesday, absent from the weekly schedule.
	slots, err := svc.GetAvailableSlots(ctx, "doc-1", "2025-06-03")
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}
