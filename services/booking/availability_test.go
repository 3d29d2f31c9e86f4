package booking

import (
	"context"
	"testing"

	"nutribook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlotRepo struct {
	slots []models.Slot
}

func (r *fakeSlotRepo) ListByMode(ctx context.Context, mode string) ([]models.Slot, error) {
	var out []models.Slot
	for _, s := range r.slots {
		if s.Mode == mode {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) GetByID(ctx context.Context, id string) (*models.Slot, error) {
	for _, s := range r.slots {
		if s.ID == id {
			cp := s
			return &cp, nil
		}
	}
	return nil, assert.AnError
}

func (r *fakeSlotRepo) Seed(ctx context.Context, slots []models.Slot) error { return nil }

type fakeConfirmedRepo struct {
	bookedByDate map[string][]string
	failListing  bool
}

func (r *fakeConfirmedRepo) Create(ctx context.Context, appt *models.Appointment) error { return nil }

func (r *fakeConfirmedRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, assert.AnError
}

func (r *fakeConfirmedRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeConfirmedRepo) ListBookedSlotIDs(ctx context.Context, date string) ([]string, error) {
	if r.failListing {
		return nil, assert.AnError
	}
	return r.bookedByDate[date], nil
}

func newTestAvailability(booked map[string][]string) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		Slots:     &fakeSlotRepo{slots: DefaultSlotTemplates()},
		Confirmed: &fakeConfirmedRepo{bookedByDate: booked},
	}
}

func TestListAvailableSlotsByMode(t *testing.T) {
	svc := newTestAvailability(nil)

	// 2026-09-07 is a Monday.
	slots, err := svc.ListAvailableSlots(context.Background(), "2026-09-07", models.ModeInPerson)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	for _, s := range slots {
		assert.Equal(t, models.ModeInPerson, s.Mode)
	}

	slots, err = svc.ListAvailableSlots(context.Background(), "2026-09-07", models.ModeOnline)
	require.NoError(t, err)
	assert.Len(t, slots, 6)
}

func TestListAvailableSlotsExcludesBooked(t *testing.T) {
	svc := newTestAvailability(map[string][]string{
		"2026-09-07": {"inperson-1000", "online-1500"},
	})

	slots, err := svc.ListAvailableSlots(context.Background(), "2026-09-07", models.ModeInPerson)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	for _, s := range slots {
		assert.NotEqual(t, "inperson-1000", s.ID)
	}

	// Bookings on another date do not block this one.
	slots, err = svc.ListAvailableSlots(context.Background(), "2026-09-08", models.ModeInPerson)
	require.NoError(t, err)
	assert.Len(t, slots, 3)
}

func TestSundayIsClosed(t *testing.T) {
	svc := newTestAvailability(nil)

	// 2026-09-06 is a Sunday.
	slots, err := svc.ListAvailableSlots(context.Background(), "2026-09-06", models.ModeInPerson)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestListAvailableSlotsInvalidDate(t *testing.T) {
	svc := newTestAvailability(nil)

	_, err := svc.ListAvailableSlots(context.Background(), "07/09/2026", models.ModeInPerson)
	require.Error(t, err)
}

func TestListAvailableSlotsFetchFailureIsAnError(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Slots:     &fakeSlotRepo{slots: DefaultSlotTemplates()},
		Confirmed: &fakeConfirmedRepo{failListing: true},
	}

	// A storage failure surfaces as an error, never as "all free".
	_, err := svc.ListAvailableSlots(context.Background(), "2026-09-07", models.ModeInPerson)
	require.Error(t, err)
}

func TestUnknownModeNormalizesToInPerson(t *testing.T) {
	svc := newTestAvailability(nil)

	slots, err := svc.ListAvailableSlots(context.Background(), "2026-09-07", "VIDEO_CALL")
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, models.ModeInPerson, slots[0].Mode)
}
