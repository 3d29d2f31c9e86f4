package booking

import (
	"context"
	"testing"
	"time"

	"nutribook/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestReconciler(t *testing.T) (*Reconciler, *FormStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewFormStore(client, 30*time.Minute)
	return NewReconciler(store, zap.NewNop()), store
}

func TestRouteForProgress(t *testing.T) {
	rec, _ := newTestReconciler(t)

	assert.Equal(t, RouteUserDetails, rec.RouteForProgress(models.StepUserDetails))
	assert.Equal(t, RouteRecall, rec.RouteForProgress(models.StepRecall))
	assert.Equal(t, RouteSlot, rec.RouteForProgress(models.StepSlot))
	assert.Equal(t, RoutePayment, rec.RouteForProgress(models.StepPayment))

	// Unknown or empty markers resume at the first step, never later.
	assert.Equal(t, RouteUserDetails, rec.RouteForProgress(models.Step("WEIRD_STATE")))
	assert.Equal(t, RouteUserDetails, rec.RouteForProgress(models.Step("")))
}

func TestLabelForProgress(t *testing.T) {
	rec, _ := newTestReconciler(t)

	assert.Equal(t, "Your Details", rec.LabelForProgress(models.StepUserDetails))
	assert.Equal(t, "Recall Questions", rec.LabelForProgress(models.StepRecall))
	assert.Equal(t, "Slot Selection", rec.LabelForProgress(models.StepSlot))
	assert.Equal(t, "Payment", rec.LabelForProgress(models.StepPayment))
	assert.Equal(t, "Your Details", rec.LabelForProgress(models.Step("WEIRD_STATE")))
}

func TestResumeRehydratesPlanAndSchedule(t *testing.T) {
	rec, store := newTestReconciler(t)
	ctx := context.Background()

	appt := &models.PendingAppointment{
		ID:              "appt-1",
		PatientID:       "pat-1",
		PlanSlug:        "weight-loss",
		PlanName:        "Weight Loss Plan",
		PlanPrice:       "₹17,800",
		PlanPackageName: "3 Month Package",
		PlanDuration:    "3 months",
		Mode:            models.ModeInPerson,
		SlotID:          "inperson-1000",
		SlotLabel:       "10:00 AM – 10:40 AM",
		AppointmentDate: "2026-09-07",
		BookingProgress: models.StepPayment,
	}

	sessionID, route, err := rec.Resume(ctx, appt)
	require.NoError(t, err)
	assert.Equal(t, RoutePayment, route)

	form, err := store.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "weight-loss", form.PlanSlug)
	assert.Equal(t, "₹17,800", form.PlanPrice)
	assert.Equal(t, "appt-1", form.AppointmentID)
	assert.Equal(t, "pat-1", form.PatientID)
	assert.Equal(t, "inperson-1000", form.SlotID)
	assert.Equal(t, "10:00 AM – 10:40 AM", form.AppointmentTime)
	assert.Equal(t, "2026-09-07", form.AppointmentDate)
}

func TestResumeNeverFabricatesSlot(t *testing.T) {
	rec, store := newTestReconciler(t)
	ctx := context.Background()

	appt := &models.PendingAppointment{
		ID:              "appt-2",
		PatientID:       "pat-1",
		PlanSlug:        "kids-nutrition",
		PlanName:        "Kids Nutrition Plan",
		Mode:            models.ModeOnline,
		AppointmentDate: "2026-09-07",
		BookingProgress: models.StepSlot,
	}

	sessionID, route, err := rec.Resume(ctx, appt)
	require.NoError(t, err)
	assert.Equal(t, RouteSlot, route)

	form, err := store.Get(ctx, sessionID)
	require.NoError(t, err)
	// Without a stored slot the schedule fields stay empty so the slot step
	// re-prompts rather than completing against a guess.
	assert.Empty(t, form.SlotID)
	assert.Empty(t, form.AppointmentTime)
	assert.Empty(t, form.AppointmentDate)
	assert.Equal(t, models.ModeOnline, form.AppointmentMode)
}

func TestResumeUnknownProgressFailsSafe(t *testing.T) {
	rec, store := newTestReconciler(t)
	ctx := context.Background()

	appt := &models.PendingAppointment{
		ID:              "appt-3",
		PatientID:       "pat-1",
		PlanSlug:        "general-wellness",
		BookingProgress: models.Step("WEIRD_STATE"),
	}

	sessionID, route, err := rec.Resume(ctx, appt)
	require.NoError(t, err)
	assert.Equal(t, RouteUserDetails, route)

	form, err := store.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "general-wellness", form.PlanSlug)
}

func TestResumeNormalizesMode(t *testing.T) {
	rec, store := newTestReconciler(t)
	ctx := context.Background()

	appt := &models.PendingAppointment{
		ID:              "appt-4",
		PatientID:       "pat-1",
		PlanSlug:        "diabetes-care",
		Mode:            "VIDEO_CALL",
		BookingProgress: models.StepRecall,
	}

	sessionID, _, err := rec.Resume(ctx, appt)
	require.NoError(t, err)

	form, err := store.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.ModeInPerson, form.AppointmentMode)
}

func TestResumeNilAppointment(t *testing.T) {
	rec, _ := newTestReconciler(t)

	_, _, err := rec.Resume(context.Background(), nil)
	require.Error(t, err)
}
