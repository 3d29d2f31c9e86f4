package booking

import (
	"testing"

	"nutribook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeUserDetailsForm() *models.BookingForm {
	return &models.BookingForm{
		FullName: "Asha Rao",
		Mobile:   "9876543210",
		Email:    "asha@example.com",
		DOB:      "1990-03-14",
		Gender:   "female",
		Weight:   "70",
		Height:   "165",
	}
}

func TestValidateUserDetails(t *testing.T) {
	seq := NewSequencer()

	form := completeUserDetailsForm()
	assert.True(t, seq.Validate(form, models.StepUserDetails))

	form.Email = ""
	field, missing := seq.FirstMissingField(form, models.StepUserDetails)
	require.True(t, missing)
	assert.Equal(t, "email", field)
}

func TestValidateZeroIsPresent(t *testing.T) {
	seq := NewSequencer()

	// "0" entered deliberately must not fail the emptiness check.
	form := completeUserDetailsForm()
	form.Weight = "0"
	assert.True(t, seq.Validate(form, models.StepUserDetails))
}

func TestWeightLossPlanRequiresMeasurements(t *testing.T) {
	seq := NewSequencer()

	form := completeUserDetailsForm()
	form.PlanSlug = PlanWeightLoss
	field, missing := seq.FirstMissingField(form, models.StepUserDetails)
	require.True(t, missing)
	assert.Equal(t, "neck", field)

	form.Neck = "34"
	form.Waist = "80"
	form.Hip = "95"
	form.Chest = "90"
	assert.True(t, seq.Validate(form, models.StepUserDetails))

	// Other plans never ask for the extended measurements.
	other := completeUserDetailsForm()
	other.PlanSlug = "kids-nutrition"
	assert.True(t, seq.Validate(other, models.StepUserDetails))
}

func TestSlotStepRequiresSlotID(t *testing.T) {
	seq := NewSequencer()

	form := &models.BookingForm{
		AppointmentMode: models.ModeInPerson,
		AppointmentDate: "2026-09-07",
		AppointmentTime: "10:00 AM – 10:40 AM",
	}
	field, missing := seq.FirstMissingField(form, models.StepSlot)
	require.True(t, missing)
	assert.Equal(t, "slotId", field)

	form.SlotID = "inperson-1000"
	assert.True(t, seq.Validate(form, models.StepSlot))
}

func TestStepOrderRoundTrip(t *testing.T) {
	seq := NewSequencer()

	assert.Equal(t, RouteRecall, seq.NextRoute(models.StepUserDetails))
	assert.Equal(t, RouteSlot, seq.NextRoute(models.StepRecall))
	assert.Equal(t, RoutePayment, seq.NextRoute(models.StepSlot))
	assert.Equal(t, RouteBookingComplete, seq.NextRoute(models.StepPayment))

	route, ok := seq.PreviousRoute(models.StepPayment)
	require.True(t, ok)
	assert.Equal(t, RouteSlot, route)

	_, ok = seq.PreviousRoute(models.StepUserDetails)
	assert.False(t, ok, "first step has no previous route")
}

func TestCustomRequiredFieldTable(t *testing.T) {
	seq := NewSequencerWithConfig(map[models.Step][]string{
		models.StepUserDetails: {"fullName", "email"},
	})

	form := &models.BookingForm{FullName: "Asha Rao", Email: "asha@example.com"}
	assert.True(t, seq.Validate(form, models.StepUserDetails))

	// Steps without configured requirements validate trivially.
	assert.True(t, seq.Validate(&models.BookingForm{}, models.StepRecall))
}

func TestRouteFor(t *testing.T) {
	route, ok := RouteFor(models.StepSlot)
	require.True(t, ok)
	assert.Equal(t, RouteSlot, route)

	_, ok = RouteFor(models.Step("WEIRD_STATE"))
	assert.False(t, ok)
}
