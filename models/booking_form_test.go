package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormPatchRejectsUnknownFields(t *testing.T) {
	_, err := ParseFormPatch([]byte(`{"fullNname":"Asha"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fullNname")

	patch, err := ParseFormPatch([]byte(`{"fullName":"Asha","mobile":"9876543210"}`))
	require.NoError(t, err)
	assert.Len(t, patch, 2)
}

func TestApplyMergesOnlyPresentKeys(t *testing.T) {
	form := BookingForm{
		FullName: "Asha Rao",
		Mobile:   "9876543210",
		Weight:   "72",
	}

	patch, err := ParseFormPatch([]byte(`{"weight":"70","height":"165"}`))
	require.NoError(t, err)
	require.NoError(t, form.Apply(patch))

	assert.Equal(t, "70", form.Weight)
	assert.Equal(t, "165", form.Height)
	// Keys absent from the patch keep their stored values.
	assert.Equal(t, "Asha Rao", form.FullName)
	assert.Equal(t, "9876543210", form.Mobile)
}

func TestApplyNullClearsField(t *testing.T) {
	age := 34
	form := BookingForm{
		Gender:  "female",
		Age:     &age,
		Reports: []string{"reports/p1/scan"},
	}

	patch, err := ParseFormPatch([]byte(`{"gender":null,"age":null,"reports":null}`))
	require.NoError(t, err)
	require.NoError(t, form.Apply(patch))

	assert.Empty(t, form.Gender)
	assert.Nil(t, form.Age)
	assert.Nil(t, form.Reports)

	_, present := form.Field("gender")
	assert.False(t, present, "cleared field should read as absent")
}

func TestApplyRejectsWrongTypes(t *testing.T) {
	var form BookingForm
	err := form.Apply(FormPatch{"age": []byte(`"thirty"`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age")
}

func TestFieldPresence(t *testing.T) {
	zero := 0
	form := BookingForm{
		Weight: "0",
		Age:    &zero,
	}

	// Zero values entered deliberately are present.
	v, present := form.Field("age")
	assert.True(t, present)
	assert.Equal(t, 0, v)

	v, present = form.Field("weight")
	assert.True(t, present)
	assert.Equal(t, "0", v)

	// Missing fields are absent.
	_, present = form.Field("email")
	assert.False(t, present)
	_, present = form.Field("slotId")
	assert.False(t, present)

	// Unknown names are absent, never a panic.
	_, present = form.Field("nonsense")
	assert.False(t, present)
}

func TestIsEmpty(t *testing.T) {
	var form BookingForm
	assert.True(t, form.IsEmpty())

	form.FullName = "Asha"
	assert.False(t, form.IsEmpty())
}
