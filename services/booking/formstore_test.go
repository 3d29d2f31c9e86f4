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
)

func newTestFormStore(t *testing.T) (*FormStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewFormStore(client, 30*time.Minute), mr
}

func TestFormStoreGetMissingSessionYieldsEmptyForm(t *testing.T) {
	store, _ := newTestFormStore(t)

	form, err := store.Get(context.Background(), "never-written")
	require.NoError(t, err)
	assert.True(t, form.IsEmpty())
}

func TestFormStoreMergeAccumulates(t *testing.T) {
	store, _ := newTestFormStore(t)
	ctx := context.Background()

	patch, err := models.ParseFormPatch([]byte(`{"fullName":"Asha Rao","mobile":"9876543210"}`))
	require.NoError(t, err)
	_, err = store.Merge(ctx, "s1", patch)
	require.NoError(t, err)

	patch, err = models.ParseFormPatch([]byte(`{"weight":"70","height":"165"}`))
	require.NoError(t, err)
	form, err := store.Merge(ctx, "s1", patch)
	require.NoError(t, err)

	assert.Equal(t, "Asha Rao", form.FullName)
	assert.Equal(t, "9876543210", form.Mobile)
	assert.Equal(t, "70", form.Weight)

	// The stored copy matches what Merge returned.
	stored, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, form, stored)
}

func TestFormStoreMergeDerivesAge(t *testing.T) {
	store, _ := newTestFormStore(t)
	ctx := context.Background()

	patch, err := models.ParseFormPatch([]byte(`{"dob":"1990-03-14"}`))
	require.NoError(t, err)
	form, err := store.Merge(ctx, "s1", patch)
	require.NoError(t, err)

	require.NotNil(t, form.Age)
	assert.GreaterOrEqual(t, *form.Age, 35)
}

func TestFormStoreMergeFailureLeavesStoredStateUntouched(t *testing.T) {
	store, _ := newTestFormStore(t)
	ctx := context.Background()

	patch, err := models.ParseFormPatch([]byte(`{"fullName":"Asha Rao"}`))
	require.NoError(t, err)
	_, err = store.Merge(ctx, "s1", patch)
	require.NoError(t, err)

	bad := models.FormPatch{"age": []byte(`"not a number"`)}
	_, err = store.Merge(ctx, "s1", bad)
	require.Error(t, err)

	form, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", form.FullName)
	assert.Nil(t, form.Age)
}

func TestFormStoreSessionsAreIsolated(t *testing.T) {
	store, _ := newTestFormStore(t)
	ctx := context.Background()

	patch, err := models.ParseFormPatch([]byte(`{"fullName":"Asha Rao"}`))
	require.NoError(t, err)
	_, err = store.Merge(ctx, "s1", patch)
	require.NoError(t, err)

	other, err := store.Get(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestFormStoreResetDiscardsEverything(t *testing.T) {
	store, _ := newTestFormStore(t)
	ctx := context.Background()

	patch, err := models.ParseFormPatch([]byte(`{"fullName":"Asha Rao","slotId":"inperson-1000"}`))
	require.NoError(t, err)
	_, err = store.Merge(ctx, "s1", patch)
	require.NoError(t, err)

	require.NoError(t, store.Reset(ctx, "s1"))

	form, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, form.IsEmpty())
}

func TestFormStoreSessionExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewFormStore(client, time.Minute)
	ctx := context.Background()

	patch, err := models.ParseFormPatch([]byte(`{"fullName":"Asha Rao"}`))
	require.NoError(t, err)
	_, err = store.Merge(ctx, "s1", patch)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	form, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, form.IsEmpty())
}
