package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPlansIsStableAndComplete(t *testing.T) {
	plans := ListPlans()
	require.Len(t, plans, 4)
	assert.Equal(t, "diabetes-care", plans[0].Slug)
	assert.Equal(t, "weight-loss", plans[3].Slug)
}

func TestGetPlanBySlug(t *testing.T) {
	plan, err := GetPlanBySlug("weight-loss")
	require.NoError(t, err)
	assert.Equal(t, "Weight Loss Plan", plan.Name)
	require.Len(t, plan.Packages, 2)
	assert.Equal(t, int64(1780000), plan.Packages[0].AmountPaise)

	_, err = GetPlanBySlug("no-such-plan")
	require.Error(t, err)
}

func TestGetPlanPackage(t *testing.T) {
	plan, pkg, err := GetPlanPackage("weight-loss", "weight-loss-6-month")
	require.NoError(t, err)
	assert.Equal(t, "weight-loss", plan.Slug)
	assert.Equal(t, "₹26,800", pkg.Price)

	// An empty package slug selects the plan's first package.
	_, pkg, err = GetPlanPackage("kids-nutrition", "")
	require.NoError(t, err)
	assert.Equal(t, "kids-solid-food", pkg.Slug)

	_, _, err = GetPlanPackage("weight-loss", "no-such-package")
	require.Error(t, err)
}
