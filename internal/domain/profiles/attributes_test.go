package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chefContext(t *testing.T) (*Profile, Context) {
	t.Helper()
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindService)
	require.NoError(t, err)
	ctx := DeriveContext(p, &FormState{Category: "chef", OfferingID: "per_hour"})
	return p, ctx
}

func TestSanitizeDropsKeysOutsideAllowList(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindService)
	require.NoError(t, err)

	// chefMaxDiners was entered under a previously selected category and
	// must not leak into a maintenance record.
	ctx := DeriveContext(p, &FormState{Category: "maintenance", OfferingID: "per_hour"})
	out := SanitizeAttributes(p, ctx, map[string]any{
		"chefMaxDiners":   12,
		"serviceRadiusKm": 40,
	})
	assert.NotContains(t, out, "chefMaxDiners")
	assert.Equal(t, 40, out["serviceRadiusKm"])
}

func TestSanitizeRetainsAllowedKey(t *testing.T) {
	p, ctx := chefContext(t)
	out := SanitizeAttributes(p, ctx, map[string]any{"chefMaxDiners": 12})
	assert.Equal(t, 12, out["chefMaxDiners"])
}

func TestSanitizeDropsEmptyValues(t *testing.T) {
	p, ctx := chefContext(t)
	out := SanitizeAttributes(p, ctx, map[string]any{
		"chefMaxDiners": nil,
		"cuisineStyles": []string{},
		"menuUrl":       "",
	})
	assert.Empty(t, out)
}

func TestSanitizeKeepsRealZeroAnswers(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindProperty)
	require.NoError(t, err)

	ctx := DeriveContext(p, &FormState{Category: "house", OfferingID: "sell"})
	out := SanitizeAttributes(p, ctx, map[string]any{
		"parkingSpaces": 0,
		"furnished":     false,
	})
	assert.Equal(t, 0, out["parkingSpaces"])
	assert.Equal(t, false, out["furnished"])
}

func TestSanitizeIsIdempotent(t *testing.T) {
	p, ctx := chefContext(t)
	in := map[string]any{
		"chefMaxDiners":   12,
		"cuisineStyles":   []string{"oaxacan", "yucatecan"},
		"serviceRadiusKm": 99, // not allowed for chef
		"menuUrl":         "",
	}
	once := SanitizeAttributes(p, ctx, in)
	twice := SanitizeAttributes(p, ctx, once)
	assert.Equal(t, once, twice)
}

func TestSanitizeAllowListFollowsCommercialMode(t *testing.T) {
	p, ctx := chefContext(t)
	require.True(t, ctx.TimeSlot())
	out := SanitizeAttributes(p, ctx, map[string]any{"bookingMinUnits": 2})
	assert.Equal(t, 2, out["bookingMinUnits"])

	// A fixed quote is booked by manual contact, so slot bounds are stale.
	reg := NewRegistry()
	sp, err := reg.ResolveProfile(KindService)
	require.NoError(t, err)
	quoteCtx := DeriveContext(sp, &FormState{Category: "chef", OfferingID: "fixed_quote"})
	out = SanitizeAttributes(sp, quoteCtx, map[string]any{"bookingMinUnits": 2})
	assert.NotContains(t, out, "bookingMinUnits")
}
