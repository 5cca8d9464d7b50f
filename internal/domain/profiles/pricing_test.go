package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingModelForwardMapping(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindProperty)
	require.NoError(t, err)

	model, ok := p.PricingModelFor("per_m2")
	require.True(t, ok)
	assert.Equal(t, PricingPerM2, model)

	_, ok = p.PricingModelFor("per_parsec")
	assert.False(t, ok)
}

func TestAllowedChoicesRestrictedByMode(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindProperty)
	require.NoError(t, err)

	// A sale offering never exposes a nightly rate.
	assert.NotContains(t, p.AllowedPricingChoices("house", ModeSale), "per_night")
	assert.Contains(t, p.AllowedPricingChoices("house", ModeSale), "per_m2")
	assert.Equal(t, []string{"per_night"}, p.AllowedPricingChoices("house", ModeRentShort))
}

func TestReverseInferenceKeepsAllowedModel(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindProperty)
	require.NoError(t, err)

	ctx := DeriveContext(p, &FormState{Category: "house", OfferingID: "sell"})
	assert.Equal(t, "per_m2", p.PricingChoiceFor(PricingPerM2, ctx))
}

func TestReverseInferenceFallsBackToModeDefault(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindProperty)
	require.NoError(t, err)

	// A nightly model stored on a record that now sells falls back to the
	// sale default instead of reconstructing an illegal choice.
	ctx := DeriveContext(p, &FormState{Category: "house", OfferingID: "sell"})
	assert.Equal(t, "total", p.PricingChoiceFor(PricingPerNight, ctx))
}

func TestReverseInferenceIsLossyAcrossChoices(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindMusic)
	require.NoError(t, err)

	// fixed_total maps from the per_event choice here; reconstructing it
	// must yield a legal choice for the mode, not necessarily the original.
	ctx := DeriveContext(p, &FormState{Category: "mariachi", OfferingID: "per_hour"})
	choice := p.PricingChoiceFor(PricingFixedTotal, ctx)
	assert.Contains(t, p.AllowedPricingChoices(ctx.Category, ctx.Mode), choice)
}
