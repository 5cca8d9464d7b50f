package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProfileKnownKinds(t *testing.T) {
	reg := NewRegistry()
	for _, kind := range reg.Kinds() {
		p, err := reg.ResolveProfile(kind)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, kind, p.Kind)
		assert.NotEmpty(t, p.Categories)
		assert.NotEmpty(t, p.Offerings)
	}
}

func TestResolveProfileUnknownKindFails(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.ResolveProfile("boat_dealer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown resource kind")
}

func TestOfferingIDsUniqueWithinProfile(t *testing.T) {
	reg := NewRegistry()
	for _, kind := range reg.Kinds() {
		p, err := reg.ResolveProfile(kind)
		require.NoError(t, err)
		seen := make(map[string]bool)
		for _, o := range p.Offerings {
			assert.False(t, seen[o.ID], "duplicate offering %q in %s", o.ID, kind)
			seen[o.ID] = true
		}
	}
}

func TestDeriveContextReproducesEveryOffering(t *testing.T) {
	reg := NewRegistry()
	for _, kind := range reg.Kinds() {
		p, err := reg.ResolveProfile(kind)
		require.NoError(t, err)
		for _, o := range p.Offerings {
			form := &FormState{OfferingID: o.ID}
			ctx := DeriveContext(p, form)
			assert.Equal(t, o.Mode, ctx.Mode, "%s/%s", kind, o.ID)
			assert.Equal(t, o.Booking, ctx.Booking, "%s/%s", kind, o.ID)
			assert.Equal(t, kind, ctx.Kind)
		}
	}
}

func TestDeriveContextExplicitValuesWinOverOffering(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindProperty)
	require.NoError(t, err)

	// An editor can force a manual-contact flow on a date-range offering
	// without losing the offering identity.
	form := &FormState{
		Category:    "house",
		OfferingID:  "rent_short",
		BookingType: string(BookingManualContact),
	}
	ctx := DeriveContext(p, form)
	assert.Equal(t, ModeRentShort, ctx.Mode)
	assert.Equal(t, BookingManualContact, ctx.Booking)
}

func TestDeriveContextUnresolvedOfferingIsEmptyNotError(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindVenue)
	require.NoError(t, err)

	ctx := DeriveContext(p, &FormState{OfferingID: "does-not-exist"})
	assert.Empty(t, ctx.Mode)
	assert.Empty(t, ctx.Booking)
}

func TestDeriveContextIsDeterministic(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindService)
	require.NoError(t, err)

	form := &FormState{Category: "chef", OfferingID: "per_hour"}
	first := DeriveContext(p, form)
	second := DeriveContext(p, form)
	assert.Equal(t, first, second)
}

func TestActiveStepsAlwaysIncludeReview(t *testing.T) {
	reg := NewRegistry()
	for _, kind := range reg.Kinds() {
		p, err := reg.ResolveProfile(kind)
		require.NoError(t, err)

		// Even a blank context keeps the summary step.
		steps := ActiveSteps(p, nil, Context{Kind: kind})
		require.NotEmpty(t, steps)
		assert.Equal(t, StepReview, steps[len(steps)-1].ID)
	}
}

func TestActiveStepsNeverContainEmptyStep(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindProperty)
	require.NoError(t, err)

	ctx := DeriveContext(p, &FormState{Category: "house", OfferingID: "sell"})
	for _, step := range ActiveSteps(p, nil, ctx) {
		if step.ID == StepReview {
			continue
		}
		fields := FieldsForStep(p, nil, ctx, step.ID)
		assert.NotEmpty(t, fields, "step %s is active but empty", step.ID)
	}
}

func TestConditionsStepInactiveForPropertySale(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindProperty)
	require.NoError(t, err)

	ctx := DeriveContext(p, &FormState{Category: "house", OfferingID: "sell"})
	for _, step := range ActiveSteps(p, nil, ctx) {
		assert.NotEqual(t, StepConditions, step.ID)
	}

	// The same step activates for short stays.
	shortCtx := DeriveContext(p, &FormState{Category: "house", OfferingID: "rent_short"})
	fields := FieldsForStep(p, nil, shortCtx, StepConditions)
	assert.NotEmpty(t, fields)
}

func TestFieldsForStepSuppressesContextFields(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindProperty)
	require.NoError(t, err)

	landCtx := DeriveContext(p, &FormState{Category: "land", OfferingID: "sell"})
	keys := fieldKeys(FieldsForStep(p, nil, landCtx, StepDetails))
	assert.Contains(t, keys, "attributes.landUse")
	assert.NotContains(t, keys, "attributes.bedrooms")

	houseCtx := DeriveContext(p, &FormState{Category: "house", OfferingID: "sell"})
	keys = fieldKeys(FieldsForStep(p, nil, houseCtx, StepDetails))
	assert.Contains(t, keys, "attributes.bedrooms")
	assert.NotContains(t, keys, "attributes.landUse")
}

func TestFieldsForStepResolvesLabels(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindMusic)
	require.NoError(t, err)

	ctx := DeriveContext(p, &FormState{Category: "mariachi", OfferingID: "per_hour"})
	fields := FieldsForStep(p, nil, ctx, StepDescribe)
	require.NotEmpty(t, fields)
	for _, f := range fields {
		assert.NotEmpty(t, f.Label)
	}
}

func TestReviewStepHasNoFields(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindVenue)
	require.NoError(t, err)

	ctx := DeriveContext(p, &FormState{Category: "garden", OfferingID: "per_hour"})
	assert.Empty(t, FieldsForStep(p, nil, ctx, StepReview))
}

func fieldKeys(fields []Field) []string {
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	return keys
}
