package profiles

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPatchPropertySaleScenario(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindProperty)
	require.NoError(t, err)

	form := &FormState{
		Category:        "house",
		OfferingID:      "sell",
		PricingChoiceID: "per_m2",
		Price:           num(1500000),
		Currency:        "MXN",
		Title:           "Casa grande en el centro",
	}
	ctx := DeriveContext(p, form)
	patch := BuildPatch(p, form, ctx)

	assert.Equal(t, "sale", patch["commercialMode"])
	assert.Equal(t, "manual_contact", patch["bookingType"])
	assert.Equal(t, "per_m2", patch["pricingModel"])
	assert.Equal(t, float64(1500000), patch["price"])
}

func TestBuildPatchOmitsAbsentKeys(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindVehicle)
	require.NoError(t, err)

	form := &FormState{Category: "car", OfferingID: "sell"}
	patch := BuildPatch(p, form, DeriveContext(p, form))

	assert.NotContains(t, patch, "title")
	assert.NotContains(t, patch, "price")
	assert.NotContains(t, patch, "lat")
	assert.NotContains(t, patch, "media")
}

func TestBuildPatchEncodesSanitizedAttributes(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindService)
	require.NoError(t, err)

	form := &FormState{
		Category:   "maintenance",
		OfferingID: "per_hour",
		Attributes: map[string]any{
			"serviceRadiusKm": 40.0,
			"chefMaxDiners":   12.0, // stale key from a former category
		},
	}
	patch := BuildPatch(p, form, DeriveContext(p, form))

	encoded, ok := patch["attributes"].(string)
	require.True(t, ok)
	decoded := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(encoded), &decoded))
	assert.Equal(t, 40.0, decoded["serviceRadiusKm"])
	assert.NotContains(t, decoded, "chefMaxDiners")
}

func TestRoundTripEveryOffering(t *testing.T) {
	reg := NewRegistry()
	for _, kind := range reg.Kinds() {
		p, err := reg.ResolveProfile(kind)
		require.NoError(t, err)
		for _, o := range p.Offerings {
			form := &FormState{Category: p.Categories[0], OfferingID: o.ID}
			ctx := DeriveContext(p, form)
			patch := BuildPatch(p, form, ctx)

			hydrated, hydratedCtx, err := reg.HydrateRecord(map[string]any(patch))
			require.NoError(t, err, "%s/%s", kind, o.ID)
			assert.Equal(t, string(kind), hydrated.ResourceKind)
			assert.Equal(t, p.Categories[0], hydrated.Category)
			assert.Equal(t, ctx.Mode, hydratedCtx.Mode, "%s/%s", kind, o.ID)
			assert.Equal(t, ctx.Booking, hydratedCtx.Booking, "%s/%s", kind, o.ID)
		}
	}
}

func TestHydrateRebuildsUIOnlyIdentifiers(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindProperty)
	require.NoError(t, err)

	record := map[string]any{
		"resourceKind":   "property",
		"category":       "house",
		"commercialMode": "sale",
		"bookingType":    "manual_contact",
		"pricingModel":   "per_m2",
		"price":          1500000.0,
		// offeringId and pricingChoiceId are deliberately absent: they are
		// never persisted.
	}
	form, ctx := Hydrate(p, record)
	assert.Equal(t, "sell", form.OfferingID)
	assert.Equal(t, "per_m2", form.PricingChoiceID)
	assert.Equal(t, ModeSale, ctx.Mode)
}

func TestHydrateLegacyDJServiceBecomesMusic(t *testing.T) {
	reg := NewRegistry()
	record := map[string]any{
		"resourceKind":   "service",
		"category":       "dj",
		"commercialMode": "rent_hourly",
		"bookingType":    "time_slot",
	}
	form, ctx, err := reg.HydrateRecord(record)
	require.NoError(t, err)
	assert.Equal(t, "music", form.ResourceKind)
	assert.Equal(t, KindMusic, ctx.Kind)
	assert.Equal(t, "dj", form.Category)
}

func TestResolveRecordKindCategoryFallback(t *testing.T) {
	reg := NewRegistry()

	kind, err := reg.ResolveRecordKind(map[string]any{"category": "mariachi"})
	require.NoError(t, err)
	assert.Equal(t, KindMusic, kind)

	_, err = reg.ResolveRecordKind(map[string]any{"category": "submarine"})
	assert.Error(t, err)
}

func TestHydrateToleratesMalformedAttributeText(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindVenue)
	require.NoError(t, err)

	for _, encoded := range []string{"", "{not json", "[1,2,3]"} {
		form, _ := Hydrate(p, map[string]any{
			"resourceKind": "venue",
			"category":     "garden",
			"attributes":   encoded,
		})
		require.NotNil(t, form.Attributes, "attributes %q", encoded)
		assert.Empty(t, form.Attributes)
	}
}

func TestHydratePreservesExplicitBookingOverride(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindProperty)
	require.NoError(t, err)

	// A record saved with a manual-contact override on a short-stay listing
	// keeps that deviation through hydration.
	record := map[string]any{
		"resourceKind":   "property",
		"category":       "house",
		"commercialMode": "rent_short",
		"bookingType":    "manual_contact",
	}
	form, ctx := Hydrate(p, record)
	assert.Equal(t, ModeRentShort, ctx.Mode)
	assert.Equal(t, BookingManualContact, ctx.Booking)
	// No declared offering pairs rent_short with manual contact.
	assert.Empty(t, form.OfferingID)
}
