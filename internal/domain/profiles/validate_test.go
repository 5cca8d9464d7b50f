package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raulbellosom/travel-sub004/internal/domain/entities/listing"
)

func validateStep(t *testing.T, kind Kind, stepID string, form *FormState) StepResult {
	t.Helper()
	reg := NewRegistry()
	p, err := reg.ResolveProfile(kind)
	require.NoError(t, err)
	ctx := DeriveContext(p, form)
	fields := FieldsForStep(p, nil, ctx, stepID)
	return ValidateStep(p, stepID, fields, form, ctx, nil)
}

func TestValidateRequiredFields(t *testing.T) {
	form := &FormState{Category: "house", OfferingID: "sell"}
	result := validateStep(t, KindProperty, StepDescribe, form)
	assert.False(t, result.OK)
	assert.Contains(t, result.Errors, "describe.title")
	assert.Contains(t, result.Errors, "describe.description")
	// Photos are optional; no error for an empty collection.
	assert.NotContains(t, result.Errors, "describe.photos")
}

func TestValidateMinimumLength(t *testing.T) {
	form := &FormState{
		Category:    "house",
		OfferingID:  "sell",
		Title:       "short",
		Description: "also too short",
	}
	result := validateStep(t, KindProperty, StepDescribe, form)
	assert.Contains(t, result.Errors, "describe.title")
	assert.Contains(t, result.Errors, "describe.description")
}

func TestValidateNumericTypeAndRange(t *testing.T) {
	form := &FormState{
		Category:   "house",
		OfferingID: "sell",
		Attributes: map[string]any{
			"areaM2":   "not a number",
			"bedrooms": 99.0,
		},
	}
	result := validateStep(t, KindProperty, StepDetails, form)
	assert.Contains(t, result.Errors, "details.attributes.areaM2")
	assert.Contains(t, result.Errors, "details.attributes.bedrooms")
}

func TestValidateTimePattern(t *testing.T) {
	base := map[string]any{
		"maxParticipants": 10.0,
		"durationMinutes": 60.0,
	}

	for value, valid := range map[string]bool{
		"09:30": true,
		"23:59": true,
		"24:00": false,
		"9:30":  false,
		"09:60": false,
		"0930":  false,
	} {
		attrs := map[string]any{"startTime": value}
		for k, v := range base {
			attrs[k] = v
		}
		form := &FormState{Category: "tour", OfferingID: "per_person", Attributes: attrs}
		result := validateStep(t, KindExperience, StepDetails, form)
		_, hasErr := result.Errors["details.attributes.startTime"]
		assert.Equal(t, !valid, hasErr, "startTime %q", value)
	}
}

func TestValidateURLMustBeAbsolute(t *testing.T) {
	form := &FormState{
		Category:   "chef",
		OfferingID: "per_hour",
		Attributes: map[string]any{
			"chefMaxDiners": 12.0,
			"menuUrl":       "menus/fall.pdf",
		},
	}
	result := validateStep(t, KindService, StepDetails, form)
	assert.Contains(t, result.Errors, "details.attributes.menuUrl")

	form.Attributes["menuUrl"] = "https://example.com/menus/fall.pdf"
	result = validateStep(t, KindService, StepDetails, form)
	assert.NotContains(t, result.Errors, "details.attributes.menuUrl")
}

func TestValidateSingleSelectEnforcesOptions(t *testing.T) {
	form := &FormState{
		Category:        "house",
		OfferingID:      "sell",
		PricingChoiceID: "per_night", // not selectable for a sale
		Price:           num(100),
		Currency:        "MXN",
	}
	result := validateStep(t, KindProperty, StepPrice, form)
	assert.Contains(t, result.Errors, "price.pricingChoiceId")
}

func TestValidateImageCollectionBucketsPerReason(t *testing.T) {
	form := &FormState{
		Category:    "house",
		OfferingID:  "sell",
		Title:       "Casa grande en el centro",
		Description: "Amplia casa con patio, cocina equipada y excelente ubicación en el centro histórico.",
		Photos: []listing.MediaItem{
			{URL: "a.jpg", ContentType: "image/jpeg", SizeBytes: 1 << 20},
			{URL: "b.tiff", ContentType: "image/tiff", SizeBytes: 1 << 20},
			{URL: "c.jpg", ContentType: "image/jpeg", SizeBytes: MaxImageBytes + 1},
		},
	}
	result := validateStep(t, KindProperty, StepDescribe, form)

	// Two rejects, reported per reason; the whole field is not failed
	// because the count stays under the cap.
	assert.NotContains(t, result.Errors, "describe.photos")
	rejections := result.Media["describe.photos"]
	assert.Equal(t, 1, rejections.InvalidType)
	assert.Equal(t, 1, rejections.Oversize)
}

func TestValidateImageCollectionMaxCount(t *testing.T) {
	photos := make([]listing.MediaItem, MaxImageCount+1)
	for i := range photos {
		photos[i] = listing.MediaItem{URL: "p.jpg", ContentType: "image/jpeg", SizeBytes: 1024}
	}
	form := &FormState{
		Category:    "house",
		OfferingID:  "sell",
		Title:       "Casa grande en el centro",
		Description: "Amplia casa con patio, cocina equipada y excelente ubicación en el centro histórico.",
		Photos:      photos,
	}
	result := validateStep(t, KindProperty, StepDescribe, form)
	assert.Contains(t, result.Errors, "describe.photos")
}

func TestValidateCrossFieldBookingUnits(t *testing.T) {
	form := &FormState{
		Category:   "chef",
		OfferingID: "per_hour",
		Attributes: map[string]any{
			"bookingMinUnits": 5.0,
			"bookingMaxUnits": 3.0,
		},
	}
	result := validateStep(t, KindService, StepConditions, form)
	assert.False(t, result.OK)
	assert.Contains(t, result.Errors, "conditions.attributes.bookingMinUnits")
	// No unrelated field in the step is flagged.
	assert.NotContains(t, result.Errors, "conditions.attributes.bookingMaxUnits")
	assert.Len(t, result.Errors, 1)
}

func TestValidateCrossFieldStayNights(t *testing.T) {
	form := &FormState{
		Category:   "house",
		OfferingID: "rent_short",
		Attributes: map[string]any{
			"minStayNights": 10.0,
			"maxStayNights": 2.0,
		},
	}
	result := validateStep(t, KindProperty, StepConditions, form)
	assert.Contains(t, result.Errors, "conditions.attributes.minStayNights")
}

func TestValidateSkipsSuppressedFields(t *testing.T) {
	// bookingMinUnits is suppressed outside time-slot contexts, so a junk
	// value there cannot fail a fixed-quote document.
	form := &FormState{
		Category:   "chef",
		OfferingID: "fixed_quote",
		Attributes: map[string]any{"bookingMinUnits": "junk"},
	}
	result := validateStep(t, KindService, StepConditions, form)
	assert.NotContains(t, result.Errors, "conditions.attributes.bookingMinUnits")
}

func TestValidateDocumentMergesAndFindsFirstOffendingStep(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindProperty)
	require.NoError(t, err)

	form := &FormState{
		Category:        "house",
		OfferingID:      "sell",
		Title:           "ok", // too short → describe
		Description:     "Amplia casa con patio, cocina equipada y excelente ubicación en el centro histórico.",
		PricingChoiceID: "per_m2",
		Currency:        "MXN",
		// price missing → price step
		Address: "Av. Juárez 10", City: "Oaxaca", State: "OAX",
		Attributes: map[string]any{"areaM2": 240.0},
	}
	result := ValidateDocument(p, form, nil)
	assert.False(t, result.OK)
	assert.Contains(t, result.Errors, "describe.title")
	assert.Contains(t, result.Errors, "price.price")
	// describe precedes price in the narrative order.
	assert.Equal(t, StepDescribe, result.FirstOffendingStep)
}

func TestValidateDocumentOKOnCompleteForm(t *testing.T) {
	reg := NewRegistry()
	p, err := reg.ResolveProfile(KindProperty)
	require.NoError(t, err)

	form := &FormState{
		Category:        "house",
		OfferingID:      "sell",
		Title:           "Casa grande en el centro",
		Description:     "Amplia casa con patio, cocina equipada y excelente ubicación en el centro histórico.",
		PricingChoiceID: "per_m2",
		Price:           num(1500000),
		Currency:        "MXN",
		Address:         "Av. Juárez 10",
		City:            "Oaxaca",
		State:           "OAX",
		Attributes:      map[string]any{"areaM2": 240.0, "bedrooms": 4.0},
	}
	result := ValidateDocument(p, form, nil)
	assert.True(t, result.OK, "unexpected errors: %v", result.Errors)
	assert.Empty(t, result.FirstOffendingStep)
}
