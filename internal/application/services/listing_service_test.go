package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raulbellosom/travel-sub004/internal/domain/entities/listing"
	"github.com/raulbellosom/travel-sub004/internal/domain/profiles"
	"github.com/raulbellosom/travel-sub004/internal/domain/repositories"
)

// stubListingRepo is an in-memory ListingRepository for service tests.
type stubListingRepo struct {
	records map[string]*listing.Record
}

func (r *stubListingRepo) FindByID(id string) (*listing.Record, error) {
	if r.records == nil {
		return nil, nil
	}
	return r.records[id], nil
}

func (r *stubListingRepo) FindByIDs(ids []string) ([]*listing.Record, error) {
	var out []*listing.Record
	for _, id := range ids {
		if rec, ok := r.records[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *stubListingRepo) FindAllIDs() ([]string, error) {
	var ids []string
	for id := range r.records {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *stubListingRepo) FindByKind(kind string) ([]*listing.Record, error) {
	return r.FindByFilters(repositories.ListingFilters{ResourceKind: kind})
}

func (r *stubListingRepo) FindByCategory(category string) ([]*listing.Record, error) {
	return r.FindByFilters(repositories.ListingFilters{Category: category})
}

func (r *stubListingRepo) FindByFilters(filters repositories.ListingFilters) ([]*listing.Record, error) {
	var out []*listing.Record
	for _, rec := range r.records {
		if filters.ResourceKind != "" && rec.ResourceKind != filters.ResourceKind {
			continue
		}
		if filters.Category != "" && rec.Category != filters.Category {
			continue
		}
		if filters.Status != "" && rec.Status != filters.Status {
			continue
		}
		if filters.City != "" && rec.City != filters.City {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *stubListingRepo) Store(record *listing.Record) error {
	if r.records == nil {
		r.records = make(map[string]*listing.Record)
	}
	r.records[record.ID] = record
	return nil
}

func (r *stubListingRepo) Update(record *listing.Record) error {
	r.records[record.ID] = record
	return nil
}

func (r *stubListingRepo) Delete(id string) error {
	delete(r.records, id)
	return nil
}

func newListingService(t *testing.T) (*ListingService, *stubListingRepo) {
	t.Helper()
	repo := &stubListingRepo{}
	svc := NewListingService(profiles.NewRegistry(), EnglishLabels(), repo, testLogger(t))
	return svc, repo
}

func completePropertyForm() *profiles.FormState {
	price := 1500000.0
	return &profiles.FormState{
		ResourceKind:    "property",
		Category:        "house",
		OfferingID:      "sell",
		PricingChoiceID: "total",
		Title:           "Bright family house",
		Description:     "Three bedrooms, two baths, close to schools, parks and the city center.",
		Price:           &price,
		Currency:        "MXN",
		Address:         "Av. Hidalgo 123",
		City:            "Guadalajara",
		State:           "Jalisco",
		Photos: []listing.MediaItem{
			{ID: "p1", URL: "https://cdn.example.com/p1.jpg", ContentType: "image/jpeg", SizeBytes: 2048},
		},
		Attributes: map[string]any{"bedrooms": 3, "bathrooms": 2},
	}
}

func TestCreatePersistsValidatedDraft(t *testing.T) {
	svc, repo := newListingService(t)

	record, result, err := svc.Create("property", completePropertyForm())
	require.NoError(t, err)
	require.True(t, result.OK)
	require.NotNil(t, record)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, listing.StatusDraft, record.Status)
	assert.Equal(t, "property", record.ResourceKind)
	assert.Equal(t, "fixed_total", record.PricingModel)
	assert.Equal(t, "sale", record.CommercialMode)
	assert.Equal(t, "manual_contact", record.BookingType)
	assert.Contains(t, repo.records, record.ID)
}

func TestCreateRejectsIncompleteForm(t *testing.T) {
	svc, repo := newListingService(t)

	form := completePropertyForm()
	form.Title = "tiny"

	record, result, err := svc.Create("property", form)
	require.NoError(t, err)
	assert.Nil(t, record)
	assert.False(t, result.OK)
	assert.Equal(t, "describe", result.FirstOffendingStep)
	assert.Empty(t, repo.records)
}

func TestUpdateValidatesAgainstStoredKind(t *testing.T) {
	svc, _ := newListingService(t)

	record, _, err := svc.Create("property", completePropertyForm())
	require.NoError(t, err)

	form := completePropertyForm()
	form.Title = "Renovated family house"
	updated, result, err := svc.Update(record.ID, form)
	require.NoError(t, err)
	require.True(t, result.OK)
	assert.Equal(t, "Renovated family house", updated.Title)
	assert.NotNil(t, updated.Changed)
}

func TestPublishFlipsStatus(t *testing.T) {
	svc, _ := newListingService(t)

	record, _, err := svc.Create("property", completePropertyForm())
	require.NoError(t, err)

	published, result, err := svc.Publish(record.ID)
	require.NoError(t, err)
	require.True(t, result.OK)
	assert.Equal(t, listing.StatusPublished, published.Status)
}

func TestLoadForEditRebuildsFormState(t *testing.T) {
	svc, _ := newListingService(t)

	record, _, err := svc.Create("property", completePropertyForm())
	require.NoError(t, err)

	form, ctx, err := svc.LoadForEdit(record.ID)
	require.NoError(t, err)

	assert.Equal(t, "property", form.ResourceKind)
	assert.Equal(t, "sell", form.OfferingID)
	assert.Equal(t, "total", form.PricingChoiceID)
	assert.Equal(t, profiles.ModeSale, ctx.Mode)
	assert.Equal(t, float64(3), form.Attributes["bedrooms"])
}

func TestLoadForEditMissingListing(t *testing.T) {
	svc, _ := newListingService(t)

	_, _, err := svc.LoadForEdit("nope")
	assert.Error(t, err)
}
