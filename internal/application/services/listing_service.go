package services

import (
	"fmt"
	"time"

	"github.com/raulbellosom/travel-sub004/internal/domain/entities/listing"
	"github.com/raulbellosom/travel-sub004/internal/domain/profiles"
	"github.com/raulbellosom/travel-sub004/internal/domain/repositories"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/observability/logging"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/security"
)

// ListingService orchestrates the save path of the publish wizard: full
// document validation, patch serialization and persistence, plus hydration
// of stored records back into editable form state.
type ListingService struct {
	registry *profiles.Registry
	labels   profiles.LabelResolver
	repo     repositories.ListingRepository
	logger   *logging.ChanneledLogger
}

// NewListingService creates a new listing service.
func NewListingService(registry *profiles.Registry, labels profiles.LabelResolver, repo repositories.ListingRepository, logger *logging.ChanneledLogger) *ListingService {
	return &ListingService{
		registry: registry,
		labels:   labels,
		repo:     repo,
		logger:   logger,
	}
}

// Create validates the whole form and, when it passes, persists a new draft
// listing. On validation failure the result carries the per-field errors and
// no record is written.
func (s *ListingService) Create(kind string, form *profiles.FormState) (*listing.Record, profiles.DocumentResult, error) {
	start := time.Now()

	p, err := s.registry.ResolveProfile(profiles.Kind(kind))
	if err != nil {
		return nil, profiles.DocumentResult{}, err
	}

	result := profiles.ValidateDocument(p, form, s.labels)
	if !result.OK {
		s.logger.Listing().Debug("Create rejected by validation", "kind", kind, "errors", len(result.Errors), "firstStep", result.FirstOffendingStep)
		return nil, result, nil
	}

	ctx := profiles.DeriveContext(p, form)
	patch := profiles.BuildPatch(p, form, ctx)

	now := time.Now().UTC()
	record := &listing.Record{
		ID:      security.GenerateULID(),
		Status:  listing.StatusDraft,
		Created: now,
	}
	applyPatch(record, patch)

	if err := s.repo.Store(record); err != nil {
		return nil, result, fmt.Errorf("failed to store listing: %w", err)
	}

	s.logger.Listing().Info("Listing created", "id", record.ID, "kind", record.ResourceKind, "category", record.Category, "duration", time.Since(start))
	return record, result, nil
}

// Update validates the form against the stored record's kind and overwrites
// the record's patched fields.
func (s *ListingService) Update(id string, form *profiles.FormState) (*listing.Record, profiles.DocumentResult, error) {
	record, err := s.repo.FindByID(id)
	if err != nil {
		return nil, profiles.DocumentResult{}, err
	}
	if record == nil {
		return nil, profiles.DocumentResult{}, fmt.Errorf("listing %s not found", id)
	}

	kind, err := s.registry.ResolveRecordKind(profiles.RecordDocument(record))
	if err != nil {
		return nil, profiles.DocumentResult{}, err
	}
	p, err := s.registry.ResolveProfile(kind)
	if err != nil {
		return nil, profiles.DocumentResult{}, err
	}

	result := profiles.ValidateDocument(p, form, s.labels)
	if !result.OK {
		s.logger.Listing().Debug("Update rejected by validation", "id", id, "errors", len(result.Errors), "firstStep", result.FirstOffendingStep)
		return nil, result, nil
	}

	ctx := profiles.DeriveContext(p, form)
	patch := profiles.BuildPatch(p, form, ctx)

	now := time.Now().UTC()
	record.Changed = &now
	applyPatch(record, patch)

	if err := s.repo.Update(record); err != nil {
		return nil, result, fmt.Errorf("failed to update listing: %w", err)
	}

	s.logger.Listing().Info("Listing updated", "id", record.ID, "kind", record.ResourceKind)
	return record, result, nil
}

// Publish re-validates the stored record end to end and flips its status.
// A draft with answers that no longer pass cannot go live.
func (s *ListingService) Publish(id string) (*listing.Record, profiles.DocumentResult, error) {
	record, err := s.repo.FindByID(id)
	if err != nil {
		return nil, profiles.DocumentResult{}, err
	}
	if record == nil {
		return nil, profiles.DocumentResult{}, fmt.Errorf("listing %s not found", id)
	}

	form, _, err := s.registry.HydrateRecord(profiles.RecordDocument(record))
	if err != nil {
		return nil, profiles.DocumentResult{}, err
	}

	p, err := s.registry.ResolveProfile(profiles.Kind(form.ResourceKind))
	if err != nil {
		return nil, profiles.DocumentResult{}, err
	}

	result := profiles.ValidateDocument(p, form, s.labels)
	if !result.OK {
		s.logger.Listing().Debug("Publish rejected by validation", "id", id, "firstStep", result.FirstOffendingStep)
		return nil, result, nil
	}

	now := time.Now().UTC()
	record.Status = listing.StatusPublished
	record.Changed = &now

	if err := s.repo.Update(record); err != nil {
		return nil, result, fmt.Errorf("failed to publish listing: %w", err)
	}

	s.logger.Listing().Info("Listing published", "id", record.ID)
	return record, result, nil
}

// Get returns one listing by ID, or nil when it does not exist.
func (s *ListingService) Get(id string) (*listing.Record, error) {
	return s.repo.FindByID(id)
}

// List returns listings matching the filters.
func (s *ListingService) List(filters repositories.ListingFilters) ([]*listing.Record, error) {
	return s.repo.FindByFilters(filters)
}

// Delete removes a listing.
func (s *ListingService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.logger.Listing().Info("Listing deleted", "id", id)
	return nil
}

// LoadForEdit hydrates a stored record back into wizard form state. The
// UI-only offering and pricing choice IDs are re-derived from the persisted
// columns.
func (s *ListingService) LoadForEdit(id string) (*profiles.FormState, profiles.Context, error) {
	record, err := s.repo.FindByID(id)
	if err != nil {
		return nil, profiles.Context{}, err
	}
	if record == nil {
		return nil, profiles.Context{}, fmt.Errorf("listing %s not found", id)
	}

	return s.registry.HydrateRecord(profiles.RecordDocument(record))
}

// applyPatch copies the canonical patch onto a record. Keys absent from the
// patch leave the record's current values alone.
func applyPatch(record *listing.Record, patch profiles.Patch) {
	if v, ok := patch["resourceKind"].(string); ok {
		record.ResourceKind = v
	}
	if v, ok := patch["category"].(string); ok {
		record.Category = v
	}
	if v, ok := patch["title"].(string); ok {
		record.Title = v
	}
	if v, ok := patch["description"].(string); ok {
		record.Description = v
	}
	if v, ok := patch["commercialMode"].(string); ok {
		record.CommercialMode = v
	}
	if v, ok := patch["bookingType"].(string); ok {
		record.BookingType = v
	}
	if v, ok := patch["pricingModel"].(string); ok {
		record.PricingModel = v
	}
	if v, ok := patch["price"].(float64); ok {
		record.Price = &v
	}
	if v, ok := patch["currency"].(string); ok {
		record.Currency = v
	}
	if v, ok := patch["address"].(string); ok {
		record.Address = v
	}
	if v, ok := patch["city"].(string); ok {
		record.City = v
	}
	if v, ok := patch["state"].(string); ok {
		record.State = v
	}
	if v, ok := patch["postalCode"].(string); ok {
		record.PostalCode = v
	}
	if v, ok := patch["lat"].(float64); ok {
		record.Lat = &v
	}
	if v, ok := patch["lng"].(float64); ok {
		record.Lng = &v
	}
	if v, ok := patch["media"].([]listing.MediaItem); ok {
		record.Media = v
	}
	if v, ok := patch["tags"].([]string); ok {
		record.Tags = v
	}
	if v, ok := patch["attributes"].(string); ok {
		record.Attributes = v
	}
}
