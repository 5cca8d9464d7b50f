package services

import (
	"context"
	"sync"

	"github.com/raulbellosom/travel-sub004/internal/domain/entities/listing"
	"github.com/raulbellosom/travel-sub004/internal/domain/repositories"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/observability/logging"
	"github.com/raulbellosom/travel-sub004/pkg/config"
)

// MediaFetcher loads the stored media items of a listing.
type MediaFetcher interface {
	FetchListingMedia(ctx context.Context, listingID string) ([]listing.MediaItem, error)
}

// MediaService loads existing media when a listing is reopened for editing.
// Fetches can overlap when the editor switches listings quickly; only the
// most recent request may deliver its result, older in-flight fetches are
// discarded on return. A failed fetch degrades to an empty list so the
// editor opens with no pre-filled photos rather than an error.
type MediaService struct {
	fetcher MediaFetcher
	logger  *logging.ChanneledLogger

	mu         sync.Mutex
	generation uint64
}

// NewMediaService creates a new media service.
func NewMediaService(fetcher MediaFetcher, logger *logging.ChanneledLogger) *MediaService {
	return &MediaService{
		fetcher: fetcher,
		logger:  logger,
	}
}

// LoadExisting fetches a listing's stored media. The boolean reports whether
// the result is current; a stale result superseded by a newer call returns
// false and must be ignored by the caller.
func (s *MediaService) LoadExisting(ctx context.Context, listingID string) ([]listing.MediaItem, bool) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	items, err := s.fetchWithRetry(ctx, listingID)
	if err != nil {
		s.logger.Media().Warn("Failed to load existing media, treating as empty", "listingId", listingID, "error", err.Error())
		items = []listing.MediaItem{}
	}
	if items == nil {
		items = []listing.MediaItem{}
	}

	s.mu.Lock()
	current := gen == s.generation
	s.mu.Unlock()

	if !current {
		s.logger.Media().Debug("Discarding stale media fetch", "listingId", listingID)
		return nil, false
	}
	return items, true
}

func (s *MediaService) fetchWithRetry(ctx context.Context, listingID string) ([]listing.MediaItem, error) {
	items, err := s.fetcher.FetchListingMedia(ctx, listingID)
	for attempt := 0; err != nil && attempt < config.MediaFetchRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		items, err = s.fetcher.FetchListingMedia(ctx, listingID)
	}
	return items, err
}

// RepositoryMediaFetcher reads listing media straight from the repository.
type RepositoryMediaFetcher struct {
	repo repositories.ListingRepository
}

// NewRepositoryMediaFetcher creates a fetcher backed by the listing repository.
func NewRepositoryMediaFetcher(repo repositories.ListingRepository) *RepositoryMediaFetcher {
	return &RepositoryMediaFetcher{repo: repo}
}

// FetchListingMedia returns the stored media of a listing, empty when the
// listing does not exist.
func (f *RepositoryMediaFetcher) FetchListingMedia(_ context.Context, listingID string) ([]listing.MediaItem, error) {
	record, err := f.repo.FindByID(listingID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return []listing.MediaItem{}, nil
	}
	return record.Media, nil
}
