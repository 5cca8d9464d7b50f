package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raulbellosom/travel-sub004/internal/domain/entities/listing"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/observability/logging"
)

func testLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToConsole: false,
		OutputToFile:    false,
	})
	require.NoError(t, err)
	return logger
}

type blockingFetcher struct {
	mu      sync.Mutex
	results map[string][]listing.MediaItem
	err     error
	entered chan struct{}
	release chan struct{}
}

func (f *blockingFetcher) FetchListingMedia(_ context.Context, listingID string) ([]listing.MediaItem, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.results[listingID], nil
}

func TestLoadExistingReturnsStoredMedia(t *testing.T) {
	fetcher := &blockingFetcher{
		results: map[string][]listing.MediaItem{
			"abc": {{ID: "m1", URL: "https://cdn.example.com/m1.jpg", ContentType: "image/jpeg", SizeBytes: 1024}},
		},
	}
	svc := NewMediaService(fetcher, testLogger(t))

	items, current := svc.LoadExisting(context.Background(), "abc")
	assert.True(t, current)
	require.Len(t, items, 1)
	assert.Equal(t, "m1", items[0].ID)
}

func TestLoadExistingFailureDegradesToEmpty(t *testing.T) {
	fetcher := &blockingFetcher{err: errors.New("backend unavailable")}
	svc := NewMediaService(fetcher, testLogger(t))

	items, current := svc.LoadExisting(context.Background(), "abc")
	assert.True(t, current)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestLoadExistingDiscardsSupersededFetch(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	fetcher := &blockingFetcher{
		results: map[string][]listing.MediaItem{
			"old": {{ID: "stale", URL: "https://cdn.example.com/stale.jpg"}},
			"new": {{ID: "fresh", URL: "https://cdn.example.com/fresh.jpg"}},
		},
		entered: entered,
		release: release,
	}
	svc := NewMediaService(fetcher, testLogger(t))

	type outcome struct {
		items   []listing.MediaItem
		current bool
	}
	first := make(chan outcome, 1)
	second := make(chan outcome, 1)

	go func() {
		items, current := svc.LoadExisting(context.Background(), "old")
		first <- outcome{items, current}
	}()
	<-entered

	// The second request supersedes the first while its fetch is still in
	// flight; both are then released.
	go func() {
		items, current := svc.LoadExisting(context.Background(), "new")
		second <- outcome{items, current}
	}()
	<-entered

	close(release)

	firstResult := <-first
	secondResult := <-second

	assert.True(t, secondResult.current)
	require.Len(t, secondResult.items, 1)
	assert.Equal(t, "fresh", secondResult.items[0].ID)

	assert.False(t, firstResult.current)
	assert.Nil(t, firstResult.items)
}

func TestRepositoryFetcherMissingListingYieldsEmpty(t *testing.T) {
	repo := &stubListingRepo{}
	fetcher := NewRepositoryMediaFetcher(repo)

	items, err := fetcher.FetchListingMedia(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, items)
}
