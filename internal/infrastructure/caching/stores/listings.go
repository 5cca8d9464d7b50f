// Package stores provides the in-memory cache stores backing the caching
// interfaces.
package stores

import (
	"sync"
	"time"

	"github.com/raulbellosom/travel-sub004/internal/domain/entities/listing"
	"github.com/raulbellosom/travel-sub004/pkg/config"
)

type listingEntry struct {
	record    *listing.Record
	expiresAt time.Time
}

// ListingStore is a TTL-bounded in-memory store for listing records plus the
// master ID list.
type ListingStore struct {
	mu      sync.RWMutex
	entries map[string]*listingEntry
	allIDs  []string
	idsSet  bool
	idsExp  time.Time
	ttl     time.Duration
}

// NewListingStore creates a listing store with the configured TTL.
func NewListingStore() *ListingStore {
	return &ListingStore{
		entries: make(map[string]*listingEntry),
		ttl:     config.ListingCacheTTL,
	}
}

// GetListing returns a cached record if present and fresh.
func (s *ListingStore) GetListing(id string) (*listing.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.record, true
}

// SetListing stores a record.
func (s *ListingStore) SetListing(record *listing.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[record.ID] = &listingEntry{
		record:    record,
		expiresAt: time.Now().Add(s.ttl),
	}
}

// GetAllListingIDs returns the cached master ID list if fresh.
func (s *ListingStore) GetAllListingIDs() ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.idsSet || time.Now().After(s.idsExp) {
		return nil, false
	}
	ids := make([]string, len(s.allIDs))
	copy(ids, s.allIDs)
	return ids, true
}

// SetAllListingIDs stores the master ID list.
func (s *ListingStore) SetAllListingIDs(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.allIDs = make([]string, len(ids))
	copy(s.allIDs, ids)
	s.idsSet = true
	s.idsExp = time.Now().Add(s.ttl)
}

// InvalidateListing drops one record and the master list, which may now be
// stale.
func (s *ListingStore) InvalidateListing(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	s.idsSet = false
}

// InvalidateAll clears the store.
func (s *ListingStore) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*listingEntry)
	s.allIDs = nil
	s.idsSet = false
}
