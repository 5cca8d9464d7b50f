// Package interfaces defines the caching contracts consumed by repositories.
package interfaces

import "github.com/raulbellosom/travel-sub004/internal/domain/entities/listing"

// ListingCache is the cache-first contract for listing records. Repositories
// consult it before the database and refresh it after every load or write.
type ListingCache interface {
	GetListing(id string) (*listing.Record, bool)
	SetListing(record *listing.Record)
	GetAllListingIDs() ([]string, bool)
	SetAllListingIDs(ids []string)
	InvalidateListing(id string)
	InvalidateAll()
}
