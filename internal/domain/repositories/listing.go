// Package repositories defines persistence contracts for the domain layer.
package repositories

import (
	"github.com/raulbellosom/travel-sub004/internal/domain/entities/listing"
)

// ListingFilters narrows listing queries. Zero-value fields are ignored.
type ListingFilters struct {
	ResourceKind string
	Category     string
	Status       string
	City         string
}

// ListingRepository persists listing records.
type ListingRepository interface {
	FindByID(id string) (*listing.Record, error)
	FindByIDs(ids []string) ([]*listing.Record, error)
	FindAllIDs() ([]string, error)
	FindByKind(kind string) ([]*listing.Record, error)
	FindByCategory(category string) ([]*listing.Record, error)
	FindByFilters(filters ListingFilters) ([]*listing.Record, error)
	Store(record *listing.Record) error
	Update(record *listing.Record) error
	Delete(id string) error
}

// PaymentSessionRepository persists checkout sessions.
type PaymentSessionRepository interface {
	FindByID(id string) (*listing.PaymentSession, error)
	FindByListing(listingID string) ([]*listing.PaymentSession, error)
	Store(session *listing.PaymentSession) error
	UpdateStatus(id, status string) error
}

// ProposalRepository persists booking proposals.
type ProposalRepository interface {
	FindByID(id string) (*listing.Proposal, error)
	FindByListing(listingID string) ([]*listing.Proposal, error)
	Store(proposal *listing.Proposal) error
	Respond(id, status, responseMessage string) error
}
