// Package listing defines the application's core listing-related domain entities.
package listing

import "time"

// Record is the canonical persisted shape shared by all six resource kinds.
// Kind-specific answers live in the Attributes column as opaque JSON text.
type Record struct {
	ID             string      `json:"id"`
	ResourceKind   string      `json:"resourceKind"`
	Category       string      `json:"category"`
	Title          string      `json:"title"`
	Description    string      `json:"description,omitempty"`
	CommercialMode string      `json:"commercialMode,omitempty"`
	BookingType    string      `json:"bookingType,omitempty"`
	PricingModel   string      `json:"pricingModel,omitempty"`
	Price          *float64    `json:"price,omitempty"`
	Currency       string      `json:"currency,omitempty"`
	Address        string      `json:"address,omitempty"`
	City           string      `json:"city,omitempty"`
	State          string      `json:"state,omitempty"`
	PostalCode     string      `json:"postalCode,omitempty"`
	Lat            *float64    `json:"lat,omitempty"`
	Lng            *float64    `json:"lng,omitempty"`
	Media          []MediaItem `json:"media,omitempty"`
	Tags           []string    `json:"tags,omitempty"`
	Attributes     string      `json:"attributes,omitempty"`
	Status         string      `json:"status"`
	Created        time.Time   `json:"created"`
	Changed        *time.Time  `json:"changed,omitempty"`
}

// MediaItem is a stored or pending media reference attached to a listing.
type MediaItem struct {
	ID             string `json:"id,omitempty"`
	URL            string `json:"url"`
	ContentType    string `json:"contentType"`
	SizeBytes      int64  `json:"sizeBytes"`
	AltDescription string `json:"altDescription,omitempty"`
}

// PaymentSession is a checkout session created for a listing transaction.
type PaymentSession struct {
	ID          string    `json:"id"`
	ListingID   string    `json:"listingId"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	SuccessURL  string    `json:"successUrl"`
	CancelURL   string    `json:"cancelUrl"`
	CheckoutURL string    `json:"checkoutUrl"`
	Status      string    `json:"status"`
	Created     time.Time `json:"created"`
}

// Proposal is an inquiry sent by a visitor that the listing owner can
// accept or decline.
type Proposal struct {
	ID              string     `json:"id"`
	ListingID       string     `json:"listingId"`
	SenderName      string     `json:"senderName"`
	SenderEmail     string     `json:"senderEmail"`
	Message         string     `json:"message,omitempty"`
	Status          string     `json:"status"`
	ResponseMessage string     `json:"responseMessage,omitempty"`
	Created         time.Time  `json:"created"`
	Responded       *time.Time `json:"responded,omitempty"`
}

// Proposal statuses.
const (
	ProposalPending  = "pending"
	ProposalAccepted = "accepted"
	ProposalDeclined = "declined"
)

// Listing statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)
