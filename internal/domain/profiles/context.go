package profiles

import (
	"strings"

	"github.com/raulbellosom/travel-sub004/internal/domain/entities/listing"
)

// FormState is the mutable record of all wizard answers. Root keys are flat;
// kind-specific answers live in the nested Attributes map, which is always a
// plain key→scalar map while held in memory (never pre-encoded text).
type FormState struct {
	ResourceKind    string              `json:"resourceKind,omitempty"`
	Category        string              `json:"category,omitempty"`
	OfferingID      string              `json:"offeringId,omitempty"`
	CommercialMode  string              `json:"commercialMode,omitempty"`
	BookingType     string              `json:"bookingType,omitempty"`
	PricingChoiceID string              `json:"pricingChoiceId,omitempty"`
	Title           string              `json:"title,omitempty"`
	Description     string              `json:"description,omitempty"`
	Price           *float64            `json:"price,omitempty"`
	Currency        string              `json:"currency,omitempty"`
	Address         string              `json:"address,omitempty"`
	City            string              `json:"city,omitempty"`
	State           string              `json:"state,omitempty"`
	PostalCode      string              `json:"postalCode,omitempty"`
	Lat             *float64            `json:"lat,omitempty"`
	Lng             *float64            `json:"lng,omitempty"`
	Photos          []listing.MediaItem `json:"photos,omitempty"`
	Tags            []string            `json:"tags,omitempty"`
	Attributes      map[string]any      `json:"attributes,omitempty"`
}

// Value resolves a field key against the form: either a root key or an
// "attributes.<name>" key. Missing keys resolve to nil.
func (f *FormState) Value(key string) any {
	if name, ok := strings.CutPrefix(key, "attributes."); ok {
		if f.Attributes == nil {
			return nil
		}
		return f.Attributes[name]
	}

	switch key {
	case "resourceKind":
		return f.ResourceKind
	case "category":
		return f.Category
	case "offeringId":
		return f.OfferingID
	case "commercialMode":
		return f.CommercialMode
	case "bookingType":
		return f.BookingType
	case "pricingChoiceId":
		return f.PricingChoiceID
	case "title":
		return f.Title
	case "description":
		return f.Description
	case "price":
		if f.Price == nil {
			return nil
		}
		return *f.Price
	case "currency":
		return f.Currency
	case "address":
		return f.Address
	case "city":
		return f.City
	case "state":
		return f.State
	case "postalCode":
		return f.PostalCode
	case "lat":
		if f.Lat == nil {
			return nil
		}
		return *f.Lat
	case "lng":
		if f.Lng == nil {
			return nil
		}
		return *f.Lng
	case "photos":
		return f.Photos
	case "tags":
		return f.Tags
	}
	return nil
}

// Context is the derived commercial/booking context. It is a pure function of
// (Profile, FormState); empty fields mean "not yet chosen", never an error.
type Context struct {
	Kind     Kind           `json:"resourceKind"`
	Category string         `json:"category,omitempty"`
	Mode     CommercialMode `json:"commercialMode,omitempty"`
	Booking  BookingType    `json:"bookingType,omitempty"`
}

// ShortStay reports whether the context is a short-term rental.
func (c Context) ShortStay() bool { return c.Mode == ModeRentShort }

// Hourly reports whether the context is an hourly rental.
func (c Context) Hourly() bool { return c.Mode == ModeRentHourly }

// TimeSlot reports whether availability is reserved in time slots.
func (c Context) TimeSlot() bool { return c.Booking == BookingTimeSlot }

// DeriveContext computes the context for the current answers. The offering
// supplies commercialMode/bookingType, but explicit form values win over it,
// so a saved record may deviate from the default offering mapping without
// losing its offering identity. Unresolved identifiers yield empty fields and
// are surfaced through validation, not here.
func DeriveContext(p *Profile, form *FormState) Context {
	ctx := Context{Kind: p.Kind, Category: form.Category}
	if form.ResourceKind != "" {
		ctx.Kind = Kind(form.ResourceKind)
	}

	if form.OfferingID != "" {
		if o, ok := p.OfferingByID(form.OfferingID); ok {
			ctx.Mode = o.Mode
			ctx.Booking = o.Booking
		}
	}
	if form.CommercialMode != "" {
		ctx.Mode = CommercialMode(form.CommercialMode)
	}
	if form.BookingType != "" {
		ctx.Booking = BookingType(form.BookingType)
	}

	return ctx
}
