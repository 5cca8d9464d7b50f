// Package profiles implements the resource-profile engine: for each of the
// six resource kinds it derives a commercial/booking context from the user's
// answers, computes which wizard steps and fields apply to that context,
// validates answers against context-dependent rules, and serializes the
// result into the canonical record shape shared by all kinds.
//
// Everything in this package is pure data-in/data-out logic. It performs no
// I/O, holds no state between calls, and is safe for concurrent use.
package profiles

import "fmt"

// Kind identifies one of the six top-level resource kinds.
type Kind string

const (
	KindProperty   Kind = "property"
	KindService    Kind = "service"
	KindMusic      Kind = "music"
	KindVehicle    Kind = "vehicle"
	KindExperience Kind = "experience"
	KindVenue      Kind = "venue"
)

// CommercialMode is the transaction shape of an offering.
type CommercialMode string

const (
	ModeSale       CommercialMode = "sale"
	ModeRent       CommercialMode = "rent"
	ModeRentShort  CommercialMode = "rent_short"
	ModeRentHourly CommercialMode = "rent_hourly"
)

// BookingType is how availability is reserved for an offering.
type BookingType string

const (
	BookingManualContact BookingType = "manual_contact"
	BookingDateRange     BookingType = "date_range"
	BookingTimeSlot      BookingType = "time_slot"
)

// PricingModel is the canonical pricing value persisted on a record.
type PricingModel string

const (
	PricingFixedTotal PricingModel = "fixed_total"
	PricingPerM2      PricingModel = "per_m2"
	PricingPerMonth   PricingModel = "per_month"
	PricingPerNight   PricingModel = "per_night"
	PricingPerDay     PricingModel = "per_day"
	PricingPerHour    PricingModel = "per_hour"
	PricingPerEvent   PricingModel = "per_event"
	PricingPerPerson  PricingModel = "per_person"
	PricingPerGroup   PricingModel = "per_group"
)

// Offering pairs a commercial mode with a booking type behind a single
// human-facing choice. Offering IDs are unique within a profile.
type Offering struct {
	ID      string         `json:"offeringId"`
	Mode    CommercialMode `json:"commercialMode"`
	Booking BookingType    `json:"bookingType"`
}

// LabelResolver supplies human-readable text for label keys. The engine never
// hardcodes display text; a failing resolver must degrade to a usable value
// (the default implementation returns the key itself).
type LabelResolver interface {
	Resolve(key string, args ...any) string
}

// keyResolver is the degradation fallback: every lookup yields the key.
type keyResolver struct{}

func (keyResolver) Resolve(key string, args ...any) string { return key }

// DefaultLabels returns a resolver that echoes label keys, used whenever the
// real label collaborator is unavailable.
func DefaultLabels() LabelResolver { return keyResolver{} }

// pricingChoice maps a human pricing-choice id to its canonical model.
type pricingChoice struct {
	id    string
	model PricingModel
}

// crossRule declares a paired-bounds constraint between two numeric fields of
// one step: the value under MinKey must not exceed the value under MaxKey.
type crossRule struct {
	step     string
	minKey   string
	maxKey   string
	labelKey string
}

// Profile is the per-kind bundle of categories, offerings, pricing choices,
// context-dependent field lists and the attribute allow-list. Profiles are
// plain data/function bundles; the six kinds share this contract, not any
// behavior.
type Profile struct {
	Kind       Kind
	Categories []string
	Offerings  []Offering

	pricingChoices []pricingChoice
	// choicesFor restricts selectable pricing-choice ids per (category, mode).
	choicesFor func(category string, mode CommercialMode) []string
	// defaultChoice is the reverse-inference fallback per commercial mode.
	defaultChoice map[CommercialMode]string

	// fieldsFor returns the field list of a step under a context. An empty
	// list means the step is inactive for that context.
	fieldsFor func(ctx Context, stepID string) []Field
	// allowedAttributes is the effective attribute allow-list for a context.
	allowedAttributes func(ctx Context) []string

	crossRules []crossRule
}

// OfferingByID looks up an offering declared by this profile.
func (p *Profile) OfferingByID(id string) (Offering, bool) {
	for _, o := range p.Offerings {
		if o.ID == id {
			return o, true
		}
	}
	return Offering{}, false
}

// HasCategory reports whether the category belongs to this profile.
func (p *Profile) HasCategory(category string) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Registry resolves a resource kind to its profile.
type Registry struct {
	profiles map[Kind]*Profile
}

// NewRegistry builds the registry with all six kind profiles.
func NewRegistry() *Registry {
	r := &Registry{profiles: make(map[Kind]*Profile)}
	for _, p := range []*Profile{
		propertyProfile(),
		serviceProfile(),
		musicProfile(),
		vehicleProfile(),
		experienceProfile(),
		venueProfile(),
	} {
		r.profiles[p.Kind] = p
	}
	return r
}

// Kinds returns the registered resource kinds in a fixed presentation order.
func (r *Registry) Kinds() []Kind {
	return []Kind{KindProperty, KindService, KindMusic, KindVehicle, KindExperience, KindVenue}
}

// ResolveProfile returns the profile for a kind. An unknown kind is a
// configuration error, not a user-input problem, and fails loudly.
func (r *Registry) ResolveProfile(kind Kind) (*Profile, error) {
	p, ok := r.profiles[kind]
	if !ok {
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}
	return p, nil
}
