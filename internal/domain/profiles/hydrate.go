package profiles

import (
	"encoding/json"
	"fmt"

	"github.com/raulbellosom/travel-sub004/internal/domain/entities/listing"
)

// categoryKinds is the fallback lookup for records saved before the explicit
// resourceKind column existed.
var categoryKinds = map[string]Kind{
	"house": KindProperty, "apartment": KindProperty, "land": KindProperty,
	"office": KindProperty, "commercial_space": KindProperty,
	"chef": KindService, "maintenance": KindService, "cleaning": KindService,
	"tour_guide": KindService,
	"mariachi": KindMusic, "dj": KindMusic, "banda": KindMusic,
	"norteno": KindMusic, "trio": KindMusic,
	"car": KindVehicle, "van": KindVehicle, "motorcycle": KindVehicle, "boat": KindVehicle,
	"tour": KindExperience, "tasting": KindExperience, "adventure": KindExperience,
	"workshop": KindExperience,
	"event_hall": KindVenue, "garden": KindVenue, "rooftop": KindVenue,
	"auditorium": KindVenue,
}

// ResolveRecordKind determines which profile owns a stored record. An
// explicit recognized kind wins, with one backward-compatibility exception:
// kind "service" with category "dj" predates the music kind and is
// reinterpreted as "music". Records without an explicit kind fall back to the
// category lookup table.
func (r *Registry) ResolveRecordKind(record map[string]any) (Kind, error) {
	kind, _ := record["resourceKind"].(string)
	category, _ := record["category"].(string)

	// dj listings were originally modeled as services before the category
	// migrated kinds.
	if kind == string(KindService) && category == "dj" {
		return KindMusic, nil
	}

	if kind != "" {
		if _, err := r.ResolveProfile(Kind(kind)); err == nil {
			return Kind(kind), nil
		}
	}

	if k, ok := categoryKinds[category]; ok {
		return k, nil
	}
	return "", fmt.Errorf("cannot resolve resource kind for record (kind=%q, category=%q)", kind, category)
}

// HydrateRecord resolves the record's kind and hydrates it against that
// kind's profile.
func (r *Registry) HydrateRecord(record map[string]any) (*FormState, Context, error) {
	kind, err := r.ResolveRecordKind(record)
	if err != nil {
		return nil, Context{}, err
	}
	p, err := r.ResolveProfile(kind)
	if err != nil {
		return nil, Context{}, err
	}
	form, ctx := Hydrate(p, record)
	return form, ctx, nil
}

// Hydrate reconstructs a form state and context from a previously saved
// record. The UI-only offeringId and pricingChoiceId are re-derived from the
// stored commercialMode/bookingType and pricingModel — they are never trusted
// from storage because they are not persisted fields. Malformed or absent
// attribute text yields an empty map rather than a failure.
func Hydrate(p *Profile, record map[string]any) (*FormState, Context) {
	form := &FormState{
		ResourceKind:   string(p.Kind),
		Category:       stringValue(record, "category"),
		Title:          stringValue(record, "title"),
		Description:    stringValue(record, "description"),
		Currency:       stringValue(record, "currency"),
		Address:        stringValue(record, "address"),
		City:           stringValue(record, "city"),
		State:          stringValue(record, "state"),
		PostalCode:     stringValue(record, "postalCode"),
		CommercialMode: stringValue(record, "commercialMode"),
		BookingType:    stringValue(record, "bookingType"),
		Attributes:     DecodeAttributes(stringValue(record, "attributes")),
	}

	if n, ok := toNumber(record["price"]); ok {
		form.Price = &n
	}
	if n, ok := toNumber(record["lat"]); ok {
		form.Lat = &n
	}
	if n, ok := toNumber(record["lng"]); ok {
		form.Lng = &n
	}
	form.Photos = mediaItems(record["media"])
	form.Tags = stringSlice(record["tags"])

	// Rematch the offering from the persisted pair; first declared match
	// wins, keeping the choice deterministic.
	mode := CommercialMode(form.CommercialMode)
	booking := BookingType(form.BookingType)
	for _, o := range p.Offerings {
		if o.Mode == mode && o.Booking == booking {
			form.OfferingID = o.ID
			break
		}
	}

	ctx := DeriveContext(p, form)

	if model := stringValue(record, "pricingModel"); model != "" {
		form.PricingChoiceID = p.PricingChoiceFor(PricingModel(model), ctx)
	}

	return form, ctx
}

// DecodeAttributes parses the opaque attribute text of a stored record,
// tolerating absent or malformed text by returning an empty map.
func DecodeAttributes(encoded string) map[string]any {
	attrs := make(map[string]any)
	if encoded == "" {
		return attrs
	}
	if err := json.Unmarshal([]byte(encoded), &attrs); err != nil {
		return make(map[string]any)
	}
	return attrs
}

func stringValue(record map[string]any, key string) string {
	s, _ := record[key].(string)
	return s
}

func stringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// RecordDocument flattens a stored listing entity into the opaque document
// shape Hydrate consumes.
func RecordDocument(rec *listing.Record) map[string]any {
	doc := map[string]any{
		"resourceKind":   rec.ResourceKind,
		"category":       rec.Category,
		"title":          rec.Title,
		"description":    rec.Description,
		"commercialMode": rec.CommercialMode,
		"bookingType":    rec.BookingType,
		"pricingModel":   rec.PricingModel,
		"currency":       rec.Currency,
		"address":        rec.Address,
		"city":           rec.City,
		"state":          rec.State,
		"postalCode":     rec.PostalCode,
		"attributes":     rec.Attributes,
	}
	if rec.Price != nil {
		doc["price"] = *rec.Price
	}
	if rec.Lat != nil {
		doc["lat"] = *rec.Lat
	}
	if rec.Lng != nil {
		doc["lng"] = *rec.Lng
	}
	if len(rec.Media) > 0 {
		doc["media"] = rec.Media
	}
	if len(rec.Tags) > 0 {
		doc["tags"] = rec.Tags
	}
	return doc
}
