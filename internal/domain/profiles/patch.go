package profiles

import "encoding/json"

// Patch is the canonical flat record built on every save attempt. Keys are a
// superset across all kinds; a key absent from the form never appears here.
// The sanitized attribute overlay travels under "attributes" as opaque JSON
// text.
type Patch map[string]any

// BuildPatch serializes validated answers plus their context into the
// canonical record patch. It is deterministic and side-effect-free, and it
// assumes validation has already passed; it does not re-validate.
func BuildPatch(p *Profile, form *FormState, ctx Context) Patch {
	patch := Patch{"resourceKind": string(ctx.Kind)}

	if form.Category != "" {
		patch["category"] = form.Category
	}
	if form.Title != "" {
		patch["title"] = form.Title
	}
	if form.Description != "" {
		patch["description"] = form.Description
	}

	// Commercial mode and booking type come from the derived context, which
	// already prefers an explicit editor override to the offering mapping;
	// the matched offering fills any gap.
	mode, booking := ctx.Mode, ctx.Booking
	if o, ok := p.OfferingByID(form.OfferingID); ok {
		if mode == "" {
			mode = o.Mode
		}
		if booking == "" {
			booking = o.Booking
		}
	}
	if mode != "" {
		patch["commercialMode"] = string(mode)
	}
	if booking != "" {
		patch["bookingType"] = string(booking)
	}

	if form.PricingChoiceID != "" {
		if model, ok := p.PricingModelFor(form.PricingChoiceID); ok {
			patch["pricingModel"] = string(model)
		}
	}
	if form.Price != nil {
		patch["price"] = *form.Price
	}
	if form.Currency != "" {
		patch["currency"] = form.Currency
	}

	if form.Address != "" {
		patch["address"] = form.Address
	}
	if form.City != "" {
		patch["city"] = form.City
	}
	if form.State != "" {
		patch["state"] = form.State
	}
	if form.PostalCode != "" {
		patch["postalCode"] = form.PostalCode
	}
	if form.Lat != nil {
		patch["lat"] = *form.Lat
	}
	if form.Lng != nil {
		patch["lng"] = *form.Lng
	}

	if len(form.Photos) > 0 {
		patch["media"] = form.Photos
	}
	if len(form.Tags) > 0 {
		patch["tags"] = form.Tags
	}

	attrs := SanitizeAttributes(p, ctx, form.Attributes)
	encoded, _ := json.Marshal(attrs)
	patch["attributes"] = string(encoded)

	return patch
}
