package profiles

// propertyProfile covers houses, apartments, land, offices and commercial
// spaces, offered for sale, long-term rent or short-term stays.
func propertyProfile() *Profile {
	p := &Profile{
		Kind:       KindProperty,
		Categories: []string{"house", "apartment", "land", "office", "commercial_space"},
		Offerings: []Offering{
			{ID: "sell", Mode: ModeSale, Booking: BookingManualContact},
			{ID: "rent", Mode: ModeRent, Booking: BookingManualContact},
			{ID: "rent_short", Mode: ModeRentShort, Booking: BookingDateRange},
		},
		pricingChoices: []pricingChoice{
			{id: "total", model: PricingFixedTotal},
			{id: "per_m2", model: PricingPerM2},
			{id: "per_month", model: PricingPerMonth},
			{id: "per_night", model: PricingPerNight},
		},
		defaultChoice: map[CommercialMode]string{
			ModeSale:      "total",
			ModeRent:      "per_month",
			ModeRentShort: "per_night",
		},
	}

	p.choicesFor = func(category string, mode CommercialMode) []string {
		switch mode {
		case ModeSale:
			return []string{"total", "per_m2"}
		case ModeRent:
			return []string{"per_month"}
		case ModeRentShort:
			return []string{"per_night"}
		}
		return nil
	}

	notLand := func(ctx Context) bool { return ctx.Category != "land" }
	landOnly := func(ctx Context) bool { return ctx.Category == "land" }
	shortStay := func(ctx Context) bool { return ctx.ShortStay() }

	p.fieldsFor = func(ctx Context, stepID string) []Field {
		switch stepID {
		case StepPublishWhat:
			return publishWhatFields(p)
		case StepHowOffer:
			return howOfferFields(p, ctx)
		case StepDescribe:
			return describeFields()
		case StepDetails:
			bedrooms := numberField("attributes.bedrooms", "field.bedrooms", false, num(0), num(20))
			bedrooms.visibleWhen = notLand
			bathrooms := numberField("attributes.bathrooms", "field.bathrooms", false, num(0), num(20))
			bathrooms.visibleWhen = notLand
			furnished := boolField("attributes.furnished", "field.furnished")
			furnished.visibleWhen = notLand
			pets := boolField("attributes.petsAllowed", "field.petsAllowed")
			pets.visibleWhen = notLand
			landUse := selectField("attributes.landUse", "field.landUse", false, []Option{
				{Value: "residential", labelKey: "landUse.residential"},
				{Value: "agricultural", labelKey: "landUse.agricultural"},
				{Value: "commercial", labelKey: "landUse.commercial"},
			})
			landUse.visibleWhen = landOnly
			return []Field{
				numberField("attributes.areaM2", "field.areaM2", true, num(1), nil),
				bedrooms,
				bathrooms,
				numberField("attributes.parkingSpaces", "field.parkingSpaces", false, num(0), num(50)),
				furnished,
				pets,
				landUse,
			}
		case StepConditions:
			minStay := numberField("attributes.minStayNights", "field.minStayNights", false, num(1), num(365))
			minStay.visibleWhen = shortStay
			maxStay := numberField("attributes.maxStayNights", "field.maxStayNights", false, num(1), num(365))
			maxStay.visibleWhen = shortStay
			return []Field{minStay, maxStay}
		case StepPrice:
			return priceFields(p, ctx)
		case StepLocation:
			return locationFields()
		}
		return nil
	}

	p.allowedAttributes = func(ctx Context) []string {
		keys := []string{"areaM2", "parkingSpaces"}
		if ctx.Category == "land" {
			keys = append(keys, "landUse")
		} else {
			keys = append(keys, "bedrooms", "bathrooms", "furnished", "petsAllowed")
		}
		if ctx.ShortStay() {
			keys = append(keys, "minStayNights", "maxStayNights")
		}
		return keys
	}

	p.crossRules = []crossRule{{
		step:     StepConditions,
		minKey:   "attributes.minStayNights",
		maxKey:   "attributes.maxStayNights",
		labelKey: "validation.minOverMax",
	}}

	return p
}
