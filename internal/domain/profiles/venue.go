package profiles

// venueProfile covers event venues rented per event or by the hour.
func venueProfile() *Profile {
	p := &Profile{
		Kind:       KindVenue,
		Categories: []string{"event_hall", "garden", "rooftop", "auditorium"},
		Offerings: []Offering{
			{ID: "per_event", Mode: ModeRentShort, Booking: BookingDateRange},
			{ID: "per_hour", Mode: ModeRentHourly, Booking: BookingTimeSlot},
		},
		pricingChoices: []pricingChoice{
			{id: "per_event", model: PricingPerEvent},
			{id: "per_hour", model: PricingPerHour},
		},
		defaultChoice: map[CommercialMode]string{
			ModeRentShort:  "per_event",
			ModeRentHourly: "per_hour",
		},
	}

	p.choicesFor = func(category string, mode CommercialMode) []string {
		switch mode {
		case ModeRentShort:
			return []string{"per_event"}
		case ModeRentHourly:
			return []string{"per_hour"}
		}
		return nil
	}

	p.fieldsFor = func(ctx Context, stepID string) []Field {
		switch stepID {
		case StepPublishWhat:
			return publishWhatFields(p)
		case StepHowOffer:
			return howOfferFields(p, ctx)
		case StepDescribe:
			return describeFields()
		case StepDetails:
			return []Field{
				numberField("attributes.capacity", "field.capacity", true, num(1), num(5000)),
				numberField("attributes.areaM2", "field.areaM2", false, num(1), nil),
				numberField("attributes.parkingSpaces", "field.parkingSpaces", false, num(0), num(1000)),
				boolField("attributes.cateringAvailable", "field.cateringAvailable"),
				boolField("attributes.soundSystem", "field.soundSystem"),
				timeField("attributes.openingTime", "field.openingTime", false),
				urlField("attributes.websiteUrl", "field.websiteUrl"),
			}
		case StepConditions:
			return bookingUnitFields()
		case StepPrice:
			return priceFields(p, ctx)
		case StepLocation:
			return locationFields()
		}
		return nil
	}

	p.allowedAttributes = func(ctx Context) []string {
		keys := []string{"capacity", "areaM2", "parkingSpaces", "cateringAvailable", "soundSystem", "openingTime", "websiteUrl"}
		if ctx.TimeSlot() {
			keys = append(keys, "bookingMinUnits", "bookingMaxUnits")
		}
		return keys
	}

	p.crossRules = []crossRule{bookingUnitRule()}

	return p
}
