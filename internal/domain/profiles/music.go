package profiles

// musicProfile covers live music acts hired by the hour or per event.
func musicProfile() *Profile {
	p := &Profile{
		Kind:       KindMusic,
		Categories: []string{"mariachi", "dj", "banda", "norteno", "trio"},
		Offerings: []Offering{
			{ID: "per_hour", Mode: ModeRentHourly, Booking: BookingTimeSlot},
			{ID: "per_event", Mode: ModeRentHourly, Booking: BookingManualContact},
		},
		pricingChoices: []pricingChoice{
			{id: "per_hour", model: PricingPerHour},
			{id: "per_event", model: PricingFixedTotal},
		},
		defaultChoice: map[CommercialMode]string{
			ModeRentHourly: "per_hour",
		},
	}

	p.choicesFor = func(category string, mode CommercialMode) []string {
		if mode == ModeRentHourly {
			return []string{"per_hour", "per_event"}
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
				numberField("attributes.groupSize", "field.groupSize", true, num(1), num(50)),
				numberField("attributes.repertoireSize", "field.repertoireSize", false, num(1), num(1000)),
				numberField("attributes.travelRadiusKm", "field.travelRadiusKm", false, num(1), num(500)),
				numberField("attributes.setupMinutes", "field.setupMinutes", false, num(0), num(240)),
				tagField("attributes.genres", "field.genres"),
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
		keys := []string{"groupSize", "repertoireSize", "travelRadiusKm", "setupMinutes", "genres"}
		if ctx.TimeSlot() {
			keys = append(keys, "bookingMinUnits", "bookingMaxUnits")
		}
		return keys
	}

	p.crossRules = []crossRule{bookingUnitRule()}

	return p
}
