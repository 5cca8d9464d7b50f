package profiles

// experienceProfile covers guided experiences booked per time slot.
func experienceProfile() *Profile {
	p := &Profile{
		Kind:       KindExperience,
		Categories: []string{"tour", "tasting", "adventure", "workshop"},
		Offerings: []Offering{
			{ID: "per_person", Mode: ModeRentHourly, Booking: BookingTimeSlot},
		},
		pricingChoices: []pricingChoice{
			{id: "per_person", model: PricingPerPerson},
			{id: "per_group", model: PricingPerGroup},
		},
		defaultChoice: map[CommercialMode]string{
			ModeRentHourly: "per_person",
		},
	}

	p.choicesFor = func(category string, mode CommercialMode) []string {
		if mode == ModeRentHourly {
			return []string{"per_person", "per_group"}
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
				numberField("attributes.maxParticipants", "field.maxParticipants", true, num(1), num(200)),
				numberField("attributes.durationMinutes", "field.durationMinutes", true, num(30), num(720)),
				textField("attributes.meetingPoint", "field.meetingPoint", false, 0),
				numberField("attributes.minAge", "field.minAge", false, num(0), num(21)),
				boolField("attributes.includesTransport", "field.includesTransport"),
				timeField("attributes.startTime", "field.startTime", false),
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
		keys := []string{"maxParticipants", "durationMinutes", "meetingPoint", "minAge", "includesTransport", "startTime"}
		if ctx.TimeSlot() {
			keys = append(keys, "bookingMinUnits", "bookingMaxUnits")
		}
		return keys
	}

	p.crossRules = []crossRule{bookingUnitRule()}

	return p
}
