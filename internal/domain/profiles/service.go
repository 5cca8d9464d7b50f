package profiles

// serviceProfile covers hired services booked by the hour in time slots or
// quoted as a fixed job. The dj category used to live here before it migrated
// to the music kind; hydration handles that remap.
func serviceProfile() *Profile {
	p := &Profile{
		Kind:       KindService,
		Categories: []string{"chef", "maintenance", "cleaning", "tour_guide"},
		Offerings: []Offering{
			{ID: "per_hour", Mode: ModeRentHourly, Booking: BookingTimeSlot},
			{ID: "fixed_quote", Mode: ModeSale, Booking: BookingManualContact},
		},
		pricingChoices: []pricingChoice{
			{id: "per_hour", model: PricingPerHour},
			{id: "total", model: PricingFixedTotal},
		},
		defaultChoice: map[CommercialMode]string{
			ModeRentHourly: "per_hour",
			ModeSale:       "total",
		},
	}

	p.choicesFor = func(category string, mode CommercialMode) []string {
		switch mode {
		case ModeRentHourly:
			return []string{"per_hour"}
		case ModeSale:
			return []string{"total"}
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
			switch ctx.Category {
			case "chef":
				return []Field{
					numberField("attributes.chefMaxDiners", "field.chefMaxDiners", true, num(1), num(100)),
					tagField("attributes.cuisineStyles", "field.cuisineStyles"),
					urlField("attributes.menuUrl", "field.menuUrl"),
				}
			case "maintenance":
				return []Field{
					numberField("attributes.serviceRadiusKm", "field.serviceRadiusKm", false, num(1), num(500)),
					boolField("attributes.emergencyAvailable", "field.emergencyAvailable"),
					boolField("attributes.toolsProvided", "field.toolsProvided"),
				}
			case "cleaning":
				return []Field{
					numberField("attributes.serviceRadiusKm", "field.serviceRadiusKm", false, num(1), num(500)),
					numberField("attributes.crewSize", "field.crewSize", false, num(1), num(20)),
					boolField("attributes.suppliesIncluded", "field.suppliesIncluded"),
				}
			case "tour_guide":
				return []Field{
					tagField("attributes.languages", "field.languages"),
					numberField("attributes.maxGroupSize", "field.maxGroupSize", false, num(1), num(100)),
					numberField("attributes.serviceRadiusKm", "field.serviceRadiusKm", false, num(1), num(500)),
				}
			}
			return nil
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
		var keys []string
		switch ctx.Category {
		case "chef":
			keys = []string{"chefMaxDiners", "cuisineStyles", "menuUrl"}
		case "maintenance":
			keys = []string{"serviceRadiusKm", "emergencyAvailable", "toolsProvided"}
		case "cleaning":
			keys = []string{"serviceRadiusKm", "crewSize", "suppliesIncluded"}
		case "tour_guide":
			keys = []string{"languages", "maxGroupSize", "serviceRadiusKm"}
		}
		if ctx.TimeSlot() {
			keys = append(keys, "bookingMinUnits", "bookingMaxUnits")
		}
		return keys
	}

	p.crossRules = []crossRule{bookingUnitRule()}

	return p
}
