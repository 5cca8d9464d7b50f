package profiles

// vehicleProfile covers vehicles offered for sale, daily rental or hourly
// rental with or without a driver.
func vehicleProfile() *Profile {
	p := &Profile{
		Kind:       KindVehicle,
		Categories: []string{"car", "van", "motorcycle", "boat"},
		Offerings: []Offering{
			{ID: "sell", Mode: ModeSale, Booking: BookingManualContact},
			{ID: "rent_daily", Mode: ModeRentShort, Booking: BookingDateRange},
			{ID: "per_hour", Mode: ModeRentHourly, Booking: BookingTimeSlot},
		},
		pricingChoices: []pricingChoice{
			{id: "total", model: PricingFixedTotal},
			{id: "per_day", model: PricingPerDay},
			{id: "per_hour", model: PricingPerHour},
		},
		defaultChoice: map[CommercialMode]string{
			ModeSale:       "total",
			ModeRentShort:  "per_day",
			ModeRentHourly: "per_hour",
		},
	}

	p.choicesFor = func(category string, mode CommercialMode) []string {
		switch mode {
		case ModeSale:
			return []string{"total"}
		case ModeRentShort:
			return []string{"per_day"}
		case ModeRentHourly:
			return []string{"per_hour"}
		}
		return nil
	}

	renting := func(ctx Context) bool { return ctx.Mode != "" && ctx.Mode != ModeSale }
	daily := func(ctx Context) bool { return ctx.ShortStay() }

	p.fieldsFor = func(ctx Context, stepID string) []Field {
		switch stepID {
		case StepPublishWhat:
			return publishWhatFields(p)
		case StepHowOffer:
			return howOfferFields(p, ctx)
		case StepDescribe:
			return describeFields()
		case StepDetails:
			withDriver := boolField("attributes.withDriver", "field.withDriver")
			withDriver.visibleWhen = renting
			return []Field{
				numberField("attributes.seats", "field.seats", true, num(1), num(60)),
				selectField("attributes.transmission", "field.transmission", false, []Option{
					{Value: "manual", labelKey: "transmission.manual"},
					{Value: "automatic", labelKey: "transmission.automatic"},
				}),
				selectField("attributes.fuelType", "field.fuelType", false, []Option{
					{Value: "gasoline", labelKey: "fuel.gasoline"},
					{Value: "diesel", labelKey: "fuel.diesel"},
					{Value: "electric", labelKey: "fuel.electric"},
					{Value: "hybrid", labelKey: "fuel.hybrid"},
				}),
				numberField("attributes.modelYear", "field.modelYear", false, num(1950), num(2030)),
				withDriver,
			}
		case StepConditions:
			minDays := numberField("attributes.minRentalDays", "field.minRentalDays", false, num(1), num(90))
			minDays.visibleWhen = daily
			maxDays := numberField("attributes.maxRentalDays", "field.maxRentalDays", false, num(1), num(90))
			maxDays.visibleWhen = daily
			return append([]Field{minDays, maxDays}, bookingUnitFields()...)
		case StepPrice:
			return priceFields(p, ctx)
		case StepLocation:
			return locationFields()
		}
		return nil
	}

	p.allowedAttributes = func(ctx Context) []string {
		keys := []string{"seats", "transmission", "fuelType", "modelYear"}
		if ctx.Mode != "" && ctx.Mode != ModeSale {
			keys = append(keys, "withDriver")
		}
		if ctx.ShortStay() {
			keys = append(keys, "minRentalDays", "maxRentalDays")
		}
		if ctx.TimeSlot() {
			keys = append(keys, "bookingMinUnits", "bookingMaxUnits")
		}
		return keys
	}

	p.crossRules = []crossRule{
		{
			step:     StepConditions,
			minKey:   "attributes.minRentalDays",
			maxKey:   "attributes.maxRentalDays",
			labelKey: "validation.minOverMax",
		},
		bookingUnitRule(),
	}

	return p
}
