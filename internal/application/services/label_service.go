package services

import (
	"fmt"

	"github.com/raulbellosom/travel-sub004/internal/domain/profiles"
)

// englishLabels maps label keys to English display text or format strings.
// Keys without an entry fall through to the key itself so a missing
// translation stays visible instead of rendering blank.
var englishLabels = map[string]string{
	// Steps
	"step.publish-what.title":       "What to publish",
	"step.publish-what.description": "Pick what kind of listing this is",
	"step.how-offer.title":          "How to offer it",
	"step.how-offer.description":    "Choose how visitors can get it",
	"step.describe.title":           "Describe it",
	"step.describe.description":     "Title, description and photos",
	"step.details.title":            "Details",
	"step.details.description":      "Specifics for this kind of listing",
	"step.conditions.title":         "Conditions",
	"step.conditions.description":   "Booking limits and house rules",
	"step.price.title":              "Price",
	"step.price.description":        "How much and in what currency",
	"step.location.title":           "Location",
	"step.location.description":     "Where it is or where you serve",
	"step.review.title":             "Review and publish",
	"step.review.description":       "Check everything before going live",

	// Shared fields
	"field.category":      "What are you publishing?",
	"field.offering":      "How do you want to offer it?",
	"field.title":         "Title",
	"field.description":   "Description",
	"field.photos":        "Photos",
	"field.tags":          "Tags",
	"field.pricingChoice": "How do you want to price it?",
	"field.price":         "Price",
	"field.currency":      "Currency",
	"field.address":       "Address",
	"field.city":          "City",
	"field.state":         "State",
	"field.postalCode":    "Postal code",
	"field.lat":           "Latitude",
	"field.lng":           "Longitude",

	// Kind-specific fields
	"field.bedrooms":           "Bedrooms",
	"field.bathrooms":          "Bathrooms",
	"field.areaM2":             "Area (m²)",
	"field.furnished":          "Furnished",
	"field.petsAllowed":        "Pets allowed",
	"field.parkingSpaces":      "Parking spaces",
	"field.landUse":            "Land use",
	"field.minStayNights":      "Minimum stay (nights)",
	"field.maxStayNights":      "Maximum stay (nights)",
	"field.chefMaxDiners":      "Maximum diners",
	"field.cuisineStyles":      "Cuisine styles",
	"field.menuUrl":            "Menu link",
	"field.emergencyAvailable": "Emergency availability",
	"field.toolsProvided":      "Tools provided",
	"field.suppliesIncluded":   "Supplies included",
	"field.languages":          "Languages",
	"field.serviceRadiusKm":    "Service radius (km)",
	"field.bookingMinUnits":    "Minimum booking hours",
	"field.bookingMaxUnits":    "Maximum booking hours",
	"field.genres":             "Genres",
	"field.groupSize":          "Group members",
	"field.repertoireSize":     "Songs in repertoire",
	"field.soundSystem":        "Sound system included",
	"field.travelRadiusKm":     "Travel radius (km)",
	"field.setupMinutes":       "Setup time (minutes)",
	"field.modelYear":          "Model year",
	"field.transmission":       "Transmission",
	"field.fuelType":           "Fuel type",
	"field.seats":              "Seats",
	"field.withDriver":         "Includes driver",
	"field.minRentalDays":      "Minimum rental (days)",
	"field.maxRentalDays":      "Maximum rental (days)",
	"field.durationMinutes":    "Duration (minutes)",
	"field.maxParticipants":    "Maximum participants",
	"field.maxGroupSize":       "Maximum group size",
	"field.minAge":             "Minimum age",
	"field.meetingPoint":       "Meeting point",
	"field.includesTransport":  "Transport included",
	"field.startTime":          "Start time",
	"field.capacity":           "Capacity",
	"field.cateringAvailable":  "Catering available",
	"field.openingTime":        "Opening time",
	"field.websiteUrl":         "Website",
	"field.crewSize":           "Crew size",

	// Categories
	"category.property.house":            "House",
	"category.property.apartment":        "Apartment",
	"category.property.land":             "Land",
	"category.property.office":           "Office",
	"category.property.commercial_space": "Commercial space",
	"category.service.chef":              "Private chef",
	"category.service.maintenance":       "Maintenance",
	"category.service.cleaning":          "Cleaning",
	"category.service.tour_guide":        "Tour guide",
	"category.music.mariachi":            "Mariachi",
	"category.music.dj":                  "DJ",
	"category.music.banda":               "Banda",
	"category.music.norteno":             "Norteño",
	"category.music.trio":                "Trio",
	"category.vehicle.car":               "Car",
	"category.vehicle.van":               "Van",
	"category.vehicle.motorcycle":        "Motorcycle",
	"category.vehicle.boat":              "Boat",
	"category.experience.tour":           "Tour",
	"category.experience.tasting":        "Tasting",
	"category.experience.adventure":      "Adventure",
	"category.experience.workshop":       "Workshop",
	"category.venue.event_hall":          "Event hall",
	"category.venue.garden":              "Garden",
	"category.venue.rooftop":             "Rooftop",
	"category.venue.auditorium":          "Auditorium",

	// Offerings
	"offering.property.sell":       "Sell it",
	"offering.property.rent":       "Rent it monthly",
	"offering.property.rent_short": "Rent it for short stays",
	"offering.service.per_hour":    "Charge by the hour",
	"offering.service.fixed_quote": "Quote a fixed price",
	"offering.music.per_hour":      "Charge by the hour",
	"offering.music.per_event":     "Charge per event",
	"offering.vehicle.sell":        "Sell it",
	"offering.vehicle.rent_daily":  "Rent it by the day",
	"offering.vehicle.per_hour":    "Rent it by the hour",
	"offering.experience.per_person": "Book per person",
	"offering.venue.per_event":     "Book per event",
	"offering.venue.per_hour":      "Book by the hour",

	// Pricing choices
	"pricing.total":      "Total price",
	"pricing.per_m2":     "Price per m²",
	"pricing.per_month":  "Price per month",
	"pricing.per_night":  "Price per night",
	"pricing.per_day":    "Price per day",
	"pricing.per_hour":   "Price per hour",
	"pricing.per_event":  "Price per event",
	"pricing.per_person": "Price per person",
	"pricing.per_group":  "Price per group",

	// Option values
	"currency.mxn":           "Mexican peso (MXN)",
	"currency.usd":           "US dollar (USD)",
	"fuel.gasoline":          "Gasoline",
	"fuel.diesel":            "Diesel",
	"fuel.hybrid":            "Hybrid",
	"fuel.electric":          "Electric",
	"transmission.manual":    "Manual",
	"transmission.automatic": "Automatic",

	// Validation messages
	"validation.required":      "%s is required",
	"validation.tooShort":      "%s must be at least %d characters",
	"validation.notANumber":    "%s must be a number",
	"validation.belowMin":      "%s must be at least %v",
	"validation.aboveMax":      "%s must be at most %v",
	"validation.badTime":       "%s must be a time in HH:MM format",
	"validation.badURL":        "%s must be an absolute URL",
	"validation.invalidOption": "%s has an invalid option",
	"validation.tooManyItems":  "%s accepts at most %d items",
	"validation.minOverMax":    "%s cannot exceed %s",
}

type englishResolver struct{}

func (englishResolver) Resolve(key string, args ...any) string {
	text, ok := englishLabels[key]
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

// EnglishLabels returns the English label resolver used by the public API.
func EnglishLabels() profiles.LabelResolver {
	return englishResolver{}
}
