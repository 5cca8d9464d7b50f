package profiles

// FieldType is the closed set of field renderings the wizard understands.
// The engine only decides whether a field exists for a context and what
// values are legal; drawing it is the UI collaborator's concern.
type FieldType string

const (
	FieldText            FieldType = "text"
	FieldTextarea        FieldType = "textarea"
	FieldURL             FieldType = "url"
	FieldNumber          FieldType = "number"
	FieldCurrencyAmount  FieldType = "currency-amount"
	FieldTime            FieldType = "time"
	FieldBoolean         FieldType = "boolean"
	FieldSingleSelect    FieldType = "single-select"
	FieldImageCollection FieldType = "image-collection"
	FieldTagCollection   FieldType = "tag-collection"
)

// Image-collection constraints shared by all profiles. pkg/config mirrors
// these for the upload pipeline.
const (
	MaxImageCount = 10
	MaxImageBytes = 10 << 20 // 10 MiB per item
)

// ImageAccept lists the MIME types accepted in image collections.
var ImageAccept = []string{"image/jpeg", "image/png", "image/webp"}

// Option is one selectable value of a single-select field.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	labelKey string
}

// Field describes one wizard input: its key (a root key or
// "attributes.<name>"), type, and context-dependent constraints.
type Field struct {
	Key          string    `json:"key"`
	Type         FieldType `json:"type"`
	Label        string    `json:"label,omitempty"`
	Required     bool      `json:"required"`
	MinLength    int       `json:"minLength,omitempty"`
	Min          *float64  `json:"min,omitempty"`
	Max          *float64  `json:"max,omitempty"`
	MaxItems     int       `json:"maxItems,omitempty"`
	MaxItemBytes int64     `json:"maxItemBytes,omitempty"`
	Accept       []string  `json:"accept,omitempty"`
	Options      []Option  `json:"options,omitempty"`

	labelKey string
	// visibleWhen suppresses a declared field for specific contexts.
	visibleWhen func(Context) bool
}

// Visible evaluates the field's visibility predicate for a context.
func (f Field) Visible(ctx Context) bool {
	return f.visibleWhen == nil || f.visibleWhen(ctx)
}

func num(v float64) *float64 { return &v }

func textField(key, labelKey string, required bool, minLength int) Field {
	return Field{Key: key, Type: FieldText, labelKey: labelKey, Required: required, MinLength: minLength}
}

func textareaField(key, labelKey string, required bool, minLength int) Field {
	return Field{Key: key, Type: FieldTextarea, labelKey: labelKey, Required: required, MinLength: minLength}
}

func urlField(key, labelKey string) Field {
	return Field{Key: key, Type: FieldURL, labelKey: labelKey}
}

func numberField(key, labelKey string, required bool, min, max *float64) Field {
	return Field{Key: key, Type: FieldNumber, labelKey: labelKey, Required: required, Min: min, Max: max}
}

func timeField(key, labelKey string, required bool) Field {
	return Field{Key: key, Type: FieldTime, labelKey: labelKey, Required: required}
}

func boolField(key, labelKey string) Field {
	return Field{Key: key, Type: FieldBoolean, labelKey: labelKey}
}

func selectField(key, labelKey string, required bool, options []Option) Field {
	return Field{Key: key, Type: FieldSingleSelect, labelKey: labelKey, Required: required, Options: options}
}

func tagField(key, labelKey string) Field {
	return Field{Key: key, Type: FieldTagCollection, labelKey: labelKey}
}

func imageField(key, labelKey string, required bool) Field {
	return Field{
		Key:          key,
		Type:         FieldImageCollection,
		labelKey:     labelKey,
		Required:     required,
		MaxItems:     MaxImageCount,
		MaxItemBytes: MaxImageBytes,
		Accept:       ImageAccept,
	}
}

// categoryOptions builds the publish-what select from a profile's categories.
func categoryOptions(p *Profile) []Option {
	opts := make([]Option, 0, len(p.Categories))
	for _, c := range p.Categories {
		opts = append(opts, Option{Value: c, labelKey: "category." + string(p.Kind) + "." + c})
	}
	return opts
}

// offeringOptions builds the how-offer select from a profile's offerings.
func offeringOptions(p *Profile) []Option {
	opts := make([]Option, 0, len(p.Offerings))
	for _, o := range p.Offerings {
		opts = append(opts, Option{Value: o.ID, labelKey: "offering." + string(p.Kind) + "." + o.ID})
	}
	return opts
}

// pricingOptions builds the price select from the choices allowed for the
// current (category, commercialMode).
func pricingOptions(p *Profile, ctx Context) []Option {
	ids := p.AllowedPricingChoices(ctx.Category, ctx.Mode)
	opts := make([]Option, 0, len(ids))
	for _, id := range ids {
		opts = append(opts, Option{Value: id, labelKey: "pricing." + id})
	}
	return opts
}

// currencyOptions is the shared currency select.
func currencyOptions() []Option {
	return []Option{
		{Value: "MXN", labelKey: "currency.mxn"},
		{Value: "USD", labelKey: "currency.usd"},
	}
}

// publishWhatFields is the shared first step: pick a category.
func publishWhatFields(p *Profile) []Field {
	return []Field{
		selectField("category", "field.category", true, categoryOptions(p)),
	}
}

// howOfferFields is the shared second step: pick an offering. Empty until a
// category is chosen so the wizard never runs ahead of the context.
func howOfferFields(p *Profile, ctx Context) []Field {
	if ctx.Category == "" {
		return nil
	}
	return []Field{
		selectField("offeringId", "field.offering", true, offeringOptions(p)),
	}
}

// describeFields is the shared narrative step: title, description and media.
func describeFields() []Field {
	return []Field{
		textField("title", "field.title", true, 8),
		textareaField("description", "field.description", true, 40),
		imageField("photos", "field.photos", false),
		tagField("tags", "field.tags"),
	}
}

// priceFields is the shared pricing step, active once a commercial mode is
// known.
func priceFields(p *Profile, ctx Context) []Field {
	if ctx.Mode == "" {
		return nil
	}
	return []Field{
		selectField("pricingChoiceId", "field.pricingChoice", true, pricingOptions(p, ctx)),
		{Key: "price", Type: FieldCurrencyAmount, labelKey: "field.price", Required: true, Min: num(0)},
		selectField("currency", "field.currency", true, currencyOptions()),
	}
}

// locationFields is the shared location step.
func locationFields() []Field {
	return []Field{
		textField("address", "field.address", true, 0),
		textField("city", "field.city", true, 0),
		textField("state", "field.state", true, 0),
		textField("postalCode", "field.postalCode", false, 0),
		numberField("lat", "field.lat", false, num(-90), num(90)),
		numberField("lng", "field.lng", false, num(-180), num(180)),
	}
}

// bookingUnitFields are the shared time-slot booking bounds, visible only for
// time-slot contexts.
func bookingUnitFields() []Field {
	visible := func(ctx Context) bool { return ctx.TimeSlot() }
	minUnits := numberField("attributes.bookingMinUnits", "field.bookingMinUnits", false, num(1), num(24))
	minUnits.visibleWhen = visible
	maxUnits := numberField("attributes.bookingMaxUnits", "field.bookingMaxUnits", false, num(1), num(24))
	maxUnits.visibleWhen = visible
	return []Field{minUnits, maxUnits}
}

// bookingUnitRule is the shared paired-bounds rule for time-slot bookings.
func bookingUnitRule() crossRule {
	return crossRule{
		step:     StepConditions,
		minKey:   "attributes.bookingMinUnits",
		maxKey:   "attributes.bookingMaxUnits",
		labelKey: "validation.minOverMax",
	}
}
