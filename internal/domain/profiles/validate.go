package profiles

import (
	"net/url"
	"regexp"
	"strconv"

	"github.com/raulbellosom/travel-sub004/internal/domain/entities/listing"
)

// timePattern is the strict 24-hour HH:MM format for time fields.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// MediaRejections counts image-collection items rejected per reason. The
// valid subset is still acceptable; whether to keep it is the UI's call.
type MediaRejections struct {
	InvalidType int `json:"invalidType"`
	Oversize    int `json:"oversize"`
}

// StepResult is the outcome of validating one step. Errors are keyed
// "<stepId>.<fieldKey>" so every problem is attributable to exactly one step
// and one field.
type StepResult struct {
	OK     bool                       `json:"ok"`
	Errors map[string]string          `json:"errors"`
	Media  map[string]MediaRejections `json:"mediaRejections,omitempty"`
}

// DocumentResult is the outcome of validating the whole document.
type DocumentResult struct {
	OK                 bool                       `json:"ok"`
	Errors             map[string]string          `json:"errors"`
	Media              map[string]MediaRejections `json:"mediaRejections,omitempty"`
	FirstOffendingStep string                     `json:"firstOffendingStepId,omitempty"`
}

// ValidateStep applies per-field rules to every visible field of a step, then
// the profile's cross-field rules for that step. Errors are aggregated, never
// short-circuited, so the caller can show every problem at once.
func ValidateStep(p *Profile, stepID string, fields []Field, form *FormState, ctx Context, labels LabelResolver) StepResult {
	if labels == nil {
		labels = DefaultLabels()
	}

	result := StepResult{
		Errors: make(map[string]string),
		Media:  make(map[string]MediaRejections),
	}

	for _, f := range fields {
		if !f.Visible(ctx) {
			continue
		}
		key := stepID + "." + f.Key
		value := form.Value(f.Key)

		if isEmptyValue(value) {
			if f.Required {
				result.Errors[key] = labels.Resolve("validation.required", f.Key)
			}
			continue
		}

		switch f.Type {
		case FieldText, FieldTextarea:
			s, _ := value.(string)
			if f.MinLength > 0 && len([]rune(s)) < f.MinLength {
				result.Errors[key] = labels.Resolve("validation.tooShort", f.Key, f.MinLength)
			}
		case FieldNumber, FieldCurrencyAmount:
			n, ok := toNumber(value)
			if !ok {
				result.Errors[key] = labels.Resolve("validation.notANumber", f.Key)
				continue
			}
			if f.Min != nil && n < *f.Min {
				result.Errors[key] = labels.Resolve("validation.belowMin", f.Key, *f.Min)
			} else if f.Max != nil && n > *f.Max {
				result.Errors[key] = labels.Resolve("validation.aboveMax", f.Key, *f.Max)
			}
		case FieldTime:
			s, _ := value.(string)
			if !timePattern.MatchString(s) {
				result.Errors[key] = labels.Resolve("validation.badTime", f.Key)
			}
		case FieldURL:
			s, _ := value.(string)
			if u, err := url.Parse(s); err != nil || !u.IsAbs() || u.Host == "" {
				result.Errors[key] = labels.Resolve("validation.badURL", f.Key)
			}
		case FieldSingleSelect:
			s, _ := value.(string)
			if len(f.Options) > 0 && !hasOption(f.Options, s) {
				result.Errors[key] = labels.Resolve("validation.invalidOption", f.Key)
			}
		case FieldImageCollection:
			items := mediaItems(value)
			if f.MaxItems > 0 && len(items) > f.MaxItems {
				result.Errors[key] = labels.Resolve("validation.tooManyItems", f.Key, f.MaxItems)
			}
			rejections := MediaRejections{}
			for _, item := range items {
				if len(f.Accept) > 0 && !hasString(f.Accept, item.ContentType) {
					rejections.InvalidType++
					continue
				}
				if f.MaxItemBytes > 0 && item.SizeBytes > f.MaxItemBytes {
					rejections.Oversize++
				}
			}
			if rejections.InvalidType > 0 || rejections.Oversize > 0 {
				result.Media[key] = rejections
			}
		}
	}

	for _, rule := range p.crossRules {
		if rule.step != stepID {
			continue
		}
		minVal, minOK := toNumber(form.Value(rule.minKey))
		maxVal, maxOK := toNumber(form.Value(rule.maxKey))
		if minOK && maxOK && minVal > maxVal {
			result.Errors[stepID+"."+rule.minKey] = labels.Resolve(rule.labelKey, rule.minKey, rule.maxKey)
		}
	}

	result.OK = len(result.Errors) == 0
	return result
}

// ValidateDocument re-derives the context from the normalized form, validates
// every non-review step and merges the error maps. The first offending step
// is the one with the smallest narrative index that carries at least one
// error, a deterministic tie-break for focusing the UI.
func ValidateDocument(p *Profile, form *FormState, labels LabelResolver) DocumentResult {
	if labels == nil {
		labels = DefaultLabels()
	}

	normalized := *form
	ctx := DeriveContext(p, &normalized)
	normalized.Attributes = SanitizeAttributes(p, ctx, normalized.Attributes)

	result := DocumentResult{
		Errors: make(map[string]string),
		Media:  make(map[string]MediaRejections),
	}

	for _, stepID := range stepOrder {
		if stepID == StepReview {
			continue
		}
		fields := FieldsForStep(p, labels, ctx, stepID)
		if len(fields) == 0 {
			continue
		}
		step := ValidateStep(p, stepID, fields, &normalized, ctx, labels)
		for k, v := range step.Errors {
			result.Errors[k] = v
		}
		for k, v := range step.Media {
			result.Media[k] = v
		}
		if !step.OK && result.FirstOffendingStep == "" {
			result.FirstOffendingStep = stepID
		}
	}

	result.OK = len(result.Errors) == 0
	return result
}

func hasOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

func hasString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// toNumber coerces the value shapes a decoded form can carry into a float64.
func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		return n, err == nil
	}
	return 0, false
}

// mediaItems coerces an image-collection value into media items, tolerating
// the map shape a JSON round trip produces.
func mediaItems(value any) []listing.MediaItem {
	switch v := value.(type) {
	case []listing.MediaItem:
		return v
	case []any:
		items := make([]listing.MediaItem, 0, len(v))
		for _, raw := range v {
			m, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			item := listing.MediaItem{}
			if s, ok := m["url"].(string); ok {
				item.URL = s
			}
			if s, ok := m["contentType"].(string); ok {
				item.ContentType = s
			}
			if n, ok := toNumber(m["sizeBytes"]); ok {
				item.SizeBytes = int64(n)
			}
			items = append(items, item)
		}
		return items
	}
	return nil
}
