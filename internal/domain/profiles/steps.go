package profiles

// Step identifiers in the fixed narrative order shared by all profiles.
const (
	StepPublishWhat = "publish-what"
	StepHowOffer    = "how-offer"
	StepDescribe    = "describe"
	StepDetails     = "details"
	StepConditions  = "conditions"
	StepPrice       = "price"
	StepLocation    = "location"
	StepReview      = "review"
)

// stepOrder is the fixed narrative; activation never reorders it.
var stepOrder = []string{
	StepPublishWhat,
	StepHowOffer,
	StepDescribe,
	StepDetails,
	StepConditions,
	StepPrice,
	StepLocation,
	StepReview,
}

// StepOrder returns the narrative order of step ids.
func StepOrder() []string {
	out := make([]string, len(stepOrder))
	copy(out, stepOrder)
	return out
}

// stepIndex resolves a step id to its narrative position, or -1.
func stepIndex(stepID string) int {
	for i, id := range stepOrder {
		if id == stepID {
			return i
		}
	}
	return -1
}

// Step is one wizard screen.
type Step struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// FieldsForStep returns the fields of a step for the current context, with
// context-suppressed fields removed and labels resolved. The review step
// carries no fields; it is a read-only summary built by the UI from the other
// steps' field lookups.
func FieldsForStep(p *Profile, labels LabelResolver, ctx Context, stepID string) []Field {
	if labels == nil {
		labels = DefaultLabels()
	}
	if stepID == StepReview {
		return nil
	}

	declared := p.fieldsFor(ctx, stepID)
	fields := make([]Field, 0, len(declared))
	for _, f := range declared {
		if !f.Visible(ctx) {
			continue
		}
		f.Label = labels.Resolve(f.labelKey)
		for i := range f.Options {
			f.Options[i].Label = labels.Resolve(f.Options[i].labelKey)
		}
		fields = append(fields, f)
	}
	return fields
}

// ActiveSteps returns the steps that currently apply: every narrative step
// with a non-empty field list for the context, plus the terminal review step,
// which is always present. The wizard never shows an empty step and never
// hides the summary.
func ActiveSteps(p *Profile, labels LabelResolver, ctx Context) []Step {
	if labels == nil {
		labels = DefaultLabels()
	}

	steps := make([]Step, 0, len(stepOrder))
	for _, id := range stepOrder {
		if id != StepReview && len(FieldsForStep(p, labels, ctx, id)) == 0 {
			continue
		}
		steps = append(steps, Step{
			ID:          id,
			Title:       labels.Resolve("step." + id + ".title"),
			Description: labels.Resolve("step." + id + ".description"),
		})
	}
	return steps
}
