package profiles

// AllowedPricingChoices returns the selectable pricing-choice ids for a
// (category, commercialMode) pair. The UI only offers this restricted set;
// the validator enforces it.
func (p *Profile) AllowedPricingChoices(category string, mode CommercialMode) []string {
	if p.choicesFor == nil {
		return nil
	}
	return p.choicesFor(category, mode)
}

// PricingModelFor resolves a human pricing-choice id to its canonical model.
func (p *Profile) PricingModelFor(choiceID string) (PricingModel, bool) {
	for _, pc := range p.pricingChoices {
		if pc.id == choiceID {
			return pc.model, true
		}
	}
	return "", false
}

// PricingChoiceFor is the reverse inference used in edit mode: given a stored
// canonical model and the current commercial mode, pick the most specific
// matching choice id, falling back to the mode's default. Several choice ids
// can map to one canonical model across kinds, so this inverse is lossy by
// design; the UI-only choice id is never persisted.
func (p *Profile) PricingChoiceFor(model PricingModel, ctx Context) string {
	allowed := p.AllowedPricingChoices(ctx.Category, ctx.Mode)
	for _, id := range allowed {
		if m, ok := p.PricingModelFor(id); ok && m == model {
			return id
		}
	}
	if def, ok := p.defaultChoice[ctx.Mode]; ok {
		return def
	}
	if len(allowed) > 0 {
		return allowed[0]
	}
	return ""
}
