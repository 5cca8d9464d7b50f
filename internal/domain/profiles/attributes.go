package profiles

// AllowedAttributes returns the attribute allow-list effective under the
// given context.
func (p *Profile) AllowedAttributes(ctx Context) []string {
	if p.allowedAttributes == nil {
		return nil
	}
	return p.allowedAttributes(ctx)
}

// SanitizeAttributes projects a free-form attribute map onto the context's
// allow-list, dropping unknown keys and empty values. This is what keeps
// answers entered under a previously selected category or commercial mode
// from leaking into a saved record. The function is idempotent.
func SanitizeAttributes(p *Profile, ctx Context, attrs map[string]any) map[string]any {
	out := make(map[string]any)
	if len(attrs) == 0 {
		return out
	}

	allowed := make(map[string]bool)
	for _, key := range p.AllowedAttributes(ctx) {
		allowed[key] = true
	}

	for key, value := range attrs {
		if !allowed[key] {
			continue
		}
		if isEmptyValue(value) {
			continue
		}
		out[key] = value
	}
	return out
}

// isEmptyValue reports whether a form value counts as "not answered": nil,
// empty string, or an empty collection. Zero numbers and false booleans are
// real answers.
func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}
