package services

import (
	"fmt"
	"time"

	"github.com/raulbellosom/travel-sub004/internal/domain/profiles"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/observability/logging"
)

// WizardService exposes the profile engine to the publish wizard: step
// activation, field resolution and per-step validation for an in-progress
// form.
type WizardService struct {
	registry *profiles.Registry
	labels   profiles.LabelResolver
	logger   *logging.ChanneledLogger
}

// NewWizardService creates a new wizard service.
func NewWizardService(registry *profiles.Registry, labels profiles.LabelResolver, logger *logging.ChanneledLogger) *WizardService {
	return &WizardService{
		registry: registry,
		labels:   labels,
		logger:   logger,
	}
}

// Kinds lists the resource kinds a publisher can choose from.
func (s *WizardService) Kinds() []profiles.Kind {
	return s.registry.Kinds()
}

// Steps returns the active wizard steps for the form's current answers.
func (s *WizardService) Steps(kind string, form *profiles.FormState) ([]profiles.Step, error) {
	start := time.Now()

	p, err := s.registry.ResolveProfile(profiles.Kind(kind))
	if err != nil {
		return nil, err
	}

	ctx := profiles.DeriveContext(p, form)
	steps := profiles.ActiveSteps(p, s.labels, ctx)

	s.logger.Wizard().Debug("Resolved active steps", "kind", kind, "steps", len(steps), "duration", time.Since(start))
	return steps, nil
}

// Fields returns the visible fields of one step, labels resolved.
func (s *WizardService) Fields(kind, stepID string, form *profiles.FormState) ([]profiles.Field, error) {
	p, err := s.registry.ResolveProfile(profiles.Kind(kind))
	if err != nil {
		return nil, err
	}
	if !isKnownStep(stepID) {
		return nil, fmt.Errorf("unknown wizard step %q", stepID)
	}

	ctx := profiles.DeriveContext(p, form)
	return profiles.FieldsForStep(p, s.labels, ctx, stepID), nil
}

// ValidateStep checks the current answers of a single step.
func (s *WizardService) ValidateStep(kind, stepID string, form *profiles.FormState) (profiles.StepResult, error) {
	p, err := s.registry.ResolveProfile(profiles.Kind(kind))
	if err != nil {
		return profiles.StepResult{}, err
	}
	if !isKnownStep(stepID) {
		return profiles.StepResult{}, fmt.Errorf("unknown wizard step %q", stepID)
	}

	ctx := profiles.DeriveContext(p, form)
	fields := profiles.FieldsForStep(p, s.labels, ctx, stepID)
	result := profiles.ValidateStep(p, stepID, fields, form, ctx, s.labels)

	if !result.OK {
		s.logger.Wizard().Debug("Step validation failed", "kind", kind, "step", stepID, "errors", len(result.Errors))
	}
	return result, nil
}

// ValidateDocument checks the whole form across every active step.
func (s *WizardService) ValidateDocument(kind string, form *profiles.FormState) (profiles.DocumentResult, error) {
	p, err := s.registry.ResolveProfile(profiles.Kind(kind))
	if err != nil {
		return profiles.DocumentResult{}, err
	}

	return profiles.ValidateDocument(p, form, s.labels), nil
}

func isKnownStep(stepID string) bool {
	for _, id := range profiles.StepOrder() {
		if id == stepID {
			return true
		}
	}
	return false
}
