// Package handlers provides HTTP handlers for the listings API.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raulbellosom/travel-sub004/internal/application/services"
	"github.com/raulbellosom/travel-sub004/internal/domain/profiles"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/observability/logging"
)

// WizardStateRequest carries the current form answers for step and field
// resolution.
type WizardStateRequest struct {
	Form profiles.FormState `json:"form"`
}

// WizardHandlers contains the publish wizard HTTP handlers.
type WizardHandlers struct {
	wizardService *services.WizardService
	logger        *logging.ChanneledLogger
}

// NewWizardHandlers creates wizard handlers with injected dependencies
func NewWizardHandlers(wizardService *services.WizardService, logger *logging.ChanneledLogger) *WizardHandlers {
	return &WizardHandlers{
		wizardService: wizardService,
		logger:        logger,
	}
}

// GetKinds returns the resource kinds a publisher can choose from.
func (h *WizardHandlers) GetKinds(c *gin.Context) {
	kinds := h.wizardService.Kinds()
	c.JSON(http.StatusOK, gin.H{
		"kinds": kinds,
		"count": len(kinds),
	})
}

// GetSteps returns the active steps for the posted form state.
func (h *WizardHandlers) GetSteps(c *gin.Context) {
	start := time.Now()
	kind := c.Param("kind")

	var req WizardStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	steps, err := h.wizardService.Steps(kind, &req.Form)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	h.logger.Wizard().Debug("Steps request completed", "kind", kind, "steps", len(steps), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"steps": steps})
}

// GetFields returns the visible fields of one step for the posted form state.
func (h *WizardHandlers) GetFields(c *gin.Context) {
	kind := c.Param("kind")
	stepID := c.Param("stepId")

	var req WizardStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	fields, err := h.wizardService.Fields(kind, stepID, &req.Form)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"fields": fields})
}

// ValidateStep checks one step's answers and returns field-keyed errors.
func (h *WizardHandlers) ValidateStep(c *gin.Context) {
	kind := c.Param("kind")
	stepID := c.Param("stepId")

	var req WizardStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	result, err := h.wizardService.ValidateStep(kind, stepID, &req.Form)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ValidateDocument checks the whole form across every active step.
func (h *WizardHandlers) ValidateDocument(c *gin.Context) {
	kind := c.Param("kind")

	var req WizardStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	result, err := h.wizardService.ValidateDocument(kind, &req.Form)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
