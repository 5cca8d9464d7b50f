package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/raulbellosom/travel-sub004/internal/application/services"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/observability/logging"
)

// CreateSessionRequest opens a checkout session for a listing.
type CreateSessionRequest struct {
	ListingID  string `json:"listingId" validate:"required"`
	SuccessURL string `json:"successUrl" validate:"required,url"`
	CancelURL  string `json:"cancelUrl" validate:"required,url"`
}

// PaymentHandlers contains the checkout session HTTP handlers.
type PaymentHandlers struct {
	paymentService *services.PaymentService
	logger         *logging.ChanneledLogger
	validate       *validator.Validate
}

// NewPaymentHandlers creates payment handlers with injected dependencies
func NewPaymentHandlers(paymentService *services.PaymentService, logger *logging.ChanneledLogger) *PaymentHandlers {
	return &PaymentHandlers{
		paymentService: paymentService,
		logger:         logger,
		validate:       validator.New(),
	}
}

// CreateSession opens a checkout session against a published listing.
func (h *PaymentHandlers) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	session, err := h.paymentService.CreateSession(req.ListingID, req.SuccessURL, req.CancelURL)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSession returns one checkout session by ID.
func (h *PaymentHandlers) GetSession(c *gin.Context) {
	session, err := h.paymentService.GetSession(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "payment session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// CompleteSession marks a session as paid.
func (h *PaymentHandlers) CompleteSession(c *gin.Context) {
	if err := h.paymentService.CompleteSession(c.Param("id")); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// CancelSession marks a session as cancelled.
func (h *PaymentHandlers) CancelSession(c *gin.Context) {
	if err := h.paymentService.CancelSession(c.Param("id")); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
