package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raulbellosom/travel-sub004/internal/application/services"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/observability/logging"
)

// SubmitProposalRequest is a visitor inquiry on a manual-contact listing.
type SubmitProposalRequest struct {
	SenderName  string `json:"senderName" binding:"required"`
	SenderEmail string `json:"senderEmail" binding:"required,email"`
	Message     string `json:"message"`
}

// RespondProposalRequest is the owner's accept or decline.
type RespondProposalRequest struct {
	Accept  bool   `json:"accept"`
	Message string `json:"message"`
}

// ProposalHandlers contains the proposal HTTP handlers.
type ProposalHandlers struct {
	proposalService *services.ProposalService
	logger          *logging.ChanneledLogger
}

// NewProposalHandlers creates proposal handlers with injected dependencies
func NewProposalHandlers(proposalService *services.ProposalService, logger *logging.ChanneledLogger) *ProposalHandlers {
	return &ProposalHandlers{
		proposalService: proposalService,
		logger:          logger,
	}
}

// SubmitProposal records a new pending inquiry.
func (h *ProposalHandlers) SubmitProposal(c *gin.Context) {
	listingID := c.Param("id")

	var req SubmitProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	proposal, err := h.proposalService.Submit(listingID, req.SenderName, req.SenderEmail, req.Message)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, proposal)
}

// RespondProposal accepts or declines a pending proposal.
func (h *ProposalHandlers) RespondProposal(c *gin.Context) {
	id := c.Param("id")

	var req RespondProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	proposal, err := h.proposalService.Respond(id, req.Accept, req.Message)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, proposal)
}

// ListProposals returns the proposals submitted against a listing.
func (h *ProposalHandlers) ListProposals(c *gin.Context) {
	proposals, err := h.proposalService.ForListing(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"proposals": proposals,
		"count":     len(proposals),
	})
}
