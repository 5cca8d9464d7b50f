package services

import (
	"fmt"
	"time"

	"github.com/raulbellosom/travel-sub004/internal/domain/entities/listing"
	"github.com/raulbellosom/travel-sub004/internal/domain/repositories"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/email"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/email/templates"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/observability/logging"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/security"
	"github.com/raulbellosom/travel-sub004/pkg/config"
)

// ProposalService handles visitor inquiries on manual-contact listings and
// the owner's accept or decline response.
type ProposalService struct {
	proposals repositories.ProposalRepository
	listings  repositories.ListingRepository
	email     email.Service
	logger    *logging.ChanneledLogger
}

// NewProposalService creates a new proposal service. The email service may be
// nil when outbound email is disabled.
func NewProposalService(proposals repositories.ProposalRepository, listings repositories.ListingRepository, emailService email.Service, logger *logging.ChanneledLogger) *ProposalService {
	return &ProposalService{
		proposals: proposals,
		listings:  listings,
		email:     emailService,
		logger:    logger,
	}
}

// Submit records a new pending proposal against a published listing.
func (s *ProposalService) Submit(listingID, senderName, senderEmail, message string) (*listing.Proposal, error) {
	record, err := s.listings.FindByID(listingID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("listing %s not found", listingID)
	}
	if record.Status != listing.StatusPublished {
		return nil, fmt.Errorf("listing %s is not published", listingID)
	}

	proposal := &listing.Proposal{
		ID:          security.GenerateULID(),
		ListingID:   listingID,
		SenderName:  senderName,
		SenderEmail: senderEmail,
		Message:     message,
		Status:      listing.ProposalPending,
		Created:     time.Now().UTC(),
	}

	if err := s.proposals.Store(proposal); err != nil {
		return nil, fmt.Errorf("failed to store proposal: %w", err)
	}

	s.logger.Listing().Info("Proposal submitted", "proposalId", proposal.ID, "listingId", listingID)
	return proposal, nil
}

// Respond accepts or declines a pending proposal and notifies the sender by
// email. A failed notification is logged but never rolls back the response.
func (s *ProposalService) Respond(id string, accept bool, responseMessage string) (*listing.Proposal, error) {
	proposal, err := s.proposals.FindByID(id)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, fmt.Errorf("proposal %s not found", id)
	}
	if proposal.Status != listing.ProposalPending {
		return nil, fmt.Errorf("proposal %s already %s", id, proposal.Status)
	}

	status := listing.ProposalDeclined
	if accept {
		status = listing.ProposalAccepted
	}

	if err := s.proposals.Respond(id, status, responseMessage); err != nil {
		return nil, err
	}

	proposal.Status = status
	proposal.ResponseMessage = responseMessage
	now := time.Now().UTC()
	proposal.Responded = &now

	s.logger.Listing().Info("Proposal responded", "proposalId", id, "status", status)
	s.notifySender(proposal, accept)

	return proposal, nil
}

// ForListing returns all proposals submitted against a listing.
func (s *ProposalService) ForListing(listingID string) ([]*listing.Proposal, error) {
	return s.proposals.FindByListing(listingID)
}

func (s *ProposalService) notifySender(proposal *listing.Proposal, accepted bool) {
	if s.email == nil || !config.ProposalEmailEnabled {
		return
	}

	record, err := s.listings.FindByID(proposal.ListingID)
	if err != nil || record == nil {
		s.logger.Email().Warn("Skipping proposal email, listing not found", "proposalId", proposal.ID, "listingId", proposal.ListingID)
		return
	}

	err = s.email.SendProposalResponseEmail(proposal.SenderEmail, templates.ProposalResponseProps{
		SenderName:      proposal.SenderName,
		ListingTitle:    record.Title,
		Accepted:        accepted,
		ResponseMessage: proposal.ResponseMessage,
	})
	if err != nil {
		s.logger.Email().Error("Failed to send proposal response email", "proposalId", proposal.ID, "error", err.Error())
		return
	}

	s.logger.Email().Info("Proposal response email sent", "proposalId", proposal.ID)
}
