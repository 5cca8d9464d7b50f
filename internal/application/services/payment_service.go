package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/raulbellosom/travel-sub004/internal/domain/entities/listing"
	"github.com/raulbellosom/travel-sub004/internal/domain/repositories"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/observability/logging"
	"github.com/raulbellosom/travel-sub004/pkg/config"
)

// Payment session statuses.
const (
	PaymentCreated   = "created"
	PaymentCompleted = "completed"
	PaymentCancelled = "cancelled"
)

// CheckoutGateway builds the externally hosted checkout page URL for a
// session. The default implementation links against the configured base URL;
// a real provider integration would swap in its own hosted page here.
type CheckoutGateway interface {
	CheckoutURL(sessionID string) string
}

type configGateway struct{}

func (configGateway) CheckoutURL(sessionID string) string {
	return fmt.Sprintf("%s/%s", config.CheckoutBaseURL, sessionID)
}

// NewConfigGateway returns a gateway that links sessions to the checkout
// page configured via CHECKOUT_BASE_URL.
func NewConfigGateway() CheckoutGateway {
	return configGateway{}
}

// PaymentService creates and resolves checkout sessions for listings.
type PaymentService struct {
	sessions repositories.PaymentSessionRepository
	listings repositories.ListingRepository
	gateway  CheckoutGateway
	logger   *logging.ChanneledLogger
}

// NewPaymentService creates a new payment service.
func NewPaymentService(sessions repositories.PaymentSessionRepository, listings repositories.ListingRepository, gateway CheckoutGateway, logger *logging.ChanneledLogger) *PaymentService {
	return &PaymentService{
		sessions: sessions,
		listings: listings,
		gateway:  gateway,
		logger:   logger,
	}
}

// CreateSession opens a checkout session against a published listing with a
// price. The checkout URL points at the external payment page for the
// session ID.
func (s *PaymentService) CreateSession(listingID, successURL, cancelURL string) (*listing.PaymentSession, error) {
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
	if record.Price == nil || *record.Price <= 0 {
		return nil, fmt.Errorf("listing %s has no payable price", listingID)
	}

	sessionID := uuid.NewString()
	session := &listing.PaymentSession{
		ID:          sessionID,
		ListingID:   listingID,
		Amount:      *record.Price,
		Currency:    record.Currency,
		SuccessURL:  successURL,
		CancelURL:   cancelURL,
		CheckoutURL: s.gateway.CheckoutURL(sessionID),
		Status:      PaymentCreated,
		Created:     time.Now().UTC(),
	}

	if err := s.sessions.Store(session); err != nil {
		return nil, fmt.Errorf("failed to store payment session: %w", err)
	}

	s.logger.Payment().Info("Payment session created", "sessionId", session.ID, "listingId", listingID, "amount", session.Amount, "currency", session.Currency)
	return session, nil
}

// CompleteSession marks a session as paid.
func (s *PaymentService) CompleteSession(id string) error {
	return s.transition(id, PaymentCompleted)
}

// CancelSession marks a session as cancelled.
func (s *PaymentService) CancelSession(id string) error {
	return s.transition(id, PaymentCancelled)
}

// GetSession returns one session by ID, or nil when it does not exist.
func (s *PaymentService) GetSession(id string) (*listing.PaymentSession, error) {
	return s.sessions.FindByID(id)
}

// SessionsForListing returns all sessions opened against a listing.
func (s *PaymentService) SessionsForListing(listingID string) ([]*listing.PaymentSession, error) {
	return s.sessions.FindByListing(listingID)
}

func (s *PaymentService) transition(id, status string) error {
	session, err := s.sessions.FindByID(id)
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("payment session %s not found", id)
	}
	if session.Status != PaymentCreated {
		return fmt.Errorf("payment session %s already %s", id, session.Status)
	}

	if err := s.sessions.UpdateStatus(id, status); err != nil {
		return err
	}

	s.logger.Payment().Info("Payment session updated", "sessionId", id, "status", status)
	return nil
}
