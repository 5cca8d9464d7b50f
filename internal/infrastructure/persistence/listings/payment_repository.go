package listings

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/raulbellosom/travel-sub004/internal/domain/entities/listing"
)

type PaymentSessionRepository struct {
	db *sql.DB
}

func NewPaymentSessionRepository(db *sql.DB) *PaymentSessionRepository {
	return &PaymentSessionRepository{db: db}
}

func (r *PaymentSessionRepository) FindByID(id string) (*listing.PaymentSession, error) {
	query := `SELECT id, listing_id, amount, currency, success_url, cancel_url,
		checkout_url, status, created FROM payment_sessions WHERE id = ?`

	session, err := scanPaymentSession(r.db.QueryRow(query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (r *PaymentSessionRepository) FindByListing(listingID string) ([]*listing.PaymentSession, error) {
	query := `SELECT id, listing_id, amount, currency, success_url, cancel_url,
		checkout_url, status, created FROM payment_sessions
		WHERE listing_id = ? ORDER BY created DESC`

	rows, err := r.db.Query(query, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*listing.PaymentSession
	for rows.Next() {
		session, err := scanPaymentSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return sessions, nil
}

func (r *PaymentSessionRepository) Store(session *listing.PaymentSession) error {
	query := `INSERT INTO payment_sessions (id, listing_id, amount, currency,
		success_url, cancel_url, checkout_url, status, created)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query, session.ID, session.ListingID, session.Amount,
		session.Currency, session.SuccessURL, session.CancelURL,
		session.CheckoutURL, session.Status, session.Created)
	if err != nil {
		return fmt.Errorf("failed to insert payment session: %w", err)
	}
	return nil
}

func (r *PaymentSessionRepository) UpdateStatus(id, status string) error {
	query := `UPDATE payment_sessions SET status = ? WHERE id = ?`

	if _, err := r.db.Exec(query, status, id); err != nil {
		return fmt.Errorf("failed to update payment session: %w", err)
	}
	return nil
}

func scanPaymentSession(scan func(dest ...any) error) (*listing.PaymentSession, error) {
	var session listing.PaymentSession
	var successURL, cancelURL, checkoutURL sql.NullString
	var createdStr string

	err := scan(&session.ID, &session.ListingID, &session.Amount, &session.Currency,
		&successURL, &cancelURL, &checkoutURL, &session.Status, &createdStr)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment session: %w", err)
	}

	session.SuccessURL = successURL.String
	session.CancelURL = cancelURL.String
	session.CheckoutURL = checkoutURL.String

	if created, err := time.Parse("2006-01-02 15:04:05", createdStr); err == nil {
		session.Created = created
	}

	return &session, nil
}
