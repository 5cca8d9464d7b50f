package listings

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/raulbellosom/travel-sub004/internal/domain/entities/listing"
)

type ProposalRepository struct {
	db *sql.DB
}

func NewProposalRepository(db *sql.DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

func (r *ProposalRepository) FindByID(id string) (*listing.Proposal, error) {
	query := `SELECT id, listing_id, sender_name, sender_email, message, status,
		response_message, created, responded FROM proposals WHERE id = ?`

	proposal, err := scanProposal(r.db.QueryRow(query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return proposal, nil
}

func (r *ProposalRepository) FindByListing(listingID string) ([]*listing.Proposal, error) {
	query := `SELECT id, listing_id, sender_name, sender_email, message, status,
		response_message, created, responded FROM proposals
		WHERE listing_id = ? ORDER BY created DESC`

	rows, err := r.db.Query(query, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query proposals: %w", err)
	}
	defer rows.Close()

	var proposals []*listing.Proposal
	for rows.Next() {
		proposal, err := scanProposal(rows.Scan)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, proposal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return proposals, nil
}

func (r *ProposalRepository) Store(proposal *listing.Proposal) error {
	query := `INSERT INTO proposals (id, listing_id, sender_name, sender_email,
		message, status, response_message, created, responded)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query, proposal.ID, proposal.ListingID, proposal.SenderName,
		proposal.SenderEmail, proposal.Message, proposal.Status,
		proposal.ResponseMessage, proposal.Created, proposal.Responded)
	if err != nil {
		return fmt.Errorf("failed to insert proposal: %w", err)
	}
	return nil
}

func (r *ProposalRepository) Respond(id, status, responseMessage string) error {
	now := time.Now().UTC()
	query := `UPDATE proposals SET status = ?, response_message = ?, responded = ? WHERE id = ?`

	if _, err := r.db.Exec(query, status, responseMessage, now, id); err != nil {
		return fmt.Errorf("failed to update proposal: %w", err)
	}
	return nil
}

func scanProposal(scan func(dest ...any) error) (*listing.Proposal, error) {
	var proposal listing.Proposal
	var message, responseMessage sql.NullString
	var createdStr string
	var responded sql.NullString

	err := scan(&proposal.ID, &proposal.ListingID, &proposal.SenderName,
		&proposal.SenderEmail, &message, &proposal.Status, &responseMessage,
		&createdStr, &responded)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan proposal: %w", err)
	}

	proposal.Message = message.String
	proposal.ResponseMessage = responseMessage.String

	if created, err := time.Parse("2006-01-02 15:04:05", createdStr); err == nil {
		proposal.Created = created
	}
	if responded.Valid {
		if respondedTime, err := time.Parse("2006-01-02 15:04:05", responded.String); err == nil {
			proposal.Responded = &respondedTime
		}
	}

	return &proposal, nil
}
