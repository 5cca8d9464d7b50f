// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"
	"os"

	"github.com/resendlabs/resend-go"

	"github.com/raulbellosom/travel-sub004/internal/infrastructure/email/templates"
)

// Service defines the interface for sending emails, allowing for mock implementations in tests.
type Service interface {
	SendProposalResponseEmail(toEmail string, props templates.ProposalResponseProps) error
}

// ResendClient is the concrete implementation of the email Service using the Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	fromName  string
}

// NewService creates a new email service client, returning the Service interface.
func NewService() (Service, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	fromEmail := os.Getenv("LISTING_EMAIL_FROM")
	if fromEmail == "" {
		fromEmail = "noreply@listings.local"
	}

	fromName := os.Getenv("LISTING_EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "Listings"
	}

	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}, nil
}

// SendProposalResponseEmail notifies a proposal sender that the owner responded.
func (c *ResendClient) SendProposalResponseEmail(toEmail string, props templates.ProposalResponseProps) error {
	subject := "Your inquiry was declined"
	if props.Accepted {
		subject = "Your inquiry was accepted"
	}

	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader: subject,
		Content:   templates.GetProposalResponseContent(props),
	})

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    htmlContent,
	}

	_, err := c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send proposal response email via Resend: %w", err)
	}

	return nil
}
