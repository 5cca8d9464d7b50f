package templates

import "fmt"

// ProposalResponseProps feeds the proposal response email body.
type ProposalResponseProps struct {
	SenderName      string
	ListingTitle    string
	Accepted        bool
	ResponseMessage string
	ListingURL      string
}

// GetProposalResponseContent composes the inner HTML for a proposal
// accepted or declined notification.
func GetProposalResponseContent(props ProposalResponseProps) string {
	verdict := "declined"
	if props.Accepted {
		verdict = "accepted"
	}

	content := GetEmailParagraph(fmt.Sprintf("Hi %s,", props.SenderName))
	content += GetEmailParagraph(fmt.Sprintf(
		"Your inquiry about “%s” was %s by the owner.", props.ListingTitle, verdict))

	if props.ResponseMessage != "" {
		content += GetEmailParagraph(props.ResponseMessage)
	}

	if props.ListingURL != "" {
		content += GetEmailButton(ButtonProps{
			Text: "View listing",
			URL:  props.ListingURL,
		})
	}

	return content
}
