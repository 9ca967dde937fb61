package driving

import "github.com/custodia-labs/legis-cli/internal/core/domain"

// TestimonyDocument is a rendered testimony ready to send or save.
type TestimonyDocument struct {
	// Recipient is the committee address, empty when unknown.
	Recipient string

	Subject string
	Text    string
	HTML    string

	// Mailto is a mailto: URL, empty when Recipient is empty.
	Mailto string
}

// TestimonyService drafts testimony for committee hearings.
type TestimonyService interface {
	// Prefill copies the bill number and committee of a bill into t.
	Prefill(t *domain.Testimony, bill *domain.BillDetail)

	// Compose validates and renders t. When requireRecipient is set it fails
	// with domain.ErrUnknownCommittee unless the committee has an address.
	Compose(t domain.Testimony, requireRecipient bool) (*TestimonyDocument, error)

	// Committees returns the committee names with a configured recipient.
	Committees() []string

	// Recipient looks up the address for a committee.
	Recipient(committee string) (string, bool)
}
