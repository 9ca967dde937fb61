package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/legis-cli/internal/core/domain"
	"github.com/custodia-labs/legis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/legis-cli/internal/core/ports/driving"
	"github.com/custodia-labs/legis-cli/internal/testimony"
)

// Ensure TestimonyService implements the interface.
var _ driving.TestimonyService = (*TestimonyService)(nil)

// TestimonyService drafts testimony documents.
type TestimonyService struct {
	directory driven.CommitteeDirectory
	now       func() time.Time
}

// NewTestimonyService creates a new testimony service.
// directory may be nil, in which case no recipient is ever known.
func NewTestimonyService(directory driven.CommitteeDirectory) *TestimonyService {
	return &TestimonyService{directory: directory, now: time.Now}
}

// Prefill copies the bill number and committee of a bill into t.
// Fields already set are left alone.
func (s *TestimonyService) Prefill(t *domain.Testimony, bill *domain.BillDetail) {
	if t == nil || bill == nil {
		return
	}
	if strings.TrimSpace(t.BillNumber) == "" {
		t.BillNumber = bill.Number
	}
	if strings.TrimSpace(t.Committee) == "" {
		t.Committee = bill.CommitteeName()
	}
}

// Compose validates and renders a testimony.
func (s *TestimonyService) Compose(t domain.Testimony, requireRecipient bool) (*driving.TestimonyDocument, error) {
	if t.Position == "" {
		t.Position = domain.PositionSupport
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if t.Date.IsZero() {
		t.Date = s.now()
	}

	recipient, _ := s.Recipient(t.Committee)
	if requireRecipient {
		if strings.TrimSpace(t.Committee) == "" {
			return nil, fmt.Errorf("%w: committee is required to send testimony", domain.ErrInvalidInput)
		}
		if recipient == "" {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCommittee, strings.TrimSpace(t.Committee))
		}
	}

	html, err := testimony.HTML(t)
	if err != nil {
		return nil, err
	}

	doc := &driving.TestimonyDocument{
		Recipient: recipient,
		Subject:   testimony.Subject(t),
		Text:      testimony.Text(t),
		HTML:      html,
	}
	if recipient != "" {
		doc.Mailto = testimony.Mailto(recipient, doc.Subject, doc.Text)
	}
	return doc, nil
}

// Committees returns the committee names with a configured recipient.
func (s *TestimonyService) Committees() []string {
	if s.directory == nil {
		return nil
	}
	return s.directory.Names()
}

// Recipient looks up the address for a committee.
func (s *TestimonyService) Recipient(committee string) (string, bool) {
	if s.directory == nil || strings.TrimSpace(committee) == "" {
		return "", false
	}
	return s.directory.Lookup(committee)
}
