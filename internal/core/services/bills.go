package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/legis-cli/internal/core/domain"
	"github.com/custodia-labs/legis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/legis-cli/internal/core/ports/driving"
	"github.com/custodia-labs/legis-cli/internal/logger"
)

// Ensure BillService implements the interface.
var _ driving.BillService = (*BillService)(nil)

// maxConcurrentFetches bounds BillsByID.
const maxConcurrentFetches = 4

// BillService composes the resolver and normaliser for display.
type BillService struct {
	resolver   *Resolver
	normaliser driven.BillNormaliser
}

// NewBillService creates a new bill service.
func NewBillService(resolver *Resolver, normaliser driven.BillNormaliser) *BillService {
	return &BillService{
		resolver:   resolver,
		normaliser: normaliser,
	}
}

// Sessions lists the sessions of a jurisdiction.
func (s *BillService) Sessions(ctx context.Context, jurisdiction string) ([]domain.Session, error) {
	return s.resolver.ListSessions(ctx, jurisdiction)
}

// CurrentSession selects the current session of a jurisdiction.
func (s *BillService) CurrentSession(ctx context.Context, jurisdiction string) (domain.Session, error) {
	return s.resolver.CurrentSession(ctx, jurisdiction)
}

// SessionPolicy reports how CurrentSession chooses.
func (s *BillService) SessionPolicy() domain.SessionPolicy {
	return s.resolver.Policy()
}

// Bills lists a session's bills, dropping malformed records.
func (s *BillService) Bills(ctx context.Context, sessionID int) ([]domain.BillSummary, error) {
	logger.Section("Bill Listing")

	raws, err := s.resolver.ListBills(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.summarise(sessionID, raws), nil
}

func (s *BillService) summarise(sessionID int, raws []domain.RawBill) []domain.BillSummary {
	bills := s.normaliser.ToSummaries(raws)
	logger.Info("Session %d: %d records, %d bills", sessionID, len(raws), len(bills))
	return bills
}

// CurrentBills resolves the current session and lists its bills.
func (s *BillService) CurrentBills(ctx context.Context, jurisdiction string) (*driving.SessionBills, error) {
	logger.Section("Bill Listing")

	session, raws, err := s.resolver.ListCurrentJurisdictionBills(ctx, jurisdiction)
	if err != nil {
		return nil, err
	}

	return &driving.SessionBills{Session: session, Bills: s.summarise(session.ID, raws)}, nil
}

// Bill retrieves the full record of one bill.
func (s *BillService) Bill(ctx context.Context, billID int) (*domain.BillDetail, error) {
	raw, err := s.resolver.GetBillDetail(ctx, billID)
	if err != nil {
		return nil, err
	}
	return s.normaliser.ToDetail(raw)
}

// BillsByID retrieves several bills concurrently. Results keep argument
// order; the first failure cancels the remaining requests and is returned.
// Every id is validated before any request is made.
func (s *BillService) BillsByID(ctx context.Context, billIDs ...int) ([]*domain.BillDetail, error) {
	for _, id := range billIDs {
		if err := domain.ValidateID("bill", id); err != nil {
			return nil, err
		}
	}

	details := make([]*domain.BillDetail, len(billIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i, id := range billIDs {
		g.Go(func() error {
			detail, err := s.Bill(gctx, id)
			if err != nil {
				return fmt.Errorf("bill %d: %w", id, err)
			}
			details[i] = detail
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}

// Text retrieves the decoded content of a bill document.
func (s *BillService) Text(ctx context.Context, docID int) (*domain.BillText, error) {
	raw, err := s.resolver.GetBillText(ctx, docID)
	if err != nil {
		return nil, err
	}
	return s.normaliser.ToBillText(raw)
}

// Search runs a full-text search.
func (s *BillService) Search(ctx context.Context, jurisdiction, query string, year int) (*domain.SearchResults, error) {
	raw, err := s.resolver.Search(ctx, jurisdiction, query, year)
	if err != nil {
		return nil, err
	}
	results := s.normaliser.ToSearchResults(raw)
	return &results, nil
}

// FilterBills keeps the bills matching the filter's chamber and query.
func (s *BillService) FilterBills(bills []domain.BillSummary, filter domain.BillFilter) []domain.BillSummary {
	out := make([]domain.BillSummary, 0, len(bills))
	for _, b := range bills {
		if filter.Chamber != "" && b.Chamber != filter.Chamber {
			continue
		}
		if !b.Matches(filter.Query) {
			continue
		}
		out = append(out, b)
	}
	return out
}
