package driving

import (
	"context"

	"github.com/custodia-labs/legis-cli/internal/core/domain"
)

// BillService retrieves normalised legislative data for display.
type BillService interface {
	// Sessions lists the sessions for a jurisdiction in upstream order.
	Sessions(ctx context.Context, jurisdiction string) ([]domain.Session, error)

	// CurrentSession selects the current session for a jurisdiction.
	CurrentSession(ctx context.Context, jurisdiction string) (domain.Session, error)

	// SessionPolicy reports how the current session is chosen from a listing.
	SessionPolicy() domain.SessionPolicy

	// Bills lists the bills of a session, malformed records dropped.
	Bills(ctx context.Context, sessionID int) ([]domain.BillSummary, error)

	// CurrentBills resolves the current session and lists its bills.
	CurrentBills(ctx context.Context, jurisdiction string) (*SessionBills, error)

	// Bill retrieves the full record of one bill.
	Bill(ctx context.Context, billID int) (*domain.BillDetail, error)

	// BillsByID retrieves several bills concurrently, in argument order.
	BillsByID(ctx context.Context, billIDs ...int) ([]*domain.BillDetail, error)

	// Text retrieves the content of a bill document.
	Text(ctx context.Context, docID int) (*domain.BillText, error)

	// Search runs a full-text search; year 0 means the upstream default.
	Search(ctx context.Context, jurisdiction, query string, year int) (*domain.SearchResults, error)

	// FilterBills narrows a listing by chamber and query. It does no I/O.
	FilterBills(bills []domain.BillSummary, filter domain.BillFilter) []domain.BillSummary
}

// SessionBills pairs a session with its bill listing.
type SessionBills struct {
	Session domain.Session       `json:"session"`
	Bills   []domain.BillSummary `json:"bills"`
}
