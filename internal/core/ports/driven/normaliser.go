package driven

import "github.com/custodia-labs/legis-cli/internal/core/domain"

// BillNormaliser maps raw upstream records onto stable domain shapes.
// Implementations are pure: the only ambient input is the clock used for
// defaulted dates.
type BillNormaliser interface {
	// ToSummary maps one master-list record.
	// Returns false when the record lacks an id or a number.
	ToSummary(raw domain.RawBill) (domain.BillSummary, bool)

	// ToSummaries maps a batch, dropping malformed records.
	ToSummaries(raws []domain.RawBill) []domain.BillSummary

	// ToDetail maps a full bill record. History comes back newest first.
	ToDetail(raw domain.RawBillDetail) (*domain.BillDetail, error)

	// ToBillText maps a bill text record, decoding its content.
	ToBillText(raw domain.RawBillText) (*domain.BillText, error)

	// ToSearchResults maps a search result, dropping hits without an id.
	ToSearchResults(raw domain.RawSearchResult) domain.SearchResults
}
