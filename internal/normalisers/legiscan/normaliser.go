package legiscan

import (
	"encoding/base64"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/custodia-labs/legis-cli/internal/core/domain"
	"github.com/custodia-labs/legis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/legis-cli/internal/logger"
)

// sponsorTypePrimary is the upstream sponsor_type_id of a primary sponsor.
const sponsorTypePrimary = 1

// Ensure Normaliser implements the interface.
var _ driven.BillNormaliser = (*Normaliser)(nil)

// Normaliser converts raw LegiScan records into domain types.
type Normaliser struct {
	now func() time.Time
}

// New creates a normaliser using the system clock.
func New() *Normaliser {
	return &Normaliser{now: time.Now}
}

// NewWithClock creates a normaliser whose defaulted dates come from now.
func NewWithClock(now func() time.Time) *Normaliser {
	if now == nil {
		now = time.Now
	}
	return &Normaliser{now: now}
}

func (n *Normaliser) timestamp() string {
	return n.now().UTC().Format(time.RFC3339)
}

// ToSummary maps one master-list record.
func (n *Normaliser) ToSummary(raw domain.RawBill) (domain.BillSummary, bool) {
	if !raw.BillID.Truthy() {
		return domain.BillSummary{}, false
	}
	if !raw.Number.Truthy() {
		logger.Warn("bill %d has no bill number", raw.BillID.Value)
		return domain.BillSummary{}, false
	}

	number := raw.Number.Value
	statusDate := raw.StatusDate.Or(n.timestamp())
	code := raw.Status.Or(0)

	return domain.BillSummary{
		ID:             raw.BillID.Value,
		Number:         number,
		Title:          raw.Title.Or(domain.DefaultTitle),
		Description:    raw.Description.String(),
		StatusCode:     code,
		Status:         domain.StatusLabel(code),
		Chamber:        domain.ChamberOf(number),
		StatusDate:     statusDate,
		LastActionDate: raw.LastActionDate.Or(statusDate),
		LastAction:     raw.LastAction.Or(domain.DefaultLastAction),
		URL:            raw.URL.String(),
		StateLink:      raw.StateLink.String(),
		ChangeHash:     raw.ChangeHash.String(),
	}, true
}

// ToSummaries maps a batch, dropping and logging malformed records.
func (n *Normaliser) ToSummaries(raws []domain.RawBill) []domain.BillSummary {
	out := make([]domain.BillSummary, 0, len(raws))
	skipped := 0
	for i, raw := range raws {
		summary, ok := n.ToSummary(raw)
		if !ok {
			skipped++
			logger.Debug("Skipping master list entry %d: missing bill id or number", i)
			continue
		}
		out = append(out, summary)
	}
	if skipped > 0 {
		logger.Info("Normalised %d bills, skipped %d malformed entries", len(out), skipped)
	}
	return out
}

// ToDetail maps a full bill record.
func (n *Normaliser) ToDetail(raw domain.RawBillDetail) (*domain.BillDetail, error) {
	if !raw.BillID.Truthy() || !raw.BillNumber.Truthy() {
		return nil, fmt.Errorf("%w: bill detail lacks id or number", domain.ErrMalformedRecord)
	}

	history := make([]domain.HistoryEntry, 0, len(raw.History))
	for _, h := range raw.History {
		history = append(history, domain.HistoryEntry{
			Date:    h.Date.String(),
			Action:  h.Action.String(),
			Chamber: h.Chamber.String(),
		})
	}
	// Upstream lists history oldest first.
	slices.Reverse(history)

	number := raw.BillNumber.Value
	statusDate := raw.StatusDate.Or(n.timestamp())
	code := raw.Status.Or(0)

	lastAction := domain.DefaultLastAction
	lastActionDate := statusDate
	if len(history) > 0 {
		if history[0].Action != "" {
			lastAction = history[0].Action
		}
		if history[0].Date != "" {
			lastActionDate = history[0].Date
		}
	}

	detail := &domain.BillDetail{
		BillSummary: domain.BillSummary{
			ID:             raw.BillID.Value,
			Number:         number,
			Title:          raw.Title.Or(domain.DefaultTitle),
			Description:    raw.Description.String(),
			StatusCode:     code,
			Status:         domain.StatusLabel(code),
			Chamber:        domain.ChamberOf(number),
			StatusDate:     statusDate,
			LastActionDate: lastActionDate,
			LastAction:     lastAction,
			URL:            raw.URL.String(),
			StateLink:      raw.StateLink.String(),
			ChangeHash:     raw.ChangeHash.String(),
		},
		State:     raw.State.String(),
		Session:   raw.Session.Session(raw.State.String()),
		Sponsors:  toSponsors(raw.Sponsors),
		History:   history,
		Documents: toDocuments(raw.Texts),
	}

	if !raw.Committee.IsZero() {
		detail.Committee = &domain.Committee{
			ID:      raw.Committee.CommitteeID.Or(0),
			Chamber: raw.Committee.Chamber.String(),
			Name:    raw.Committee.Name.String(),
		}
	}

	return detail, nil
}

func toSponsors(raws []domain.RawSponsor) []domain.Sponsor {
	sponsors := make([]domain.Sponsor, 0, len(raws))
	for _, s := range raws {
		name := s.Name.String()
		if name == "" {
			name = strings.TrimSpace(s.FirstName.String() + " " + s.LastName.String())
		}

		role := domain.SponsorRoleCo
		if s.SponsorTypeID.Or(0) == sponsorTypePrimary {
			role = domain.SponsorRolePrimary
		}

		sponsors = append(sponsors, domain.Sponsor{
			ID:       s.PeopleID.Or(0),
			Name:     name,
			Party:    s.Party.String(),
			District: s.District.String(),
			Role:     role,
		})
	}
	return sponsors
}

func toDocuments(raws []domain.RawText) []domain.BillDocument {
	docs := make([]domain.BillDocument, 0, len(raws))
	for _, t := range raws {
		docs = append(docs, domain.BillDocument{
			ID:        t.DocID.Or(0),
			Date:      t.Date.String(),
			Type:      t.Type.String(),
			MIME:      t.MIME.String(),
			URL:       t.URL.String(),
			StateLink: t.StateLink.String(),
		})
	}
	return docs
}

// ToBillText maps a bill text record and decodes its base64 body.
func (n *Normaliser) ToBillText(raw domain.RawBillText) (*domain.BillText, error) {
	if !raw.DocID.Truthy() {
		return nil, fmt.Errorf("%w: bill text lacks doc id", domain.ErrMalformedRecord)
	}

	content, err := base64.StdEncoding.DecodeString(strings.TrimSpace(raw.Doc.Value))
	if err != nil {
		return nil, fmt.Errorf("%w: decode document %d: %v", domain.ErrMalformedRecord, raw.DocID.Value, err)
	}

	return &domain.BillText{
		DocID:     raw.DocID.Value,
		BillID:    raw.BillID.Or(0),
		Date:      raw.Date.String(),
		Type:      raw.Type.String(),
		MIME:      raw.MIME.String(),
		URL:       raw.URL.String(),
		StateLink: raw.StateLink.String(),
		Content:   content,
	}, nil
}

// ToSearchResults maps a search result, dropping hits without a bill id.
func (n *Normaliser) ToSearchResults(raw domain.RawSearchResult) domain.SearchResults {
	results := domain.SearchResults{
		Summary: domain.SearchSummary{
			Query:     raw.Summary.Query.String(),
			Count:     raw.Summary.Count.Or(0),
			Page:      raw.Summary.PageCurrent.Or(0),
			PageTotal: raw.Summary.PageTotal.Or(0),
		},
		Hits: make([]domain.SearchHit, 0, len(raw.Hits)),
	}

	for _, h := range raw.Hits {
		if !h.BillID.Truthy() {
			continue
		}
		number := h.BillNumber.String()
		results.Hits = append(results.Hits, domain.SearchHit{
			Relevance:      h.Relevance.Or(0),
			BillID:         h.BillID.Value,
			Number:         number,
			Title:          h.Title.Or(domain.DefaultTitle),
			LastAction:     h.LastAction.Or(domain.DefaultLastAction),
			LastActionDate: h.LastActionDate.String(),
			URL:            h.URL.String(),
			TextURL:        h.TextURL.String(),
			Chamber:        domain.ChamberOf(number),
		})
	}
	return results
}
