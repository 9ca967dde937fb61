package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/legis-cli/internal/core/domain"
	"github.com/custodia-labs/legis-cli/internal/core/ports/driven"
	"github.com/custodia-labs/legis-cli/internal/logger"
)

// Resolver maps upstream operations onto raw domain records.
// Every call issues its own request; nothing is cached or shared.
type Resolver struct {
	transport driven.Transport
	policy    domain.SessionPolicy
}

// NewResolver creates a resolver. An invalid policy falls back to
// domain.SessionPolicyFirst.
func NewResolver(transport driven.Transport, policy domain.SessionPolicy) *Resolver {
	if !policy.IsValid() {
		policy = domain.SessionPolicyFirst
	}
	return &Resolver{transport: transport, policy: policy}
}

// Policy returns the session selection policy in use.
func (r *Resolver) Policy() domain.SessionPolicy {
	return r.policy
}

func normaliseJurisdiction(jurisdiction string) (string, error) {
	j := strings.ToUpper(strings.TrimSpace(jurisdiction))
	if j == "" {
		return "", fmt.Errorf("%w: jurisdiction is required", domain.ErrInvalidInput)
	}
	return j, nil
}

// ListSessions returns the sessions of a jurisdiction in upstream order.
// A response without sessions yields an empty slice.
func (r *Resolver) ListSessions(ctx context.Context, jurisdiction string) ([]domain.Session, error) {
	state, err := normaliseJurisdiction(jurisdiction)
	if err != nil {
		return nil, err
	}

	payload, err := r.transport.Request(ctx, driven.OpGetSessionList, driven.Params{"state": state})
	if err != nil {
		return nil, err
	}

	var raws []json.RawMessage
	if _, err := payload.Decode("sessions", &raws); err != nil {
		return nil, fmt.Errorf("%w: sessions: %v", domain.ErrMalformedRecord, err)
	}

	sessions := make([]domain.Session, 0, len(raws))
	for i, raw := range raws {
		var rs domain.RawSession
		if err := json.Unmarshal(raw, &rs); err != nil {
			logger.Warn("Skipping session entry %d: %v", i, err)
			continue
		}
		sessions = append(sessions, rs.Session(state))
	}
	return sessions, nil
}

// CurrentSession selects the current session according to the policy.
// It fails with *domain.NoSessionError when the jurisdiction has none.
func (r *Resolver) CurrentSession(ctx context.Context, jurisdiction string) (domain.Session, error) {
	sessions, err := r.ListSessions(ctx, jurisdiction)
	if err != nil {
		return domain.Session{}, err
	}

	idx := r.policy.Select(sessions)
	if idx < 0 {
		return domain.Session{}, &domain.NoSessionError{Jurisdiction: strings.ToUpper(strings.TrimSpace(jurisdiction))}
	}

	logger.Debug("Current session for %s: %d (%s, policy %s)",
		sessions[idx].Jurisdiction, sessions[idx].ID, sessions[idx].Name, r.policy)
	return sessions[idx], nil
}

// ListBills returns every record of a session's master list in document
// order. Records are not validated here.
func (r *Resolver) ListBills(ctx context.Context, sessionID int) ([]domain.RawBill, error) {
	if err := domain.ValidateID("session", sessionID); err != nil {
		return nil, err
	}

	payload, err := r.transport.Request(ctx, driven.OpGetMasterList, driven.Params{"id": sessionID})
	if err != nil {
		return nil, err
	}

	if !payload.Has("masterlist") {
		return []domain.RawBill{}, nil
	}
	return decodeMasterList(payload["masterlist"])
}

// ListCurrentJurisdictionBills resolves the current session and lists its
// bills, returning the session it chose alongside them. When session
// resolution fails no master list is requested.
func (r *Resolver) ListCurrentJurisdictionBills(ctx context.Context, jurisdiction string) (domain.Session, []domain.RawBill, error) {
	session, err := r.CurrentSession(ctx, jurisdiction)
	if err != nil {
		return domain.Session{}, nil, err
	}

	raws, err := r.ListBills(ctx, session.ID)
	if err != nil {
		return domain.Session{}, nil, err
	}
	return session, raws, nil
}

// GetBillDetail returns the full record of one bill. A non-positive id
// fails with *domain.InvalidIDError before any request is made.
func (r *Resolver) GetBillDetail(ctx context.Context, billID int) (domain.RawBillDetail, error) {
	var raw domain.RawBillDetail
	if err := domain.ValidateID("bill", billID); err != nil {
		return raw, err
	}

	payload, err := r.transport.Request(ctx, driven.OpGetBill, driven.Params{"id": billID})
	if err != nil {
		return raw, err
	}

	ok, err := payload.Decode("bill", &raw)
	if err != nil {
		return raw, fmt.Errorf("%w: bill %d: %v", domain.ErrMalformedRecord, billID, err)
	}
	if !ok {
		return raw, fmt.Errorf("%w: response for bill %d has no bill", domain.ErrMalformedRecord, billID)
	}
	return raw, nil
}

// GetBillText returns one bill document with its base64 body.
func (r *Resolver) GetBillText(ctx context.Context, docID int) (domain.RawBillText, error) {
	var raw domain.RawBillText
	if err := domain.ValidateID("document", docID); err != nil {
		return raw, err
	}

	payload, err := r.transport.Request(ctx, driven.OpGetBillText, driven.Params{"id": docID})
	if err != nil {
		return raw, err
	}

	ok, err := payload.Decode("text", &raw)
	if err != nil {
		return raw, fmt.Errorf("%w: document %d: %v", domain.ErrMalformedRecord, docID, err)
	}
	if !ok {
		return raw, fmt.Errorf("%w: response for document %d has no text", domain.ErrMalformedRecord, docID)
	}
	return raw, nil
}

// Search runs a full-text search in a jurisdiction. A year of 0 leaves
// the upstream default in place.
func (r *Resolver) Search(ctx context.Context, jurisdiction, query string, year int) (domain.RawSearchResult, error) {
	state, err := normaliseJurisdiction(jurisdiction)
	if err != nil {
		return domain.RawSearchResult{}, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.RawSearchResult{}, fmt.Errorf("%w: search query is required", domain.ErrInvalidInput)
	}

	params := driven.Params{"state": state, "query": query}
	if year > 0 {
		params["year"] = year
	}

	payload, err := r.transport.Request(ctx, driven.OpSearch, params)
	if err != nil {
		return domain.RawSearchResult{}, err
	}

	if !payload.Has("searchresult") {
		return domain.RawSearchResult{Hits: []domain.RawSearchHit{}}, nil
	}
	return decodeSearchResult(payload["searchresult"])
}
