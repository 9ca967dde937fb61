package legiscan

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legis-cli/internal/core/domain"
)

var fixedNow = time.Date(2025, 1, 15, 9, 30, 0, 0, time.FixedZone("CST", -6*3600))

const fixedStamp = "2025-01-15T15:30:00Z"

func newTestNormaliser() *Normaliser {
	return NewWithClock(func() time.Time { return fixedNow })
}

func decodeBill(t *testing.T, data string) domain.RawBill {
	t.Helper()
	var raw domain.RawBill
	require.NoError(t, json.Unmarshal([]byte(data), &raw))
	return raw
}

func decodeDetail(t *testing.T, data string) domain.RawBillDetail {
	t.Helper()
	var raw domain.RawBillDetail
	require.NoError(t, json.Unmarshal([]byte(data), &raw))
	return raw
}

func TestNew(t *testing.T) {
	n := New()
	require.NotNil(t, n)
	assert.NotNil(t, n.now)

	assert.NotNil(t, NewWithClock(nil).now)
}

func TestToSummary_EndToEnd(t *testing.T) {
	raw := decodeBill(t, `{
		"bill_id": 12345,
		"number": "HB2001",
		"status": 4,
		"last_action": "Signed by Governor",
		"last_action_date": "2024-03-01"
	}`)

	got, ok := newTestNormaliser().ToSummary(raw)
	require.True(t, ok)

	want := domain.BillSummary{
		ID:             12345,
		Number:         "HB2001",
		Title:          domain.DefaultTitle,
		StatusCode:     4,
		Status:         "Passed",
		Chamber:        domain.ChamberHouse,
		StatusDate:     fixedStamp,
		LastActionDate: "2024-03-01",
		LastAction:     "Signed by Governor",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToSummary() mismatch (-want +got):\n%s", diff)
	}
}

func TestToSummary_Defaults(t *testing.T) {
	got, ok := newTestNormaliser().ToSummary(decodeBill(t, `{"bill_id":"7","number":"SB5"}`))
	require.True(t, ok)

	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "Untitled", got.Title)
	assert.Equal(t, "", got.Description)
	assert.Equal(t, "No action recorded", got.LastAction)
	assert.Equal(t, fixedStamp, got.StatusDate)
	assert.Equal(t, fixedStamp, got.LastActionDate)
	assert.Equal(t, domain.StatusInProgress, got.Status)
	assert.Equal(t, domain.ChamberSenate, got.Chamber)
}

func TestToSummary_LastActionDateFallsBackToStatusDate(t *testing.T) {
	got, ok := newTestNormaliser().ToSummary(decodeBill(t, `{"bill_id":1,"number":"HB1","status_date":"2025-02-03"}`))
	require.True(t, ok)

	assert.Equal(t, "2025-02-03", got.StatusDate)
	assert.Equal(t, "2025-02-03", got.LastActionDate)
}

func TestToSummary_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing id", `{"number":"HB2001"}`},
		{"zero id", `{"bill_id":0,"number":"HB2001"}`},
		{"null id", `{"bill_id":null,"number":"HB2001"}`},
		{"missing number", `{"bill_id":12345}`},
		{"empty number", `{"bill_id":12345,"number":""}`},
		{"blank number", `{"bill_id":12345,"number":"  "}`},
		{"false number", `{"bill_id":12345,"number":false}`},
		{"zero number", `{"bill_id":12345,"number":0}`},
		{"false id", `{"bill_id":false,"number":"HB2001"}`},
		{"overflowing id", `{"bill_id":1e20,"number":"HB2001"}`},
		{"session entry", `{"session_id":2100,"session_name":"2025-2026 Regular Session"}`},
	}

	n := newTestNormaliser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := n.ToSummary(decodeBill(t, tt.data))
			assert.False(t, ok)
		})
	}
}

func TestToSummary_PreservesIdentity(t *testing.T) {
	got, ok := newTestNormaliser().ToSummary(decodeBill(t, `{"bill_id":99,"number":"hcr5003","title":" Resolution "}`))
	require.True(t, ok)

	assert.Equal(t, 99, got.ID)
	assert.Equal(t, "hcr5003", got.Number)
	assert.Equal(t, "Resolution", got.Title)
	assert.Equal(t, domain.ChamberHouse, got.Chamber)
}

func TestToSummary_PaddedNumberIsUnknownChamber(t *testing.T) {
	got, ok := newTestNormaliser().ToSummary(decodeBill(t, `{"bill_id":7,"number":" HB1"}`))
	require.True(t, ok)

	assert.Equal(t, " HB1", got.Number)
	assert.Equal(t, domain.ChamberUnknown, got.Chamber)
}

func TestToSummaries_DropsMalformed(t *testing.T) {
	raws := []domain.RawBill{
		decodeBill(t, `{"bill_id":1,"number":"HB1"}`),
		decodeBill(t, `{"session_id":2100}`),
		decodeBill(t, `{"bill_id":2,"number":""}`),
		decodeBill(t, `{"bill_id":3,"number":"SB3"}`),
	}

	got := newTestNormaliser().ToSummaries(raws)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	assert.NotNil(t, newTestNormaliser().ToSummaries(nil))
}

const detailJSON = `{
	"bill_id": 1812345,
	"bill_number": "HB2001",
	"change_hash": "abc123",
	"url": "https://legiscan.com/KS/bill/HB2001/2025",
	"state_link": "https://kslegislature.gov/li/b2025_26/measures/hb2001/",
	"status": 1,
	"status_date": "2025-01-13",
	"state": "KS",
	"state_id": 16,
	"title": "Education funding",
	"description": "Amending school finance provisions.",
	"session": {"session_id": 2100, "year_start": 2025, "year_end": 2026, "session_name": "2025-2026 Regular Session"},
	"sponsors": [
		{"people_id": 11, "name": "Jane Doe", "party": "R", "district": "HD-001", "sponsor_type_id": 1},
		{"people_id": 12, "first_name": "John", "last_name": "Roe", "party": "D", "sponsor_type_id": "2"}
	],
	"history": [
		{"date": "2024-01-01", "action": "Prefiled for introduction", "chamber": "H"},
		{"date": "2024-02-01", "action": "Referred to Committee on Education", "chamber": "H"}
	],
	"committee": {"committee_id": 501, "chamber": "H", "name": "Education"},
	"texts": [
		{"doc_id": 3001, "date": "2024-01-01", "type": "Introduced", "mime": "application/pdf", "url": "https://legiscan.com/text/3001", "state_link": "https://kslegislature.gov/hb2001.pdf"}
	]
}`

func TestToDetail(t *testing.T) {
	got, err := newTestNormaliser().ToDetail(decodeDetail(t, detailJSON))
	require.NoError(t, err)

	want := &domain.BillDetail{
		BillSummary: domain.BillSummary{
			ID:             1812345,
			Number:         "HB2001",
			Title:          "Education funding",
			Description:    "Amending school finance provisions.",
			StatusCode:     1,
			Status:         "Introduced",
			Chamber:        domain.ChamberHouse,
			StatusDate:     "2025-01-13",
			LastActionDate: "2024-02-01",
			LastAction:     "Referred to Committee on Education",
			URL:            "https://legiscan.com/KS/bill/HB2001/2025",
			StateLink:      "https://kslegislature.gov/li/b2025_26/measures/hb2001/",
			ChangeHash:     "abc123",
		},
		State: "KS",
		Session: domain.Session{
			ID:           2100,
			Jurisdiction: "KS",
			YearStart:    2025,
			YearEnd:      2026,
			Name:         "2025-2026 Regular Session",
		},
		Sponsors: []domain.Sponsor{
			{ID: 11, Name: "Jane Doe", Party: "R", District: "HD-001", Role: domain.SponsorRolePrimary},
			{ID: 12, Name: "John Roe", Party: "D", Role: domain.SponsorRoleCo},
		},
		Committee: &domain.Committee{ID: 501, Chamber: "H", Name: "Education"},
		History: []domain.HistoryEntry{
			{Date: "2024-02-01", Action: "Referred to Committee on Education", Chamber: "H"},
			{Date: "2024-01-01", Action: "Prefiled for introduction", Chamber: "H"},
		},
		Documents: []domain.BillDocument{
			{
				ID:        3001,
				Date:      "2024-01-01",
				Type:      "Introduced",
				MIME:      "application/pdf",
				URL:       "https://legiscan.com/text/3001",
				StateLink: "https://kslegislature.gov/hb2001.pdf",
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToDetail() mismatch (-want +got):\n%s", diff)
	}
}

func TestToDetail_HistoryReversedOnce(t *testing.T) {
	raw := decodeDetail(t, `{"bill_id":1,"bill_number":"SB1","history":[
		{"date":"2024-01-01","action":"a"},
		{"date":"2024-02-01","action":"b"}
	]}`)

	got, err := newTestNormaliser().ToDetail(raw)
	require.NoError(t, err)

	dates := []string{got.History[0].Date, got.History[1].Date}
	assert.Equal(t, []string{"2024-02-01", "2024-01-01"}, dates)

	// The raw record keeps upstream order.
	assert.Equal(t, "2024-01-01", raw.History[0].Date.Value)
}

func TestToDetail_EmptyCommitteeArray(t *testing.T) {
	got, err := newTestNormaliser().ToDetail(decodeDetail(t, `{"bill_id":1,"bill_number":"HB1","committee":[]}`))
	require.NoError(t, err)

	assert.Nil(t, got.Committee)
	assert.Empty(t, got.CommitteeName())
}

func TestToDetail_NoHistoryUsesDefaults(t *testing.T) {
	got, err := newTestNormaliser().ToDetail(decodeDetail(t, `{"bill_id":1,"bill_number":"HB1"}`))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultLastAction, got.LastAction)
	assert.Equal(t, fixedStamp, got.StatusDate)
	assert.Equal(t, fixedStamp, got.LastActionDate)
	assert.NotNil(t, got.History)
	assert.NotNil(t, got.Sponsors)
	assert.NotNil(t, got.Documents)
}

func TestToDetail_Malformed(t *testing.T) {
	n := newTestNormaliser()

	_, err := n.ToDetail(decodeDetail(t, `{"bill_number":"HB1"}`))
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)

	_, err = n.ToDetail(decodeDetail(t, `{"bill_id":1}`))
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestToBillText(t *testing.T) {
	content := []byte("%PDF-1.4 bill text")
	raw := domain.RawBillText{
		DocID:  domain.IntOf(3001),
		BillID: domain.IntOf(1812345),
		Date:   domain.StringOf("2024-01-01"),
		Type:   domain.StringOf("Introduced"),
		MIME:   domain.StringOf("application/pdf"),
		Doc:    domain.StringOf(base64.StdEncoding.EncodeToString(content)),
	}

	got, err := newTestNormaliser().ToBillText(raw)
	require.NoError(t, err)

	assert.Equal(t, 3001, got.DocID)
	assert.Equal(t, 1812345, got.BillID)
	assert.Equal(t, content, got.Content)
	assert.Equal(t, ".pdf", got.Extension())
}

func TestToBillText_Errors(t *testing.T) {
	n := newTestNormaliser()

	_, err := n.ToBillText(domain.RawBillText{Doc: domain.StringOf("aGVsbG8=")})
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)

	_, err = n.ToBillText(domain.RawBillText{DocID: domain.IntOf(1), Doc: domain.StringOf("!!not base64!!")})
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestToSearchResults(t *testing.T) {
	raw := domain.RawSearchResult{
		Summary: domain.RawSearchSummary{
			Query:       domain.StringOf("school"),
			Count:       domain.IntOf(2),
			PageCurrent: domain.IntOf(1),
			PageTotal:   domain.IntOf(1),
		},
		Hits: []domain.RawSearchHit{
			{Relevance: domain.IntOf(100), BillID: domain.IntOf(1), BillNumber: domain.StringOf("SB10"), Title: domain.StringOf("Schools")},
			{Relevance: domain.IntOf(50)},
		},
	}

	got := newTestNormaliser().ToSearchResults(raw)

	want := domain.SearchResults{
		Summary: domain.SearchSummary{Query: "school", Count: 2, Page: 1, PageTotal: 1},
		Hits: []domain.SearchHit{
			{
				Relevance:  100,
				BillID:     1,
				Number:     "SB10",
				Title:      "Schools",
				LastAction: domain.DefaultLastAction,
				Chamber:    domain.ChamberSenate,
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToSearchResults() mismatch (-want +got):\n%s", diff)
	}
}
