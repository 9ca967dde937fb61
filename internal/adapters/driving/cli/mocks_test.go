package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/legis-cli/internal/adapters/driven/directory"
	"github.com/custodia-labs/legis-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/legis-cli/internal/core/domain"
	"github.com/custodia-labs/legis-cli/internal/core/ports/driving"
	"github.com/custodia-labs/legis-cli/internal/core/services"
)

// mockBillService serves canned data and records the calls it receives.
type mockBillService struct {
	sessions []domain.Session
	bills    []domain.BillSummary
	details  map[int]*domain.BillDetail
	text     *domain.BillText
	results  *domain.SearchResults
	policy   domain.SessionPolicy
	err      error

	gotJurisdiction string
	gotSession      int
	gotQuery        string
	gotYear         int
	gotIDs          []int
	sessionCalls    int
	currentCalls    int
}

func (m *mockBillService) Sessions(_ context.Context, j string) ([]domain.Session, error) {
	m.gotJurisdiction = j
	m.sessionCalls++
	return m.sessions, m.err
}

func (m *mockBillService) CurrentSession(_ context.Context, j string) (domain.Session, error) {
	m.gotJurisdiction = j
	m.currentCalls++
	if m.err != nil {
		return domain.Session{}, m.err
	}
	idx := m.SessionPolicy().Select(m.sessions)
	if idx < 0 {
		return domain.Session{}, &domain.NoSessionError{Jurisdiction: j}
	}
	return m.sessions[idx], nil
}

func (m *mockBillService) SessionPolicy() domain.SessionPolicy {
	if m.policy == "" {
		return domain.SessionPolicyFirst
	}
	return m.policy
}

func (m *mockBillService) Bills(_ context.Context, sessionID int) ([]domain.BillSummary, error) {
	m.gotSession = sessionID
	return m.bills, m.err
}

func (m *mockBillService) CurrentBills(ctx context.Context, j string) (*driving.SessionBills, error) {
	session, err := m.CurrentSession(ctx, j)
	if err != nil {
		return nil, err
	}
	m.gotSession = session.ID
	return &driving.SessionBills{Session: session, Bills: m.bills}, nil
}

func (m *mockBillService) Bill(_ context.Context, id int) (*domain.BillDetail, error) {
	m.gotIDs = append(m.gotIDs, id)
	if m.err != nil {
		return nil, m.err
	}
	return m.details[id], nil
}

func (m *mockBillService) BillsByID(ctx context.Context, ids ...int) ([]*domain.BillDetail, error) {
	out := make([]*domain.BillDetail, 0, len(ids))
	for _, id := range ids {
		b, err := m.Bill(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (m *mockBillService) Text(_ context.Context, docID int) (*domain.BillText, error) {
	m.gotIDs = append(m.gotIDs, docID)
	return m.text, m.err
}

func (m *mockBillService) Search(_ context.Context, j, query string, year int) (*domain.SearchResults, error) {
	m.gotJurisdiction, m.gotQuery, m.gotYear = j, query, year
	return m.results, m.err
}

func (m *mockBillService) FilterBills(bills []domain.BillSummary, filter domain.BillFilter) []domain.BillSummary {
	return (&services.BillService{}).FilterBills(bills, filter)
}

func sampleBillService() *mockBillService {
	return &mockBillService{
		sessions: []domain.Session{
			{ID: 2100, YearStart: 2025, YearEnd: 2026, Name: "2025-2026 Regular Session"},
			{ID: 2000, YearStart: 2023, YearEnd: 2024, Name: "2023-2024 Regular Session"},
		},
		bills: []domain.BillSummary{
			{ID: 1, Number: "HB2001", Title: "Water rights", Chamber: domain.ChamberHouse, Status: "Introduced", LastActionDate: "2025-01-13"},
			{ID: 2, Number: "SB55", Title: "School finance", Chamber: domain.ChamberSenate, Status: "Passed", LastActionDate: "2025-03-01"},
			{ID: 3, Number: "HB2002", Title: "School safety", Chamber: domain.ChamberHouse, Status: "Engrossed", LastActionDate: "2025-02-20"},
		},
		details: map[int]*domain.BillDetail{
			1234: {
				BillSummary: domain.BillSummary{
					ID: 1234, Number: "HB2001", Title: "Water rights", Chamber: domain.ChamberHouse,
					Status: "Engrossed", StatusDate: "2025-02-01", LastAction: "Passed House", LastActionDate: "2025-02-01",
				},
				Session:   domain.Session{Name: "2025-2026 Regular Session"},
				Committee: &domain.Committee{Name: "House Committee on Education"},
				Sponsors: []domain.Sponsor{
					{Name: "Jane Doe", Party: "R", Role: domain.SponsorRolePrimary},
					{Name: "John Roe", Party: "D", Role: domain.SponsorRoleCo},
				},
				History:   []domain.HistoryEntry{{Date: "2025-02-01", Action: "Passed House"}, {Date: "2025-01-13", Action: "Introduced"}},
				Documents: []domain.BillDocument{{ID: 3001, Date: "2025-01-13", Type: "Introduced"}},
			},
			5678: {BillSummary: domain.BillSummary{ID: 5678, Number: "SB55", Title: "School finance"}},
		},
	}
}

// withServices installs services for one test and restores the previous ones.
func withServices(t *testing.T, bills driving.BillService) *memory.ConfigStore {
	t.Helper()

	dir, err := directory.New()
	require.NoError(t, err)
	store := memory.NewConfigStore()

	oldFactory, oldSettings, oldTestimony := billsFactory, settingsService, testimonyService
	t.Cleanup(func() {
		billsFactory, settingsService, testimonyService = oldFactory, oldSettings, oldTestimony
	})

	if bills != nil {
		SetBillService(func() (driving.BillService, error) { return bills, nil })
	} else {
		SetBillService(nil)
	}
	SetSettingsService(services.NewSettingsService(store))
	SetTestimonyService(services.NewTestimonyService(dir))

	t.Setenv(services.EnvAPIKey, "")
	t.Setenv(services.EnvBaseURL, "")
	t.Setenv(services.EnvJurisdiction, "")
	return store
}

// resetFlags restores every flag variable to its default.
func resetFlags() {
	verbose, stateFlag = false, ""
	sessionsJSON = false
	billsSession, billsChamber, billsQuery, billsLimit, billsJSON = 0, "", "", 0, false
	billJSON = false
	searchYear, searchJSON = 0, false
	textOutput, textPlain = "", false
	testimonyOpts = testimonyFlags{position: string(domain.PositionSupport)}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
