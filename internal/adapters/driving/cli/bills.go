package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/legis-cli/internal/core/domain"
)

var (
	sessionsJSON bool

	billsSession int
	billsChamber string
	billsQuery   string
	billsLimit   int
	billsJSON    bool

	billJSON bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List legislative sessions",
	Long: `Lists the sessions of the jurisdiction in upstream order.
The session marked with * is the one other commands treat as current.`,
	Args: cobra.NoArgs,
	RunE: runSessions,
}

var billsCmd = &cobra.Command{
	Use:   "bills",
	Short: "List the bills of a session",
	Long: `Lists every bill of the current session, or of --session.
Filter by chamber with --chamber and by text with --query.`,
	Args: cobra.NoArgs,
	RunE: runBills,
}

var billCmd = &cobra.Command{
	Use:   "bill <bill-id>...",
	Short: "Show the full record of one or more bills",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBill,
}

func init() {
	sessionsCmd.Flags().BoolVar(&sessionsJSON, "json", false, "output as JSON")

	billsCmd.Flags().IntVar(&billsSession, "session", 0, "session id (default current session)")
	billsCmd.Flags().StringVar(&billsChamber, "chamber", "", "house, senate or all")
	billsCmd.Flags().StringVarP(&billsQuery, "query", "q", "", "match number, title or description")
	billsCmd.Flags().IntVarP(&billsLimit, "limit", "n", 0, "maximum number of bills to print (0 for all)")
	billsCmd.Flags().BoolVar(&billsJSON, "json", false, "output as JSON")

	billCmd.Flags().BoolVar(&billJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(billsCmd)
	rootCmd.AddCommand(billCmd)
}

func runSessions(cmd *cobra.Command, _ []string) error {
	svc, err := billService()
	if err != nil {
		return err
	}

	state := jurisdiction()
	sessions, err := svc.Sessions(cmd.Context(), state)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if sessionsJSON {
		return outputJSON(cmd, sessions)
	}

	if len(sessions) == 0 {
		cmd.Printf("No sessions found for %s.\n", state)
		return nil
	}

	current := svc.SessionPolicy().Select(sessions)

	rows := make([][]string, 0, len(sessions))
	for i, s := range sessions {
		marker := ""
		if i == current {
			marker = "*"
		}
		rows = append(rows, []string{marker, strconv.Itoa(s.ID), s.YearRange(), s.Name})
	}
	cmd.Println(renderTable([]string{"", "ID", "Years", "Name"}, rows))
	return nil
}

func runBills(cmd *cobra.Command, _ []string) error {
	chamber, ok := domain.ParseChamber(billsChamber)
	if !ok {
		return fmt.Errorf("%w: unknown chamber %q", domain.ErrInvalidInput, billsChamber)
	}

	svc, err := billService()
	if err != nil {
		return err
	}

	var (
		session domain.Session
		bills   []domain.BillSummary
	)
	if billsSession != 0 {
		session.ID = billsSession
		bills, err = svc.Bills(cmd.Context(), billsSession)
	} else {
		result, cerr := svc.CurrentBills(cmd.Context(), jurisdiction())
		if cerr == nil {
			session, bills = result.Session, result.Bills
		}
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to list bills: %w", err)
	}

	bills = svc.FilterBills(bills, domain.BillFilter{Chamber: chamber, Query: billsQuery})
	total := len(bills)
	if billsLimit > 0 && len(bills) > billsLimit {
		bills = bills[:billsLimit]
	}

	if billsJSON {
		return outputJSON(cmd, bills)
	}

	if total == 0 {
		cmd.Println("No bills found.")
		return nil
	}

	if session.Name != "" {
		cmd.Printf("%s (session %d)\n", session.Name, session.ID)
	}

	rows := make([][]string, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, []string{
			b.Number,
			string(b.Chamber),
			b.Status,
			b.LastActionDate,
			truncate(b.Title, 60),
		})
	}
	cmd.Println(renderTable([]string{"Bill", "Chamber", "Status", "Last action", "Title"}, rows))

	if len(bills) < total {
		cmd.Printf("Showing %d of %d bills\n", len(bills), total)
	} else {
		cmd.Printf("Total: %d bills\n", total)
	}
	return nil
}

func runBill(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs("bill", args)
	if err != nil {
		return err
	}

	svc, err := billService()
	if err != nil {
		return err
	}

	bills, err := svc.BillsByID(cmd.Context(), ids...)
	if err != nil {
		return fmt.Errorf("failed to get bill: %w", err)
	}

	if billJSON {
		if len(bills) == 1 {
			return outputJSON(cmd, bills[0])
		}
		return outputJSON(cmd, bills)
	}

	for i, b := range bills {
		if i > 0 {
			cmd.Println()
		}
		printBill(cmd, b)
	}
	return nil
}

func printBill(cmd *cobra.Command, b *domain.BillDetail) {
	cmd.Printf("%s: %s\n\n", b.Number, b.Title)
	cmd.Printf("  ID:          %d\n", b.ID)
	cmd.Printf("  Chamber:     %s\n", b.Chamber)
	cmd.Printf("  Status:      %s (%s)\n", b.Status, b.StatusDate)
	if b.Session.Name != "" {
		cmd.Printf("  Session:     %s\n", b.Session.Name)
	}
	if name := b.CommitteeName(); name != "" {
		cmd.Printf("  Committee:   %s\n", name)
	}
	if primary := b.PrimarySponsors(); len(primary) > 0 {
		cmd.Printf("  Sponsor:     %s\n", sponsorNames(primary))
	}
	cmd.Printf("  Last action: %s (%s)\n", b.LastAction, b.LastActionDate)
	if b.URL != "" {
		cmd.Printf("  URL:         %s\n", b.URL)
	}
	if b.Description != "" && b.Description != b.Title {
		cmd.Printf("\n  %s\n", b.Description)
	}

	if len(b.Sponsors) > 0 {
		cmd.Println("\n  Sponsors:")
		for _, s := range b.Sponsors {
			party := ""
			if s.Party != "" {
				party = " (" + s.Party + ")"
			}
			cmd.Printf("    %s%s - %s\n", s.Name, party, s.Role)
		}
	}

	if len(b.History) > 0 {
		cmd.Println("\n  History:")
		for _, h := range b.History {
			cmd.Printf("    %s  %s\n", h.Date, h.Action)
		}
	}

	if len(b.Documents) > 0 {
		cmd.Println("\n  Texts:")
		for _, d := range b.Documents {
			cmd.Printf("    %-10s %-12s doc %d\n", d.Date, d.Type, d.ID)
		}
	}
}

// parseIDs converts arguments to identifiers, rejecting anything that is
// not a positive integer before any request is made.
func parseIDs(kind string, args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("%w: %s id %q is not a number", domain.ErrInvalidID, kind, arg)
		}
		if err := domain.ValidateID(kind, id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func sponsorNames(sponsors []domain.Sponsor) string {
	names := make([]string, 0, len(sponsors))
	for _, s := range sponsors {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}
