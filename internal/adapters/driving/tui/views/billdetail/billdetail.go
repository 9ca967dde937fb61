// Package billdetail provides the scrolling bill detail view for the TUI.
package billdetail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/legis-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/legis-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/legis-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/legis-cli/internal/core/domain"
	"github.com/custodia-labs/legis-cli/internal/core/ports/driving"
)

// View shows one bill in a scrollable viewport.
type View struct {
	ctx     context.Context
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.BillService

	viewport viewport.Model
	summary  domain.BillSummary
	bill     *domain.BillDetail
	loading  bool
	err      error
	width    int
	height   int
}

// NewView creates a new bill detail view.
func NewView(s *styles.Styles, service driving.BillService) *View {
	return &View{
		ctx:      context.Background(),
		styles:   s,
		keymap:   keymap.DefaultKeyMap(),
		service:  service,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   24,
	}
}

// WithContext sets the context used for requests.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetBill shows the summary immediately and fetches the full record.
func (v *View) SetBill(summary domain.BillSummary) tea.Cmd {
	v.summary = summary
	v.bill = nil
	v.err = nil
	v.loading = true
	v.viewport.SetContent("")
	v.viewport.GotoTop()

	service, ctx, id := v.service, v.ctx, summary.ID
	return func() tea.Msg {
		if service == nil {
			return messages.BillLoaded{BillID: id, Err: errors.New("bill service not available")}
		}
		bill, err := service.Bill(ctx, id)
		return messages.BillLoaded{BillID: id, Bill: bill, Err: err}
	}
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.BillLoaded:
		// A response for a bill no longer on screen.
		if msg.BillID != v.summary.ID {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.bill = msg.Bill
		v.viewport.SetContent(Render(v.styles, msg.Bill, v.width))
		v.viewport.GotoTop()
		return v, nil

	case tea.KeyMsg:
		keyStr := msg.String()
		switch {
		case keymap.Matches(keyStr, v.keymap.Back), keyStr == "backspace":
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewBills} }
		case keymap.Matches(keyStr, v.keymap.Quit):
			return v, func() tea.Msg { return messages.Quit{} }
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the detail view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("%s  %s", v.summary.Number, v.summary.Title)))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading bill..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	default:
		b.WriteString(v.viewport.View())
	}

	b.WriteString("\n\n")
	help := "[↑/↓] scroll  [esc] back  [q] quit"
	if !v.loading && v.err == nil {
		help = fmt.Sprintf("%3.f%%  %s", v.viewport.ScrollPercent()*100, help)
	}
	b.WriteString(v.styles.Help.Render(help))
	return b.String()
}

// Render formats a bill for display.
func Render(s *styles.Styles, bill *domain.BillDetail, width int) string {
	if bill == nil {
		return ""
	}
	var b strings.Builder

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(s.Label.Render(label))
		b.WriteString(s.Normal.Render(value))
		b.WriteString("\n")
	}

	field("Chamber", string(bill.Chamber))
	field("Status", bill.Status)
	field("Status date", bill.StatusDate)
	field("Session", bill.Session.Name)
	field("Committee", bill.CommitteeName())
	primary := make([]string, 0, 1)
	for _, sp := range bill.PrimarySponsors() {
		primary = append(primary, sp.Name)
	}
	field("Sponsor", strings.Join(primary, ", "))
	field("Last action", fmt.Sprintf("%s (%s)", bill.LastAction, bill.LastActionDate))
	field("Link", bill.URL)
	field("State link", bill.StateLink)

	if bill.Description != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(max(width-2, 20)).Render(bill.Description))
		b.WriteString("\n")
	}

	if len(bill.Sponsors) > 0 {
		b.WriteString("\n")
		b.WriteString(s.Subtitle.Render(fmt.Sprintf("Sponsors (%d)", len(bill.Sponsors))))
		b.WriteString("\n")
		for _, sp := range bill.Sponsors {
			line := "  " + sp.Name
			if sp.Party != "" {
				line += " (" + sp.Party + ")"
			}
			b.WriteString(s.Normal.Render(line) + "  " + s.Muted.Render(sp.Role) + "\n")
		}
	}

	if len(bill.History) > 0 {
		b.WriteString("\n")
		b.WriteString(s.Subtitle.Render("History"))
		b.WriteString("\n")
		for _, h := range bill.History {
			b.WriteString(s.Muted.Render("  "+h.Date) + "  " + s.Normal.Render(h.Action))
			if h.Chamber != "" {
				b.WriteString(s.Muted.Render("  [" + h.Chamber + "]"))
			}
			b.WriteString("\n")
		}
	}

	if len(bill.Documents) > 0 {
		b.WriteString("\n")
		b.WriteString(s.Subtitle.Render("Texts"))
		b.WriteString("\n")
		for _, d := range bill.Documents {
			b.WriteString(fmt.Sprintf("  %-10s %-12s doc %d\n", d.Date, d.Type, d.ID))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	// Reserve lines for title and help
	v.viewport.Height = max(height-5, 3)
	if v.bill != nil {
		v.viewport.SetContent(Render(v.styles, v.bill, width))
	}
}

// Bill returns the loaded bill, nil while loading.
func (v *View) Bill() *domain.BillDetail {
	return v.bill
}

// Loading reports whether a fetch is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// ScrollOffset returns the viewport's line offset.
func (v *View) ScrollOffset() int {
	return v.viewport.YOffset
}
