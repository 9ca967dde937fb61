// Package bills provides the session bill list view for the TUI.
package bills

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/legis-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/legis-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/legis-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/legis-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/legis-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/legis-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/legis-cli/internal/core/domain"
	"github.com/custodia-labs/legis-cli/internal/core/ports/driving"
)

// errNoService is reported when the view has no bill service.
var errNoService = errors.New("bill service not available")

// Tabs lists the chamber tabs in display order; the empty chamber is "All".
var Tabs = []domain.Chamber{"", domain.ChamberHouse, domain.ChamberSenate}

// View is the bill list view.
type View struct {
	ctx          context.Context
	styles       *styles.Styles
	keymap       *keymap.KeyMap
	service      driving.BillService
	jurisdiction string

	spinner spinner.Model
	filter  *input.FilterInput
	list    *list.BillList
	bar     *status.Bar

	session domain.Session
	all     []domain.BillSummary
	tab     int
	loading bool
	err     error
	width   int
	height  int
}

// NewView creates a new bill list view.
func NewView(s *styles.Styles, service driving.BillService, jurisdiction string) *View {
	km := keymap.DefaultKeyMap()
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(s.Subtitle))

	return &View{
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		service:      service,
		jurisdiction: jurisdiction,
		spinner:      sp,
		filter:       input.NewFilterInput(s),
		list:         list.NewBillList(s),
		bar:          status.NewBar(s, km),
		width:        80,
		height:       24,
	}
}

// WithContext sets the context used for requests.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts loading the current session.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, v.load())
}

// load returns a command that fetches the current session's bills.
func (v *View) load() tea.Cmd {
	v.loading = true
	v.err = nil
	v.bar.SetState(status.StateLoading)
	v.bar.SetMessage(fmt.Sprintf("Loading %s bills...", v.jurisdiction))

	service, ctx, jurisdiction := v.service, v.ctx, v.jurisdiction
	return func() tea.Msg {
		if service == nil {
			return messages.BillsLoaded{Err: errNoService}
		}
		result, err := service.CurrentBills(ctx, jurisdiction)
		if err != nil {
			return messages.BillsLoaded{Err: err}
		}
		return messages.BillsLoaded{Session: result.Session, Bills: result.Bills}
	}
}

// Update handles messages for the bill list view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case messages.BillsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.bar.SetState(status.StateError)
			v.bar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.session = msg.Session
		v.all = msg.Bills
		v.bar.SetState(status.StateReady)
		v.bar.SetSession(msg.Session.Name)
		v.applyFilter()
		return v, nil

	case tea.KeyMsg:
		if v.filter.Focused() {
			return v.handleFilterKey(msg)
		}
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleFilterKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		v.filter.Blur()
		return v, nil
	default:
		var cmd tea.Cmd
		v.filter, cmd = v.filter.Update(msg)
		v.applyFilter()
		return v, cmd
	}
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }

	case keymap.Matches(keyStr, v.keymap.Help):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }

	case keymap.Matches(keyStr, v.keymap.Filter):
		return v, v.filter.Focus()

	case keymap.Matches(keyStr, v.keymap.Back):
		if v.filter.Value() != "" {
			v.filter.Reset()
			v.applyFilter()
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.NextTab):
		v.SetTab((v.tab + 1) % len(Tabs))
		return v, nil

	case keymap.Matches(keyStr, v.keymap.PrevTab):
		v.SetTab((v.tab + len(Tabs) - 1) % len(Tabs))
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Reload):
		if v.loading {
			return v, nil
		}
		return v, tea.Batch(v.spinner.Tick, v.load())

	case keymap.Matches(keyStr, v.keymap.Open):
		bill := v.list.SelectedBill()
		if bill == nil {
			return v, nil
		}
		selected := *bill
		return v, func() tea.Msg { return messages.BillSelected{Bill: selected} }
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// applyFilter rebuilds the visible list from the tab and filter text.
func (v *View) applyFilter() {
	var shown []domain.BillSummary
	if v.service != nil {
		shown = v.service.FilterBills(v.all, domain.BillFilter{
			Chamber: Tabs[v.tab],
			Query:   v.filter.Value(),
		})
	}
	v.list.SetBills(shown)
	v.bar.SetCounts(len(shown), len(v.all))
}

// SetTab selects a chamber tab by index.
func (v *View) SetTab(tab int) {
	if tab < 0 || tab >= len(Tabs) {
		return
	}
	v.tab = tab
	v.applyFilter()
}

// View renders the bill list view.
func (v *View) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Bills - %s", v.jurisdiction)
	if v.session.Name != "" {
		title += " " + v.session.Name
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(v.renderTabs())
	b.WriteString("\n")
	b.WriteString(v.filter.View())
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.spinner.View() + " " + v.styles.Muted.Render("Loading bills..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[r] retry  [q] quit"))
	default:
		b.WriteString(v.list.View())
	}

	b.WriteString("\n\n")
	b.WriteString(v.bar.View())
	return b.String()
}

func (v *View) renderTabs() string {
	tabs := make([]string, 0, len(Tabs))
	for i, c := range Tabs {
		label := string(c)
		if c == "" {
			label = "All"
		}
		if i == v.tab {
			tabs = append(tabs, v.styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, v.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.filter.SetWidth(width)
	v.bar.SetWidth(width)
	// Reserve lines for title, tabs, filter and status bar
	v.list.SetDimensions(width, max(height-11, 2))
}

// Session returns the loaded session.
func (v *View) Session() domain.Session {
	return v.session
}

// Bills returns the bills currently shown.
func (v *View) Bills() []domain.BillSummary {
	return v.list.Bills()
}

// Tab returns the selected tab index.
func (v *View) Tab() int {
	return v.tab
}

// Filter returns the filter text.
func (v *View) Filter() string {
	return v.filter.Value()
}

// FilterFocused reports whether keystrokes go to the filter.
func (v *View) FilterFocused() bool {
	return v.filter.Focused()
}

// Loading reports whether a fetch is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
