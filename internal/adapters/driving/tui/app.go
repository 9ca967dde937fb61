package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/legis-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/legis-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/legis-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/legis-cli/internal/adapters/driving/tui/views/billdetail"
	"github.com/custodia-labs/legis-cli/internal/adapters/driving/tui/views/bills"
	"github.com/custodia-labs/legis-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	billsView  *bills.View
	detailView *billdetail.View

	jurisdiction string

	// previousView is where help returns to.
	previousView messages.ViewType
	currentView  messages.ViewType

	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// The jurisdiction comes from settings when available.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	jurisdiction := domain.DefaultJurisdiction
	if ports.Settings != nil {
		if settings, err := ports.Settings.Get(); err == nil && settings.Legislature.Jurisdiction != "" {
			jurisdiction = settings.Legislature.Jurisdiction
		}
	}

	s := styles.DefaultStyles()
	h := help.New()
	h.ShowAll = true

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       keymap.DefaultKeyMap(),
		help:         h,
		billsView:    bills.NewView(s, ports.Bills, jurisdiction),
		detailView:   billdetail.NewView(s, ports.Bills),
		jurisdiction: jurisdiction,
		currentView:  messages.ViewBills,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.billsView.WithContext(ctx)
	a.detailView.WithContext(ctx)
	return a
}

// WithJurisdiction overrides the jurisdiction from settings.
func (a *App) WithJurisdiction(jurisdiction string) *App {
	jurisdiction = strings.ToUpper(strings.TrimSpace(jurisdiction))
	if jurisdiction == "" {
		return a
	}
	a.jurisdiction = jurisdiction
	a.billsView = bills.NewView(a.styles, a.ports.Bills, jurisdiction).WithContext(a.ctx)
	if a.ready {
		a.billsView.SetDimensions(a.width, a.height)
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("legis - "+a.jurisdiction+" bills"),
		a.billsView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewBills:
			a.billsView, cmd = a.billsView.Update(msg)
		case messages.ViewBillDetail:
			a.detailView, cmd = a.detailView.Update(msg)
		case messages.ViewHelp:
			if keymap.Matches(msg.String(), a.keymap.Back) || keymap.Matches(msg.String(), a.keymap.Help) {
				a.currentView = a.previousView
			} else if keymap.Matches(msg.String(), a.keymap.Quit) {
				return a, tea.Quit
			}
		}
		return a, cmd

	case messages.BillsLoaded:
		a.err = msg.Err
		a.billsView, cmd = a.billsView.Update(msg)
		return a, cmd

	case messages.BillSelected:
		a.currentView = messages.ViewBillDetail
		return a, a.detailView.SetBill(msg.Bill)

	case messages.BillLoaded:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.detailView, cmd = a.detailView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		if msg.View == messages.ViewHelp {
			a.previousView = a.currentView
		}
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Spinner ticks and other messages go to the active view.
	switch a.currentView {
	case messages.ViewBills:
		a.billsView, cmd = a.billsView.Update(msg)
	case messages.ViewBillDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewBillDetail:
		return a.detailView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.billsView.View()
	}
}

func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + "\n\n" +
		a.help.FullHelpView(a.keymap.FullHelp()) + "\n\n" +
		a.styles.Help.Render("[esc] back")
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Jurisdiction returns the jurisdiction being browsed.
func (a *App) Jurisdiction() string {
	return a.jurisdiction
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been sized.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.billsView.SetDimensions(width, height)
	a.detailView.SetDimensions(width, height)
}
