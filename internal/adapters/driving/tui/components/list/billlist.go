// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/legis-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/legis-cli/internal/core/domain"
)

// BillList displays bill summaries in a navigable list.
// Each bill takes two lines: number, chamber and status, then the title.
type BillList struct {
	bills    []domain.BillSummary
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewBillList creates a new bill list component.
func NewBillList(s *styles.Styles) *BillList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &BillList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Update handles list navigation messages.
func (l *BillList) Update(msg tea.Msg) (*BillList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "pgup", "b":
			l.move(-l.visibleCount())
		case "pgdown", "f", " ":
			l.move(l.visibleCount())
		case "home", "g":
			l.selected = 0
		case "end", "G":
			l.selected = max(len(l.bills)-1, 0)
		}
	}
	return l, nil
}

// View renders the bill list.
func (l *BillList) View() string {
	if len(l.bills) == 0 {
		return l.styles.Muted.Render("No bills")
	}

	visible := l.visibleCount()
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := min(start+visible, len(l.bills))

	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderBill(i, &l.bills[i]))
	}

	if len(l.bills) > visible {
		lines = append(lines, l.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]", start+1, end, len(l.bills))))
	}

	return strings.Join(lines, "\n")
}

func (l *BillList) renderBill(index int, bill *domain.BillSummary) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	head := fmt.Sprintf("%s%-8s", indicator, bill.Number)
	status := bill.Status
	if bill.LastActionDate != "" {
		status += " · " + bill.LastActionDate
	}

	title := truncate(bill.Title, max(l.width-6, 20))

	var headLine string
	if index == l.selected {
		headLine = l.styles.Selected.Render(head) + " " + l.styles.Chamber(bill.Chamber) + "  " +
			l.styles.Normal.Render(status)
	} else {
		headLine = l.styles.Normal.Render(head) + " " + l.styles.Chamber(bill.Chamber) + "  " +
			l.styles.Muted.Render(status)
	}

	return headLine + "\n" + l.styles.Muted.Render("    "+title)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// visibleCount is the number of bills that fit in the height.
func (l *BillList) visibleCount() int {
	return max(l.height/2, 1)
}

func (l *BillList) move(delta int) {
	if len(l.bills) == 0 {
		return
	}
	l.selected = min(max(l.selected+delta, 0), len(l.bills)-1)
}

// SetBills replaces the list and resets the selection.
func (l *BillList) SetBills(bills []domain.BillSummary) {
	l.bills = bills
	l.selected = 0
}

// Bills returns the listed bills.
func (l *BillList) Bills() []domain.BillSummary {
	return l.bills
}

// Selected returns the index of the selected bill.
func (l *BillList) Selected() int {
	return l.selected
}

// SelectedBill returns the currently selected bill, or nil if none.
func (l *BillList) SelectedBill() *domain.BillSummary {
	if l.selected < 0 || l.selected >= len(l.bills) {
		return nil
	}
	return &l.bills[l.selected]
}

// MoveUp moves selection up.
func (l *BillList) MoveUp() {
	l.move(-1)
}

// MoveDown moves selection down.
func (l *BillList) MoveDown() {
	l.move(1)
}

// SetDimensions sets the component dimensions.
func (l *BillList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of bills.
func (l *BillList) Count() int {
	return len(l.bills)
}
