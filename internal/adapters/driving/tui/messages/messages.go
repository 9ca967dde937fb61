// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/legis-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewBills is the session bill list.
	ViewBills ViewType = iota
	// ViewBillDetail shows one bill.
	ViewBillDetail
	// ViewHelp is the keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewBills:
		return "bills"
	case ViewBillDetail:
		return "bill_detail"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// BillsLoaded carries the current session and its bills.
type BillsLoaded struct {
	Session domain.Session
	Bills   []domain.BillSummary
	Err     error
}

// BillSelected is sent when a bill in the list is chosen.
type BillSelected struct {
	Bill domain.BillSummary
}

// BillLoaded carries a full bill record.
type BillLoaded struct {
	BillID int
	Bill   *domain.BillDetail
	Err    error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
