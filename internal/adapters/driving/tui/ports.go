// Package tui provides an interactive terminal bill browser.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/legis-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Bills lists and fetches bills.
	Bills driving.BillService

	// Settings supplies the default jurisdiction. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Bills == nil {
		return ErrMissingBillService
	}
	return nil
}
