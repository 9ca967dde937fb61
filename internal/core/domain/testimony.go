package domain

import (
	"fmt"
	"strings"
	"time"
)

// Position is the stance a testimony takes on a bill.
type Position string

// Positions.
const (
	PositionSupport Position = "support"
	PositionNeutral Position = "neutral"
	PositionOppose  Position = "oppose"
)

// IsValid returns true if the position is recognised.
func (p Position) IsValid() bool {
	switch p {
	case PositionSupport, PositionNeutral, PositionOppose:
		return true
	default:
		return false
	}
}

// Label returns the label committees use for the position.
func (p Position) Label() string {
	switch p {
	case PositionSupport:
		return "Proponent"
	case PositionOppose:
		return "Opponent"
	default:
		return "Neutral"
	}
}

// Testimony is written testimony drafted for a committee hearing.
type Testimony struct {
	FirstName    string
	LastName     string
	Email        string
	City         string
	Organization string

	BillNumber string
	Committee  string
	Position   Position
	Body       string

	// Date is the date shown on the document; zero means today.
	Date time.Time
}

// FullName joins first and last name.
func (t Testimony) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(t.FirstName) + " " + strings.TrimSpace(t.LastName))
}

// Validate checks the fields required to produce a document.
func (t Testimony) Validate() error {
	var missing []string
	if strings.TrimSpace(t.FirstName) == "" {
		missing = append(missing, "first name")
	}
	if strings.TrimSpace(t.LastName) == "" {
		missing = append(missing, "last name")
	}
	if strings.TrimSpace(t.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(t.BillNumber) == "" {
		missing = append(missing, "bill number")
	}
	if strings.TrimSpace(t.Body) == "" {
		missing = append(missing, "testimony")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	if !t.Position.IsValid() {
		return fmt.Errorf("%w: unknown position %q", ErrInvalidInput, t.Position)
	}
	return nil
}
