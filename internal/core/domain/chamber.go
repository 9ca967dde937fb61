package domain

import "strings"

// Chamber is the legislative chamber a bill originated in.
type Chamber string

// Chambers.
const (
	ChamberHouse   Chamber = "House"
	ChamberSenate  Chamber = "Senate"
	ChamberUnknown Chamber = "Unknown"
)

// ChamberOf derives the originating chamber from a bill number prefix.
// Empty or unrecognised numbers yield ChamberUnknown.
func ChamberOf(billNumber string) Chamber {
	if len(billNumber) < 2 {
		return ChamberUnknown
	}

	switch strings.ToUpper(billNumber[:2]) {
	case "HB", "HR", "HJ", "HC":
		return ChamberHouse
	case "SB", "SR", "SJ", "SC":
		return ChamberSenate
	default:
		return ChamberUnknown
	}
}

// ParseChamber parses a user-supplied chamber filter.
// "" and "all" yield the empty chamber, meaning no filter.
func ParseChamber(s string) (Chamber, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return "", true
	case "house", "h":
		return ChamberHouse, true
	case "senate", "s":
		return ChamberSenate, true
	case "unknown":
		return ChamberUnknown, true
	default:
		return "", false
	}
}

// String returns the string representation.
func (c Chamber) String() string {
	return string(c)
}
