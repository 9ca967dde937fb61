package domain

import "fmt"

// Session is a legislature's defined term during which bills are considered.
type Session struct {
	// ID is unique per jurisdiction and term.
	ID int `json:"id"`

	// StateID is the upstream numeric state identifier.
	StateID int `json:"state_id"`

	// Jurisdiction is the state code the session was resolved for (e.g. "KS").
	Jurisdiction string `json:"jurisdiction"`

	YearStart int `json:"year_start"`
	YearEnd   int `json:"year_end"`

	// Name is the display name (e.g. "2025-2026 Regular Session").
	Name string `json:"name"`

	// Title is the long session title when upstream provides one.
	Title string `json:"title,omitempty"`

	// Special marks a special (extraordinary) session.
	Special bool `json:"special"`

	// SineDie marks a session that has adjourned for good.
	SineDie bool `json:"sine_die"`
}

// YearRange formats the session's years, e.g. "2025-2026" or "2024".
func (s Session) YearRange() string {
	switch {
	case s.YearStart == 0 && s.YearEnd == 0:
		return ""
	case s.YearEnd == 0 || s.YearStart == s.YearEnd:
		return fmt.Sprintf("%d", s.YearStart)
	case s.YearStart == 0:
		return fmt.Sprintf("%d", s.YearEnd)
	default:
		return fmt.Sprintf("%d-%d", s.YearStart, s.YearEnd)
	}
}

// SessionPolicy selects the current session from a session list.
type SessionPolicy string

// Available session policies.
const (
	// SessionPolicyFirst takes the first entry, trusting upstream to
	// order sessions most-recent-first.
	SessionPolicyFirst SessionPolicy = "first"

	// SessionPolicyLatest takes the session with the greatest end year,
	// then the greatest start year. Ties keep the earlier entry.
	SessionPolicyLatest SessionPolicy = "latest"
)

// IsValid returns true if the policy is recognised.
func (p SessionPolicy) IsValid() bool {
	switch p {
	case SessionPolicyFirst, SessionPolicyLatest:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p SessionPolicy) String() string {
	return string(p)
}

// Select returns the index of the current session, or -1 for an empty list.
func (p SessionPolicy) Select(sessions []Session) int {
	if len(sessions) == 0 {
		return -1
	}
	if p != SessionPolicyLatest {
		return 0
	}

	best := 0
	for i := 1; i < len(sessions); i++ {
		s, b := sessions[i], sessions[best]
		if s.YearEnd > b.YearEnd || (s.YearEnd == b.YearEnd && s.YearStart > b.YearStart) {
			best = i
		}
	}
	return best
}
