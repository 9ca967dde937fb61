package domain

import "strings"

// Sponsor roles derived from the upstream sponsor type.
const (
	SponsorRolePrimary = "Primary Sponsor"
	SponsorRoleCo      = "Co-Sponsor"
)

// Defaults applied when upstream omits a field.
const (
	DefaultTitle      = "Untitled"
	DefaultLastAction = "No action recorded"
)

// BillSummary is a bill as shown in a session listing.
// ID and Number are always present; every other field has been defaulted.
type BillSummary struct {
	ID          int    `json:"id"`
	Number      string `json:"bill_number"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// StatusCode is the upstream progress code; Status is its label.
	StatusCode int     `json:"status_code"`
	Status     string  `json:"status"`
	Chamber    Chamber `json:"chamber"`

	StatusDate     string `json:"status_date"`
	LastActionDate string `json:"last_action_date"`
	LastAction     string `json:"last_action"`

	// URL is the canonical upstream page; StateLink the legislature's own page.
	URL        string `json:"url"`
	StateLink  string `json:"state_link"`
	ChangeHash string `json:"change_hash"`
}

// Matches reports whether the bill number, title or description contains
// query, case-insensitively. An empty query matches everything.
func (b BillSummary) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Number), q) ||
		strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Description), q)
}

// BillFilter narrows a bill listing.
type BillFilter struct {
	// Chamber keeps only bills from this chamber; empty keeps all.
	Chamber Chamber

	// Query is matched against number, title and description.
	Query string
}

// Sponsor is a legislator formally attached to a bill.
type Sponsor struct {
	ID       int    `json:"id,omitempty"`
	Name     string `json:"name"`
	Party    string `json:"party,omitempty"`
	District string `json:"district,omitempty"`
	Role     string `json:"role"`
}

// Committee is the committee currently holding a bill.
type Committee struct {
	ID      int    `json:"id,omitempty"`
	Chamber string `json:"chamber,omitempty"`
	Name    string `json:"name"`
}

// HistoryEntry is one recorded action on a bill.
type HistoryEntry struct {
	Date    string `json:"date"`
	Action  string `json:"action"`
	Chamber string `json:"chamber"`
}

// BillDocument references one published text of a bill.
type BillDocument struct {
	ID        int    `json:"id,omitempty"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	MIME      string `json:"mime,omitempty"`
	URL       string `json:"url"`
	StateLink string `json:"state_link,omitempty"`
}

// BillDetail is the full bill record.
// History is ordered newest first.
type BillDetail struct {
	BillSummary

	State     string         `json:"state"`
	Session   Session        `json:"session"`
	Sponsors  []Sponsor      `json:"sponsors"`
	Committee *Committee     `json:"committee,omitempty"`
	History   []HistoryEntry `json:"history"`
	Documents []BillDocument `json:"documents"`
}

// PrimarySponsors returns the sponsors whose role is SponsorRolePrimary.
func (d *BillDetail) PrimarySponsors() []Sponsor {
	var out []Sponsor
	for _, s := range d.Sponsors {
		if s.Role == SponsorRolePrimary {
			out = append(out, s)
		}
	}
	return out
}

// CommitteeName returns the committee name, empty when none is assigned.
func (d *BillDetail) CommitteeName() string {
	if d.Committee == nil {
		return ""
	}
	return d.Committee.Name
}

// BillText is the content of one bill document.
type BillText struct {
	DocID     int    `json:"doc_id"`
	BillID    int    `json:"bill_id"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	MIME      string `json:"mime"`
	URL       string `json:"url"`
	StateLink string `json:"state_link"`
	Content   []byte `json:"-"`
}

// Extension returns a file extension suited to the document's MIME type.
func (t BillText) Extension() string {
	switch strings.ToLower(t.MIME) {
	case "application/pdf":
		return ".pdf"
	case "text/html":
		return ".html"
	case "application/msword":
		return ".doc"
	case "application/rtf":
		return ".rtf"
	case "application/vnd.wordperfect":
		return ".wpd"
	case "text/plain":
		return ".txt"
	default:
		return ".bin"
	}
}
