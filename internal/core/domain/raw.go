package domain

import (
	"bytes"
	"encoding/json"
)

// StatusOK is the literal success marker in the upstream top-level status field.
const StatusOK = "OK"

// Payload is a parsed upstream response: the top-level JSON object with
// each member left undecoded until a resolver asks for it.
type Payload map[string]json.RawMessage

// Status returns the top-level status field, empty when absent or not a string.
func (p Payload) Status() string {
	var s LooseString
	if raw, ok := p["status"]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s.Value
}

// Has reports whether key is present and not null.
func (p Payload) Has(key string) bool {
	raw, ok := p[key]
	return ok && !bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

// Decode unmarshals the member key into v.
// It reports false without touching v when the member is absent or null.
func (p Payload) Decode(key string, v any) (bool, error) {
	if !p.Has(key) {
		return false, nil
	}
	if err := json.Unmarshal(p[key], v); err != nil {
		return true, err
	}
	return true, nil
}

// AlertMessage returns the upstream alert text attached to failed responses.
func (p Payload) AlertMessage() string {
	var alert struct {
		Message LooseString `json:"message"`
	}
	if ok, err := p.Decode("alert", &alert); !ok || err != nil {
		return ""
	}
	return alert.Message.String()
}

// RawSession is a session entry from getSessionList or an embedded bill session.
type RawSession struct {
	SessionID    LooseInt    `json:"session_id"`
	StateID      LooseInt    `json:"state_id"`
	YearStart    LooseInt    `json:"year_start"`
	YearEnd      LooseInt    `json:"year_end"`
	Prefile      LooseInt    `json:"prefile"`
	SineDie      LooseInt    `json:"sine_die"`
	Prior        LooseInt    `json:"prior"`
	Special      LooseInt    `json:"special"`
	SessionTag   LooseString `json:"session_tag"`
	SessionTitle LooseString `json:"session_title"`
	SessionName  LooseString `json:"session_name"`
}

// Session converts the raw entry into a Session scoped to jurisdiction.
func (r RawSession) Session(jurisdiction string) Session {
	return Session{
		ID:           r.SessionID.Or(0),
		StateID:      r.StateID.Or(0),
		Jurisdiction: jurisdiction,
		YearStart:    r.YearStart.Or(0),
		YearEnd:      r.YearEnd.Or(0),
		Name:         r.SessionName.String(),
		Title:        r.SessionTitle.String(),
		Special:      r.Special.Truthy(),
		SineDie:      r.SineDie.Truthy(),
	}
}

// RawBill is one value of the getMasterList "masterlist" object.
type RawBill struct {
	BillID         LooseInt    `json:"bill_id"`
	Number         LooseString `json:"number"`
	ChangeHash     LooseString `json:"change_hash"`
	URL            LooseString `json:"url"`
	StateLink      LooseString `json:"state_link"`
	StatusDate     LooseString `json:"status_date"`
	Status         LooseInt    `json:"status"`
	LastActionDate LooseString `json:"last_action_date"`
	LastAction     LooseString `json:"last_action"`
	Title          LooseString `json:"title"`
	Description    LooseString `json:"description"`
}

// RawBillDetail is the "bill" object returned by getBill.
type RawBillDetail struct {
	BillID      LooseInt      `json:"bill_id"`
	BillNumber  LooseString   `json:"bill_number"`
	ChangeHash  LooseString   `json:"change_hash"`
	URL         LooseString   `json:"url"`
	StateLink   LooseString   `json:"state_link"`
	Status      LooseInt      `json:"status"`
	StatusDate  LooseString   `json:"status_date"`
	State       LooseString   `json:"state"`
	StateID     LooseInt      `json:"state_id"`
	Title       LooseString   `json:"title"`
	Description LooseString   `json:"description"`
	Session     RawSession    `json:"session"`
	Sponsors    []RawSponsor  `json:"sponsors"`
	History     []RawHistory  `json:"history"`
	Committee   *RawCommittee `json:"committee"`
	Texts       []RawText     `json:"texts"`
}

// RawSponsor is a sponsor entry of a bill detail.
type RawSponsor struct {
	PeopleID      LooseInt    `json:"people_id"`
	Name          LooseString `json:"name"`
	FirstName     LooseString `json:"first_name"`
	LastName      LooseString `json:"last_name"`
	Party         LooseString `json:"party"`
	Role          LooseString `json:"role"`
	District      LooseString `json:"district"`
	SponsorTypeID LooseInt    `json:"sponsor_type_id"`
	SponsorOrder  LooseInt    `json:"sponsor_order"`
}

// RawHistory is a history entry of a bill detail.
type RawHistory struct {
	Date       LooseString `json:"date"`
	Action     LooseString `json:"action"`
	Chamber    LooseString `json:"chamber"`
	ChamberID  LooseInt    `json:"chamber_id"`
	Importance LooseInt    `json:"importance"`
}

// RawCommittee is the committee currently holding a bill.
// Upstream sends an empty array instead of null when there is none,
// which decodes to the zero value.
type RawCommittee struct {
	CommitteeID LooseInt    `json:"committee_id"`
	Chamber     LooseString `json:"chamber"`
	ChamberID   LooseInt    `json:"chamber_id"`
	Name        LooseString `json:"name"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *RawCommittee) UnmarshalJSON(data []byte) error {
	*c = RawCommittee{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	type plain RawCommittee
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = RawCommittee(p)
	return nil
}

// IsZero reports whether the committee carries no usable data.
func (c *RawCommittee) IsZero() bool {
	return c == nil || (!c.CommitteeID.Truthy() && !c.Name.Truthy())
}

// RawText is a text document reference of a bill detail.
type RawText struct {
	DocID     LooseInt    `json:"doc_id"`
	Date      LooseString `json:"date"`
	Type      LooseString `json:"type"`
	TypeID    LooseInt    `json:"type_id"`
	MIME      LooseString `json:"mime"`
	MIMEID    LooseInt    `json:"mime_id"`
	URL       LooseString `json:"url"`
	StateLink LooseString `json:"state_link"`
	TextSize  LooseInt    `json:"text_size"`
}

// RawBillText is the "text" object returned by getBillText.
// Doc holds the base64-encoded document body.
type RawBillText struct {
	DocID     LooseInt    `json:"doc_id"`
	BillID    LooseInt    `json:"bill_id"`
	Date      LooseString `json:"date"`
	Type      LooseString `json:"type"`
	MIME      LooseString `json:"mime"`
	URL       LooseString `json:"url"`
	StateLink LooseString `json:"state_link"`
	TextSize  LooseInt    `json:"text_size"`
	TextHash  LooseString `json:"text_hash"`
	Doc       LooseString `json:"doc"`
}

// RawSearchHit is one result of the search operation.
type RawSearchHit struct {
	Relevance      LooseInt    `json:"relevance"`
	State          LooseString `json:"state"`
	BillNumber     LooseString `json:"bill_number"`
	BillID         LooseInt    `json:"bill_id"`
	ChangeHash     LooseString `json:"change_hash"`
	URL            LooseString `json:"url"`
	TextURL        LooseString `json:"text_url"`
	ResearchURL    LooseString `json:"research_url"`
	LastActionDate LooseString `json:"last_action_date"`
	LastAction     LooseString `json:"last_action"`
	Title          LooseString `json:"title"`
}

// RawSearchSummary is the "summary" member of a search result.
type RawSearchSummary struct {
	Page        LooseString `json:"page"`
	Range       LooseString `json:"range"`
	Relevancy   LooseString `json:"relevancy"`
	Count       LooseInt    `json:"count"`
	PageCurrent LooseInt    `json:"page_current"`
	PageTotal   LooseInt    `json:"page_total"`
	Query       LooseString `json:"query"`
}

// RawSearchResult is the normalised "searchresult" object.
type RawSearchResult struct {
	Summary RawSearchSummary
	Hits    []RawSearchHit
}
