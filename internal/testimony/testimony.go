// Package testimony renders written testimony for committee hearings.
package testimony

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/legis-cli/internal/core/domain"
)

// Stock text wrapped around every testimony body.
const (
	StockOpening = "Chair and members of the committee:"
	StockClosing = "Thank you for the opportunity to testify and for your consideration of my testimony."
)

// DateLayout is the long US date format shown on documents.
const DateLayout = "January 2, 2006"

// defaultCommittee is shown when no committee has been chosen.
const defaultCommittee = "Committee"

// Subject returns the heading used as document title and email subject.
func Subject(t domain.Testimony) string {
	return fmt.Sprintf("%s Testimony on %s", t.Position.Label(), strings.TrimSpace(t.BillNumber))
}

// Date formats the testimony date, today when unset.
func Date(t domain.Testimony) string {
	d := t.Date
	if d.IsZero() {
		d = time.Now()
	}
	return d.Format(DateLayout)
}

// Body returns the stock opening, the testimony, the stock closing and
// the signature (name, then city), separated by blank lines.
func Body(t domain.Testimony) string {
	var sb strings.Builder
	sb.WriteString(StockOpening)
	sb.WriteString("\n\n")
	sb.WriteString(strings.TrimSpace(t.Body))
	sb.WriteString("\n\n")
	sb.WriteString(StockClosing)

	if name := t.FullName(); name != "" {
		sb.WriteString("\n\n")
		sb.WriteString(name)
	}
	if city := strings.TrimSpace(t.City); city != "" {
		sb.WriteString("\n")
		sb.WriteString(city)
	}
	return sb.String()
}

// Text renders the plain-text document: subject, date and committee
// followed by the body.
func Text(t domain.Testimony) string {
	return fmt.Sprintf("%s\n%s\n%s\n\n%s", Subject(t), Date(t), committeeOf(t), Body(t))
}

func committeeOf(t domain.Testimony) string {
	if c := strings.TrimSpace(t.Committee); c != "" {
		return c
	}
	return defaultCommittee
}

var page = template.Must(template.New("testimony").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Subject}}</title>
    <style>
      body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; font-size: 12pt; line-height: 1.6; margin: 40px; color: #000; }
      .title { font-size: 18pt; font-weight: bold; margin-bottom: 30px; text-align: center; }
      .metadata { font-size: 12pt; margin-bottom: 5px; }
      .metadata-last { font-size: 12pt; margin-bottom: 30px; }
      .testimony-text { white-space: pre-wrap; line-height: 1.8; text-align: justify; }
    </style>
  </head>
  <body>
    <div class="title">{{.Subject}}</div>
    <div class="metadata">{{.Date}}</div>
    <div class="metadata-last">{{.Committee}}</div>
    <div class="testimony-text">{{.Body}}</div>
  </body>
</html>
`))

// HTML renders a printable page. All user text is escaped.
func HTML(t domain.Testimony) (string, error) {
	var buf bytes.Buffer
	err := page.Execute(&buf, struct {
		Subject, Date, Committee, Body string
	}{
		Subject:   Subject(t),
		Date:      Date(t),
		Committee: committeeOf(t),
		Body:      Body(t),
	})
	if err != nil {
		return "", fmt.Errorf("render testimony: %w", err)
	}
	return buf.String(), nil
}

// Mailto builds a mailto: URL. Spaces are encoded as %20 since many mail
// clients show '+' literally.
func Mailto(recipient, subject, body string) string {
	q := "subject=" + escape(subject) + "&body=" + escape(body)
	return "mailto:" + strings.TrimSpace(recipient) + "?" + q
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
