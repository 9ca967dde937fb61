package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// Rich error types below unwrap to these sentinels so callers can use errors.Is.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Upstream Errors.

	// ErrTransport indicates the HTTP exchange with the upstream API failed.
	ErrTransport = errors.New("upstream transport failure")

	// ErrAPIStatus indicates the upstream API reported failure in its own payload.
	ErrAPIStatus = errors.New("upstream reported failure")

	// ErrMissingCredential indicates no API key has been configured.
	ErrMissingCredential = errors.New("API key not configured")

	// Resolution Errors.

	// ErrNoSession indicates the jurisdiction has no legislative sessions.
	ErrNoSession = errors.New("no legislative session")

	// ErrInvalidID indicates a non-positive or absent identifier.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrMalformedRecord indicates an upstream record lacks required fields.
	ErrMalformedRecord = errors.New("malformed upstream record")

	// Testimony Errors.

	// ErrUnknownCommittee indicates no recipient is configured for a committee.
	ErrUnknownCommittee = errors.New("no recipient configured for committee")
)

// TransportError reports an HTTP-level failure talking to the upstream API.
// Body holds the raw response body for diagnostics; it is never parsed.
type TransportError struct {
	Operation  string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Operation, ErrTransport)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.StatusCode)
	}
	if body := strings.TrimSpace(e.Body); body != "" {
		if len(body) > 200 {
			body = body[:200] + "..."
		}
		msg = fmt.Sprintf("%s: %s", msg, body)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

// APIStatusError reports a response whose top-level status is not "OK".
// Payload carries the entire parsed body.
type APIStatusError struct {
	Operation string
	Status    string
	Payload   Payload
}

func (e *APIStatusError) Error() string {
	status := e.Status
	if status == "" {
		status = "missing"
	}
	msg := fmt.Sprintf("%s: %v (status %s)", e.Operation, ErrAPIStatus, status)
	if alert := e.Payload.AlertMessage(); alert != "" {
		msg = fmt.Sprintf("%s: %s", msg, alert)
	}
	return msg
}

func (e *APIStatusError) Unwrap() error {
	return ErrAPIStatus
}

// NoSessionError reports a jurisdiction with an empty session list.
type NoSessionError struct {
	Jurisdiction string
}

func (e *NoSessionError) Error() string {
	return fmt.Sprintf("%v found for %q", ErrNoSession, e.Jurisdiction)
}

func (e *NoSessionError) Unwrap() error {
	return ErrNoSession
}

// InvalidIDError reports an identifier rejected before any network call.
type InvalidIDError struct {
	Kind  string
	Value int
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("%v: %s id must be a positive integer, got %d", ErrInvalidID, e.Kind, e.Value)
}

func (e *InvalidIDError) Unwrap() error {
	return ErrInvalidID
}

// ValidateID returns an InvalidIDError unless id is positive.
func ValidateID(kind string, id int) error {
	if id <= 0 {
		return &InvalidIDError{Kind: kind, Value: id}
	}
	return nil
}
