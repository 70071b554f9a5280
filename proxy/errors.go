package proxy

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a proxy failure. Each kind maps to exactly one status.
type Kind int

const (
	KindInvalidInput Kind = iota
	KindMethodNotAllowed
	KindConfiguration
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	case KindConfiguration:
		return "configuration"
	case KindUpstream:
		return "upstream"
	}
	return "unknown"
}

// Status is the HTTP status a kind is reported with
func (k Kind) Status() int {
	switch k {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure. Message is what the caller sees; Details
// carries the underlying cause when the endpoint exposes it.
type Error struct {
	Kind    Kind
	Message string
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	// ErrNoResponse is returned when the upstream answered without any text
	ErrNoResponse = errors.New("no response from upstream")
	// ErrMissingAPIKey is returned when no upstream credential is configured
	ErrMissingAPIKey = errors.New("api key not configured")
)

func invalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

// KindOf extracts the kind of err, treating unclassified errors as upstream
// failures
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUpstream
}
