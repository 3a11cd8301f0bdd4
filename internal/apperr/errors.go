package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a failure for the HTTP layer.
type Kind int

const (
	Internal Kind = iota
	Unauthenticated
	NotAuthorized
	NotFound
	Conflict
	Validation
	Upstream
	Persistence
)

func (k Kind) String() string {
	switch k {
	case Unauthenticated:
		return "unauthenticated"
	case NotAuthorized:
		return "not_authorized"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case Validation:
		return "validation"
	case Upstream:
		return "upstream"
	case Persistence:
		return "persistence"
	default:
		return "internal"
	}
}

// Status returns the HTTP status code used for the kind.
func (k Kind) Status() int {
	switch k {
	case Unauthenticated, NotAuthorized:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict, Validation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Issue is one entry of an `{errors: [...]}` response.
type Issue struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// Error is the application error carried from services to handlers.
// Msg is safe to show to clients; Err is the internal cause and is never rendered.
type Error struct {
	Kind   Kind
	Msg    string
	Issues []Issue
	Err    error
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Listed builds an error rendered as a single-entry issue list.
func Listed(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Issues: []Issue{{Msg: msg}}}
}

// Invalid builds a validation error from the collected issues.
func Invalid(issues []Issue) *Error {
	msg := "validation failed"
	if len(issues) > 0 {
		msg = issues[0].Msg
	}
	return &Error{Kind: Validation, Msg: msg, Issues: issues}
}

// Wrap attaches an internal cause to a client-safe message.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of err, or Internal when err is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}

// IsClientError reports whether the failure is caused by the caller.
func (k Kind) IsClientError() bool {
	return k.Status() < http.StatusInternalServerError
}
