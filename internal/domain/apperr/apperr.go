// Package apperr defines the error taxonomy of the service.
//
// Every failure that crosses a layer boundary is one of four kinds, so the
// HTTP layer can map each to a distinct status code instead of guessing from
// error strings:
//
//   - NotFound:   a company key has no matching row (404)
//   - Validation: malformed dates or out-of-range pagination params (400)
//   - Store:      the relational store is unreachable or a query failed (500)
//   - Upstream:   a downstream service returned non-success or bad data (502)
package apperr

import (
	"errors"
	"fmt"
)

// Kind discriminates error categories.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindValidation
	KindStore
	KindUpstream
)

// Error is a categorized error. Upstream failures carry the name of the
// upstream that failed so callers and logs can tell them apart.
type Error struct {
	Kind     Kind
	Message  string
	Upstream string // set for KindUpstream only
	Err      error  // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports that the requested entity does not exist.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Validation reports malformed or out-of-range request input.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Store wraps a relational-store failure.
func Store(err error, format string, args ...any) *Error {
	return &Error{Kind: KindStore, Message: fmt.Sprintf(format, args...), Err: err}
}

// Upstream wraps a downstream-service failure, recording which upstream failed.
func Upstream(upstream string, err error, format string, args ...any) *Error {
	return &Error{Kind: KindUpstream, Message: fmt.Sprintf(format, args...), Upstream: upstream, Err: err}
}

// KindOf extracts the Kind from any error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }
