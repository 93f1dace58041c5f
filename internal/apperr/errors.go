// Package apperr defines the closed set of error kinds that cross the
// store and identity boundaries, and the Error type that carries them.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error. Kind implements error so callers can test a
// chain with errors.Is(err, apperr.KindNotFound).
type Kind uint8

const (
	KindUnknown Kind = iota
	KindStoreUnavailable
	KindDuplicateKey
	KindValidation
	KindInvalidToken
	KindExpiredToken
	KindNotFound
	KindNotOwner
	KindUnauthenticated
	KindBadRequest
)

var kindNames = map[Kind]string{
	KindUnknown:          "unknown",
	KindStoreUnavailable: "store_unavailable",
	KindDuplicateKey:     "duplicate_key",
	KindValidation:       "validation",
	KindInvalidToken:     "invalid_token",
	KindExpiredToken:     "expired_token",
	KindNotFound:         "not_found",
	KindNotOwner:         "not_owner",
	KindUnauthenticated:  "unauthenticated",
	KindBadRequest:       "bad_request",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) Error() string { return k.String() }

// defaultStatus is the HTTP status a kind renders with when the error does
// not carry its own.
var defaultStatus = map[Kind]int{
	KindStoreUnavailable: http.StatusInternalServerError,
	KindDuplicateKey:     http.StatusBadRequest,
	KindValidation:       http.StatusBadRequest,
	KindInvalidToken:     http.StatusUnauthorized,
	KindExpiredToken:     http.StatusUnauthorized,
	KindNotFound:         http.StatusNotFound,
	// not-owner is part of the existing wire contract as 401
	KindNotOwner:        http.StatusUnauthorized,
	KindUnauthenticated: http.StatusUnauthorized,
	KindBadRequest:      http.StatusBadRequest,
}

// Error is the tagged error produced at the store and identity boundaries.
type Error struct {
	Kind    Kind
	Status  int      // 0 means the kind's default
	Message string   // client-facing text
	Fields  []string // per-field messages, Validation only, in field order
	Err     error    // underlying cause, never shown to clients
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && len(e.Fields) > 0 {
		msg = fmt.Sprintf("%v", e.Fields)
	}
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the Kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// StatusCode returns the status carried by e or the default for its kind.
func (e *Error) StatusCode() int {
	if e.Status != 0 {
		return e.Status
	}
	if s, ok := defaultStatus[e.Kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// New builds an Error of the given kind with a client-facing message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf is New with formatting.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches kind and message to an underlying cause.
func Wrap(err error, kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// Validation builds a validation error from ordered per-field messages.
func Validation(fields ...string) *Error {
	return &Error{Kind: KindValidation, Fields: fields}
}

// NotFound builds the not-found error for a resource id.
func NotFound(resource, id string) *Error {
	return Newf(KindNotFound, "%s not found with id of %s", resource, id)
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Find returns the first *Error of the given kind in err's chain.
func Find(err error, kind Kind) (*Error, bool) {
	var found *Error
	walk(err, func(e error) bool {
		if ae, ok := e.(*Error); ok && ae.Kind == kind {
			found = ae
			return true
		}
		return false
	})
	return found, found != nil
}

// walk visits err and everything it wraps, depth first, until visit returns true.
func walk(err error, visit func(error) bool) bool {
	if err == nil {
		return false
	}
	if visit(err) {
		return true
	}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, inner := range u.Unwrap() {
			if walk(inner, visit) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return walk(u.Unwrap(), visit)
	}
	return false
}
