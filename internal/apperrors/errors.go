// Package apperrors defines the error taxonomy the API surfaces to clients.
// Services and repositories return these types; controllers map them to HTTP
// status codes in one place instead of matching on error strings.
package apperrors

import "fmt"

// ValidationError signals missing or malformed input (400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthError signals a missing/invalid token or bad credentials (401).
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// ConflictError signals a duplicate unique key (409).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError signals a referenced row that does not exist (404).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// UpstreamFormatError signals that the AI collaborator's reply could not be
// parsed as the contracted JSON shape (500).
type UpstreamFormatError struct {
	Message string
}

func (e *UpstreamFormatError) Error() string { return e.Message }

// PersistenceError wraps a database failure (500). The wrapped error is kept
// for logging; only Message is safe to show to a client.
type PersistenceError struct {
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func Validation(msg string) error      { return &ValidationError{Message: msg} }
func Auth(msg string) error            { return &AuthError{Message: msg} }
func Conflict(msg string) error        { return &ConflictError{Message: msg} }
func NotFound(msg string) error        { return &NotFoundError{Message: msg} }
func UpstreamFormat(msg string) error  { return &UpstreamFormatError{Message: msg} }
func Persistence(msg string, err error) error {
	return &PersistenceError{Message: msg, Err: err}
}
