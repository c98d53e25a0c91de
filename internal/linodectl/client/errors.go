package client

import (
	"errors"
	"fmt"
)

// APIError represents one error reported by the Linode API.
//
// Every error in the API's ERRORARRAY is a numeric code plus a
// human-readable description; the full list is in the provider's API
// documentation.
type APIError struct {
	// Code is the numeric error code assigned by the API
	Code int
	// Message is the human-readable description
	Message string
}

// Error implements the error interface with the API's conventional form.
func (e *APIError) Error() string {
	return fmt.Sprintf("(%d) %s", e.Code, e.Message)
}

// GoString returns a debugging representation including the type name.
func (e *APIError) GoString() string {
	return fmt.Sprintf("<APIError code=%d '%s'>", e.Code, e.Message)
}

// InvalidCredsError indicates the API rejected the supplied api_key.
//
// The API signals this with ERRORCODE 4. Callers should treat it
// differently from other API errors: re-authenticate rather than retry.
type InvalidCredsError struct {
	APIError
}

// newInvalidCredsError creates an InvalidCredsError carrying the API's message.
func newInvalidCredsError(message string) *InvalidCredsError {
	return &InvalidCredsError{APIError{Code: invalidCredsCode, Message: message}}
}

// Unwrap exposes the underlying APIError so callers matching on the
// generic kind still see authentication failures.
func (e *InvalidCredsError) Unwrap() error {
	return &e.APIError
}

// invalidCredsCode is the ERRORCODE the API uses for authentication failures.
const invalidCredsCode = 4

// MalformedResponseError indicates the response body was not valid JSON.
//
// It aborts parsing entirely and carries the raw body for diagnostics,
// unlike APIError values which are the result of a successfully parsed
// but unsuccessful response.
type MalformedResponseError struct {
	// Body is the raw response body that failed to parse
	Body string
}

// Error implements the error interface.
func (e *MalformedResponseError) Error() string {
	return "failed to parse JSON from response body"
}

// IsInvalidCreds returns true if err represents an authentication failure.
func IsInvalidCreds(err error) bool {
	var creds *InvalidCredsError
	return errors.As(err, &creds)
}

// IsMalformedResponse returns true if err represents an unparseable response body.
func IsMalformedResponse(err error) bool {
	var malformed *MalformedResponseError
	return errors.As(err, &malformed)
}
