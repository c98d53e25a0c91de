package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// invalidJSONError is the sentinel appended for envelope items that are
// structurally unusable even though the body as a whole parsed.
var invalidJSONError = &APIError{Code: 0xFF, Message: "Invalid JSON received from server"}

// Response is a parsed Linode API response.
//
// The API wraps every response in a batch-capable envelope:
//
//	{
//	  "ERRORARRAY": [ ... ],
//	  "DATA": [ ... ],
//	  "ACTION": " ... "
//	}
//
// This client never batches, so a body is either one such object or a
// list of them. Objects and Errors are populated together in one pass
// over the decoded body; a few of the API's quirks are caught here too.
type Response struct {
	// Objects holds each envelope item's DATA verbatim, in order.
	// A nil entry marks an item that was structurally invalid.
	Objects []json.RawMessage
	// Errors holds every error extracted from the envelope, in order.
	// Entries are *APIError or *InvalidCredsError.
	Errors []error
	// StatusCode is the HTTP status code of the response
	StatusCode int
	// Status is the HTTP status line, e.g. "200 OK"
	Status string
	// Headers maps header names to values; for repeated names the last
	// value wins, matching the transport's ordering
	Headers map[string]string
	// Body is the full raw response body
	Body string
}

// ParseResponse reads and parses a raw HTTP response from the Linode API.
//
// The raw status, headers, and body are captured before any parsing, so
// they remain available for diagnostics whatever happens next. If the
// body is not valid JSON it returns a *MalformedResponseError and no
// Response. If the envelope parsed but reported errors, it returns both
// the Response and the first error; the full collection stays available
// on Response.Errors for callers that need more than the headline
// failure.
func ParseResponse(resp *http.Response) (*Response, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	r := &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Headers:    flattenHeader(resp.Header),
		Body:       string(body),
	}

	if err := r.parseBody(body); err != nil {
		return nil, err
	}
	if !r.Success() {
		// Surface the first error; there will usually only be one.
		return r, r.Errors[0]
	}
	return r, nil
}

// Success reports whether the response carried no errors.
//
// The API signals failure through ERRORARRAY rather than HTTP status
// codes; any entry there means the whole request failed.
func (r *Response) Success() bool {
	return len(r.Errors) == 0
}

// parseBody decodes the envelope into r.Objects and r.Errors. Only a
// body that is not valid JSON at all is a returned error; anything
// structurally wrong past that point is recorded in r.Errors instead.
func (r *Response) parseBody(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return &MalformedResponseError{Body: r.Body}
	}

	// A solitary response is promoted to a one-item list so the rest of
	// the extraction is uniform.
	var items []json.RawMessage
	switch {
	case len(trimmed) > 0 && trimmed[0] == '{':
		items = []json.RawMessage{trimmed}
	case len(trimmed) > 0 && trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return &MalformedResponseError{Body: r.Body}
		}
	default:
		// Valid JSON but a scalar; there is no envelope to walk.
		r.Objects = nil
		r.Errors = []error{invalidJSONError}
		return nil
	}

	var objects []json.RawMessage
	var errs []error
	for _, item := range items {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(item, &obj); err != nil {
			// Not an object at all; treat like an item missing its keys.
			objects = append(objects, nil)
			errs = append(errs, invalidJSONError)
			continue
		}

		data, hasData := obj["DATA"]
		errArray, hasErrors := obj["ERRORARRAY"]
		_, hasAction := obj["ACTION"]
		if !hasData || !hasErrors || !hasAction {
			objects = append(objects, nil)
			errs = append(errs, invalidJSONError)
			continue
		}

		// ERRORARRAY must be a list of objects; anything else, null
		// included, gives up on the body. The decode alone can't catch
		// null since it leaves the slice empty without error.
		var entries []errorEntry
		trimmedArr := bytes.TrimSpace(errArray)
		if len(trimmedArr) == 0 || trimmedArr[0] != '[' {
			r.Objects = nil
			r.Errors = []error{invalidJSONError}
			return nil
		}
		if err := json.Unmarshal(trimmedArr, &entries); err != nil {
			r.Objects = nil
			r.Errors = []error{invalidJSONError}
			return nil
		}

		objects = append(objects, data)
		for _, entry := range entries {
			if err := entry.toError(); err != nil {
				errs = append(errs, err)
			}
		}
	}

	r.Objects = objects
	r.Errors = errs
	return nil
}

// errorEntry is one ERRORARRAY element. Pointer fields distinguish
// absent keys from zero values.
type errorEntry struct {
	Code    *int    `json:"ERRORCODE"`
	Message *string `json:"ERRORMESSAGE"`
}

// toError converts the entry to a typed error, or nil if the entry is
// missing either key. Such entries are dropped without a trace; the API
// has never been observed to send them, so there is nothing sensible to
// report.
func (e errorEntry) toError() error {
	if e.Code == nil || e.Message == nil {
		return nil
	}
	if *e.Code == invalidCredsCode {
		return newInvalidCredsError(*e.Message)
	}
	return &APIError{Code: *e.Code, Message: *e.Message}
}

// flattenHeader collapses an http.Header into a simple name-to-value
// map, keeping the last value for repeated names.
func flattenHeader(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if len(values) > 0 {
			out[name] = values[len(values)-1]
		}
	}
	return out
}
