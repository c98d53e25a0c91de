package client

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Code: 6, Message: "Object not found"}
	assert.Equal(t, "(6) Object not found", err.Error())
}

func TestAPIError_GoString(t *testing.T) {
	err := &APIError{Code: 255, Message: "Invalid JSON received from server"}
	assert.Equal(t, "<APIError code=255 'Invalid JSON received from server'>", err.GoString())
	assert.Equal(t, err.GoString(), fmt.Sprintf("%#v", err))
}

func TestInvalidCredsError(t *testing.T) {
	err := newInvalidCredsError("Auth failed")
	assert.Equal(t, 4, err.Code)
	assert.Equal(t, "(4) Auth failed", err.Error())

	assert.True(t, IsInvalidCreds(err))
	// An InvalidCredsError is still detectable as a plain APIError, but
	// not the other way around.
	assert.False(t, IsInvalidCreds(&APIError{Code: 4, Message: "looks alike"}))
}

func TestMalformedResponseError(t *testing.T) {
	err := &MalformedResponseError{Body: "not json"}
	assert.Equal(t, "not json", err.Body)
	assert.Contains(t, err.Error(), "failed to parse JSON")

	assert.True(t, IsMalformedResponse(err))
	assert.False(t, IsMalformedResponse(&APIError{Code: 1, Message: "x"}))
	assert.False(t, IsInvalidCreds(err))
}

func TestErrorsWrapped(t *testing.T) {
	wrapped := fmt.Errorf("calling API: %w", newInvalidCredsError("Auth failed"))
	assert.True(t, IsInvalidCreds(wrapped))

	wrapped = fmt.Errorf("calling API: %w", &MalformedResponseError{Body: "x"})
	assert.True(t, IsMalformedResponse(wrapped))
}
