package exceptions

import (
	"errors"
	"fmt"
	"testing"

	"medicare-frontend/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestKindAndStatus(t *testing.T) {
	rejected := ErrHTTPStatus(400, "Cannot delete doctor with existing appointments", "", "DELETE", "/doctors/1")
	wrapped := fmt.Errorf("deleting: %w", rejected)

	assert.Equal(t, KindHTTP, KindOf(wrapped))
	assert.Equal(t, 400, StatusOf(wrapped))
	assert.True(t, IsKind(wrapped, KindHTTP))
	assert.False(t, IsKind(nil, KindHTTP))

	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, 0, StatusOf(errors.New("plain")))
}

func TestClientMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"server message", ErrInvalidCredentials(401, "Invalid credentials"), "Invalid credentials"},
		{"empty server message", ErrInvalidCredentials(401, ""), constvars.ErrClientInvalidCredentials},
		{"not found fallback", ErrResourceNotFound(404, "", "doctor"), constvars.ErrClientRecordNotFound},
		{"foreign error", errors.New("dial tcp: refused"), constvars.ErrClientNetworkError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClientMessage(tt.err))
		})
	}
}

func TestIsTransportFailure(t *testing.T) {
	assert.True(t, IsTransportFailure(ErrSendHTTPRequest(errors.New("refused"))))
	assert.True(t, IsTransportFailure(ErrDecodeResponse(errors.New("bad json"), "doctors")))
	assert.True(t, IsTransportFailure(errors.New("foreign")))
	assert.False(t, IsTransportFailure(ErrHTTPStatus(500, "", "", "GET", "/doctors")))
	assert.False(t, IsTransportFailure(ErrRejectedPayload(400, "Username already exists", "")))
	assert.False(t, IsTransportFailure(nil))
}

func TestFormatFirstValidationError(t *testing.T) {
	type payload struct {
		Name   string `validate:"required"`
		Status string `validate:"oneof=Scheduled Completed"`
	}

	err := validator.New().Struct(payload{Status: "Scheduled"})
	assert.Equal(t, "name is required", FormatFirstValidationError(err))
	assert.Equal(t, "name is required", ClientMessage(ErrInputValidation(err)))
	assert.Equal(t, constvars.ErrClientOperationFailed, FormatFirstValidationError(errors.New("other")))
}
