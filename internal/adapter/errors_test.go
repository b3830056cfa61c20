package adapter

import (
	"errors"
	"testing"

	"github.com/MKhiriev/cftunnel/models"
	"github.com/stretchr/testify/assert"
)

func TestNewAPIError(t *testing.T) {
	tests := []struct {
		name    string
		errs    []models.APIMessage
		wantMsg string
	}{
		{"nil errors", nil, UnknownAPIErrorMessage},
		{"empty message", []models.APIMessage{{Code: 10000}}, "CF API error 10000: " + UnknownAPIErrorMessage},
		{"first error wins", []models.APIMessage{{Code: 1, Message: "a"}, {Code: 2, Message: "b"}}, "CF API error 1: a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newAPIError(tt.errs, 400)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.ErrorIs(t, err, ErrRemoteRejected)
		})
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := &TransportError{Op: "list zones", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrTransportFailed)
	assert.Equal(t, "list zones: transport failure: dial tcp: connection refused", err.Error())

	withStatus := &TransportError{Op: "list zones", Status: 502, Err: cause}
	assert.Contains(t, withStatus.Error(), "(http 502)")
}
