package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/cftunnel/models"
)

// Failure kinds. Every error returned by [CloudflareAdapter] matches exactly
// one of them with [errors.Is].
var (
	// ErrRemoteRejected means the API responded with a valid envelope and
	// success=false.
	ErrRemoteRejected = errors.New("cloudflare rejected the request")

	// ErrTransportFailed means no valid envelope was received: network error,
	// timeout, cancellation, or an undecodable body.
	ErrTransportFailed = errors.New("cloudflare request failed")
)

// UnknownAPIErrorMessage is reported when a rejection carries no errors.
const UnknownAPIErrorMessage = "Unknown Cloudflare API error"

// APIError is an application-level rejection reported by the API. Code and
// Message come from the first entry of the envelope's errors array.
type APIError struct {
	Code    int
	Message string
	// Status is the HTTP status code of the response.
	Status int
}

func (e *APIError) Error() string {
	if e.Code == 0 {
		return e.Message
	}
	return fmt.Sprintf("CF API error %d: %s", e.Code, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrRemoteRejected
}

// newAPIError builds the rejection from the envelope's errors array.
func newAPIError(errs []models.APIMessage, status int) *APIError {
	if len(errs) == 0 {
		return &APIError{Message: UnknownAPIErrorMessage, Status: status}
	}
	msg := errs[0].Message
	if msg == "" {
		msg = UnknownAPIErrorMessage
	}
	return &APIError{Code: errs[0].Code, Message: msg, Status: status}
}

// TransportError reports a call that never produced a valid envelope.
type TransportError struct {
	// Op names the adapter operation, e.g. "create tunnel".
	Op string
	// Status is the HTTP status when a response arrived, zero otherwise.
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: transport failure (http %d): %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: transport failure: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransportFailed
}
