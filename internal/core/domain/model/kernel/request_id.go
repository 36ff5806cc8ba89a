package kernel

import (
	"fmt"

	"sorting/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrRequestIDIsNotConstructed indicates a zero-value RequestID.
var ErrRequestIDIsNotConstructed = errs.NewValueIsRequiredError(
	"request ID must be created via NewRequestID or RequestIDFromString")

// RequestID correlates the log lines and metrics of one sort request.
// It wraps github.com/google/uuid; the zero value is invalid.
//
// Parcels themselves have no identity, the ID belongs to the request that carries them.
type RequestID struct {
	id uuid.UUID
}

// NewRequestID generates a new random RequestID (version 4).
func NewRequestID() RequestID {
	return RequestID{
		id: uuid.New(),
	}
}

// RequestIDFromString parses a RequestID, e.g. from an X-Request-ID header.
//
// Example:
//
//	id, err := kernel.RequestIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    id = kernel.NewRequestID()
//	}
func RequestIDFromString(s string) (RequestID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return RequestID{}, fmt.Errorf("invalid request ID format: %w", err)
	}

	requestID := RequestID{id: id}
	if err = requestID.Validate(); err != nil {
		return RequestID{}, err
	}

	return requestID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (r RequestID) String() string {
	return r.id.String()
}

// IsEqual reports whether both IDs are the same.
func (r RequestID) IsEqual(other RequestID) bool {
	return r.id == other.id
}

// Validate returns ErrRequestIDIsNotConstructed for the nil UUID.
func (r RequestID) Validate() error {
	if r.id == uuid.Nil {
		return ErrRequestIDIsNotConstructed
	}
	return nil
}
