// Package queries contains read operations of the sorting core.
package queries

import (
	"errors"

	"sorting/internal/core/domain/model/kernel"
	"sorting/internal/pkg/guard"
)

var (
	ErrSortPackageQueryIsNotConstructed = errors.New(
		"SortPackageQuery must be created via NewSortPackageQuery constructor",
	)
)

// SortPackageQuery asks for the sort result of one package.
// The raw measurements are carried unvalidated. Handle reports them as services.SortError.
//
// Example:
//
//	query, err := NewSortPackageQuery(kernel.NewRequestID(), 148, 1, 1, 20)
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to sort package: %w", err)
//	}
//	fmt.Println(result) // Output: rejected
type SortPackageQuery struct { //nolint:recvcheck //using for validation
	requestID kernel.RequestID
	width     uint
	height    uint
	length    uint
	mass      uint

	guard guard.ConstructorGuard
}

// NewSortPackageQuery creates a query for the given measurements.
// Returns an error only when requestID is not constructed.
func NewSortPackageQuery(requestID kernel.RequestID, width, height, length, mass uint) (SortPackageQuery, error) {
	query := SortPackageQuery{
		width:  width,
		height: height,
		length: length,
		mass:   mass,
		guard:  guard.NewConstructorGuard(),
	}

	if err := query.setRequestID(requestID); err != nil {
		return SortPackageQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q SortPackageQuery) Validate() error {
	return q.guard.Validate(ErrSortPackageQueryIsNotConstructed)
}

// RequestID returns the correlation ID of the request.
func (q SortPackageQuery) RequestID() kernel.RequestID {
	return q.requestID
}

// Width returns the raw width.
func (q SortPackageQuery) Width() uint {
	return q.width
}

// Height returns the raw height.
func (q SortPackageQuery) Height() uint {
	return q.height
}

// Length returns the raw length.
func (q SortPackageQuery) Length() uint {
	return q.length
}

// Mass returns the raw mass.
func (q SortPackageQuery) Mass() uint {
	return q.mass
}

func (q *SortPackageQuery) setRequestID(requestID kernel.RequestID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	q.requestID = requestID
	return nil
}
