// Package ports defines the contracts between the sorting core and its infrastructure.
package ports

import (
	"context"

	"sorting/internal/core/domain/model/parcel"
	"sorting/internal/core/domain/services"
)

// SortRecorder observes the outcome of sort requests, e.g. to export metrics.
// Implementations must be safe for concurrent use.
type SortRecorder interface {
	// RecordSorted is called once per successfully sorted package.
	RecordSorted(ctx context.Context, result parcel.SortResult)

	// RecordInvalidInput is called once per request rejected by validation,
	// with the field that failed first.
	RecordInvalidInput(ctx context.Context, field services.Field)
}
