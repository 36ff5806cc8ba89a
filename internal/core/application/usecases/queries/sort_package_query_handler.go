package queries

import (
	"context"
	"errors"
	"log/slog"

	"sorting/internal/core/domain/model/parcel"
	"sorting/internal/core/domain/services"
	"sorting/internal/core/ports"
)

// SortPackageQueryHandler sorts one package and reports the outcome to a SortRecorder.
//
// Example:
//
//	handler := NewSortPackageQueryHandler(services.NewPackageSorter(), recorder, logger)
//	result, err := handler.Handle(ctx, query)
//	var sortErr *services.SortError
//	if errors.As(err, &sortErr) {
//	    // invalid input, sortErr.Field tells which one
//	}
type SortPackageQueryHandler struct {
	sorter   services.PackageSorter
	recorder ports.SortRecorder
	logger   *slog.Logger
}

// NewSortPackageQueryHandler creates a handler for sort queries.
func NewSortPackageQueryHandler(
	sorter services.PackageSorter,
	recorder ports.SortRecorder,
	logger *slog.Logger,
) SortPackageQueryHandler {
	return SortPackageQueryHandler{
		sorter:   sorter,
		recorder: recorder,
		logger:   logger.With("component", "sort_package_query_handler"),
	}
}

// Handle validates the measurements and returns the sort result.
// Validation failures are returned unchanged as *services.SortError.
func (h SortPackageQueryHandler) Handle(ctx context.Context, query SortPackageQuery) (parcel.SortResult, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	logger := h.logger.With("request_id", query.RequestID().String())

	result, err := h.sorter.Sort(query.Width(), query.Height(), query.Length(), query.Mass())
	if err != nil {
		var sortErr *services.SortError
		if errors.As(err, &sortErr) {
			h.recorder.RecordInvalidInput(ctx, sortErr.Field)
			logger.InfoContext(ctx, "Package rejected by validation",
				"field", sortErr.Field.String(), "value", sortErr.Value)
			return 0, err
		}

		logger.ErrorContext(ctx, "Package sorting failed", "error", err)
		return 0, err
	}

	h.recorder.RecordSorted(ctx, result)
	logger.DebugContext(ctx, "Package sorted",
		"width", query.Width(),
		"height", query.Height(),
		"length", query.Length(),
		"mass", query.Mass(),
		"result", result.String(),
	)

	return result, nil
}
