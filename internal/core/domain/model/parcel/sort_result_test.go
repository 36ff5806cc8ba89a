package parcel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sorting/internal/core/domain/model/parcel"
	"sorting/internal/pkg/errs"
)

func TestSortResult_String(t *testing.T) {
	testCases := []struct {
		result   parcel.SortResult
		expected string
	}{
		{parcel.Standard, "standard"},
		{parcel.Special, "special"},
		{parcel.Rejected, "rejected"},
		{parcel.SortResult(3), "unknown"},
		{parcel.SortResult(-1), "unknown"},
	}

	for _, tc := range testCases {
		t.Run("should render "+tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.result.String())
		})
	}
}

func TestSortResult_Validate(t *testing.T) {
	t.Run("should accept every declared result", func(t *testing.T) {
		for _, r := range parcel.AllSortResults() {
			require.NoError(t, r.Validate())
		}
	})

	t.Run("should reject undeclared values", func(t *testing.T) {
		err := parcel.SortResult(42).Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "42 is not a valid sort result")
	})
}

func TestAllSortResults(t *testing.T) {
	assert.Equal(t, []parcel.SortResult{parcel.Standard, parcel.Special, parcel.Rejected}, parcel.AllSortResults())
}
