package parcel_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"sorting/internal/core/domain/model/kernel"
	"sorting/internal/core/domain/model/parcel"
)

func TestNewDimensions(t *testing.T) {
	t.Run("should keep the given lengths", func(t *testing.T) {
		d := mustDimensions(10, 20, 30)

		require.NoError(t, d.Validate())
		assert.Equal(t, uint(10), d.Width().Value())
		assert.Equal(t, uint(20), d.Height().Value())
		assert.Equal(t, uint(30), d.Length().Value())
		assert.Equal(t, "10cm x 20cm x 30cm", d.String())
	})

	t.Run("should reject unconstructed lengths", func(t *testing.T) {
		valid := kernel.MustNewCentimeters(1)

		d, err := parcel.NewDimensions(valid, kernel.Centimeters{}, kernel.Centimeters{})

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrCentimetersIsNotConstructed)
		assert.Contains(t, err.Error(), "height")
		assert.Contains(t, err.Error(), "length")
		assert.NotContains(t, err.Error(), "width")
		require.ErrorIs(t, d.Validate(), parcel.ErrDimensionsIsNotConstructed)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var d parcel.Dimensions

		require.ErrorIs(t, d.Validate(), parcel.ErrDimensionsIsNotConstructed)
	})
}

func TestDimensions_Sum(t *testing.T) {
	t.Run("should add the three lengths", func(t *testing.T) {
		assert.Equal(t, uint(150), mustDimensions(148, 1, 1).Sum().Value())
	})

	t.Run("should saturate instead of overflowing", func(t *testing.T) {
		d := mustDimensions(kernel.MaxCentimeters, kernel.MaxCentimeters, kernel.MaxCentimeters)

		assert.Equal(t, kernel.MaxCentimeters, d.Sum().Value())
	})
}

func TestDimensions_Classify(t *testing.T) {
	tests := []struct {
		width, height, length uint
		expected              parcel.DimensionClass
	}{
		{1, 1, 1, parcel.StandardDimensions},
		{147, 1, 1, parcel.StandardDimensions},
		{148, 1, 1, parcel.BulkyDimensions},
		{149, 1, 1, parcel.BulkyDimensions},
		{50, 50, 50, parcel.BulkyDimensions},
		{kernel.MaxCentimeters, 1, 1, parcel.BulkyDimensions},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%dx%d should be %s", tt.width, tt.height, tt.length, tt.expected), func(t *testing.T) {
			assert.Equal(t, tt.expected, mustDimensions(tt.width, tt.height, tt.length).Classify())
		})
	}

	t.Run("arbitrary standard dimensions sum below 150 and are standard", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			d := standardDimensions().Draw(t, "dimensions")

			if d.Sum().Value() >= parcel.BulkySumThreshold {
				t.Fatalf("generator produced sum %d", d.Sum().Value())
			}
			if d.Classify() != parcel.StandardDimensions {
				t.Fatalf("%s classified as %s", d, d.Classify())
			}
		})
	})

	t.Run("arbitrary bulky dimensions sum to 150 or more and are bulky", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			d := bulkyDimensions().Draw(t, "dimensions")

			if d.Sum().Value() < parcel.BulkySumThreshold {
				t.Fatalf("generator produced sum %d", d.Sum().Value())
			}
			if d.Classify() != parcel.BulkyDimensions {
				t.Fatalf("%s classified as %s", d, d.Classify())
			}
		})
	})
}

func TestDimensionClass_String(t *testing.T) {
	assert.Equal(t, "standard", parcel.StandardDimensions.String())
	assert.Equal(t, "bulky", parcel.BulkyDimensions.String())
	assert.Equal(t, "unknown", parcel.DimensionClass(7).String())

	require.NoError(t, parcel.BulkyDimensions.Validate())
	require.Error(t, parcel.DimensionClass(-1).Validate())
}
