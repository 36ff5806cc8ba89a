package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"sorting/internal/core/domain/model/kernel"
	"sorting/internal/pkg/errs"
)

func TestNewCentimeters(t *testing.T) {
	tests := []struct {
		name    string
		value   uint
		wantErr bool
	}{
		{name: "minimum valid length", value: kernel.MinCentimeters},
		{name: "regular length", value: 42},
		{name: "maximum representable length", value: kernel.MaxCentimeters},
		{name: "zero is rejected", value: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := kernel.NewCentimeters(tt.value)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

				var invalid *kernel.InvalidCentimetersError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tt.value, invalid.OriginalValue())
				require.ErrorIs(t, c.Validate(), kernel.ErrCentimetersIsNotConstructed)
				return
			}

			require.NoError(t, err)
			require.NoError(t, c.Validate())
			assert.Equal(t, tt.value, c.Value())
		})
	}
}

func TestInvalidCentimetersError_Error(t *testing.T) {
	_, err := kernel.NewCentimeters(0)

	require.Error(t, err)
	assert.Equal(t,
		"value is out of range: 0 is centimeters, min value is 1, max value is 18446744073709551615",
		err.Error())
}

func TestMustNewCentimeters(t *testing.T) {
	t.Run("should return value for valid input", func(t *testing.T) {
		assert.Equal(t, uint(150), kernel.MustNewCentimeters(150).Value())
	})

	t.Run("should panic for zero", func(t *testing.T) {
		assert.Panics(t, func() { kernel.MustNewCentimeters(0) })
	})
}

func TestCentimeters_ZeroValue(t *testing.T) {
	var c kernel.Centimeters

	err := c.Validate()

	require.Error(t, err)
	assert.Equal(t, kernel.ErrCentimetersIsNotConstructed, err)
}

func TestCentimeters_Add(t *testing.T) {
	t.Run("should add regular values", func(t *testing.T) {
		sum := kernel.MustNewCentimeters(100).Add(kernel.MustNewCentimeters(50))

		require.NoError(t, sum.Validate())
		assert.Equal(t, uint(150), sum.Value())
	})

	t.Run("should saturate at the maximum", func(t *testing.T) {
		largest := kernel.MustNewCentimeters(kernel.MaxCentimeters)

		sum := largest.Add(largest)

		require.NoError(t, sum.Validate())
		assert.Equal(t, uint(math.MaxUint), sum.Value())
	})

	t.Run("should saturate when one step past the maximum", func(t *testing.T) {
		sum := kernel.MustNewCentimeters(kernel.MaxCentimeters).Add(kernel.MustNewCentimeters(1))

		assert.Equal(t, kernel.MaxCentimeters, sum.Value())
	})

	t.Run("should keep two unconstructed operands unconstructed", func(t *testing.T) {
		var a, b kernel.Centimeters

		require.Error(t, a.Add(b).Validate())
	})

	t.Run("should never wrap around", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a := rapid.UintMin(kernel.MinCentimeters).Draw(t, "a")
			b := rapid.UintMin(kernel.MinCentimeters).Draw(t, "b")

			sum := kernel.MustNewCentimeters(a).Add(kernel.MustNewCentimeters(b))

			if sum.Value() < a || sum.Value() < b {
				t.Fatalf("sum %d wrapped around for %d + %d", sum.Value(), a, b)
			}
			if a <= kernel.MaxCentimeters-b && sum.Value() != a+b {
				t.Fatalf("sum %d != %d + %d", sum.Value(), a, b)
			}
		})
	})

	t.Run("should be commutative", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a := kernel.MustNewCentimeters(rapid.UintMin(kernel.MinCentimeters).Draw(t, "a"))
			b := kernel.MustNewCentimeters(rapid.UintMin(kernel.MinCentimeters).Draw(t, "b"))

			if !a.Add(b).IsEqual(b.Add(a)) {
				t.Fatalf("%s + %s is not commutative", a, b)
			}
		})
	})
}

func TestCentimeters_Ordering(t *testing.T) {
	short := kernel.MustNewCentimeters(10)
	long := kernel.MustNewCentimeters(150)

	assert.Equal(t, -1, short.Compare(long))
	assert.Equal(t, 1, long.Compare(short))
	assert.Equal(t, 0, long.Compare(kernel.MustNewCentimeters(150)))

	assert.True(t, long.IsGreaterOrEqual(short))
	assert.True(t, long.IsGreaterOrEqual(kernel.MustNewCentimeters(150)))
	assert.False(t, short.IsGreaterOrEqual(long))

	assert.True(t, long.IsEqual(kernel.MustNewCentimeters(150)))
	assert.False(t, long.IsEqual(short))
}

func TestCentimeters_String(t *testing.T) {
	assert.Equal(t, "150cm", kernel.MustNewCentimeters(150).String())
}
