package kernel

import (
	"cmp"
	"fmt"
	"math"
	"math/bits"

	"sorting/internal/pkg/errs"
	"sorting/internal/pkg/guard"
)

const (
	// MinCentimeters is the smallest valid length.
	MinCentimeters uint = 1
	// MaxCentimeters is the largest representable length. Sums clamp to it.
	MaxCentimeters uint = math.MaxUint
)

// ErrCentimetersIsNotConstructed is returned when a Centimeters value was not created via NewCentimeters.
var ErrCentimetersIsNotConstructed = errs.NewValueIsRequiredError(
	"centimeters must be created via NewCentimeters constructor")

// InvalidCentimetersError is returned by NewCentimeters for a value below MinCentimeters.
// It keeps the rejected input so callers can attribute the failure to a field.
type InvalidCentimetersError struct {
	Value uint
}

func (e *InvalidCentimetersError) Error() string {
	return errs.NewValueIsOutOfRangeError("centimeters", e.Value, MinCentimeters, MaxCentimeters).Error()
}

func (e *InvalidCentimetersError) Unwrap() error {
	return errs.ErrValueIsOutOfRange
}

// OriginalValue returns the rejected input.
func (e *InvalidCentimetersError) OriginalValue() uint {
	return e.Value
}

// Centimeters is an immutable length measurement. A constructed value is always >= MinCentimeters.
// Centimeters and Kilograms are distinct types, so a length can never
// be added to or compared with a mass.
//
// Example:
//
//	width, err := kernel.NewCentimeters(40)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(width) // Output: 40cm
type Centimeters struct {
	value uint
	guard guard.ConstructorGuard
}

// NewCentimeters validates value and wraps it as Centimeters.
//
// Returns:
//   - Centimeters: the measurement when value >= MinCentimeters
//   - error: *InvalidCentimetersError carrying value otherwise
func NewCentimeters(value uint) (Centimeters, error) {
	if value < MinCentimeters {
		return Centimeters{}, &InvalidCentimetersError{Value: value}
	}

	return Centimeters{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MustNewCentimeters is like NewCentimeters but panics on an invalid value.
// It is meant for package level thresholds.
func MustNewCentimeters(value uint) Centimeters {
	c, err := NewCentimeters(value)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate reports whether the value was created via NewCentimeters.
func (c Centimeters) Validate() error {
	return c.guard.Validate(ErrCentimetersIsNotConstructed)
}

// Value returns the underlying length.
func (c Centimeters) Value() uint {
	return c.value
}

// Add returns the sum of both lengths, clamped at MaxCentimeters instead of overflowing.
// The sum of two valid lengths is always valid, so Add cannot fail.
//
// Example:
//
//	a := kernel.MustNewCentimeters(kernel.MaxCentimeters)
//	b := kernel.MustNewCentimeters(1)
//	a.Add(b).Value() == kernel.MaxCentimeters // true
func (c Centimeters) Add(other Centimeters) Centimeters {
	sum, carry := bits.Add(c.value, other.value, 0)
	if carry != 0 {
		sum = MaxCentimeters
	}

	// two unconstructed operands stay unconstructed
	if sum < MinCentimeters {
		return Centimeters{}
	}

	return Centimeters{
		value: sum,
		guard: guard.NewConstructorGuard(),
	}
}

// Compare returns -1, 0 or +1 depending on whether c is shorter than, equal to or longer than other.
func (c Centimeters) Compare(other Centimeters) int {
	return cmp.Compare(c.value, other.value)
}

// IsEqual reports whether both lengths have the same value.
func (c Centimeters) IsEqual(other Centimeters) bool {
	return c.value == other.value
}

// IsGreaterOrEqual reports whether c is at least as long as other.
func (c Centimeters) IsGreaterOrEqual(other Centimeters) bool {
	return c.Compare(other) >= 0
}

// String implements fmt.Stringer, e.g. "150cm".
func (c Centimeters) String() string {
	return fmt.Sprintf("%dcm", c.value)
}
