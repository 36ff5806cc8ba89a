package kernel

import (
	"cmp"
	"fmt"
	"math"

	"sorting/internal/pkg/errs"
	"sorting/internal/pkg/guard"
)

const (
	// MinKilograms is the smallest valid mass.
	MinKilograms uint = 1
	// MaxKilograms is the largest representable mass.
	MaxKilograms uint = math.MaxUint
)

// ErrKilogramsIsNotConstructed is returned when a Kilograms value was not created via NewKilograms.
var ErrKilogramsIsNotConstructed = errs.NewValueIsRequiredError(
	"kilograms must be created via NewKilograms constructor")

// InvalidKilogramsError is returned by NewKilograms for a value below MinKilograms.
type InvalidKilogramsError struct {
	Value uint
}

func (e *InvalidKilogramsError) Error() string {
	return errs.NewValueIsOutOfRangeError("kilograms", e.Value, MinKilograms, MaxKilograms).Error()
}

func (e *InvalidKilogramsError) Unwrap() error {
	return errs.ErrValueIsOutOfRange
}

// OriginalValue returns the rejected input.
func (e *InvalidKilogramsError) OriginalValue() uint {
	return e.Value
}

// Kilograms is an immutable mass measurement. A constructed value is always >= MinKilograms.
// Masses are not summed anywhere in the domain, so there is no Add.
type Kilograms struct {
	value uint
	guard guard.ConstructorGuard
}

// NewKilograms validates value and wraps it as Kilograms.
// Returns *InvalidKilogramsError carrying value when it is below MinKilograms.
func NewKilograms(value uint) (Kilograms, error) {
	if value < MinKilograms {
		return Kilograms{}, &InvalidKilogramsError{Value: value}
	}

	return Kilograms{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MustNewKilograms is like NewKilograms but panics on an invalid value.
func MustNewKilograms(value uint) Kilograms {
	k, err := NewKilograms(value)
	if err != nil {
		panic(err)
	}
	return k
}

// Validate reports whether the value was created via NewKilograms.
func (k Kilograms) Validate() error {
	return k.guard.Validate(ErrKilogramsIsNotConstructed)
}

// Value returns the underlying mass.
func (k Kilograms) Value() uint {
	return k.value
}

// Compare returns -1, 0 or +1 depending on whether k is lighter than, equal to or heavier than other.
func (k Kilograms) Compare(other Kilograms) int {
	return cmp.Compare(k.value, other.value)
}

// IsEqual reports whether both masses have the same value.
func (k Kilograms) IsEqual(other Kilograms) bool {
	return k.value == other.value
}

// IsGreaterOrEqual reports whether k is at least as heavy as other.
func (k Kilograms) IsGreaterOrEqual(other Kilograms) bool {
	return k.Compare(other) >= 0
}

// String implements fmt.Stringer, e.g. "20kg".
func (k Kilograms) String() string {
	return fmt.Sprintf("%dkg", k.value)
}
