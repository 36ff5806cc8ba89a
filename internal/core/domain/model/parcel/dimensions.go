package parcel

import (
	"errors"
	"fmt"

	"sorting/internal/core/domain/model/kernel"
	"sorting/internal/pkg/guard"
)

// BulkySumThreshold is the sum of width, height and length from which a package is bulky.
const BulkySumThreshold uint = 150

var bulkySumThreshold = kernel.MustNewCentimeters(BulkySumThreshold)

// ErrDimensionsIsNotConstructed is returned when Dimensions were not created via NewDimensions.
var ErrDimensionsIsNotConstructed = errors.New("Dimensions must be created via NewDimensions constructor")

// Dimensions holds the three lengths of a package. It is an immutable value object.
type Dimensions struct { //nolint:recvcheck //using for validation
	width  kernel.Centimeters
	height kernel.Centimeters
	length kernel.Centimeters

	guard guard.ConstructorGuard
}

// NewDimensions creates Dimensions from three already validated lengths.
// It only fails when one of the lengths is a zero value that skipped kernel.NewCentimeters.
//
// Example:
//
//	d, err := parcel.NewDimensions(
//	    kernel.MustNewCentimeters(148),
//	    kernel.MustNewCentimeters(1),
//	    kernel.MustNewCentimeters(1),
//	)
//	d.Classify() // BulkyDimensions
func NewDimensions(width, height, length kernel.Centimeters) (Dimensions, error) {
	d := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setWidth(width),
		d.setHeight(height),
		d.setLength(length),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

// Validate ensures the Dimensions were created through NewDimensions.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsIsNotConstructed)
}

// Width returns the width of the package.
func (d Dimensions) Width() kernel.Centimeters {
	return d.width
}

// Height returns the height of the package.
func (d Dimensions) Height() kernel.Centimeters {
	return d.height
}

// Length returns the length of the package.
func (d Dimensions) Length() kernel.Centimeters {
	return d.length
}

// Sum returns width + height + length, saturating at kernel.MaxCentimeters.
func (d Dimensions) Sum() kernel.Centimeters {
	return d.width.Add(d.height).Add(d.length)
}

// Classify returns BulkyDimensions when Sum is at least BulkySumThreshold
// (exactly 150 is bulky) and StandardDimensions otherwise.
func (d Dimensions) Classify() DimensionClass {
	if d.Sum().IsGreaterOrEqual(bulkySumThreshold) {
		return BulkyDimensions
	}
	return StandardDimensions
}

// String implements fmt.Stringer, e.g. "148cm x 1cm x 1cm".
func (d Dimensions) String() string {
	return fmt.Sprintf("%s x %s x %s", d.width, d.height, d.length)
}

func (d *Dimensions) setWidth(width kernel.Centimeters) error {
	if err := width.Validate(); err != nil {
		return fmt.Errorf("width: %w", err)
	}

	d.width = width
	return nil
}

func (d *Dimensions) setHeight(height kernel.Centimeters) error {
	if err := height.Validate(); err != nil {
		return fmt.Errorf("height: %w", err)
	}

	d.height = height
	return nil
}

func (d *Dimensions) setLength(length kernel.Centimeters) error {
	if err := length.Validate(); err != nil {
		return fmt.Errorf("length: %w", err)
	}

	d.length = length
	return nil
}
