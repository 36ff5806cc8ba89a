package parcel

import (
	"errors"
	"fmt"

	"sorting/internal/pkg/guard"
)

// ErrParcelIsNotConstructed is returned when a Parcel was not created via NewParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// decisionTable maps (bulkiness, heaviness) to the sort result.
// Keys are the class constants, so a new class needs a new row or column here.
var decisionTable = [2][2]SortResult{
	StandardDimensions: {
		StandardMass: Standard,
		HeavyMass:    Special,
	},
	BulkyDimensions: {
		StandardMass: Special,
		HeavyMass:    Rejected,
	},
}

// Parcel is the aggregate root of the sorting domain: one set of dimensions and one mass.
// It is built once per classification request and never mutated.
//
// Invariants:
//   - Dimensions and Mass were created through their constructors
//   - Sort is pure: calling it twice yields the same result
type Parcel struct {
	dimensions Dimensions
	mass       Mass

	guard guard.ConstructorGuard
}

// NewParcel creates a Parcel from validated dimensions and mass.
//
// Parameters:
//   - dimensions: the package's width, height and length
//   - mass: the package's weight
//
// Returns:
//   - Parcel: the aggregate, ready to be sorted
//   - error: if dimensions or mass are zero values
//
// Example:
//
//	p, err := parcel.NewParcel(dimensions, mass)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.Sort()) // Output: special
func NewParcel(dimensions Dimensions, mass Mass) (Parcel, error) {
	if err := errors.Join(dimensions.Validate(), mass.Validate()); err != nil {
		return Parcel{}, fmt.Errorf("parcel: %w", err)
	}

	return Parcel{
		dimensions: dimensions,
		mass:       mass,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Parcel was created through NewParcel.
func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// Dimensions returns the parcel's dimensions.
func (p Parcel) Dimensions() Dimensions {
	return p.dimensions
}

// Mass returns the parcel's mass.
func (p Parcel) Mass() Mass {
	return p.mass
}

// Sort classifies both axes and combines them through the decision table.
//
//	Bulky    + Heavy    -> Rejected
//	Bulky    + Standard -> Special
//	Standard + Heavy    -> Special
//	Standard + Standard -> Standard
func (p Parcel) Sort() SortResult {
	return decisionTable[p.dimensions.Classify()][p.mass.Classify()]
}
