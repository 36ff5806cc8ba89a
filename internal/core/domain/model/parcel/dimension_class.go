package parcel

import (
	"fmt"

	"sorting/internal/pkg/errs"
)

// DimensionClass is the bulkiness category of a package, derived from the sum of its dimensions.
type DimensionClass int

const (
	// StandardDimensions means the dimensions sum to less than BulkySumThreshold.
	StandardDimensions DimensionClass = iota

	// BulkyDimensions means the dimensions sum to BulkySumThreshold or more.
	BulkyDimensions
)

func getDimensionClassStrings() map[DimensionClass]string {
	return map[DimensionClass]string{
		StandardDimensions: "standard",
		BulkyDimensions:    "bulky",
	}
}

// Validate checks that c is one of the declared classes.
func (c DimensionClass) Validate() error {
	if _, ok := getDimensionClassStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"dimension class is invalid",
			fmt.Errorf("%d is not a valid dimension class", c),
		)
	}
	return nil
}

// String returns "standard" or "bulky", and "unknown" for undeclared values.
func (c DimensionClass) String() string {
	if str, ok := getDimensionClassStrings()[c]; ok {
		return str
	}
	return "unknown"
}
