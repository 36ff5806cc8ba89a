package parcel

import (
	"fmt"

	"sorting/internal/pkg/errs"
)

// MassClass is the heaviness category of a package.
type MassClass int

const (
	// StandardMass means the mass is below HeavyMassThreshold.
	StandardMass MassClass = iota

	// HeavyMass means the mass is HeavyMassThreshold or more.
	HeavyMass
)

func getMassClassStrings() map[MassClass]string {
	return map[MassClass]string{
		StandardMass: "standard",
		HeavyMass:    "heavy",
	}
}

// Validate checks that c is one of the declared classes.
func (c MassClass) Validate() error {
	if _, ok := getMassClassStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"mass class is invalid",
			fmt.Errorf("%d is not a valid mass class", c),
		)
	}
	return nil
}

// String returns "standard" or "heavy", and "unknown" for undeclared values.
func (c MassClass) String() string {
	if str, ok := getMassClassStrings()[c]; ok {
		return str
	}
	return "unknown"
}
