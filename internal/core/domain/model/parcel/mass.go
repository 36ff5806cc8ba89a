package parcel

import (
	"errors"
	"fmt"

	"sorting/internal/core/domain/model/kernel"
	"sorting/internal/pkg/guard"
)

// HeavyMassThreshold is the mass from which a package is heavy.
const HeavyMassThreshold uint = 20

var heavyMassThreshold = kernel.MustNewKilograms(HeavyMassThreshold)

// ErrMassIsNotConstructed is returned when a Mass was not created via NewMass.
var ErrMassIsNotConstructed = errors.New("Mass must be created via NewMass constructor")

// Mass is the weight of a package.
type Mass struct {
	kilograms kernel.Kilograms
	guard     guard.ConstructorGuard
}

// NewMass wraps an already validated weight.
func NewMass(kilograms kernel.Kilograms) (Mass, error) {
	if err := kilograms.Validate(); err != nil {
		return Mass{}, fmt.Errorf("mass: %w", err)
	}

	return Mass{
		kilograms: kilograms,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Mass was created through NewMass.
func (m Mass) Validate() error {
	return m.guard.Validate(ErrMassIsNotConstructed)
}

// Kilograms returns the weight.
func (m Mass) Kilograms() kernel.Kilograms {
	return m.kilograms
}

// Classify returns HeavyMass from HeavyMassThreshold on (exactly 20 is heavy)
// and StandardMass below it.
func (m Mass) Classify() MassClass {
	if m.kilograms.IsGreaterOrEqual(heavyMassThreshold) {
		return HeavyMass
	}
	return StandardMass
}

func (m Mass) String() string {
	return m.kilograms.String()
}
