package services

import (
	"sorting/internal/core/domain/model/kernel"
	"sorting/internal/core/domain/model/parcel"
)

// PackageSorter is a domain service that turns four raw measurements into a sort result.
//
// Business rules:
//   - Inputs are validated in the order width, height, length, mass
//   - The first invalid input is reported; later inputs are not looked at
//   - Once every input is valid, sorting cannot fail
//
// Example usage:
//
//	sorter := services.NewPackageSorter()
//	result, err := sorter.Sort(148, 1, 1, 20)
//	if err != nil {
//	    var sortErr *services.SortError
//	    if errors.As(err, &sortErr) {
//	        // sortErr.Field, sortErr.Value
//	    }
//	    return err
//	}
//	fmt.Println(result) // Output: rejected
type PackageSorter struct{}

// NewPackageSorter creates a new PackageSorter instance.
func NewPackageSorter() PackageSorter {
	return PackageSorter{}
}

// Sort validates the four inputs, builds a parcel.Parcel and returns its classification.
//
// Parameters:
//   - width, height, length: package dimensions, each must be 1 or more
//   - mass: package mass, must be 1 or more
//
// Returns:
//   - parcel.SortResult: Standard, Special or Rejected
//   - error: *SortError for the first invalid input
func (s PackageSorter) Sort(width, height, length, mass uint) (parcel.SortResult, error) {
	widthCm, err := centimeters(FieldWidth, width)
	if err != nil {
		return 0, err
	}

	heightCm, err := centimeters(FieldHeight, height)
	if err != nil {
		return 0, err
	}

	lengthCm, err := centimeters(FieldLength, length)
	if err != nil {
		return 0, err
	}

	massKg, err := kernel.NewKilograms(mass)
	if err != nil {
		return 0, NewSortError(FieldMass, mass, err)
	}

	p, err := s.compose(widthCm, heightCm, lengthCm, massKg)
	if err != nil {
		return 0, err
	}

	return p.Sort(), nil
}

// compose builds the aggregate. The measurements are constructed, so it only
// fails if the domain model changes its invariants.
func (s PackageSorter) compose(width, height, length kernel.Centimeters, kg kernel.Kilograms) (parcel.Parcel, error) {
	dimensions, err := parcel.NewDimensions(width, height, length)
	if err != nil {
		return parcel.Parcel{}, err
	}

	mass, err := parcel.NewMass(kg)
	if err != nil {
		return parcel.Parcel{}, err
	}

	return parcel.NewParcel(dimensions, mass)
}

func centimeters(field Field, value uint) (kernel.Centimeters, error) {
	c, err := kernel.NewCentimeters(value)
	if err != nil {
		return kernel.Centimeters{}, NewSortError(field, value, err)
	}
	return c, nil
}
