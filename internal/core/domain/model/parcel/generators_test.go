package parcel_test

import (
	"sorting/internal/core/domain/model/kernel"
	"sorting/internal/core/domain/model/parcel"

	"pgregory.net/rapid"
)

// standardDimensions draws dimensions whose sum is below the bulky threshold.
func standardDimensions() *rapid.Generator[parcel.Dimensions] {
	return rapid.Custom(func(t *rapid.T) parcel.Dimensions {
		limit := parcel.BulkySumThreshold
		width := rapid.UintRange(1, limit-3).Draw(t, "width")
		height := rapid.UintRange(1, limit-width-2).Draw(t, "height")
		length := rapid.UintRange(1, limit-width-height-1).Draw(t, "length")

		return mustDimensions(width, height, length)
	})
}

// bulkyDimensions draws dimensions whose saturating sum is at least the bulky threshold,
// including values close to the overflow boundary.
func bulkyDimensions() *rapid.Generator[parcel.Dimensions] {
	return rapid.Custom(func(t *rapid.T) parcel.Dimensions {
		width := rapid.UintMin(1).Draw(t, "width")
		height := rapid.UintMin(1).Draw(t, "height")

		minLength := uint(1)
		if width < parcel.BulkySumThreshold && height < parcel.BulkySumThreshold-width {
			minLength = parcel.BulkySumThreshold - width - height
		}
		length := rapid.UintMin(minLength).Draw(t, "length")

		return mustDimensions(width, height, length)
	})
}

func standardMass() *rapid.Generator[parcel.Mass] {
	return rapid.Custom(func(t *rapid.T) parcel.Mass {
		return mustMass(rapid.UintRange(1, parcel.HeavyMassThreshold-1).Draw(t, "mass"))
	})
}

func heavyMass() *rapid.Generator[parcel.Mass] {
	return rapid.Custom(func(t *rapid.T) parcel.Mass {
		return mustMass(rapid.UintMin(parcel.HeavyMassThreshold).Draw(t, "mass"))
	})
}

func mustDimensions(width, height, length uint) parcel.Dimensions {
	d, err := parcel.NewDimensions(
		kernel.MustNewCentimeters(width),
		kernel.MustNewCentimeters(height),
		kernel.MustNewCentimeters(length),
	)
	if err != nil {
		panic(err)
	}
	return d
}

func mustMass(value uint) parcel.Mass {
	m, err := parcel.NewMass(kernel.MustNewKilograms(value))
	if err != nil {
		panic(err)
	}
	return m
}

func mustParcel(d parcel.Dimensions, m parcel.Mass) parcel.Parcel {
	p, err := parcel.NewParcel(d, m)
	if err != nil {
		panic(err)
	}
	return p
}
