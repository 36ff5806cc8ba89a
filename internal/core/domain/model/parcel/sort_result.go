package parcel

import (
	"fmt"

	"sorting/internal/pkg/errs"
)

// SortResult is the handling category a package is sorted into.
//
// Decision table, see Parcel.Sort:
//
//	             | StandardMass | HeavyMass
//	-------------+--------------+----------
//	Standard dim | Standard     | Special
//	Bulky dim    | Special      | Rejected
type SortResult int

const (
	// Standard packages are neither bulky nor heavy.
	Standard SortResult = iota

	// Special packages are either bulky or heavy and need manual handling.
	Special

	// Rejected packages are both bulky and heavy.
	Rejected
)

func getSortResultStrings() map[SortResult]string {
	return map[SortResult]string{
		Standard: "standard",
		Special:  "special",
		Rejected: "rejected",
	}
}

// AllSortResults returns every declared result in declaration order.
func AllSortResults() []SortResult {
	return []SortResult{Standard, Special, Rejected}
}

// Validate checks that r is one of Standard, Special or Rejected.
func (r SortResult) Validate() error {
	if _, ok := getSortResultStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"sort result is invalid",
			fmt.Errorf("%d is not a valid sort result", r),
		)
	}
	return nil
}

// String returns the lowercase rendering: "standard", "special" or "rejected".
// Undeclared values render as "unknown".
//
// Example:
//
//	fmt.Println(parcel.Special) // Output: special
func (r SortResult) String() string {
	if str, ok := getSortResultStrings()[r]; ok {
		return str
	}
	return "unknown"
}
