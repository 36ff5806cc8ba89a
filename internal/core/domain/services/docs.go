// Package services provides domain services that orchestrate the sorting domain.
//
// The package includes:
//   - PackageSorter: validates raw measurements and sorts the resulting parcel
//   - SortError: the attributable validation failure, one kind per input field
//
// Validation short-circuits: only the first invalid field is ever reported.
package services
