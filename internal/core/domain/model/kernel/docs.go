// Package kernel provides the shared primitives of the sorting domain.
//
// The package includes:
//   - Centimeters: a positive length with saturating addition
//   - Kilograms: a positive mass
//   - RequestID: a UUID identifying one sort request
//
// Values are immutable and only obtainable through their constructors,
// so a constructed value always satisfies its invariants.
package kernel
