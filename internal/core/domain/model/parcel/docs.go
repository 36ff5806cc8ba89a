// Package parcel provides the Parcel aggregate root and its classification rules.
//
// The package includes:
//   - Dimensions: width, height and length of a package, classified as standard or bulky
//   - Mass: the weight of a package, classified as standard or heavy
//   - Parcel: the aggregate combining both classifications into a SortResult
//
// Key business rules:
//   - A package is bulky when width + height + length >= 150 (saturating sum)
//   - A package is heavy when its mass >= 20
//   - Bulky and heavy packages are rejected, bulky or heavy ones are special,
//     all others are standard
//
// Everything in this package is pure and immutable; values are safe for concurrent use.
package parcel
