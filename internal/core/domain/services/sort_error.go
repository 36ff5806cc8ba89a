package services

import (
	"errors"
	"fmt"
)

// Field identifies which sorting input failed validation.
type Field int

const (
	FieldWidth Field = iota
	FieldHeight
	FieldLength
	FieldMass
)

var (
	// ErrInvalidWidth matches a SortError for the width input.
	ErrInvalidWidth = errors.New("invalid width")
	// ErrInvalidHeight matches a SortError for the height input.
	ErrInvalidHeight = errors.New("invalid height")
	// ErrInvalidLength matches a SortError for the length input.
	ErrInvalidLength = errors.New("invalid length")
	// ErrInvalidMass matches a SortError for the mass input.
	ErrInvalidMass = errors.New("invalid mass")
)

func getFieldStrings() map[Field]string {
	return map[Field]string{
		FieldWidth:  "width",
		FieldHeight: "height",
		FieldLength: "length",
		FieldMass:   "mass",
	}
}

func getFieldSentinels() map[Field]error {
	return map[Field]error{
		FieldWidth:  ErrInvalidWidth,
		FieldHeight: ErrInvalidHeight,
		FieldLength: ErrInvalidLength,
		FieldMass:   ErrInvalidMass,
	}
}

// String returns the lowercase field name, "unknown" for undeclared values.
func (f Field) String() string {
	if str, ok := getFieldStrings()[f]; ok {
		return str
	}
	return "unknown"
}

// SortError reports the first invalid input of a sort request together with the value
// that was supplied for it.
//
// errors.Is matches the field's sentinel (ErrInvalidWidth, ...). errors.As reaches the
// measurement error (*kernel.InvalidCentimetersError or *kernel.InvalidKilogramsError).
type SortError struct {
	Field Field
	Value uint
	Cause error
}

// NewSortError creates a SortError for field.
func NewSortError(field Field, value uint, cause error) *SortError {
	return &SortError{
		Field: field,
		Value: value,
		Cause: cause,
	}
}

// Error renders e.g. "Invalid width: expecting a value of 1 or more, but got 0".
func (e *SortError) Error() string {
	return fmt.Sprintf("Invalid %s: expecting a value of 1 or more, but got %d", e.Field, e.Value)
}

func (e *SortError) Is(target error) bool {
	sentinel, ok := getFieldSentinels()[e.Field]
	return ok && target == sentinel
}

func (e *SortError) Unwrap() error {
	return e.Cause
}
