package kernel

import (
	"strings"
	"unicode/utf8"

	"routing/internal/pkg/errs"
)

const (
	// CoordinateMinLength and CoordinateMaxLength bound the length of a location key.
	CoordinateMinLength = 1
	CoordinateMaxLength = 64
)

// ErrCoordinateIsNotConstructed is returned when validating a zero-value Coordinate.
var ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError("coordinate must be created via NewCoordinate")

// Coordinate is the unique key of a physical Location, e.g. "EXT_/0000/0000/0000/0000"
// or "L-01". It is compared exactly; no normalization besides rejecting
// surrounding whitespace is applied.
type Coordinate struct {
	value string
}

// NewCoordinate validates and wraps a location key.
func NewCoordinate(value string) (Coordinate, error) {
	if value == "" {
		return Coordinate{}, errs.NewValueIsRequiredError("coordinate")
	}
	if strings.TrimSpace(value) != value {
		return Coordinate{}, errs.NewValueIsInvalidError("coordinate has surrounding whitespace")
	}
	if n := utf8.RuneCountInString(value); n > CoordinateMaxLength {
		return Coordinate{}, errs.NewValueIsOutOfRangeError("coordinate length", n, CoordinateMinLength, CoordinateMaxLength)
	}
	return Coordinate{value: value}, nil
}

// MustNewCoordinate is NewCoordinate for literals known to be valid; it panics otherwise.
func MustNewCoordinate(value string) Coordinate {
	c, err := NewCoordinate(value)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Coordinate) String() string {
	return c.value
}

// IsEqual compares two coordinates exactly.
func (c Coordinate) IsEqual(other Coordinate) bool {
	return c.value == other.value
}

// Validate rejects the zero value.
func (c Coordinate) Validate() error {
	if c.value == "" {
		return ErrCoordinateIsNotConstructed
	}
	return nil
}
