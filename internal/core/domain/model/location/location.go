package location

import (
	"errors"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/pkg/guard"
)

var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location is a single addressable position. It is read-only input to action
// resolution.
type Location struct {
	coordinate        kernel.Coordinate
	locationGroupName string
	guard             guard.ConstructorGuard
}

// NewLocation builds a Location. locationGroupName may be empty for a location
// that is not assigned to any group.
func NewLocation(coordinate kernel.Coordinate, locationGroupName string) (*Location, error) {
	if err := coordinate.Validate(); err != nil {
		return nil, err
	}
	return &Location{
		coordinate:        coordinate,
		locationGroupName: locationGroupName,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Coordinate returns the unique key of the location.
func (l *Location) Coordinate() kernel.Coordinate {
	return l.coordinate
}

// LocationGroupName returns the name of the group the location directly belongs to.
func (l *Location) LocationGroupName() string {
	return l.locationGroupName
}

func (l *Location) String() string {
	return l.coordinate.String()
}

func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}
