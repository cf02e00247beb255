package action

import (
	"fmt"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/pkg/errs"
)

// TargetKind tells whether an Action applies to a Location or a LocationGroup.
type TargetKind int

const (
	// UnknownTarget is the zero value and is invalid.
	UnknownTarget TargetKind = iota
	LocationTarget
	LocationGroupTarget
)

func (k TargetKind) String() string {
	switch k {
	case LocationTarget:
		return "location"
	case LocationGroupTarget:
		return "location_group"
	default:
		return "unknown"
	}
}

// Target is the position an Action is keyed on.
type Target struct {
	kind              TargetKind
	locationKey       kernel.Coordinate
	locationGroupName string
}

// NewLocationTarget keys an Action on a single Location.
func NewLocationTarget(locationKey kernel.Coordinate) (Target, error) {
	if err := locationKey.Validate(); err != nil {
		return Target{}, err
	}
	return Target{kind: LocationTarget, locationKey: locationKey}, nil
}

// NewLocationGroupTarget keys an Action on a LocationGroup.
func NewLocationGroupTarget(locationGroupName string) (Target, error) {
	if locationGroupName == "" {
		return Target{}, errs.NewValueIsRequiredError("location group name")
	}
	return Target{kind: LocationGroupTarget, locationGroupName: locationGroupName}, nil
}

// NewTarget picks the target from two optional keys, exactly one of which must be set.
func NewTarget(locationKey, locationGroupName string) (Target, error) {
	switch {
	case locationKey != "" && locationGroupName != "":
		return Target{}, errs.NewValueIsInvalidErrorWithCause("target",
			fmt.Errorf("both location %q and location group %q given", locationKey, locationGroupName))
	case locationKey != "":
		key, err := kernel.NewCoordinate(locationKey)
		if err != nil {
			return Target{}, err
		}
		return NewLocationTarget(key)
	case locationGroupName != "":
		return NewLocationGroupTarget(locationGroupName)
	default:
		return Target{}, errs.NewValueIsRequiredError("location key or location group name")
	}
}

func (t Target) Kind() TargetKind {
	return t.kind
}

// LocationKey returns the coordinate and true for location targets.
func (t Target) LocationKey() (kernel.Coordinate, bool) {
	return t.locationKey, t.kind == LocationTarget
}

// LocationGroupName returns the group name and true for group targets.
func (t Target) LocationGroupName() (string, bool) {
	return t.locationGroupName, t.kind == LocationGroupTarget
}

// Key is the identifying value of the target regardless of its kind.
func (t Target) Key() string {
	if t.kind == LocationTarget {
		return t.locationKey.String()
	}
	return t.locationGroupName
}

func (t Target) String() string {
	return t.kind.String() + ":" + t.Key()
}

func (t Target) Validate() error {
	if t.kind == UnknownTarget {
		return errs.NewValueIsRequiredError("target")
	}
	return nil
}
