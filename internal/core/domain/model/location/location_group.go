package location

import (
	"errors"

	"routing/internal/pkg/errs"
	"routing/internal/pkg/guard"
)

var ErrLocationGroupIsNotConstructed = errors.New(
	"LocationGroup must be created via NewRootLocationGroup or NewLocationGroup constructor",
)

// LocationGroup is a node of the location tree. The parent is not embedded; it
// is only reachable by following the parent link.
type LocationGroup struct {
	name   string
	parent *Link
	guard  guard.ConstructorGuard
}

// NewRootLocationGroup builds a group without a parent link.
func NewRootLocationGroup(name string) (*LocationGroup, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("location group name")
	}
	return &LocationGroup{name: name, guard: guard.NewConstructorGuard()}, nil
}

// NewLocationGroup builds a group whose parent is referenced by parent.
func NewLocationGroup(name string, parent Link) (*LocationGroup, error) {
	if err := parent.Validate(); err != nil {
		return nil, err
	}
	group, err := NewRootLocationGroup(name)
	if err != nil {
		return nil, err
	}
	group.parent = &parent
	return group, nil
}

// Name returns the unique name of the group within its tree.
func (g *LocationGroup) Name() string {
	return g.name
}

// Parent returns the parent link, or false when the group is a root.
func (g *LocationGroup) Parent() (Link, bool) {
	if g.parent == nil {
		return Link{}, false
	}
	return *g.parent, true
}

// IsRoot reports whether the group has no parent link.
func (g *LocationGroup) IsRoot() bool {
	return g.parent == nil
}

func (g *LocationGroup) String() string {
	return g.name
}

func (g *LocationGroup) Validate() error {
	if g == nil {
		return ErrLocationGroupIsNotConstructed
	}
	return g.guard.Validate(ErrLocationGroupIsNotConstructed)
}
