// Package route holds the Route value object: the directed path a transport
// order follows through the warehouse.
package route

import (
	"errors"
	"strings"

	"routing/internal/pkg/errs"
	"routing/internal/pkg/guard"
)

var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

// Route identifies a path by its stable routeId. It is immutable.
type Route struct {
	id    string
	guard guard.ConstructorGuard
}

// NewRoute validates the routeId. Surrounding whitespace is rejected instead of
// trimmed because the id is used verbatim as a store key.
func NewRoute(routeID string) (Route, error) {
	if routeID == "" {
		return Route{}, errs.NewValueIsRequiredError("routeId")
	}
	if strings.TrimSpace(routeID) != routeID {
		return Route{}, errs.NewValueIsInvalidError("routeId has surrounding whitespace")
	}
	return Route{id: routeID, guard: guard.NewConstructorGuard()}, nil
}

// ID returns the routeId.
func (r Route) ID() string {
	return r.id
}

func (r Route) String() string {
	return r.id
}

// IsEqual compares routes by routeId.
func (r Route) IsEqual(other Route) bool {
	return r.id == other.id
}

// Validate reports a Route that was not built by NewRoute.
func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}
