package queries

import (
	"errors"

	"routing/internal/core/domain/model/location"
	"routing/internal/core/domain/model/route"
	"routing/internal/pkg/guard"
)

var (
	ErrResolveActionQueryIsNotConstructed = errors.New(
		"ResolveActionQuery must be created via NewResolveActionQuery constructor",
	)
)

// ResolveActionQuery asks which Action a transport order on route performs at
// its current position. loc and locationGroup are both optional here; the
// resolution engine rejects a query carrying neither.
//
// Example:
//
//	query := NewResolveActionQuery("MOVE", r1, loc, zoneA)
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrNoRouteFound) {
//	    // no rule configured for this position
//	}
type ResolveActionQuery struct {
	actionType    string
	route         route.Route
	location      *location.Location
	locationGroup *location.LocationGroup

	guard guard.ConstructorGuard
}

func NewResolveActionQuery(
	actionType string,
	r route.Route,
	loc *location.Location,
	locationGroup *location.LocationGroup,
) ResolveActionQuery {
	return ResolveActionQuery{
		actionType:    actionType,
		route:         r,
		location:      loc,
		locationGroup: locationGroup,
		guard:         guard.NewConstructorGuard(),
	}
}

func (q ResolveActionQuery) Validate() error {
	return q.guard.Validate(ErrResolveActionQueryIsNotConstructed)
}

func (q ResolveActionQuery) ActionType() string {
	return q.actionType
}

func (q ResolveActionQuery) Route() route.Route {
	return q.route
}

func (q ResolveActionQuery) Location() *location.Location {
	return q.location
}

func (q ResolveActionQuery) LocationGroup() *location.LocationGroup {
	return q.locationGroup
}
