package queries

import (
	"errors"

	"routing/internal/core/domain/model/route"
	"routing/internal/pkg/guard"
)

var (
	ErrGetRouteActionsQueryIsNotConstructed = errors.New(
		"GetRouteActionsQuery must be created via NewGetRouteActionsQuery constructor",
	)
)

// GetRouteActionsQuery lists every rule configured for one route.
type GetRouteActionsQuery struct {
	route route.Route
	guard guard.ConstructorGuard
}

func NewGetRouteActionsQuery(routeID string) (GetRouteActionsQuery, error) {
	r, err := route.NewRoute(routeID)
	if err != nil {
		return GetRouteActionsQuery{}, err
	}
	return GetRouteActionsQuery{route: r, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRouteActionsQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteActionsQueryIsNotConstructed)
}

func (q GetRouteActionsQuery) Route() route.Route {
	return q.route
}
