// Package ports defines the contracts between the routing core and its
// infrastructure: the rule store, the remote location-group service and the
// transaction boundary used by rule management.
package ports

import (
	"context"

	"routing/internal/core/domain/model/action"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
)

// ActionStore is the read-only query contract the action resolution engine
// consumes. Both lookups are exact-match and return at most one Action.
//
// Absence is reported as (nil, nil), never as an error; an error means the store
// could not answer.
type ActionStore interface {
	// FindByRouteAndLocationKey returns the Action keyed on (route, coordinate).
	FindByRouteAndLocationKey(ctx context.Context, r route.Route, coordinate kernel.Coordinate) (*action.Action, error)

	// FindByRouteAndLocationGroupName returns the Action keyed on (route, group name).
	FindByRouteAndLocationGroupName(ctx context.Context, r route.Route, groupName string) (*action.Action, error)
}
