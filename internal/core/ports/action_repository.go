package ports

import (
	"context"

	"routing/internal/core/domain/model/action"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
)

// ActionRepository is the persistence contract for rule management. It extends
// the resolution queries with the write path.
type ActionRepository interface {
	ActionStore

	// Add persists a new Action.
	Add(ctx context.Context, aggregate *action.Action) error

	// Get returns the Action with the given id or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*action.Action, error)

	// Delete removes the Action with the given id or returns an errs.ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error

	// ListByRoute returns every Action of a route ordered by target.
	ListByRoute(ctx context.Context, r route.Route) ([]*action.Action, error)
}
