package queries

import (
	"context"

	"routing/internal/core/domain/model/action"
	"routing/internal/core/domain/model/location"
	"routing/internal/core/domain/model/route"
)

// ActionResolver is satisfied by services.ActionMatrix.
type ActionResolver interface {
	Resolve(
		ctx context.Context,
		actionType string,
		r route.Route,
		loc *location.Location,
		locationGroup *location.LocationGroup,
	) (*action.Action, error)
}

// ResolveActionQueryHandler runs the fallback resolution and returns the
// matched rule as a read model. Engine errors are returned unchanged.
type ResolveActionQueryHandler struct {
	resolver ActionResolver
}

func NewResolveActionQueryHandler(resolver ActionResolver) ResolveActionQueryHandler {
	return ResolveActionQueryHandler{resolver: resolver}
}

func (h ResolveActionQueryHandler) Handle(ctx context.Context, query ResolveActionQuery) (ActionResponse, error) {
	if err := query.Validate(); err != nil {
		return ActionResponse{}, err
	}

	a, err := h.resolver.Resolve(ctx, query.ActionType(), query.Route(), query.Location(), query.LocationGroup())
	if err != nil {
		return ActionResponse{}, err
	}

	return newActionResponse(a), nil
}
