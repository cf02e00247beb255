package queries

import (
	"context"

	"routing/internal/core/domain/model/action"
	"routing/internal/core/domain/model/route"
)

// RouteActionLister is satisfied by every ports.ActionRepository.
type RouteActionLister interface {
	ListByRoute(ctx context.Context, r route.Route) ([]*action.Action, error)
}

// GetRouteActionsQueryHandler lists the rules of one route in the order the
// store returns them: location rules first, then group rules, each by key.
type GetRouteActionsQueryHandler struct {
	lister RouteActionLister
}

func NewGetRouteActionsQueryHandler(lister RouteActionLister) GetRouteActionsQueryHandler {
	return GetRouteActionsQueryHandler{lister: lister}
}

func (h GetRouteActionsQueryHandler) Handle(
	ctx context.Context,
	query GetRouteActionsQuery,
) ([]ActionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.lister.ListByRoute(ctx, query.Route())
	if err != nil {
		return nil, err
	}

	actions := make([]ActionResponse, 0, len(found))
	for _, a := range found {
		actions = append(actions, newActionResponse(a))
	}

	return actions, nil
}
