package http

import (
	"context"
	"log/slog"
	"net/http"

	"routing/internal/core/application/usecases/commands"
	"routing/internal/core/application/usecases/queries"
	"routing/internal/core/domain/model/action"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/location"
	"routing/internal/core/domain/model/route"
	"routing/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	ResolveActionHandler interface {
		Handle(ctx context.Context, query queries.ResolveActionQuery) (queries.ActionResponse, error)
	}

	GetRouteActionsHandler interface {
		Handle(ctx context.Context, query queries.GetRouteActionsQuery) ([]queries.ActionResponse, error)
	}

	CreateActionHandler interface {
		Handle(ctx context.Context, cmd commands.CreateActionCommand) error
	}

	DeleteActionHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteActionCommand) error
	}
)

// Server implements servers.ServerInterface on top of the routing use cases.
type Server struct {
	resolveActionHandler   ResolveActionHandler
	getRouteActionsHandler GetRouteActionsHandler
	createActionHandler    CreateActionHandler
	deleteActionHandler    DeleteActionHandler

	logger *slog.Logger
}

func NewServer(
	resolveActionHandler ResolveActionHandler,
	getRouteActionsHandler GetRouteActionsHandler,
	createActionHandler CreateActionHandler,
	deleteActionHandler DeleteActionHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		resolveActionHandler:   resolveActionHandler,
		getRouteActionsHandler: getRouteActionsHandler,
		createActionHandler:    createActionHandler,
		deleteActionHandler:    deleteActionHandler,
		logger:                 logger.With("component", "http"),
	}
}

// ResolveAction handles POST /api/v1/actions/resolve.
func (s *Server) ResolveAction(ctx echo.Context) error {
	var req servers.ResolveRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	query, err := newResolveActionQuery(req)
	if err != nil {
		return s.badRequest(ctx, "Invalid resolution request: "+err.Error())
	}

	resp, err := s.resolveActionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIAction(resp))
}

// GetRouteActions handles GET /api/v1/routes/{routeId}/actions.
func (s *Server) GetRouteActions(ctx echo.Context, routeID string) error {
	query, err := queries.NewGetRouteActionsQuery(routeID)
	if err != nil {
		return s.badRequest(ctx, "Invalid route: "+err.Error())
	}

	actions, err := s.getRouteActionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Action, len(actions))
	for i, a := range actions {
		response[i] = toAPIAction(a)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateAction handles POST /api/v1/actions.
func (s *Server) CreateAction(ctx echo.Context) error {
	var req servers.NewAction
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateActionCommand(
		kernel.NewUUID(),
		req.RouteId,
		deref(req.LocationKey),
		deref(req.LocationGroupName),
		action.Definition{
			Name:        req.Name,
			ActionType:  req.ActionType,
			ProgramKey:  req.ProgramKey,
			Description: deref(req.Description),
		},
	)
	if err != nil {
		return s.badRequest(ctx, "Invalid action data: "+err.Error())
	}

	if err = s.createActionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	resp := queries.ActionResponse{
		ID:          cmd.ActionID(),
		RouteID:     cmd.Route().ID(),
		Name:        cmd.Definition().Name,
		ActionType:  cmd.Definition().ActionType,
		ProgramKey:  cmd.Definition().ProgramKey,
		Description: cmd.Definition().Description,
	}
	if key, ok := cmd.Target().LocationKey(); ok {
		resp.LocationKey = key.String()
	}
	if name, ok := cmd.Target().LocationGroupName(); ok {
		resp.LocationGroupName = name
	}

	return ctx.JSON(http.StatusCreated, toAPIAction(resp))
}

// DeleteAction handles DELETE /api/v1/actions/{actionId}.
func (s *Server) DeleteAction(ctx echo.Context, actionID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(actionID[:])
	if err != nil {
		return s.badRequest(ctx, "Invalid action ID: "+err.Error())
	}

	cmd, err := commands.NewDeleteActionCommand(id)
	if err != nil {
		return s.badRequest(ctx, "Invalid action ID: "+err.Error())
	}

	if err = s.deleteActionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func newResolveActionQuery(req servers.ResolveRequest) (queries.ResolveActionQuery, error) {
	r, err := route.NewRoute(req.RouteId)
	if err != nil {
		return queries.ResolveActionQuery{}, err
	}

	var loc *location.Location
	if req.Location != nil {
		coordinate, err := kernel.NewCoordinate(req.Location.Coordinate)
		if err != nil {
			return queries.ResolveActionQuery{}, err
		}
		loc, err = location.NewLocation(coordinate, deref(req.Location.LocationGroupName))
		if err != nil {
			return queries.ResolveActionQuery{}, err
		}
	}

	var group *location.LocationGroup
	if req.LocationGroup != nil {
		if href := deref(req.LocationGroup.ParentHref); href != "" {
			parent, err := location.NewParentLink(href)
			if err != nil {
				return queries.ResolveActionQuery{}, err
			}
			group, err = location.NewLocationGroup(req.LocationGroup.Name, parent)
			if err != nil {
				return queries.ResolveActionQuery{}, err
			}
		} else {
			group, err = location.NewRootLocationGroup(req.LocationGroup.Name)
			if err != nil {
				return queries.ResolveActionQuery{}, err
			}
		}
	}

	return queries.NewResolveActionQuery(req.ActionType, r, loc, group), nil
}

func toAPIAction(a queries.ActionResponse) servers.Action {
	return servers.Action{
		Id:                a.ID.Bytes(),
		RouteId:           a.RouteID,
		LocationKey:       optional(a.LocationKey),
		LocationGroupName: optional(a.LocationGroupName),
		Name:              a.Name,
		ActionType:        a.ActionType,
		ProgramKey:        a.ProgramKey,
		Description:       optional(a.Description),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
