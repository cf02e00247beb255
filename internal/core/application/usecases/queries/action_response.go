// Package queries contains the read operations of the routing service:
// action resolution, rule listing and rule integrity checks.
package queries

import (
	"routing/internal/core/domain/model/action"
	"routing/internal/core/domain/model/kernel"
)

// ActionResponse is the read model of one Action. Exactly one of LocationKey
// and LocationGroupName is set.
type ActionResponse struct {
	ID                kernel.UUID
	RouteID           string
	LocationKey       string
	LocationGroupName string
	Name              string
	ActionType        string
	ProgramKey        string
	Description       string
}

func newActionResponse(a *action.Action) ActionResponse {
	resp := ActionResponse{
		ID:          a.ID(),
		RouteID:     a.Route().ID(),
		Name:        a.Name(),
		ActionType:  a.ActionType(),
		ProgramKey:  a.ProgramKey(),
		Description: a.Description(),
	}
	if key, ok := a.Target().LocationKey(); ok {
		resp.LocationKey = key.String()
	}
	if name, ok := a.Target().LocationGroupName(); ok {
		resp.LocationGroupName = name
	}
	return resp
}
