// Package actionrepo persists Action rules in PostgreSQL. Rows are keyed by
// route plus exactly one of location_key or location_group_name. Both pairs
// carry a partial unique index, which also serves the resolution lookups.
package actionrepo

import (
	"time"

	"routing/internal/core/domain/model/action"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// ActionDTO is the row layout of the actions table.
type ActionDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID           string    `gorm:"not null;uniqueIndex:idx_actions_route_location,priority:1,where:location_key IS NOT NULL;uniqueIndex:idx_actions_route_group,priority:1,where:location_group_name IS NOT NULL"`
	LocationKey       *string   `gorm:"size:64;uniqueIndex:idx_actions_route_location,priority:2"`
	LocationGroupName *string   `gorm:"uniqueIndex:idx_actions_route_group,priority:2"`
	Name              string    `gorm:"not null"`
	ActionType        string    `gorm:"not null"`
	ProgramKey        string    `gorm:"not null"`
	Description       string
	CreatedAt         time.Time
}

func (ActionDTO) TableName() string {
	return "actions"
}

func fromDomain(a *action.Action) ActionDTO {
	dto := ActionDTO{
		ID:          a.ID().Bytes(),
		RouteID:     a.Route().ID(),
		Name:        a.Name(),
		ActionType:  a.ActionType(),
		ProgramKey:  a.ProgramKey(),
		Description: a.Description(),
	}

	if key, ok := a.Target().LocationKey(); ok {
		raw := key.String()
		dto.LocationKey = &raw
	}
	if name, ok := a.Target().LocationGroupName(); ok {
		dto.LocationGroupName = &name
	}

	return dto
}

func toDomain(dto ActionDTO) (*action.Action, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	r, err := route.NewRoute(dto.RouteID)
	if err != nil {
		return nil, err
	}

	target, err := action.NewTarget(deref(dto.LocationKey), deref(dto.LocationGroupName))
	if err != nil {
		return nil, err
	}

	return action.NewAction(id, r, target, action.Definition{
		Name:        dto.Name,
		ActionType:  dto.ActionType,
		ProgramKey:  dto.ProgramKey,
		Description: dto.Description,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
