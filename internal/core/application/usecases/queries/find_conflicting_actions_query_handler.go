package queries

import (
	"context"
	"strings"

	"routing/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type conflictRow struct {
	RouteID           string  `gorm:"column:route_id"`
	LocationKey       *string `gorm:"column:location_key"`
	LocationGroupName *string `gorm:"column:location_group_name"`
	ActionIDs         string  `gorm:"column:action_ids"`
}

// FindConflictingActionsQueryHandler groups the actions table by (route, target).
type FindConflictingActionsQueryHandler struct {
	db *gorm.DB
}

func NewFindConflictingActionsQueryHandler(db *gorm.DB) FindConflictingActionsQueryHandler {
	return FindConflictingActionsQueryHandler{db: db}
}

func (h FindConflictingActionsQueryHandler) Handle(
	ctx context.Context,
	query FindConflictingActionsQuery,
) ([]ActionConflict, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []conflictRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			route_id,
			location_key,
			location_group_name,
			string_agg(id::text, ',' ORDER BY created_at, id) AS action_ids
		FROM actions
		GROUP BY route_id, location_key, location_group_name
		HAVING count(*) > 1
		ORDER BY route_id, location_key NULLS LAST, location_group_name
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	conflicts := make([]ActionConflict, 0, len(rows))
	for _, row := range rows {
		conflict := ActionConflict{RouteID: row.RouteID}
		if row.LocationKey != nil {
			conflict.LocationKey = *row.LocationKey
		}
		if row.LocationGroupName != nil {
			conflict.LocationGroupName = *row.LocationGroupName
		}
		for _, raw := range strings.Split(row.ActionIDs, ",") {
			id, err := kernel.UUIDFromString(raw)
			if err != nil {
				return nil, err
			}
			conflict.ActionIDs = append(conflict.ActionIDs, id)
		}
		conflicts = append(conflicts, conflict)
	}

	return conflicts, nil
}
