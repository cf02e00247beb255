package queries

import (
	"errors"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/pkg/guard"
)

var (
	ErrFindConflictingActionsQueryIsNotConstructed = errors.New(
		"FindConflictingActionsQuery must be created via NewFindConflictingActionsQuery constructor",
	)
)

// FindConflictingActionsQuery lists (route, target) pairs that carry more than
// one Action. Resolution treats such pairs as a data-integrity fault.
type FindConflictingActionsQuery struct {
	guard guard.ConstructorGuard
}

func NewFindConflictingActionsQuery() FindConflictingActionsQuery {
	return FindConflictingActionsQuery{guard: guard.NewConstructorGuard()}
}

func (q FindConflictingActionsQuery) Validate() error {
	return q.guard.Validate(ErrFindConflictingActionsQueryIsNotConstructed)
}

// ActionConflict is one duplicated (route, target) pair. ActionIDs are ordered
// oldest first; the first one is what resolution returns.
type ActionConflict struct {
	RouteID           string
	LocationKey       string
	LocationGroupName string
	ActionIDs         []kernel.UUID
}
