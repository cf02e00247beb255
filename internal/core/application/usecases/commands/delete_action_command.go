package commands

import (
	"errors"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/pkg/guard"
)

var (
	ErrDeleteActionCommandIsNotConstructed = errors.New(
		"DeleteActionCommand must be created via NewDeleteActionCommand constructor",
	)
)

// DeleteActionCommand removes a rule by its identifier.
type DeleteActionCommand struct { //nolint:recvcheck //using for validation
	actionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteActionCommand(actionID kernel.UUID) (DeleteActionCommand, error) {
	if err := actionID.Validate(); err != nil {
		return DeleteActionCommand{}, err
	}

	return DeleteActionCommand{
		actionID: actionID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteActionCommand) Validate() error {
	return c.guard.Validate(ErrDeleteActionCommandIsNotConstructed)
}

func (c DeleteActionCommand) ActionID() kernel.UUID {
	return c.actionID
}
