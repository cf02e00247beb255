package commands

import (
	"context"
)

// DeleteActionCommandHandler removes a rule. A missing rule is reported as
// errs.ObjectNotFoundError by the repository.
type DeleteActionCommandHandler struct {
	uowFactory ActionUoWFactory
}

func NewDeleteActionCommandHandler(uowFactory ActionUoWFactory) DeleteActionCommandHandler {
	return DeleteActionCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteActionCommandHandler) Handle(ctx context.Context, cmd DeleteActionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ActionRepository().Delete(ctx, cmd.ActionID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
