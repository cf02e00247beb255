package commands

import (
	"context"
	"errors"
	"fmt"

	"routing/internal/core/domain/model/action"
	"routing/internal/core/ports"
	"routing/internal/pkg/errs"
)

// ErrActionAlreadyExists rejects a second Action for the same (route, target) pair.
var ErrActionAlreadyExists = errors.New("action already exists")

// CreateActionCommandHandler persists a new rule after checking that its
// (route, target) pair is still free. A concurrent create that slips past the
// check is rejected by the store's unique key and reported the same way.
type CreateActionCommandHandler struct {
	uowFactory ActionUoWFactory
}

func NewCreateActionCommandHandler(uowFactory ActionUoWFactory) CreateActionCommandHandler {
	return CreateActionCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateActionCommandHandler) Handle(ctx context.Context, cmd CreateActionCommand) error {
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

	repo := uow.ActionRepository()

	existing, err := findByTarget(ctx, repo, cmd)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: route %s, %s (action %s)",
			ErrActionAlreadyExists, cmd.Route(), cmd.Target(), existing.ID())
	}

	a, err := action.NewAction(cmd.ActionID(), cmd.Route(), cmd.Target(), cmd.Definition())
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, a); err != nil {
		if errors.Is(err, errs.ErrObjectExists) {
			return fmt.Errorf("%w: route %s, %s: %w", ErrActionAlreadyExists, cmd.Route(), cmd.Target(), err)
		}
		return err
	}

	return uow.Commit(ctx)
}

func findByTarget(ctx context.Context, repo ports.ActionStore, cmd CreateActionCommand) (*action.Action, error) {
	if key, ok := cmd.Target().LocationKey(); ok {
		return repo.FindByRouteAndLocationKey(ctx, cmd.Route(), key)
	}
	name, _ := cmd.Target().LocationGroupName()
	return repo.FindByRouteAndLocationGroupName(ctx, cmd.Route(), name)
}
