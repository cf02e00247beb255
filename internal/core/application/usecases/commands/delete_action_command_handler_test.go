package commands_test

import (
	"errors"
	"testing"

	"routing/internal/core/application/usecases/commands"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteActionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteActionCommand(id)
	require.NoError(t, err)

	repo := new(MockActionRepository)
	uow := new(MockActionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ActionRepository").Return(repo).Once(),
		repo.On("Delete", ctx, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockActionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteActionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteActionCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteActionCommand(id)
	require.NoError(t, err)

	repo := new(MockActionRepository)
	uow := new(MockActionUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ActionRepository").Return(repo).Once()
	repo.On("Delete", ctx, id).Return(errs.NewObjectNotFoundError("action", id.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockActionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteActionCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeleteActionCommandHandler_Handle_Errors(t *testing.T) {
	t.Run("not constructed", func(t *testing.T) {
		factory := new(MockActionUoWFactory)
		h := commands.NewDeleteActionCommandHandler(factory)

		err := h.Handle(t.Context(), commands.DeleteActionCommand{})

		require.ErrorIs(t, err, commands.ErrDeleteActionCommandIsNotConstructed)
	})

	t.Run("begin fails", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewDeleteActionCommand(kernel.NewUUID())
		uow := new(MockActionUoW)
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once()
		factory := new(MockActionUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteActionCommandHandler(factory)

		require.EqualError(t, h.Handle(ctx, cmd), "begin error")
	})
}
