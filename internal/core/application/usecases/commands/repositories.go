// Package commands contains the rule management operations that modify the
// Action store. Every command is validated on construction and executed by its
// handler inside one unit of work.
package commands

import (
	"context"

	"routing/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ActionRepoFactory provides access to the action repository within a transaction.
	ActionRepoFactory interface {
		ActionRepository() ports.ActionRepository
	}

	// ActionUoW manages transactions for rule management.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.ActionRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ActionUoW interface {
		TxManager
		ActionRepoFactory
	}

	// ActionUoWFactory creates new action unit of work instances.
	ActionUoWFactory interface {
		Create() ActionUoW
	}
)
