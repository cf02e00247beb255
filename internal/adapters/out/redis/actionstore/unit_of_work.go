package actionstore

import (
	"context"
	"errors"

	"routing/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

var ErrNoActiveUnit = errors.New("no active unit of work")

// UnitOfWorkFactory hands rule management the Redis store behind the same
// transaction boundary the Postgres store offers.
type UnitOfWorkFactory struct {
	store *RedisActionStore
}

func NewUnitOfWorkFactory(client redis.UniversalClient) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: NewRedisActionStore(client)}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork only tracks whether a unit is open. Writes are not deferred to
// Commit and are not undone by Rollback; Add on an already taken pair fails
// atomically instead.
type UnitOfWork struct {
	store  *RedisActionStore
	active bool
}

func (uow *UnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	return nil
}

// Commit returns ErrNoActiveUnit when Begin was not called.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveUnit
	}
	uow.active = false
	return nil
}

// Rollback returns ErrNoActiveUnit after Commit, like the Postgres unit.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveUnit
	}
	uow.active = false
	return nil
}

func (uow *UnitOfWork) ActionRepository() ports.ActionRepository {
	return uow.store
}
