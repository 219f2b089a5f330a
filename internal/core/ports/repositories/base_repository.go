package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// UnitOfWork is a single database transaction created per write use case.
// Services pass it into repository calls and drive its lifecycle: Commit on
// success, Rollback on any error path. Rollback after a successful commit is
// a no-op, so `defer uow.Rollback(ctx)` is the guaranteed-release idiom.
type UnitOfWork interface {
	// Tx exposes the underlying transaction for repository methods.
	Tx() pgx.Tx

	// Commit makes the unit of work's writes durable.
	Commit(ctx context.Context) error

	// Rollback discards the unit of work. Safe to call after Commit.
	Rollback(ctx context.Context) error
}

// UnitOfWorkManager opens units of work against the shared connection pool.
type UnitOfWorkManager interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}
