package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledger-ar/company_transfers_app/internal/apperrors"
	portsrepo "github.com/ledger-ar/company_transfers_app/internal/core/ports/repositories"
)

// querier is the subset of pgxpool.Pool and pgx.Tx the repositories use, so
// read methods can run either on the pool or inside a unit of work.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgxUnitOfWork wraps a single pgx transaction.
type pgxUnitOfWork struct {
	tx pgx.Tx
}

func (u *pgxUnitOfWork) Tx() pgx.Tx {
	return u.tx
}

func (u *pgxUnitOfWork) Commit(ctx context.Context) error {
	if err := u.tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(apperrors.CodeInternalFailure, "failed to commit transaction", err)
	}
	return nil
}

// Rollback discards the transaction. Rolling back an already committed
// transaction is a no-op so callers can defer it unconditionally.
func (u *pgxUnitOfWork) Rollback(ctx context.Context) error {
	if err := u.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(apperrors.CodeInternalFailure, "failed to rollback transaction", err)
	}
	return nil
}

// PgxUnitOfWorkManager opens units of work against the shared pool.
type PgxUnitOfWorkManager struct {
	pool *pgxpool.Pool
}

// NewPgxUnitOfWorkManager creates a unit of work manager backed by the pool.
func NewPgxUnitOfWorkManager(pool *pgxpool.Pool) portsrepo.UnitOfWorkManager {
	return &PgxUnitOfWorkManager{pool: pool}
}

var _ portsrepo.UnitOfWorkManager = (*PgxUnitOfWorkManager)(nil)

func (m *PgxUnitOfWorkManager) Begin(ctx context.Context) (portsrepo.UnitOfWork, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.CodeInternalFailure, "failed to begin transaction", err)
	}
	return &pgxUnitOfWork{tx: tx}, nil
}

// querierFor resolves to the unit of work's transaction when one is given,
// falling back to the pool otherwise.
func querierFor(db querier, uow portsrepo.UnitOfWork) querier {
	if uow != nil && uow.Tx() != nil {
		return uow.Tx()
	}
	return db
}

// isUniqueViolation reports whether err is a unique index violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation reports whether err is a foreign key violation.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
