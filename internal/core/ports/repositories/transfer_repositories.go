package repositories

import (
	"context"
	"time"

	"github.com/ledger-ar/company_transfers_app/internal/core/domain"
)

// TransferReader defines read operations for transfer data. All queries join
// the owning company and exclude soft-deleted transfers unless stated.
type TransferReader interface {
	// FindByID looks a transfer up by its tagged numeric-or-UUID identifier.
	FindByID(ctx context.Context, id domain.EntityID) (*domain.Transfer, error)

	// ListTransfers returns one page ordered by createdAt descending.
	ListTransfers(ctx context.Context, limit, offset int, includeDeleted bool) ([]domain.Transfer, error)

	// CountTransfers returns the total row count backing pagination metadata.
	CountTransfers(ctx context.Context, includeDeleted bool) (int64, error)

	// ListByCompany returns every transfer owned by the company, ordered by
	// transfer date descending.
	ListByCompany(ctx context.Context, companyID int64) ([]domain.Transfer, error)

	// FindCompanyUUIDsWithTransfersBetween returns the distinct UUIDs of
	// companies having at least one transfer dated in [from, to).
	FindCompanyUUIDsWithTransfersBetween(ctx context.Context, from, to time.Time) ([]string, error)

	// FindByDateRange returns transfers dated in [from, to], newest first.
	FindByDateRange(ctx context.Context, from, to time.Time) ([]domain.Transfer, error)

	// FindByStatus returns transfers in the given status, newest first.
	FindByStatus(ctx context.Context, status domain.TransferStatus) ([]domain.Transfer, error)
}

// TransferWriter defines write operations for transfer data.
type TransferWriter interface {
	// SaveTransfer inserts a new transfer inside the given unit of work and
	// returns the entity with its storage-assigned numeric id.
	SaveTransfer(ctx context.Context, uow UnitOfWork, transfer domain.Transfer) (*domain.Transfer, error)

	// UpdateStatus persists a status transition and its processed date.
	UpdateStatus(ctx context.Context, transfer domain.Transfer) error
}

// TransferRepositoryFacade combines all transfer repository interfaces.
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
}
