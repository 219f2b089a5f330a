package repositories

import (
	"context"
	"time"

	"github.com/ledger-ar/company_transfers_app/internal/core/domain"
)

// CompanyReader defines read operations for company data. Unless a method
// says otherwise, soft-deleted rows are excluded.
type CompanyReader interface {
	// FindByID looks a company up by its tagged numeric-or-UUID identifier.
	FindByID(ctx context.Context, id domain.EntityID) (*domain.Company, error)

	// FindByCUIT retrieves a non-deleted company by canonical CUIT.
	// When uow is non-nil the lookup runs inside that unit of work so a
	// create use case sees its own transactional view.
	FindByCUIT(ctx context.Context, uow UnitOfWork, cuit string) (*domain.Company, error)

	// ListCompanies returns one page ordered by createdAt descending.
	// includeDeleted widens the query to soft-deleted rows; every caller in
	// the API paths passes false.
	ListCompanies(ctx context.Context, limit, offset int, includeDeleted bool) ([]domain.Company, error)

	// CountCompanies returns the total row count backing pagination metadata.
	CountCompanies(ctx context.Context, includeDeleted bool) (int64, error)

	// FindAdheringBetween returns active companies whose adhesion date falls
	// in [from, to), ordered by adhesion date descending.
	FindAdheringBetween(ctx context.Context, from, to time.Time) ([]domain.Company, error)

	// FindByEntityIDs batch-fetches companies matching any of the numeric ids
	// or UUIDs (unioned membership test).
	FindByEntityIDs(ctx context.Context, numericIDs []int64, uuids []string) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company data.
type CompanyWriter interface {
	// SaveCompany inserts a new company inside the given unit of work and
	// returns the entity with its storage-assigned numeric id.
	SaveCompany(ctx context.Context, uow UnitOfWork, company domain.Company) (*domain.Company, error)

	// SoftDeleteCompany stamps deleted_at on a non-deleted company and marks
	// it inactive. Existing transfers keep their foreign key untouched.
	SoftDeleteCompany(ctx context.Context, id domain.EntityID, now time.Time) error
}

// CompanyRepositoryFacade combines all company repository interfaces.
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
