package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/ledger-ar/company_transfers_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	companyRepo := newPgxCompanyRepository(dbPool)
	transferRepo := newPgxTransferRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CompanyRepo:  companyRepo,
		TransferRepo: transferRepo,
		UnitOfWork:   NewPgxUnitOfWorkManager(dbPool),
	}
}
