package services

import (
	portsrepo "github.com/ledger-ar/company_transfers_app/internal/core/ports/repositories"
	portssvc "github.com/ledger-ar/company_transfers_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Company = NewCompanyService(repos.CompanyRepo, repos.UnitOfWork)
	container.Transfer = NewTransferService(repos.TransferRepo, repos.CompanyRepo, repos.UnitOfWork)

	return container
}
