package services

import (
	"context"

	"github.com/ledger-ar/company_transfers_app/internal/dto"
)

// CompanyReaderSvc defines read operations for company data
type CompanyReaderSvc interface {
	// GetCompanyByID retrieves a company by numeric id or UUID.
	GetCompanyByID(ctx context.Context, id string) (*dto.CompanyResponse, error)

	// ListCompanies retrieves a paginated list of companies.
	ListCompanies(ctx context.Context, params dto.PaginatedQueryParams) (*dto.PaginatedResponse[dto.CompanyResponse], error)

	// FindCompaniesAdheringLastMonth retrieves companies whose adhesion date
	// falls within the previous calendar month.
	FindCompaniesAdheringLastMonth(ctx context.Context) ([]dto.CompanyResponse, error)
}

// CompanyWriterSvc defines write operations for company data
type CompanyWriterSvc interface {
	// CreateCompany registers a new adhering company.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*dto.GenericResponse, error)
}

// CompanyLifecycleSvc defines operations for managing company lifecycle
type CompanyLifecycleSvc interface {
	// SoftDeleteCompany marks a company as deleted (soft delete).
	SoftDeleteCompany(ctx context.Context, id string) error
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
	CompanyLifecycleSvc
}
