package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ledger-ar/company_transfers_app/internal/apperrors"
	"github.com/ledger-ar/company_transfers_app/internal/core/domain"
	portsrepo "github.com/ledger-ar/company_transfers_app/internal/core/ports/repositories"
	portssvc "github.com/ledger-ar/company_transfers_app/internal/core/ports/services"
	"github.com/ledger-ar/company_transfers_app/internal/dto"
)

// companyService handles business logic related to adhering companies.
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
	uowManager  portsrepo.UnitOfWorkManager
}

// NewCompanyService creates a new company service.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade, uowManager portsrepo.UnitOfWorkManager) portssvc.CompanySvcFacade {
	return &companyService{
		companyRepo: companyRepo,
		uowManager:  uowManager,
	}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// CreateCompany registers a new adhering company. The CUIT uniqueness check
// and the insert run inside one unit of work; the unique index on cuit is the
// backstop for concurrent registrations of the same CUIT.
func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*dto.GenericResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(errs.Messages(), "; "))
	}

	canonicalCUIT := domain.NormalizeCUIT(req.CUIT)

	uow, err := s.uowManager.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin unit of work for company creation")
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	defer uow.Rollback(ctx)

	existing, err := s.companyRepo.FindByCUIT(ctx, uow, canonicalCUIT)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check CUIT uniqueness", slog.String("cuit", canonicalCUIT))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: a company with CUIT %s is already registered", apperrors.ErrDuplicate, canonicalCUIT)
	}

	now := time.Now()
	company := domain.Company{
		UUID:         uuid.NewString(),
		AdhesionDate: now,
		Address:      domain.SanitizeText(req.Address),
		ContactEmail: strings.TrimSpace(req.ContactEmail),
		ContactPhone: strings.TrimSpace(req.ContactPhone),
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	company.SetCUIT(req.CUIT)
	company.SetBusinessName(req.BusinessName)

	saved, err := s.companyRepo.SaveCompany(ctx, uow, company)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: a company with CUIT %s is already registered", apperrors.ErrDuplicate, canonicalCUIT)
		}
		s.LogError(ctx, err, "Failed to save company", slog.String("cuit", canonicalCUIT))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	if err := uow.Commit(ctx); err != nil {
		s.LogError(ctx, err, "Failed to commit company creation", slog.String("cuit", canonicalCUIT))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	s.LogInfo(ctx, "Company created successfully",
		slog.String("company_uuid", saved.UUID),
		slog.String("cuit", saved.CUIT))
	return &dto.GenericResponse{Message: "Company created successfully"}, nil
}

// GetCompanyByID retrieves a company by its numeric id or UUID.
func (s *companyService) GetCompanyByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	entityID := domain.ParseEntityID(id)
	if !entityID.IsValid() {
		return nil, fmt.Errorf("%w: identifier must be a numeric id or a UUID", apperrors.ErrValidation)
	}

	company, err := s.companyRepo.FindByID(ctx, entityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(apperrors.CodeCompanyNotFound, "company not found", err)
		}
		s.LogError(ctx, err, "Failed to find company", slog.String("id", id))
		return nil, fmt.Errorf("failed to retrieve company %s: %w", id, err)
	}

	resp := dto.ToCompanyResponse(company)
	return &resp, nil
}

// ListCompanies retrieves one page of companies with pagination metadata.
// An empty page is reported as not found, matching the API contract.
func (s *companyService) ListCompanies(ctx context.Context, params dto.PaginatedQueryParams) (*dto.PaginatedResponse[dto.CompanyResponse], error) {
	offset := params.Page * params.Limit

	total, err := s.companyRepo.CountCompanies(ctx, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to count companies")
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	companies, err := s.companyRepo.ListCompanies(ctx, params.Limit, offset, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies", slog.Int("page", params.Page), slog.Int("limit", params.Limit))
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	if len(companies) == 0 {
		return nil, apperrors.NewAppError(apperrors.CodeCompaniesNotFound, "no companies found", apperrors.ErrNotFound)
	}

	resp := dto.NewPaginatedResponse(dto.ToCompanyResponseList(companies), params.Page, params.Limit, total)
	return &resp, nil
}

// FindCompaniesAdheringLastMonth retrieves active companies whose adhesion
// date falls within the previous calendar month.
func (s *companyService) FindCompaniesAdheringLastMonth(ctx context.Context) ([]dto.CompanyResponse, error) {
	from, to := previousMonthWindow(time.Now())

	companies, err := s.companyRepo.FindAdheringBetween(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to find companies adhering last month")
		return nil, fmt.Errorf("failed to find companies adhering last month: %w", err)
	}

	if len(companies) == 0 {
		return nil, apperrors.NewAppError(apperrors.CodeCompaniesNotFound, "no companies adhered last month", apperrors.ErrNotFound)
	}

	s.LogDebug(ctx, "Companies adhering last month listed", slog.Int("count", len(companies)))
	return dto.ToCompanyResponseList(companies), nil
}

// SoftDeleteCompany marks a company as deleted and inactive. Its transfers
// stay in place; the company simply stops appearing in company queries.
func (s *companyService) SoftDeleteCompany(ctx context.Context, id string) error {
	entityID := domain.ParseEntityID(id)
	if !entityID.IsValid() {
		return fmt.Errorf("%w: identifier must be a numeric id or a UUID", apperrors.ErrValidation)
	}

	if err := s.companyRepo.SoftDeleteCompany(ctx, entityID, time.Now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewAppError(apperrors.CodeCompanyNotFound, "company not found", err)
		}
		s.LogError(ctx, err, "Failed to soft delete company", slog.String("id", id))
		return fmt.Errorf("failed to delete company %s: %w", id, err)
	}

	s.LogInfo(ctx, "Company soft deleted", slog.String("id", id))
	return nil
}
