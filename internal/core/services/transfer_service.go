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

// transferService handles business logic related to bank transfers.
type transferService struct {
	BaseService
	transferRepo portsrepo.TransferRepositoryFacade
	companyRepo  portsrepo.CompanyRepositoryFacade
	uowManager   portsrepo.UnitOfWorkManager
}

// NewTransferService creates a new transfer service.
func NewTransferService(transferRepo portsrepo.TransferRepositoryFacade, companyRepo portsrepo.CompanyRepositoryFacade, uowManager portsrepo.UnitOfWorkManager) portssvc.TransferSvcFacade {
	return &transferService{
		transferRepo: transferRepo,
		companyRepo:  companyRepo,
		uowManager:   uowManager,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// CreateTransfer registers a new transfer for an adhered company. The owning
// company must exist and be non-deleted; the insert runs inside a unit of
// work and the foreign key on company_id backstops a concurrent deletion.
func (s *transferService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) (*dto.GenericResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(errs.Messages(), "; "))
	}

	companyID := domain.ParseEntityID(req.CompanyID)
	if !companyID.IsValid() {
		return nil, fmt.Errorf("%w: companyId must be a UUID", apperrors.ErrValidation)
	}

	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(apperrors.CodeCompanyNotFound, "company not found", err)
		}
		s.LogError(ctx, err, "Failed to find owning company", slog.String("company_id", req.CompanyID))
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	now := time.Now()
	transfer := domain.Transfer{
		UUID:         uuid.NewString(),
		Company:      *company,
		TransferDate: now,
		Description:  domain.SanitizeText(req.Description),
		ReferenceID:  domain.SanitizeText(req.ReferenceID),
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := transfer.SetAmount(req.Amount); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	transfer.SetDebitAccount(req.DebitAccount)
	transfer.SetCreditAccount(req.CreditAccount)
	transfer.SetCurrency(strings.ToUpper(req.Currency))

	status := domain.StatusPending
	if req.Status != "" {
		status = domain.TransferStatus(req.Status)
	}
	transfer.SetStatus(status, now)

	if err := transfer.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	uow, err := s.uowManager.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin unit of work for transfer creation")
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}
	defer uow.Rollback(ctx)

	saved, err := s.transferRepo.SaveTransfer(ctx, uow, transfer)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// FK violation: the company vanished between the lookup and the insert.
			return nil, apperrors.NewAppError(apperrors.CodeCompanyNotFound, "company not found", err)
		}
		s.LogError(ctx, err, "Failed to save transfer", slog.String("company_uuid", company.UUID))
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	if err := uow.Commit(ctx); err != nil {
		s.LogError(ctx, err, "Failed to commit transfer creation", slog.String("company_uuid", company.UUID))
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	s.LogInfo(ctx, "Transfer created successfully",
		slog.String("transfer_uuid", saved.UUID),
		slog.String("company_uuid", company.UUID),
		slog.String("status", string(saved.Status)))
	return &dto.GenericResponse{Message: "Transfer created successfully"}, nil
}

// GetTransferByID retrieves a transfer by its numeric id or UUID.
func (s *transferService) GetTransferByID(ctx context.Context, id string) (*dto.TransferResponse, error) {
	entityID := domain.ParseEntityID(id)
	if !entityID.IsValid() {
		return nil, fmt.Errorf("%w: identifier must be a numeric id or a UUID", apperrors.ErrValidation)
	}

	transfer, err := s.transferRepo.FindByID(ctx, entityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(apperrors.CodeTransferNotFound, "transfer not found", err)
		}
		s.LogError(ctx, err, "Failed to find transfer", slog.String("id", id))
		return nil, fmt.Errorf("failed to retrieve transfer %s: %w", id, err)
	}

	resp := dto.ToTransferResponse(transfer)
	return &resp, nil
}

// ListTransfers retrieves one page of transfers with pagination metadata.
// An empty page is reported as not found, matching the API contract.
func (s *transferService) ListTransfers(ctx context.Context, params dto.PaginatedQueryParams) (*dto.PaginatedResponse[dto.TransferResponse], error) {
	offset := params.Page * params.Limit

	total, err := s.transferRepo.CountTransfers(ctx, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to count transfers")
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}

	transfers, err := s.transferRepo.ListTransfers(ctx, params.Limit, offset, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transfers", slog.Int("page", params.Page), slog.Int("limit", params.Limit))
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}

	if len(transfers) == 0 {
		return nil, apperrors.NewAppError(apperrors.CodeTransfersNotFound, "no transfers found", apperrors.ErrNotFound)
	}

	resp := dto.NewPaginatedResponse(dto.ToTransferResponseList(transfers), params.Page, params.Limit, total)
	return &resp, nil
}

// ListTransfersByCompany retrieves every transfer owned by the company.
func (s *transferService) ListTransfersByCompany(ctx context.Context, companyID string) ([]dto.TransferResponse, error) {
	entityID := domain.ParseEntityID(companyID)
	if !entityID.IsValid() {
		return nil, fmt.Errorf("%w: identifier must be a numeric id or a UUID", apperrors.ErrValidation)
	}

	company, err := s.companyRepo.FindByID(ctx, entityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(apperrors.CodeCompanyNotFound, "company not found", err)
		}
		s.LogError(ctx, err, "Failed to find company for transfer listing", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list transfers for company %s: %w", companyID, err)
	}

	transfers, err := s.transferRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transfers by company", slog.String("company_uuid", company.UUID))
		return nil, fmt.Errorf("failed to list transfers for company %s: %w", companyID, err)
	}

	if len(transfers) == 0 {
		return nil, apperrors.NewAppError(apperrors.CodeTransfersNotFound, "no transfers found for company", apperrors.ErrNotFound)
	}

	return dto.ToTransferResponseList(transfers), nil
}

// FindCompaniesWithTransfersLastMonth retrieves the companies that made at
// least one transfer dated within the previous calendar month. It is a
// two-step query: distinct owning company UUIDs first, then a batch fetch.
func (s *transferService) FindCompaniesWithTransfersLastMonth(ctx context.Context) ([]dto.CompanySummary, error) {
	from, to := previousMonthWindow(time.Now())

	uuids, err := s.transferRepo.FindCompanyUUIDsWithTransfersBetween(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to find companies with transfers last month")
		return nil, fmt.Errorf("failed to find companies with transfers last month: %w", err)
	}

	if len(uuids) == 0 {
		return nil, apperrors.NewAppError(apperrors.CodeCompaniesNotFound, "no companies made transfers last month", apperrors.ErrNotFound)
	}

	numericIDs, companyUUIDs := domain.SplitEntityIDs(uuids)
	companies, err := s.companyRepo.FindByEntityIDs(ctx, numericIDs, companyUUIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to batch fetch companies", slog.Int("count", len(uuids)))
		return nil, fmt.Errorf("failed to find companies with transfers last month: %w", err)
	}

	summaries := make([]dto.CompanySummary, len(companies))
	for i := range companies {
		summaries[i] = dto.ToCompanySummary(&companies[i])
	}

	s.LogDebug(ctx, "Companies with transfers last month listed", slog.Int("count", len(summaries)))
	return summaries, nil
}

// UpdateTransferStatus transitions a transfer to a new status. Entering
// COMPLETED or FAILED stamps the processed date once.
func (s *transferService) UpdateTransferStatus(ctx context.Context, id string, req dto.UpdateTransferStatusRequest) (*dto.TransferResponse, error) {
	entityID := domain.ParseEntityID(id)
	if !entityID.IsValid() {
		return nil, fmt.Errorf("%w: identifier must be a numeric id or a UUID", apperrors.ErrValidation)
	}

	transfer, err := s.transferRepo.FindByID(ctx, entityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(apperrors.CodeTransferNotFound, "transfer not found", err)
		}
		s.LogError(ctx, err, "Failed to find transfer for status update", slog.String("id", id))
		return nil, fmt.Errorf("failed to update transfer %s: %w", id, err)
	}

	now := time.Now()
	transfer.SetStatus(domain.TransferStatus(req.Status), now)
	transfer.UpdatedAt = now

	if err := s.transferRepo.UpdateStatus(ctx, *transfer); err != nil {
		s.LogError(ctx, err, "Failed to persist transfer status", slog.String("transfer_uuid", transfer.UUID), slog.String("status", req.Status))
		return nil, fmt.Errorf("failed to update transfer %s: %w", id, err)
	}

	s.LogInfo(ctx, "Transfer status updated",
		slog.String("transfer_uuid", transfer.UUID),
		slog.String("status", string(transfer.Status)))
	resp := dto.ToTransferResponse(transfer)
	return &resp, nil
}
