package services

import (
	"context"

	"github.com/ledger-ar/company_transfers_app/internal/dto"
)

// TransferReaderSvc defines read operations for transfer data
type TransferReaderSvc interface {
	// GetTransferByID retrieves a transfer by numeric id or UUID.
	GetTransferByID(ctx context.Context, id string) (*dto.TransferResponse, error)

	// ListTransfers retrieves a paginated list of transfers.
	ListTransfers(ctx context.Context, params dto.PaginatedQueryParams) (*dto.PaginatedResponse[dto.TransferResponse], error)

	// ListTransfersByCompany retrieves every transfer owned by a company.
	ListTransfersByCompany(ctx context.Context, companyID string) ([]dto.TransferResponse, error)

	// FindCompaniesWithTransfersLastMonth retrieves companies that made at
	// least one transfer dated within the previous calendar month.
	FindCompaniesWithTransfersLastMonth(ctx context.Context) ([]dto.CompanySummary, error)
}

// TransferWriterSvc defines write operations for transfer data
type TransferWriterSvc interface {
	// CreateTransfer registers a new transfer for an adhered company.
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) (*dto.GenericResponse, error)

	// UpdateTransferStatus transitions a transfer to a new status.
	UpdateTransferStatus(ctx context.Context, id string, req dto.UpdateTransferStatusRequest) (*dto.TransferResponse, error)
}

// TransferSvcFacade combines all transfer-related service interfaces
type TransferSvcFacade interface {
	TransferReaderSvc
	TransferWriterSvc
}
