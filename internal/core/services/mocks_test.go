package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/ledger-ar/company_transfers_app/internal/core/domain"
	portsrepo "github.com/ledger-ar/company_transfers_app/internal/core/ports/repositories"
)

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id domain.EntityID) (*domain.Company, error) {
	args := m.Called(ctx, id)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

func (m *MockCompanyRepository) FindByCUIT(ctx context.Context, uow portsrepo.UnitOfWork, cuit string) (*domain.Company, error) {
	args := m.Called(ctx, uow, cuit)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context, limit, offset int, includeDeleted bool) ([]domain.Company, error) {
	args := m.Called(ctx, limit, offset, includeDeleted)
	var companies []domain.Company
	if args.Get(0) != nil {
		companies = args.Get(0).([]domain.Company)
	}
	return companies, args.Error(1)
}

func (m *MockCompanyRepository) CountCompanies(ctx context.Context, includeDeleted bool) (int64, error) {
	args := m.Called(ctx, includeDeleted)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyRepository) FindAdheringBetween(ctx context.Context, from, to time.Time) ([]domain.Company, error) {
	args := m.Called(ctx, from, to)
	var companies []domain.Company
	if args.Get(0) != nil {
		companies = args.Get(0).([]domain.Company)
	}
	return companies, args.Error(1)
}

func (m *MockCompanyRepository) FindByEntityIDs(ctx context.Context, numericIDs []int64, uuids []string) ([]domain.Company, error) {
	args := m.Called(ctx, numericIDs, uuids)
	var companies []domain.Company
	if args.Get(0) != nil {
		companies = args.Get(0).([]domain.Company)
	}
	return companies, args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, uow portsrepo.UnitOfWork, company domain.Company) (*domain.Company, error) {
	args := m.Called(ctx, uow, company)
	var saved *domain.Company
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Company)
	}
	return saved, args.Error(1)
}

func (m *MockCompanyRepository) SoftDeleteCompany(ctx context.Context, id domain.EntityID, now time.Time) error {
	args := m.Called(ctx, id, now)
	return args.Error(0)
}

// --- Mock TransferRepository ---
type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) FindByID(ctx context.Context, id domain.EntityID) (*domain.Transfer, error) {
	args := m.Called(ctx, id)
	var transfer *domain.Transfer
	if args.Get(0) != nil {
		transfer = args.Get(0).(*domain.Transfer)
	}
	return transfer, args.Error(1)
}

func (m *MockTransferRepository) ListTransfers(ctx context.Context, limit, offset int, includeDeleted bool) ([]domain.Transfer, error) {
	args := m.Called(ctx, limit, offset, includeDeleted)
	var transfers []domain.Transfer
	if args.Get(0) != nil {
		transfers = args.Get(0).([]domain.Transfer)
	}
	return transfers, args.Error(1)
}

func (m *MockTransferRepository) CountTransfers(ctx context.Context, includeDeleted bool) (int64, error) {
	args := m.Called(ctx, includeDeleted)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransferRepository) ListByCompany(ctx context.Context, companyID int64) ([]domain.Transfer, error) {
	args := m.Called(ctx, companyID)
	var transfers []domain.Transfer
	if args.Get(0) != nil {
		transfers = args.Get(0).([]domain.Transfer)
	}
	return transfers, args.Error(1)
}

func (m *MockTransferRepository) FindCompanyUUIDsWithTransfersBetween(ctx context.Context, from, to time.Time) ([]string, error) {
	args := m.Called(ctx, from, to)
	var uuids []string
	if args.Get(0) != nil {
		uuids = args.Get(0).([]string)
	}
	return uuids, args.Error(1)
}

func (m *MockTransferRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]domain.Transfer, error) {
	args := m.Called(ctx, from, to)
	var transfers []domain.Transfer
	if args.Get(0) != nil {
		transfers = args.Get(0).([]domain.Transfer)
	}
	return transfers, args.Error(1)
}

func (m *MockTransferRepository) FindByStatus(ctx context.Context, status domain.TransferStatus) ([]domain.Transfer, error) {
	args := m.Called(ctx, status)
	var transfers []domain.Transfer
	if args.Get(0) != nil {
		transfers = args.Get(0).([]domain.Transfer)
	}
	return transfers, args.Error(1)
}

func (m *MockTransferRepository) SaveTransfer(ctx context.Context, uow portsrepo.UnitOfWork, transfer domain.Transfer) (*domain.Transfer, error) {
	args := m.Called(ctx, uow, transfer)
	var saved *domain.Transfer
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Transfer)
	}
	return saved, args.Error(1)
}

func (m *MockTransferRepository) UpdateStatus(ctx context.Context, transfer domain.Transfer) error {
	args := m.Called(ctx, transfer)
	return args.Error(0)
}

// --- Mock UnitOfWork ---
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Tx() pgx.Tx {
	return nil
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock UnitOfWorkManager ---
type MockUnitOfWorkManager struct {
	mock.Mock
}

func (m *MockUnitOfWorkManager) Begin(ctx context.Context) (portsrepo.UnitOfWork, error) {
	args := m.Called(ctx)
	var uow portsrepo.UnitOfWork
	if args.Get(0) != nil {
		uow = args.Get(0).(portsrepo.UnitOfWork)
	}
	return uow, args.Error(1)
}
