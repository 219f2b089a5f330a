package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ledger-ar/company_transfers_app/internal/apperrors"
	"github.com/ledger-ar/company_transfers_app/internal/core/domain"
	portssvc "github.com/ledger-ar/company_transfers_app/internal/core/ports/services"
	"github.com/ledger-ar/company_transfers_app/internal/core/services"
	"github.com/ledger-ar/company_transfers_app/internal/dto"
)

type TransferServiceTestSuite struct {
	suite.Suite
	mockTransferRepo *MockTransferRepository
	mockCompanyRepo  *MockCompanyRepository
	mockUowManager   *MockUnitOfWorkManager
	mockUow          *MockUnitOfWork
	service          portssvc.TransferSvcFacade
}

func (suite *TransferServiceTestSuite) SetupTest() {
	suite.mockTransferRepo = new(MockTransferRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockUowManager = new(MockUnitOfWorkManager)
	suite.mockUow = new(MockUnitOfWork)
	suite.service = services.NewTransferService(suite.mockTransferRepo, suite.mockCompanyRepo, suite.mockUowManager)
}

func validCreateTransferRequest(companyUUID string) dto.CreateTransferRequest {
	return dto.CreateTransferRequest{
		Amount:        decimal.NewFromFloat(1500.55),
		CompanyID:     companyUUID,
		DebitAccount:  "1234-567890",
		CreditAccount: "9876543210",
	}
}

// --- CreateTransfer Tests ---

func (suite *TransferServiceTestSuite) TestCreateTransfer_Success() {
	ctx := context.Background()
	companyUUID := uuid.NewString()
	company := &domain.Company{ID: 1, UUID: companyUUID, CUIT: "30-12345678-1"}
	req := validCreateTransferRequest(companyUUID)

	suite.mockCompanyRepo.On("FindByID", ctx, domain.EntityID{Kind: domain.IDUUID, UUID: companyUUID}).Return(company, nil).Once()
	suite.mockUowManager.On("Begin", ctx).Return(suite.mockUow, nil).Once()
	suite.mockTransferRepo.On("SaveTransfer", ctx, suite.mockUow, mock.MatchedBy(func(t domain.Transfer) bool {
		return t.UUID != "" &&
			t.Amount.Equal(decimal.NewFromFloat(1500.55)) &&
			t.DebitAccount == "1234567890" &&
			t.CreditAccount == "9876543210" &&
			t.Status == domain.StatusPending &&
			t.ProcessedDate == nil &&
			t.Currency == domain.DefaultCurrency &&
			t.Company.ID == 1
	})).Return(&domain.Transfer{ID: 10, UUID: uuid.NewString(), Status: domain.StatusPending}, nil).Once()
	suite.mockUow.On("Commit", ctx).Return(nil).Once()
	suite.mockUow.On("Rollback", ctx).Return(nil)

	resp, err := suite.service.CreateTransfer(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal("Transfer created successfully", resp.Message)
	suite.mockTransferRepo.AssertExpectations(suite.T())
	suite.mockUow.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_CompletedStampsProcessedDate() {
	ctx := context.Background()
	companyUUID := uuid.NewString()
	company := &domain.Company{ID: 1, UUID: companyUUID}
	req := validCreateTransferRequest(companyUUID)
	req.Status = "COMPLETED"

	suite.mockCompanyRepo.On("FindByID", ctx, mock.Anything).Return(company, nil).Once()
	suite.mockUowManager.On("Begin", ctx).Return(suite.mockUow, nil).Once()
	suite.mockTransferRepo.On("SaveTransfer", ctx, suite.mockUow, mock.MatchedBy(func(t domain.Transfer) bool {
		return t.Status == domain.StatusCompleted && t.ProcessedDate != nil
	})).Return(&domain.Transfer{ID: 11, UUID: uuid.NewString()}, nil).Once()
	suite.mockUow.On("Commit", ctx).Return(nil).Once()
	suite.mockUow.On("Rollback", ctx).Return(nil)

	_, err := suite.service.CreateTransfer(ctx, req)

	suite.Require().NoError(err)
	suite.mockTransferRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_UnknownCompany() {
	ctx := context.Background()
	companyUUID := uuid.NewString()
	req := validCreateTransferRequest(companyUUID)

	suite.mockCompanyRepo.On("FindByID", ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.CreateTransfer(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(apperrors.CodeCompanyNotFound, appErr.Code)
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_SameAccountsRejected() {
	ctx := context.Background()
	req := validCreateTransferRequest(uuid.NewString())
	req.DebitAccount = "1234567890"
	req.CreditAccount = "1234-567890"

	resp, err := suite.service.CreateTransfer(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "FindByID", mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_AmountAboveCap() {
	ctx := context.Background()
	req := validCreateTransferRequest(uuid.NewString())
	req.Amount = decimal.NewFromInt(1_000_001)

	resp, err := suite.service.CreateTransfer(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_ForeignKeyRace() {
	ctx := context.Background()
	companyUUID := uuid.NewString()
	company := &domain.Company{ID: 1, UUID: companyUUID}
	req := validCreateTransferRequest(companyUUID)

	suite.mockCompanyRepo.On("FindByID", ctx, mock.Anything).Return(company, nil).Once()
	suite.mockUowManager.On("Begin", ctx).Return(suite.mockUow, nil).Once()
	suite.mockTransferRepo.On("SaveTransfer", ctx, suite.mockUow, mock.AnythingOfType("domain.Transfer")).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUow.On("Rollback", ctx).Return(nil)

	resp, err := suite.service.CreateTransfer(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(apperrors.CodeCompanyNotFound, appErr.Code)
	suite.mockUow.AssertNotCalled(suite.T(), "Commit", mock.Anything)
}

// --- GetTransferByID Tests ---

func (suite *TransferServiceTestSuite) TestGetTransferByID_MasksAccounts() {
	ctx := context.Background()
	transfer := &domain.Transfer{
		ID:            10,
		UUID:          uuid.NewString(),
		Amount:        decimal.NewFromFloat(500.00),
		DebitAccount:  "1234567890",
		CreditAccount: "9876543210",
		Status:        domain.StatusPending,
		Company:       domain.Company{ID: 1, UUID: uuid.NewString()},
	}

	suite.mockTransferRepo.On("FindByID", ctx, domain.EntityID{Kind: domain.IDNumeric, Numeric: 10}).Return(transfer, nil).Once()

	resp, err := suite.service.GetTransferByID(ctx, "10")

	suite.Require().NoError(err)
	suite.Equal("******7890", resp.DebitAccount)
	suite.Equal("******3210", resp.CreditAccount)
	suite.Equal(domain.DefaultCurrency, resp.Currency)
}

func (suite *TransferServiceTestSuite) TestGetTransferByID_NotFound() {
	ctx := context.Background()
	id := uuid.NewString()

	suite.mockTransferRepo.On("FindByID", ctx, domain.EntityID{Kind: domain.IDUUID, UUID: id}).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.GetTransferByID(ctx, id)

	suite.Require().Error(err)
	suite.Nil(resp)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(apperrors.CodeTransferNotFound, appErr.Code)
}

func (suite *TransferServiceTestSuite) TestGetTransferByID_InvalidIdentifier() {
	ctx := context.Background()

	resp, err := suite.service.GetTransferByID(ctx, "nope")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- ListTransfers Tests ---

func (suite *TransferServiceTestSuite) TestListTransfers_Success() {
	ctx := context.Background()
	params := dto.PaginatedQueryParams{Page: 0, Limit: 10}
	transfers := []domain.Transfer{
		{ID: 1, UUID: uuid.NewString(), Amount: decimal.NewFromInt(100), DebitAccount: "1234567890", CreditAccount: "9876543210"},
	}

	suite.mockTransferRepo.On("CountTransfers", ctx, false).Return(int64(1), nil).Once()
	suite.mockTransferRepo.On("ListTransfers", ctx, 10, 0, false).Return(transfers, nil).Once()

	resp, err := suite.service.ListTransfers(ctx, params)

	suite.Require().NoError(err)
	suite.Len(resp.Data, 1)
	suite.Equal(int64(1), resp.Pagination.TotalItems)
	suite.False(resp.Pagination.HasNextPage)
}

func (suite *TransferServiceTestSuite) TestListTransfers_EmptyIsNotFound() {
	ctx := context.Background()
	params := dto.PaginatedQueryParams{Page: 0, Limit: 10}

	suite.mockTransferRepo.On("CountTransfers", ctx, false).Return(int64(0), nil).Once()
	suite.mockTransferRepo.On("ListTransfers", ctx, 10, 0, false).Return([]domain.Transfer{}, nil).Once()

	resp, err := suite.service.ListTransfers(ctx, params)

	suite.Require().Error(err)
	suite.Nil(resp)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(apperrors.CodeTransfersNotFound, appErr.Code)
}

// --- ListTransfersByCompany Tests ---

func (suite *TransferServiceTestSuite) TestListTransfersByCompany_Success() {
	ctx := context.Background()
	companyUUID := uuid.NewString()
	company := &domain.Company{ID: 4, UUID: companyUUID}
	transfers := []domain.Transfer{
		{ID: 1, UUID: uuid.NewString(), DebitAccount: "1234567890", CreditAccount: "9876543210", Company: *company},
		{ID: 2, UUID: uuid.NewString(), DebitAccount: "1234567890", CreditAccount: "5550001112", Company: *company},
	}

	suite.mockCompanyRepo.On("FindByID", ctx, domain.EntityID{Kind: domain.IDUUID, UUID: companyUUID}).Return(company, nil).Once()
	suite.mockTransferRepo.On("ListByCompany", ctx, int64(4)).Return(transfers, nil).Once()

	resp, err := suite.service.ListTransfersByCompany(ctx, companyUUID)

	suite.Require().NoError(err)
	suite.Len(resp, 2)
	suite.Equal(companyUUID, resp[0].Company.UUID)
}

func (suite *TransferServiceTestSuite) TestListTransfersByCompany_CompanyNotFound() {
	ctx := context.Background()

	suite.mockCompanyRepo.On("FindByID", ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.ListTransfersByCompany(ctx, "42")

	suite.Require().Error(err)
	suite.Nil(resp)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(apperrors.CodeCompanyNotFound, appErr.Code)
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "ListByCompany", mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestListTransfersByCompany_NoTransfers() {
	ctx := context.Background()
	company := &domain.Company{ID: 4, UUID: uuid.NewString()}

	suite.mockCompanyRepo.On("FindByID", ctx, mock.Anything).Return(company, nil).Once()
	suite.mockTransferRepo.On("ListByCompany", ctx, int64(4)).Return([]domain.Transfer{}, nil).Once()

	resp, err := suite.service.ListTransfersByCompany(ctx, "4")

	suite.Require().Error(err)
	suite.Nil(resp)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(apperrors.CodeTransfersNotFound, appErr.Code)
}

// --- FindCompaniesWithTransfersLastMonth Tests ---

func (suite *TransferServiceTestSuite) TestFindCompaniesWithTransfersLastMonth_Success() {
	ctx := context.Background()
	uuid1 := uuid.NewString()
	uuid2 := uuid.NewString()
	companies := []domain.Company{
		{ID: 1, UUID: uuid1, CUIT: "30-12345678-1", BusinessName: "Tecnologia del Sur S.A."},
		{ID: 2, UUID: uuid2, CUIT: "20-11111111-2", BusinessName: "Distribuidora Norte S.R.L."},
	}

	suite.mockTransferRepo.On("FindCompanyUUIDsWithTransfersBetween", ctx, mock.MatchedBy(func(from time.Time) bool {
		return from.Day() == 1
	}), mock.MatchedBy(func(to time.Time) bool {
		now := time.Now()
		return to.Day() == 1 && to.Month() == now.Month() && to.Year() == now.Year()
	})).Return([]string{uuid1, uuid2}, nil).Once()
	suite.mockCompanyRepo.On("FindByEntityIDs", ctx, []int64(nil), []string{uuid1, uuid2}).Return(companies, nil).Once()

	resp, err := suite.service.FindCompaniesWithTransfersLastMonth(ctx)

	suite.Require().NoError(err)
	suite.Len(resp, 2)
	suite.Equal(uuid1, resp[0].UUID)
	suite.mockTransferRepo.AssertExpectations(suite.T())
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestFindCompaniesWithTransfersLastMonth_Empty() {
	ctx := context.Background()

	suite.mockTransferRepo.On("FindCompanyUUIDsWithTransfersBetween", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return([]string{}, nil).Once()

	resp, err := suite.service.FindCompaniesWithTransfersLastMonth(ctx)

	suite.Require().Error(err)
	suite.Nil(resp)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(apperrors.CodeCompaniesNotFound, appErr.Code)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "FindByEntityIDs", mock.Anything, mock.Anything, mock.Anything)
}

// --- UpdateTransferStatus Tests ---

func (suite *TransferServiceTestSuite) TestUpdateTransferStatus_StampsProcessedDate() {
	ctx := context.Background()
	transfer := &domain.Transfer{
		ID:            10,
		UUID:          uuid.NewString(),
		Amount:        decimal.NewFromInt(100),
		DebitAccount:  "1234567890",
		CreditAccount: "9876543210",
		Status:        domain.StatusPending,
	}

	suite.mockTransferRepo.On("FindByID", ctx, domain.EntityID{Kind: domain.IDNumeric, Numeric: 10}).Return(transfer, nil).Once()
	suite.mockTransferRepo.On("UpdateStatus", ctx, mock.MatchedBy(func(t domain.Transfer) bool {
		return t.Status == domain.StatusCompleted && t.ProcessedDate != nil
	})).Return(nil).Once()

	resp, err := suite.service.UpdateTransferStatus(ctx, "10", dto.UpdateTransferStatusRequest{Status: "COMPLETED"})

	suite.Require().NoError(err)
	suite.Equal("COMPLETED", resp.Status)
	suite.NotNil(resp.ProcessedDate)
	suite.mockTransferRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestUpdateTransferStatus_KeepsExistingProcessedDate() {
	ctx := context.Background()
	processed := time.Now().Add(-24 * time.Hour)
	transfer := &domain.Transfer{
		ID:            10,
		UUID:          uuid.NewString(),
		Amount:        decimal.NewFromInt(100),
		DebitAccount:  "1234567890",
		CreditAccount: "9876543210",
		Status:        domain.StatusCompleted,
		ProcessedDate: &processed,
	}

	suite.mockTransferRepo.On("FindByID", ctx, mock.Anything).Return(transfer, nil).Once()
	suite.mockTransferRepo.On("UpdateStatus", ctx, mock.MatchedBy(func(t domain.Transfer) bool {
		return t.Status == domain.StatusFailed && t.ProcessedDate != nil && t.ProcessedDate.Equal(processed)
	})).Return(nil).Once()

	resp, err := suite.service.UpdateTransferStatus(ctx, "10", dto.UpdateTransferStatusRequest{Status: "FAILED"})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.ProcessedDate)
	suite.True(resp.ProcessedDate.Equal(processed))
}

func (suite *TransferServiceTestSuite) TestUpdateTransferStatus_NotFound() {
	ctx := context.Background()

	suite.mockTransferRepo.On("FindByID", ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.UpdateTransferStatus(ctx, "10", dto.UpdateTransferStatusRequest{Status: "FAILED"})

	suite.Require().Error(err)
	suite.Nil(resp)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(apperrors.CodeTransferNotFound, appErr.Code)
}

func TestTransferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}
