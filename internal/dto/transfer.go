package dto

import (
	"time"

	"github.com/ledger-ar/company_transfers_app/internal/core/domain"
	"github.com/ledger-ar/company_transfers_app/internal/utils"
	"github.com/ledger-ar/company_transfers_app/internal/utils/validation"
	"github.com/shopspring/decimal"
)

// maxTransferAmount is the upper bound accepted at the boundary.
var maxTransferAmount = decimal.NewFromInt(1_000_000)

// CreateTransferRequest is the body of POST /transfers.
type CreateTransferRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	CompanyID     string          `json:"companyId" binding:"required,uuid4"`
	DebitAccount  string          `json:"debitAccount" binding:"required"`
	CreditAccount string          `json:"creditAccount" binding:"required"`
	Description   string          `json:"description" binding:"omitempty,max=500"`
	ReferenceID   string          `json:"referenceId" binding:"omitempty,max=100"`
	Status        string          `json:"status" binding:"omitempty,oneof=PENDING COMPLETED FAILED REVERSED"`
	Currency      string          `json:"currency" binding:"omitempty,len=3"`
}

// Validate applies the business constraints: amount bounds and scale, account
// format and inequality after normalization, currency allow-list, and the
// free-text blocklist. All failures are reported together.
func (r CreateTransferRequest) Validate() validation.Errors {
	var errs validation.Errors

	errs.Check(r.Amount.GreaterThan(decimal.Zero), "amount", "must be greater than zero")
	errs.Check(r.Amount.LessThanOrEqual(maxTransferAmount), "amount", "cannot exceed 1,000,000")
	errs.Check(r.Amount.Exponent() >= -2, "amount", "must have at most 2 decimal places")

	errs.Check(validation.IsValidAccountNumber(r.DebitAccount),
		"debitAccount", "must contain 5-20 digits and cannot be a single repeated digit")
	errs.Check(validation.IsValidAccountNumber(r.CreditAccount),
		"creditAccount", "must contain 5-20 digits and cannot be a single repeated digit")
	errs.Check(domain.NormalizeAccount(r.DebitAccount) != domain.NormalizeAccount(r.CreditAccount),
		"creditAccount", "debit and credit accounts cannot be the same")

	if r.Currency != "" {
		errs.Check(validation.IsAllowedCurrency(r.Currency),
			"currency", "is not a recognized ISO 4217 code")
	}
	if r.Description != "" {
		errs.Check(validation.IsSafeText(r.Description),
			"description", "contains potentially dangerous characters")
	}
	if r.ReferenceID != "" {
		errs.Check(validation.IsSafeText(r.ReferenceID),
			"referenceId", "contains potentially dangerous characters")
	}
	return errs
}

// UpdateTransferStatusRequest is the body of PATCH /transfers/:id/status.
type UpdateTransferStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING COMPLETED FAILED REVERSED"`
}

// TransferResponse is the external shape of a transfer. Account numbers are
// masked down to their last four digits; the stored rows stay digits-only.
type TransferResponse struct {
	ID            int64           `json:"id"`
	UUID          string          `json:"uuid"`
	Amount        decimal.Decimal `json:"amount"`
	Company       CompanySummary  `json:"company"`
	DebitAccount  string          `json:"debitAccount"`
	CreditAccount string          `json:"creditAccount"`
	TransferDate  time.Time       `json:"transferDate"`
	Status        string          `json:"status"`
	Description   string          `json:"description,omitempty"`
	ReferenceID   string          `json:"referenceId,omitempty"`
	ProcessedDate *time.Time      `json:"processedDate,omitempty"`
	Currency      string          `json:"currency"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransferResponse converts a domain Transfer to its response DTO, masking
// both account numbers and applying the ARS currency backstop.
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	currency := t.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return TransferResponse{
		ID:            t.ID,
		UUID:          t.UUID,
		Amount:        t.Amount,
		Company:       ToCompanySummary(&t.Company),
		DebitAccount:  utils.MaskAccountNumber(t.DebitAccount),
		CreditAccount: utils.MaskAccountNumber(t.CreditAccount),
		TransferDate:  t.TransferDate,
		Status:        string(t.Status),
		Description:   t.Description,
		ReferenceID:   t.ReferenceID,
		ProcessedDate: t.ProcessedDate,
		Currency:      currency,
		CreatedAt:     t.CreatedAt,
	}
}

// ToTransferResponseList converts a slice of transfers.
func ToTransferResponseList(transfers []domain.Transfer) []TransferResponse {
	res := make([]TransferResponse, len(transfers))
	for i := range transfers {
		res[i] = ToTransferResponse(&transfers[i])
	}
	return res
}
