package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransferStatus enumerates the lifecycle states of a transfer.
type TransferStatus string

const (
	StatusPending   TransferStatus = "PENDING"
	StatusCompleted TransferStatus = "COMPLETED"
	StatusFailed    TransferStatus = "FAILED"
	StatusReversed  TransferStatus = "REVERSED"
)

// DefaultCurrency is applied both when creating a transfer without a currency
// and as a read-time backstop for rows persisted without one.
const DefaultCurrency = "ARS"

// ErrNonPositiveAmount rejects zero or negative transfer amounts at
// construction time rather than at persistence.
var ErrNonPositiveAmount = fmt.Errorf("transfer amount must be greater than zero")

// ErrSameAccounts rejects transfers whose debit and credit accounts normalize
// to the same digit string.
var ErrSameAccounts = fmt.Errorf("debit and credit accounts cannot be the same")

// Transfer is a single money movement owned by a Company. Account numbers are
// always held digits-only; masking happens at response-shaping time.
type Transfer struct {
	ID            int64           `json:"id"`
	UUID          string          `json:"uuid"`
	Amount        decimal.Decimal `json:"amount"`
	Company       Company         `json:"company"`
	DebitAccount  string          `json:"debitAccount"`
	CreditAccount string          `json:"creditAccount"`
	TransferDate  time.Time       `json:"transferDate"`
	Status        TransferStatus  `json:"status"`
	Description   string          `json:"description,omitempty"`
	ReferenceID   string          `json:"referenceId,omitempty"`
	ProcessedDate *time.Time      `json:"processedDate,omitempty"`
	Currency      string          `json:"currency"`
	AuditFields
}

// SetAmount validates positivity and stores the amount rounded half-up to
// two fraction digits. The absolute value is taken after validation so a
// negative input still fails fast.
func (t *Transfer) SetAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveAmount
	}
	t.Amount = amount.Abs().Round(2)
	return nil
}

// NormalizeAccount strips every non-digit character from an account number.
func NormalizeAccount(account string) string {
	return keepDigits(account)
}

// SetDebitAccount stores the digits-only form of the account number.
func (t *Transfer) SetDebitAccount(account string) {
	t.DebitAccount = NormalizeAccount(account)
}

// SetCreditAccount stores the digits-only form of the account number.
func (t *Transfer) SetCreditAccount(account string) {
	t.CreditAccount = NormalizeAccount(account)
}

// SetStatus assigns the new status. Entering COMPLETED or FAILED stamps
// ProcessedDate once; repeated transitions into those states never re-stamp.
// All transitions are permitted, including away from terminal states: status
// corrections are an administrative operation here, not a forbidden path.
func (t *Transfer) SetStatus(status TransferStatus, now time.Time) {
	t.Status = status
	if (status == StatusCompleted || status == StatusFailed) && t.ProcessedDate == nil {
		processed := now
		t.ProcessedDate = &processed
	}
}

// SetCurrency stores the given currency or falls back to DefaultCurrency.
func (t *Transfer) SetCurrency(currency string) {
	if currency == "" {
		t.Currency = DefaultCurrency
		return
	}
	t.Currency = currency
}

// Validate re-checks the construction invariants as a unit: positive amount
// and distinct normalized accounts. Services call this before persisting even
// though each setter already enforced its own rule.
func (t *Transfer) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveAmount
	}
	if t.DebitAccount == t.CreditAccount {
		return ErrSameAccounts
	}
	return nil
}
