package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is the row shape of the transfer table. CompanyID is the numeric
// foreign key; the joined company row travels alongside when queries join it.
type Transfer struct {
	ID            int64           `db:"id"`
	UUID          string          `db:"uuid"`
	Amount        decimal.Decimal `db:"amount"`
	CompanyID     int64           `db:"company_id"`
	DebitAccount  string          `db:"debit_account"`
	CreditAccount string          `db:"credit_account"`
	TransferDate  time.Time       `db:"transfer_date"`
	Status        string          `db:"status"`
	Description   string          `db:"description"`  // Nullable
	ReferenceID   string          `db:"reference_id"` // Nullable
	ProcessedDate *time.Time      `db:"processed_date"`
	Currency      string          `db:"currency"` // Nullable; "ARS" backstop applied on read
	AuditFields
}
