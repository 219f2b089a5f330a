package mapping

import (
	"github.com/ledger-ar/company_transfers_app/internal/core/domain"
	"github.com/ledger-ar/company_transfers_app/internal/models"
)

// ToModelTransfer converts a domain Transfer to its row model.
// The owning company travels as a foreign key only; the company row itself is
// persisted by the company repository.
func ToModelTransfer(d domain.Transfer) models.Transfer {
	return models.Transfer{
		ID:            d.ID,
		UUID:          d.UUID,
		Amount:        d.Amount,
		CompanyID:     d.Company.ID,
		DebitAccount:  d.DebitAccount,
		CreditAccount: d.CreditAccount,
		TransferDate:  d.TransferDate,
		Status:        string(d.Status),
		Description:   d.Description,
		ReferenceID:   d.ReferenceID,
		ProcessedDate: d.ProcessedDate,
		Currency:      d.Currency,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
			DeletedAt: d.DeletedAt,
		},
	}
}

// ToDomainTransfer converts a transfer row model (plus its joined company row)
// back to the domain entity. A row persisted without a currency is reported
// with the ARS backstop.
func ToDomainTransfer(m models.Transfer, company models.Company) domain.Transfer {
	currency := m.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return domain.Transfer{
		ID:            m.ID,
		UUID:          m.UUID,
		Amount:        m.Amount,
		Company:       ToDomainCompany(company),
		DebitAccount:  m.DebitAccount,
		CreditAccount: m.CreditAccount,
		TransferDate:  m.TransferDate,
		Status:        domain.TransferStatus(m.Status),
		Description:   m.Description,
		ReferenceID:   m.ReferenceID,
		ProcessedDate: m.ProcessedDate,
		Currency:      currency,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
			DeletedAt: m.DeletedAt,
		},
	}
}
