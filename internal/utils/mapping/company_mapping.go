package mapping

import (
	"github.com/ledger-ar/company_transfers_app/internal/core/domain"
	"github.com/ledger-ar/company_transfers_app/internal/models"
)

// ToModelCompany converts a domain Company to its row model.
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		ID:           d.ID,
		UUID:         d.UUID,
		CUIT:         d.CUIT,
		BusinessName: d.BusinessName,
		AdhesionDate: d.AdhesionDate,
		Address:      d.Address,
		ContactEmail: d.ContactEmail,
		ContactPhone: d.ContactPhone,
		IsActive:     d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
			DeletedAt: d.DeletedAt,
		},
	}
}

// ToDomainCompany converts a company row model back to the domain entity.
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		ID:           m.ID,
		UUID:         m.UUID,
		CUIT:         m.CUIT,
		BusinessName: m.BusinessName,
		AdhesionDate: m.AdhesionDate,
		Address:      m.Address,
		ContactEmail: m.ContactEmail,
		ContactPhone: m.ContactPhone,
		IsActive:     m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
			DeletedAt: m.DeletedAt,
		},
	}
}
