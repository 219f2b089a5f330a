package dto

import (
	"time"

	"github.com/ledger-ar/company_transfers_app/internal/core/domain"
	"github.com/ledger-ar/company_transfers_app/internal/utils/validation"
)

// CreateCompanyRequest is the body of POST /companies. Binding tags reject
// shape problems; Validate carries the business constraints and reports every
// failed field at once.
type CreateCompanyRequest struct {
	CUIT         string `json:"cuit" binding:"required"`
	BusinessName string `json:"businessName" binding:"required"`
	Address      string `json:"address" binding:"omitempty,max=255"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone string `json:"contactPhone" binding:"omitempty"`
}

// Validate checks the CUIT pattern and check digit, business name rules and
// optional contact fields, returning the aggregated field failures.
func (r CreateCompanyRequest) Validate() validation.Errors {
	var errs validation.Errors
	errs.Check(validation.MatchesCUITPattern(r.CUIT),
		"cuit", "must follow the pattern 2X-XXXXXXXX-X or 3XXXXXXXXX")
	if validation.MatchesCUITPattern(r.CUIT) {
		errs.Check(validation.HasValidCUITCheckDigit(r.CUIT),
			"cuit", "check digit is invalid")
	}
	errs.Check(validation.IsValidBusinessName(r.BusinessName),
		"businessName", "must be 3-100 characters of letters, digits and .,&()'-")
	if r.ContactPhone != "" {
		errs.Check(validation.IsValidPhone(r.ContactPhone),
			"contactPhone", "must contain 8-15 digits, optionally with a leading +")
	}
	if r.Address != "" {
		errs.Check(validation.IsSafeText(r.Address),
			"address", "contains potentially dangerous characters")
	}
	return errs
}

// CompanyResponse is the external shape of a company.
type CompanyResponse struct {
	ID           int64     `json:"id"`
	UUID         string    `json:"uuid"`
	CUIT         string    `json:"cuit"`
	BusinessName string    `json:"businessName"`
	AdhesionDate time.Time `json:"adhesionDate"`
	Address      string    `json:"address,omitempty"`
	ContactEmail string    `json:"contactEmail,omitempty"`
	ContactPhone string    `json:"contactPhone,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CompanySummary is the trimmed company reference embedded in transfers.
type CompanySummary struct {
	ID           int64  `json:"id"`
	UUID         string `json:"uuid"`
	CUIT         string `json:"cuit"`
	BusinessName string `json:"businessName"`
}

// ToCompanyResponse converts a domain Company to its response DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:           c.ID,
		UUID:         c.UUID,
		CUIT:         c.CUIT,
		BusinessName: c.BusinessName,
		AdhesionDate: c.AdhesionDate,
		Address:      c.Address,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
	}
}

// ToCompanyResponseList converts a slice of companies.
func ToCompanyResponseList(companies []domain.Company) []CompanyResponse {
	res := make([]CompanyResponse, len(companies))
	for i := range companies {
		res[i] = ToCompanyResponse(&companies[i])
	}
	return res
}

// ToCompanySummary builds the embedded company reference.
func ToCompanySummary(c *domain.Company) CompanySummary {
	return CompanySummary{
		ID:           c.ID,
		UUID:         c.UUID,
		CUIT:         c.CUIT,
		BusinessName: c.BusinessName,
	}
}
