package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledger-ar/company_transfers_app/internal/core/domain"
	portsrepo "github.com/ledger-ar/company_transfers_app/internal/core/ports/repositories"
)

// SeedService populates an empty database with sample companies and
// transfers so the API is explorable right after first boot.
type SeedService struct {
	BaseService
	companyRepo  portsrepo.CompanyRepositoryFacade
	transferRepo portsrepo.TransferRepositoryFacade
	uowManager   portsrepo.UnitOfWorkManager
}

// NewSeedService creates a new seed service.
func NewSeedService(companyRepo portsrepo.CompanyRepositoryFacade, transferRepo portsrepo.TransferRepositoryFacade, uowManager portsrepo.UnitOfWorkManager) *SeedService {
	return &SeedService{
		companyRepo:  companyRepo,
		transferRepo: transferRepo,
		uowManager:   uowManager,
	}
}

type seedTransfer struct {
	Amount        decimal.Decimal `json:"amount"`
	DebitAccount  string          `json:"debitAccount"`
	CreditAccount string          `json:"creditAccount"`
	Status        string          `json:"status"`
	Description   string          `json:"description"`
	DaysAgo       int             `json:"daysAgo"`
}

type seedCompany struct {
	CUIT            string         `json:"cuit"`
	BusinessName    string         `json:"businessName"`
	Address         string         `json:"address"`
	ContactEmail    string         `json:"contactEmail"`
	AdhesionDaysAgo int            `json:"adhesionDaysAgo"`
	Transfers       []seedTransfer `json:"transfers"`
}

// Run seeds sample data when the company table is empty, including
// soft-deleted rows in the emptiness check. When path is non-empty the seed
// set is read from that JSON file, otherwise a built-in set is used.
func (s *SeedService) Run(ctx context.Context, path string) error {
	count, err := s.companyRepo.CountCompanies(ctx, true)
	if err != nil {
		return fmt.Errorf("seed: failed to count companies: %w", err)
	}
	if count > 0 {
		s.LogDebug(ctx, "Seed skipped, database already has companies", slog.Int64("count", count))
		return nil
	}

	seeds, err := s.loadSeeds(path)
	if err != nil {
		return err
	}

	for _, sc := range seeds {
		if err := s.seedCompanyWithTransfers(ctx, sc); err != nil {
			return err
		}
	}

	s.LogInfo(ctx, "Seed data loaded", slog.Int("companies", len(seeds)))
	return nil
}

func (s *SeedService) loadSeeds(path string) ([]seedCompany, error) {
	if path == "" {
		return builtinSeed(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: failed to read %s: %w", path, err)
	}
	var seeds []seedCompany
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("seed: failed to parse %s: %w", path, err)
	}
	return seeds, nil
}

// seedCompanyWithTransfers persists one company and its transfers in a single
// unit of work.
func (s *SeedService) seedCompanyWithTransfers(ctx context.Context, sc seedCompany) error {
	uow, err := s.uowManager.Begin(ctx)
	if err != nil {
		return fmt.Errorf("seed: failed to begin unit of work: %w", err)
	}
	defer uow.Rollback(ctx)

	now := time.Now()
	adhesion := now.AddDate(0, 0, -sc.AdhesionDaysAgo)
	company := domain.Company{
		UUID:         uuid.NewString(),
		AdhesionDate: adhesion,
		Address:      domain.SanitizeText(sc.Address),
		ContactEmail: sc.ContactEmail,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt: adhesion,
			UpdatedAt: adhesion,
		},
	}
	company.SetCUIT(sc.CUIT)
	company.SetBusinessName(sc.BusinessName)

	saved, err := s.companyRepo.SaveCompany(ctx, uow, company)
	if err != nil {
		return fmt.Errorf("seed: failed to save company %s: %w", sc.CUIT, err)
	}

	for _, st := range sc.Transfers {
		transferDate := now.AddDate(0, 0, -st.DaysAgo)
		transfer := domain.Transfer{
			UUID:         uuid.NewString(),
			Company:      *saved,
			TransferDate: transferDate,
			Description:  domain.SanitizeText(st.Description),
			AuditFields: domain.AuditFields{
				CreatedAt: transferDate,
				UpdatedAt: transferDate,
			},
		}
		if err := transfer.SetAmount(st.Amount); err != nil {
			return fmt.Errorf("seed: invalid amount for company %s: %w", sc.CUIT, err)
		}
		transfer.SetDebitAccount(st.DebitAccount)
		transfer.SetCreditAccount(st.CreditAccount)
		transfer.SetCurrency("")
		transfer.SetStatus(domain.TransferStatus(st.Status), transferDate)

		if _, err := s.transferRepo.SaveTransfer(ctx, uow, transfer); err != nil {
			return fmt.Errorf("seed: failed to save transfer for company %s: %w", sc.CUIT, err)
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return fmt.Errorf("seed: failed to commit seed for company %s: %w", sc.CUIT, err)
	}
	return nil
}

// builtinSeed is the default sample set: three companies, one adhered within
// the previous month, with transfers spread over the last two months so the
// reporting endpoints return data out of the box.
func builtinSeed() []seedCompany {
	return []seedCompany{
		{
			CUIT:            "30-12345678-1",
			BusinessName:    "Tecnologia del Sur S.A.",
			Address:         "Av. Corrientes 1234, CABA",
			ContactEmail:    "contacto@tecsur.com.ar",
			AdhesionDaysAgo: 20,
			Transfers: []seedTransfer{
				{Amount: decimal.NewFromFloat(15000.50), DebitAccount: "1234567890", CreditAccount: "9876543210", Status: "COMPLETED", Description: "Pago a proveedores", DaysAgo: 15},
				{Amount: decimal.NewFromFloat(8200.00), DebitAccount: "1234567890", CreditAccount: "5550001112", Status: "PENDING", Description: "Sueldos", DaysAgo: 2},
			},
		},
		{
			CUIT:            "20-11111111-2",
			BusinessName:    "Distribuidora Norte S.R.L.",
			Address:         "San Martin 456, Rosario",
			ContactEmail:    "admin@disnorte.com.ar",
			AdhesionDaysAgo: 75,
			Transfers: []seedTransfer{
				{Amount: decimal.NewFromFloat(42000.00), DebitAccount: "2020304050", CreditAccount: "6070809010", Status: "COMPLETED", Description: "Compra de mercaderia", DaysAgo: 40},
				{Amount: decimal.NewFromFloat(1300.75), DebitAccount: "2020304050", CreditAccount: "1234598760", Status: "FAILED", Description: "Servicios", DaysAgo: 12},
			},
		},
		{
			CUIT:            "33-98765432-0",
			BusinessName:    "Agro Pampa S.A.",
			Address:         "Ruta 5 km 120, La Pampa",
			ContactEmail:    "info@agropampa.com.ar",
			AdhesionDaysAgo: 150,
			Transfers:       nil,
		},
	}
}
