package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledger-ar/company_transfers_app/internal/apperrors"
	"github.com/ledger-ar/company_transfers_app/internal/core/domain"
	portsrepo "github.com/ledger-ar/company_transfers_app/internal/core/ports/repositories"
	"github.com/ledger-ar/company_transfers_app/internal/models"
	"github.com/ledger-ar/company_transfers_app/internal/utils/mapping"
)

type PgxCompanyRepository struct {
	db *pgxpool.Pool
}

func newPgxCompanyRepository(db *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{db: db}
}

// Ensure PgxCompanyRepository implements portsrepo.CompanyRepositoryFacade
var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companyColumns = `
	id, uuid, cuit, business_name, adhesion_date, address, contact_email,
	contact_phone, is_active, created_at, updated_at, deleted_at`

// scanCompany scans one company row, mapping nullable text columns to "".
func scanCompany(row pgx.Row) (models.Company, error) {
	var m models.Company
	var address, contactEmail, contactPhone sql.NullString
	err := row.Scan(
		&m.ID,
		&m.UUID,
		&m.CUIT,
		&m.BusinessName,
		&m.AdhesionDate,
		&address,
		&contactEmail,
		&contactPhone,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeletedAt,
	)
	if err != nil {
		return models.Company{}, err
	}
	m.Address = address.String
	m.ContactEmail = contactEmail.String
	m.ContactPhone = contactPhone.String
	return m, nil
}

// companyIDPredicate returns the WHERE fragment for a tagged identifier. The
// fragment is a fixed string; only the value travels as a bind parameter.
func companyIDPredicate(id domain.EntityID) (string, any) {
	if id.Kind == domain.IDNumeric {
		return "id = $1", id.Numeric
	}
	return "uuid = $1", id.UUID
}

func (r *PgxCompanyRepository) FindByID(ctx context.Context, id domain.EntityID) (*domain.Company, error) {
	predicate, arg := companyIDPredicate(id)
	query := `SELECT ` + companyColumns + ` FROM company WHERE deleted_at IS NULL AND ` + predicate + `;`

	m, err := scanCompany(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	company := mapping.ToDomainCompany(m)
	return &company, nil
}

func (r *PgxCompanyRepository) FindByCUIT(ctx context.Context, uow portsrepo.UnitOfWork, cuit string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM company WHERE deleted_at IS NULL AND cuit = $1;`

	m, err := scanCompany(querierFor(r.db, uow).QueryRow(ctx, query, cuit))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by CUIT: %w", err)
	}

	company := mapping.ToDomainCompany(m)
	return &company, nil
}

func (r *PgxCompanyRepository) ListCompanies(ctx context.Context, limit, offset int, includeDeleted bool) ([]domain.Company, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + companyColumns + ` FROM company`
	if !includeDeleted {
		query += ` WHERE deleted_at IS NULL`
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2;`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	return collectCompanies(rows)
}

func (r *PgxCompanyRepository) CountCompanies(ctx context.Context, includeDeleted bool) (int64, error) {
	query := `SELECT COUNT(*) FROM company`
	if !includeDeleted {
		query += ` WHERE deleted_at IS NULL`
	}

	var count int64
	if err := r.db.QueryRow(ctx, query+`;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count companies: %w", err)
	}
	return count, nil
}

func (r *PgxCompanyRepository) FindAdheringBetween(ctx context.Context, from, to time.Time) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + `
		FROM company
		WHERE deleted_at IS NULL
		  AND is_active
		  AND adhesion_date >= $1
		  AND adhesion_date < $2
		ORDER BY adhesion_date DESC;`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies by adhesion window: %w", err)
	}
	defer rows.Close()

	return collectCompanies(rows)
}

func (r *PgxCompanyRepository) FindByEntityIDs(ctx context.Context, numericIDs []int64, uuids []string) ([]domain.Company, error) {
	if len(numericIDs) == 0 && len(uuids) == 0 {
		return []domain.Company{}, nil
	}

	query := `SELECT ` + companyColumns + `
		FROM company
		WHERE deleted_at IS NULL
		  AND (id = ANY($1) OR uuid = ANY($2::uuid[]))
		ORDER BY business_name;`

	rows, err := r.db.Query(ctx, query, numericIDs, uuids)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies by ids: %w", err)
	}
	defer rows.Close()

	return collectCompanies(rows)
}

func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, uow portsrepo.UnitOfWork, company domain.Company) (*domain.Company, error) {
	m := mapping.ToModelCompany(company)
	query := `
		INSERT INTO company (
			uuid, cuit, business_name, adhesion_date, address, contact_email,
			contact_phone, is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;`

	err := querierFor(r.db, uow).QueryRow(ctx, query,
		m.UUID,
		m.CUIT,
		m.BusinessName,
		m.AdhesionDate,
		nullIfEmpty(m.Address),
		nullIfEmpty(m.ContactEmail),
		nullIfEmpty(m.ContactPhone),
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&company.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: company with CUIT %s", apperrors.ErrDuplicate, m.CUIT)
		}
		return nil, fmt.Errorf("failed to save company: %w", err)
	}

	return &company, nil
}

func (r *PgxCompanyRepository) SoftDeleteCompany(ctx context.Context, id domain.EntityID, now time.Time) error {
	predicate, arg := companyIDPredicate(id)
	query := `UPDATE company SET deleted_at = $2, updated_at = $2, is_active = FALSE
		WHERE deleted_at IS NULL AND ` + predicate + `;`

	tag, err := r.db.Exec(ctx, query, arg, now)
	if err != nil {
		return fmt.Errorf("failed to soft delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func collectCompanies(rows pgx.Rows) ([]domain.Company, error) {
	companies := []domain.Company{}
	for rows.Next() {
		m, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, mapping.ToDomainCompany(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", rows.Err())
	}
	return companies, nil
}

// nullIfEmpty maps "" to NULL for optional text columns.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
