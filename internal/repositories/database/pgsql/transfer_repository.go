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

type PgxTransferRepository struct {
	db *pgxpool.Pool
}

func newPgxTransferRepository(db *pgxpool.Pool) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{db: db}
}

// Ensure PgxTransferRepository implements portsrepo.TransferRepositoryFacade
var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

// transferSelect joins the owning company so every read returns the transfer
// together with its company reference.
const transferSelect = `
	SELECT
		t.id, t.uuid, t.amount, t.company_id, t.debit_account, t.credit_account,
		t.transfer_date, t.status, t.description, t.reference_id,
		t.processed_date, t.currency, t.created_at, t.updated_at, t.deleted_at,
		c.id, c.uuid, c.cuit, c.business_name, c.adhesion_date, c.address,
		c.contact_email, c.contact_phone, c.is_active, c.created_at,
		c.updated_at, c.deleted_at
	FROM transfer t
	JOIN company c ON c.id = t.company_id`

// scanTransfer scans one joined transfer row, mapping nullable text columns
// to "".
func scanTransfer(row pgx.Row) (models.Transfer, models.Company, error) {
	var t models.Transfer
	var c models.Company
	var description, referenceID, currency sql.NullString
	var address, contactEmail, contactPhone sql.NullString
	err := row.Scan(
		&t.ID,
		&t.UUID,
		&t.Amount,
		&t.CompanyID,
		&t.DebitAccount,
		&t.CreditAccount,
		&t.TransferDate,
		&t.Status,
		&description,
		&referenceID,
		&t.ProcessedDate,
		&currency,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.DeletedAt,
		&c.ID,
		&c.UUID,
		&c.CUIT,
		&c.BusinessName,
		&c.AdhesionDate,
		&address,
		&contactEmail,
		&contactPhone,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.DeletedAt,
	)
	if err != nil {
		return models.Transfer{}, models.Company{}, err
	}
	t.Description = description.String
	t.ReferenceID = referenceID.String
	t.Currency = currency.String
	c.Address = address.String
	c.ContactEmail = contactEmail.String
	c.ContactPhone = contactPhone.String
	return t, c, nil
}

// transferIDPredicate returns the WHERE fragment for a tagged identifier.
func transferIDPredicate(id domain.EntityID) (string, any) {
	if id.Kind == domain.IDNumeric {
		return "t.id = $1", id.Numeric
	}
	return "t.uuid = $1", id.UUID
}

func (r *PgxTransferRepository) FindByID(ctx context.Context, id domain.EntityID) (*domain.Transfer, error) {
	predicate, arg := transferIDPredicate(id)
	query := transferSelect + ` WHERE t.deleted_at IS NULL AND ` + predicate + `;`

	t, c, err := scanTransfer(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transfer: %w", err)
	}

	transfer := mapping.ToDomainTransfer(t, c)
	return &transfer, nil
}

func (r *PgxTransferRepository) ListTransfers(ctx context.Context, limit, offset int, includeDeleted bool) ([]domain.Transfer, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	query := transferSelect
	if !includeDeleted {
		query += ` WHERE t.deleted_at IS NULL`
	}
	query += ` ORDER BY t.created_at DESC LIMIT $1 OFFSET $2;`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	defer rows.Close()

	return collectTransfers(rows)
}

func (r *PgxTransferRepository) CountTransfers(ctx context.Context, includeDeleted bool) (int64, error) {
	query := `SELECT COUNT(*) FROM transfer`
	if !includeDeleted {
		query += ` WHERE deleted_at IS NULL`
	}

	var count int64
	if err := r.db.QueryRow(ctx, query+`;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transfers: %w", err)
	}
	return count, nil
}

func (r *PgxTransferRepository) ListByCompany(ctx context.Context, companyID int64) ([]domain.Transfer, error) {
	query := transferSelect + `
		WHERE t.deleted_at IS NULL AND t.company_id = $1
		ORDER BY t.transfer_date DESC;`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers by company: %w", err)
	}
	defer rows.Close()

	return collectTransfers(rows)
}

func (r *PgxTransferRepository) FindCompanyUUIDsWithTransfersBetween(ctx context.Context, from, to time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT c.uuid
		FROM transfer t
		JOIN company c ON c.id = t.company_id
		WHERE t.deleted_at IS NULL
		  AND c.deleted_at IS NULL
		  AND t.transfer_date >= $1
		  AND t.transfer_date < $2;`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies with transfers: %w", err)
	}
	defer rows.Close()

	uuids := []string{}
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("failed to scan company uuid: %w", err)
		}
		uuids = append(uuids, u)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating company uuids: %w", rows.Err())
	}
	return uuids, nil
}

func (r *PgxTransferRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]domain.Transfer, error) {
	query := transferSelect + `
		WHERE t.deleted_at IS NULL
		  AND t.transfer_date >= $1
		  AND t.transfer_date <= $2
		ORDER BY t.transfer_date DESC;`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers by date range: %w", err)
	}
	defer rows.Close()

	return collectTransfers(rows)
}

func (r *PgxTransferRepository) FindByStatus(ctx context.Context, status domain.TransferStatus) ([]domain.Transfer, error) {
	query := transferSelect + `
		WHERE t.deleted_at IS NULL AND t.status = $1
		ORDER BY t.transfer_date DESC;`

	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers by status: %w", err)
	}
	defer rows.Close()

	return collectTransfers(rows)
}

func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, uow portsrepo.UnitOfWork, transfer domain.Transfer) (*domain.Transfer, error) {
	m := mapping.ToModelTransfer(transfer)
	query := `
		INSERT INTO transfer (
			uuid, amount, company_id, debit_account, credit_account,
			transfer_date, status, description, reference_id, processed_date,
			currency, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id;`

	err := querierFor(r.db, uow).QueryRow(ctx, query,
		m.UUID,
		m.Amount,
		m.CompanyID,
		m.DebitAccount,
		m.CreditAccount,
		m.TransferDate,
		m.Status,
		nullIfEmpty(m.Description),
		nullIfEmpty(m.ReferenceID),
		m.ProcessedDate,
		nullIfEmpty(m.Currency),
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&transfer.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			// The owning company row disappeared under the insert.
			return nil, fmt.Errorf("%w: company %d", apperrors.ErrNotFound, m.CompanyID)
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: transfer %s", apperrors.ErrDuplicate, m.UUID)
		}
		return nil, fmt.Errorf("failed to save transfer: %w", err)
	}

	return &transfer, nil
}

func (r *PgxTransferRepository) UpdateStatus(ctx context.Context, transfer domain.Transfer) error {
	query := `
		UPDATE transfer
		SET status = $1, processed_date = $2, updated_at = $3
		WHERE deleted_at IS NULL AND id = $4;`

	tag, err := r.db.Exec(ctx, query,
		string(transfer.Status),
		transfer.ProcessedDate,
		transfer.UpdatedAt,
		transfer.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transfer status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func collectTransfers(rows pgx.Rows) ([]domain.Transfer, error) {
	transfers := []domain.Transfer{}
	for rows.Next() {
		t, c, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer row: %w", err)
		}
		transfers = append(transfers, mapping.ToDomainTransfer(t, c))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transfer rows: %w", rows.Err())
	}
	return transfers, nil
}
