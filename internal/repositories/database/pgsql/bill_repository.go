package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/storefront_sim/internal/apperrors"
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_sim/internal/core/ports/repositories"
	"github.com/SscSPs/storefront_sim/internal/models"
	"github.com/SscSPs/storefront_sim/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const billColumns = `bill_id, bill_type, description, issue_day, due_day, grace_period_days,
	amount, late_penalty, status, settled_day, source_id, created_at, last_updated_at`

// uniqueViolation is the postgres SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

type PgxBillRepository struct {
	BaseRepository
}

// newPgxBillRepository creates a new repository for the bill ledger.
func newPgxBillRepository(pool *pgxpool.Pool) *PgxBillRepository {
	return &PgxBillRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

func scanBill(row pgx.Row) (models.Bill, error) {
	var m models.Bill
	err := row.Scan(
		&m.BillID,
		&m.BillType,
		&m.Description,
		&m.IssueDay,
		&m.DueDay,
		&m.GracePeriodDays,
		&m.Amount,
		&m.LatePenalty,
		&m.Status,
		&m.SettledDay,
		&m.SourceID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// FindBillByID retrieves a bill by its ID. A missing bill yields (nil, nil).
func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE bill_id = $1;`

	m, err := scanBill(r.Pool.QueryRow(ctx, query, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find bill %s: %w", billID, err)
	}
	bill := mapping.ToDomainBill(m)
	return &bill, nil
}

// ListBills retrieves the whole ledger in issue order.
func (r *PgxBillRepository) ListBills(ctx context.Context) ([]domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills ORDER BY issue_day, seq;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	modelBills, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Bill, error) {
		return scanBill(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan bills: %w", err)
	}
	return mapping.ToDomainBillSlice(modelBills), nil
}

// SaveBill inserts a new bill.
func (r *PgxBillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)
	query := `INSERT INTO bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

	_, err := r.Pool.Exec(ctx, query,
		m.BillID, m.BillType, m.Description, m.IssueDay, m.DueDay, m.GracePeriodDays,
		m.Amount, m.LatePenalty, m.Status, m.SettledDay, m.SourceID, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: bill %s", apperrors.ErrDuplicate, m.BillID)
		}
		return fmt.Errorf("failed to save bill %s: %w", m.BillID, err)
	}
	return nil
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func updateBill(ctx context.Context, db execer, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)
	query := `
		UPDATE bills SET
			description = $2,
			amount = $3,
			late_penalty = $4,
			status = $5,
			settled_day = $6,
			last_updated_at = $7
		WHERE bill_id = $1;
	`
	tag, err := db.Exec(ctx, query,
		m.BillID, m.Description, m.Amount, m.LatePenalty, m.Status, m.SettledDay, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill %s: %w", m.BillID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, m.BillID)
	}
	return nil
}

// UpdateBill persists the mutable fields of an existing bill.
func (r *PgxBillRepository) UpdateBill(ctx context.Context, bill domain.Bill) error {
	return updateBill(ctx, r.Pool, bill)
}

// ApplyBillChanges updates and removes bills inside one transaction.
func (r *PgxBillRepository) ApplyBillChanges(ctx context.Context, updated []domain.Bill, removedIDs []string) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	for _, bill := range updated {
		if err = updateBill(ctx, tx, bill); err != nil {
			return err
		}
	}
	if len(removedIDs) > 0 {
		if _, err = tx.Exec(ctx, `DELETE FROM bills WHERE bill_id = ANY($1);`, removedIDs); err != nil {
			return fmt.Errorf("failed to remove settled bills: %w", err)
		}
	}
	return r.Commit(ctx, tx)
}
