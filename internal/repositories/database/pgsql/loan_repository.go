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

type PgxLoanRepository struct {
	BaseRepository
}

// newPgxLoanRepository creates a new repository for active loans.
func newPgxLoanRepository(pool *pgxpool.Pool) *PgxLoanRepository {
	return &PgxLoanRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

func (r *PgxLoanRepository) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	query := `
		SELECT loan_id, name, principal, interest_rate, total_payments, payment_interval,
			payments_made, start_day, late_payment_fee, created_at, last_updated_at
		FROM loans
		ORDER BY start_day, created_at;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	modelLoans, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Loan, error) {
		var m models.Loan
		err := row.Scan(
			&m.LoanID,
			&m.Name,
			&m.Principal,
			&m.InterestRate,
			&m.TotalPayments,
			&m.PaymentInterval,
			&m.PaymentsMade,
			&m.StartDay,
			&m.LatePaymentFee,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan loans: %w", err)
	}

	loans := make([]domain.Loan, len(modelLoans))
	for i, m := range modelLoans {
		loans[i] = mapping.ToDomainLoan(m)
	}
	return loans, nil
}

func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	m := mapping.ToModelLoan(loan)
	query := `
		INSERT INTO loans (loan_id, name, principal, interest_rate, total_payments, payment_interval,
			payments_made, start_day, late_payment_fee, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LoanID, m.Name, m.Principal, m.InterestRate, m.TotalPayments, m.PaymentInterval,
		m.PaymentsMade, m.StartDay, m.LatePaymentFee, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: loan %s", apperrors.ErrDuplicate, m.LoanID)
		}
		return fmt.Errorf("failed to save loan %s: %w", m.LoanID, err)
	}
	return nil
}

func (r *PgxLoanRepository) UpdateLoan(ctx context.Context, loan domain.Loan) error {
	m := mapping.ToModelLoan(loan)
	query := `UPDATE loans SET payments_made = $2, last_updated_at = $3 WHERE loan_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, m.LoanID, m.PaymentsMade, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update loan %s: %w", m.LoanID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: loan %s", apperrors.ErrNotFound, m.LoanID)
	}
	return nil
}

func (r *PgxLoanRepository) DeleteLoan(ctx context.Context, loanID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM loans WHERE loan_id = $1;`, loanID)
	if err != nil {
		return fmt.Errorf("failed to delete loan %s: %w", loanID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: loan %s", apperrors.ErrNotFound, loanID)
	}
	return nil
}
