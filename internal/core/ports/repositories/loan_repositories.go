package repositories

import (
	"context"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
)

// LoanReader defines read operations for active loans
type LoanReader interface {
	// ListLoans retrieves all active loans ordered by start day.
	ListLoans(ctx context.Context) ([]domain.Loan, error)
}

// LoanWriter defines write operations for active loans
type LoanWriter interface {
	SaveLoan(ctx context.Context, loan domain.Loan) error
	UpdateLoan(ctx context.Context, loan domain.Loan) error
	DeleteLoan(ctx context.Context, loanID string) error
}

// LoanRepositoryFacade combines all loan-related repository interfaces
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
}
