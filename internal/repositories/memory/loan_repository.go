package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/storefront_sim/internal/apperrors"
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_sim/internal/core/ports/repositories"
)

// LoanRepository keeps active loans in the order they were taken.
type LoanRepository struct {
	mu    sync.RWMutex
	loans []domain.Loan
}

func NewLoanRepository() *LoanRepository {
	return &LoanRepository{}
}

var _ portsrepo.LoanRepositoryFacade = (*LoanRepository)(nil)

func (r *LoanRepository) indexOf(loanID string) int {
	return slices.IndexFunc(r.loans, func(l domain.Loan) bool { return l.LoanID == loanID })
}

func (r *LoanRepository) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.loans), nil
}

func (r *LoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(loan.LoanID) >= 0 {
		return fmt.Errorf("%w: loan %s", apperrors.ErrDuplicate, loan.LoanID)
	}
	r.loans = append(r.loans, loan)
	return nil
}

func (r *LoanRepository) UpdateLoan(ctx context.Context, loan domain.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(loan.LoanID)
	if i < 0 {
		return fmt.Errorf("%w: loan %s", apperrors.ErrNotFound, loan.LoanID)
	}
	r.loans[i] = loan
	return nil
}

func (r *LoanRepository) DeleteLoan(ctx context.Context, loanID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(loanID)
	if i < 0 {
		return fmt.Errorf("%w: loan %s", apperrors.ErrNotFound, loanID)
	}
	r.loans = slices.Delete(r.loans, i, i+1)
	return nil
}
