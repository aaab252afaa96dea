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

// BillRepository keeps the ledger in issue order.
type BillRepository struct {
	mu    sync.RWMutex
	bills []domain.Bill
}

func NewBillRepository() *BillRepository {
	return &BillRepository{}
}

var _ portsrepo.BillRepositoryFacade = (*BillRepository)(nil)

func (r *BillRepository) indexOf(billID string) int {
	return slices.IndexFunc(r.bills, func(b domain.Bill) bool { return b.BillID == billID })
}

func (r *BillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(billID)
	if i < 0 {
		return nil, nil
	}
	bill := r.bills[i]
	return &bill, nil
}

func (r *BillRepository) ListBills(ctx context.Context) ([]domain.Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.bills), nil
}

func (r *BillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(bill.BillID) >= 0 {
		return fmt.Errorf("%w: bill %s", apperrors.ErrDuplicate, bill.BillID)
	}
	r.bills = append(r.bills, bill)
	return nil
}

func (r *BillRepository) UpdateBill(ctx context.Context, bill domain.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(bill.BillID)
	if i < 0 {
		return fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, bill.BillID)
	}
	r.bills[i] = bill
	return nil
}

func (r *BillRepository) ApplyBillChanges(ctx context.Context, updated []domain.Bill, removedIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// validate first so a failed call changes nothing
	for _, b := range updated {
		if r.indexOf(b.BillID) < 0 {
			return fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, b.BillID)
		}
	}
	for _, b := range updated {
		r.bills[r.indexOf(b.BillID)] = b
	}
	r.bills = slices.DeleteFunc(r.bills, func(b domain.Bill) bool {
		return slices.Contains(removedIDs, b.BillID)
	})
	return nil
}
