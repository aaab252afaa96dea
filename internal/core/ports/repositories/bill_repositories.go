package repositories

import (
	"context"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
)

// BillReader defines read operations for the bill ledger
type BillReader interface {
	// FindBillByID retrieves a bill by its ID.
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// ListBills retrieves every bill in the ledger ordered by issue day.
	ListBills(ctx context.Context) ([]domain.Bill, error)
}

// BillWriter defines write operations for the bill ledger
type BillWriter interface {
	// SaveBill persists a new bill.
	SaveBill(ctx context.Context, bill domain.Bill) error

	// UpdateBill persists changes to an existing bill.
	UpdateBill(ctx context.Context, bill domain.Bill) error

	// ApplyBillChanges updates and removes bills in one atomic step.
	ApplyBillChanges(ctx context.Context, updated []domain.Bill, removedIDs []string) error
}

// BillRepositoryFacade combines all bill-related repository interfaces
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}
