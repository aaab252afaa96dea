package services

import (
	"context"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletSvc defines operations on the player balance
type WalletSvc interface {
	Balance(ctx context.Context) (decimal.Decimal, error)
	Credit(ctx context.Context, amount decimal.Decimal, reason string) (decimal.Decimal, error)
	// ForceDebit deducts amount even when the balance goes negative.
	ForceDebit(ctx context.Context, amount decimal.Decimal, reason string) (decimal.Decimal, error)
	// TryDebit deducts amount only when the balance covers it.
	TryDebit(ctx context.Context, amount decimal.Decimal, reason string) (decimal.Decimal, error)
}

// BillReaderSvc defines read operations for the bill ledger
type BillReaderSvc interface {
	ListBills(ctx context.Context) ([]domain.Bill, error)
	GetBill(ctx context.Context, billID string) (*domain.Bill, error)
	// TotalDue sums what every unpaid bill would cost on day, penalties included.
	TotalDue(ctx context.Context, day int) (decimal.Decimal, error)
}

// BillWriterSvc defines write operations for the bill ledger
type BillWriterSvc interface {
	// Sweep removes bills settled on earlier passes and charges bills past their grace window.
	Sweep(ctx context.Context, day int) (*domain.SweepResult, error)
	// IssueRecurring issues the template and salary bills that fall on day.
	IssueRecurring(ctx context.Context, day int) ([]domain.Bill, error)
	IssueBill(ctx context.Context, bill domain.Bill) (*domain.Bill, error)
	PayBill(ctx context.Context, billID string) (*domain.Bill, error)
	PayAll(ctx context.Context) ([]domain.Bill, error)
}

// BillingSvcFacade combines all bill-related service interfaces
type BillingSvcFacade interface {
	BillReaderSvc
	BillWriterSvc
}

// LoanSvc defines operations for loans
type LoanSvc interface {
	ListTemplates(ctx context.Context) []domain.LoanTemplate
	ListLoans(ctx context.Context) ([]domain.Loan, error)
	TakeLoan(ctx context.Context, templateName string) (*domain.Loan, error)
	// ServiceLoans issues the repayment bills due on day.
	ServiceLoans(ctx context.Context, day int) ([]domain.Bill, error)
}

// DaySvc drives the day cycle
type DaySvc interface {
	CurrentDay(ctx context.Context) (int, error)
	AdvanceDay(ctx context.Context) (*domain.DayReport, error)
	// ProcessDay runs the ledger pass for day without moving the clock.
	ProcessDay(ctx context.Context, day int) (*domain.DayReport, error)
}
