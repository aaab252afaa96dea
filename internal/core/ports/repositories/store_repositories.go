package repositories

import (
	"context"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletRepository persists the player balance.
type WalletRepository interface {
	GetBalance(ctx context.Context) (decimal.Decimal, error)
	SaveBalance(ctx context.Context, balance decimal.Decimal) error
}

// DayReader reads the current in-game day.
type DayReader interface {
	GetCurrentDay(ctx context.Context) (int, error)
}

// ExpansionLevelReader reads the store expansion level.
type ExpansionLevelReader interface {
	GetExpansionLevel(ctx context.Context) (int, error)
}

// SimStateRepository persists the scalar simulation state: the current day,
// the store expansion level and the last day each recurring bill source was issued.
type SimStateRepository interface {
	DayReader
	ExpansionLevelReader

	SaveCurrentDay(ctx context.Context, day int) error
	SaveExpansionLevel(ctx context.Context, level int) error

	// GetLastIssuedDays maps a recurring source key to the last day it issued a bill.
	GetLastIssuedDays(ctx context.Context) (map[string]int, error)
	SaveLastIssuedDay(ctx context.Context, sourceKey string, day int) error
}

// ProductRepository persists the product catalog.
type ProductRepository interface {
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// SaveProduct inserts or replaces a product.
	SaveProduct(ctx context.Context, product domain.Product) error
}

// EmployeeRepository persists hired cashiers.
type EmployeeRepository interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	DeleteEmployee(ctx context.Context, employeeID string) error
}
