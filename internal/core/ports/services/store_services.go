package services

import (
	"context"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PricingSvc defines operations on product prices
type PricingSvc interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// PriceOf is the effective price of the product.
	PriceOf(ctx context.Context, productID string) (decimal.Decimal, error)
	SetCustomPrice(ctx context.Context, productID string, price decimal.Decimal) (*domain.Product, error)
	ClearCustomPrice(ctx context.Context, productID string) (*domain.Product, error)
}

// StaffSvc defines operations for hiring cashiers
type StaffSvc interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	HireCashier(ctx context.Context, counterID string) (*domain.Employee, error)
	FireCashier(ctx context.Context, counterID string) error
	// RestoreStaffing re-applies persisted employees to the counters.
	RestoreStaffing(ctx context.Context) error
}

// StoreSvc defines store-wide operations
type StoreSvc interface {
	Status(ctx context.Context) (*domain.StoreStatus, error)
	Expand(ctx context.Context) (*domain.StoreStatus, error)
}
