package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/SscSPs/storefront_sim/internal/apperrors"
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_sim/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// WalletRepository holds the player balance.
type WalletRepository struct {
	mu      sync.RWMutex
	balance decimal.Decimal
}

func NewWalletRepository(startingBalance decimal.Decimal) *WalletRepository {
	return &WalletRepository{balance: startingBalance}
}

var _ portsrepo.WalletRepository = (*WalletRepository)(nil)

func (r *WalletRepository) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balance, nil
}

func (r *WalletRepository) SaveBalance(ctx context.Context, balance decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balance = balance
	return nil
}

// SimStateRepository holds the day counter, expansion level and issuance marks.
type SimStateRepository struct {
	mu         sync.RWMutex
	day        int
	level      int
	lastIssued map[string]int
}

// NewSimStateRepository starts a store on day 1 at expansion level 0.
func NewSimStateRepository() *SimStateRepository {
	return &SimStateRepository{day: 1, lastIssued: make(map[string]int)}
}

var _ portsrepo.SimStateRepository = (*SimStateRepository)(nil)

func (r *SimStateRepository) GetCurrentDay(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.day, nil
}

func (r *SimStateRepository) SaveCurrentDay(ctx context.Context, day int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.day = day
	return nil
}

func (r *SimStateRepository) GetExpansionLevel(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.level, nil
}

func (r *SimStateRepository) SaveExpansionLevel(ctx context.Context, level int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.level = level
	return nil
}

func (r *SimStateRepository) GetLastIssuedDays(ctx context.Context) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.lastIssued), nil
}

func (r *SimStateRepository) SaveLastIssuedDay(ctx context.Context, sourceKey string, day int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastIssued[sourceKey] = day
	return nil
}

// ProductRepository holds the catalog in insertion order.
type ProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewProductRepository(products []domain.Product) *ProductRepository {
	return &ProductRepository{products: slices.Clone(products)}
}

var _ portsrepo.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ProductID == productID {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *ProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.products), nil
}

func (r *ProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ProductID == product.ProductID {
			r.products[i] = product
			return nil
		}
	}
	r.products = append(r.products, product)
	return nil
}

// EmployeeRepository holds hired cashiers.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees []domain.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{}
}

var _ portsrepo.EmployeeRepository = (*EmployeeRepository)(nil)

func (r *EmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.employees), nil
}

func (r *EmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees = append(r.employees, employee)
	return nil
}

func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.IndexFunc(r.employees, func(e domain.Employee) bool { return e.EmployeeID == employeeID })
	if i < 0 {
		return fmt.Errorf("%w: employee %s", apperrors.ErrNotFound, employeeID)
	}
	r.employees = slices.Delete(r.employees, i, i+1)
	return nil
}
