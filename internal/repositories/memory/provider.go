package memory

import (
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_sim/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// NewRepositoryProvider creates in-memory repositories for a fresh store.
func NewRepositoryProvider(startingBalance decimal.Decimal, products []domain.Product) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BillRepo:     NewBillRepository(),
		LoanRepo:     NewLoanRepository(),
		WalletRepo:   NewWalletRepository(startingBalance),
		StateRepo:    NewSimStateRepository(),
		ProductRepo:  NewProductRepository(products),
		EmployeeRepo: NewEmployeeRepository(),
	}
}
