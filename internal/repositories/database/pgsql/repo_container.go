package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_sim/internal/core/ports/repositories"
	"github.com/SscSPs/storefront_sim/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BillRepo:     newPgxBillRepository(dbPool),
		LoanRepo:     newPgxLoanRepository(dbPool),
		WalletRepo:   newPgxWalletRepository(dbPool),
		StateRepo:    newPgxSimStateRepository(dbPool),
		ProductRepo:  newPgxProductRepository(dbPool),
		EmployeeRepo: newPgxEmployeeRepository(dbPool),
	}
}

// SeedStore creates the singleton rows of a fresh store and inserts catalog
// products that are not stored yet. Existing state is left untouched.
func SeedStore(ctx context.Context, dbPool *pgxpool.Pool, startingBalance decimal.Decimal, products []domain.Product) error {
	base := BaseRepository{Pool: dbPool}
	tx, err := base.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = base.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `INSERT INTO wallet (id, balance) VALUES (1, $1) ON CONFLICT (id) DO NOTHING;`, startingBalance); err != nil {
		return fmt.Errorf("failed to seed wallet: %w", err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO sim_state (id, current_day, expansion_level) VALUES (1, 1, 0) ON CONFLICT (id) DO NOTHING;`); err != nil {
		return fmt.Errorf("failed to seed sim state: %w", err)
	}
	for _, p := range products {
		m := mapping.ToModelProduct(p)
		_, err := tx.Exec(ctx,
			`INSERT INTO products (product_id, name, market_price, custom_price) VALUES ($1, $2, $3, $4) ON CONFLICT (product_id) DO NOTHING;`,
			m.ProductID, m.Name, m.MarketPrice, m.CustomPrice,
		)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", m.ProductID, err)
		}
	}
	return base.Commit(ctx, tx)
}
