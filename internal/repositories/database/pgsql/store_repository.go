package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/storefront_sim/internal/apperrors"
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_sim/internal/core/ports/repositories"
	"github.com/SscSPs/storefront_sim/internal/models"
	"github.com/SscSPs/storefront_sim/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// The wallet and sim_state tables hold a single row keyed by id = 1.

type PgxWalletRepository struct {
	BaseRepository
}

func newPgxWalletRepository(pool *pgxpool.Pool) *PgxWalletRepository {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WalletRepository = (*PgxWalletRepository)(nil)

func (r *PgxWalletRepository) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.Pool.QueryRow(ctx, `SELECT balance FROM wallet WHERE id = 1;`).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("%w: wallet not seeded", apperrors.ErrNotFound)
		}
		return decimal.Zero, fmt.Errorf("failed to read balance: %w", err)
	}
	return balance, nil
}

func (r *PgxWalletRepository) SaveBalance(ctx context.Context, balance decimal.Decimal) error {
	if _, err := r.Pool.Exec(ctx, `UPDATE wallet SET balance = $1 WHERE id = 1;`, balance); err != nil {
		return fmt.Errorf("failed to save balance: %w", err)
	}
	return nil
}

type PgxSimStateRepository struct {
	BaseRepository
}

func newPgxSimStateRepository(pool *pgxpool.Pool) *PgxSimStateRepository {
	return &PgxSimStateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SimStateRepository = (*PgxSimStateRepository)(nil)

func (r *PgxSimStateRepository) readInt(ctx context.Context, column string) (int, error) {
	var v int
	err := r.Pool.QueryRow(ctx, `SELECT `+column+` FROM sim_state WHERE id = 1;`).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: sim state not seeded", apperrors.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to read %s: %w", column, err)
	}
	return v, nil
}

func (r *PgxSimStateRepository) writeInt(ctx context.Context, column string, v int) error {
	if _, err := r.Pool.Exec(ctx, `UPDATE sim_state SET `+column+` = $1 WHERE id = 1;`, v); err != nil {
		return fmt.Errorf("failed to save %s: %w", column, err)
	}
	return nil
}

func (r *PgxSimStateRepository) GetCurrentDay(ctx context.Context) (int, error) {
	return r.readInt(ctx, "current_day")
}

func (r *PgxSimStateRepository) SaveCurrentDay(ctx context.Context, day int) error {
	return r.writeInt(ctx, "current_day", day)
}

func (r *PgxSimStateRepository) GetExpansionLevel(ctx context.Context) (int, error) {
	return r.readInt(ctx, "expansion_level")
}

func (r *PgxSimStateRepository) SaveExpansionLevel(ctx context.Context, level int) error {
	return r.writeInt(ctx, "expansion_level", level)
}

func (r *PgxSimStateRepository) GetLastIssuedDays(ctx context.Context) (map[string]int, error) {
	rows, err := r.Pool.Query(ctx, `SELECT source_key, last_day FROM issuance_marks;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query issuance marks: %w", err)
	}
	defer rows.Close()

	marks := make(map[string]int)
	for rows.Next() {
		var key string
		var day int
		if err := rows.Scan(&key, &day); err != nil {
			return nil, fmt.Errorf("failed to scan issuance mark: %w", err)
		}
		marks[key] = day
	}
	return marks, rows.Err()
}

func (r *PgxSimStateRepository) SaveLastIssuedDay(ctx context.Context, sourceKey string, day int) error {
	query := `
		INSERT INTO issuance_marks (source_key, last_day) VALUES ($1, $2)
		ON CONFLICT (source_key) DO UPDATE SET last_day = EXCLUDED.last_day;
	`
	if _, err := r.Pool.Exec(ctx, query, sourceKey, day); err != nil {
		return fmt.Errorf("failed to save issuance mark %s: %w", sourceKey, err)
	}
	return nil
}

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) *PgxProductRepository {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT product_id, name, market_price, custom_price FROM products WHERE product_id = $1;`

	var m models.Product
	err := r.Pool.QueryRow(ctx, query, productID).Scan(&m.ProductID, &m.Name, &m.MarketPrice, &m.CustomPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	product := mapping.ToDomainProduct(m)
	return &product, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.Pool.Query(ctx, `SELECT product_id, name, market_price, custom_price FROM products ORDER BY seq;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	modelProducts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Product, error) {
		var m models.Product
		err := row.Scan(&m.ProductID, &m.Name, &m.MarketPrice, &m.CustomPrice)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}

	products := make([]domain.Product, len(modelProducts))
	for i, m := range modelProducts {
		products[i] = mapping.ToDomainProduct(m)
	}
	return products, nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (product_id, name, market_price, custom_price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id) DO UPDATE SET
			name = EXCLUDED.name,
			market_price = EXCLUDED.market_price,
			custom_price = EXCLUDED.custom_price;
	`
	if _, err := r.Pool.Exec(ctx, query, m.ProductID, m.Name, m.MarketPrice, m.CustomPrice); err != nil {
		return fmt.Errorf("failed to save product %s: %w", m.ProductID, err)
	}
	return nil
}

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) *PgxEmployeeRepository {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepository = (*PgxEmployeeRepository)(nil)

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, `SELECT employee_id, counter_id, daily_wage, hired_day FROM employees ORDER BY hired_day, employee_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	modelEmployees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Employee, error) {
		var m models.Employee
		err := row.Scan(&m.EmployeeID, &m.CounterID, &m.DailyWage, &m.HiredDay)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}

	employees := make([]domain.Employee, len(modelEmployees))
	for i, m := range modelEmployees {
		employees[i] = mapping.ToDomainEmployee(m)
	}
	return employees, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `INSERT INTO employees (employee_id, counter_id, daily_wage, hired_day) VALUES ($1, $2, $3, $4);`
	if _, err := r.Pool.Exec(ctx, query, m.EmployeeID, m.CounterID, m.DailyWage, m.HiredDay); err != nil {
		return fmt.Errorf("failed to save employee %s: %w", m.EmployeeID, err)
	}
	return nil
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: employee %s", apperrors.ErrNotFound, employeeID)
	}
	return nil
}
