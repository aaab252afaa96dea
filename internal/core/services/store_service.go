package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_sim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_sim/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type storeService struct {
	BaseService
	stateRepo      portsrepo.SimStateRepository
	wallet         portssvc.WalletSvc
	billing        portssvc.BillReaderSvc
	loans          portssvc.LoanSvc
	staff          portssvc.StaffSvc
	expansionPrice decimal.Decimal
}

// NewStoreService creates the store overview and expansion service.
// Each expansion level costs expansionPrice times the level reached.
func NewStoreService(
	stateRepo portsrepo.SimStateRepository,
	wallet portssvc.WalletSvc,
	billing portssvc.BillReaderSvc,
	loans portssvc.LoanSvc,
	staff portssvc.StaffSvc,
	expansionPrice decimal.Decimal,
) portssvc.StoreSvc {
	return &storeService{
		stateRepo:      stateRepo,
		wallet:         wallet,
		billing:        billing,
		loans:          loans,
		staff:          staff,
		expansionPrice: expansionPrice,
	}
}

var _ portssvc.StoreSvc = (*storeService)(nil)

func (s *storeService) nextExpansionPrice(level int) decimal.Decimal {
	return s.expansionPrice.Mul(decimal.NewFromInt(int64(level + 1)))
}

func (s *storeService) Status(ctx context.Context) (*domain.StoreStatus, error) {
	day, err := s.stateRepo.GetCurrentDay(ctx)
	if err != nil {
		return nil, err
	}
	level, err := s.stateRepo.GetExpansionLevel(ctx)
	if err != nil {
		return nil, err
	}
	balance, err := s.wallet.Balance(ctx)
	if err != nil {
		return nil, err
	}
	bills, err := s.billing.ListBills(ctx)
	if err != nil {
		return nil, err
	}
	totalDue, err := s.billing.TotalDue(ctx, day)
	if err != nil {
		return nil, err
	}
	loans, err := s.loans.ListLoans(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := s.staff.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.StoreStatus{
		Day:            day,
		Balance:        balance,
		ExpansionLevel: level,
		NextExpansion:  s.nextExpansionPrice(level),
		ActiveBills:    len(bills),
		TotalDue:       totalDue,
		ActiveLoans:    len(loans),
		Cashiers:       len(employees),
	}, nil
}

// Expand buys the next expansion level. Rent and electricity scale with the level.
func (s *storeService) Expand(ctx context.Context) (*domain.StoreStatus, error) {
	level, err := s.stateRepo.GetExpansionLevel(ctx)
	if err != nil {
		return nil, err
	}
	price := s.nextExpansionPrice(level)
	if _, err := s.wallet.TryDebit(ctx, price, "store expansion"); err != nil {
		return nil, err
	}
	if err := s.stateRepo.SaveExpansionLevel(ctx, level+1); err != nil {
		s.LogError(ctx, err, "Failed to save expansion level", slog.Int("level", level+1))
		return nil, fmt.Errorf("failed to save expansion level: %w", err)
	}
	s.LogInfo(ctx, "Store expanded", slog.Int("level", level+1), slog.String("price", price.String()))
	return s.Status(ctx)
}
