package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/storefront_sim/internal/apperrors"
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_sim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_sim/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrCounterAlreadyStaffed = fmt.Errorf("%w: counter already has a cashier", apperrors.ErrDuplicate)

// StaffTerms are the hiring fee and daily wage of a cashier.
type StaffTerms struct {
	HiringFee decimal.Decimal
	DailyWage decimal.Decimal
}

type staffService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepository
	dayReader    portsrepo.DayReader
	counters     portssvc.CashierStaffer
	wallet       portssvc.WalletSvc
	terms        StaffTerms
	newID        func() string
}

// NewStaffService creates the cashier hiring service.
func NewStaffService(
	employeeRepo portsrepo.EmployeeRepository,
	dayReader portsrepo.DayReader,
	counters portssvc.CashierStaffer,
	wallet portssvc.WalletSvc,
	terms StaffTerms,
) portssvc.StaffSvc {
	return &staffService{
		employeeRepo: employeeRepo,
		dayReader:    dayReader,
		counters:     counters,
		wallet:       wallet,
		terms:        terms,
		newID:        uuid.NewString,
	}
}

var _ portssvc.StaffSvc = (*staffService)(nil)

func (s *staffService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

func (s *staffService) HireCashier(ctx context.Context, counterID string) (*domain.Employee, error) {
	if !s.counters.HasCounter(counterID) {
		return nil, fmt.Errorf("%w: %s", ErrCounterNotFound, counterID)
	}
	if s.counters.IsStaffed(counterID) {
		return nil, ErrCounterAlreadyStaffed
	}
	day, err := s.dayReader.GetCurrentDay(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.wallet.TryDebit(ctx, s.terms.HiringFee, "hire cashier"); err != nil {
		return nil, err
	}
	employee := domain.Employee{
		EmployeeID: s.newID(),
		CounterID:  counterID,
		DailyWage:  s.terms.DailyWage,
		HiredDay:   day,
	}
	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee", slog.String("counter_id", counterID))
		s.refundHiringFee(ctx)
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}
	if err := s.counters.SetCashier(ctx, counterID, true); err != nil {
		if delErr := s.employeeRepo.DeleteEmployee(ctx, employee.EmployeeID); delErr != nil {
			s.LogError(ctx, delErr, "Failed to remove unassigned employee", slog.String("employee_id", employee.EmployeeID))
		}
		s.refundHiringFee(ctx)
		return nil, err
	}
	s.LogInfo(ctx, "Cashier hired", slog.String("employee_id", employee.EmployeeID), slog.String("counter_id", counterID))
	return &employee, nil
}

func (s *staffService) refundHiringFee(ctx context.Context) {
	if _, err := s.wallet.Credit(ctx, s.terms.HiringFee, "hire cashier rollback"); err != nil {
		s.LogError(ctx, err, "Failed to refund hiring fee")
	}
}

func (s *staffService) FireCashier(ctx context.Context, counterID string) error {
	employees, err := s.ListEmployees(ctx)
	if err != nil {
		return err
	}
	for _, e := range employees {
		if e.CounterID != counterID {
			continue
		}
		if err := s.employeeRepo.DeleteEmployee(ctx, e.EmployeeID); err != nil {
			return fmt.Errorf("failed to remove employee: %w", err)
		}
		s.LogInfo(ctx, "Cashier fired", slog.String("employee_id", e.EmployeeID), slog.String("counter_id", counterID))
		return s.counters.SetCashier(ctx, counterID, false)
	}
	return fmt.Errorf("%w: no cashier at counter %s", apperrors.ErrNotFound, counterID)
}

func (s *staffService) RestoreStaffing(ctx context.Context) error {
	employees, err := s.ListEmployees(ctx)
	if err != nil {
		return err
	}
	for _, e := range employees {
		if !s.counters.HasCounter(e.CounterID) {
			s.LogWarn(ctx, "Employee assigned to unknown counter", slog.String("employee_id", e.EmployeeID), slog.String("counter_id", e.CounterID))
			continue
		}
		if err := s.counters.SetCashier(ctx, e.CounterID, true); err != nil {
			return err
		}
	}
	return nil
}
