package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/SscSPs/storefront_sim/internal/core/ports"
	portsrepo "github.com/SscSPs/storefront_sim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_sim/internal/core/ports/services"
)

type dayService struct {
	BaseService
	stateRepo portsrepo.SimStateRepository
	billing   portssvc.BillingSvcFacade
	loans     portssvc.LoanSvc
	events    ports.EventPublisher
}

// NewDayService creates the day cycle driver.
func NewDayService(
	stateRepo portsrepo.SimStateRepository,
	billing portssvc.BillingSvcFacade,
	loans portssvc.LoanSvc,
	events ports.EventPublisher,
) portssvc.DaySvc {
	return &dayService{stateRepo: stateRepo, billing: billing, loans: loans, events: events}
}

var _ portssvc.DaySvc = (*dayService)(nil)

func (s *dayService) CurrentDay(ctx context.Context) (int, error) {
	day, err := s.stateRepo.GetCurrentDay(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read current day: %w", err)
	}
	return day, nil
}

func (s *dayService) AdvanceDay(ctx context.Context) (*domain.DayReport, error) {
	day, err := s.CurrentDay(ctx)
	if err != nil {
		return nil, err
	}
	next := day + 1
	// the day only moves once its pass succeeded; a retry reruns the same day
	report, err := s.ProcessDay(ctx, next)
	if err != nil {
		return nil, err
	}
	if err := s.stateRepo.SaveCurrentDay(ctx, next); err != nil {
		s.LogError(ctx, err, "Failed to save day", slog.Int("day", next))
		return nil, fmt.Errorf("failed to save day: %w", err)
	}
	s.events.Publish(domain.DayAdvanced{Day: next})
	return report, nil
}

// ProcessDay sweeps the ledger, issues recurring bills and services loans, in
// that order. Running it again for the same day charges and issues nothing new.
func (s *dayService) ProcessDay(ctx context.Context, day int) (*domain.DayReport, error) {
	report := &domain.DayReport{Day: day}

	sweep, err := s.billing.Sweep(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("ledger sweep failed: %w", err)
	}
	report.Removed = sweep.Removed
	report.Charged = sweep.Charged

	if report.Issued, err = s.billing.IssueRecurring(ctx, day); err != nil {
		return nil, fmt.Errorf("recurring issuance failed: %w", err)
	}

	if report.Repayments, err = s.loans.ServiceLoans(ctx, day); err != nil {
		return nil, fmt.Errorf("loan servicing failed: %w", err)
	}

	bills, err := s.billing.ListBills(ctx)
	if err != nil {
		return nil, err
	}
	s.events.Publish(domain.BillsUpdated{Day: day, ActiveBills: len(bills)})
	if len(report.Repayments) > 0 {
		loans, err := s.loans.ListLoans(ctx)
		if err != nil {
			return nil, err
		}
		s.events.Publish(domain.LoansUpdated{ActiveLoans: len(loans)})
	}

	s.LogInfo(ctx, "Day processed",
		slog.Int("day", day),
		slog.Int("removed", len(report.Removed)),
		slog.Int("charged", len(report.Charged)),
		slog.Int("issued", len(report.Issued)),
		slog.Int("repayments", len(report.Repayments)))
	return report, nil
}
