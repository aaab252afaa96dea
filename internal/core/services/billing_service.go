package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/storefront_sim/internal/apperrors"
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/SscSPs/storefront_sim/internal/core/ports"
	portsrepo "github.com/SscSPs/storefront_sim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_sim/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrBillAlreadySettled is returned when paying a bill that is no longer unpaid.
var ErrBillAlreadySettled = fmt.Errorf("%w: %w", apperrors.ErrInvalidState, domain.ErrBillSettled)

// SalaryTerms are the due offset, grace window and late penalty of salary bills.
type SalaryTerms struct {
	DueOffsetDays   int
	GracePeriodDays int
	LatePenalty     decimal.Decimal
}

// DefaultSalaryTerms make wages due the day after issue.
var DefaultSalaryTerms = SalaryTerms{DueOffsetDays: 1, GracePeriodDays: 2, LatePenalty: decimal.NewFromInt(10)}

// PayrollSource lists the employees that draw a daily wage.
type PayrollSource interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

type billingService struct {
	BaseService
	billRepo  portsrepo.BillRepositoryFacade
	stateRepo portsrepo.SimStateRepository
	wallet    portssvc.WalletSvc
	events    ports.EventPublisher
	payroll   PayrollSource
	templates []domain.BillTemplate
	salary    SalaryTerms
	newID     func() string
	now       func() time.Time
}

// BillingOption configures the billing service
type BillingOption func(*billingService)

// WithBillTemplates replaces the default recurring bill templates.
func WithBillTemplates(templates []domain.BillTemplate) BillingOption {
	return func(s *billingService) {
		s.templates = templates
	}
}

// WithPayroll enables daily salary bills for the employees of source.
func WithPayroll(source PayrollSource, terms SalaryTerms) BillingOption {
	return func(s *billingService) {
		s.payroll = source
		s.salary = terms
	}
}

// WithBillIDGenerator replaces the bill id generator.
func WithBillIDGenerator(newID func() string) BillingOption {
	return func(s *billingService) {
		s.newID = newID
	}
}

// NewBillingService creates the billing ledger service.
func NewBillingService(
	billRepo portsrepo.BillRepositoryFacade,
	stateRepo portsrepo.SimStateRepository,
	wallet portssvc.WalletSvc,
	events ports.EventPublisher,
	options ...BillingOption,
) portssvc.BillingSvcFacade {
	svc := &billingService{
		billRepo:  billRepo,
		stateRepo: stateRepo,
		wallet:    wallet,
		events:    events,
		templates: domain.DefaultBillTemplates(),
		salary:    DefaultSalaryTerms,
		newID:     uuid.NewString,
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BillingSvcFacade = (*billingService)(nil)

func (s *billingService) ListBills(ctx context.Context) ([]domain.Bill, error) {
	bills, err := s.billRepo.ListBills(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	if bills == nil {
		return []domain.Bill{}, nil
	}
	return bills, nil
}

func (s *billingService) GetBill(ctx context.Context, billID string) (*domain.Bill, error) {
	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, billID)
	}
	return bill, nil
}

func (s *billingService) TotalDue(ctx context.Context, day int) (decimal.Decimal, error) {
	bills, err := s.ListBills(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, b := range bills {
		if b.Status == domain.BillUnpaid {
			total = total.Add(b.TotalAmountDue(day))
		}
	}
	return total, nil
}

// Sweep removes bills settled before day and force-charges the overdue ones.
// Charges are refunded when the ledger cannot be saved, so a retry charges
// each bill exactly once.
func (s *billingService) Sweep(ctx context.Context, day int) (*domain.SweepResult, error) {
	bills, err := s.ListBills(ctx)
	if err != nil {
		return nil, err
	}

	result := &domain.SweepResult{}
	removedIDs := make([]string, 0)
	debited := decimal.Zero
	for _, b := range bills {
		switch {
		case b.IsSettled():
			removedIDs = append(removedIDs, b.BillID)
			result.Removed = append(result.Removed, b)
		case b.IsOverdue(day):
			if _, err := s.wallet.ForceDebit(ctx, b.ChargeAmount(), "overdue "+string(b.Type)); err != nil {
				s.LogError(ctx, err, "Failed to charge overdue bill", slog.String("bill_id", b.BillID))
				s.refund(ctx, debited, "ledger sweep rollback")
				return nil, err
			}
			debited = debited.Add(b.ChargeAmount())
			if err := b.MarkCharged(day); err != nil {
				s.refund(ctx, debited, "ledger sweep rollback")
				return nil, err
			}
			b.Touch(s.now())
			result.Charged = append(result.Charged, b)
			s.LogInfo(ctx, "Overdue bill charged",
				slog.String("bill_id", b.BillID),
				slog.String("type", string(b.Type)),
				slog.String("amount", b.ChargeAmount().String()),
				slog.Int("day", day))
		}
	}

	if len(result.Charged) == 0 && len(removedIDs) == 0 {
		return result, nil
	}
	if err := s.billRepo.ApplyBillChanges(ctx, result.Charged, removedIDs); err != nil {
		s.LogError(ctx, err, "Failed to persist ledger sweep", slog.Int("day", day))
		s.refund(ctx, debited, "ledger sweep rollback")
		return nil, fmt.Errorf("failed to persist ledger sweep: %w", err)
	}
	return result, nil
}

// refund credits back money taken for a ledger change that could not be saved.
func (s *billingService) refund(ctx context.Context, amount decimal.Decimal, reason string) {
	if !amount.IsPositive() {
		return
	}
	if _, err := s.wallet.Credit(ctx, amount, reason); err != nil {
		s.LogError(ctx, err, "Failed to refund", slog.String("reason", reason), slog.String("amount", amount.String()))
	}
}

func (s *billingService) IssueRecurring(ctx context.Context, day int) ([]domain.Bill, error) {
	lastIssued, err := s.stateRepo.GetLastIssuedDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read issuance state: %w", err)
	}
	level, err := s.stateRepo.GetExpansionLevel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read expansion level: %w", err)
	}

	issued := make([]domain.Bill, 0)
	for _, t := range s.templates {
		key := "template:" + string(t.Type)
		if !t.IsIssueDay(day) || lastIssued[key] == day {
			continue
		}
		bill, err := s.issue(ctx, t.NewBill(s.newID(), day, level), key)
		if err != nil {
			return issued, err
		}
		issued = append(issued, *bill)
	}

	if s.payroll == nil {
		return issued, nil
	}
	employees, err := s.payroll.ListEmployees(ctx)
	if err != nil {
		return issued, fmt.Errorf("failed to list payroll: %w", err)
	}
	for _, e := range employees {
		key := "salary:" + e.EmployeeID
		if lastIssued[key] == day || e.HiredDay >= day {
			continue
		}
		bill := domain.Bill{
			BillID:          s.newID(),
			Type:            domain.BillSalary,
			Description:     "Cashier wage, " + e.CounterID,
			IssueDay:        day,
			DueDay:          day + s.salary.DueOffsetDays,
			GracePeriodDays: s.salary.GracePeriodDays,
			Amount:          e.DailyWage,
			LatePenalty:     s.salary.LatePenalty,
			Status:          domain.BillUnpaid,
			SourceID:        e.EmployeeID,
		}
		saved, err := s.issue(ctx, bill, key)
		if err != nil {
			return issued, err
		}
		issued = append(issued, *saved)
	}
	return issued, nil
}

func (s *billingService) issue(ctx context.Context, bill domain.Bill, sourceKey string) (*domain.Bill, error) {
	saved, err := s.IssueBill(ctx, bill)
	if err != nil {
		return nil, err
	}
	if err := s.stateRepo.SaveLastIssuedDay(ctx, sourceKey, bill.IssueDay); err != nil {
		return nil, fmt.Errorf("failed to record issuance: %w", err)
	}
	return saved, nil
}

func (s *billingService) IssueBill(ctx context.Context, bill domain.Bill) (*domain.Bill, error) {
	if err := bill.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	if bill.BillID == "" {
		bill.BillID = s.newID()
	}
	bill.Status = domain.BillUnpaid
	bill.Touch(s.now())
	if err := s.billRepo.SaveBill(ctx, bill); err != nil {
		s.LogError(ctx, err, "Failed to save bill", slog.String("type", string(bill.Type)))
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}
	s.LogDebug(ctx, "Bill issued",
		slog.String("bill_id", bill.BillID),
		slog.String("type", string(bill.Type)),
		slog.String("amount", bill.Amount.String()),
		slog.Int("due_day", bill.DueDay))
	return &bill, nil
}

// PayBill pays the base amount. Paying before the grace window ends avoids the penalty.
func (s *billingService) PayBill(ctx context.Context, billID string) (*domain.Bill, error) {
	bill, err := s.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill.IsSettled() {
		return nil, ErrBillAlreadySettled
	}
	day, err := s.stateRepo.GetCurrentDay(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.wallet.TryDebit(ctx, bill.Amount, "bill "+string(bill.Type)); err != nil {
		return nil, err
	}
	if err := bill.MarkPaid(day); err != nil {
		s.refund(ctx, bill.Amount, "bill payment rollback")
		return nil, err
	}
	bill.Touch(s.now())
	if err := s.billRepo.UpdateBill(ctx, *bill); err != nil {
		s.LogError(ctx, err, "Failed to save paid bill", slog.String("bill_id", billID))
		s.refund(ctx, bill.Amount, "bill payment rollback")
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}
	s.LogInfo(ctx, "Bill paid", slog.String("bill_id", billID), slog.String("amount", bill.Amount.String()))
	s.publishBills(ctx, day)
	return bill, nil
}

// PayAll settles every unpaid bill at its total amount due, or none of them.
func (s *billingService) PayAll(ctx context.Context) ([]domain.Bill, error) {
	day, err := s.stateRepo.GetCurrentDay(ctx)
	if err != nil {
		return nil, err
	}
	bills, err := s.ListBills(ctx)
	if err != nil {
		return nil, err
	}

	unpaid := make([]domain.Bill, 0, len(bills))
	total := decimal.Zero
	for _, b := range bills {
		if b.Status == domain.BillUnpaid {
			unpaid = append(unpaid, b)
			total = total.Add(b.TotalAmountDue(day))
		}
	}
	if len(unpaid) == 0 {
		return unpaid, nil
	}

	if _, err := s.wallet.TryDebit(ctx, total, "pay all bills"); err != nil {
		return nil, err
	}
	now := s.now()
	for i := range unpaid {
		if err := unpaid[i].MarkPaid(day); err != nil {
			s.refund(ctx, total, "pay all rollback")
			return nil, err
		}
		unpaid[i].Touch(now)
	}
	if err := s.billRepo.ApplyBillChanges(ctx, unpaid, nil); err != nil {
		s.LogError(ctx, err, "Failed to save paid bills", slog.Int("count", len(unpaid)))
		s.refund(ctx, total, "pay all rollback")
		return nil, fmt.Errorf("failed to save bills: %w", err)
	}
	s.LogInfo(ctx, "All bills paid", slog.Int("count", len(unpaid)), slog.String("total", total.String()))
	s.publishBills(ctx, day)
	return unpaid, nil
}

func (s *billingService) publishBills(ctx context.Context, day int) {
	bills, err := s.ListBills(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count bills for update")
		return
	}
	s.events.Publish(domain.BillsUpdated{Day: day, ActiveBills: len(bills)})
}
