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
)

// Repayment bills fall due the day after issue with a two day grace window.
const (
	repaymentDueOffsetDays   = 1
	repaymentGracePeriodDays = 2
)

var (
	ErrLoanTemplateNotFound = fmt.Errorf("%w: loan product", apperrors.ErrNotFound)
	ErrLoanAlreadyActive    = fmt.Errorf("%w: loan is already active", apperrors.ErrDuplicate)
)

type loanService struct {
	BaseService
	loanRepo  portsrepo.LoanRepositoryFacade
	dayReader portsrepo.DayReader
	wallet    portssvc.WalletSvc
	billing   portssvc.BillWriterSvc
	events    ports.EventPublisher
	templates []domain.LoanTemplate
	newID     func() string
	now       func() time.Time
}

// LoanOption configures the loan service
type LoanOption func(*loanService)

// WithLoanTemplates replaces the default loan products.
func WithLoanTemplates(templates []domain.LoanTemplate) LoanOption {
	return func(s *loanService) {
		s.templates = templates
	}
}

// WithLoanIDGenerator replaces the loan id generator.
func WithLoanIDGenerator(newID func() string) LoanOption {
	return func(s *loanService) {
		s.newID = newID
	}
}

// NewLoanService creates the loan service. Repayments are issued into billing.
func NewLoanService(
	loanRepo portsrepo.LoanRepositoryFacade,
	dayReader portsrepo.DayReader,
	wallet portssvc.WalletSvc,
	billing portssvc.BillWriterSvc,
	events ports.EventPublisher,
	options ...LoanOption,
) portssvc.LoanSvc {
	svc := &loanService{
		loanRepo:  loanRepo,
		dayReader: dayReader,
		wallet:    wallet,
		billing:   billing,
		events:    events,
		templates: domain.DefaultLoanTemplates(),
		newID:     uuid.NewString,
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LoanSvc = (*loanService)(nil)

func (s *loanService) ListTemplates(ctx context.Context) []domain.LoanTemplate {
	return append([]domain.LoanTemplate(nil), s.templates...)
}

func (s *loanService) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	loans, err := s.loanRepo.ListLoans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	if loans == nil {
		return []domain.Loan{}, nil
	}
	return loans, nil
}

func (s *loanService) TakeLoan(ctx context.Context, templateName string) (*domain.Loan, error) {
	var tmpl *domain.LoanTemplate
	for i := range s.templates {
		if s.templates[i].Name == templateName {
			tmpl = &s.templates[i]
			break
		}
	}
	if tmpl == nil {
		return nil, fmt.Errorf("%w: %s", ErrLoanTemplateNotFound, templateName)
	}

	active, err := s.ListLoans(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range active {
		if l.Name == templateName {
			return nil, fmt.Errorf("%w: %s", ErrLoanAlreadyActive, templateName)
		}
	}

	day, err := s.dayReader.GetCurrentDay(ctx)
	if err != nil {
		return nil, err
	}
	loan := tmpl.NewLoan(s.newID(), day+1)
	loan.Touch(s.now())
	if err := s.loanRepo.SaveLoan(ctx, loan); err != nil {
		s.LogError(ctx, err, "Failed to save loan", slog.String("name", templateName))
		return nil, fmt.Errorf("failed to save loan: %w", err)
	}
	if _, err := s.wallet.Credit(ctx, loan.Principal, "loan "+loan.Name); err != nil {
		if delErr := s.loanRepo.DeleteLoan(ctx, loan.LoanID); delErr != nil {
			s.LogError(ctx, delErr, "Failed to roll back loan", slog.String("loan_id", loan.LoanID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Loan taken",
		slog.String("loan_id", loan.LoanID),
		slog.String("name", loan.Name),
		slog.String("principal", loan.Principal.String()),
		slog.Int("start_day", loan.StartDay))
	s.events.Publish(domain.LoansUpdated{ActiveLoans: len(active) + 1})
	return &loan, nil
}

func (s *loanService) ServiceLoans(ctx context.Context, day int) ([]domain.Bill, error) {
	loans, err := s.ListLoans(ctx)
	if err != nil {
		return nil, err
	}

	issued := make([]domain.Bill, 0)
	for _, loan := range loans {
		due := !loan.IsCompleted() && day == loan.NextPaymentDay()
		if due {
			bill, err := s.billing.IssueBill(ctx, domain.Bill{
				Type:            domain.BillRepayment,
				Description:     fmt.Sprintf("%s repayment %d/%d", loan.Name, loan.PaymentsMade+1, loan.TotalPayments),
				IssueDay:        day,
				DueDay:          day + repaymentDueOffsetDays,
				GracePeriodDays: repaymentGracePeriodDays,
				Amount:          loan.InstallmentAmount(loan.PaymentsMade + 1),
				LatePenalty:     loan.LatePaymentFee,
				SourceID:        loan.LoanID,
			})
			if err != nil {
				return issued, err
			}
			issued = append(issued, *bill)
			loan.RecordPayment()
			loan.Touch(s.now())
		}

		switch {
		case loan.IsCompleted():
			if err := s.loanRepo.DeleteLoan(ctx, loan.LoanID); err != nil {
				return issued, fmt.Errorf("failed to remove completed loan: %w", err)
			}
			s.LogInfo(ctx, "Loan completed", slog.String("loan_id", loan.LoanID), slog.String("name", loan.Name))
		case due:
			if err := s.loanRepo.UpdateLoan(ctx, loan); err != nil {
				return issued, fmt.Errorf("failed to save loan: %w", err)
			}
		}
	}
	return issued, nil
}
