package services

import (
	"fmt"

	"github.com/SscSPs/storefront_sim/internal/core/ports"
	portsrepo "github.com/SscSPs/storefront_sim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_sim/internal/core/ports/services"
	"github.com/SscSPs/storefront_sim/internal/platform/config"
)

// Collaborators are the external systems the services talk to.
type Collaborators struct {
	Random    ports.RandomSource
	Events    ports.EventPublisher
	Progress  ports.ProgressTracker
	Presenter ports.Presenter
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, collab Collaborators) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{}

	change, err := NewChangeService(collab.Random)
	if err != nil {
		return nil, fmt.Errorf("failed to create change service: %w", err)
	}
	container.Change = change

	container.Wallet = NewWalletService(repos.WalletRepo, collab.Events)
	container.Pricing = NewPricingService(repos.ProductRepo)

	checkoutOptions := []CheckoutOption{}
	if collab.Progress != nil {
		checkoutOptions = append(checkoutOptions, WithProgressTracker(collab.Progress))
	}
	if collab.Presenter != nil {
		checkoutOptions = append(checkoutOptions, WithPresenter(collab.Presenter))
	}
	container.Checkout = NewCheckoutService(
		CheckoutConfig{
			CounterIDs:        cfg.CounterIDs(),
			AutoScanInterval:  cfg.AutoScanInterval,
			AutoSettleDelay:   cfg.AutoSettleDelay,
			QueuePollInterval: cfg.QueuePollInterval,
		},
		container.Change,
		container.Pricing,
		container.Wallet,
		collab.Random,
		collab.Events,
		checkoutOptions...,
	)

	container.Billing = NewBillingService(
		repos.BillRepo,
		repos.StateRepo,
		container.Wallet,
		collab.Events,
		WithBillTemplates(cfg.Catalog.BillTemplates),
		WithPayroll(repos.EmployeeRepo, SalaryTerms{
			DueOffsetDays:   DefaultSalaryTerms.DueOffsetDays,
			GracePeriodDays: DefaultSalaryTerms.GracePeriodDays,
			LatePenalty:     cfg.SalaryLatePenalty,
		}),
	)
	container.Loan = NewLoanService(
		repos.LoanRepo,
		repos.StateRepo,
		container.Wallet,
		container.Billing,
		collab.Events,
		WithLoanTemplates(cfg.Catalog.LoanTemplates),
	)
	container.Day = NewDayService(repos.StateRepo, container.Billing, container.Loan, collab.Events)
	container.Staff = NewStaffService(
		repos.EmployeeRepo,
		repos.StateRepo,
		container.Checkout,
		container.Wallet,
		StaffTerms{HiringFee: cfg.CashierHiringFee, DailyWage: cfg.CashierDailyWage},
	)
	container.Store = NewStoreService(
		repos.StateRepo,
		container.Wallet,
		container.Billing,
		container.Loan,
		container.Staff,
		cfg.ExpansionPrice,
	)

	return container, nil
}
