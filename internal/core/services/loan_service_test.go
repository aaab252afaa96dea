package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/storefront_sim/internal/apperrors"
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_sim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_sim/internal/core/ports/services"
	"github.com/SscSPs/storefront_sim/internal/core/services"
	"github.com/SscSPs/storefront_sim/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
)

type LoanServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	events  *recordingEvents
	repos   portsrepo.RepositoryProvider
	wallet  portssvc.WalletSvc
	billing portssvc.BillingSvcFacade
	service portssvc.LoanSvc
}

func (suite *LoanServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.events = &recordingEvents{}
	suite.repos = memory.NewRepositoryProvider(money("100"), nil)
	suite.wallet = services.NewWalletService(suite.repos.WalletRepo, suite.events)
	suite.billing = services.NewBillingService(
		suite.repos.BillRepo,
		suite.repos.StateRepo,
		suite.wallet,
		suite.events,
		services.WithBillIDGenerator(sequentialIDs("bill")),
	)
	suite.service = services.NewLoanService(
		suite.repos.LoanRepo,
		suite.repos.StateRepo,
		suite.wallet,
		suite.billing,
		suite.events,
		services.WithLoanIDGenerator(sequentialIDs("loan")),
	)
}

func (suite *LoanServiceTestSuite) TestTakeLoan_CreditsPrincipal() {
	loan, err := suite.service.TakeLoan(suite.ctx, "Small business loan")
	suite.Require().NoError(err)
	suite.Equal("loan-1", loan.LoanID)
	suite.Equal(2, loan.StartDay)
	suite.True(loan.PaymentAmount().Equal(money("300")))

	balance, err := suite.wallet.Balance(suite.ctx)
	suite.Require().NoError(err)
	suite.True(balance.Equal(money("1100")))

	loans, err := suite.service.ListLoans(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(loans, 1)
	suite.Len(suite.events.named("loans_updated"), 1)
}

func (suite *LoanServiceTestSuite) TestTakeLoan_RejectsDuplicateAndUnknown() {
	_, err := suite.service.TakeLoan(suite.ctx, "Small business loan")
	suite.Require().NoError(err)

	_, err = suite.service.TakeLoan(suite.ctx, "Small business loan")
	suite.ErrorIs(err, services.ErrLoanAlreadyActive)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = suite.service.TakeLoan(suite.ctx, "Payday loan")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	balance, _ := suite.wallet.Balance(suite.ctx)
	suite.True(balance.Equal(money("1100")), "only the first loan was credited")

	_, err = suite.service.TakeLoan(suite.ctx, "Expansion loan")
	suite.Require().NoError(err)
}

func (suite *LoanServiceTestSuite) TestServiceLoans_IssuesEachInstallmentOnce() {
	loan, err := suite.service.TakeLoan(suite.ctx, "Small business loan")
	suite.Require().NoError(err)

	issued, err := suite.service.ServiceLoans(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Empty(issued, "nothing is due on the day the loan is taken")

	for day := 2; day <= 6; day++ {
		issued, err = suite.service.ServiceLoans(suite.ctx, day)
		suite.Require().NoError(err)
		suite.Require().Len(issued, 1, "day %d", day)
		bill := issued[0]
		suite.Equal(domain.BillRepayment, bill.Type)
		suite.Equal(loan.LoanID, bill.SourceID)
		suite.Equal(day+1, bill.DueDay)
		suite.True(bill.Amount.Equal(money("300")))
		suite.True(bill.LatePenalty.Equal(money("20")))

		again, err := suite.service.ServiceLoans(suite.ctx, day)
		suite.Require().NoError(err)
		suite.Empty(again, "day %d serviced twice", day)
	}

	loans, err := suite.service.ListLoans(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(loans, "completed loans are removed")

	issued, err = suite.service.ServiceLoans(suite.ctx, 7)
	suite.Require().NoError(err)
	suite.Empty(issued)

	bills, err := suite.billing.ListBills(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(bills, 5)
}

func (suite *LoanServiceTestSuite) TestServiceLoans_HonorsPaymentInterval() {
	_, err := suite.service.TakeLoan(suite.ctx, "Expansion loan")
	suite.Require().NoError(err)

	due := []int{}
	for day := 2; day <= 7; day++ {
		issued, err := suite.service.ServiceLoans(suite.ctx, day)
		suite.Require().NoError(err)
		if len(issued) > 0 {
			due = append(due, day)
			suite.True(issued[0].Amount.Equal(money("650")))
		}
	}
	suite.Equal([]int{2, 4, 6}, due)

	loans, _ := suite.service.ListLoans(suite.ctx)
	suite.Require().Len(loans, 1)
	suite.Equal(3, loans[0].PaymentsMade)
	suite.Equal(8, loans[0].NextPaymentDay())
	suite.True(loans[0].RemainingBalance().Equal(money("4550")))
}

func (suite *LoanServiceTestSuite) TestListTemplates() {
	templates := suite.service.ListTemplates(suite.ctx)
	suite.Len(templates, len(domain.DefaultLoanTemplates()))
	for _, tmpl := range templates {
		suite.NoError(tmpl.Validate())
	}
}

func TestLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
