package dto

import (
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillResponse defines the data returned for a bill, rendered for the current day.
type BillResponse struct {
	BillID          string            `json:"billID"`
	Type            domain.BillType   `json:"type"`
	Description     string            `json:"description"`
	IssueDay        int               `json:"issueDay"`
	DueDay          int               `json:"dueDay"`
	GracePeriodDays int               `json:"gracePeriodDays"`
	Amount          decimal.Decimal   `json:"amount"`
	LatePenalty     decimal.Decimal   `json:"latePenalty"`
	Status          domain.BillStatus `json:"status"`
	StatusText      string            `json:"statusText"`
	TotalDue        decimal.Decimal   `json:"totalDue"`
	SettledDay      int               `json:"settledDay,omitempty"`
}

// ToBillResponse converts a domain Bill to its response DTO as seen on day
func ToBillResponse(b domain.Bill, day int) BillResponse {
	res := BillResponse{
		BillID:          b.BillID,
		Type:            b.Type,
		Description:     b.Description,
		IssueDay:        b.IssueDay,
		DueDay:          b.DueDay,
		GracePeriodDays: b.GracePeriodDays,
		Amount:          b.Amount,
		LatePenalty:     b.LatePenalty,
		Status:          b.Status,
		StatusText:      b.StatusText(day),
		SettledDay:      b.SettledDay,
	}
	if !b.IsSettled() {
		res.TotalDue = b.TotalAmountDue(day)
	}
	return res
}

// ToListBillResponse converts a slice of domain Bills to response DTOs
func ToListBillResponse(bills []domain.Bill, day int) []BillResponse {
	res := make([]BillResponse, len(bills))
	for i, b := range bills {
		res[i] = ToBillResponse(b, day)
	}
	return res
}

// ListBillsResponse is the ledger as shown on the bills screen.
type ListBillsResponse struct {
	Day      int             `json:"day"`
	TotalDue decimal.Decimal `json:"totalDue"`
	Bills    []BillResponse  `json:"bills"`
}

// TakeLoanRequest names the loan product to take.
type TakeLoanRequest struct {
	Name string `json:"name" binding:"required"`
}

// LoanResponse defines the data returned for an active loan.
type LoanResponse struct {
	LoanID           string          `json:"loanID"`
	Name             string          `json:"name"`
	Principal        decimal.Decimal `json:"principal"`
	InterestRate     decimal.Decimal `json:"interestRate"`
	PaymentAmount    decimal.Decimal `json:"paymentAmount"`
	PaymentsMade     int             `json:"paymentsMade"`
	TotalPayments    int             `json:"totalPayments"`
	NextPaymentDay   int             `json:"nextPaymentDay"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// ToLoanResponse converts a domain Loan to its response DTO
func ToLoanResponse(l domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:           l.LoanID,
		Name:             l.Name,
		Principal:        l.Principal,
		InterestRate:     l.InterestRate,
		PaymentAmount:    l.PaymentAmount(),
		PaymentsMade:     l.PaymentsMade,
		TotalPayments:    l.TotalPayments,
		NextPaymentDay:   l.NextPaymentDay(),
		RemainingBalance: l.RemainingBalance(),
	}
}

// ToListLoanResponse converts domain Loans to response DTOs
func ToListLoanResponse(loans []domain.Loan) []LoanResponse {
	res := make([]LoanResponse, len(loans))
	for i, l := range loans {
		res[i] = ToLoanResponse(l)
	}
	return res
}

// DayReportResponse summarizes a day advance.
type DayReportResponse struct {
	Day        int            `json:"day"`
	Removed    []BillResponse `json:"removed"`
	Charged    []BillResponse `json:"charged"`
	Issued     []BillResponse `json:"issued"`
	Repayments []BillResponse `json:"repayments"`
}

// ToDayReportResponse converts a domain DayReport to its response DTO
func ToDayReportResponse(r *domain.DayReport) DayReportResponse {
	return DayReportResponse{
		Day:        r.Day,
		Removed:    ToListBillResponse(r.Removed, r.Day),
		Charged:    ToListBillResponse(r.Charged, r.Day),
		Issued:     ToListBillResponse(r.Issued, r.Day),
		Repayments: ToListBillResponse(r.Repayments, r.Day),
	}
}
