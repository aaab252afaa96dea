package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_sim/internal/core/ports/services"
	"github.com/SscSPs/storefront_sim/internal/dto"
	"github.com/SscSPs/storefront_sim/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves bills, loans and the day clock.
type ledgerHandler struct {
	billing portssvc.BillingSvcFacade
	loans   portssvc.LoanSvc
	days    portssvc.DaySvc
	runner  Runner
}

func newLedgerHandler(billing portssvc.BillingSvcFacade, loans portssvc.LoanSvc, days portssvc.DaySvc, runner Runner) *ledgerHandler {
	return &ledgerHandler{billing: billing, loans: loans, days: days, runner: runner}
}

// RegisterLedgerRoutes registers routes for bills, loans and day advancement.
func RegisterLedgerRoutes(rg *gin.RouterGroup, billing portssvc.BillingSvcFacade, loans portssvc.LoanSvc, days portssvc.DaySvc, runner Runner) {
	h := newLedgerHandler(billing, loans, days, runner)

	bills := rg.Group("/bills")
	{
		bills.GET("", h.listBills)
		bills.POST("/pay-all", h.payAll)
		bills.POST("/:billID/pay", h.payBill)
	}

	loanRoutes := rg.Group("/loans")
	{
		loanRoutes.GET("", h.listLoans)
		loanRoutes.GET("/templates", h.listLoanTemplates)
		loanRoutes.POST("", h.takeLoan)
	}

	rg.POST("/days/advance", h.advanceDay)
}

// listBills godoc
// @Summary List the bill ledger
// @Description Returns every bill with its status text for the current day and the total due.
// @Tags bills
// @Produce json
// @Success 200 {object} dto.ListBillsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /bills [get]
func (h *ledgerHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var res dto.ListBillsResponse
	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		day, err := h.days.CurrentDay(ctx)
		if err != nil {
			return err
		}
		bills, err := h.billing.ListBills(ctx)
		if err != nil {
			return err
		}
		total, err := h.billing.TotalDue(ctx, day)
		if err != nil {
			return err
		}
		res = dto.ListBillsResponse{Day: day, TotalDue: total, Bills: dto.ToListBillResponse(bills, day)}
		return nil
	})
	if err != nil {
		respondError(c, logger, err, "list bills")
		return
	}
	c.JSON(http.StatusOK, res)
}

// payBill godoc
// @Summary Pay one bill
// @Tags bills
// @Produce json
// @Param billID path string true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Already settled or insufficient funds"
// @Security BearerAuth
// @Router /bills/{billID}/pay [post]
func (h *ledgerHandler) payBill(c *gin.Context) {
	billID := c.Param("billID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("bill_id", billID))

	var res dto.BillResponse
	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		bill, err := h.billing.PayBill(ctx, billID)
		if err != nil {
			return err
		}
		res = dto.ToBillResponse(*bill, bill.SettledDay)
		return nil
	})
	if err != nil {
		respondError(c, logger, err, "pay bill")
		return
	}

	logger.Info("Bill paid", slog.String("amount", res.Amount.String()))
	c.JSON(http.StatusOK, res)
}

// payAll godoc
// @Summary Pay every unpaid bill
// @Description Either every unpaid bill is paid or none is.
// @Tags bills
// @Produce json
// @Success 200 {array} dto.BillResponse
// @Failure 422 {object} dto.ErrorResponse "Insufficient funds"
// @Security BearerAuth
// @Router /bills/pay-all [post]
func (h *ledgerHandler) payAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var res []dto.BillResponse
	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		day, err := h.days.CurrentDay(ctx)
		if err != nil {
			return err
		}
		paid, err := h.billing.PayAll(ctx)
		if err != nil {
			return err
		}
		res = dto.ToListBillResponse(paid, day)
		return nil
	})
	if err != nil {
		respondError(c, logger, err, "pay all bills")
		return
	}

	logger.Info("All bills paid", slog.Int("count", len(res)))
	c.JSON(http.StatusOK, res)
}

// listLoans godoc
// @Summary List active loans
// @Tags loans
// @Produce json
// @Success 200 {array} dto.LoanResponse
// @Security BearerAuth
// @Router /loans [get]
func (h *ledgerHandler) listLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var loans []domain.Loan
	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		var err error
		loans, err = h.loans.ListLoans(ctx)
		return err
	})
	if err != nil {
		respondError(c, logger, err, "list loans")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLoanResponse(loans))
}

// listLoanTemplates godoc
// @Summary List the loan products on offer
// @Tags loans
// @Produce json
// @Success 200 {array} domain.LoanTemplate
// @Security BearerAuth
// @Router /loans/templates [get]
func (h *ledgerHandler) listLoanTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.loans.ListTemplates(c.Request.Context()))
}

// takeLoan godoc
// @Summary Take a loan
// @Tags loans
// @Accept json
// @Produce json
// @Param loan body dto.TakeLoanRequest true "Loan product name"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown loan product"
// @Failure 409 {object} dto.ErrorResponse "Loan already active"
// @Security BearerAuth
// @Router /loans [post]
func (h *ledgerHandler) takeLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TakeLoanRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	var loan *domain.Loan
	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		var err error
		loan, err = h.loans.TakeLoan(ctx, req.Name)
		return err
	})
	if err != nil {
		respondError(c, logger, err, "take loan")
		return
	}

	logger.Info("Loan taken", slog.String("loan_id", loan.LoanID), slog.String("name", loan.Name))
	c.JSON(http.StatusCreated, dto.ToLoanResponse(*loan))
}

// advanceDay godoc
// @Summary Advance to the next in-game day
// @Description Runs the ledger pass: sweep, recurring issuance and loan servicing.
// @Tags days
// @Produce json
// @Success 200 {object} dto.DayReportResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /days/advance [post]
func (h *ledgerHandler) advanceDay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var report *domain.DayReport
	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		var err error
		report, err = h.days.AdvanceDay(ctx)
		return err
	})
	if err != nil {
		respondError(c, logger, err, "advance day")
		return
	}

	logger.Info("Day advanced", slog.Int("day", report.Day))
	c.JSON(http.StatusOK, dto.ToDayReportResponse(report))
}

