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

type counterHandler struct {
	checkout portssvc.CheckoutSvcFacade
	staff    portssvc.StaffSvc
	runner   Runner
}

func newCounterHandler(checkout portssvc.CheckoutSvcFacade, staff portssvc.StaffSvc, runner Runner) *counterHandler {
	return &counterHandler{checkout: checkout, staff: staff, runner: runner}
}

// RegisterCounterRoutes registers routes related to checkout counters.
func RegisterCounterRoutes(rg *gin.RouterGroup, checkout portssvc.CheckoutSvcFacade, staff portssvc.StaffSvc, runner Runner) {
	h := newCounterHandler(checkout, staff, runner)

	counters := rg.Group("/counters")
	{
		counters.GET("", h.listCounters)
		counters.GET("/:counterID", h.getCounter)

		counters.POST("/:counterID/queue", h.joinQueue)
		counters.GET("/:counterID/queue/:customerID", h.queuePosition)
		counters.DELETE("/:counterID/queue/:customerID", h.leaveQueue)

		counters.POST("/:counterID/serve", h.serveNext)
		counters.POST("/:counterID/placed", h.itemsPlaced)
		counters.POST("/:counterID/scan", h.scan)
		counters.POST("/:counterID/change", h.drawChange)
		counters.POST("/:counterID/change/undo", h.undoChange)
		counters.DELETE("/:counterID/change", h.clearChange)
		counters.POST("/:counterID/change/confirm", h.confirmChange)
		counters.POST("/:counterID/card", h.enterCardAmount)
		counters.POST("/:counterID/abandon", h.abandon)

		counters.POST("/:counterID/cashier", h.hireCashier)
		counters.DELETE("/:counterID/cashier", h.fireCashier)
	}
}

type counterOp func(ctx context.Context, counterID string) (*domain.CounterSnapshot, error)

// act runs op on the simulation loop and answers with the resulting counter.
func (h *counterHandler) act(c *gin.Context, action string, op counterOp) {
	counterID := c.Param("counterID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("counter_id", counterID))

	var snap *domain.CounterSnapshot
	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		var err error
		snap, err = op(ctx, counterID)
		return err
	})
	if err != nil {
		respondError(c, logger, err, action)
		return
	}

	logger.Debug("Counter updated", slog.String("action", action), slog.String("state", string(snap.State)))
	c.JSON(http.StatusOK, dto.ToCounterResponse(snap))
}

// listCounters godoc
// @Summary List checkout counters
// @Tags counters
// @Produce json
// @Success 200 {array} dto.CounterResponse
// @Security BearerAuth
// @Router /counters [get]
func (h *counterHandler) listCounters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var snaps []domain.CounterSnapshot
	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		snaps = h.checkout.ListCounters(ctx)
		return nil
	})
	if err != nil {
		respondError(c, logger, err, "list counters")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCounterResponse(snaps))
}

// getCounter godoc
// @Summary Get a checkout counter
// @Tags counters
// @Produce json
// @Param counterID path string true "Counter ID"
// @Success 200 {object} dto.CounterResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /counters/{counterID} [get]
func (h *counterHandler) getCounter(c *gin.Context) {
	h.act(c, "get counter", h.checkout.GetCounter)
}

// joinQueue godoc
// @Summary Add a customer to a counter line
// @Tags counters
// @Accept json
// @Produce json
// @Param counterID path string true "Counter ID"
// @Param customer body dto.JoinQueueRequest true "Customer and cart"
// @Success 201 {object} dto.QueuePositionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /counters/{counterID}/queue [post]
func (h *counterHandler) joinQueue(c *gin.Context) {
	counterID := c.Param("counterID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("counter_id", counterID))

	var req dto.JoinQueueRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	var pos int
	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		var err error
		pos, err = h.checkout.JoinQueue(ctx, counterID, req.CustomerID, req.ToCart())
		return err
	})
	if err != nil {
		respondError(c, logger, err, "join queue")
		return
	}

	logger.Info("Customer joined queue", slog.String("customer_id", req.CustomerID), slog.Int("position", pos))
	c.JSON(http.StatusCreated, dto.QueuePositionResponse{CounterID: counterID, CustomerID: req.CustomerID, Position: pos})
}

// queuePosition godoc
// @Summary Get a customer's place in line
// @Tags counters
// @Produce json
// @Param counterID path string true "Counter ID"
// @Param customerID path string true "Customer ID"
// @Success 200 {object} dto.QueuePositionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /counters/{counterID}/queue/{customerID} [get]
func (h *counterHandler) queuePosition(c *gin.Context) {
	counterID, customerID := c.Param("counterID"), c.Param("customerID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("counter_id", counterID))

	var pos int
	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		var err error
		pos, err = h.checkout.QueuePosition(ctx, counterID, customerID)
		return err
	})
	if err != nil {
		respondError(c, logger, err, "get queue position")
		return
	}
	c.JSON(http.StatusOK, dto.QueuePositionResponse{CounterID: counterID, CustomerID: customerID, Position: pos})
}

// leaveQueue godoc
// @Summary Remove a waiting customer from a counter line
// @Tags counters
// @Param counterID path string true "Counter ID"
// @Param customerID path string true "Customer ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Customer is being served"
// @Security BearerAuth
// @Router /counters/{counterID}/queue/{customerID} [delete]
func (h *counterHandler) leaveQueue(c *gin.Context) {
	counterID, customerID := c.Param("counterID"), c.Param("customerID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("counter_id", counterID))

	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		return h.checkout.LeaveQueue(ctx, counterID, customerID)
	})
	if err != nil {
		respondError(c, logger, err, "leave queue")
		return
	}
	c.Status(http.StatusNoContent)
}

// serveNext godoc
// @Summary Begin serving the customer at the front of the line
// @Tags counters
// @Produce json
// @Param counterID path string true "Counter ID"
// @Success 200 {object} dto.CounterResponse
// @Failure 422 {object} dto.ErrorResponse "Counter busy or queue empty"
// @Security BearerAuth
// @Router /counters/{counterID}/serve [post]
func (h *counterHandler) serveNext(c *gin.Context) {
	h.act(c, "serve next customer", h.checkout.ServeNext)
}

// itemsPlaced godoc
// @Summary Signal that the customer placed every item on the belt
// @Tags counters
// @Produce json
// @Param counterID path string true "Counter ID"
// @Success 200 {object} dto.CounterResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /counters/{counterID}/placed [post]
func (h *counterHandler) itemsPlaced(c *gin.Context) {
	h.act(c, "place items", h.checkout.ItemsPlaced)
}

// scan godoc
// @Summary Scan one pending item
// @Tags counters
// @Accept json
// @Produce json
// @Param counterID path string true "Counter ID"
// @Param item body dto.ScanRequest false "Item to scan"
// @Success 200 {object} dto.CounterResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /counters/{counterID}/scan [post]
func (h *counterHandler) scan(c *gin.Context) {
	var req dto.ScanRequest
	if c.Request.ContentLength > 0 {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		if !bindJSON(c, logger, &req) {
			return
		}
	}
	h.act(c, "scan item", func(ctx context.Context, counterID string) (*domain.CounterSnapshot, error) {
		return h.checkout.Scan(ctx, counterID, req.ItemID)
	})
}

// drawChange godoc
// @Summary Hand one denomination to the customer
// @Tags counters
// @Accept json
// @Produce json
// @Param counterID path string true "Counter ID"
// @Param change body dto.DrawChangeRequest true "Denomination in cents"
// @Success 200 {object} dto.CounterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Wrong state or not enough money in the register"
// @Security BearerAuth
// @Router /counters/{counterID}/change [post]
func (h *counterHandler) drawChange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DrawChangeRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	h.act(c, "draw change", func(ctx context.Context, counterID string) (*domain.CounterSnapshot, error) {
		return h.checkout.DrawChange(ctx, counterID, req.Denomination)
	})
}

// undoChange godoc
// @Summary Take back the most recently drawn denomination
// @Tags counters
// @Produce json
// @Param counterID path string true "Counter ID"
// @Success 200 {object} dto.CounterResponse
// @Security BearerAuth
// @Router /counters/{counterID}/change/undo [post]
func (h *counterHandler) undoChange(c *gin.Context) {
	h.act(c, "undo change", h.checkout.UndoChange)
}

// clearChange godoc
// @Summary Take back all drawn change
// @Tags counters
// @Produce json
// @Param counterID path string true "Counter ID"
// @Success 200 {object} dto.CounterResponse
// @Security BearerAuth
// @Router /counters/{counterID}/change [delete]
func (h *counterHandler) clearChange(c *gin.Context) {
	h.act(c, "clear change", h.checkout.ClearChange)
}

// confirmChange godoc
// @Summary Confirm the drawn change and settle a cash sale
// @Tags counters
// @Produce json
// @Param counterID path string true "Counter ID"
// @Success 200 {object} dto.CounterResponse
// @Failure 400 {object} dto.ErrorResponse "Incorrect change"
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /counters/{counterID}/change/confirm [post]
func (h *counterHandler) confirmChange(c *gin.Context) {
	h.act(c, "confirm change", h.checkout.ConfirmChange)
}

// enterCardAmount godoc
// @Summary Key an amount into the card terminal
// @Tags counters
// @Accept json
// @Produce json
// @Param counterID path string true "Counter ID"
// @Param amount body dto.CardAmountRequest true "Charged amount"
// @Success 200 {object} dto.CounterResponse
// @Failure 400 {object} dto.ErrorResponse "Amount does not match the total"
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /counters/{counterID}/card [post]
func (h *counterHandler) enterCardAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CardAmountRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	h.act(c, "enter card amount", func(ctx context.Context, counterID string) (*domain.CounterSnapshot, error) {
		return h.checkout.EnterCardAmount(ctx, counterID, req.Amount)
	})
}

// abandon godoc
// @Summary Let the current customer leave without paying
// @Tags counters
// @Produce json
// @Param counterID path string true "Counter ID"
// @Success 200 {object} dto.CounterResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /counters/{counterID}/abandon [post]
func (h *counterHandler) abandon(c *gin.Context) {
	h.act(c, "abandon transaction", h.checkout.Abandon)
}

// hireCashier godoc
// @Summary Hire a cashier for a counter
// @Tags counters
// @Produce json
// @Param counterID path string true "Counter ID"
// @Success 201 {object} domain.Employee
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Counter already staffed"
// @Failure 422 {object} dto.ErrorResponse "Hiring fee not affordable"
// @Security BearerAuth
// @Router /counters/{counterID}/cashier [post]
func (h *counterHandler) hireCashier(c *gin.Context) {
	counterID := c.Param("counterID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("counter_id", counterID))

	var employee *domain.Employee
	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		var err error
		employee, err = h.staff.HireCashier(ctx, counterID)
		return err
	})
	if err != nil {
		respondError(c, logger, err, "hire cashier")
		return
	}

	logger.Info("Cashier hired", slog.String("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, employee)
}

// fireCashier godoc
// @Summary Dismiss the cashier of a counter
// @Tags counters
// @Param counterID path string true "Counter ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /counters/{counterID}/cashier [delete]
func (h *counterHandler) fireCashier(c *gin.Context) {
	counterID := c.Param("counterID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("counter_id", counterID))

	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		return h.staff.FireCashier(ctx, counterID)
	})
	if err != nil {
		respondError(c, logger, err, "fire cashier")
		return
	}

	logger.Info("Cashier dismissed")
	c.Status(http.StatusNoContent)
}
