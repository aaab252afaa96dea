package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/storefront_sim/internal/adapters/telemetry"
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_sim/internal/core/ports/services"
	"github.com/SscSPs/storefront_sim/internal/dto"
	"github.com/SscSPs/storefront_sim/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ProgressReader exposes the tracked mission progress.
type ProgressReader interface {
	Snapshot() telemetry.ProgressSnapshot
}

type storeHandler struct {
	store    portssvc.StoreSvc
	pricing  portssvc.PricingSvc
	staff    portssvc.StaffSvc
	progress ProgressReader
	runner   Runner
}

// RegisterStoreRoutes registers store-wide routes: status, expansion, products, staff and progress.
func RegisterStoreRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, progress ProgressReader, runner Runner) {
	h := &storeHandler{
		store:    services.Store,
		pricing:  services.Pricing,
		staff:    services.Staff,
		progress: progress,
		runner:   runner,
	}

	rg.GET("/store", h.getStatus)
	rg.POST("/store/expand", h.expand)
	rg.GET("/employees", h.listEmployees)
	rg.GET("/progress", h.getProgress)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.PUT("/:productID/price", h.setPrice)
		products.DELETE("/:productID/price", h.clearPrice)
	}
}

// getStatus godoc
// @Summary Get the store overview
// @Tags store
// @Produce json
// @Success 200 {object} domain.StoreStatus
// @Security BearerAuth
// @Router /store [get]
func (h *storeHandler) getStatus(c *gin.Context) {
	h.status(c, "get store status", h.store.Status)
}

// expand godoc
// @Summary Buy the next store expansion level
// @Tags store
// @Produce json
// @Success 200 {object} domain.StoreStatus
// @Failure 422 {object} dto.ErrorResponse "Insufficient funds"
// @Security BearerAuth
// @Router /store/expand [post]
func (h *storeHandler) expand(c *gin.Context) {
	h.status(c, "expand store", h.store.Expand)
}

func (h *storeHandler) status(c *gin.Context, action string, op func(ctx context.Context) (*domain.StoreStatus, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var status *domain.StoreStatus
	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		var err error
		status, err = op(ctx)
		return err
	})
	if err != nil {
		respondError(c, logger, err, action)
		return
	}
	c.JSON(http.StatusOK, status)
}

// listEmployees godoc
// @Summary List hired cashiers
// @Tags store
// @Produce json
// @Success 200 {array} domain.Employee
// @Security BearerAuth
// @Router /employees [get]
func (h *storeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var employees []domain.Employee
	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		var err error
		employees, err = h.staff.ListEmployees(ctx)
		return err
	})
	if err != nil {
		respondError(c, logger, err, "list employees")
		return
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	c.JSON(http.StatusOK, employees)
}

// getProgress godoc
// @Summary Get mission progress counters
// @Tags store
// @Produce json
// @Success 200 {object} telemetry.ProgressSnapshot
// @Security BearerAuth
// @Router /progress [get]
func (h *storeHandler) getProgress(c *gin.Context) {
	c.JSON(http.StatusOK, h.progress.Snapshot())
}

// listProducts godoc
// @Summary List products with their prices
// @Tags products
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Security BearerAuth
// @Router /products [get]
func (h *storeHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var products []domain.Product
	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		var err error
		products, err = h.pricing.ListProducts(ctx)
		return err
	})
	if err != nil {
		respondError(c, logger, err, "list products")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProductResponse(products))
}

// setPrice godoc
// @Summary Set the store's own price for a product
// @Tags products
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param price body dto.SetPriceRequest true "New price"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products/{productID}/price [put]
func (h *storeHandler) setPrice(c *gin.Context) {
	productID := c.Param("productID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("product_id", productID))

	var req dto.SetPriceRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	var product *domain.Product
	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		var err error
		product, err = h.pricing.SetCustomPrice(ctx, productID, req.Price)
		return err
	})
	if err != nil {
		respondError(c, logger, err, "set price")
		return
	}

	logger.Info("Custom price set", slog.String("price", req.Price.String()))
	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// clearPrice godoc
// @Summary Return a product to its market price
// @Tags products
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products/{productID}/price [delete]
func (h *storeHandler) clearPrice(c *gin.Context) {
	productID := c.Param("productID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("product_id", productID))

	var product *domain.Product
	err := h.runner.Do(c.Request.Context(), func(ctx context.Context) error {
		var err error
		product, err = h.pricing.ClearCustomPrice(ctx, productID)
		return err
	})
	if err != nil {
		respondError(c, logger, err, "clear price")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}
