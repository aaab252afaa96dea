package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/storefront_sim/internal/apperrors"
	"github.com/SscSPs/storefront_sim/internal/dto"
	"github.com/SscSPs/storefront_sim/internal/engine"
	"github.com/gin-gonic/gin"
)

// Runner executes fn on the goroutine that owns the simulation state.
type Runner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// respondError maps a service error to its HTTP status. Client errors carry the
// error text, server errors a generic message.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := apperrors.StatusCode(err)
	if errors.Is(err, engine.ErrLoopStopped) {
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: "Failed to " + action})
		return
	}
	logger.Warn("Rejected request to "+action, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

// bindJSON binds the request body and answers 400 when it does not validate.
func bindJSON(c *gin.Context, logger *slog.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind JSON", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return false
	}
	return true
}
