package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/storefront_sim/internal/dto"
	"github.com/SscSPs/storefront_sim/internal/middleware"
	"github.com/SscSPs/storefront_sim/internal/platform/config"
	"github.com/SscSPs/storefront_sim/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// AuthHandler exchanges the operator key for a session token.
type AuthHandler struct {
	operatorKeyHash string
	allowAnyKey     bool
	jwtSecret       string
	jwtDuration     time.Duration
	jwtIssuer       string
}

// NewAuthHandler creates a new AuthHandler. Without a configured key hash any
// key is accepted, which config only allows outside production.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		operatorKeyHash: cfg.OperatorKeyHash,
		allowAnyKey:     cfg.OperatorKeyHash == "" && !cfg.IsProduction,
		jwtSecret:       cfg.JWTSecret,
		jwtDuration:     cfg.JWTExpiryDuration,
		jwtIssuer:       cfg.JWTIssuer,
	}
}

// RegisterAuthRoutes sets up the routes for authentication.
func RegisterAuthRoutes(r *gin.Engine, cfg *config.Config) {
	h := NewAuthHandler(cfg)

	// 5 session attempts per minute and client
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/session", limitMiddleware, h.CreateSession)
	}
}

// CreateSession godoc
// @Summary Open an operator session
// @Description Checks the operator key and returns a JWT session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param session body dto.SessionRequest true "Operator credentials"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/session [post]
func (h *AuthHandler) CreateSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if !h.allowAnyKey && !utils.CheckOperatorKey(req.OperatorKey, h.operatorKeyHash) {
		logger.Warn("Rejected operator key", slog.String("operator_id", req.OperatorID))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid operator key"})
		return
	}

	token, expiresAt, err := utils.GenerateSessionToken(req.OperatorID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("Operator session opened", slog.String("operator_id", req.OperatorID))
	c.JSON(http.StatusOK, dto.SessionResponse{Token: token, ExpiresAt: expiresAt})
}
