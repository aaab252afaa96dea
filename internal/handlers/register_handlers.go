package handlers

import (
	"net/http"

	"github.com/SscSPs/storefront_sim/cmd/docs"
	portssvc "github.com/SscSPs/storefront_sim/internal/core/ports/services"
	"github.com/SscSPs/storefront_sim/internal/dto"
	"github.com/SscSPs/storefront_sim/internal/middleware"
	"github.com/SscSPs/storefront_sim/internal/platform/config"
	"github.com/SscSPs/storefront_sim/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies bundles what the routes need besides the services.
type Dependencies struct {
	Services *portssvc.ServiceContainer
	Runner   Runner
	Progress ProgressReader
	Posthog  *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Dependencies) error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			return err
		}
	}

	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Register public authentication routes
	RegisterAuthRoutes(r, cfg)

	if err := setupAPIV1Routes(r, cfg, deps); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, deps Dependencies) error {
	apiLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	v1 := r.Group("/api/v1",
		middleware.RateLimit(apiLimiter),
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.PosthogMiddleware(deps.Posthog),
	)

	s := deps.Services
	RegisterCounterRoutes(v1, s.Checkout, s.Staff, deps.Runner)
	RegisterLedgerRoutes(v1, s.Billing, s.Loan, s.Day, deps.Runner)
	RegisterStoreRoutes(v1, s, deps.Progress, deps.Runner)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
