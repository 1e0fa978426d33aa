package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/middleware"
	"github.com/finsight-app/finsight_backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCurrencyValidator()

	registerHomeRoutes(r)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerCurrencyRoutes(v1, services.Conversion)
	registerDashboardRoutes(v1, services.Dashboard, services.Analysis, cfg.DefaultCurrency)
	registerLoanRoutes(v1, services.Loan, cfg.DefaultCurrency)
	registerInvestmentRoutes(v1, services.Investment)
	registerCashflowRoutes(v1, services.Income, services.Expense)
	registerGoalRoutes(v1, services.Goal)
	registerBudgetRoutes(v1, services.Budget)
}

// registerCurrencyValidator installs the "currency" binding tag, which
// accepts only codes present in the reference table.
func registerCurrencyValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		code := strings.ToUpper(fl.Field().String())
		return domain.ValidateCurrencyCode(code) == nil
	})
}
