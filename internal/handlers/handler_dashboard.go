package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/middleware"
)

// dashboardHandler handles HTTP requests for the aggregated dashboard and
// the currency analysis views.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
	analysisService  portssvc.CurrencyAnalysisSvc
	defaultCurrency  string
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(ds portssvc.DashboardSvc, as portssvc.CurrencyAnalysisSvc, defaultCurrency string) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: ds,
		analysisService:  as,
		defaultCurrency:  defaultCurrency,
	}
}

// registerDashboardRoutes registers the dashboard and analysis routes.
func registerDashboardRoutes(rg *gin.RouterGroup, ds portssvc.DashboardSvc, as portssvc.CurrencyAnalysisSvc, defaultCurrency string) {
	h := newDashboardHandler(ds, as, defaultCurrency)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("", h.getDashboard)
		dashboard.GET("/exposure", h.getExposure)
		dashboard.GET("/risk", h.getRisk)
	}
}

// currencyParam resolves the ?currency= query parameter, falling back to
// the configured default.
func (h *dashboardHandler) currencyParam(c *gin.Context) string {
	currency := strings.ToUpper(c.Query("currency"))
	if currency == "" {
		currency = h.defaultCurrency
	}
	return currency
}

func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	metrics, err := h.dashboardService.GetDashboardMetrics(c.Request.Context(), userID, h.currencyParam(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error computing dashboard", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute dashboard metrics", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard metrics"})
		}
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func (h *dashboardHandler) getExposure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	exposures, err := h.analysisService.CalculateCurrencyExposure(c.Request.Context(), userID, h.currencyParam(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error computing exposure", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute currency exposure", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute currency exposure"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"exposures": exposures})
}

func (h *dashboardHandler) getRisk(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	analysis, err := h.analysisService.AnalyzeCurrencyRisk(c.Request.Context(), userID, h.currencyParam(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error analyzing risk", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to analyze currency risk", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze currency risk"})
		}
		return
	}
	c.JSON(http.StatusOK, analysis)
}
