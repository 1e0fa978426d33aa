package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/dto"
	"github.com/finsight-app/finsight_backend/internal/middleware"
)

// currencyHandler handles HTTP requests for currency reference data and
// conversion.
type currencyHandler struct {
	conversionService portssvc.ConversionSvc
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.ConversionSvc) *currencyHandler {
	return &currencyHandler{conversionService: cs}
}

// registerCurrencyRoutes registers routes related to currencies and
// conversion.
func registerCurrencyRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvc) {
	h := newCurrencyHandler(conversionService)

	rg.GET("/currencies", h.listCurrencies)
	convert := rg.Group("/convert")
	{
		convert.POST("", h.convertAmount)
		convert.POST("/batch", h.convertBatch)
	}
}

func (h *currencyHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"currencies": domain.ListCurrencies()})
}

func (h *currencyHandler) convertAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConvertAmount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result := h.conversionService.ConvertAmount(c.Request.Context(), req.Amount, req.From, req.To)
	c.JSON(http.StatusOK, result)
}

func (h *currencyHandler) convertBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConvertBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amounts := make([]domain.CurrencyAmount, 0, len(req.Amounts))
	for _, a := range req.Amounts {
		amounts = append(amounts, domain.NewCurrencyAmount(a.Amount, a.Currency))
	}

	results := h.conversionService.ConvertMultipleAmounts(c.Request.Context(), amounts, req.To)
	c.JSON(http.StatusOK, gin.H{"results": results, "targetCurrency": req.To})
}
