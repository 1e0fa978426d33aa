package services

import (
	"context"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
)

// CurrencyAnalysisSvc computes currency exposure and risk over a user's
// portfolio snapshot.
type CurrencyAnalysisSvc interface {
	// CalculateCurrencyExposure groups the user's holdings by native
	// currency and returns exposures sorted by descending percentage.
	CalculateCurrencyExposure(ctx context.Context, userID, primaryCurrency string) ([]domain.CurrencyExposure, error)

	// AnalyzeCurrencyRisk derives the 0-100 risk score, volatility metrics,
	// recommendations and hedging options for the user's portfolio.
	AnalyzeCurrencyRisk(ctx context.Context, userID, primaryCurrency string) (*domain.CurrencyRiskAnalysis, error)
}
