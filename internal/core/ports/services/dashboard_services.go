package services

import (
	"context"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
)

// DashboardSvc aggregates a user's records into the dashboard snapshot.
type DashboardSvc interface {
	// GetDashboardMetrics recomputes the dashboard metrics for a user with
	// every monetary value expressed in the given currency.
	GetDashboardMetrics(ctx context.Context, userID, currency string) (*domain.DashboardMetrics, error)
}

// BudgetAlertSvc generates severity-tagged budget alerts.
type BudgetAlertSvc interface {
	// GenerateAlerts compares each category's spend against its limit after
	// currency conversion and classifies the result.
	GenerateAlerts(ctx context.Context, userID string) (*domain.BudgetAlertReport, error)
}
