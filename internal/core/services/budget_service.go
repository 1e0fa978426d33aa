package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	portsrepo "github.com/finsight-app/finsight_backend/internal/core/ports/repositories"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/dto"
)

// Utilization thresholds for alert severity, in percent.
var (
	warningThreshold  = decimal.NewFromInt(80)
	dangerThreshold   = decimal.NewFromInt(100)
	highestSpendFloor = decimal.NewFromInt(50)
)

// budgetService manages budget categories and generates spending alerts.
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
	conversion portssvc.ConversionSvc
}

// NewBudgetService creates a new budget service.
func NewBudgetService(repo portsrepo.BudgetRepositoryFacade, conversion portssvc.ConversionSvc) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: repo, conversion: conversion}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CreateBudget handles the creation of a new budget category.
func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error) {
	if err := domain.ValidateCurrencyCode(req.LimitCurrency); err != nil {
		return nil, err
	}
	if !req.Limit.IsPositive() {
		return nil, fmt.Errorf("%w: budget limit must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	code := strings.ToUpper(req.LimitCurrency)
	budget := domain.Budget{
		BudgetID: uuid.NewString(),
		UserID:   userID,
		Category: req.Category,
		Limit:    domain.NewCurrencyAmount(req.Limit, code),
		Spent:    domain.NewCurrencyAmount(decimal.Zero, code),
		Period:   req.Period,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget in service: %w", err)
	}
	return &budget, nil
}

// ListBudgets retrieves all budget categories for a user.
func (s *budgetService) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets in service: %w", err)
	}
	return budgets, nil
}

// UpdateBudget applies the non-nil fields of the request to a budget. The
// recorded spend may be in a different currency than the limit; alert
// generation converts before comparing.
func (s *budgetService) UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest, userID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget for update: %w", err)
	}

	if req.Limit != nil {
		if !req.Limit.IsPositive() {
			return nil, fmt.Errorf("%w: budget limit must be positive", apperrors.ErrValidation)
		}
		budget.Limit.Amount = *req.Limit
	}
	if req.Spent != nil {
		budget.Spent.Amount = *req.Spent
	}
	if req.SpentCurrency != nil {
		if err := domain.ValidateCurrencyCode(*req.SpentCurrency); err != nil {
			return nil, err
		}
		budget.Spent.Currency = strings.ToUpper(*req.SpentCurrency)
	}
	budget.LastUpdatedAt = time.Now()
	budget.LastUpdatedBy = userID

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		return nil, fmt.Errorf("failed to update budget in service: %w", err)
	}
	return budget, nil
}

// DeleteBudget logically deletes a budget category.
func (s *budgetService) DeleteBudget(ctx context.Context, budgetID, userID string) error {
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID, userID, userID); err != nil {
		return fmt.Errorf("failed to delete budget in service: %w", err)
	}
	return nil
}

// GenerateAlerts compares each category's spend against its limit after
// currency conversion and classifies the utilization.
func (s *budgetService) GenerateAlerts(ctx context.Context, userID string) (*domain.BudgetAlertReport, error) {
	budgets, err := s.budgetRepo.ListBudgetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets for alerts: %w", err)
	}

	report := &domain.BudgetAlertReport{
		Alerts:          make([]domain.BudgetAlert, 0, len(budgets)),
		Recommendations: []string{},
	}

	for _, b := range budgets {
		alert := s.alertFor(ctx, b)
		report.Alerts = append(report.Alerts, alert)
	}

	s.buildRecommendations(report)

	s.LogInfo(ctx, "Budget alerts generated",
		slog.String("user_id", userID),
		slog.Int("categories", len(report.Alerts)))

	return report, nil
}

func (s *budgetService) alertFor(ctx context.Context, b domain.Budget) domain.BudgetAlert {
	spent := b.Spent
	crossCurrency := b.Spent.Currency != b.Limit.Currency
	if crossCurrency {
		spent = s.conversion.ConvertAmount(ctx, b.Spent.Amount, b.Spent.Currency, b.Limit.Currency)
	}

	pct := decimal.Zero
	if b.Limit.Amount.IsPositive() {
		pct = spent.EffectiveAmount().Div(b.Limit.Amount).Mul(hundred).Round(2)
	}

	severity := domain.AlertInfo
	switch {
	case pct.GreaterThanOrEqual(dangerThreshold):
		severity = domain.AlertDanger
	case pct.GreaterThanOrEqual(warningThreshold):
		severity = domain.AlertWarning
	}

	return domain.BudgetAlert{
		Category:       b.Category,
		Spent:          spent,
		Limit:          b.Limit,
		PercentageUsed: pct,
		Severity:       severity,
		CrossCurrency:  crossCurrency,
	}
}

func (s *budgetService) buildRecommendations(report *domain.BudgetAlertReport) {
	var dangers, warnings []string
	var highest *domain.BudgetAlert
	for i := range report.Alerts {
		a := &report.Alerts[i]
		switch a.Severity {
		case domain.AlertDanger:
			dangers = append(dangers, a.Category)
		case domain.AlertWarning:
			warnings = append(warnings, a.Category)
		}
		if highest == nil || a.Spent.EffectiveAmount().GreaterThan(highest.Spent.EffectiveAmount()) {
			highest = a
		}
		if a.CrossCurrency {
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("Spending in '%s' is tracked in %s against a %s limit and is exposed to exchange-rate volatility.",
					a.Category, a.Spent.Currency, a.Limit.Currency))
		}
	}

	if len(dangers) > 0 {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("Over budget in: %s. Reduce spending in these categories.", strings.Join(dangers, ", ")))
	}
	if len(warnings) > 0 {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("Approaching limits in: %s.", strings.Join(warnings, ", ")))
	}
	if highest != nil && highest.PercentageUsed.GreaterThan(highestSpendFloor) {
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("'%s' is your highest-spend category at %s%% of its limit.", highest.Category, highest.PercentageUsed))
	}
}
