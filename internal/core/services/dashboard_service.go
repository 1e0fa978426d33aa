package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
	portsrepo "github.com/finsight-app/finsight_backend/internal/core/ports/repositories"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
)

// dashboardService aggregates a user's records into the dashboard snapshot.
// Everything is recomputed per request; nothing here is persisted.
type dashboardService struct {
	BaseService
	investmentRepo portsrepo.InvestmentReader
	incomeRepo     portsrepo.IncomeReader
	expenseRepo    portsrepo.ExpenseReader
	loanRepo       portsrepo.LoanReader
	goalRepo       portsrepo.GoalReader
	conversion     portssvc.ConversionSvc
}

// NewDashboardService creates a new dashboard aggregation service.
func NewDashboardService(
	investmentRepo portsrepo.InvestmentReader,
	incomeRepo portsrepo.IncomeReader,
	expenseRepo portsrepo.ExpenseReader,
	loanRepo portsrepo.LoanReader,
	goalRepo portsrepo.GoalReader,
	conversion portssvc.ConversionSvc,
) portssvc.DashboardSvc {
	return &dashboardService{
		investmentRepo: investmentRepo,
		incomeRepo:     incomeRepo,
		expenseRepo:    expenseRepo,
		loanRepo:       loanRepo,
		goalRepo:       goalRepo,
		conversion:     conversion,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// GetDashboardMetrics recomputes the dashboard snapshot for a user with
// every monetary value expressed in the given currency.
func (s *dashboardService) GetDashboardMetrics(ctx context.Context, userID, currency string) (*domain.DashboardMetrics, error) {
	currency = strings.ToUpper(currency)
	if err := domain.ValidateCurrencyCode(currency); err != nil {
		return nil, err
	}

	investments, err := s.investmentRepo.ListInvestmentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments for dashboard: %w", err)
	}
	incomes, err := s.incomeRepo.ListIncomesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes for dashboard: %w", err)
	}
	expenses, err := s.expenseRepo.ListExpensesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for dashboard: %w", err)
	}
	loans, err := s.loanRepo.ListLoansByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load loans for dashboard: %w", err)
	}
	goals, err := s.goalRepo.ListGoalsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals for dashboard: %w", err)
	}

	metrics := CalculateDashboardMetrics(ctx, s.conversion, investments, incomes, expenses, loans, goals, currency)

	s.LogInfo(ctx, "Dashboard metrics computed",
		slog.String("user_id", userID),
		slog.String("currency", currency),
		slog.String("net_worth", metrics.NetWorth.String()),
		slog.String("health_score", metrics.FinancialHealthScore.String()))

	return metrics, nil
}

// CalculateDashboardMetrics composes net worth, savings rate, debt-to-income,
// goal progress and the health score from in-memory record snapshots.
// Cash-type investments count as cash savings; everything else is portfolio.
func CalculateDashboardMetrics(
	ctx context.Context,
	conversion portssvc.ConversionSvc,
	investments []domain.Investment,
	incomes []domain.Income,
	expenses []domain.Expense,
	loans []domain.Loan,
	goals []domain.Goal,
	currency string,
) *domain.DashboardMetrics {
	portfolioValue := decimal.Zero
	cashSavings := decimal.Zero
	for _, inv := range investments {
		value := conversion.ConvertAmount(ctx, inv.CurrentValue(), inv.Currency, currency).EffectiveAmount()
		if strings.EqualFold(inv.Type, "cash") {
			cashSavings = cashSavings.Add(value)
		} else {
			portfolioValue = portfolioValue.Add(value)
		}
	}

	// Incomes are filtered on the active flag; expenses are always counted.
	monthlyIncome := decimal.Zero
	for _, inc := range incomes {
		if !inc.IsActive {
			continue
		}
		converted := conversion.ConvertAmount(ctx, inc.Amount.Amount, inc.Currency, currency).EffectiveAmount()
		monthlyIncome = monthlyIncome.Add(MonthlyEquivalent(converted, inc.Frequency))
	}
	monthlyExpenses := decimal.Zero
	for _, exp := range expenses {
		converted := conversion.ConvertAmount(ctx, exp.Amount.Amount, exp.Currency, currency).EffectiveAmount()
		monthlyExpenses = monthlyExpenses.Add(MonthlyEquivalent(converted, exp.Frequency))
	}

	totalDebt := decimal.Zero
	for _, loan := range loans {
		if !loan.CurrentBalance.IsPositive() {
			continue
		}
		totalDebt = totalDebt.Add(conversion.ConvertAmount(ctx, loan.CurrentBalance, loan.Currency, currency).EffectiveAmount())
	}

	goalProgress := make([]domain.GoalProgress, 0, len(goals))
	for _, goal := range goals {
		if !goal.IsActive {
			continue
		}
		pct := decimal.Zero
		if goal.TargetAmount.Amount.IsPositive() {
			pct = goal.CurrentAmount.Amount.Div(goal.TargetAmount.Amount).Mul(hundred)
			if pct.GreaterThan(hundred) {
				pct = hundred
			}
		}
		goalProgress = append(goalProgress, domain.GoalProgress{
			GoalID:     goal.GoalID,
			Name:       goal.Name,
			Percentage: pct.Round(2),
		})
	}

	savingsRate := CalculateSavingsRate(monthlyIncome, monthlyExpenses)
	debtToIncome := CalculateDebtToIncome(totalDebt, monthlyIncome)

	return &domain.DashboardMetrics{
		PortfolioValue:       portfolioValue.Round(2),
		CashSavings:          cashSavings.Round(2),
		TotalDebt:            totalDebt.Round(2),
		NetWorth:             portfolioValue.Add(cashSavings).Sub(totalDebt).Round(2),
		MonthlyIncome:        monthlyIncome.Round(2),
		MonthlyExpenses:      monthlyExpenses.Round(2),
		SavingsRate:          savingsRate.Round(2),
		DebtToIncomeRatio:    debtToIncome.Round(2),
		GoalProgress:         goalProgress,
		FinancialHealthScore: CalculateFinancialHealthScore(savingsRate, debtToIncome, portfolioValue, monthlyExpenses),
		Currency:             currency,
	}
}
