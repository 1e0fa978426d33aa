package services

import (
	"github.com/finsight-app/finsight_backend/internal/core/ports"
	portsrepo "github.com/finsight-app/finsight_backend/internal/core/ports/repositories"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryContainer, provider ports.RateProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Conversion first since the analysis, dashboard and budget services
	// depend on it.
	container.Conversion = NewConversionService(provider)

	tiers := NewRiskTierConfig(cfg.RiskTierMajor, cfg.RiskTierDeveloped, cfg.HedgeRatio)
	container.Analysis = NewAnalysisService(repos.Investment, provider, container.Conversion, tiers)

	container.Loan = NewLoanService(repos.Loan, provider)
	container.Dashboard = NewDashboardService(repos.Investment, repos.Income, repos.Expense, repos.Loan, repos.Goal, container.Conversion)

	container.Investment = NewInvestmentService(repos.Investment)
	container.Income = NewIncomeService(repos.Income)
	container.Expense = NewExpenseService(repos.Expense)
	container.Goal = NewGoalService(repos.Goal)
	container.Budget = NewBudgetService(repos.Budget, container.Conversion)

	return container
}
