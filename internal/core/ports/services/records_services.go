package services

import (
	"context"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/finsight-app/finsight_backend/internal/dto"
)

// InvestmentSvcFacade manages a user's investment records.
type InvestmentSvcFacade interface {
	CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest, userID string) (*domain.Investment, error)
	GetInvestmentByID(ctx context.Context, investmentID, userID string) (*domain.Investment, error)
	ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error)
	UpdateInvestment(ctx context.Context, investmentID string, req dto.UpdateInvestmentRequest, userID string) (*domain.Investment, error)
	DeleteInvestment(ctx context.Context, investmentID, userID string) error
}

// IncomeSvcFacade manages a user's income records.
type IncomeSvcFacade interface {
	CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, userID string) (*domain.Income, error)
	ListIncomes(ctx context.Context, userID string) ([]domain.Income, error)
	UpdateIncome(ctx context.Context, incomeID string, req dto.UpdateIncomeRequest, userID string) (*domain.Income, error)
	DeleteIncome(ctx context.Context, incomeID, userID string) error
}

// ExpenseSvcFacade manages a user's expense records.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID, userID string) error
}

// GoalSvcFacade manages a user's savings goals.
type GoalSvcFacade interface {
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest, userID string) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID, userID string) error
}

// BudgetSvcFacade manages budgets and exposes alert generation.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest, userID string) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID, userID string) error
	BudgetAlertSvc
}
