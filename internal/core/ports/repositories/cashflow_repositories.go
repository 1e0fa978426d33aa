package repositories

import (
	"context"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
)

// IncomeReader defines read operations for income data
type IncomeReader interface {
	FindIncomeByID(ctx context.Context, incomeID, userID string) (*domain.Income, error)
	ListIncomesByUser(ctx context.Context, userID string) ([]domain.Income, error)
}

// IncomeWriter defines write operations for income data
type IncomeWriter interface {
	SaveIncome(ctx context.Context, income domain.Income) error
	UpdateIncome(ctx context.Context, income domain.Income) error
	DeleteIncome(ctx context.Context, incomeID, userID string, deleterUserID string) error
}

// IncomeRepositoryFacade combines all income-related repository interfaces
type IncomeRepositoryFacade interface {
	IncomeReader
	IncomeWriter
}

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, expenseID, userID string) (*domain.Expense, error)
	ListExpensesByUser(ctx context.Context, userID string) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID, userID string, deleterUserID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
