package repositories

import (
	"context"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
)

// BudgetReader defines read operations for budget data
type BudgetReader interface {
	FindBudgetByID(ctx context.Context, budgetID, userID string) (*domain.Budget, error)
	ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budget data
type BudgetWriter interface {
	SaveBudget(ctx context.Context, budget domain.Budget) error
	UpdateBudget(ctx context.Context, budget domain.Budget) error
	DeleteBudget(ctx context.Context, budgetID, userID string, deleterUserID string) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
