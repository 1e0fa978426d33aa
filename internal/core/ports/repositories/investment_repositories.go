package repositories

import (
	"context"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
)

// InvestmentReader defines read operations for investment data
type InvestmentReader interface {
	// FindInvestmentByID retrieves a single investment owned by the user.
	FindInvestmentByID(ctx context.Context, investmentID, userID string) (*domain.Investment, error)

	// ListInvestmentsByUser retrieves all non-deleted investments for a user.
	ListInvestmentsByUser(ctx context.Context, userID string) ([]domain.Investment, error)
}

// InvestmentWriter defines write operations for investment data
type InvestmentWriter interface {
	// SaveInvestment persists a new investment.
	SaveInvestment(ctx context.Context, inv domain.Investment) error

	// UpdateInvestment persists changes to an existing investment.
	UpdateInvestment(ctx context.Context, inv domain.Investment) error

	// DeleteInvestment logically deletes an investment.
	DeleteInvestment(ctx context.Context, investmentID, userID string, deleterUserID string) error
}

// InvestmentRepositoryFacade combines all investment-related repository interfaces
type InvestmentRepositoryFacade interface {
	InvestmentReader
	InvestmentWriter
}
