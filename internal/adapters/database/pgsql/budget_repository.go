package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	portsrepo "github.com/finsight-app/finsight_backend/internal/core/ports/repositories"
)

// PgxBudgetRepository implements the budget repository interfaces using
// pgxpool. Limit and spent carry their own currency columns since the
// recorded spend may be in a different currency than the limit.
type PgxBudgetRepository struct {
	db *pgxpool.Pool
}

// NewBudgetRepository creates a new PgxBudgetRepository.
func NewBudgetRepository(db *pgxpool.Pool) *PgxBudgetRepository {
	return &PgxBudgetRepository{db: db}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	query := `
		INSERT INTO budgets (
			budget_id, user_id, category, limit_amount, limit_currency,
			spent_amount, spent_currency, period,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		budget.BudgetID, budget.UserID, budget.Category,
		budget.Limit.Amount, budget.Limit.Currency,
		budget.Spent.Amount, budget.Spent.Currency, budget.Period,
		budget.CreatedAt, budget.CreatedBy, budget.LastUpdatedAt, budget.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting budget: %w", err)
	}
	return nil
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID, userID string) (*domain.Budget, error) {
	query := `
		SELECT
			budget_id, user_id, category, limit_amount, limit_currency,
			spent_amount, spent_currency, period,
			created_at, created_by, last_updated_at, last_updated_by
		FROM budgets
		WHERE budget_id = $1 AND user_id = $2 AND deleted_at IS NULL
	`
	budget := &domain.Budget{}
	err := r.db.QueryRow(ctx, query, budgetID, userID).Scan(
		&budget.BudgetID, &budget.UserID, &budget.Category,
		&budget.Limit.Amount, &budget.Limit.Currency,
		&budget.Spent.Amount, &budget.Spent.Currency, &budget.Period,
		&budget.CreatedAt, &budget.CreatedBy, &budget.LastUpdatedAt, &budget.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding budget: %w", err)
	}
	return budget, nil
}

func (r *PgxBudgetRepository) ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error) {
	query := `
		SELECT
			budget_id, user_id, category, limit_amount, limit_currency,
			spent_amount, spent_currency, period,
			created_at, created_by, last_updated_at, last_updated_by
		FROM budgets
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY category ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying budgets: %w", err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		var budget domain.Budget
		err := rows.Scan(
			&budget.BudgetID, &budget.UserID, &budget.Category,
			&budget.Limit.Amount, &budget.Limit.Currency,
			&budget.Spent.Amount, &budget.Spent.Currency, &budget.Period,
			&budget.CreatedAt, &budget.CreatedBy, &budget.LastUpdatedAt, &budget.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning budget row: %w", err)
		}
		budgets = append(budgets, budget)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", rows.Err())
	}
	return budgets, nil
}

func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	query := `
		UPDATE budgets
		SET limit_amount = $1, spent_amount = $2, spent_currency = $3,
		    last_updated_at = $4, last_updated_by = $5
		WHERE budget_id = $6 AND user_id = $7 AND deleted_at IS NULL
	`
	cmdTag, err := r.db.Exec(ctx, query,
		budget.Limit.Amount, budget.Spent.Amount, budget.Spent.Currency,
		budget.LastUpdatedAt, budget.LastUpdatedBy,
		budget.BudgetID, budget.UserID,
	)
	if err != nil {
		return fmt.Errorf("error updating budget: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("budget not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID, userID string, deleterUserID string) error {
	query := `
		UPDATE budgets
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE budget_id = $3 AND user_id = $4 AND deleted_at IS NULL
	`
	cmdTag, err := r.db.Exec(ctx, query, time.Now(), deleterUserID, budgetID, userID)
	if err != nil {
		return fmt.Errorf("error deleting budget: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("budget not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
