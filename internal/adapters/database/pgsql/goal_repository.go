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

// PgxGoalRepository implements the goal repository interfaces using pgxpool.
type PgxGoalRepository struct {
	db *pgxpool.Pool
}

// NewGoalRepository creates a new PgxGoalRepository.
func NewGoalRepository(db *pgxpool.Pool) *PgxGoalRepository {
	return &PgxGoalRepository{db: db}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	query := `
		INSERT INTO goals (
			goal_id, user_id, name, target_amount, current_amount, currency,
			target_date, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		goal.GoalID, goal.UserID, goal.Name, goal.TargetAmount.Amount, goal.CurrentAmount.Amount,
		goal.Currency, goal.TargetDate, goal.IsActive,
		goal.CreatedAt, goal.CreatedBy, goal.LastUpdatedAt, goal.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting goal: %w", err)
	}
	return nil
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID, userID string) (*domain.Goal, error) {
	query := `
		SELECT
			goal_id, user_id, name, target_amount, current_amount, currency,
			target_date, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM goals
		WHERE goal_id = $1 AND user_id = $2 AND deleted_at IS NULL
	`
	goal := &domain.Goal{}
	err := r.db.QueryRow(ctx, query, goalID, userID).Scan(
		&goal.GoalID, &goal.UserID, &goal.Name, &goal.TargetAmount.Amount, &goal.CurrentAmount.Amount,
		&goal.Currency, &goal.TargetDate, &goal.IsActive,
		&goal.CreatedAt, &goal.CreatedBy, &goal.LastUpdatedAt, &goal.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding goal: %w", err)
	}
	goal.TargetAmount.Currency = goal.Currency
	goal.CurrentAmount.Currency = goal.Currency
	return goal, nil
}

func (r *PgxGoalRepository) ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := `
		SELECT
			goal_id, user_id, name, target_amount, current_amount, currency,
			target_date, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM goals
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY target_date ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying goals: %w", err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		var goal domain.Goal
		err := rows.Scan(
			&goal.GoalID, &goal.UserID, &goal.Name, &goal.TargetAmount.Amount, &goal.CurrentAmount.Amount,
			&goal.Currency, &goal.TargetDate, &goal.IsActive,
			&goal.CreatedAt, &goal.CreatedBy, &goal.LastUpdatedAt, &goal.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning goal row: %w", err)
		}
		goal.TargetAmount.Currency = goal.Currency
		goal.CurrentAmount.Currency = goal.Currency
		goals = append(goals, goal)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", rows.Err())
	}
	return goals, nil
}

func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	query := `
		UPDATE goals
		SET name = $1, target_amount = $2, current_amount = $3, is_active = $4,
		    last_updated_at = $5, last_updated_by = $6
		WHERE goal_id = $7 AND user_id = $8 AND deleted_at IS NULL
	`
	cmdTag, err := r.db.Exec(ctx, query,
		goal.Name, goal.TargetAmount.Amount, goal.CurrentAmount.Amount, goal.IsActive,
		goal.LastUpdatedAt, goal.LastUpdatedBy,
		goal.GoalID, goal.UserID,
	)
	if err != nil {
		return fmt.Errorf("error updating goal: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("goal not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID, userID string, deleterUserID string) error {
	query := `
		UPDATE goals
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE goal_id = $3 AND user_id = $4 AND deleted_at IS NULL
	`
	cmdTag, err := r.db.Exec(ctx, query, time.Now(), deleterUserID, goalID, userID)
	if err != nil {
		return fmt.Errorf("error deleting goal: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("goal not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
