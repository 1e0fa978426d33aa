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

// PgxIncomeRepository implements the income repository interfaces using
// pgxpool.
type PgxIncomeRepository struct {
	db *pgxpool.Pool
}

// NewIncomeRepository creates a new PgxIncomeRepository.
func NewIncomeRepository(db *pgxpool.Pool) *PgxIncomeRepository {
	return &PgxIncomeRepository{db: db}
}

var _ portsrepo.IncomeRepositoryFacade = (*PgxIncomeRepository)(nil)

func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	query := `
		INSERT INTO incomes (
			income_id, user_id, source, amount, currency, frequency, is_active, start_date,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		income.IncomeID, income.UserID, income.Source, income.Amount.Amount,
		income.Currency, income.Frequency, income.IsActive, income.StartDate,
		income.CreatedAt, income.CreatedBy, income.LastUpdatedAt, income.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting income: %w", err)
	}
	return nil
}

func (r *PgxIncomeRepository) FindIncomeByID(ctx context.Context, incomeID, userID string) (*domain.Income, error) {
	query := `
		SELECT
			income_id, user_id, source, amount, currency, frequency, is_active, start_date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM incomes
		WHERE income_id = $1 AND user_id = $2 AND deleted_at IS NULL
	`
	income := &domain.Income{}
	err := r.db.QueryRow(ctx, query, incomeID, userID).Scan(
		&income.IncomeID, &income.UserID, &income.Source, &income.Amount.Amount,
		&income.Currency, &income.Frequency, &income.IsActive, &income.StartDate,
		&income.CreatedAt, &income.CreatedBy, &income.LastUpdatedAt, &income.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding income: %w", err)
	}
	income.Amount.Currency = income.Currency
	return income, nil
}

func (r *PgxIncomeRepository) ListIncomesByUser(ctx context.Context, userID string) ([]domain.Income, error) {
	query := `
		SELECT
			income_id, user_id, source, amount, currency, frequency, is_active, start_date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM incomes
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying incomes: %w", err)
	}
	defer rows.Close()

	incomes := []domain.Income{}
	for rows.Next() {
		var income domain.Income
		err := rows.Scan(
			&income.IncomeID, &income.UserID, &income.Source, &income.Amount.Amount,
			&income.Currency, &income.Frequency, &income.IsActive, &income.StartDate,
			&income.CreatedAt, &income.CreatedBy, &income.LastUpdatedAt, &income.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning income row: %w", err)
		}
		income.Amount.Currency = income.Currency
		incomes = append(incomes, income)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating income rows: %w", rows.Err())
	}
	return incomes, nil
}

func (r *PgxIncomeRepository) UpdateIncome(ctx context.Context, income domain.Income) error {
	query := `
		UPDATE incomes
		SET source = $1, amount = $2, frequency = $3, is_active = $4,
		    last_updated_at = $5, last_updated_by = $6
		WHERE income_id = $7 AND user_id = $8 AND deleted_at IS NULL
	`
	cmdTag, err := r.db.Exec(ctx, query,
		income.Source, income.Amount.Amount, income.Frequency, income.IsActive,
		income.LastUpdatedAt, income.LastUpdatedBy,
		income.IncomeID, income.UserID,
	)
	if err != nil {
		return fmt.Errorf("error updating income: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("income not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxIncomeRepository) DeleteIncome(ctx context.Context, incomeID, userID string, deleterUserID string) error {
	query := `
		UPDATE incomes
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE income_id = $3 AND user_id = $4 AND deleted_at IS NULL
	`
	cmdTag, err := r.db.Exec(ctx, query, time.Now(), deleterUserID, incomeID, userID)
	if err != nil {
		return fmt.Errorf("error deleting income: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("income not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

// PgxExpenseRepository implements the expense repository interfaces using
// pgxpool.
type PgxExpenseRepository struct {
	db *pgxpool.Pool
}

// NewExpenseRepository creates a new PgxExpenseRepository.
func NewExpenseRepository(db *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{db: db}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (
			expense_id, user_id, category, amount, currency, frequency, date,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		expense.ExpenseID, expense.UserID, expense.Category, expense.Amount.Amount,
		expense.Currency, expense.Frequency, expense.Date,
		expense.CreatedAt, expense.CreatedBy, expense.LastUpdatedAt, expense.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID, userID string) (*domain.Expense, error) {
	query := `
		SELECT
			expense_id, user_id, category, amount, currency, frequency, date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE expense_id = $1 AND user_id = $2 AND deleted_at IS NULL
	`
	expense := &domain.Expense{}
	err := r.db.QueryRow(ctx, query, expenseID, userID).Scan(
		&expense.ExpenseID, &expense.UserID, &expense.Category, &expense.Amount.Amount,
		&expense.Currency, &expense.Frequency, &expense.Date,
		&expense.CreatedAt, &expense.CreatedBy, &expense.LastUpdatedAt, &expense.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding expense: %w", err)
	}
	expense.Amount.Currency = expense.Currency
	return expense, nil
}

func (r *PgxExpenseRepository) ListExpensesByUser(ctx context.Context, userID string) ([]domain.Expense, error) {
	query := `
		SELECT
			expense_id, user_id, category, amount, currency, frequency, date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY date DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var expense domain.Expense
		err := rows.Scan(
			&expense.ExpenseID, &expense.UserID, &expense.Category, &expense.Amount.Amount,
			&expense.Currency, &expense.Frequency, &expense.Date,
			&expense.CreatedAt, &expense.CreatedBy, &expense.LastUpdatedAt, &expense.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning expense row: %w", err)
		}
		expense.Amount.Currency = expense.Currency
		expenses = append(expenses, expense)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		UPDATE expenses
		SET category = $1, amount = $2, frequency = $3,
		    last_updated_at = $4, last_updated_by = $5
		WHERE expense_id = $6 AND user_id = $7 AND deleted_at IS NULL
	`
	cmdTag, err := r.db.Exec(ctx, query,
		expense.Category, expense.Amount.Amount, expense.Frequency,
		expense.LastUpdatedAt, expense.LastUpdatedBy,
		expense.ExpenseID, expense.UserID,
	)
	if err != nil {
		return fmt.Errorf("error updating expense: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID, userID string, deleterUserID string) error {
	query := `
		UPDATE expenses
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE expense_id = $3 AND user_id = $4 AND deleted_at IS NULL
	`
	cmdTag, err := r.db.Exec(ctx, query, time.Now(), deleterUserID, expenseID, userID)
	if err != nil {
		return fmt.Errorf("error deleting expense: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
