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

// PgxInvestmentRepository implements the investment repository interfaces
// using pgxpool.
type PgxInvestmentRepository struct {
	db *pgxpool.Pool
}

// NewInvestmentRepository creates a new PgxInvestmentRepository.
func NewInvestmentRepository(db *pgxpool.Pool) *PgxInvestmentRepository {
	return &PgxInvestmentRepository{db: db}
}

var _ portsrepo.InvestmentRepositoryFacade = (*PgxInvestmentRepository)(nil)

func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, inv domain.Investment) error {
	query := `
		INSERT INTO investments (
			investment_id, user_id, symbol, name, type, quantity,
			purchase_price, current_price, currency, purchase_date,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.Exec(ctx, query,
		inv.InvestmentID, inv.UserID, inv.Symbol, inv.Name, inv.Type, inv.Quantity,
		inv.PurchasePrice.Amount, inv.CurrentPrice, inv.Currency, inv.PurchaseDate,
		inv.CreatedAt, inv.CreatedBy, inv.LastUpdatedAt, inv.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting investment: %w", err)
	}
	return nil
}

func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID, userID string) (*domain.Investment, error) {
	query := `
		SELECT
			investment_id, user_id, symbol, name, type, quantity,
			purchase_price, current_price, currency, purchase_date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM investments
		WHERE investment_id = $1 AND user_id = $2 AND deleted_at IS NULL
	`
	inv := &domain.Investment{}
	err := r.db.QueryRow(ctx, query, investmentID, userID).Scan(
		&inv.InvestmentID, &inv.UserID, &inv.Symbol, &inv.Name, &inv.Type, &inv.Quantity,
		&inv.PurchasePrice.Amount, &inv.CurrentPrice, &inv.Currency, &inv.PurchaseDate,
		&inv.CreatedAt, &inv.CreatedBy, &inv.LastUpdatedAt, &inv.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding investment: %w", err)
	}
	inv.PurchasePrice.Currency = inv.Currency
	return inv, nil
}

func (r *PgxInvestmentRepository) ListInvestmentsByUser(ctx context.Context, userID string) ([]domain.Investment, error) {
	query := `
		SELECT
			investment_id, user_id, symbol, name, type, quantity,
			purchase_price, current_price, currency, purchase_date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM investments
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY purchase_date DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying investments: %w", err)
	}
	defer rows.Close()

	investments := []domain.Investment{}
	for rows.Next() {
		var inv domain.Investment
		err := rows.Scan(
			&inv.InvestmentID, &inv.UserID, &inv.Symbol, &inv.Name, &inv.Type, &inv.Quantity,
			&inv.PurchasePrice.Amount, &inv.CurrentPrice, &inv.Currency, &inv.PurchaseDate,
			&inv.CreatedAt, &inv.CreatedBy, &inv.LastUpdatedAt, &inv.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning investment row: %w", err)
		}
		inv.PurchasePrice.Currency = inv.Currency
		investments = append(investments, inv)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating investment rows: %w", rows.Err())
	}
	return investments, nil
}

func (r *PgxInvestmentRepository) UpdateInvestment(ctx context.Context, inv domain.Investment) error {
	query := `
		UPDATE investments
		SET name = $1, quantity = $2, current_price = $3,
		    last_updated_at = $4, last_updated_by = $5
		WHERE investment_id = $6 AND user_id = $7 AND deleted_at IS NULL
	`
	cmdTag, err := r.db.Exec(ctx, query,
		inv.Name, inv.Quantity, inv.CurrentPrice,
		inv.LastUpdatedAt, inv.LastUpdatedBy,
		inv.InvestmentID, inv.UserID,
	)
	if err != nil {
		return fmt.Errorf("error updating investment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("investment not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxInvestmentRepository) DeleteInvestment(ctx context.Context, investmentID, userID string, deleterUserID string) error {
	query := `
		UPDATE investments
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE investment_id = $3 AND user_id = $4 AND deleted_at IS NULL
	`
	cmdTag, err := r.db.Exec(ctx, query, time.Now(), deleterUserID, investmentID, userID)
	if err != nil {
		return fmt.Errorf("error deleting investment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("investment not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
