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

// PgxLoanRepository implements the loan repository interfaces using pgxpool.
type PgxLoanRepository struct {
	db *pgxpool.Pool
}

// NewLoanRepository creates a new PgxLoanRepository.
func NewLoanRepository(db *pgxpool.Pool) *PgxLoanRepository {
	return &PgxLoanRepository{db: db}
}

var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	query := `
		INSERT INTO loans (
			loan_id, user_id, name, principal, current_balance, currency,
			annual_rate, term_months, start_date,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.Exec(ctx, query,
		loan.LoanID, loan.UserID, loan.Name, loan.Principal.Amount, loan.CurrentBalance,
		loan.Currency, loan.AnnualRate, loan.TermMonths, loan.StartDate,
		loan.CreatedAt, loan.CreatedBy, loan.LastUpdatedAt, loan.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting loan: %w", err)
	}
	return nil
}

func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID, userID string) (*domain.Loan, error) {
	query := `
		SELECT
			loan_id, user_id, name, principal, current_balance, currency,
			annual_rate, term_months, start_date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM loans
		WHERE loan_id = $1 AND user_id = $2 AND deleted_at IS NULL
	`
	loan := &domain.Loan{}
	err := r.db.QueryRow(ctx, query, loanID, userID).Scan(
		&loan.LoanID, &loan.UserID, &loan.Name, &loan.Principal.Amount, &loan.CurrentBalance,
		&loan.Currency, &loan.AnnualRate, &loan.TermMonths, &loan.StartDate,
		&loan.CreatedAt, &loan.CreatedBy, &loan.LastUpdatedAt, &loan.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding loan: %w", err)
	}
	loan.Principal.Currency = loan.Currency
	return loan, nil
}

func (r *PgxLoanRepository) ListLoansByUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	query := `
		SELECT
			loan_id, user_id, name, principal, current_balance, currency,
			annual_rate, term_months, start_date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM loans
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY start_date DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying loans: %w", err)
	}
	defer rows.Close()

	loans := []domain.Loan{}
	for rows.Next() {
		var loan domain.Loan
		err := rows.Scan(
			&loan.LoanID, &loan.UserID, &loan.Name, &loan.Principal.Amount, &loan.CurrentBalance,
			&loan.Currency, &loan.AnnualRate, &loan.TermMonths, &loan.StartDate,
			&loan.CreatedAt, &loan.CreatedBy, &loan.LastUpdatedAt, &loan.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning loan row: %w", err)
		}
		loan.Principal.Currency = loan.Currency
		loans = append(loans, loan)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating loan rows: %w", rows.Err())
	}
	return loans, nil
}

func (r *PgxLoanRepository) UpdateLoan(ctx context.Context, loan domain.Loan) error {
	query := `
		UPDATE loans
		SET name = $1, current_balance = $2, annual_rate = $3, term_months = $4,
		    last_updated_at = $5, last_updated_by = $6
		WHERE loan_id = $7 AND user_id = $8 AND deleted_at IS NULL
	`
	cmdTag, err := r.db.Exec(ctx, query,
		loan.Name, loan.CurrentBalance, loan.AnnualRate, loan.TermMonths,
		loan.LastUpdatedAt, loan.LastUpdatedBy,
		loan.LoanID, loan.UserID,
	)
	if err != nil {
		return fmt.Errorf("error updating loan: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("loan not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxLoanRepository) DeleteLoan(ctx context.Context, loanID, userID string, deleterUserID string) error {
	query := `
		UPDATE loans
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE loan_id = $3 AND user_id = $4 AND deleted_at IS NULL
	`
	cmdTag, err := r.db.Exec(ctx, query, time.Now(), deleterUserID, loanID, userID)
	if err != nil {
		return fmt.Errorf("error deleting loan: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("loan not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
