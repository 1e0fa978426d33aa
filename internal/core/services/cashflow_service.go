package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	portsrepo "github.com/finsight-app/finsight_backend/internal/core/ports/repositories"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/dto"
)

// incomeService manages a user's recurring income sources.
type incomeService struct {
	BaseService
	incomeRepo portsrepo.IncomeRepositoryFacade
}

// NewIncomeService creates a new income service.
func NewIncomeService(repo portsrepo.IncomeRepositoryFacade) portssvc.IncomeSvcFacade {
	return &incomeService{incomeRepo: repo}
}

var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

// CreateIncome handles the creation of a new income source. New incomes
// default to active.
func (s *incomeService) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, userID string) (*domain.Income, error) {
	if err := domain.ValidateCurrencyCode(req.Currency); err != nil {
		return nil, err
	}
	frequency := domain.Frequency(req.Frequency)
	if !frequency.Valid() {
		return nil, fmt.Errorf("%w: unknown frequency '%s'", apperrors.ErrValidation, req.Frequency)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	code := strings.ToUpper(req.Currency)
	income := domain.Income{
		IncomeID:  uuid.NewString(),
		UserID:    userID,
		Source:    req.Source,
		Amount:    domain.NewCurrencyAmount(req.Amount, code),
		Currency:  code,
		Frequency: frequency,
		IsActive:  isActive,
		StartDate: req.StartDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.incomeRepo.SaveIncome(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income in service: %w", err)
	}
	return &income, nil
}

// ListIncomes retrieves all income sources for a user.
func (s *incomeService) ListIncomes(ctx context.Context, userID string) ([]domain.Income, error) {
	incomes, err := s.incomeRepo.ListIncomesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes in service: %w", err)
	}
	return incomes, nil
}

// UpdateIncome applies the non-nil fields of the request.
func (s *incomeService) UpdateIncome(ctx context.Context, incomeID string, req dto.UpdateIncomeRequest, userID string) (*domain.Income, error) {
	income, err := s.incomeRepo.FindIncomeByID(ctx, incomeID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find income for update: %w", err)
	}

	if req.Source != nil {
		income.Source = *req.Source
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		income.Amount.Amount = *req.Amount
	}
	if req.Frequency != nil {
		frequency := domain.Frequency(*req.Frequency)
		if !frequency.Valid() {
			return nil, fmt.Errorf("%w: unknown frequency '%s'", apperrors.ErrValidation, *req.Frequency)
		}
		income.Frequency = frequency
	}
	if req.IsActive != nil {
		income.IsActive = *req.IsActive
	}
	income.LastUpdatedAt = time.Now()
	income.LastUpdatedBy = userID

	if err := s.incomeRepo.UpdateIncome(ctx, *income); err != nil {
		return nil, fmt.Errorf("failed to update income in service: %w", err)
	}
	return income, nil
}

// DeleteIncome logically deletes an income source.
func (s *incomeService) DeleteIncome(ctx context.Context, incomeID, userID string) error {
	if err := s.incomeRepo.DeleteIncome(ctx, incomeID, userID, userID); err != nil {
		return fmt.Errorf("failed to delete income in service: %w", err)
	}
	return nil
}

// expenseService manages a user's recurring expenses.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: repo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense handles the creation of a new expense. Expenses carry no
// active flag; every expense on record counts toward monthly aggregates.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	if err := domain.ValidateCurrencyCode(req.Currency); err != nil {
		return nil, err
	}
	frequency := domain.Frequency(req.Frequency)
	if !frequency.Valid() {
		return nil, fmt.Errorf("%w: unknown frequency '%s'", apperrors.ErrValidation, req.Frequency)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	code := strings.ToUpper(req.Currency)
	expense := domain.Expense{
		ExpenseID: uuid.NewString(),
		UserID:    userID,
		Category:  req.Category,
		Amount:    domain.NewCurrencyAmount(req.Amount, code),
		Currency:  code,
		Frequency: frequency,
		Date:      req.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense in service: %w", err)
	}
	return &expense, nil
}

// ListExpenses retrieves all expenses for a user.
func (s *expenseService) ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpensesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses in service: %w", err)
	}
	return expenses, nil
}

// UpdateExpense applies the non-nil fields of the request.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense for update: %w", err)
	}

	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount.Amount = *req.Amount
	}
	if req.Frequency != nil {
		frequency := domain.Frequency(*req.Frequency)
		if !frequency.Valid() {
			return nil, fmt.Errorf("%w: unknown frequency '%s'", apperrors.ErrValidation, *req.Frequency)
		}
		expense.Frequency = frequency
	}
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = userID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to update expense in service: %w", err)
	}
	return expense, nil
}

// DeleteExpense logically deletes an expense.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID, userID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID, userID, userID); err != nil {
		return fmt.Errorf("failed to delete expense in service: %w", err)
	}
	return nil
}
