package services

import (
	"context"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/finsight-app/finsight_backend/internal/dto"
)

// LoanReaderSvc defines read operations for loans
type LoanReaderSvc interface {
	GetLoanByID(ctx context.Context, loanID, userID string) (*domain.Loan, error)
	ListLoans(ctx context.Context, userID string) ([]domain.Loan, error)
}

// LoanWriterSvc defines write operations for loans
type LoanWriterSvc interface {
	CreateLoan(ctx context.Context, req dto.CreateLoanRequest, userID string) (*domain.Loan, error)
	UpdateLoan(ctx context.Context, loanID string, req dto.UpdateLoanRequest, userID string) (*domain.Loan, error)
	DeleteLoan(ctx context.Context, loanID, userID string) error
}

// LoanCalculatorSvc exposes the amortization engine over stored loans.
type LoanCalculatorSvc interface {
	// GenerateSchedule computes the amortization schedule, total interest
	// and payoff date for a loan's current balance. A loan with a zero or
	// negative balance short-circuits to an empty paid-off result.
	GenerateSchedule(ctx context.Context, loanID, userID string) (*domain.AmortizationResult, error)

	// ProjectLoan converts projected balances into the target currency over
	// a rolling horizon, splitting monthly change into amortization and
	// exchange-rate movement.
	ProjectLoan(ctx context.Context, loanID, userID, targetCurrency string, horizonMonths int) (*domain.LoanProjection, error)
}

// LoanSvcFacade combines all loan-related service interfaces
type LoanSvcFacade interface {
	LoanReaderSvc
	LoanWriterSvc
	LoanCalculatorSvc
}
