package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the structure for creating a new loan.
type CreateLoanRequest struct {
	Name           string          `json:"name" binding:"required"`
	Principal      decimal.Decimal `json:"principal" binding:"required"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Currency       string          `json:"currency" binding:"required,len=3,uppercase,currency"`
	AnnualRate     decimal.Decimal `json:"annualRate"` // percent; zero-rate loans are valid
	TermMonths     int             `json:"termMonths" binding:"required,gt=0"`
	StartDate      time.Time       `json:"startDate" binding:"required"`
}

// UpdateLoanRequest defines the structure for updating a loan. Nil fields
// are left unchanged.
type UpdateLoanRequest struct {
	Name           *string          `json:"name,omitempty"`
	CurrentBalance *decimal.Decimal `json:"currentBalance,omitempty"`
	AnnualRate     *decimal.Decimal `json:"annualRate,omitempty"`
	TermMonths     *int             `json:"termMonths,omitempty"`
}
