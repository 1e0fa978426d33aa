package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest defines the structure for creating an investment.
type CreateInvestmentRequest struct {
	Symbol        string           `json:"symbol" binding:"required"`
	Name          string           `json:"name" binding:"required"`
	Type          string           `json:"type" binding:"required"`
	Quantity      decimal.Decimal  `json:"quantity" binding:"required"`
	PurchasePrice decimal.Decimal  `json:"purchasePrice" binding:"required"`
	CurrentPrice  *decimal.Decimal `json:"currentPrice,omitempty"`
	Currency      string           `json:"currency" binding:"required,len=3,uppercase,currency"`
	PurchaseDate  time.Time        `json:"purchaseDate" binding:"required"`
}

// UpdateInvestmentRequest updates an investment. Nil fields are unchanged.
type UpdateInvestmentRequest struct {
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	CurrentPrice *decimal.Decimal `json:"currentPrice,omitempty"`
	Name         *string          `json:"name,omitempty"`
}

// CreateIncomeRequest defines the structure for creating an income source.
type CreateIncomeRequest struct {
	Source    string          `json:"source" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Currency  string          `json:"currency" binding:"required,len=3,uppercase,currency"`
	Frequency string          `json:"frequency" binding:"required"`
	IsActive  *bool           `json:"isActive,omitempty"` // defaults to true
	StartDate time.Time       `json:"startDate" binding:"required"`
}

// UpdateIncomeRequest updates an income source. Nil fields are unchanged.
type UpdateIncomeRequest struct {
	Source    *string          `json:"source,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Frequency *string          `json:"frequency,omitempty"`
	IsActive  *bool            `json:"isActive,omitempty"`
}

// CreateExpenseRequest defines the structure for creating an expense.
type CreateExpenseRequest struct {
	Category  string          `json:"category" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Currency  string          `json:"currency" binding:"required,len=3,uppercase,currency"`
	Frequency string          `json:"frequency" binding:"required"`
	Date      time.Time       `json:"date" binding:"required"`
}

// UpdateExpenseRequest updates an expense. Nil fields are unchanged.
type UpdateExpenseRequest struct {
	Category  *string          `json:"category,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Frequency *string          `json:"frequency,omitempty"`
}

// CreateGoalRequest defines the structure for creating a savings goal.
type CreateGoalRequest struct {
	Name          string          `json:"name" binding:"required"`
	TargetAmount  decimal.Decimal `json:"targetAmount" binding:"required"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Currency      string          `json:"currency" binding:"required,len=3,uppercase,currency"`
	TargetDate    time.Time       `json:"targetDate" binding:"required"`
}

// UpdateGoalRequest updates a goal. Nil fields are unchanged.
type UpdateGoalRequest struct {
	Name          *string          `json:"name,omitempty"`
	TargetAmount  *decimal.Decimal `json:"targetAmount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"currentAmount,omitempty"`
	IsActive      *bool            `json:"isActive,omitempty"`
}

// CreateBudgetRequest defines the structure for creating a budget category.
type CreateBudgetRequest struct {
	Category      string          `json:"category" binding:"required"`
	Limit         decimal.Decimal `json:"limit" binding:"required"`
	LimitCurrency string          `json:"limitCurrency" binding:"required,len=3,uppercase,currency"`
	Period        string          `json:"period" binding:"required,oneof=weekly monthly quarterly annually"`
}

// UpdateBudgetRequest updates a budget category. Nil fields are unchanged.
type UpdateBudgetRequest struct {
	Limit         *decimal.Decimal `json:"limit,omitempty"`
	Spent         *decimal.Decimal `json:"spent,omitempty"`
	SpentCurrency *string          `json:"spentCurrency,omitempty"`
}
