package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is a fixed-payment amortizing debt owned by a user.
type Loan struct {
	LoanID         string          `json:"loanID"` // Primary Key (UUID)
	UserID         string          `json:"userID"`
	Name           string          `json:"name"`
	Principal      CurrencyAmount  `json:"principal"`
	CurrentBalance decimal.Decimal `json:"currentBalance"` // native currency
	Currency       string          `json:"currency"`
	AnnualRate     decimal.Decimal `json:"annualRate"` // percent, e.g. 5.5
	TermMonths     int             `json:"termMonths"`
	StartDate      time.Time       `json:"startDate"`
	AuditFields
}

// AmortizationEntry is one month of an amortization schedule. The sequence
// terminates when RemainingBalance reaches ~0, which may be before the
// nominal term when the payment exceeds the required amount.
type AmortizationEntry struct {
	PaymentNumber    int             `json:"paymentNumber"`
	PrincipalPayment decimal.Decimal `json:"principalPayment"`
	InterestPayment  decimal.Decimal `json:"interestPayment"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// AmortizationResult is the full schedule with its derived totals.
type AmortizationResult struct {
	Schedule       []AmortizationEntry `json:"schedule"`
	MonthlyPayment decimal.Decimal     `json:"monthlyPayment"`
	TotalInterest  decimal.Decimal     `json:"totalInterest"`
	TotalPayments  int                 `json:"totalPayments"`
	PayoffDate     time.Time           `json:"payoffDate"`
	PaidOff        bool                `json:"paidOff"`
}

// LoanProjectionEntry is one month of a multi-currency loan projection in
// the user's primary currency. ExchangeRateImpact is the converted total
// minus the amortization-only total.
type LoanProjectionEntry struct {
	Month              int             `json:"month"`
	BalanceNative      decimal.Decimal `json:"balanceNative"`
	BalanceConverted   decimal.Decimal `json:"balanceConverted"`
	AmortizationChange decimal.Decimal `json:"amortizationChange"`
	ExchangeRateImpact decimal.Decimal `json:"exchangeRateImpact"`
}

// LoanProjection converts a loan's projected balances into the user's
// primary currency across a rolling horizon.
type LoanProjection struct {
	LoanID           string                `json:"loanID"`
	Currency         string                `json:"currency"`
	TargetCurrency   string                `json:"targetCurrency"`
	CurrentRate      decimal.Decimal       `json:"currentRate"`
	MonthlyRateDrift decimal.Decimal       `json:"monthlyRateDrift"`
	Entries          []LoanProjectionEntry `json:"entries"`
}
