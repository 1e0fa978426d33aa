package domain

import "time"

// Frequency describes how often a recurring income or expense occurs.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiWeekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnually  Frequency = "annually"
)

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyAnnually:
		return true
	}
	return false
}

// Income is a recurring income source. Only active incomes count toward
// monthly aggregates.
type Income struct {
	IncomeID  string         `json:"incomeID"` // Primary Key (UUID)
	UserID    string         `json:"userID"`
	Source    string         `json:"source"`
	Amount    CurrencyAmount `json:"amount"`
	Currency  string         `json:"currency"`
	Frequency Frequency      `json:"frequency"`
	IsActive  bool           `json:"isActive"`
	StartDate time.Time      `json:"startDate"`
	AuditFields
}

// Expense is a recurring expense. Expenses carry no active flag; every
// expense on record counts toward monthly aggregates.
type Expense struct {
	ExpenseID string         `json:"expenseID"` // Primary Key (UUID)
	UserID    string         `json:"userID"`
	Category  string         `json:"category"`
	Amount    CurrencyAmount `json:"amount"`
	Currency  string         `json:"currency"`
	Frequency Frequency      `json:"frequency"`
	Date      time.Time      `json:"date"`
	AuditFields
}
