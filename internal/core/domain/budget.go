package domain

import "github.com/shopspring/decimal"

// Budget is a per-category spending limit with the spend accumulated against
// it. Limit and Spent may be denominated in different currencies; alert
// generation converts before comparing.
type Budget struct {
	BudgetID string         `json:"budgetID"` // Primary Key (UUID)
	UserID   string         `json:"userID"`
	Category string         `json:"category"`
	Limit    CurrencyAmount `json:"limit"`
	Spent    CurrencyAmount `json:"spent"`
	Period   string         `json:"period"` // e.g. "monthly"
	AuditFields
}

// AlertSeverity classifies how close a category is to its limit.
type AlertSeverity string

const (
	AlertInfo    AlertSeverity = "info"
	AlertWarning AlertSeverity = "warning"
	AlertDanger  AlertSeverity = "danger"
)

// BudgetAlert is the per-category comparison result after conversion.
type BudgetAlert struct {
	Category       string          `json:"category"`
	Spent          CurrencyAmount  `json:"spent"`
	Limit          CurrencyAmount  `json:"limit"`
	PercentageUsed decimal.Decimal `json:"percentageUsed"`
	Severity       AlertSeverity   `json:"severity"`
	CrossCurrency  bool            `json:"crossCurrency"`
}

// BudgetAlertReport bundles the alerts with the textual recommendations the
// dashboard renders next to them.
type BudgetAlertReport struct {
	Alerts          []BudgetAlert `json:"alerts"`
	Recommendations []string      `json:"recommendations"`
}
