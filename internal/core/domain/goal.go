package domain

import "time"

// Goal is a savings target the dashboard tracks progress against.
type Goal struct {
	GoalID        string         `json:"goalID"` // Primary Key (UUID)
	UserID        string         `json:"userID"`
	Name          string         `json:"name"`
	TargetAmount  CurrencyAmount `json:"targetAmount"`
	CurrentAmount CurrencyAmount `json:"currentAmount"`
	Currency      string         `json:"currency"`
	TargetDate    time.Time      `json:"targetDate"`
	IsActive      bool           `json:"isActive"`
	AuditFields
}
