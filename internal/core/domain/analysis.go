package domain

import "github.com/shopspring/decimal"

// RiskLevel is the static classification tier of a currency.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// CurrencyExposure is one currency's share of a portfolio snapshot.
// Percentages across a snapshot sum to 100 up to rounding.
type CurrencyExposure struct {
	Currency   string          `json:"currency"`
	TotalValue CurrencyAmount  `json:"totalValue"`
	Percentage decimal.Decimal `json:"percentage"` // [0,100]
	RiskLevel  RiskLevel       `json:"riskLevel"`
}

// VolatilityMetric is the standard deviation of daily log returns of a
// currency pair over a trailing window, expressed in percent.
type VolatilityMetric struct {
	Currency      string          `json:"currency"`
	Volatility30  decimal.Decimal `json:"volatility30"`
	Volatility90  decimal.Decimal `json:"volatility90"`
	Volatility365 decimal.Decimal `json:"volatility365"`
	Observations  int             `json:"observations"`
}

// HedgingOption suggests offsetting a fraction of one currency's exposure.
type HedgingOption struct {
	Currency    string          `json:"currency"`
	Exposure    decimal.Decimal `json:"exposure"`    // value in primary currency
	HedgeRatio  decimal.Decimal `json:"hedgeRatio"`  // configured fraction, 0.4-0.6
	HedgeAmount decimal.Decimal `json:"hedgeAmount"` // exposure * ratio
	Instrument  string          `json:"instrument"`  // e.g. "forward contract"
}

// CurrencyRiskAnalysis is one analysis run over a portfolio snapshot.
// It is derived per request and never persisted.
type CurrencyRiskAnalysis struct {
	Exposures       []CurrencyExposure `json:"exposures"`
	RiskScore       decimal.Decimal    `json:"riskScore"` // [0,100]
	PrimaryCurrency string             `json:"primaryCurrency"`
	ForeignFraction decimal.Decimal    `json:"foreignFraction"` // [0,100]
	Concentration   decimal.Decimal    `json:"concentration"`   // normalized Herfindahl, [0,100]
	Volatility      []VolatilityMetric `json:"volatility"`
	Recommendations []string           `json:"recommendations"`
	HedgingOptions  []HedgingOption    `json:"hedgingOptions"`
}

// GoalProgress is the dashboard's view of one active goal.
type GoalProgress struct {
	GoalID     string          `json:"goalID"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"` // capped at 100
}

// DashboardMetrics is the aggregate snapshot the dashboard renders.
// Recomputed per request, never stored.
type DashboardMetrics struct {
	PortfolioValue       decimal.Decimal `json:"portfolioValue"`
	CashSavings          decimal.Decimal `json:"cashSavings"`
	TotalDebt            decimal.Decimal `json:"totalDebt"`
	NetWorth             decimal.Decimal `json:"netWorth"`
	MonthlyIncome        decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses      decimal.Decimal `json:"monthlyExpenses"`
	SavingsRate          decimal.Decimal `json:"savingsRate"`       // [0,100]
	DebtToIncomeRatio    decimal.Decimal `json:"debtToIncomeRatio"` // percent
	GoalProgress         []GoalProgress  `json:"goalProgress"`
	FinancialHealthScore decimal.Decimal `json:"financialHealthScore"` // [0,100]
	Currency             string          `json:"currency"`
}
