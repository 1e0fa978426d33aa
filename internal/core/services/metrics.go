package services

import (
	"github.com/shopspring/decimal"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
)

// Calendar-average multipliers for normalizing payment frequencies to a
// monthly figure.
var (
	multiplierDaily    = decimal.NewFromFloat(30.44)
	multiplierWeekly   = decimal.NewFromFloat(4.33) // 52/12
	multiplierBiWeekly = decimal.NewFromFloat(2.17)
	three              = decimal.NewFromInt(3)
	twelve             = decimal.NewFromInt(12)
	hundred            = decimal.NewFromInt(100)
)

// MonthlyEquivalent normalizes an amount of the given frequency to its
// monthly-equivalent figure. Unknown frequencies are treated as monthly.
func MonthlyEquivalent(amount decimal.Decimal, frequency domain.Frequency) decimal.Decimal {
	switch frequency {
	case domain.FrequencyDaily:
		return amount.Mul(multiplierDaily)
	case domain.FrequencyWeekly:
		return amount.Mul(multiplierWeekly)
	case domain.FrequencyBiWeekly:
		return amount.Mul(multiplierBiWeekly)
	case domain.FrequencyQuarterly:
		return amount.Div(three)
	case domain.FrequencyAnnually:
		return amount.Div(twelve)
	default:
		return amount
	}
}

// CalculateSavingsRate returns (income-expenses)/income as a percentage,
// clamped to zero when income is zero or expenses exceed income.
func CalculateSavingsRate(monthlyIncome, monthlyExpenses decimal.Decimal) decimal.Decimal {
	if !monthlyIncome.IsPositive() {
		return decimal.Zero
	}
	rate := monthlyIncome.Sub(monthlyExpenses).Div(monthlyIncome).Mul(hundred)
	if rate.IsNegative() {
		return decimal.Zero
	}
	return rate
}

// CalculateDebtToIncome returns total debt over annualized income as a
// percentage, zero when income is zero.
func CalculateDebtToIncome(totalDebt, monthlyIncome decimal.Decimal) decimal.Decimal {
	if !monthlyIncome.IsPositive() {
		return decimal.Zero
	}
	return totalDebt.Div(monthlyIncome.Mul(twelve)).Mul(hundred)
}

// CalculateFinancialHealthScore combines four independently capped buckets
// into a 0-100 score: savings rate (0-30), debt-to-income inverse (0-25),
// emergency-fund months (0-25) and a flat bonus for having any portfolio
// value (0-20).
func CalculateFinancialHealthScore(savingsRate, debtToIncome, portfolioValue, monthlyExpenses decimal.Decimal) decimal.Decimal {
	score := decimal.Zero

	switch {
	case savingsRate.GreaterThanOrEqual(decimal.NewFromInt(20)):
		score = score.Add(decimal.NewFromInt(30))
	case savingsRate.GreaterThanOrEqual(decimal.NewFromInt(10)):
		score = score.Add(decimal.NewFromInt(20))
	case savingsRate.GreaterThanOrEqual(decimal.NewFromInt(5)):
		score = score.Add(decimal.NewFromInt(10))
	}

	switch {
	case debtToIncome.LessThanOrEqual(decimal.NewFromInt(20)):
		score = score.Add(decimal.NewFromInt(25))
	case debtToIncome.LessThanOrEqual(decimal.NewFromInt(36)):
		score = score.Add(decimal.NewFromInt(15))
	case debtToIncome.LessThanOrEqual(decimal.NewFromInt(43)):
		score = score.Add(decimal.NewFromInt(5))
	}

	emergencyMonths := decimal.Zero
	if monthlyExpenses.IsPositive() {
		emergencyMonths = portfolioValue.Div(monthlyExpenses)
	} else if portfolioValue.IsPositive() {
		// No expenses on record but assets exist; liquidity is not the
		// binding constraint.
		emergencyMonths = decimal.NewFromInt(6)
	}
	switch {
	case emergencyMonths.GreaterThanOrEqual(decimal.NewFromInt(6)):
		score = score.Add(decimal.NewFromInt(25))
	case emergencyMonths.GreaterThanOrEqual(decimal.NewFromInt(3)):
		score = score.Add(decimal.NewFromInt(15))
	case emergencyMonths.GreaterThanOrEqual(decimal.NewFromInt(1)):
		score = score.Add(decimal.NewFromInt(5))
	}

	if portfolioValue.IsPositive() {
		score = score.Add(decimal.NewFromInt(20))
	}

	return score
}
