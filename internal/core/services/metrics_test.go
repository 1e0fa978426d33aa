package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/finsight-app/finsight_backend/internal/core/services"
)

func TestMonthlyEquivalent(t *testing.T) {
	tests := []struct {
		name      string
		amount    decimal.Decimal
		frequency domain.Frequency
		expected  float64
	}{
		{"daily", decimal.NewFromInt(10), domain.FrequencyDaily, 304.4},
		{"weekly", decimal.NewFromInt(1000), domain.FrequencyWeekly, 4330},
		{"biweekly", decimal.NewFromInt(1000), domain.FrequencyBiWeekly, 2170},
		{"monthly", decimal.NewFromInt(2500), domain.FrequencyMonthly, 2500},
		{"quarterly", decimal.NewFromInt(900), domain.FrequencyQuarterly, 300},
		{"annually", decimal.NewFromInt(60000), domain.FrequencyAnnually, 5000},
		{"unknown treated as monthly", decimal.NewFromInt(2500), domain.Frequency("fortnightly"), 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := services.MonthlyEquivalent(tt.amount, tt.frequency).Float64()
			assert.InDelta(t, tt.expected, got, 0.01)
		})
	}
}

func TestCalculateSavingsRate(t *testing.T) {
	// 5000 income, 4000 expenses: 20%
	rate := services.CalculateSavingsRate(decimal.NewFromInt(5000), decimal.NewFromInt(4000))
	assert.True(t, rate.Equal(decimal.NewFromInt(20)), "got %s", rate)

	// zero income clamps to zero
	assert.True(t, services.CalculateSavingsRate(decimal.Zero, decimal.NewFromInt(1000)).IsZero())

	// expenses above income clamp to zero, never negative
	assert.True(t, services.CalculateSavingsRate(decimal.NewFromInt(3000), decimal.NewFromInt(5000)).IsZero())

	// zero expenses means a 100% rate
	rate = services.CalculateSavingsRate(decimal.NewFromInt(3000), decimal.Zero)
	assert.True(t, rate.Equal(decimal.NewFromInt(100)), "got %s", rate)
}

func TestCalculateDebtToIncome(t *testing.T) {
	// 24000 debt against 5000/month (60000/year) is 40%
	dti := services.CalculateDebtToIncome(decimal.NewFromInt(24000), decimal.NewFromInt(5000))
	assert.True(t, dti.Equal(decimal.NewFromInt(40)), "got %s", dti)

	// zero income yields zero rather than dividing
	assert.True(t, services.CalculateDebtToIncome(decimal.NewFromInt(10000), decimal.Zero).IsZero())
}

func TestCalculateFinancialHealthScore_Buckets(t *testing.T) {
	// Strong profile: 25% savings, 10% DTI, a year of expenses in the
	// portfolio. All four buckets max out.
	score := services.CalculateFinancialHealthScore(
		decimal.NewFromInt(25),
		decimal.NewFromInt(10),
		decimal.NewFromInt(36000),
		decimal.NewFromInt(3000),
	)
	assert.True(t, score.Equal(decimal.NewFromInt(100)), "got %s", score)

	// Nothing saved, no assets, crushing debt: zero.
	score = services.CalculateFinancialHealthScore(
		decimal.Zero,
		decimal.NewFromInt(80),
		decimal.Zero,
		decimal.NewFromInt(3000),
	)
	assert.True(t, score.IsZero(), "got %s", score)
}

func TestCalculateFinancialHealthScore_MidTiers(t *testing.T) {
	// 12% savings (20), 30% DTI (15), 4 months emergency fund (15),
	// portfolio bonus (20) = 70.
	score := services.CalculateFinancialHealthScore(
		decimal.NewFromInt(12),
		decimal.NewFromInt(30),
		decimal.NewFromInt(12000),
		decimal.NewFromInt(3000),
	)
	assert.True(t, score.Equal(decimal.NewFromInt(70)), "got %s", score)
}

func TestCalculateFinancialHealthScore_NoExpensesWithAssets(t *testing.T) {
	// No expenses on record but assets exist: emergency bucket maxes out.
	// 0 savings (0), 0 DTI (25), emergency (25), portfolio (20) = 70.
	score := services.CalculateFinancialHealthScore(
		decimal.Zero,
		decimal.Zero,
		decimal.NewFromInt(5000),
		decimal.Zero,
	)
	assert.True(t, score.Equal(decimal.NewFromInt(70)), "got %s", score)
}

func TestCalculateFinancialHealthScore_AlwaysInRange(t *testing.T) {
	cases := []struct{ savings, dti, portfolio, expenses int64 }{
		{0, 0, 0, 0},
		{100, 0, 1000000, 1},
		{50, 200, 0, 5000},
		{5, 43, 3000, 3000},
	}
	for _, c := range cases {
		score := services.CalculateFinancialHealthScore(
			decimal.NewFromInt(c.savings),
			decimal.NewFromInt(c.dti),
			decimal.NewFromInt(c.portfolio),
			decimal.NewFromInt(c.expenses),
		)
		assert.False(t, score.IsNegative())
		assert.True(t, score.LessThanOrEqual(decimal.NewFromInt(100)))
	}
}
