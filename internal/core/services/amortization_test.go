package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/services"
)

func TestCalculateMonthlyPayment_ZeroRate(t *testing.T) {
	payment := services.CalculateMonthlyPayment(decimal.NewFromInt(12000), decimal.Zero, 24)
	assert.True(t, payment.Equal(decimal.NewFromInt(500)), "got %s", payment)
}

func TestCalculateMonthlyPayment_CarLoan(t *testing.T) {
	// 25000 at 5.5% over 60 months
	payment := services.CalculateMonthlyPayment(decimal.NewFromInt(25000), decimal.NewFromFloat(5.5), 60)
	f, _ := payment.Float64()
	assert.InDelta(t, 477.53, f, 0.01)
}

func TestCalculateMonthlyPayment_Mortgage(t *testing.T) {
	// 300000 at 3.5% over 360 months
	payment := services.CalculateMonthlyPayment(decimal.NewFromInt(300000), decimal.NewFromFloat(3.5), 360)
	f, _ := payment.Float64()
	assert.InDelta(t, 1347.13, f, 0.01)
}

func TestCalculateMonthlyPayment_HighRateBounds(t *testing.T) {
	// 10000 at 25% over 36 months: payment must exceed the interest-free
	// installment but stay below the whole principal.
	principal := decimal.NewFromInt(10000)
	payment := services.CalculateMonthlyPayment(principal, decimal.NewFromInt(25), 36)

	assert.True(t, payment.GreaterThan(principal.Div(decimal.NewFromInt(36))), "got %s", payment)
	assert.True(t, payment.LessThan(principal), "got %s", payment)
}

func TestCalculateMonthlyPayment_DegenerateInputs(t *testing.T) {
	assert.True(t, services.CalculateMonthlyPayment(decimal.NewFromInt(1000), decimal.NewFromInt(5), 0).IsZero())
	assert.True(t, services.CalculateMonthlyPayment(decimal.Zero, decimal.NewFromInt(5), 12).IsZero())
	assert.True(t, services.CalculateMonthlyPayment(decimal.NewFromInt(-100), decimal.NewFromInt(5), 12).IsZero())
}

func TestGenerateAmortizationSchedule_ZeroRate(t *testing.T) {
	principal := decimal.NewFromInt(12000)
	payment := services.CalculateMonthlyPayment(principal, decimal.Zero, 24)

	schedule, err := services.GenerateAmortizationSchedule(principal, decimal.Zero, 24, payment)
	require.NoError(t, err)

	assert.Len(t, schedule, 24)
	assert.True(t, services.CalculateTotalInterest(schedule).IsZero())
	assert.True(t, schedule[len(schedule)-1].RemainingBalance.IsZero())
}

func TestGenerateAmortizationSchedule_ConservesPrincipal(t *testing.T) {
	principal := decimal.NewFromInt(25000)
	rate := decimal.NewFromFloat(5.5)
	payment := services.CalculateMonthlyPayment(principal, rate, 60)

	schedule, err := services.GenerateAmortizationSchedule(principal, rate, 60, payment)
	require.NoError(t, err)

	totalPrincipal := decimal.Zero
	for _, e := range schedule {
		totalPrincipal = totalPrincipal.Add(e.PrincipalPayment)
	}
	diff, _ := totalPrincipal.Sub(principal).Abs().Float64()
	assert.Less(t, diff, 0.02, "principal paid %s vs principal %s", totalPrincipal, principal)

	// Rounding in the fixed payment means the schedule may run a payment or
	// two past the nominal term, never far from it.
	assert.InDelta(t, 60, len(schedule), 2)
}

func TestGenerateAmortizationSchedule_BalanceMonotonicallyDecreases(t *testing.T) {
	principal := decimal.NewFromInt(10000)
	rate := decimal.NewFromInt(25)
	payment := services.CalculateMonthlyPayment(principal, rate, 36)

	schedule, err := services.GenerateAmortizationSchedule(principal, rate, 36, payment)
	require.NoError(t, err)

	prev := principal
	for _, e := range schedule {
		assert.True(t, e.RemainingBalance.LessThan(prev), "payment %d: %s not below %s", e.PaymentNumber, e.RemainingBalance, prev)
		assert.False(t, e.RemainingBalance.IsNegative())
		prev = e.RemainingBalance
	}
}

func TestGenerateAmortizationSchedule_OverpaymentShortensSchedule(t *testing.T) {
	principal := decimal.NewFromInt(12000)
	rate := decimal.NewFromInt(6)

	// Paying roughly double the required amount should halve the schedule.
	required := services.CalculateMonthlyPayment(principal, rate, 24)
	schedule, err := services.GenerateAmortizationSchedule(principal, rate, 24, required.Mul(decimal.NewFromInt(2)))
	require.NoError(t, err)

	assert.Less(t, len(schedule), 24)
	assert.True(t, schedule[len(schedule)-1].RemainingBalance.IsZero())
}

func TestGenerateAmortizationSchedule_PaymentBelowInterest(t *testing.T) {
	// 1% of 10000 monthly interest is ~208; a 100 payment never amortizes.
	_, err := services.GenerateAmortizationSchedule(decimal.NewFromInt(10000), decimal.NewFromInt(25), 36, decimal.NewFromInt(100))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCalculation)
}

func TestGenerateAmortizationSchedule_ZeroPrincipal(t *testing.T) {
	schedule, err := services.GenerateAmortizationSchedule(decimal.Zero, decimal.NewFromInt(5), 12, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Empty(t, schedule)
}
