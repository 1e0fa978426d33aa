package services

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
)

// balanceEpsilon is the residual below which a loan counts as paid off.
var balanceEpsilon = decimal.NewFromFloat(0.005)

// CalculateMonthlyPayment returns the fixed monthly payment for a loan,
// using P*r*(1+r)^n / ((1+r)^n - 1) with r the monthly rate. A zero annual
// rate divides the principal evenly across the term.
func CalculateMonthlyPayment(principal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 || !principal.IsPositive() {
		return decimal.Zero
	}
	if annualRatePercent.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(termMonths))).Round(2)
	}

	// The compounding factor needs a fractional power, so this one formula
	// runs in float64; inputs and the rounded result stay decimal.
	p, _ := principal.Float64()
	rate, _ := annualRatePercent.Float64()
	r := rate / 100 / 12
	factor := math.Pow(1+r, float64(termMonths))
	payment := p * r * factor / (factor - 1)

	return decimal.NewFromFloat(payment).Round(2)
}

// GenerateAmortizationSchedule iterates month by month until the balance
// reaches ~0. Each month's interest is balance times the monthly rate; the
// principal portion is capped at the remaining balance so the final payment
// never drives the balance negative. Overpayment terminates the schedule
// before the nominal term.
func GenerateAmortizationSchedule(principal, annualRatePercent decimal.Decimal, termMonths int, payment decimal.Decimal) ([]domain.AmortizationEntry, error) {
	if !principal.IsPositive() {
		return []domain.AmortizationEntry{}, nil
	}
	if !payment.IsPositive() {
		return nil, fmt.Errorf("%w: payment must be positive", apperrors.ErrCalculation)
	}

	monthlyRate := annualRatePercent.Div(decimal.NewFromInt(1200))
	balance := principal
	entries := make([]domain.AmortizationEntry, 0, termMonths)

	// Hard cap keeps a payment below the monthly interest from looping
	// forever; hitting it means the loan never amortizes.
	maxPayments := termMonths*2 + 120

	for n := 1; balance.GreaterThan(balanceEpsilon); n++ {
		if n > maxPayments {
			return nil, fmt.Errorf("%w: payment %s does not amortize principal %s at %s%%",
				apperrors.ErrCalculation, payment, principal, annualRatePercent)
		}

		interest := balance.Mul(monthlyRate).Round(2)
		principalPortion := payment.Sub(interest)
		if principalPortion.GreaterThan(balance) {
			principalPortion = balance
		}
		if !principalPortion.IsPositive() {
			return nil, fmt.Errorf("%w: payment %s does not cover monthly interest %s",
				apperrors.ErrCalculation, payment, interest)
		}

		balance = balance.Sub(principalPortion)
		entries = append(entries, domain.AmortizationEntry{
			PaymentNumber:    n,
			PrincipalPayment: principalPortion.Round(2),
			InterestPayment:  interest,
			RemainingBalance: balance.Round(2),
		})
	}

	return entries, nil
}

// CalculateTotalInterest sums the interest column of a schedule.
func CalculateTotalInterest(schedule []domain.AmortizationEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range schedule {
		total = total.Add(e.InterestPayment)
	}
	return total
}
