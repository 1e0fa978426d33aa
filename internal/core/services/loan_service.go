package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/finsight-app/finsight_backend/internal/core/ports"
	portsrepo "github.com/finsight-app/finsight_backend/internal/core/ports/repositories"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/dto"
)

const (
	defaultProjectionHorizon = 12
	maxProjectionHorizon     = 60
)

// loanService manages loan records and exposes the amortization engine.
type loanService struct {
	BaseService
	loanRepo portsrepo.LoanRepositoryFacade
	provider ports.RateProvider
}

// NewLoanService creates a new loan service.
func NewLoanService(repo portsrepo.LoanRepositoryFacade, provider ports.RateProvider) portssvc.LoanSvcFacade {
	return &loanService{loanRepo: repo, provider: provider}
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

// CreateLoan handles the creation of a new loan.
func (s *loanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest, userID string) (*domain.Loan, error) {
	if err := domain.ValidateCurrencyCode(req.Currency); err != nil {
		return nil, err
	}
	if !req.Principal.IsPositive() {
		return nil, fmt.Errorf("%w: principal must be positive", apperrors.ErrValidation)
	}
	if req.AnnualRate.IsNegative() {
		return nil, fmt.Errorf("%w: annual rate cannot be negative", apperrors.ErrValidation)
	}

	balance := req.CurrentBalance
	if balance.IsZero() {
		balance = req.Principal
	}

	now := time.Now()
	loan := domain.Loan{
		LoanID:         uuid.NewString(),
		UserID:         userID,
		Name:           req.Name,
		Principal:      domain.NewCurrencyAmount(req.Principal, strings.ToUpper(req.Currency)),
		CurrentBalance: balance,
		Currency:       strings.ToUpper(req.Currency),
		AnnualRate:     req.AnnualRate,
		TermMonths:     req.TermMonths,
		StartDate:      req.StartDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.loanRepo.SaveLoan(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to create loan in service: %w", err)
	}
	return &loan, nil
}

// GetLoanByID retrieves a single loan owned by the user.
func (s *loanService) GetLoanByID(ctx context.Context, loanID, userID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get loan in service: %w", err)
	}
	return loan, nil
}

// ListLoans retrieves all loans for a user.
func (s *loanService) ListLoans(ctx context.Context, userID string) ([]domain.Loan, error) {
	loans, err := s.loanRepo.ListLoansByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans in service: %w", err)
	}
	return loans, nil
}

// UpdateLoan applies the non-nil fields of the request to a stored loan.
func (s *loanService) UpdateLoan(ctx context.Context, loanID string, req dto.UpdateLoanRequest, userID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find loan for update: %w", err)
	}

	if req.Name != nil {
		loan.Name = *req.Name
	}
	if req.CurrentBalance != nil {
		loan.CurrentBalance = *req.CurrentBalance
	}
	if req.AnnualRate != nil {
		if req.AnnualRate.IsNegative() {
			return nil, fmt.Errorf("%w: annual rate cannot be negative", apperrors.ErrValidation)
		}
		loan.AnnualRate = *req.AnnualRate
	}
	if req.TermMonths != nil {
		if *req.TermMonths <= 0 {
			return nil, fmt.Errorf("%w: term must be positive", apperrors.ErrValidation)
		}
		loan.TermMonths = *req.TermMonths
	}
	loan.LastUpdatedAt = time.Now()
	loan.LastUpdatedBy = userID

	if err := s.loanRepo.UpdateLoan(ctx, *loan); err != nil {
		return nil, fmt.Errorf("failed to update loan in service: %w", err)
	}
	return loan, nil
}

// DeleteLoan logically deletes a loan.
func (s *loanService) DeleteLoan(ctx context.Context, loanID, userID string) error {
	if err := s.loanRepo.DeleteLoan(ctx, loanID, userID, userID); err != nil {
		return fmt.Errorf("failed to delete loan in service: %w", err)
	}
	return nil
}

// GenerateSchedule computes the amortization schedule for a loan's current
// balance. Zero or negative balances short-circuit to a paid-off result. An
// unexpected calculation failure is logged and comes back as a zeroed
// result, keeping the dashboard available.
func (s *loanService) GenerateSchedule(ctx context.Context, loanID, userID string) (*domain.AmortizationResult, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find loan for schedule: %w", err)
	}
	return s.scheduleForLoan(ctx, loan), nil
}

func (s *loanService) scheduleForLoan(ctx context.Context, loan *domain.Loan) *domain.AmortizationResult {
	if !loan.CurrentBalance.IsPositive() {
		return &domain.AmortizationResult{
			Schedule:       []domain.AmortizationEntry{},
			MonthlyPayment: decimal.Zero,
			TotalInterest:  decimal.Zero,
			TotalPayments:  0,
			PayoffDate:     time.Now(),
			PaidOff:        true,
		}
	}

	payment := CalculateMonthlyPayment(loan.CurrentBalance, loan.AnnualRate, loan.TermMonths)
	schedule, err := GenerateAmortizationSchedule(loan.CurrentBalance, loan.AnnualRate, loan.TermMonths, payment)
	if err != nil {
		s.LogError(ctx, err, "Amortization failed, returning zeroed schedule",
			slog.String("loan_id", loan.LoanID))
		return &domain.AmortizationResult{
			Schedule:       []domain.AmortizationEntry{},
			MonthlyPayment: decimal.Zero,
			TotalInterest:  decimal.Zero,
			TotalPayments:  0,
			PayoffDate:     time.Now(),
			PaidOff:        false,
		}
	}

	return &domain.AmortizationResult{
		Schedule:       schedule,
		MonthlyPayment: payment,
		TotalInterest:  CalculateTotalInterest(schedule).Round(2),
		TotalPayments:  len(schedule),
		PayoffDate:     time.Now().AddDate(0, len(schedule), 0),
		PaidOff:        false,
	}
}

// ProjectLoan converts projected balances into the target currency over a
// rolling horizon. The rate path extrapolates the past year's average
// monthly drift; each month's exchange-rate impact is the converted balance
// minus the amortization-only balance valued at today's rate.
func (s *loanService) ProjectLoan(ctx context.Context, loanID, userID, targetCurrency string, horizonMonths int) (*domain.LoanProjection, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find loan for projection: %w", err)
	}

	targetCurrency = strings.ToUpper(targetCurrency)
	if err := domain.ValidateCurrencyCode(targetCurrency); err != nil {
		return nil, err
	}
	if horizonMonths <= 0 {
		horizonMonths = defaultProjectionHorizon
	}
	if horizonMonths > maxProjectionHorizon {
		horizonMonths = maxProjectionHorizon
	}

	currentRate := decimal.NewFromInt(1)
	drift := decimal.NewFromInt(1)
	if loan.Currency != targetCurrency {
		rate, err := s.provider.GetRate(ctx, loan.Currency, targetCurrency)
		if err != nil {
			// Degrade to native-currency figures rather than failing the
			// projection.
			s.LogWarn(ctx, "Rate unavailable for projection, using identity rate",
				slog.String("loan_id", loan.LoanID),
				slog.String("error", err.Error()))
			targetCurrency = loan.Currency
		} else {
			currentRate = rate.Rate
			drift = s.monthlyRateDrift(ctx, loan.Currency, targetCurrency)
		}
	}

	result := s.scheduleForLoan(ctx, loan)

	entries := make([]domain.LoanProjectionEntry, 0, horizonMonths)
	prevBalance := loan.CurrentBalance
	if prevBalance.IsNegative() {
		prevBalance = decimal.Zero
	}
	projectedRate := currentRate
	for m := 1; m <= horizonMonths; m++ {
		balance := decimal.Zero
		if m <= len(result.Schedule) {
			balance = result.Schedule[m-1].RemainingBalance
		}
		projectedRate = projectedRate.Mul(drift)

		amortizationChange := prevBalance.Sub(balance).Mul(currentRate)
		converted := balance.Mul(projectedRate)
		impact := converted.Sub(balance.Mul(currentRate))

		entries = append(entries, domain.LoanProjectionEntry{
			Month:              m,
			BalanceNative:      balance,
			BalanceConverted:   converted.Round(2),
			AmortizationChange: amortizationChange.Round(2),
			ExchangeRateImpact: impact.Round(2),
		})
		prevBalance = balance
	}

	return &domain.LoanProjection{
		LoanID:           loan.LoanID,
		Currency:         loan.Currency,
		TargetCurrency:   targetCurrency,
		CurrentRate:      currentRate,
		MonthlyRateDrift: drift.Round(6),
		Entries:          entries,
	}, nil
}

// monthlyRateDrift estimates the average monthly movement of a pair from a
// year of daily history. No history means no drift (factor 1).
func (s *loanService) monthlyRateDrift(ctx context.Context, from, to string) decimal.Decimal {
	one := decimal.NewFromInt(1)

	end := time.Now()
	seq, err := s.provider.GetHistoricalRates(ctx, from, to, end.AddDate(-1, 0, 0), end)
	if err != nil {
		return one
	}

	var rates []float64
	for h := range seq {
		r, _ := h.Rate.Float64()
		if r > 0 {
			rates = append(rates, r)
		}
	}
	if len(rates) < 2 {
		return one
	}

	logReturns := make([]float64, 0, len(rates)-1)
	for i := 1; i < len(rates); i++ {
		logReturns = append(logReturns, math.Log(rates[i]/rates[i-1]))
	}

	// 30.44 calendar days per average month.
	factor := math.Exp(stat.Mean(logReturns, nil) * 30.44)
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return one
	}
	return decimal.NewFromFloat(factor)
}
