package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/core/services"
	"github.com/finsight-app/finsight_backend/internal/dto"
)

type LoanServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockLoanRepository
	mockProvider *MockRateProvider
	service      portssvc.LoanSvcFacade
	userID       string
}

func (suite *LoanServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLoanRepository)
	suite.mockProvider = new(MockRateProvider)
	suite.service = services.NewLoanService(suite.mockRepo, suite.mockProvider)
	suite.userID = "user-1"
}

func (suite *LoanServiceTestSuite) loan(currency string, balance int64, ratePercent float64, termMonths int) *domain.Loan {
	return &domain.Loan{
		LoanID:         "loan-1",
		UserID:         suite.userID,
		Name:           "test loan",
		Principal:      domain.NewCurrencyAmount(decimal.NewFromInt(balance), currency),
		CurrentBalance: decimal.NewFromInt(balance),
		Currency:       currency,
		AnnualRate:     decimal.NewFromFloat(ratePercent),
		TermMonths:     termMonths,
		StartDate:      time.Now().AddDate(-1, 0, 0),
	}
}

func (suite *LoanServiceTestSuite) TestCreateLoan_DefaultsBalanceToPrincipal() {
	ctx := context.Background()
	suite.mockRepo.On("SaveLoan", mock.Anything, mock.AnythingOfType("domain.Loan")).Return(nil)

	loan, err := suite.service.CreateLoan(ctx, dto.CreateLoanRequest{
		Name:       "car",
		Principal:  decimal.NewFromInt(25000),
		Currency:   "USD",
		AnnualRate: decimal.NewFromFloat(5.5),
		TermMonths: 60,
		StartDate:  time.Now(),
	}, suite.userID)

	suite.Require().NoError(err)
	suite.True(loan.CurrentBalance.Equal(decimal.NewFromInt(25000)))
	suite.NotEmpty(loan.LoanID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestCreateLoan_RejectsNegativeRate() {
	ctx := context.Background()

	_, err := suite.service.CreateLoan(ctx, dto.CreateLoanRequest{
		Name:       "bad",
		Principal:  decimal.NewFromInt(1000),
		Currency:   "USD",
		AnnualRate: decimal.NewFromInt(-1),
		TermMonths: 12,
		StartDate:  time.Now(),
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveLoan", mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestGenerateSchedule_CarLoan() {
	ctx := context.Background()
	suite.mockRepo.On("FindLoanByID", mock.Anything, "loan-1", suite.userID).
		Return(suite.loan("USD", 25000, 5.5, 60), nil)

	result, err := suite.service.GenerateSchedule(ctx, "loan-1", suite.userID)
	suite.Require().NoError(err)

	payment, _ := result.MonthlyPayment.Float64()
	suite.InDelta(477.53, payment, 0.01)
	suite.False(result.PaidOff)
	suite.InDelta(60, result.TotalPayments, 2)
	suite.Equal(result.TotalPayments, len(result.Schedule))
	suite.True(result.TotalInterest.IsPositive())
	suite.True(result.PayoffDate.After(time.Now()))
}

func (suite *LoanServiceTestSuite) TestGenerateSchedule_ZeroRate() {
	ctx := context.Background()
	suite.mockRepo.On("FindLoanByID", mock.Anything, "loan-1", suite.userID).
		Return(suite.loan("USD", 12000, 0, 24), nil)

	result, err := suite.service.GenerateSchedule(ctx, "loan-1", suite.userID)
	suite.Require().NoError(err)

	suite.True(result.MonthlyPayment.Equal(decimal.NewFromInt(500)), "got %s", result.MonthlyPayment)
	suite.Equal(24, result.TotalPayments)
	suite.True(result.TotalInterest.IsZero())
}

func (suite *LoanServiceTestSuite) TestGenerateSchedule_PaidOffLoan() {
	ctx := context.Background()
	loan := suite.loan("USD", 0, 5.5, 60)
	loan.CurrentBalance = decimal.Zero
	suite.mockRepo.On("FindLoanByID", mock.Anything, "loan-1", suite.userID).Return(loan, nil)

	result, err := suite.service.GenerateSchedule(ctx, "loan-1", suite.userID)
	suite.Require().NoError(err)

	suite.True(result.PaidOff)
	suite.Empty(result.Schedule)
	suite.True(result.MonthlyPayment.IsZero())
	suite.Equal(0, result.TotalPayments)
}

func (suite *LoanServiceTestSuite) TestGenerateSchedule_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindLoanByID", mock.Anything, "missing", suite.userID).
		Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.GenerateSchedule(ctx, "missing", suite.userID)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LoanServiceTestSuite) TestProjectLoan_SameCurrency() {
	ctx := context.Background()
	suite.mockRepo.On("FindLoanByID", mock.Anything, "loan-1", suite.userID).
		Return(suite.loan("USD", 12000, 0, 24), nil)

	projection, err := suite.service.ProjectLoan(ctx, "loan-1", suite.userID, "USD", 0)
	suite.Require().NoError(err)

	// Default horizon, identity rate, no provider involvement.
	suite.Len(projection.Entries, 12)
	suite.Equal("USD", projection.TargetCurrency)
	suite.True(projection.CurrentRate.Equal(decimal.NewFromInt(1)))
	suite.mockProvider.AssertNotCalled(suite.T(), "GetRate", mock.Anything, mock.Anything, mock.Anything)

	for _, e := range projection.Entries {
		suite.True(e.BalanceConverted.Equal(e.BalanceNative.Round(2)))
		suite.True(e.ExchangeRateImpact.IsZero())
	}

	// Zero-rate loan amortizes 500/month
	first := projection.Entries[0]
	suite.True(first.BalanceNative.Equal(decimal.NewFromInt(11500)), "got %s", first.BalanceNative)
	suite.True(first.AmortizationChange.Equal(decimal.NewFromInt(500)), "got %s", first.AmortizationChange)
}

func (suite *LoanServiceTestSuite) TestProjectLoan_CrossCurrencyFlatHistory() {
	ctx := context.Background()
	suite.mockRepo.On("FindLoanByID", mock.Anything, "loan-1", suite.userID).
		Return(suite.loan("EUR", 12000, 0, 24), nil)
	suite.mockProvider.On("GetRate", mock.Anything, "EUR", "USD").
		Return(fixedRate("EUR", "USD", 2.0), nil)

	// Flat history: zero drift, the rate path stays at today's rate.
	now := time.Now()
	history := []domain.HistoricalExchangeRate{
		{ExchangeRate: fixedRate("EUR", "USD", 2.0), Date: now.AddDate(0, 0, -3)},
		{ExchangeRate: fixedRate("EUR", "USD", 2.0), Date: now.AddDate(0, 0, -2)},
		{ExchangeRate: fixedRate("EUR", "USD", 2.0), Date: now.AddDate(0, 0, -1)},
	}
	suite.mockProvider.On("GetHistoricalRates", mock.Anything, "EUR", "USD", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(historySeq(history), nil)

	projection, err := suite.service.ProjectLoan(ctx, "loan-1", suite.userID, "USD", 6)
	suite.Require().NoError(err)

	suite.Equal("EUR", projection.Currency)
	suite.Equal("USD", projection.TargetCurrency)
	suite.True(projection.CurrentRate.Equal(decimal.NewFromInt(2)))
	suite.True(projection.MonthlyRateDrift.Equal(decimal.NewFromInt(1)), "got %s", projection.MonthlyRateDrift)
	suite.Len(projection.Entries, 6)

	for _, e := range projection.Entries {
		// With no drift the converted balance is balance at today's rate and
		// the whole change is amortization.
		suite.True(e.BalanceConverted.Equal(e.BalanceNative.Mul(decimal.NewFromInt(2)).Round(2)))
		suite.True(e.ExchangeRateImpact.IsZero(), "month %d impact %s", e.Month, e.ExchangeRateImpact)
		suite.True(e.AmortizationChange.Equal(decimal.NewFromInt(1000)), "month %d change %s", e.Month, e.AmortizationChange)
	}
}

func (suite *LoanServiceTestSuite) TestProjectLoan_DegradesWhenRateUnavailable() {
	ctx := context.Background()
	suite.mockRepo.On("FindLoanByID", mock.Anything, "loan-1", suite.userID).
		Return(suite.loan("EUR", 12000, 0, 24), nil)
	suite.mockProvider.On("GetRate", mock.Anything, "EUR", "USD").
		Return(domain.ExchangeRate{}, fmt.Errorf("provider down"))

	projection, err := suite.service.ProjectLoan(ctx, "loan-1", suite.userID, "USD", 6)
	suite.Require().NoError(err)

	// Projection falls back to native-currency figures.
	suite.Equal("EUR", projection.TargetCurrency)
	suite.True(projection.CurrentRate.Equal(decimal.NewFromInt(1)))
}

func (suite *LoanServiceTestSuite) TestProjectLoan_CapsHorizon() {
	ctx := context.Background()
	suite.mockRepo.On("FindLoanByID", mock.Anything, "loan-1", suite.userID).
		Return(suite.loan("USD", 12000, 0, 24), nil)

	projection, err := suite.service.ProjectLoan(ctx, "loan-1", suite.userID, "USD", 240)
	suite.Require().NoError(err)

	suite.Len(projection.Entries, 60)

	// Months past the payoff carry a zero balance.
	last := projection.Entries[len(projection.Entries)-1]
	suite.True(last.BalanceNative.IsZero())
}

func (suite *LoanServiceTestSuite) TestProjectLoan_RejectsUnknownCurrency() {
	ctx := context.Background()
	suite.mockRepo.On("FindLoanByID", mock.Anything, "loan-1", suite.userID).
		Return(suite.loan("USD", 12000, 0, 24), nil)

	_, err := suite.service.ProjectLoan(ctx, "loan-1", suite.userID, "XXX", 6)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
