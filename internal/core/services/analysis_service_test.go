package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/core/services"
)

type AnalysisServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockInvestmentRepository
	mockProvider *MockRateProvider
	service      portssvc.CurrencyAnalysisSvc
	userID       string
}

func (suite *AnalysisServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvestmentRepository)
	suite.mockProvider = new(MockRateProvider)
	tiers := services.NewRiskTierConfig(
		[]string{"USD", "EUR", "GBP", "JPY", "CHF"},
		[]string{"CAD", "AUD", "NZD", "SEK", "NOK", "DKK", "SGD", "HKD"},
		0.5,
	)
	conversion := services.NewConversionService(suite.mockProvider)
	suite.service = services.NewAnalysisService(suite.mockRepo, suite.mockProvider, conversion, tiers)
	suite.userID = "user-1"
}

// investment builds a holding worth exactly `value` in its native currency.
func investment(currency string, value int64) domain.Investment {
	return domain.Investment{
		InvestmentID:  currency + "-inv",
		UserID:        "user-1",
		Symbol:        "TST",
		Type:          "stock",
		Quantity:      decimal.NewFromInt(1),
		PurchasePrice: domain.NewCurrencyAmount(decimal.NewFromInt(value), currency),
		Currency:      currency,
	}
}

func (suite *AnalysisServiceTestSuite) TestCalculateCurrencyExposure_SumsToHundredSortedDescending() {
	ctx := context.Background()
	suite.mockRepo.On("ListInvestmentsByUser", mock.Anything, suite.userID).Return([]domain.Investment{
		investment("USD", 5000),
		investment("EUR", 2000),
		investment("BRL", 10000),
	}, nil)
	suite.mockProvider.On("GetRate", mock.Anything, "EUR", "USD").Return(fixedRate("EUR", "USD", 1.5), nil)
	suite.mockProvider.On("GetRate", mock.Anything, "BRL", "USD").Return(fixedRate("BRL", "USD", 0.2), nil)

	exposures, err := suite.service.CalculateCurrencyExposure(ctx, suite.userID, "USD")
	suite.Require().NoError(err)
	suite.Require().Len(exposures, 3)

	// 5000 + 3000 + 2000 in USD terms: 50%, 30%, 20%
	suite.Equal("USD", exposures[0].Currency)
	suite.True(exposures[0].Percentage.Equal(decimal.NewFromInt(50)), "got %s", exposures[0].Percentage)
	suite.Equal("EUR", exposures[1].Currency)
	suite.True(exposures[1].Percentage.Equal(decimal.NewFromInt(30)), "got %s", exposures[1].Percentage)
	suite.Equal("BRL", exposures[2].Currency)
	suite.True(exposures[2].Percentage.Equal(decimal.NewFromInt(20)), "got %s", exposures[2].Percentage)

	total := decimal.Zero
	for _, e := range exposures {
		total = total.Add(e.Percentage)
	}
	diff, _ := total.Sub(decimal.NewFromInt(100)).Abs().Float64()
	suite.Less(diff, 0.1)

	// Static tier classification
	suite.Equal(domain.RiskLow, exposures[0].RiskLevel)
	suite.Equal(domain.RiskLow, exposures[1].RiskLevel)
	suite.Equal(domain.RiskHigh, exposures[2].RiskLevel)
}

func (suite *AnalysisServiceTestSuite) TestCalculateCurrencyExposure_EmptyPortfolio() {
	ctx := context.Background()
	suite.mockRepo.On("ListInvestmentsByUser", mock.Anything, suite.userID).Return([]domain.Investment{}, nil)

	exposures, err := suite.service.CalculateCurrencyExposure(ctx, suite.userID, "USD")
	suite.Require().NoError(err)
	suite.Empty(exposures)
}

func (suite *AnalysisServiceTestSuite) TestAnalyzeCurrencyRisk_MixedPortfolio() {
	ctx := context.Background()
	suite.mockRepo.On("ListInvestmentsByUser", mock.Anything, suite.userID).Return([]domain.Investment{
		investment("USD", 5000),
		investment("EUR", 2000),
		investment("BRL", 10000),
	}, nil)
	suite.mockProvider.On("GetRate", mock.Anything, "EUR", "USD").Return(fixedRate("EUR", "USD", 1.5), nil)
	suite.mockProvider.On("GetRate", mock.Anything, "BRL", "USD").Return(fixedRate("BRL", "USD", 0.2), nil)
	suite.mockProvider.On("GetHistoricalRates", mock.Anything, mock.Anything, "USD", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(historySeq(nil), nil)

	analysis, err := suite.service.AnalyzeCurrencyRisk(ctx, suite.userID, "USD")
	suite.Require().NoError(err)

	// Shares 50/30/20: concentration (2500+900+400)/100 = 38, foreign 50.
	suite.True(analysis.Concentration.Equal(decimal.NewFromInt(38)), "got %s", analysis.Concentration)
	suite.True(analysis.ForeignFraction.Equal(decimal.NewFromInt(50)), "got %s", analysis.ForeignFraction)

	// With zero observed volatility: 38*0.40 + 50*0.35 = 32.7
	suite.True(analysis.RiskScore.Equal(decimal.NewFromFloat(32.7)), "got %s", analysis.RiskScore)

	// EUR holds 30% > 25%, so it gets a hedging option at the configured ratio.
	suite.Require().Len(analysis.HedgingOptions, 1)
	opt := analysis.HedgingOptions[0]
	suite.Equal("EUR", opt.Currency)
	suite.True(opt.Exposure.Equal(decimal.NewFromInt(3000)), "got %s", opt.Exposure)
	suite.True(opt.HedgeRatio.Equal(decimal.NewFromFloat(0.5)))
	suite.True(opt.HedgeAmount.Equal(decimal.NewFromInt(1500)), "got %s", opt.HedgeAmount)
	suite.Equal("forward contract", opt.Instrument)
}

func (suite *AnalysisServiceTestSuite) TestAnalyzeCurrencyRisk_SingleCurrency() {
	ctx := context.Background()
	suite.mockRepo.On("ListInvestmentsByUser", mock.Anything, suite.userID).Return([]domain.Investment{
		investment("USD", 8000),
	}, nil)

	analysis, err := suite.service.AnalyzeCurrencyRisk(ctx, suite.userID, "USD")
	suite.Require().NoError(err)

	// Everything in the primary currency: max concentration, no foreign
	// exposure, no hedging.
	suite.True(analysis.Concentration.Equal(decimal.NewFromInt(100)), "got %s", analysis.Concentration)
	suite.True(analysis.ForeignFraction.IsZero())
	suite.True(analysis.RiskScore.Equal(decimal.NewFromInt(40)), "got %s", analysis.RiskScore)
	suite.Empty(analysis.HedgingOptions)
	suite.Empty(analysis.Volatility)
}

func (suite *AnalysisServiceTestSuite) TestAnalyzeCurrencyRisk_EmptyPortfolio() {
	ctx := context.Background()
	suite.mockRepo.On("ListInvestmentsByUser", mock.Anything, suite.userID).Return([]domain.Investment{}, nil)

	analysis, err := suite.service.AnalyzeCurrencyRisk(ctx, suite.userID, "USD")
	suite.Require().NoError(err)

	suite.Empty(analysis.Exposures)
	suite.True(analysis.RiskScore.IsZero())
	suite.Empty(analysis.Recommendations)
}

func (suite *AnalysisServiceTestSuite) TestAnalyzeCurrencyRisk_VolatilityFromHistory() {
	ctx := context.Background()
	suite.mockRepo.On("ListInvestmentsByUser", mock.Anything, suite.userID).Return([]domain.Investment{
		investment("USD", 5000),
		investment("EUR", 5000),
	}, nil)
	suite.mockProvider.On("GetRate", mock.Anything, "EUR", "USD").Return(fixedRate("EUR", "USD", 1.0), nil)

	// A week of oscillating observations gives a non-zero 30-day stddev.
	now := time.Now()
	history := make([]domain.HistoricalExchangeRate, 0, 8)
	rates := []float64{1.00, 1.02, 0.99, 1.03, 1.01, 1.04, 1.00, 1.02}
	for i, r := range rates {
		history = append(history, domain.HistoricalExchangeRate{
			ExchangeRate: fixedRate("EUR", "USD", r),
			Date:         now.AddDate(0, 0, -len(rates)+i+1),
		})
	}
	suite.mockProvider.On("GetHistoricalRates", mock.Anything, "EUR", "USD", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(historySeq(history), nil)

	analysis, err := suite.service.AnalyzeCurrencyRisk(ctx, suite.userID, "USD")
	suite.Require().NoError(err)

	suite.Require().Len(analysis.Volatility, 1)
	metric := analysis.Volatility[0]
	suite.Equal("EUR", metric.Currency)
	suite.Equal(len(rates)-1, metric.Observations)
	suite.True(metric.Volatility30.IsPositive(), "got %s", metric.Volatility30)
}

func TestAnalysisServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalysisServiceTestSuite))
}
