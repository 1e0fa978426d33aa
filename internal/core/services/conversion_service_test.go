package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/core/services"
)

type ConversionServiceTestSuite struct {
	suite.Suite
	mockProvider *MockRateProvider
	service      portssvc.ConversionSvc
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.mockProvider = new(MockRateProvider)
	suite.service = services.NewConversionService(suite.mockProvider)
}

func (suite *ConversionServiceTestSuite) TestConvertAmount_Identity() {
	ctx := context.Background()
	amount := decimal.NewFromInt(250)

	result := suite.service.ConvertAmount(ctx, amount, "USD", "USD")

	suite.True(result.Amount.Equal(amount))
	suite.Equal("USD", result.Currency)
	suite.Nil(result.ConvertedAmount)
	suite.Nil(result.ExchangeRate)
	suite.mockProvider.AssertNotCalled(suite.T(), "GetRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestConvertAmount_Success() {
	ctx := context.Background()
	suite.mockProvider.On("GetRate", mock.Anything, "EUR", "USD").
		Return(fixedRate("EUR", "USD", 1.1), nil)

	amount := decimal.NewFromInt(100)
	result := suite.service.ConvertAmount(ctx, amount, "EUR", "USD")

	suite.Equal("USD", result.Currency)
	suite.True(result.IsConverted())
	suite.True(result.ConvertedAmount.Equal(decimal.NewFromInt(110)))
	suite.True(result.ExchangeRate.Equal(decimal.NewFromFloat(1.1)))
	suite.NotNil(result.LastUpdated)
}

func (suite *ConversionServiceTestSuite) TestConvertAmount_Linearity() {
	ctx := context.Background()
	suite.mockProvider.On("GetRate", mock.Anything, "GBP", "USD").
		Return(fixedRate("GBP", "USD", 1.27), nil)

	a := decimal.NewFromFloat(123.45)
	b := decimal.NewFromFloat(678.9)

	single := suite.service.ConvertAmount(ctx, a.Add(b), "GBP", "USD")
	partA := suite.service.ConvertAmount(ctx, a, "GBP", "USD")
	partB := suite.service.ConvertAmount(ctx, b, "GBP", "USD")

	suite.True(single.ConvertedAmount.Equal(partA.ConvertedAmount.Add(*partB.ConvertedAmount)))
}

func (suite *ConversionServiceTestSuite) TestConvertAmount_DegradesOnFailure() {
	ctx := context.Background()
	suite.mockProvider.On("GetRate", mock.Anything, "JPY", "USD").
		Return(domain.ExchangeRate{}, fmt.Errorf("provider down"))

	amount := decimal.NewFromInt(5000)
	result := suite.service.ConvertAmount(ctx, amount, "JPY", "USD")

	// Degraded result keeps the source currency and carries no rate fields.
	suite.True(result.Amount.Equal(amount))
	suite.Equal("JPY", result.Currency)
	suite.False(result.IsConverted())
	suite.True(result.EffectiveAmount().Equal(amount))
}

func (suite *ConversionServiceTestSuite) TestConvertAmount_NormalizesCase() {
	ctx := context.Background()
	suite.mockProvider.On("GetRate", mock.Anything, "EUR", "USD").
		Return(fixedRate("EUR", "USD", 1.1), nil)

	result := suite.service.ConvertAmount(ctx, decimal.NewFromInt(10), "eur", "usd")

	suite.Equal("USD", result.Currency)
	suite.True(result.IsConverted())
}

func (suite *ConversionServiceTestSuite) TestConvertMultipleAmounts_PreservesOrderAndIsolatesFailures() {
	ctx := context.Background()
	suite.mockProvider.On("GetRate", mock.Anything, "EUR", "USD").
		Return(fixedRate("EUR", "USD", 1.1), nil)
	suite.mockProvider.On("GetRate", mock.Anything, "GBP", "USD").
		Return(domain.ExchangeRate{}, fmt.Errorf("provider down"))

	amounts := []domain.CurrencyAmount{
		domain.NewCurrencyAmount(decimal.NewFromInt(100), "EUR"),
		domain.NewCurrencyAmount(decimal.NewFromInt(200), "GBP"),
		domain.NewCurrencyAmount(decimal.NewFromInt(300), "USD"),
	}

	results := suite.service.ConvertMultipleAmounts(ctx, amounts, "USD")

	suite.Len(results, 3)

	// EUR element converted
	suite.Equal("USD", results[0].Currency)
	suite.True(results[0].IsConverted())

	// GBP element degraded in place, batch not aborted
	suite.Equal("GBP", results[1].Currency)
	suite.False(results[1].IsConverted())
	suite.True(results[1].Amount.Equal(decimal.NewFromInt(200)))

	// identity element untouched
	suite.Equal("USD", results[2].Currency)
	suite.False(results[2].IsConverted())
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
