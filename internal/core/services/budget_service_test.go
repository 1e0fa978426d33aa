package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/core/services"
	"github.com/finsight-app/finsight_backend/internal/dto"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockBudgetRepository
	mockProvider *MockRateProvider
	service      portssvc.BudgetSvcFacade
	userID       string
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBudgetRepository)
	suite.mockProvider = new(MockRateProvider)
	conversion := services.NewConversionService(suite.mockProvider)
	suite.service = services.NewBudgetService(suite.mockRepo, conversion)
	suite.userID = "user-1"
}

func budget(category string, spent, limit int64, spentCurrency, limitCurrency string) domain.Budget {
	return domain.Budget{
		BudgetID: category + "-budget",
		UserID:   "user-1",
		Category: category,
		Limit:    domain.NewCurrencyAmount(decimal.NewFromInt(limit), limitCurrency),
		Spent:    domain.NewCurrencyAmount(decimal.NewFromInt(spent), spentCurrency),
		Period:   "monthly",
	}
}

func (suite *BudgetServiceTestSuite) TestGenerateAlerts_SeverityClassification() {
	ctx := context.Background()
	suite.mockRepo.On("ListBudgetsByUser", mock.Anything, suite.userID).Return([]domain.Budget{
		budget("rent", 500, 500, "USD", "USD"),      // 100% -> danger
		budget("groceries", 425, 500, "USD", "USD"), // 85%  -> warning
		budget("fun", 250, 500, "USD", "USD"),       // 50%  -> info
	}, nil)

	report, err := suite.service.GenerateAlerts(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(report.Alerts, 3)

	byCategory := map[string]domain.BudgetAlert{}
	for _, a := range report.Alerts {
		byCategory[a.Category] = a
	}

	suite.Equal(domain.AlertDanger, byCategory["rent"].Severity)
	suite.True(byCategory["rent"].PercentageUsed.Equal(decimal.NewFromInt(100)))

	suite.Equal(domain.AlertWarning, byCategory["groceries"].Severity)
	suite.True(byCategory["groceries"].PercentageUsed.Equal(decimal.NewFromInt(85)))

	suite.Equal(domain.AlertInfo, byCategory["fun"].Severity)
	suite.True(byCategory["fun"].PercentageUsed.Equal(decimal.NewFromInt(50)))

	suite.False(byCategory["rent"].CrossCurrency)
}

func (suite *BudgetServiceTestSuite) TestGenerateAlerts_CrossCurrencyConverts() {
	ctx := context.Background()
	suite.mockRepo.On("ListBudgetsByUser", mock.Anything, suite.userID).Return([]domain.Budget{
		budget("travel", 100, 200, "EUR", "USD"),
	}, nil)
	suite.mockProvider.On("GetRate", mock.Anything, "EUR", "USD").
		Return(fixedRate("EUR", "USD", 1.5), nil)

	report, err := suite.service.GenerateAlerts(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(report.Alerts, 1)

	alert := report.Alerts[0]
	suite.True(alert.CrossCurrency)
	// 100 EUR at 1.5 is 150 USD against a 200 USD limit: 75%
	suite.True(alert.PercentageUsed.Equal(decimal.NewFromInt(75)), "got %s", alert.PercentageUsed)
	suite.Equal(domain.AlertInfo, alert.Severity)

	// Cross-currency categories get a volatility note.
	suite.NotEmpty(report.Recommendations)
}

func (suite *BudgetServiceTestSuite) TestGenerateAlerts_RecommendationsNameOffenders() {
	ctx := context.Background()
	suite.mockRepo.On("ListBudgetsByUser", mock.Anything, suite.userID).Return([]domain.Budget{
		budget("rent", 600, 500, "USD", "USD"),      // 120% -> danger
		budget("groceries", 450, 500, "USD", "USD"), // 90%  -> warning
	}, nil)

	report, err := suite.service.GenerateAlerts(ctx, suite.userID)
	suite.Require().NoError(err)

	joined := ""
	for _, r := range report.Recommendations {
		joined += r + "\n"
	}
	suite.Contains(joined, "rent")
	suite.Contains(joined, "groceries")
}

func (suite *BudgetServiceTestSuite) TestGenerateAlerts_NoBudgets() {
	ctx := context.Background()
	suite.mockRepo.On("ListBudgetsByUser", mock.Anything, suite.userID).Return([]domain.Budget{}, nil)

	report, err := suite.service.GenerateAlerts(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Empty(report.Alerts)
	suite.Empty(report.Recommendations)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_Validation() {
	ctx := context.Background()

	_, err := suite.service.CreateBudget(ctx, dto.CreateBudgetRequest{
		Category:      "rent",
		Limit:         decimal.NewFromInt(-100),
		LimitCurrency: "USD",
		Period:        "monthly",
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_StartsWithZeroSpend() {
	ctx := context.Background()
	suite.mockRepo.On("SaveBudget", mock.Anything, mock.AnythingOfType("domain.Budget")).Return(nil)

	budget, err := suite.service.CreateBudget(ctx, dto.CreateBudgetRequest{
		Category:      "rent",
		Limit:         decimal.NewFromInt(1500),
		LimitCurrency: "USD",
		Period:        "monthly",
	}, suite.userID)

	suite.Require().NoError(err)
	suite.True(budget.Spent.Amount.IsZero())
	suite.Equal("USD", budget.Spent.Currency)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
