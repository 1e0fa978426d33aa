package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/finsight-app/finsight_backend/internal/core/ports"
	portsrepo "github.com/finsight-app/finsight_backend/internal/core/ports/repositories"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
)

// Risk score weights. Concentration dominates because a single-currency
// portfolio is the failure mode this analysis exists to catch.
const (
	weightConcentration = 0.40
	weightForeign       = 0.35
	weightVolatility    = 0.25

	// Daily FX volatility is typically well under 1%; this scale maps the
	// weighted volatility percentage onto the 0-100 score range.
	volatilityScoreScale = 40.0

	riskScoreDiversifyThreshold = 60
	hedgeExposureThreshold      = 25 // percent of portfolio in one foreign currency
)

// RiskTierConfig is the static currency classification, supplied from
// configuration so it can be revised without code changes.
type RiskTierConfig struct {
	Major      map[string]bool // reserve currencies, low risk
	Developed  map[string]bool // developed-market currencies, medium risk
	HedgeRatio decimal.Decimal // fraction of exposure to hedge, 0.4-0.6
}

// NewRiskTierConfig builds the lookup sets from configured code lists.
func NewRiskTierConfig(major, developed []string, hedgeRatio float64) RiskTierConfig {
	cfg := RiskTierConfig{
		Major:      make(map[string]bool, len(major)),
		Developed:  make(map[string]bool, len(developed)),
		HedgeRatio: decimal.NewFromFloat(hedgeRatio),
	}
	for _, c := range major {
		cfg.Major[strings.ToUpper(c)] = true
	}
	for _, c := range developed {
		cfg.Developed[strings.ToUpper(c)] = true
	}
	return cfg
}

// Classify returns the risk tier for a currency code.
func (c RiskTierConfig) Classify(code string) domain.RiskLevel {
	switch {
	case c.Major[code]:
		return domain.RiskLow
	case c.Developed[code]:
		return domain.RiskMedium
	default:
		return domain.RiskHigh
	}
}

// analysisService computes currency exposure and risk over portfolio
// snapshots. All computation is in-memory; the only I/O is loading the
// snapshot and fetching historical rates for volatility.
type analysisService struct {
	BaseService
	investmentRepo portsrepo.InvestmentReader
	provider       ports.RateProvider
	conversion     portssvc.ConversionSvc
	tiers          RiskTierConfig
}

// NewAnalysisService creates a new currency analysis service.
func NewAnalysisService(repo portsrepo.InvestmentReader, provider ports.RateProvider, conversion portssvc.ConversionSvc, tiers RiskTierConfig) portssvc.CurrencyAnalysisSvc {
	return &analysisService{
		investmentRepo: repo,
		provider:       provider,
		conversion:     conversion,
		tiers:          tiers,
	}
}

var _ portssvc.CurrencyAnalysisSvc = (*analysisService)(nil)

// CalculateCurrencyExposure groups holdings by native currency, values each
// group in the primary currency and returns exposures sorted by descending
// percentage. Percentages sum to 100 up to rounding.
func (s *analysisService) CalculateCurrencyExposure(ctx context.Context, userID, primaryCurrency string) ([]domain.CurrencyExposure, error) {
	investments, err := s.investmentRepo.ListInvestmentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments for exposure: %w", err)
	}
	return s.exposuresFor(ctx, investments, strings.ToUpper(primaryCurrency)), nil
}

func (s *analysisService) exposuresFor(ctx context.Context, investments []domain.Investment, primaryCurrency string) []domain.CurrencyExposure {
	byCurrency := make(map[string]decimal.Decimal)
	for _, inv := range investments {
		code := strings.ToUpper(inv.Currency)
		byCurrency[code] = byCurrency[code].Add(inv.CurrentValue())
	}

	exposures := make([]domain.CurrencyExposure, 0, len(byCurrency))
	total := decimal.Zero
	for code, native := range byCurrency {
		converted := s.conversion.ConvertAmount(ctx, native, code, primaryCurrency)
		exposures = append(exposures, domain.CurrencyExposure{
			Currency:   code,
			TotalValue: converted,
			RiskLevel:  s.tiers.Classify(code),
		})
		total = total.Add(converted.EffectiveAmount())
	}

	if total.IsZero() {
		return []domain.CurrencyExposure{}
	}

	hundred := decimal.NewFromInt(100)
	for i := range exposures {
		exposures[i].Percentage = exposures[i].TotalValue.EffectiveAmount().Div(total).Mul(hundred).Round(2)
	}

	// Descending percentage, code as tie-break, for deterministic output.
	sort.Slice(exposures, func(i, j int) bool {
		if !exposures[i].Percentage.Equal(exposures[j].Percentage) {
			return exposures[i].Percentage.GreaterThan(exposures[j].Percentage)
		}
		return exposures[i].Currency < exposures[j].Currency
	})

	return exposures
}

// AnalyzeCurrencyRisk derives the 0-100 risk score from concentration,
// foreign-currency fraction and observed volatility, together with the
// textual recommendations and hedging options.
func (s *analysisService) AnalyzeCurrencyRisk(ctx context.Context, userID, primaryCurrency string) (*domain.CurrencyRiskAnalysis, error) {
	primaryCurrency = strings.ToUpper(primaryCurrency)

	investments, err := s.investmentRepo.ListInvestmentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments for risk analysis: %w", err)
	}

	exposures := s.exposuresFor(ctx, investments, primaryCurrency)

	analysis := &domain.CurrencyRiskAnalysis{
		Exposures:       exposures,
		PrimaryCurrency: primaryCurrency,
		RiskScore:       decimal.Zero,
		ForeignFraction: decimal.Zero,
		Concentration:   decimal.Zero,
		Volatility:      []domain.VolatilityMetric{},
		Recommendations: []string{},
		HedgingOptions:  []domain.HedgingOption{},
	}
	if len(exposures) == 0 {
		return analysis, nil
	}

	// Herfindahl-style concentration: sum of squared percentage shares,
	// normalized so a single-currency portfolio scores 100.
	concentration := decimal.Zero
	foreign := decimal.Zero
	for _, e := range exposures {
		concentration = concentration.Add(e.Percentage.Mul(e.Percentage))
		if e.Currency != primaryCurrency {
			foreign = foreign.Add(e.Percentage)
		}
	}
	concentration = concentration.Div(decimal.NewFromInt(100))
	analysis.Concentration = concentration.Round(2)
	analysis.ForeignFraction = foreign.Round(2)

	// Exposure-weighted volatility of the foreign currencies.
	weightedVol := decimal.Zero
	for _, e := range exposures {
		if e.Currency == primaryCurrency {
			continue
		}
		metric := s.volatilityFor(ctx, e.Currency, primaryCurrency)
		analysis.Volatility = append(analysis.Volatility, metric)
		weightedVol = weightedVol.Add(metric.Volatility30.Mul(e.Percentage.Div(decimal.NewFromInt(100))))
	}
	volScore := weightedVol.Mul(decimal.NewFromFloat(volatilityScoreScale))
	if volScore.GreaterThan(decimal.NewFromInt(100)) {
		volScore = decimal.NewFromInt(100)
	}

	score := concentration.Mul(decimal.NewFromFloat(weightConcentration)).
		Add(foreign.Mul(decimal.NewFromFloat(weightForeign))).
		Add(volScore.Mul(decimal.NewFromFloat(weightVolatility)))
	if score.GreaterThan(decimal.NewFromInt(100)) {
		score = decimal.NewFromInt(100)
	}
	if score.IsNegative() {
		score = decimal.Zero
	}
	analysis.RiskScore = score.Round(2)

	s.buildRecommendations(analysis)

	s.LogInfo(ctx, "Currency risk analysis completed",
		slog.String("user_id", userID),
		slog.String("primary_currency", primaryCurrency),
		slog.String("risk_score", analysis.RiskScore.String()),
		slog.Int("currencies", len(exposures)))

	return analysis, nil
}

// volatilityFor computes 30/90/365-day standard deviation of daily log
// returns for a pair, in percent. Gaps in provider data are simply absent
// from the observations; nothing is interpolated. When no history can be
// fetched the metric is zeroed with Observations 0.
func (s *analysisService) volatilityFor(ctx context.Context, currency, primaryCurrency string) domain.VolatilityMetric {
	metric := domain.VolatilityMetric{Currency: currency}

	end := time.Now()
	start := end.AddDate(-1, 0, 0)
	seq, err := s.provider.GetHistoricalRates(ctx, currency, primaryCurrency, start, end)
	if err != nil {
		s.LogWarn(ctx, "No historical rates for volatility",
			slog.String("currency", currency),
			slog.String("error", err.Error()))
		return metric
	}

	var dates []time.Time
	var rates []float64
	for h := range seq {
		rate, _ := h.Rate.Float64()
		if rate <= 0 {
			continue
		}
		dates = append(dates, h.Date)
		rates = append(rates, rate)
	}
	if len(rates) < 2 {
		return metric
	}

	// Daily log returns, dated by the later observation.
	returnDates := make([]time.Time, 0, len(rates)-1)
	returns := make([]float64, 0, len(rates)-1)
	for i := 1; i < len(rates); i++ {
		returnDates = append(returnDates, dates[i])
		returns = append(returns, math.Log(rates[i]/rates[i-1]))
	}
	metric.Observations = len(returns)

	metric.Volatility30 = windowStdDev(returnDates, returns, end.AddDate(0, 0, -30))
	metric.Volatility90 = windowStdDev(returnDates, returns, end.AddDate(0, 0, -90))
	metric.Volatility365 = windowStdDev(returnDates, returns, end.AddDate(-1, 0, 0))

	return metric
}

// windowStdDev is the standard deviation, in percent, of the returns dated
// on or after cutoff.
func windowStdDev(dates []time.Time, returns []float64, cutoff time.Time) decimal.Decimal {
	var window []float64
	for i, d := range dates {
		if !d.Before(cutoff) {
			window = append(window, returns[i])
		}
	}
	if len(window) < 2 {
		return decimal.Zero
	}
	sd := stat.StdDev(window, nil)
	if math.IsNaN(sd) || math.IsInf(sd, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(sd * 100).Round(4)
}

func (s *analysisService) buildRecommendations(analysis *domain.CurrencyRiskAnalysis) {
	if analysis.RiskScore.GreaterThan(decimal.NewFromInt(riskScoreDiversifyThreshold)) {
		analysis.Recommendations = append(analysis.Recommendations,
			fmt.Sprintf("Portfolio currency risk score is %s/100. Consider diversifying across additional currencies.", analysis.RiskScore))
	}

	threshold := decimal.NewFromInt(hedgeExposureThreshold)
	for _, e := range analysis.Exposures {
		if e.Currency == analysis.PrimaryCurrency || !e.Percentage.GreaterThan(threshold) {
			continue
		}
		exposureValue := e.TotalValue.EffectiveAmount()
		hedgeAmount := exposureValue.Mul(s.tiers.HedgeRatio).Round(2)
		analysis.Recommendations = append(analysis.Recommendations,
			fmt.Sprintf("%s makes up %s%% of your portfolio. Consider hedging part of this exposure.", e.Currency, e.Percentage))
		analysis.HedgingOptions = append(analysis.HedgingOptions, domain.HedgingOption{
			Currency:    e.Currency,
			Exposure:    exposureValue.Round(2),
			HedgeRatio:  s.tiers.HedgeRatio,
			HedgeAmount: hedgeAmount,
			Instrument:  "forward contract",
		})
	}
}
