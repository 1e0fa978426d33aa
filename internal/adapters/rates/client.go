// Package rates provides the exchange rate provider adapter: an HTTP client
// for the external rate API plus a caching layer with stale fallback.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
)

const providerSource = "exchangerate-api"

// Client fetches rates from the external exchange rate API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new rate API client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(slog.String("client", providerSource)),
	}
}

// FetchRate retrieves the current rate for a pair from the external API.
func (c *Client) FetchRate(ctx context.Context, from, to string) (domain.ExchangeRate, error) {
	url := fmt.Sprintf("%s/latest/%s", c.baseURL, from)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("failed to build rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("rate API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ExchangeRate{}, fmt.Errorf("rate API returned status %d", resp.StatusCode)
	}

	var result struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("failed to parse rate API response: %w", err)
	}

	rate, exists := result.Rates[to]
	if !exists {
		return domain.ExchangeRate{}, fmt.Errorf("rate not found for %s->%s", from, to)
	}
	if rate <= 0 {
		return domain.ExchangeRate{}, fmt.Errorf("rate API returned non-positive rate %f for %s->%s", rate, from, to)
	}

	c.logger.Debug("Fetched rate",
		slog.String("from", from),
		slog.String("to", to),
		slog.Float64("rate", rate),
	)

	return domain.ExchangeRate{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             decimal.NewFromFloat(rate),
		Timestamp:        time.Now(),
		Source:           providerSource,
	}, nil
}

// FetchHistoricalRates retrieves daily rates for a pair over a date range,
// sorted by ascending date. Days the provider has no data for are absent.
func (c *Client) FetchHistoricalRates(ctx context.Context, from, to string, start, end time.Time) ([]domain.HistoricalExchangeRate, error) {
	url := fmt.Sprintf("%s/history/%s?start=%s&end=%s&symbols=%s",
		c.baseURL, from, start.Format("2006-01-02"), end.Format("2006-01-02"), to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build history request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate API history request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate API returned status %d", resp.StatusCode)
	}

	var result struct {
		Rates map[string]map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse rate API history response: %w", err)
	}

	history := make([]domain.HistoricalExchangeRate, 0, len(result.Rates))
	for day, quotes := range result.Rates {
		rate, exists := quotes[to]
		if !exists || rate <= 0 {
			continue
		}
		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			c.logger.Warn("Skipping unparseable date in history response", slog.String("date", day))
			continue
		}
		history = append(history, domain.HistoricalExchangeRate{
			ExchangeRate: domain.ExchangeRate{
				FromCurrencyCode: from,
				ToCurrencyCode:   to,
				Rate:             decimal.NewFromFloat(rate),
				Timestamp:        date,
				Source:           providerSource,
			},
			Date: date,
		})
	}

	sort.Slice(history, func(i, j int) bool { return history[i].Date.Before(history[j].Date) })

	c.logger.Debug("Fetched historical rates",
		slog.String("from", from),
		slog.String("to", to),
		slog.Int("days", len(history)),
	)

	return history, nil
}
