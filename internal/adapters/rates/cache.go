package rates

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/finsight-app/finsight_backend/internal/core/ports"
)

// Fetcher is the raw provider the caching layer wraps.
type Fetcher interface {
	FetchRate(ctx context.Context, from, to string) (domain.ExchangeRate, error)
	FetchHistoricalRates(ctx context.Context, from, to string, start, end time.Time) ([]domain.HistoricalExchangeRate, error)
}

// CachedProvider implements ports.RateProvider with a process-wide TTL cache
// keyed by currency pair. Concurrent refreshes for the same pair coalesce
// into a single in-flight fetch; an unrelated slow pair never blocks others.
// When the fetch fails, the last cached rate is served regardless of
// staleness (stale data beats no data).
type CachedProvider struct {
	fetcher Fetcher
	fresh   *gocache.Cache // entries expire after the configured TTL
	stale   *gocache.Cache // never expires, fallback when the provider is down
	group   singleflight.Group
	logger  *slog.Logger
}

var _ ports.RateProvider = (*CachedProvider)(nil)

// NewCachedProvider wraps a fetcher with the TTL cache.
func NewCachedProvider(fetcher Fetcher, ttl time.Duration, logger *slog.Logger) *CachedProvider {
	return &CachedProvider{
		fetcher: fetcher,
		fresh:   gocache.New(ttl, 2*ttl),
		stale:   gocache.New(gocache.NoExpiration, 0),
		logger:  logger.With(slog.String("component", "rate_cache")),
	}
}

// GetRate returns the current rate for a pair. Identity pairs short-circuit
// to rate 1 without touching the cache or the network.
func (p *CachedProvider) GetRate(ctx context.Context, from, to string) (domain.ExchangeRate, error) {
	if from == to {
		return domain.ExchangeRate{
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			Rate:             decimal.NewFromInt(1),
			Timestamp:        time.Now(),
			Source:           "identity",
		}, nil
	}

	key := from + ":" + to

	if cached, found := p.fresh.Get(key); found {
		return cached.(domain.ExchangeRate), nil
	}

	v, err, _ := p.group.Do(key, func() (interface{}, error) {
		rate, err := p.fetcher.FetchRate(ctx, from, to)
		if err != nil {
			return nil, err
		}
		p.fresh.Set(key, rate, gocache.DefaultExpiration)
		p.stale.Set(key, rate, gocache.NoExpiration)
		return rate, nil
	})
	if err == nil {
		return v.(domain.ExchangeRate), nil
	}

	if cached, found := p.stale.Get(key); found {
		rate := cached.(domain.ExchangeRate)
		p.logger.Warn("Rate fetch failed, serving stale cached rate",
			slog.String("from", from),
			slog.String("to", to),
			slog.Time("cached_at", rate.Timestamp),
			slog.String("error", err.Error()),
		)
		return rate, nil
	}

	return domain.ExchangeRate{}, fmt.Errorf("%w: %s->%s: %v", apperrors.ErrRateUnavailable, from, to, err)
}

// GetHistoricalRates returns a finite single-use sequence of daily rates in
// ascending date order. Ranges are cached whole under the pair+range key.
func (p *CachedProvider) GetHistoricalRates(ctx context.Context, from, to string, start, end time.Time) (iter.Seq[domain.HistoricalExchangeRate], error) {
	if from == to {
		return func(yield func(domain.HistoricalExchangeRate) bool) {}, nil
	}

	key := fmt.Sprintf("%s:%s:%s:%s", from, to, start.Format("2006-01-02"), end.Format("2006-01-02"))

	var history []domain.HistoricalExchangeRate
	if cached, found := p.fresh.Get(key); found {
		history = cached.([]domain.HistoricalExchangeRate)
	} else {
		v, err, _ := p.group.Do(key, func() (interface{}, error) {
			h, err := p.fetcher.FetchHistoricalRates(ctx, from, to, start, end)
			if err != nil {
				return nil, err
			}
			p.fresh.Set(key, h, gocache.DefaultExpiration)
			return h, nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: history %s->%s: %v", apperrors.ErrRateUnavailable, from, to, err)
		}
		history = v.([]domain.HistoricalExchangeRate)
	}

	return func(yield func(domain.HistoricalExchangeRate) bool) {
		for _, h := range history {
			if !yield(h) {
				return
			}
		}
	}, nil
}
