package ports

import (
	"context"
	"iter"
	"time"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
)

// RateProvider supplies current and historical exchange rates. The provider
// is treated as potentially unavailable at any time; implementations return
// apperrors.ErrRateUnavailable when neither the source nor a cached rate can
// serve the request.
type RateProvider interface {
	// GetRate returns the current rate for a pair. Identity pairs return
	// rate 1 without touching the external source.
	GetRate(ctx context.Context, from, to string) (domain.ExchangeRate, error)

	// GetHistoricalRates returns a finite single-use sequence of daily rates
	// ordered by ascending date. Days missing from the provider's data are
	// simply absent; nothing is interpolated.
	GetHistoricalRates(ctx context.Context, from, to string, start, end time.Time) (iter.Seq[domain.HistoricalExchangeRate], error)
}
