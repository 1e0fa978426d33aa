package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
)

// ConversionSvc converts amounts between currencies. Conversion never fails
// the caller: when no rate can be obtained the original amount comes back
// tagged with the source currency and without rate fields, so downstream
// code can distinguish converted from unconverted values.
type ConversionSvc interface {
	// ConvertAmount converts a single amount. Identity pairs return the
	// amount tagged with the target currency and no rate fields.
	ConvertAmount(ctx context.Context, amount decimal.Decimal, from, to string) domain.CurrencyAmount

	// ConvertMultipleAmounts converts each element to the target currency,
	// preserving input order. A failed element degrades in place without
	// aborting the batch.
	ConvertMultipleAmounts(ctx context.Context, amounts []domain.CurrencyAmount, to string) []domain.CurrencyAmount
}
