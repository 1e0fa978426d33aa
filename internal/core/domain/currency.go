package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
)

// Currency is immutable reference data for a supported ISO-4217 currency.
type Currency struct {
	Code          string   `json:"code"`   // e.g. "USD"
	Name          string   `json:"name"`   // e.g. "US Dollar"
	Symbol        string   `json:"symbol"` // e.g. "$"
	DecimalPlaces int      `json:"decimalPlaces"`
	Countries     []string `json:"countries"`
}

// CurrencyAmount is the monetary value type shared by every calculation.
// ConvertedAmount and ExchangeRate are set together after a successful
// conversion; an amount with neither set is "known but not yet converted".
type CurrencyAmount struct {
	Amount          decimal.Decimal  `json:"amount"`
	Currency        string           `json:"currency"`
	ConvertedAmount *decimal.Decimal `json:"convertedAmount,omitempty"`
	ExchangeRate    *decimal.Decimal `json:"exchangeRate,omitempty"`
	LastUpdated     *time.Time       `json:"lastUpdated,omitempty"`
}

// NewCurrencyAmount builds an unconverted amount in the given currency.
func NewCurrencyAmount(amount decimal.Decimal, currency string) CurrencyAmount {
	return CurrencyAmount{Amount: amount, Currency: currency}
}

// Validate checks the structural invariants of a CurrencyAmount.
func (ca CurrencyAmount) Validate() error {
	if _, err := LookupCurrency(ca.Currency); err != nil {
		return err
	}
	if ca.ConvertedAmount != nil && ca.ExchangeRate == nil {
		return fmt.Errorf("%w: convertedAmount without exchangeRate", apperrors.ErrValidation)
	}
	return nil
}

// IsConverted reports whether the amount carries a completed conversion.
func (ca CurrencyAmount) IsConverted() bool {
	return ca.ConvertedAmount != nil && ca.ExchangeRate != nil
}

// EffectiveAmount returns the converted amount when present, otherwise the
// original amount. Aggregations use it so a degraded (unconverted) value
// still contributes instead of vanishing.
func (ca CurrencyAmount) EffectiveAmount() decimal.Decimal {
	if ca.ConvertedAmount != nil {
		return *ca.ConvertedAmount
	}
	return ca.Amount
}

// ExchangeRate stores the conversion rate between two currencies.
// Identity pairs never produce a rate record; they short-circuit to 1.
type ExchangeRate struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	Timestamp        time.Time       `json:"timestamp"`
	Source           string          `json:"source"`
}

// HistoricalExchangeRate is an ExchangeRate pinned to the calendar day it
// applies to.
type HistoricalExchangeRate struct {
	ExchangeRate
	Date time.Time `json:"date"`
}

// ValidateCurrencyCode rejects codes that are not in the reference table.
func ValidateCurrencyCode(code string) error {
	_, err := LookupCurrency(code)
	return err
}
