package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
)

// supportedCurrencies is the static reference table. The risk-tier
// classification of these codes lives in configuration, not here.
var supportedCurrencies = map[string]Currency{
	"USD": {Code: "USD", Name: "US Dollar", Symbol: "$", DecimalPlaces: 2, Countries: []string{"United States"}},
	"EUR": {Code: "EUR", Name: "Euro", Symbol: "€", DecimalPlaces: 2, Countries: []string{"Germany", "France", "Spain", "Italy", "Netherlands", "Portugal", "Ireland", "Austria", "Belgium", "Finland", "Greece"}},
	"GBP": {Code: "GBP", Name: "British Pound", Symbol: "£", DecimalPlaces: 2, Countries: []string{"United Kingdom"}},
	"JPY": {Code: "JPY", Name: "Japanese Yen", Symbol: "¥", DecimalPlaces: 0, Countries: []string{"Japan"}},
	"CHF": {Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", DecimalPlaces: 2, Countries: []string{"Switzerland", "Liechtenstein"}},
	"CAD": {Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", DecimalPlaces: 2, Countries: []string{"Canada"}},
	"AUD": {Code: "AUD", Name: "Australian Dollar", Symbol: "A$", DecimalPlaces: 2, Countries: []string{"Australia"}},
	"NZD": {Code: "NZD", Name: "New Zealand Dollar", Symbol: "NZ$", DecimalPlaces: 2, Countries: []string{"New Zealand"}},
	"SEK": {Code: "SEK", Name: "Swedish Krona", Symbol: "kr", DecimalPlaces: 2, Countries: []string{"Sweden"}},
	"NOK": {Code: "NOK", Name: "Norwegian Krone", Symbol: "kr", DecimalPlaces: 2, Countries: []string{"Norway"}},
	"DKK": {Code: "DKK", Name: "Danish Krone", Symbol: "kr", DecimalPlaces: 2, Countries: []string{"Denmark"}},
	"SGD": {Code: "SGD", Name: "Singapore Dollar", Symbol: "S$", DecimalPlaces: 2, Countries: []string{"Singapore"}},
	"HKD": {Code: "HKD", Name: "Hong Kong Dollar", Symbol: "HK$", DecimalPlaces: 2, Countries: []string{"Hong Kong"}},
	"CNY": {Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", DecimalPlaces: 2, Countries: []string{"China"}},
	"INR": {Code: "INR", Name: "Indian Rupee", Symbol: "₹", DecimalPlaces: 2, Countries: []string{"India"}},
	"KRW": {Code: "KRW", Name: "South Korean Won", Symbol: "₩", DecimalPlaces: 0, Countries: []string{"South Korea"}},
	"BRL": {Code: "BRL", Name: "Brazilian Real", Symbol: "R$", DecimalPlaces: 2, Countries: []string{"Brazil"}},
	"MXN": {Code: "MXN", Name: "Mexican Peso", Symbol: "Mex$", DecimalPlaces: 2, Countries: []string{"Mexico"}},
	"ZAR": {Code: "ZAR", Name: "South African Rand", Symbol: "R", DecimalPlaces: 2, Countries: []string{"South Africa"}},
	"PLN": {Code: "PLN", Name: "Polish Zloty", Symbol: "zł", DecimalPlaces: 2, Countries: []string{"Poland"}},
	"TRY": {Code: "TRY", Name: "Turkish Lira", Symbol: "₺", DecimalPlaces: 2, Countries: []string{"Turkey"}},
}

// LookupCurrency returns the reference data for a currency code.
func LookupCurrency(code string) (Currency, error) {
	c, ok := supportedCurrencies[strings.ToUpper(code)]
	if !ok {
		return Currency{}, fmt.Errorf("%w: unsupported currency code '%s'", apperrors.ErrValidation, code)
	}
	return c, nil
}

// ListCurrencies returns the reference table sorted by code.
func ListCurrencies() []Currency {
	out := make([]Currency, 0, len(supportedCurrencies))
	for _, c := range supportedCurrencies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
