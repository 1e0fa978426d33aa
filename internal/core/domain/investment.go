package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is a single holding in a user's portfolio. Quantity and prices
// are denominated in the investment's native currency.
type Investment struct {
	InvestmentID  string           `json:"investmentID"` // Primary Key (UUID)
	UserID        string           `json:"userID"`
	Symbol        string           `json:"symbol"`
	Name          string           `json:"name"`
	Type          string           `json:"type"` // e.g. "stock", "etf", "crypto", "cash"
	Quantity      decimal.Decimal  `json:"quantity"`
	PurchasePrice CurrencyAmount   `json:"purchasePrice"`
	CurrentPrice  *decimal.Decimal `json:"currentPrice,omitempty"` // native currency, absent until a quote arrives
	Currency      string           `json:"currency"`
	PurchaseDate  time.Time        `json:"purchaseDate"`
	AuditFields
}

// CurrentValue is quantity times the current price, falling back to the
// purchase price when no quote is known.
func (inv Investment) CurrentValue() decimal.Decimal {
	price := inv.PurchasePrice.Amount
	if inv.CurrentPrice != nil {
		price = *inv.CurrentPrice
	}
	return inv.Quantity.Mul(price)
}
