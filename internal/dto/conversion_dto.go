package dto

import "github.com/shopspring/decimal"

// ConvertAmountRequest asks for a single currency conversion.
type ConvertAmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	From   string          `json:"from" binding:"required,len=3,uppercase,currency"`
	To     string          `json:"to" binding:"required,len=3,uppercase,currency"`
}

// BatchAmount is one element of a batch conversion request.
type BatchAmount struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required,len=3,uppercase,currency"`
}

// ConvertBatchRequest asks for conversion of several amounts to one target
// currency. Results preserve input order.
type ConvertBatchRequest struct {
	Amounts []BatchAmount `json:"amounts" binding:"required,min=1,dive"`
	To      string        `json:"to" binding:"required,len=3,uppercase,currency"`
}
