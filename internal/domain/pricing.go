package domain

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// SeatPrice computes the final price of a seat for a show: the show's base
// price increased by the seat type's premium percentage. The result is
// rounded half-up to two decimal places so repeated calls always agree.
func SeatPrice(basePrice, premiumPct decimal.Decimal) decimal.Decimal {
	multiplier := decimal.NewFromInt(1).Add(premiumPct.Div(oneHundred))

	return basePrice.Mul(multiplier).Round(2)
}
