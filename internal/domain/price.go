package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceFromFloat converts a JSON-decoded price into a decimal. It rejects
// values that are not strictly positive.
func PriceFromFloat(f float64) (decimal.Decimal, error) {
	d := decimal.NewFromFloat(f)
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("price must be greater than 0")
	}
	return d, nil
}

// PriceToFloat converts a decimal price back to float64 for responses.
func PriceToFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// Notional returns price × quantity.
func Notional(price decimal.Decimal, quantity int64) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(quantity))
}
