// README: Common money value object used across modules.
package types

import (
	"math"
	"strconv"
)

// Money holds an amount in hundredths of the currency unit.
type Money struct {
	Amount   int64
	Currency string
}

// MoneyFromFloat rounds v to hundredths, half away from zero.
func MoneyFromFloat(v float64, currency string) Money {
	return Money{Amount: int64(math.Round(v * 100)), Currency: currency}
}

// Float returns the amount in whole currency units.
func (m Money) Float() float64 {
	return float64(m.Amount) / 100
}

// String renders the amount with exactly two decimal digits, e.g. "16.00".
func (m Money) String() string {
	return strconv.FormatFloat(m.Float(), 'f', 2, 64)
}
