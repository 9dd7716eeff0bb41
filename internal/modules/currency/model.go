// README: Exchange-rate types for display conversion.
package currency

import (
	"errors"

	"parkfee/internal/types"
)

// Rates maps currency codes to their rate relative to Base.
type Rates struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

var ErrUnavailable = errors.New("exchange rates unavailable")

// Convert re-expresses an already-computed price in another currency for
// display. The original fee is never touched.
func Convert(price types.Money, code string, rate float64) types.Money {
	return types.MoneyFromFloat(price.Float()*rate, code)
}
