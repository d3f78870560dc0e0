// README: Common money value object used across modules.
package types

import (
	"fmt"
	"math"
)

const CurrencyUSD = "USD"

// Money holds an amount in minor units (cents).
type Money struct {
	Amount   int64  `json:"amount_cents"`
	Currency string `json:"currency"`
}

// USD rounds a dollar amount to the nearest cent.
func USD(dollars float64) Money {
	return Money{Amount: int64(math.Round(dollars * 100)), Currency: CurrencyUSD}
}

func (m Money) String() string {
	sign := ""
	amount := m.Amount
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	if m.Currency == CurrencyUSD || m.Currency == "" {
		return fmt.Sprintf("%s$%d.%02d", sign, amount/100, amount%100)
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, amount/100, amount%100, m.Currency)
}
