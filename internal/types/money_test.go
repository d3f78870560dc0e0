package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUSD_RoundsToCents(t *testing.T) {
	assert.Equal(t, int64(1235), USD(12.346).Amount)
	assert.Equal(t, int64(1234), USD(12.344).Amount)
	assert.Equal(t, CurrencyUSD, USD(1).Currency)
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{USD(5.7), "$5.70"},
		{USD(0), "$0.00"},
		{USD(-3.05), "-$3.05"},
		{Money{Amount: 1999, Currency: "EUR"}, "19.99 EUR"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.String())
	}
}
