package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kergu123/ccxt/entity"
)

func feeTestAdapter() *bishino {
	return &bishino{
		markets: map[string]entity.Market{
			"BTC/USDT": {
				ID:     "BTC_USDT",
				Symbol: "BTC/USDT",
				Base:   "BTC",
				Quote:  "USDT",
				Precision: entity.Precision{
					Amount: 0,
					Price:  2,
				},
				Maker: 0.000,
				Taker: 0.05,
			},
		},
	}
}

func TestCalculateFeeSell(t *testing.T) {
	adapter := feeTestAdapter()

	// 0.5 * 0.05 * 5 = 0.125, half-up at price precision 2 -> 0.13
	fee, err := adapter.CalculateFee("BTC/USDT", entity.SideSell, 0.5, 5, "taker")

	assert.NoError(t, err)
	assert.Equal(t, "USDT", fee.Currency)
	assert.Equal(t, 0.05, fee.Rate)
	assert.Equal(t, 0.13, fee.Cost)
}

func TestCalculateFeeBuy(t *testing.T) {
	adapter := feeTestAdapter()

	// 10 * 0.05 = 0.5, half-up at amount precision 0 -> 1
	fee, err := adapter.CalculateFee("BTC/USDT", entity.SideBuy, 10, 5, "taker")

	assert.NoError(t, err)
	assert.Equal(t, "BTC", fee.Currency)
	assert.Equal(t, 1.0, fee.Cost)
}

func TestCalculateFeeMakerRate(t *testing.T) {
	adapter := feeTestAdapter()

	fee, err := adapter.CalculateFee("BTC/USDT", entity.SideSell, 1, 100, "maker")

	assert.NoError(t, err)
	assert.Equal(t, 0.0, fee.Rate)
	assert.Equal(t, 0.0, fee.Cost)
}

func TestCalculateFeeUnknownMarket(t *testing.T) {
	adapter := feeTestAdapter()

	_, err := adapter.CalculateFee("NOPE/USDT", entity.SideBuy, 1, 1, "taker")

	assert.True(t, IsKind(err, KindMarketNotFound))
}

func TestRoundToPrecision(t *testing.T) {
	// decimal places
	assert.Equal(t, 0.13, roundToPrecision(0.125, 2))
	assert.Equal(t, 0.12, roundToPrecision(0.124, 2))
	// tick size
	assert.Equal(t, 0.3, roundToPrecision(0.25, 0.1))
	// whole units
	assert.Equal(t, 1.0, roundToPrecision(0.5, 0))
}
