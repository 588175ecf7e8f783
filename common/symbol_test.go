package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolRoundTrip(t *testing.T) {
	wireSymbols := []string{"BTC_USDT", "ETH_BTC", "DOGE_USDT"}

	for _, wire := range wireSymbols {
		assert.Equal(t, wire, ToWireSymbol(FromWireSymbol(wire)))
	}

	assert.Equal(t, "BTC/USDT", FromWireSymbol("BTC_USDT"))
	assert.Equal(t, "BTC_USDT", ToWireSymbol("BTC/USDT"))
}
