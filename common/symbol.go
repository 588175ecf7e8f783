package common

import "strings"

// ToWireSymbol converts a canonical symbol ("BTC/USDT") to the venue
// pair id ("BTC_USDT").
func ToWireSymbol(symbol string) string {
	return strings.ReplaceAll(symbol, "/", "_")
}

// FromWireSymbol converts a venue pair id ("BTC_USDT") back to the
// canonical symbol ("BTC/USDT").
func FromWireSymbol(pair string) string {
	return strings.ReplaceAll(pair, "_", "/")
}
