package entity

import "encoding/json"

// BishinoResponse is the venue's response envelope. Decimal quantities
// inside Result arrive as JSON strings; error codes are numeric strings.
type BishinoResponse[T any] struct {
	Success bool        `json:"success"`
	Code    json.Number `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Result  T           `json:"result"`
}

type RawFilter struct {
	FilterType string `json:"filter_type"`
	MinPrice   string `json:"min_price,omitempty"`
	MaxPrice   string `json:"max_price,omitempty"`
	MinQty     string `json:"min_qty,omitempty"`
	MaxQty     string `json:"max_qty,omitempty"`
	TickSize   string `json:"tick_size,omitempty"`
}

type RawPair struct {
	Base           string      `json:"base"`
	Quote          string      `json:"quote"`
	BasePrecision  float64     `json:"base_precision"`
	QuotePrecision float64     `json:"quote_precision"`
	Status         string      `json:"status"`
	Filters        []RawFilter `json:"filters"`
}

type RawTicker struct {
	HighPrice          string `json:"high_price"`
	LowPrice           string `json:"low_price"`
	BidPrice           string `json:"bid_price"`
	BidQty             string `json:"bid_qty"`
	AskPrice           string `json:"ask_price"`
	AskQty             string `json:"ask_qty"`
	OpenPrice          string `json:"open_price"`
	LastPrice          string `json:"last_price"`
	PriceChange        string `json:"price_change"`
	PriceChangePercent string `json:"price_change_percent"`
	BaseVolume         string `json:"base_volume"`
	QuoteVolume        string `json:"quote_volume"`
	CloseTime          int64  `json:"close_time"`
}

type RawLevel struct {
	Price string `json:"price"`
	Qty   string `json:"qty"`
}

type RawDepth struct {
	Bids []RawLevel `json:"bids"`
	Asks []RawLevel `json:"asks"`
}

type RawCandle struct {
	OpenTime   int64  `json:"open_time"`
	Open       string `json:"open"`
	High       string `json:"high"`
	Low        string `json:"low"`
	Close      string `json:"close"`
	BaseVolume string `json:"base_volume"`
}

type RawTrade struct {
	ID                 string `json:"id"`
	Time               int64  `json:"time"`
	Pair               string `json:"pair"`
	Price              string `json:"price"`
	Qty                string `json:"qty"`
	NetCommission      string `json:"net_commission,omitempty"`
	NetCommissionAsset string `json:"net_commission_asset,omitempty"`
}

type RawOrder struct {
	ID           string     `json:"id"`
	Time         int64      `json:"time"`
	Pair         string     `json:"pair"`
	Status       string     `json:"status"`
	Type         string     `json:"type"`
	Side         string     `json:"side"`
	Price        string     `json:"price"`
	QtyOrig      string     `json:"qty_orig"`
	QtyRemaining string     `json:"qty_remaining"`
	Cost         string     `json:"cost,omitempty"`
	Fills        []RawTrade `json:"fills,omitempty"`
}

type RawTxInfo struct {
	Hash string `json:"hash"`
}

type RawTransaction struct {
	ID          string     `json:"id"`
	Time        int64      `json:"time"`
	Address     string     `json:"address"`
	Asset       string     `json:"asset"`
	Status      string     `json:"status"`
	Qty         string     `json:"qty"`
	Net         string     `json:"net"`
	Transaction *RawTxInfo `json:"transaction,omitempty"`
}

type RawAssetFees struct {
	Withdrawal string `json:"withdrawal"`
	Deposit    string `json:"deposit"`
}

type RawAsset struct {
	Fees RawAssetFees `json:"fees"`
}

type RawBalance struct {
	Asset  string `json:"asset"`
	Free   string `json:"free"`
	Locked string `json:"locked"`
}

type RawAccountInfo struct {
	Balances map[string]RawBalance `json:"balances"`
}

type RawWithdrawal struct {
	ID string `json:"id"`
}
