package entity

type Ticker struct {
	Symbol      string  `json:"symbol"`
	Timestamp   int64   `json:"timestamp"`
	High        float64 `json:"high"`
	Low         float64 `json:"low"`
	Bid         float64 `json:"bid"`
	BidVolume   float64 `json:"bid_volume"`
	Ask         float64 `json:"ask"`
	AskVolume   float64 `json:"ask_volume"`
	Open        float64 `json:"open"`
	Close       float64 `json:"close"`
	Last        float64 `json:"last"`
	Change      float64 `json:"change"`
	Percentage  float64 `json:"percentage"`
	BaseVolume  float64 `json:"base_volume"`
	QuoteVolume float64 `json:"quote_volume"`
}
