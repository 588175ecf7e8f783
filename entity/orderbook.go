package entity

// Orderbook carries the two-sided book as returned by the venue: bids
// descending by price, asks ascending.
type Orderbook struct {
	Symbol string      `json:"symbol"`
	Bids   []BookLevel `json:"bids"`
	Asks   []BookLevel `json:"asks"`
}

type BookLevel struct {
	Price float64 `json:"price"`
	Qty   float64 `json:"qty"`
}
