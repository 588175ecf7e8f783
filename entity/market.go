package entity

// MinMax bounds a traded quantity. A nil Max means unbounded.
type MinMax struct {
	Min float64  `json:"min"`
	Max *float64 `json:"max,omitempty"`
}

type Limits struct {
	Amount MinMax `json:"amount"`
	Price  MinMax `json:"price"`
	Cost   MinMax `json:"cost"`
}

// Precision values are decimal places for pairs without filters and the
// declared tick size once a price or lot-size filter overlays them.
type Precision struct {
	Base   float64 `json:"base"`
	Quote  float64 `json:"quote"`
	Amount float64 `json:"amount"`
	Price  float64 `json:"price"`
}

// Market is the canonical instrument record. Built once per catalog
// load and immutable for the session.
type Market struct {
	ID        string    `json:"id"`
	Symbol    string    `json:"symbol"`
	Base      string    `json:"base"`
	Quote     string    `json:"quote"`
	Active    bool      `json:"active"`
	Precision Precision `json:"precision"`
	Limits    Limits    `json:"limits"`
	Maker     float64   `json:"maker"`
	Taker     float64   `json:"taker"`
}
