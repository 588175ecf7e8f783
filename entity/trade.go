package entity

// Fee is attached to trades and transactions, and returned standalone
// by the fee calculator.
type Fee struct {
	Cost     float64 `json:"cost"`
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate,omitempty"`
	Role     string  `json:"role,omitempty"`
}

type Trade struct {
	ID        string  `json:"id"`
	Timestamp int64   `json:"timestamp"`
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Amount    float64 `json:"amount"`
	Cost      float64 `json:"cost"`
	Fee       *Fee    `json:"fee,omitempty"`
}

// FundingFees holds per-asset deposit and withdrawal fees.
type FundingFees struct {
	Withdraw map[string]float64 `json:"withdraw"`
	Deposit  map[string]float64 `json:"deposit"`
}
