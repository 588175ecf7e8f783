package entity

// Status is the canonical lifecycle state shared by orders and
// transactions. Venue statuses with no mapping pass through unchanged.
type Status string

const (
	StatusOpen     Status = "open"
	StatusClosed   Status = "closed"
	StatusCanceled Status = "canceled"
	StatusRejected Status = "rejected"
)

type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

type OrderType string

const (
	OrderTypeLimit           OrderType = "limit"
	OrderTypeMarket          OrderType = "market"
	OrderTypeStopLoss        OrderType = "stop_loss"
	OrderTypeStopLossLimit   OrderType = "stop_loss_limit"
	OrderTypeTakeProfit      OrderType = "take_profit"
	OrderTypeTakeProfitLimit OrderType = "take_profit_limit"
	OrderTypeTrigger         OrderType = "trigger"
	OrderTypeIceberg         OrderType = "iceberg"
)

type Order struct {
	ID        string    `json:"id"`
	Timestamp int64     `json:"timestamp"`
	Symbol    string    `json:"symbol"`
	Type      OrderType `json:"type"`
	Side      OrderSide `json:"side"`
	Price     float64   `json:"price"`
	Amount    float64   `json:"amount"`
	Filled    float64   `json:"filled"`
	Remaining float64   `json:"remaining"`
	Cost      float64   `json:"cost"`
	Average   float64   `json:"average"`
	Status    Status    `json:"status"`
	Trades    []Trade   `json:"trades,omitempty"`
}

// OrderRequest is a canonical order-placement intent. Optional fields
// are pointers: which ones are required depends on Type.
type OrderRequest struct {
	Symbol       string
	Type         OrderType
	Side         OrderSide
	Amount       float64
	Price        *float64
	TriggerPrice *float64
	Icebergs     *float64
	Test         bool
}
