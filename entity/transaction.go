package entity

type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
)

// Transaction is a canonical deposit or withdrawal record. Amount is
// the net quantity credited; the fee is gross minus net.
type Transaction struct {
	ID        string          `json:"id"`
	TxID      string          `json:"txid,omitempty"`
	Timestamp int64           `json:"timestamp"`
	Address   string          `json:"address"`
	Type      TransactionType `json:"type"`
	Amount    float64         `json:"amount"`
	Currency  string          `json:"currency"`
	Status    Status          `json:"status"`
	Fee       Fee             `json:"fee"`
}
