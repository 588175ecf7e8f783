package exchange

import (
	"context"

	"github.com/Kergu123/ccxt/entity"
)

// ExchangeAdapter is the venue-agnostic surface consumed by the host
// toolkit.
type ExchangeAdapter interface {
	Ping(ctx context.Context) error
	ServerTime(ctx context.Context) (int64, error)
	SyncClock(ctx context.Context) (int64, error)

	LoadMarkets(ctx context.Context, force bool) (map[string]entity.Market, error)
	FetchTicker(ctx context.Context, symbol string) (entity.Ticker, error)
	FetchOrderBook(ctx context.Context, symbol string, limit int) (entity.Orderbook, error)
	FetchOHLCV(ctx context.Context, symbol string, since int64, limit int) ([]entity.Candle, error)
	FetchTrades(ctx context.Context, symbol string, since int64, limit int) ([]entity.Trade, error)
	FetchFundingFees(ctx context.Context) (entity.FundingFees, error)

	FetchBalance(ctx context.Context) (map[string]entity.Balance, error)
	FetchOrder(ctx context.Context, id string) (entity.Order, error)
	FetchOrders(ctx context.Context, since int64, limit int) ([]entity.Order, error)
	FetchOpenOrders(ctx context.Context, since int64, limit int) ([]entity.Order, error)
	FetchClosedOrders(ctx context.Context, since int64, limit int) ([]entity.Order, error)
	FetchMyTrades(ctx context.Context, since int64, limit int) ([]entity.Trade, error)
	FetchDeposits(ctx context.Context) ([]entity.Transaction, error)
	FetchWithdrawals(ctx context.Context) ([]entity.Transaction, error)

	CreateOrder(ctx context.Context, req entity.OrderRequest) (entity.Order, error)
	CancelOrder(ctx context.Context, id string) (entity.Order, error)
	Withdraw(ctx context.Context, asset string, amount float64, address string) (string, error)

	CalculateFee(symbol string, side entity.OrderSide, amount, price float64, role string) (entity.Fee, error)
}

var _ ExchangeAdapter = (*bishino)(nil)
