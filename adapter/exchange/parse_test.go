package exchange

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kergu123/ccxt/entity"
)

func TestParseMarketDefaults(t *testing.T) {
	market := parseMarket("BTC_USDT", entity.RawPair{
		Base:           "BTC",
		Quote:          "USDT",
		BasePrecision:  8,
		QuotePrecision: 2,
		Status:         "TRADING",
	})

	assert.Equal(t, "BTC/USDT", market.Symbol)
	assert.Equal(t, "BTC", market.Base)
	assert.Equal(t, "USDT", market.Quote)
	assert.True(t, market.Active)
	assert.GreaterOrEqual(t, market.Precision.Amount, 0.0)
	assert.InDelta(t, math.Pow(10, -8), market.Limits.Amount.Min, 1e-12)
	assert.Nil(t, market.Limits.Amount.Max)
	assert.Nil(t, market.Limits.Price.Max)
}

func TestParseMarketFilters(t *testing.T) {
	market := parseMarket("ETH_USDT", entity.RawPair{
		Base:           "ETH",
		Quote:          "USDT",
		BasePrecision:  6,
		QuotePrecision: 2,
		Status:         "TRADING",
		Filters: []entity.RawFilter{
			{FilterType: "PRICE_FILTER", MinPrice: "0.01", MaxPrice: "100000", TickSize: "0.01"},
			{FilterType: "LOT_SIZE", MinQty: "0.001", MaxQty: "9000", TickSize: "0.001"},
		},
	})

	assert.Equal(t, 0.01, market.Precision.Price)
	assert.Equal(t, 0.001, market.Precision.Amount)
	assert.Equal(t, 0.01, market.Limits.Price.Min)
	require.NotNil(t, market.Limits.Price.Max)
	assert.Equal(t, 100000.0, *market.Limits.Price.Max)
	assert.Equal(t, 0.001, market.Limits.Amount.Min)
	require.NotNil(t, market.Limits.Amount.Max)
	assert.Equal(t, 9000.0, *market.Limits.Amount.Max)
}

func TestParseMarketNonPositiveMaxIsUnbounded(t *testing.T) {
	market := parseMarket("XRP_USDT", entity.RawPair{
		Base:           "XRP",
		Quote:          "USDT",
		BasePrecision:  4,
		QuotePrecision: 4,
		Status:         "TRADING",
		Filters: []entity.RawFilter{
			{FilterType: "PRICE_FILTER", MinPrice: "0.0001", MaxPrice: "0", TickSize: "0.0001"},
			{FilterType: "LOT_SIZE", MinQty: "1", MaxQty: "-1", TickSize: "1"},
		},
	})

	assert.Nil(t, market.Limits.Price.Max)
	assert.Nil(t, market.Limits.Amount.Max)
}

func TestParseMarketInactiveStatus(t *testing.T) {
	market := parseMarket("OLD_USDT", entity.RawPair{
		Base:           "OLD",
		Quote:          "USDT",
		BasePrecision:  2,
		QuotePrecision: 2,
		Status:         "HALTED",
	})

	assert.False(t, market.Active)
}

func TestParseTicker(t *testing.T) {
	ticker := parseTicker(entity.RawTicker{
		LastPrice: "100.5",
		BidPrice:  "100.0",
		AskPrice:  "101.0",
		CloseTime: 1700000000000,
	}, "BTC/USDT")

	assert.Equal(t, "BTC/USDT", ticker.Symbol)
	assert.Equal(t, int64(1700000000000), ticker.Timestamp)
	assert.Equal(t, 100.5, ticker.Last)
	assert.Equal(t, 100.5, ticker.Close)
	assert.Equal(t, 100.0, ticker.Bid)
	assert.Equal(t, 101.0, ticker.Ask)
}

func TestParseOrderBookKeepsVenueOrder(t *testing.T) {
	book := parseOrderBook(entity.RawDepth{
		Bids: []entity.RawLevel{
			{Price: "100.0", Qty: "1.5"},
			{Price: "99.5", Qty: "2.0"},
			{Price: "99.0", Qty: "0.5"},
		},
		Asks: []entity.RawLevel{
			{Price: "100.5", Qty: "1.0"},
			{Price: "101.0", Qty: "3.0"},
		},
	}, "BTC/USDT")

	assert.True(t, sort.SliceIsSorted(book.Bids, func(i, j int) bool {
		return book.Bids[i].Price > book.Bids[j].Price
	}), "bids must be descending by price")
	assert.True(t, sort.SliceIsSorted(book.Asks, func(i, j int) bool {
		return book.Asks[i].Price < book.Asks[j].Price
	}), "asks must be ascending by price")

	assert.Equal(t, entity.BookLevel{Price: 100.0, Qty: 1.5}, book.Bids[0])
	assert.Equal(t, entity.BookLevel{Price: 100.5, Qty: 1.0}, book.Asks[0])
}

func TestParseCandle(t *testing.T) {
	candle := parseCandle(entity.RawCandle{
		OpenTime:   1700000000000,
		Open:       "10.0",
		High:       "12.0",
		Low:        "9.5",
		Close:      "11.0",
		BaseVolume: "42.5",
	})

	assert.Equal(t, entity.Candle{
		OpenTime:   1700000000000,
		Open:       10.0,
		High:       12.0,
		Low:        9.5,
		Close:      11.0,
		BaseVolume: 42.5,
	}, candle)
}

func TestParseTrade(t *testing.T) {
	trade := parseTrade(entity.RawTrade{
		ID:                 "t-1",
		Time:               1700000000000,
		Pair:               "BTC_USDT",
		Price:              "100.0",
		Qty:                "0.5",
		NetCommission:      "0.05",
		NetCommissionAsset: "USDT",
	})

	assert.Equal(t, "BTC/USDT", trade.Symbol)
	assert.Equal(t, 50.0, trade.Cost)
	require.NotNil(t, trade.Fee)
	assert.Equal(t, 0.05, trade.Fee.Cost)
	assert.Equal(t, "USDT", trade.Fee.Currency)
}

func TestParseTradeWithoutFee(t *testing.T) {
	trade := parseTrade(entity.RawTrade{
		ID:    "t-2",
		Pair:  "ETH_USDT",
		Price: "2000",
		Qty:   "1",
	})

	assert.Nil(t, trade.Fee)
}

func TestParseStatus(t *testing.T) {
	cases := map[string]entity.Status{
		"ACTIVE":    entity.StatusOpen,
		"PENDING":   entity.StatusOpen,
		"COMPLETED": entity.StatusClosed,
		"CANCELLED": entity.StatusCanceled,
		"REJECTED":  entity.StatusRejected,
	}
	for venue, want := range cases {
		assert.Equal(t, want, parseStatus(venue), "venue status %s", venue)
	}

	// every canonical status is reachable
	reached := map[entity.Status]bool{}
	for venue := range statusByVenue {
		reached[parseStatus(venue)] = true
	}
	for _, canonical := range []entity.Status{
		entity.StatusOpen, entity.StatusClosed, entity.StatusCanceled, entity.StatusRejected,
	} {
		assert.True(t, reached[canonical], "canonical status %s unreachable", canonical)
	}

	// unmapped venue statuses pass through unchanged
	assert.Equal(t, entity.Status("SETTLING"), parseStatus("SETTLING"))
}

func TestParseOrderNoFills(t *testing.T) {
	order := parseOrder(entity.RawOrder{
		ID:           "o-1",
		Time:         1700000000000,
		Pair:         "BTC_USDT",
		Status:       "ACTIVE",
		Type:         "LIMIT",
		Side:         "BUY",
		Price:        "2.0",
		QtyOrig:      "10",
		QtyRemaining: "3",
	})

	assert.Equal(t, 7.0, order.Filled)
	assert.Equal(t, 3.0, order.Remaining)
	assert.Equal(t, 2.0, order.Average)
	assert.InDelta(t, order.Amount, order.Filled+order.Remaining, 1e-9)
	assert.Equal(t, entity.StatusOpen, order.Status)
	assert.Equal(t, entity.OrderTypeLimit, order.Type)
	assert.Equal(t, entity.SideBuy, order.Side)
	assert.Equal(t, 20.0, order.Cost)
}

func TestParseOrderAverageIsMeanOfFillPrices(t *testing.T) {
	order := parseOrder(entity.RawOrder{
		ID:           "o-2",
		Pair:         "BTC_USDT",
		Status:       "COMPLETED",
		Type:         "MARKET",
		Side:         "SELL",
		Price:        "100",
		QtyOrig:      "3",
		QtyRemaining: "0",
		Fills: []entity.RawTrade{
			{ID: "f-1", Pair: "BTC_USDT", Price: "99", Qty: "1"},
			{ID: "f-2", Pair: "BTC_USDT", Price: "100", Qty: "1"},
			{ID: "f-3", Pair: "BTC_USDT", Price: "104", Qty: "1"},
		},
	})

	assert.Equal(t, 101.0, order.Average)
	assert.Len(t, order.Trades, 3)
	assert.Equal(t, 3.0, order.Filled)
	assert.Equal(t, 0.0, order.Remaining)
}

func TestParseOrderFilledFlooredAtZero(t *testing.T) {
	order := parseOrder(entity.RawOrder{
		ID:           "o-3",
		Pair:         "BTC_USDT",
		Status:       "ACTIVE",
		Type:         "LIMIT",
		Side:         "BUY",
		Price:        "1",
		QtyOrig:      "1",
		QtyRemaining: "2",
	})

	assert.Equal(t, 0.0, order.Filled)
}

func TestParseOrderVenueCostOverride(t *testing.T) {
	order := parseOrder(entity.RawOrder{
		ID:           "o-4",
		Pair:         "BTC_USDT",
		Status:       "COMPLETED",
		Type:         "MARKET",
		Side:         "BUY",
		Price:        "100",
		QtyOrig:      "2",
		QtyRemaining: "0",
		Cost:         "199.5",
	})

	assert.Equal(t, 199.5, order.Cost)
}

func TestParseTransactionDeposit(t *testing.T) {
	tx := parseTransaction(entity.RawTransaction{
		ID:    "ETH123abc",
		Asset: "ETH",
		Qty:   "1.0",
		Net:   "0.99",
	})

	assert.Equal(t, entity.TransactionDeposit, tx.Type)
	assert.Equal(t, 0.99, tx.Amount)
	assert.InDelta(t, 0.01, tx.Fee.Cost, 1e-9)
	assert.Equal(t, "ETH", tx.Fee.Currency)
}

func TestParseTransactionWithdrawal(t *testing.T) {
	tx := parseTransaction(entity.RawTransaction{
		ID:      "wd-777",
		Asset:   "BTC",
		Address: "bc1qexample",
		Status:  "COMPLETED",
		Qty:     "0.5",
		Net:     "0.4995",
		Transaction: &entity.RawTxInfo{
			Hash: "0xdeadbeef",
		},
	})

	assert.Equal(t, entity.TransactionWithdrawal, tx.Type)
	assert.Equal(t, "0xdeadbeef", tx.TxID)
	assert.Equal(t, entity.StatusClosed, tx.Status)
	assert.InDelta(t, 0.0005, tx.Fee.Cost, 1e-9)
}
