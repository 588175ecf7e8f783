package exchange

import (
	"math"
	"strconv"
	"strings"

	"github.com/Kergu123/ccxt/common"
	"github.com/Kergu123/ccxt/entity"
)

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// safeFloat returns nil for absent or malformed fields so optional
// bounds stay unset instead of collapsing to zero.
func safeFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseMarket(id string, raw entity.RawPair) entity.Market {
	precision := entity.Precision{
		Base:   raw.BasePrecision,
		Quote:  raw.QuotePrecision,
		Amount: raw.BasePrecision,
		Price:  raw.QuotePrecision,
	}

	limits := entity.Limits{
		Amount: entity.MinMax{Min: math.Pow(10, -precision.Amount)},
	}
	if precision.Amount > 0 {
		limits.Cost.Min = -1 * math.Log10(precision.Amount)
	}

	for _, filter := range raw.Filters {
		switch filter.FilterType {
		case "PRICE_FILTER":
			limits.Price = entity.MinMax{Min: parseFloat(filter.MinPrice)}
			if max := safeFloat(filter.MaxPrice); max != nil && *max > 0 {
				limits.Price.Max = max
			}
			precision.Price = parseFloat(filter.TickSize)
		case "LOT_SIZE":
			precision.Amount = parseFloat(filter.TickSize)
			limits.Amount = entity.MinMax{Min: parseFloat(filter.MinQty)}
			if max := safeFloat(filter.MaxQty); max != nil && *max > 0 {
				limits.Amount.Max = max
			}
		}
	}

	return entity.Market{
		ID:        id,
		Symbol:    raw.Base + "/" + raw.Quote,
		Base:      raw.Base,
		Quote:     raw.Quote,
		Active:    raw.Status == "TRADING",
		Precision: precision,
		Limits:    limits,
		Maker:     makerRate,
		Taker:     takerRate,
	}
}

func parseTicker(raw entity.RawTicker, symbol string) entity.Ticker {
	last := parseFloat(raw.LastPrice)

	return entity.Ticker{
		Symbol:      symbol,
		Timestamp:   raw.CloseTime,
		High:        parseFloat(raw.HighPrice),
		Low:         parseFloat(raw.LowPrice),
		Bid:         parseFloat(raw.BidPrice),
		BidVolume:   parseFloat(raw.BidQty),
		Ask:         parseFloat(raw.AskPrice),
		AskVolume:   parseFloat(raw.AskQty),
		Open:        parseFloat(raw.OpenPrice),
		Close:       last,
		Last:        last,
		Change:      parseFloat(raw.PriceChange),
		Percentage:  parseFloat(raw.PriceChangePercent),
		BaseVolume:  parseFloat(raw.BaseVolume),
		QuoteVolume: parseFloat(raw.QuoteVolume),
	}
}

// parseOrderBook trusts the venue to return pre-sorted levels and does
// not re-sort them.
func parseOrderBook(raw entity.RawDepth, symbol string) entity.Orderbook {
	book := entity.Orderbook{
		Symbol: symbol,
		Bids:   make([]entity.BookLevel, 0, len(raw.Bids)),
		Asks:   make([]entity.BookLevel, 0, len(raw.Asks)),
	}

	for _, b := range raw.Bids {
		book.Bids = append(book.Bids, entity.BookLevel{Price: parseFloat(b.Price), Qty: parseFloat(b.Qty)})
	}
	for _, a := range raw.Asks {
		book.Asks = append(book.Asks, entity.BookLevel{Price: parseFloat(a.Price), Qty: parseFloat(a.Qty)})
	}

	return book
}

func parseCandle(raw entity.RawCandle) entity.Candle {
	return entity.Candle{
		OpenTime:   raw.OpenTime,
		Open:       parseFloat(raw.Open),
		High:       parseFloat(raw.High),
		Low:        parseFloat(raw.Low),
		Close:      parseFloat(raw.Close),
		BaseVolume: parseFloat(raw.BaseVolume),
	}
}

func parseCandles(raws []entity.RawCandle) []entity.Candle {
	candles := make([]entity.Candle, 0, len(raws))
	for _, raw := range raws {
		candles = append(candles, parseCandle(raw))
	}
	return candles
}

func parseTrade(raw entity.RawTrade) entity.Trade {
	price := parseFloat(raw.Price)
	amount := parseFloat(raw.Qty)

	trade := entity.Trade{
		ID:        raw.ID,
		Timestamp: raw.Time,
		Symbol:    common.FromWireSymbol(raw.Pair),
		Price:     price,
		Amount:    amount,
		Cost:      price * amount,
	}

	if raw.NetCommission != "" {
		trade.Fee = &entity.Fee{
			Cost:     parseFloat(raw.NetCommission),
			Currency: raw.NetCommissionAsset,
		}
	}

	return trade
}

func parseTrades(raws []entity.RawTrade) []entity.Trade {
	trades := make([]entity.Trade, 0, len(raws))
	for _, raw := range raws {
		trades = append(trades, parseTrade(raw))
	}
	return trades
}

var statusByVenue = map[string]entity.Status{
	"ACTIVE":    entity.StatusOpen,
	"COMPLETED": entity.StatusClosed,
	"CANCELLED": entity.StatusCanceled,
	"REJECTED":  entity.StatusRejected,
	"PENDING":   entity.StatusOpen,
}

// parseStatus maps venue statuses to canonical ones. Unmapped values
// pass through unchanged so new venue states stay visible.
func parseStatus(status string) entity.Status {
	if mapped, ok := statusByVenue[status]; ok {
		return mapped
	}
	return entity.Status(status)
}

func parseOrder(raw entity.RawOrder) entity.Order {
	price := parseFloat(raw.Price)
	amount := parseFloat(raw.QtyOrig)
	remaining := parseFloat(raw.QtyRemaining)

	filled := amount - remaining
	if filled < 0 {
		filled = 0
	}

	trades := parseTrades(raw.Fills)

	average := price
	if len(trades) > 0 {
		sum := 0.0
		for _, trade := range trades {
			sum += trade.Price
		}
		average = sum / float64(len(trades))
	}

	cost := price * amount
	if raw.Cost != "" {
		cost = parseFloat(raw.Cost)
	}

	return entity.Order{
		ID:        raw.ID,
		Timestamp: raw.Time,
		Symbol:    common.FromWireSymbol(raw.Pair),
		Type:      entity.OrderType(strings.ToLower(raw.Type)),
		Side:      entity.OrderSide(strings.ToLower(raw.Side)),
		Price:     price,
		Amount:    amount,
		Filled:    filled,
		Remaining: remaining,
		Cost:      cost,
		Average:   average,
		Status:    parseStatus(raw.Status),
		Trades:    trades,
	}
}

func parseOrders(raws []entity.RawOrder) []entity.Order {
	orders := make([]entity.Order, 0, len(raws))
	for _, raw := range raws {
		orders = append(orders, parseOrder(raw))
	}
	return orders
}

// parseTransaction infers the direction from the record id: deposit ids
// embed the asset code, withdrawal ids do not. The fee is gross minus
// net, never venue-reported.
func parseTransaction(raw entity.RawTransaction) entity.Transaction {
	txType := entity.TransactionWithdrawal
	if strings.Contains(raw.ID, raw.Asset) {
		txType = entity.TransactionDeposit
	}

	net := parseFloat(raw.Net)
	gross := parseFloat(raw.Qty)

	tx := entity.Transaction{
		ID:        raw.ID,
		Timestamp: raw.Time,
		Address:   raw.Address,
		Type:      txType,
		Amount:    net,
		Currency:  raw.Asset,
		Status:    parseStatus(raw.Status),
		Fee: entity.Fee{
			Cost:     gross - net,
			Currency: raw.Asset,
		},
	}
	if raw.Transaction != nil {
		tx.TxID = raw.Transaction.Hash
	}

	return tx
}

func parseTransactions(raws []entity.RawTransaction) []entity.Transaction {
	txs := make([]entity.Transaction, 0, len(raws))
	for _, raw := range raws {
		txs = append(txs, parseTransaction(raw))
	}
	return txs
}
