package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/Kergu123/ccxt/common"
	"github.com/Kergu123/ccxt/config"
	"github.com/Kergu123/ccxt/entity"
)

const (
	makerRate = 0.000
	takerRate = 0.0075

	defaultRecvWindow = 5000
)

type bishino struct {
	apiKey      string
	secretKey   string
	baseUrl     string
	recvWindow  int64
	adjustClock bool

	nonce *common.NonceSource

	client *resty.Client
	logger *logrus.Logger

	marketsMut sync.RWMutex
	markets    map[string]entity.Market
}

func NewBishinoAdapter(conf config.BishinoConfig, logger *logrus.Logger) *bishino {
	client := resty.New()
	client.SetAllowGetMethodPayload(true)
	if conf.Timeout > 0 {
		client.SetTimeout(time.Duration(conf.Timeout))
	}

	recvWindow := conf.RecvWindow
	if recvWindow == 0 {
		recvWindow = defaultRecvWindow
	}

	return &bishino{
		apiKey:      conf.ApiKey,
		secretKey:   conf.SecretKey,
		baseUrl:     strings.TrimRight(conf.BaseUrl, "/"),
		recvWindow:  recvWindow,
		adjustClock: conf.AdjustClock,

		nonce: common.NewNonceSource(),

		client: client,
		logger: logger,
	}
}

func responseError(r *resty.Response, success bool, code json.Number, message string) error {
	if r.IsError() || !success {
		return venueError(r.StatusCode(), code.String(), message)
	}
	return nil
}

func publicGet[T any](ctx context.Context, b *bishino, path string, query url.Values) (T, error) {
	var res entity.BishinoResponse[T]
	var zero T

	req := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetResult(&res).
		SetError(&res)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	r, err := req.Get(b.baseUrl + "/" + path)
	if err != nil {
		return zero, fmt.Errorf("[adapter][exchange][bishino][publicGet][%s] Error: %w", path, err)
	}
	if err := responseError(r, res.Success, res.Code, res.Message); err != nil {
		return zero, fmt.Errorf("[adapter][exchange][bishino][publicGet][%s] Error: %w", path, err)
	}

	return res.Result, nil
}

// signedQuery builds the authenticated request envelope: caller params
// plus timestamp and recv_window, url-encoded, HMAC-signed with the
// account secret. The encoded query doubles as the request body.
func (b *bishino) signedQuery(params url.Values) (string, map[string]string, error) {
	if b.apiKey == "" || b.secretKey == "" {
		return "", nil, newError(KindAuthenticationError, "api key and secret are required for private endpoints")
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("timestamp", strconv.FormatInt(b.nonce.Next(), 10))
	params.Set("recv_window", strconv.FormatInt(b.recvWindow, 10))

	query := params.Encode()

	headers := map[string]string{
		"x-api-key":    b.apiKey,
		"x-signature":  common.HmacHash(query, b.secretKey),
		"Content-Type": "application/x-www-form-urlencoded",
	}

	return query, headers, nil
}

func signedGet[T any](ctx context.Context, b *bishino, path string, params url.Values) (T, error) {
	var res entity.BishinoResponse[T]
	var zero T

	query, headers, err := b.signedQuery(params)
	if err != nil {
		return zero, fmt.Errorf("[adapter][exchange][bishino][signedGet][%s] Error: %w", path, err)
	}

	r, err := b.client.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetQueryString(query).
		SetBody(query).
		SetResult(&res).
		SetError(&res).
		Get(b.baseUrl + "/" + path)
	if err != nil {
		return zero, fmt.Errorf("[adapter][exchange][bishino][signedGet][%s] Error: %w", path, err)
	}
	if err := responseError(r, res.Success, res.Code, res.Message); err != nil {
		return zero, fmt.Errorf("[adapter][exchange][bishino][signedGet][%s] Error: %w", path, err)
	}

	return res.Result, nil
}

func signedPost[T any](ctx context.Context, b *bishino, path string, params url.Values) (T, error) {
	var res entity.BishinoResponse[T]
	var zero T

	query, headers, err := b.signedQuery(params)
	if err != nil {
		return zero, fmt.Errorf("[adapter][exchange][bishino][signedPost][%s] Error: %w", path, err)
	}

	r, err := b.client.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetBody(query).
		SetResult(&res).
		SetError(&res).
		Post(b.baseUrl + "/" + path)
	if err != nil {
		return zero, fmt.Errorf("[adapter][exchange][bishino][signedPost][%s] Error: %w", path, err)
	}
	if err := responseError(r, res.Success, res.Code, res.Message); err != nil {
		return zero, fmt.Errorf("[adapter][exchange][bishino][signedPost][%s] Error: %w", path, err)
	}

	return res.Result, nil
}

func (b *bishino) Ping(ctx context.Context) error {
	_, err := publicGet[any](ctx, b, "ping", nil)
	return err
}

// ServerTime returns the venue wall clock in milliseconds.
func (b *bishino) ServerTime(ctx context.Context) (int64, error) {
	venueTime, err := publicGet[*int64](ctx, b, "time", nil)
	if err != nil {
		return 0, err
	}
	if venueTime == nil {
		return 0, fmt.Errorf("[adapter][exchange][bishino][ServerTime] Error: %w",
			newError(KindExchangeError, "time response is missing the result field"))
	}
	return *venueTime, nil
}

// SyncClock measures the drift between the local and venue clocks and
// feeds it to the nonce source. On failure the previous drift is kept.
func (b *bishino) SyncClock(ctx context.Context) (int64, error) {
	venueTime, err := b.ServerTime(ctx)
	after := time.Now().UnixMilli()
	if err != nil {
		return b.nonce.Drift(), err
	}

	drift := after - venueTime
	b.nonce.SetDrift(drift)
	b.logger.WithField("drift_ms", drift).Info("venue clock drift updated")

	return drift, nil
}

// LoadMarkets fetches the pair list and atomically replaces the cached
// catalog. With force false a loaded catalog is returned as-is.
func (b *bishino) LoadMarkets(ctx context.Context, force bool) (map[string]entity.Market, error) {
	b.marketsMut.RLock()
	loaded := len(b.markets) > 0
	b.marketsMut.RUnlock()

	if loaded && !force {
		return b.snapshotMarkets(), nil
	}

	if b.adjustClock {
		if _, err := b.SyncClock(ctx); err != nil {
			b.logger.WithError(err).Warn("clock sync failed, keeping previous drift")
		}
	}

	raw, err := publicGet[map[string]entity.RawPair](ctx, b, "pairs", nil)
	if err != nil {
		return nil, fmt.Errorf("[adapter][exchange][bishino][LoadMarkets] Error: %w", err)
	}

	markets := make(map[string]entity.Market, len(raw))
	for id, rawPair := range raw {
		market := parseMarket(id, rawPair)
		markets[market.Symbol] = market
	}

	b.marketsMut.Lock()
	b.markets = markets
	b.marketsMut.Unlock()

	return b.snapshotMarkets(), nil
}

func (b *bishino) snapshotMarkets() map[string]entity.Market {
	b.marketsMut.RLock()
	defer b.marketsMut.RUnlock()

	snapshot := make(map[string]entity.Market, len(b.markets))
	for symbol, market := range b.markets {
		snapshot[symbol] = market
	}
	return snapshot
}

func (b *bishino) ensureMarkets(ctx context.Context) error {
	b.marketsMut.RLock()
	loaded := len(b.markets) > 0
	b.marketsMut.RUnlock()

	if loaded {
		return nil
	}

	_, err := b.LoadMarkets(ctx, false)
	return err
}

func (b *bishino) market(symbol string) (entity.Market, error) {
	b.marketsMut.RLock()
	market, ok := b.markets[symbol]
	b.marketsMut.RUnlock()

	if !ok {
		return entity.Market{}, fmt.Errorf("[adapter][exchange][bishino][market] Error: %w",
			&Error{Kind: KindMarketNotFound, Message: fmt.Sprintf("no market for symbol %q", symbol)})
	}
	return market, nil
}

func (b *bishino) FetchTicker(ctx context.Context, symbol string) (entity.Ticker, error) {
	if err := b.ensureMarkets(ctx); err != nil {
		return entity.Ticker{}, err
	}
	market, err := b.market(symbol)
	if err != nil {
		return entity.Ticker{}, err
	}

	tickers, err := publicGet[map[string]entity.RawTicker](ctx, b, "ticker", nil)
	if err != nil {
		return entity.Ticker{}, fmt.Errorf("[adapter][exchange][bishino][FetchTicker] Error: %w", err)
	}

	raw, ok := tickers[market.ID]
	if !ok {
		return entity.Ticker{}, fmt.Errorf("[adapter][exchange][bishino][FetchTicker] Error: %w",
			newError(KindExchangeError, "ticker response has no entry for pair %q", market.ID))
	}

	return parseTicker(raw, symbol), nil
}

func (b *bishino) FetchOrderBook(ctx context.Context, symbol string, limit int) (entity.Orderbook, error) {
	if err := b.ensureMarkets(ctx); err != nil {
		return entity.Orderbook{}, err
	}
	market, err := b.market(symbol)
	if err != nil {
		return entity.Orderbook{}, err
	}

	params := url.Values{}
	params.Set("pair", common.ToWireSymbol(market.ID))
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	raw, err := publicGet[entity.RawDepth](ctx, b, "depth", params)
	if err != nil {
		return entity.Orderbook{}, fmt.Errorf("[adapter][exchange][bishino][FetchOrderBook] Error: %w", err)
	}

	return parseOrderBook(raw, symbol), nil
}

func (b *bishino) FetchOHLCV(ctx context.Context, symbol string, since int64, limit int) ([]entity.Candle, error) {
	if err := b.ensureMarkets(ctx); err != nil {
		return nil, err
	}
	market, err := b.market(symbol)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("pair", market.ID)
	if since > 0 {
		params.Set("start", strconv.FormatInt(since, 10))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	raw, err := publicGet[[]entity.RawCandle](ctx, b, "ohlcv", params)
	if err != nil {
		return nil, fmt.Errorf("[adapter][exchange][bishino][FetchOHLCV] Error: %w", err)
	}

	return parseCandles(raw), nil
}

func (b *bishino) FetchTrades(ctx context.Context, symbol string, since int64, limit int) ([]entity.Trade, error) {
	if err := b.ensureMarkets(ctx); err != nil {
		return nil, err
	}
	market, err := b.market(symbol)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("pair", market.ID)
	if since > 0 {
		params.Set("start", strconv.FormatInt(since, 10))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	raw, err := publicGet[[]entity.RawTrade](ctx, b, "trades", params)
	if err != nil {
		return nil, fmt.Errorf("[adapter][exchange][bishino][FetchTrades] Error: %w", err)
	}

	return parseTrades(raw), nil
}

// FetchFundingFees reads per-asset deposit and withdrawal fees from the
// public asset registry.
func (b *bishino) FetchFundingFees(ctx context.Context) (entity.FundingFees, error) {
	assets, err := publicGet[map[string]entity.RawAsset](ctx, b, "assets", nil)
	if err != nil {
		return entity.FundingFees{}, fmt.Errorf("[adapter][exchange][bishino][FetchFundingFees] Error: %w", err)
	}

	fees := entity.FundingFees{
		Withdraw: make(map[string]float64, len(assets)),
		Deposit:  make(map[string]float64, len(assets)),
	}
	for code, asset := range assets {
		fees.Withdraw[code] = parseFloat(asset.Fees.Withdrawal)
		fees.Deposit[code] = parseFloat(asset.Fees.Deposit)
	}

	return fees, nil
}

func (b *bishino) FetchBalance(ctx context.Context) (map[string]entity.Balance, error) {
	if err := b.ensureMarkets(ctx); err != nil {
		return nil, err
	}

	info, err := signedGet[entity.RawAccountInfo](ctx, b, "account_info", nil)
	if err != nil {
		return nil, fmt.Errorf("[adapter][exchange][bishino][FetchBalance] Error: %w", err)
	}

	balances := make(map[string]entity.Balance, len(info.Balances))
	for code, raw := range info.Balances {
		asset := raw.Asset
		if asset == "" {
			asset = code
		}
		free := parseFloat(raw.Free)
		used := parseFloat(raw.Locked)
		balances[asset] = entity.Balance{
			Asset: asset,
			Free:  free,
			Used:  used,
			Total: free + used,
		}
	}

	return balances, nil
}

func rangeParams(since int64, limit int) url.Values {
	params := url.Values{}
	if since > 0 {
		params.Set("start", strconv.FormatInt(since, 10))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return params
}

func (b *bishino) FetchOrder(ctx context.Context, id string) (entity.Order, error) {
	if err := b.ensureMarkets(ctx); err != nil {
		return entity.Order{}, err
	}

	params := url.Values{}
	params.Set("id", id)

	raw, err := signedGet[entity.RawOrder](ctx, b, "offer_by_id", params)
	if err != nil {
		return entity.Order{}, fmt.Errorf("[adapter][exchange][bishino][FetchOrder] Error: %w", err)
	}

	return parseOrder(raw), nil
}

func (b *bishino) FetchOrders(ctx context.Context, since int64, limit int) ([]entity.Order, error) {
	if err := b.ensureMarkets(ctx); err != nil {
		return nil, err
	}

	raw, err := signedGet[[]entity.RawOrder](ctx, b, "offers_by_account", rangeParams(since, limit))
	if err != nil {
		return nil, fmt.Errorf("[adapter][exchange][bishino][FetchOrders] Error: %w", err)
	}

	return parseOrders(raw), nil
}

func (b *bishino) FetchOpenOrders(ctx context.Context, since int64, limit int) ([]entity.Order, error) {
	if err := b.ensureMarkets(ctx); err != nil {
		return nil, err
	}

	raw, err := signedGet[[]entity.RawOrder](ctx, b, "active_offers_by_account", rangeParams(since, limit))
	if err != nil {
		return nil, fmt.Errorf("[adapter][exchange][bishino][FetchOpenOrders] Error: %w", err)
	}

	return parseOrders(raw), nil
}

func (b *bishino) FetchClosedOrders(ctx context.Context, since int64, limit int) ([]entity.Order, error) {
	if err := b.ensureMarkets(ctx); err != nil {
		return nil, err
	}

	raw, err := signedGet[[]entity.RawOrder](ctx, b, "completed_offers_by_account", rangeParams(since, limit))
	if err != nil {
		return nil, fmt.Errorf("[adapter][exchange][bishino][FetchClosedOrders] Error: %w", err)
	}

	return parseOrders(raw), nil
}

func (b *bishino) FetchMyTrades(ctx context.Context, since int64, limit int) ([]entity.Trade, error) {
	if err := b.ensureMarkets(ctx); err != nil {
		return nil, err
	}

	raw, err := signedGet[[]entity.RawTrade](ctx, b, "trades_by_account", rangeParams(since, limit))
	if err != nil {
		return nil, fmt.Errorf("[adapter][exchange][bishino][FetchMyTrades] Error: %w", err)
	}

	return parseTrades(raw), nil
}

func (b *bishino) FetchDeposits(ctx context.Context) ([]entity.Transaction, error) {
	if err := b.ensureMarkets(ctx); err != nil {
		return nil, err
	}

	raw, err := signedGet[[]entity.RawTransaction](ctx, b, "deposits", nil)
	if err != nil {
		return nil, fmt.Errorf("[adapter][exchange][bishino][FetchDeposits] Error: %w", err)
	}

	return parseTransactions(raw), nil
}

func (b *bishino) FetchWithdrawals(ctx context.Context) ([]entity.Transaction, error) {
	if err := b.ensureMarkets(ctx); err != nil {
		return nil, err
	}

	raw, err := signedGet[[]entity.RawTransaction](ctx, b, "withdrawals", nil)
	if err != nil {
		return nil, fmt.Errorf("[adapter][exchange][bishino][FetchWithdrawals] Error: %w", err)
	}

	return parseTransactions(raw), nil
}

type orderFields struct {
	price    bool
	trigger  bool
	icebergs bool
}

// resolveOrderEndpoint picks the venue endpoint and required-field set
// for a canonical order type. The mapping is a closed set.
func resolveOrderEndpoint(typ entity.OrderType) (string, orderFields, error) {
	switch typ {
	case entity.OrderTypeLimit:
		return "auth/limit", orderFields{price: true}, nil
	case entity.OrderTypeMarket:
		return "auth/market", orderFields{}, nil
	case entity.OrderTypeStopLoss, entity.OrderTypeTakeProfit:
		return "auth/market_trigger", orderFields{trigger: true}, nil
	case entity.OrderTypeStopLossLimit, entity.OrderTypeTakeProfitLimit:
		return "auth/limit_trigger", orderFields{price: true, trigger: true}, nil
	case entity.OrderTypeTrigger:
		return "auth/stop", orderFields{price: true, trigger: true}, nil
	case entity.OrderTypeIceberg:
		return "auth/icebergs", orderFields{price: true, icebergs: true}, nil
	default:
		return "", orderFields{}, newError(KindInvalidOrder, "unsupported order type %q", typ)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CreateOrder validates the intent against the required-field set for
// its type before anything is sent to the venue.
func (b *bishino) CreateOrder(ctx context.Context, req entity.OrderRequest) (entity.Order, error) {
	if err := b.ensureMarkets(ctx); err != nil {
		return entity.Order{}, err
	}
	market, err := b.market(req.Symbol)
	if err != nil {
		return entity.Order{}, err
	}

	endpoint, needs, err := resolveOrderEndpoint(req.Type)
	if err != nil {
		return entity.Order{}, fmt.Errorf("[adapter][exchange][bishino][CreateOrder] Error: %w", err)
	}

	params := url.Values{}
	params.Set("pair", market.ID)
	params.Set("qty", formatFloat(req.Amount))
	params.Set("side", strings.ToUpper(string(req.Side)))
	if req.Test {
		params.Set("is_test", "true")
	}

	if needs.price {
		if req.Price == nil {
			return entity.Order{}, fmt.Errorf("[adapter][exchange][bishino][CreateOrder] Error: %w",
				newError(KindInvalidOrder, "a price is required for a %s order", req.Type))
		}
		params.Set("price", formatFloat(*req.Price))
	}
	if needs.trigger {
		if req.TriggerPrice == nil {
			return entity.Order{}, fmt.Errorf("[adapter][exchange][bishino][CreateOrder] Error: %w",
				newError(KindInvalidOrder, "a trigger_price is required for a %s order", req.Type))
		}
		params.Set("trigger_price", formatFloat(*req.TriggerPrice))
	}
	if needs.icebergs {
		if req.Icebergs == nil {
			return entity.Order{}, fmt.Errorf("[adapter][exchange][bishino][CreateOrder] Error: %w",
				newError(KindInvalidOrder, "an icebergs quantity is required for a %s order", req.Type))
		}
		params.Set("icebergs", formatFloat(*req.Icebergs))
	}

	raw, err := signedPost[entity.RawOrder](ctx, b, endpoint, params)
	if err != nil {
		return entity.Order{}, fmt.Errorf("[adapter][exchange][bishino][CreateOrder] Error: %w", err)
	}

	return parseOrder(raw), nil
}

func (b *bishino) CancelOrder(ctx context.Context, id string) (entity.Order, error) {
	if err := b.ensureMarkets(ctx); err != nil {
		return entity.Order{}, err
	}

	params := url.Values{}
	params.Set("id", id)

	raw, err := signedPost[entity.RawOrder](ctx, b, "auth/cancel", params)
	if err != nil {
		return entity.Order{}, fmt.Errorf("[adapter][exchange][bishino][CancelOrder] Error: %w", err)
	}

	return parseOrder(raw), nil
}

// Withdraw requests an on-chain withdrawal and returns the venue's
// transaction record id.
func (b *bishino) Withdraw(ctx context.Context, asset string, amount float64, address string) (string, error) {
	if address == "" {
		return "", fmt.Errorf("[adapter][exchange][bishino][Withdraw] Error: %w",
			newError(KindExchangeError, "a destination address is required"))
	}
	if err := b.ensureMarkets(ctx); err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("asset", asset)
	params.Set("address", address)
	params.Set("qty", formatFloat(amount))

	raw, err := signedPost[entity.RawWithdrawal](ctx, b, "auth/withdraw", params)
	if err != nil {
		return "", fmt.Errorf("[adapter][exchange][bishino][Withdraw] Error: %w", err)
	}

	return raw.ID, nil
}
