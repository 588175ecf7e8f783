package exchange

import (
	"github.com/shopspring/decimal"

	"github.com/Kergu123/ccxt/entity"
)

// roundToPrecision rounds half-up to the instrument's declared
// precision, which is either a decimal-place count or a tick size.
func roundToPrecision(v, precision float64) float64 {
	d := decimal.NewFromFloat(v)
	switch {
	case precision >= 1:
		v, _ = d.Round(int32(precision)).Float64()
	case precision > 0:
		tick := decimal.NewFromFloat(precision)
		v, _ = d.Div(tick).Round(0).Mul(tick).Float64()
	default:
		v, _ = d.Round(0).Float64()
	}
	return v
}

// CalculateFee prices a hypothetical trade at the market's maker or
// taker rate. Sells are charged in quote currency at price precision,
// buys in base currency at amount precision. Requires a loaded catalog.
func (b *bishino) CalculateFee(symbol string, side entity.OrderSide, amount, price float64, role string) (entity.Fee, error) {
	market, err := b.market(symbol)
	if err != nil {
		return entity.Fee{}, err
	}

	rate := market.Taker
	if role == "maker" {
		rate = market.Maker
	}

	cost := amount * rate
	currency := market.Quote
	precision := market.Precision.Price
	if side == entity.SideSell {
		cost *= price
	} else {
		currency = market.Base
		precision = market.Precision.Amount
	}

	return entity.Fee{
		Role:     role,
		Rate:     rate,
		Currency: currency,
		Cost:     roundToPrecision(cost, precision),
	}, nil
}
