package lob

import (
	"github.com/shopspring/decimal"
)

// Instrument describes the pricing grid of one tradable symbol. Feeds quote
// decimal prices and sizes; the book works in integer ticks and lots.
// Instrument converts between the two, rejecting values that do not sit on
// the grid.
type Instrument struct {
	Symbol   string          `json:"symbol"`
	TickSize decimal.Decimal `json:"tick_size"`
	LotSize  decimal.Decimal `json:"lot_size"`
}

// NewInstrument validates the symbol and grid steps. Both steps must be
// strictly positive.
func NewInstrument(symbol string, tickSize, lotSize decimal.Decimal) (Instrument, error) {
	if symbol == "" || !tickSize.IsPositive() || !lotSize.IsPositive() {
		return Instrument{}, ErrInvalidInstrument
	}
	return Instrument{Symbol: symbol, TickSize: tickSize, LotSize: lotSize}, nil
}

// PriceTicks converts a decimal price to tick units. The price must be
// positive and an exact multiple of TickSize.
func (ins Instrument) PriceTicks(price decimal.Decimal) (Price, error) {
	if !price.IsPositive() {
		return 0, ErrInvalidPrice
	}
	ticks, rem := price.QuoRem(ins.TickSize, 0)
	if !rem.IsZero() {
		return 0, ErrInvalidPrice
	}
	return Price(ticks.IntPart()), nil
}

// QuantityLots converts a decimal size to lot units. The size must be
// non-negative (zero keeps its remove meaning) and an exact multiple of
// LotSize.
func (ins Instrument) QuantityLots(qty decimal.Decimal) (Quantity, error) {
	if qty.IsNegative() {
		return 0, ErrInvalidQuantity
	}
	lots, rem := qty.QuoRem(ins.LotSize, 0)
	if !rem.IsZero() {
		return 0, ErrInvalidQuantity
	}
	return Quantity(lots.IntPart()), nil
}

// PriceOf converts tick units back to a decimal price.
func (ins Instrument) PriceOf(ticks Price) decimal.Decimal {
	return decimal.NewFromInt(int64(ticks)).Mul(ins.TickSize)
}

// QuantityOf converts lot units back to a decimal size.
func (ins Instrument) QuantityOf(lots Quantity) decimal.Decimal {
	return decimal.NewFromInt(int64(lots)).Mul(ins.LotSize)
}

// ParseUpdate converts a decimal-priced update into book tick units.
func (ins Instrument) ParseUpdate(side Side, price, qty decimal.Decimal) (Update, error) {
	ticks, err := ins.PriceTicks(price)
	if err != nil {
		return Update{}, err
	}
	lots, err := ins.QuantityLots(qty)
	if err != nil {
		return Update{}, err
	}
	return Update{Side: side, Price: ticks, Quantity: lots}, nil
}
