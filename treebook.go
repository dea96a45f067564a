package lob

import (
	"github.com/igrmk/treemap/v2"
)

// TreeBook is an ordered-map implementation of the same book operations as
// OrderBook, designed for downstream services that favor simplicity over
// update latency and for differential tests against the slab book.
//
// Levels live in red-black trees keyed by price, so inserts and removals
// are O(log n) without shifting, while best-level reads walk the tree
// instead of hitting a cache. TreeBook has no capacity limit.
type TreeBook struct {
	bids     *treemap.TreeMap[Price, Quantity]
	asks     *treemap.TreeMap[Price, Quantity]
	bidTotal Quantity
	askTotal Quantity
	opts     Options
}

// NewTreeBook creates an empty TreeBook with default options.
func NewTreeBook() *TreeBook {
	return NewTreeBookWithOptions(Options{})
}

// NewTreeBookWithOptions creates an empty TreeBook. Only the NegativeQty
// policy applies; the tree sides are unbounded so OnFull never triggers.
func NewTreeBookWithOptions(opts Options) *TreeBook {
	return &TreeBook{
		bids: treemap.NewWithKeyCompare[Price, Quantity](func(a, b Price) bool {
			return a > b
		}),
		asks: treemap.NewWithKeyCompare[Price, Quantity](func(a, b Price) bool {
			return a < b
		}),
		opts: opts,
	}
}

func (tb *TreeBook) sideOf(side Side) (*treemap.TreeMap[Price, Quantity], *Quantity) {
	switch side {
	case Bid:
		return tb.bids, &tb.bidTotal
	case Ask:
		return tb.asks, &tb.askTotal
	}
	return nil, nil
}

// ApplyUpdate applies one price-level change with OrderBook semantics:
// positive quantity upserts, zero removes, absent removal is a no-op.
func (tb *TreeBook) ApplyUpdate(side Side, price Price, qty Quantity) error {
	tree, total := tb.sideOf(side)
	if tree == nil {
		return ErrInvalidSide
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	if qty < 0 {
		if tb.opts.NegativeQty != TreatAsRemove {
			return ErrInvalidQuantity
		}
		qty = 0
	}

	prev, ok := tree.Get(price)
	if qty == 0 {
		if ok {
			tree.Del(price)
			*total -= prev
		}
		return nil
	}
	if ok {
		*total += qty - prev
	} else {
		*total += qty
	}
	tree.Set(price, qty)
	return nil
}

// Apply applies a single Update value. See ApplyUpdate.
func (tb *TreeBook) Apply(u Update) error {
	return tb.ApplyUpdate(u.Side, u.Price, u.Quantity)
}

// Remove deletes the price level on the given side regardless of quantity.
func (tb *TreeBook) Remove(side Side, price Price) error {
	tree, total := tb.sideOf(side)
	if tree == nil {
		return ErrInvalidSide
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	if prev, ok := tree.Get(price); ok {
		tree.Del(price)
		*total -= prev
	}
	return nil
}

// BestBid returns the highest-price bid level, or false on an empty side.
func (tb *TreeBook) BestBid() (PriceLevel, bool) {
	return treeFront(tb.bids)
}

// BestAsk returns the lowest-price ask level, or false on an empty side.
func (tb *TreeBook) BestAsk() (PriceLevel, bool) {
	return treeFront(tb.asks)
}

func treeFront(tree *treemap.TreeMap[Price, Quantity]) (PriceLevel, bool) {
	it := tree.Iterator()
	if !it.Valid() {
		return PriceLevel{}, false
	}
	return PriceLevel{Price: it.Key(), Quantity: it.Value()}, true
}

// Spread returns best ask price minus best bid price.
func (tb *TreeBook) Spread() (Price, bool) {
	ask, okAsk := tb.BestAsk()
	if !okAsk {
		return 0, false
	}
	bid, okBid := tb.BestBid()
	if !okBid {
		return 0, false
	}
	return ask.Price - bid.Price, true
}

// TotalQuantity returns the maintained sum of level quantities on the side.
func (tb *TreeBook) TotalQuantity(side Side) Quantity {
	_, total := tb.sideOf(side)
	if total == nil {
		return 0
	}
	return *total
}

// QuantityAt returns the aggregated quantity at a specific price level.
func (tb *TreeBook) QuantityAt(side Side, price Price) (Quantity, bool) {
	tree, _ := tb.sideOf(side)
	if tree == nil {
		return 0, false
	}
	return tree.Get(price)
}

// TopLevels returns up to n levels of the side, best first.
func (tb *TreeBook) TopLevels(side Side, n int) []PriceLevel {
	tree, _ := tb.sideOf(side)
	if tree == nil || n <= 0 {
		return nil
	}
	if n > tree.Len() {
		n = tree.Len()
	}
	out := make([]PriceLevel, 0, n)
	for it := tree.Iterator(); it.Valid() && len(out) < n; it.Next() {
		out = append(out, PriceLevel{Price: it.Key(), Quantity: it.Value()})
	}
	return out
}

// Len returns the number of price levels stored on the side.
func (tb *TreeBook) Len(side Side) int {
	tree, _ := tb.sideOf(side)
	if tree == nil {
		return 0
	}
	return tree.Len()
}

// Reset empties both sides.
func (tb *TreeBook) Reset() {
	tb.bids.Clear()
	tb.asks.Clear()
	tb.bidTotal = 0
	tb.askTotal = 0
}
