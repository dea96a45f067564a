package lob

import (
	"github.com/huandu/skiplist"
)

// skipSide holds one book side in a skip list keyed by price, with a map
// from price to skip-list element for O(1) point lookups.
type skipSide struct {
	levels    *skiplist.SkipList
	priceList map[Price]*skiplist.Element
	total     Quantity
}

// newBidSkipSide creates the bid side of a SkipBook.
// Levels are sorted by price in descending order (highest price first).
func newBidSkipSide() *skipSide {
	return &skipSide{
		levels: skiplist.New(skiplist.GreaterThanFunc(func(lhs, rhs any) int {
			p1, _ := lhs.(Price)
			p2, _ := rhs.(Price)

			if p1 < p2 {
				return 1
			} else if p1 > p2 {
				return -1
			}

			return 0
		})),
		priceList: make(map[Price]*skiplist.Element),
	}
}

// newAskSkipSide creates the ask side of a SkipBook.
// Levels are sorted by price in ascending order (lowest price first).
func newAskSkipSide() *skipSide {
	return &skipSide{
		levels: skiplist.New(skiplist.GreaterThanFunc(func(lhs, rhs any) int {
			p1, _ := lhs.(Price)
			p2, _ := rhs.(Price)

			if p1 > p2 {
				return 1
			} else if p1 < p2 {
				return -1
			}

			return 0
		})),
		priceList: make(map[Price]*skiplist.Element),
	}
}

func (s *skipSide) apply(price Price, qty Quantity) {
	el, ok := s.priceList[price]
	if qty == 0 {
		if ok {
			lvl, _ := el.Value.(PriceLevel)
			s.levels.RemoveElement(el)
			delete(s.priceList, price)
			s.total -= lvl.Quantity
		}
		return
	}
	if ok {
		lvl, _ := el.Value.(PriceLevel)
		s.total += qty - lvl.Quantity
		el.Value = PriceLevel{Price: price, Quantity: qty}
		return
	}
	el = s.levels.Set(price, PriceLevel{Price: price, Quantity: qty})
	s.priceList[price] = el
	s.total += qty
}

func (s *skipSide) front() (PriceLevel, bool) {
	el := s.levels.Front()
	if el == nil {
		return PriceLevel{}, false
	}
	lvl, _ := el.Value.(PriceLevel)
	return lvl, true
}

// SkipBook is a skip-list implementation of the same book operations as
// OrderBook. Inserts, removals and overwrites are all O(log n) expected
// with no slot shifting, which makes it the baseline to beat for update
// throughput on deep books. Sides are unbounded.
type SkipBook struct {
	bids *skipSide
	asks *skipSide
	opts Options
}

// NewSkipBook creates an empty SkipBook with default options.
func NewSkipBook() *SkipBook {
	return NewSkipBookWithOptions(Options{})
}

// NewSkipBookWithOptions creates an empty SkipBook. Only the NegativeQty
// policy applies; the sides are unbounded so OnFull never triggers.
func NewSkipBookWithOptions(opts Options) *SkipBook {
	return &SkipBook{
		bids: newBidSkipSide(),
		asks: newAskSkipSide(),
		opts: opts,
	}
}

func (sb *SkipBook) sideOf(side Side) *skipSide {
	switch side {
	case Bid:
		return sb.bids
	case Ask:
		return sb.asks
	}
	return nil
}

// ApplyUpdate applies one price-level change with OrderBook semantics:
// positive quantity upserts, zero removes, absent removal is a no-op.
func (sb *SkipBook) ApplyUpdate(side Side, price Price, qty Quantity) error {
	s := sb.sideOf(side)
	if s == nil {
		return ErrInvalidSide
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	if qty < 0 {
		if sb.opts.NegativeQty != TreatAsRemove {
			return ErrInvalidQuantity
		}
		qty = 0
	}
	s.apply(price, qty)
	return nil
}

// Apply applies a single Update value. See ApplyUpdate.
func (sb *SkipBook) Apply(u Update) error {
	return sb.ApplyUpdate(u.Side, u.Price, u.Quantity)
}

// Remove deletes the price level on the given side regardless of quantity.
func (sb *SkipBook) Remove(side Side, price Price) error {
	s := sb.sideOf(side)
	if s == nil {
		return ErrInvalidSide
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	s.apply(price, 0)
	return nil
}

// BestBid returns the highest-price bid level, or false on an empty side.
func (sb *SkipBook) BestBid() (PriceLevel, bool) {
	return sb.bids.front()
}

// BestAsk returns the lowest-price ask level, or false on an empty side.
func (sb *SkipBook) BestAsk() (PriceLevel, bool) {
	return sb.asks.front()
}

// Spread returns best ask price minus best bid price.
func (sb *SkipBook) Spread() (Price, bool) {
	ask, okAsk := sb.BestAsk()
	if !okAsk {
		return 0, false
	}
	bid, okBid := sb.BestBid()
	if !okBid {
		return 0, false
	}
	return ask.Price - bid.Price, true
}

// TotalQuantity returns the maintained sum of level quantities on the side.
func (sb *SkipBook) TotalQuantity(side Side) Quantity {
	s := sb.sideOf(side)
	if s == nil {
		return 0
	}
	return s.total
}

// QuantityAt returns the aggregated quantity at a specific price level.
func (sb *SkipBook) QuantityAt(side Side, price Price) (Quantity, bool) {
	s := sb.sideOf(side)
	if s == nil {
		return 0, false
	}
	el, ok := s.priceList[price]
	if !ok {
		return 0, false
	}
	lvl, _ := el.Value.(PriceLevel)
	return lvl.Quantity, true
}

// TopLevels returns up to n levels of the side, best first.
func (sb *SkipBook) TopLevels(side Side, n int) []PriceLevel {
	s := sb.sideOf(side)
	if s == nil || n <= 0 {
		return nil
	}
	if n > s.levels.Len() {
		n = s.levels.Len()
	}
	out := make([]PriceLevel, 0, n)
	for el := s.levels.Front(); el != nil && len(out) < n; el = el.Next() {
		lvl, _ := el.Value.(PriceLevel)
		out = append(out, lvl)
	}
	return out
}

// Len returns the number of price levels stored on the side.
func (sb *SkipBook) Len(side Side) int {
	s := sb.sideOf(side)
	if s == nil {
		return 0
	}
	return s.levels.Len()
}

// Reset empties both sides.
func (sb *SkipBook) Reset() {
	sb.bids = newBidSkipSide()
	sb.asks = newAskSkipSide()
}
