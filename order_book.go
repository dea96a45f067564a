package lob

// OrderBook maintains a correct, queryable snapshot of aggregated
// price-level quantities for one instrument under a stream of updates.
//
// The book favors read-heavy quote consumers: best bid/ask, spread and the
// side totals are O(1) cache reads, point lookups are O(log n) binary
// searches, and the price for that is an O(n) slot shift on inserts and
// removals inside the fixed-capacity per-side buffers.
//
// All methods are plain synchronous calls with no internal goroutines or
// I/O. The book assumes one logical writer; wrap it in a SharedBook when
// concurrent readers must observe updates atomically.
type OrderBook struct {
	bids ladder
	asks ladder
	opts Options
}

// NewOrderBook creates an empty book with default options.
func NewOrderBook() *OrderBook {
	return NewOrderBookWithOptions(Options{})
}

// NewOrderBookWithOptions creates an empty book with custom capacity and
// full-side / negative-quantity policies.
func NewOrderBookWithOptions(opts Options) *OrderBook {
	capacity := opts.capacity()
	return &OrderBook{
		bids: newBidLadder(capacity),
		asks: newAskLadder(capacity),
		opts: opts,
	}
}

// ladderOf maps a side to its storage. Returns nil for an invalid side.
func (book *OrderBook) ladderOf(side Side) *ladder {
	switch side {
	case Bid:
		return &book.bids
	case Ask:
		return &book.asks
	}
	return nil
}

// ApplyUpdate applies one price-level change.
//
// A positive quantity inserts the level or overwrites the stored quantity
// at that price. A zero quantity removes the level; removing an absent
// level is a no-op. Inputs are validated before any mutation, and a failed
// update leaves the book exactly as it was.
func (book *OrderBook) ApplyUpdate(side Side, price Price, qty Quantity) error {
	lad := book.ladderOf(side)
	if lad == nil {
		return ErrInvalidSide
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	if qty < 0 {
		if book.opts.NegativeQty != TreatAsRemove {
			return ErrInvalidQuantity
		}
		qty = 0
	}
	return lad.apply(price, qty, book.opts.OnFull)
}

// Apply applies a single Update value. See ApplyUpdate.
func (book *OrderBook) Apply(u Update) error {
	return book.ApplyUpdate(u.Side, u.Price, u.Quantity)
}

// Remove deletes the price level on the given side regardless of its
// quantity. Removing an absent level is a no-op, not an error.
func (book *OrderBook) Remove(side Side, price Price) error {
	lad := book.ladderOf(side)
	if lad == nil {
		return ErrInvalidSide
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	lad.remove(price)
	return nil
}

// BestBid returns the highest-price bid level, or false on an empty side.
func (book *OrderBook) BestBid() (PriceLevel, bool) {
	return book.bids.best()
}

// BestAsk returns the lowest-price ask level, or false on an empty side.
func (book *OrderBook) BestAsk() (PriceLevel, bool) {
	return book.asks.best()
}

// SecondBestBid returns the bid level ranked just behind the best, or
// false when the side holds fewer than two levels. O(1) cache read.
func (book *OrderBook) SecondBestBid() (PriceLevel, bool) {
	return book.bids.second()
}

// SecondBestAsk returns the ask level ranked just behind the best, or
// false when the side holds fewer than two levels. O(1) cache read.
func (book *OrderBook) SecondBestAsk() (PriceLevel, bool) {
	return book.asks.second()
}

// Spread returns best ask price minus best bid price. No spread is defined
// while either side is empty.
func (book *OrderBook) Spread() (Price, bool) {
	ask, okAsk := book.asks.best()
	if !okAsk {
		return 0, false
	}
	bid, okBid := book.bids.best()
	if !okBid {
		return 0, false
	}
	return ask.Price - bid.Price, true
}

// TotalQuantity returns the maintained sum of all level quantities on the
// side. An invalid side reports zero.
func (book *OrderBook) TotalQuantity(side Side) Quantity {
	lad := book.ladderOf(side)
	if lad == nil {
		return 0
	}
	return lad.total
}

// QuantityAt returns the quantity stored at the exact price on the side,
// or false when no such level exists.
func (book *OrderBook) QuantityAt(side Side, price Price) (Quantity, bool) {
	lad := book.ladderOf(side)
	if lad == nil {
		return 0, false
	}
	return lad.quantityAt(price)
}

// TopLevels returns up to n levels of the side, best first. The result is
// a copy; mutating it does not touch the book.
func (book *OrderBook) TopLevels(side Side, n int) []PriceLevel {
	lad := book.ladderOf(side)
	if lad == nil {
		return nil
	}
	return lad.topLevels(n)
}

// Len returns the number of price levels stored on the side.
func (book *OrderBook) Len(side Side) int {
	lad := book.ladderOf(side)
	if lad == nil {
		return 0
	}
	return lad.len()
}

// Capacity returns the per-side level capacity the book was built with.
func (book *OrderBook) Capacity() int {
	return cap(book.bids.levels)
}

// Reset empties both sides in place, e.g. at reconnect or instrument
// switch, keeping the pre-allocated buffers.
func (book *OrderBook) Reset() {
	book.bids.reset()
	book.asks.reset()
}

// Snapshot copies the full book state: both sides best-first plus the side
// totals. The copy shares nothing with book storage.
func (book *OrderBook) Snapshot() *BookSnapshot {
	return &BookSnapshot{
		SchemaVersion: SnapshotSchemaVersion,
		Bids:          book.bids.snapshotLevels(),
		Asks:          book.asks.snapshotLevels(),
		TotalBidQty:   book.bids.total,
		TotalAskQty:   book.asks.total,
	}
}

// Restore replaces the book state with the snapshot contents, e.g. when
// seeding from an exchange snapshot before replaying incremental updates.
// The snapshot is validated first; on any error the book is left unchanged.
func (book *OrderBook) Restore(snap *BookSnapshot) error {
	if snap == nil || snap.SchemaVersion != SnapshotSchemaVersion {
		return ErrCorruptSnapshot
	}
	if len(snap.Bids) > book.Capacity() || len(snap.Asks) > book.Capacity() {
		return ErrCapacityExceeded
	}
	if err := validateSide(snap.Bids, true, snap.TotalBidQty); err != nil {
		return err
	}
	if err := validateSide(snap.Asks, false, snap.TotalAskQty); err != nil {
		return err
	}

	book.bids.reset()
	book.bids.levels = append(book.bids.levels, snap.Bids...)
	book.bids.total = snap.TotalBidQty
	book.bids.refreshTop()

	book.asks.reset()
	book.asks.levels = append(book.asks.levels, snap.Asks...)
	book.asks.total = snap.TotalAskQty
	book.asks.refreshTop()

	logger.Debug("order book restored",
		"bid_levels", book.bids.len(), "ask_levels", book.asks.len())

	return nil
}
