package lob

import "sync"

// SharedBook wraps an OrderBook behind a sync.RWMutex so a single feed
// goroutine can apply updates while any number of quote consumers read.
//
// Readers take the read lock, so every accessor observes a book that is
// consistent across both sides. For single-goroutine use the unwrapped
// OrderBook avoids the lock entirely.
type SharedBook struct {
	mu   sync.RWMutex
	book *OrderBook
}

// NewSharedBook creates a SharedBook with default options.
func NewSharedBook() *SharedBook {
	return &SharedBook{book: NewOrderBook()}
}

// NewSharedBookWithOptions creates a SharedBook with custom options.
func NewSharedBookWithOptions(opts Options) *SharedBook {
	return &SharedBook{book: NewOrderBookWithOptions(opts)}
}

// ApplyUpdate applies one price-level change under the write lock.
func (sb *SharedBook) ApplyUpdate(side Side, price Price, qty Quantity) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.book.ApplyUpdate(side, price, qty)
}

// Apply applies a single Update value under the write lock.
func (sb *SharedBook) Apply(u Update) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.book.Apply(u)
}

// ApplyBatch applies updates in order under one lock acquisition and stops
// at the first failed update, returning its error. Updates already applied
// stay applied.
func (sb *SharedBook) ApplyBatch(updates []Update) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	for _, u := range updates {
		if err := sb.book.Apply(u); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes the price level on the given side under the write lock.
func (sb *SharedBook) Remove(side Side, price Price) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.book.Remove(side, price)
}

// BestBid returns the highest-price bid level.
func (sb *SharedBook) BestBid() (PriceLevel, bool) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.book.BestBid()
}

// BestAsk returns the lowest-price ask level.
func (sb *SharedBook) BestAsk() (PriceLevel, bool) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.book.BestAsk()
}

// SecondBestBid returns the bid level ranked just behind the best.
func (sb *SharedBook) SecondBestBid() (PriceLevel, bool) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.book.SecondBestBid()
}

// SecondBestAsk returns the ask level ranked just behind the best.
func (sb *SharedBook) SecondBestAsk() (PriceLevel, bool) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.book.SecondBestAsk()
}

// Spread returns best ask price minus best bid price.
func (sb *SharedBook) Spread() (Price, bool) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.book.Spread()
}

// TotalQuantity returns the maintained sum of level quantities on the side.
func (sb *SharedBook) TotalQuantity(side Side) Quantity {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.book.TotalQuantity(side)
}

// QuantityAt returns the aggregated quantity at a specific price level.
func (sb *SharedBook) QuantityAt(side Side, price Price) (Quantity, bool) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.book.QuantityAt(side, price)
}

// TopLevels returns up to n levels of the side, best first.
func (sb *SharedBook) TopLevels(side Side, n int) []PriceLevel {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.book.TopLevels(side, n)
}

// Len returns the number of price levels stored on the side.
func (sb *SharedBook) Len(side Side) int {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.book.Len(side)
}

// Capacity returns the per-side level capacity.
func (sb *SharedBook) Capacity() int {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.book.Capacity()
}

// Reset empties both sides under the write lock.
func (sb *SharedBook) Reset() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.book.Reset()
}

// Snapshot copies the full book state under the read lock.
func (sb *SharedBook) Snapshot() *BookSnapshot {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.book.Snapshot()
}

// Restore replaces the book state with the snapshot contents under the
// write lock.
func (sb *SharedBook) Restore(snap *BookSnapshot) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.book.Restore(snap)
}
