package lob

// ladder is one side of the book: a flat, pre-allocated slice of price
// levels kept sorted best-first (descending prices for bids, ascending for
// asks), plus the incrementally maintained read caches.
//
// Design:
// - Contiguous storage, no per-level allocation: insert and remove shift
//   the trailing levels by one slot inside the pre-allocated buffer.
// - Binary search locates any price in O(log n); best/second-best and the
//   side total are cached so the hot queries never touch the slice.
// - The top cache is refreshed only by mutations that can invalidate it,
//   i.e. mutations at rank 0 or 1; refreshing reads just the slice head.
type ladder struct {
	levels []PriceLevel // len = live levels, cap = fixed side capacity
	desc   bool         // bids rank high-to-low, asks low-to-high
	total  Quantity     // running sum of every stored quantity

	top    [2]PriceLevel // cached rank-0 and rank-1 levels
	topLen int           // number of valid cache entries, 0..2
}

func newBidLadder(capacity int) ladder {
	return ladder{levels: make([]PriceLevel, 0, capacity), desc: true}
}

func newAskLadder(capacity int) ladder {
	return ladder{levels: make([]PriceLevel, 0, capacity), desc: false}
}

// ranksAhead reports whether price a is more competitive than b on this side.
func (l *ladder) ranksAhead(a, b Price) bool {
	if l.desc {
		return a > b
	}
	return a < b
}

// locate binary-searches the side for price. It returns the index of the
// level when found, or the insertion index that keeps the side sorted.
func (l *ladder) locate(price Price) (int, bool) {
	lo, hi := 0, len(l.levels)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		cur := l.levels[mid].Price
		if cur == price {
			return mid, true
		}
		if l.ranksAhead(price, cur) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo, false
}

// refreshTop re-reads the cached rank-0/rank-1 levels from the slice head.
func (l *ladder) refreshTop() {
	l.topLen = len(l.levels)
	if l.topLen > 2 {
		l.topLen = 2
	}
	if l.topLen > 0 {
		l.top[0] = l.levels[0]
	}
	if l.topLen > 1 {
		l.top[1] = l.levels[1]
	}
}

// insertAt shifts levels[idx:] one slot toward the tail and writes lvl at
// idx. The caller guarantees free capacity.
func (l *ladder) insertAt(idx int, lvl PriceLevel) {
	l.levels = append(l.levels, PriceLevel{})
	copy(l.levels[idx+1:], l.levels[idx:])
	l.levels[idx] = lvl
	l.total += lvl.Quantity
	if idx <= 1 {
		l.refreshTop()
	}
}

// removeAt closes the gap at idx by shifting the trailing levels forward.
func (l *ladder) removeAt(idx int) PriceLevel {
	removed := l.levels[idx]
	copy(l.levels[idx:], l.levels[idx+1:])
	l.levels = l.levels[:len(l.levels)-1]
	l.total -= removed.Quantity
	if idx <= 1 {
		l.refreshTop()
	}
	return removed
}

// setQuantity overwrites the quantity at idx in place. No shift happens and
// the top cache is touched only when idx is rank 0 or 1.
func (l *ladder) setQuantity(idx int, qty Quantity) {
	l.total += qty - l.levels[idx].Quantity
	l.levels[idx].Quantity = qty
	if idx <= 1 {
		l.refreshTop()
	}
}

// apply is the upsert-or-delete core of ApplyUpdate for one side. It either
// completes fully or, on a rejected insert, leaves the ladder untouched.
func (l *ladder) apply(price Price, qty Quantity, onFull CapacityPolicy) error {
	idx, found := l.locate(price)
	if found {
		if qty == 0 {
			l.removeAt(idx)
			return nil
		}
		l.setQuantity(idx, qty)
		return nil
	}

	// Removing a level that is not stored is a no-op, not an error.
	if qty == 0 {
		return nil
	}

	if len(l.levels) == cap(l.levels) {
		if onFull != EvictWorst {
			return ErrCapacityExceeded
		}
		if idx == len(l.levels) {
			// The incoming price ranks behind every stored level
			// and is discarded.
			return nil
		}
		l.removeAt(len(l.levels) - 1)
	}

	l.insertAt(idx, PriceLevel{Price: price, Quantity: qty})
	return nil
}

// remove deletes the level at price if present. Absence is a no-op.
func (l *ladder) remove(price Price) {
	if idx, found := l.locate(price); found {
		l.removeAt(idx)
	}
}

// best returns the cached most competitive level.
func (l *ladder) best() (PriceLevel, bool) {
	if l.topLen == 0 {
		return PriceLevel{}, false
	}
	return l.top[0], true
}

// second returns the cached level ranked directly behind best.
func (l *ladder) second() (PriceLevel, bool) {
	if l.topLen < 2 {
		return PriceLevel{}, false
	}
	return l.top[1], true
}

// quantityAt returns the stored quantity at the exact price.
func (l *ladder) quantityAt(price Price) (Quantity, bool) {
	idx, found := l.locate(price)
	if !found {
		return 0, false
	}
	return l.levels[idx].Quantity, true
}

// topLevels copies up to n levels, best first.
func (l *ladder) topLevels(n int) []PriceLevel {
	if n > len(l.levels) {
		n = len(l.levels)
	}
	if n <= 0 {
		return nil
	}
	out := make([]PriceLevel, n)
	copy(out, l.levels[:n])
	return out
}

// snapshotLevels copies the full side, best first.
func (l *ladder) snapshotLevels() []PriceLevel {
	out := make([]PriceLevel, len(l.levels))
	copy(out, l.levels)
	return out
}

// reset empties the side while keeping the pre-allocated buffer.
func (l *ladder) reset() {
	l.levels = l.levels[:0]
	l.total = 0
	l.topLen = 0
}

func (l *ladder) len() int {
	return len(l.levels)
}
