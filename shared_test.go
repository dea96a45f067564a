package lob

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedBook_BasicOperations(t *testing.T) {
	book := NewSharedBook()

	require.NoError(t, book.ApplyUpdate(Bid, 100, 10))
	require.NoError(t, book.ApplyUpdate(Ask, 105, 5))

	best, ok := book.BestBid()
	assert.True(t, ok)
	assert.Equal(t, PriceLevel{Price: 100, Quantity: 10}, best)

	spread, ok := book.Spread()
	assert.True(t, ok)
	assert.Equal(t, Price(5), spread)

	assert.Equal(t, Quantity(10), book.TotalQuantity(Bid))
	assert.Equal(t, 1, book.Len(Ask))
	assert.Equal(t, DefaultCapacity, book.Capacity())

	qty, ok := book.QuantityAt(Ask, 105)
	assert.True(t, ok)
	assert.Equal(t, Quantity(5), qty)

	book.Reset()
	assert.Equal(t, 0, book.Len(Bid))
}

func TestSharedBook_ApplyBatch(t *testing.T) {
	book := NewSharedBook()

	err := book.ApplyBatch([]Update{
		{Side: Bid, Price: 100, Quantity: 1},
		{Side: Bid, Price: 99, Quantity: 2},
		{Side: Ask, Price: 101, Quantity: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, book.Len(Bid))
	assert.Equal(t, 1, book.Len(Ask))

	// The batch stops at the first bad update; prior ones stay applied.
	err = book.ApplyBatch([]Update{
		{Side: Bid, Price: 98, Quantity: 4},
		{Side: Bid, Price: -1, Quantity: 5},
		{Side: Bid, Price: 97, Quantity: 6},
	})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, ok := book.QuantityAt(Bid, 98)
	assert.True(t, ok)
	_, ok = book.QuantityAt(Bid, 97)
	assert.False(t, ok)
}

func TestSharedBook_SnapshotRestore(t *testing.T) {
	book := NewSharedBook()
	require.NoError(t, book.ApplyUpdate(Bid, 50, 5))

	snap := book.Snapshot()

	other := NewSharedBook()
	require.NoError(t, other.Restore(snap))
	best, ok := other.BestBid()
	assert.True(t, ok)
	assert.Equal(t, Price(50), best.Price)

	second, ok := book.SecondBestBid()
	assert.False(t, ok)
	assert.Equal(t, PriceLevel{}, second)
}

// TestSharedBook_ConcurrentReaders drives one writer against many readers.
// Every reader validates a Snapshot, which is taken under the read lock and
// therefore must always satisfy the book invariants. Run with -race.
func TestSharedBook_ConcurrentReaders(t *testing.T) {
	book := NewSharedBookWithOptions(Options{Capacity: 256})

	const (
		writerOps = 20000
		readers   = 4
	)

	var wg sync.WaitGroup
	done := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(done)
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < writerOps; i++ {
			side := Bid
			if rng.Intn(2) == 1 {
				side = Ask
			}
			price := Price(rng.Intn(256) + 1)
			var qty Quantity
			if rng.Intn(4) > 0 {
				qty = Quantity(rng.Intn(100) + 1)
			}
			assert.NoError(t, book.ApplyUpdate(side, price, qty))
		}
	}()

	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}

				snap := book.Snapshot()
				assert.NoError(t, validateSide(snap.Bids, true, snap.TotalBidQty))
				assert.NoError(t, validateSide(snap.Asks, false, snap.TotalAskQty))

				// Single reads stay individually coherent.
				if best, ok := book.BestBid(); ok {
					assert.Greater(t, best.Quantity, Quantity(0))
				}
				book.Spread()
				book.TopLevels(Ask, 5)
			}
		}()
	}

	wg.Wait()
}
