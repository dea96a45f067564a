package lob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBook_SnapshotRoundTrip(t *testing.T) {
	book := NewOrderBook()
	require.NoError(t, book.ApplyUpdate(Bid, 10000, 100))
	require.NoError(t, book.ApplyUpdate(Bid, 9950, 150))
	require.NoError(t, book.ApplyUpdate(Ask, 10050, 80))
	require.NoError(t, book.ApplyUpdate(Ask, 10100, 120))
	require.NoError(t, book.ApplyUpdate(Ask, 10150, 40))

	snap := book.Snapshot()
	assert.Equal(t, SnapshotSchemaVersion, snap.SchemaVersion)
	assert.Equal(t, []PriceLevel{
		{Price: 10000, Quantity: 100},
		{Price: 9950, Quantity: 150},
	}, snap.Bids)
	assert.Equal(t, Quantity(250), snap.TotalBidQty)
	assert.Equal(t, Quantity(240), snap.TotalAskQty)

	// The snapshot is detached from book storage.
	require.NoError(t, book.ApplyUpdate(Bid, 10000, 1))
	assert.Equal(t, Quantity(100), snap.Bids[0].Quantity)

	restored := NewOrderBook()
	require.NoError(t, restored.Restore(snap))

	assert.Equal(t, snap.Bids, restored.TopLevels(Bid, restored.Len(Bid)))
	assert.Equal(t, snap.Asks, restored.TopLevels(Ask, restored.Len(Ask)))
	assert.Equal(t, snap.TotalBidQty, restored.TotalQuantity(Bid))
	assert.Equal(t, snap.TotalAskQty, restored.TotalQuantity(Ask))

	best, ok := restored.BestBid()
	assert.True(t, ok)
	assert.Equal(t, PriceLevel{Price: 10000, Quantity: 100}, best)
	second, ok := restored.SecondBestAsk()
	assert.True(t, ok)
	assert.Equal(t, Price(10100), second.Price)

	checkBook(t, restored)
}

func TestOrderBook_RestoreReplacesState(t *testing.T) {
	book := NewOrderBook()
	require.NoError(t, book.ApplyUpdate(Bid, 777, 7))

	err := book.Restore(&BookSnapshot{
		SchemaVersion: SnapshotSchemaVersion,
		Bids:          []PriceLevel{{Price: 500, Quantity: 5}},
		Asks:          []PriceLevel{{Price: 600, Quantity: 6}},
		TotalBidQty:   5,
		TotalAskQty:   6,
	})
	require.NoError(t, err)

	_, ok := book.QuantityAt(Bid, 777)
	assert.False(t, ok)
	spread, ok := book.Spread()
	assert.True(t, ok)
	assert.Equal(t, Price(100), spread)
}

func TestOrderBook_RestoreRejectsCorruptSnapshots(t *testing.T) {
	cases := []struct {
		name string
		snap *BookSnapshot
		want error
	}{
		{name: "nil snapshot", snap: nil, want: ErrCorruptSnapshot},
		{
			name: "unknown schema version",
			snap: &BookSnapshot{
				SchemaVersion: SnapshotSchemaVersion + 1,
				Bids:          []PriceLevel{{Price: 100, Quantity: 1}},
				TotalBidQty:   1,
			},
			want: ErrCorruptSnapshot,
		},
		{
			name: "bids out of order",
			snap: &BookSnapshot{
				SchemaVersion: SnapshotSchemaVersion,
				Bids:          []PriceLevel{{Price: 100, Quantity: 1}, {Price: 200, Quantity: 1}},
				TotalBidQty:   2,
			},
			want: ErrCorruptSnapshot,
		},
		{
			name: "duplicate ask price",
			snap: &BookSnapshot{
				SchemaVersion: SnapshotSchemaVersion,
				Asks:          []PriceLevel{{Price: 100, Quantity: 1}, {Price: 100, Quantity: 2}},
				TotalAskQty:   3,
			},
			want: ErrCorruptSnapshot,
		},
		{
			name: "zero quantity level",
			snap: &BookSnapshot{
				SchemaVersion: SnapshotSchemaVersion,
				Bids:          []PriceLevel{{Price: 100, Quantity: 0}},
				TotalBidQty:   0,
			},
			want: ErrCorruptSnapshot,
		},
		{
			name: "non-positive price",
			snap: &BookSnapshot{
				SchemaVersion: SnapshotSchemaVersion,
				Asks:          []PriceLevel{{Price: 0, Quantity: 5}},
				TotalAskQty:   5,
			},
			want: ErrCorruptSnapshot,
		},
		{
			name: "total mismatch",
			snap: &BookSnapshot{
				SchemaVersion: SnapshotSchemaVersion,
				Bids:          []PriceLevel{{Price: 100, Quantity: 5}},
				TotalBidQty:   7,
			},
			want: ErrCorruptSnapshot,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			book := NewOrderBook()
			require.NoError(t, book.ApplyUpdate(Bid, 42, 4))

			err := book.Restore(tc.snap)
			assert.ErrorIs(t, err, tc.want)

			// The failed restore left the prior state intact.
			qty, ok := book.QuantityAt(Bid, 42)
			assert.True(t, ok)
			assert.Equal(t, Quantity(4), qty)
			assert.Equal(t, 1, book.Len(Bid))
		})
	}
}

func TestOrderBook_RestoreRejectsOversizedSnapshot(t *testing.T) {
	book := NewOrderBookWithOptions(Options{Capacity: 2})

	snap := &BookSnapshot{
		SchemaVersion: SnapshotSchemaVersion,
		Bids: []PriceLevel{
			{Price: 300, Quantity: 1},
			{Price: 200, Quantity: 1},
			{Price: 100, Quantity: 1},
		},
		TotalBidQty: 3,
	}

	assert.ErrorIs(t, book.Restore(snap), ErrCapacityExceeded)
	assert.Equal(t, 0, book.Len(Bid))
}

func TestOrderBook_RestoreEmptySnapshot(t *testing.T) {
	book := NewOrderBook()
	require.NoError(t, book.ApplyUpdate(Ask, 10, 1))

	require.NoError(t, book.Restore(&BookSnapshot{SchemaVersion: SnapshotSchemaVersion}))

	assert.Equal(t, 0, book.Len(Bid))
	assert.Equal(t, 0, book.Len(Ask))
	_, ok := book.BestAsk()
	assert.False(t, ok)

	// The book accepts updates again after a restore.
	assert.NoError(t, book.ApplyUpdate(Ask, 11, 2))
	best, _ := book.BestAsk()
	assert.Equal(t, Price(11), best.Price)
}
