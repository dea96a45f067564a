package bench

import (
	"math/rand"

	lob "github.com/tickerlab/lob-engine"
)

// Generator produces a deterministic update stream shaped like a real feed:
// 80% of updates land within HotTicks of the mid price, the rest spread
// across the remaining SpanTicks, and DeletePct percent of updates carry a
// zero quantity. Bids stay below the mid and asks above it, so the stream
// never crosses the book.
type Generator struct {
	Mid       lob.Price
	HotTicks  int
	SpanTicks int
	DeletePct int
	MaxQty    int64

	rng *rand.Rand
}

// NewGenerator creates a Generator with the stock shape: mid 100000, 10 hot
// ticks, 500 ticks per side, 10% deletes, quantities up to 1000. The same
// seed always yields the same stream.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		Mid:       100_000,
		HotTicks:  10,
		SpanTicks: 500,
		DeletePct: 10,
		MaxQty:    1_000,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Next returns the next update in the stream.
func (g *Generator) Next() lob.Update {
	var offset int
	if g.rng.Intn(100) < 80 {
		offset = g.rng.Intn(g.HotTicks) + 1
	} else {
		offset = g.rng.Intn(g.SpanTicks-g.HotTicks) + g.HotTicks + 1
	}

	side := lob.Bid
	price := g.Mid - lob.Price(offset)
	if g.rng.Intn(2) == 1 {
		side = lob.Ask
		price = g.Mid + lob.Price(offset)
	}

	var qty lob.Quantity
	if g.rng.Intn(100) >= g.DeletePct {
		qty = lob.Quantity(g.rng.Int63n(g.MaxQty) + 1)
	}

	return lob.Update{Side: side, Price: price, Quantity: qty}
}

// Updates returns the next n updates in the stream.
func (g *Generator) Updates(n int) []lob.Update {
	out := make([]lob.Update, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}
