// Package bench drives an identical operation mix over any book
// implementation and reports per-operation wall-clock costs. Timing is
// sampled over batches of operations so per-op figures stay well above
// clock resolution.
package bench

import (
	"sort"
	"time"

	"github.com/rs/xid"

	lob "github.com/tickerlab/lob-engine"
)

// Book is the operation surface the harness drives. OrderBook, TreeBook,
// SkipBook and SharedBook all satisfy it.
type Book interface {
	ApplyUpdate(side lob.Side, price lob.Price, qty lob.Quantity) error
	BestBid() (lob.PriceLevel, bool)
	BestAsk() (lob.PriceLevel, bool)
	Spread() (lob.Price, bool)
	QuantityAt(side lob.Side, price lob.Price) (lob.Quantity, bool)
	TotalQuantity(side lob.Side) lob.Quantity
	Len(side lob.Side) int
}

const (
	basePrice = lob.Price(100_000)
	tickStep  = lob.Price(10)
	askOffset = lob.Price(100)
	warmQty   = lob.Quantity(100)
)

// Run seeds the book with cfg.Levels levels per side, then measures the
// phases: fixed-tick updates, generator-driven churn, spread reads, best
// bid reads, best ask reads and random point reads. Each read phase runs a
// tenth of the update iterations. Run fails only if warmup cannot populate
// the book.
func Run(name string, book Book, cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()

	if err := warmup(book, cfg.Levels); err != nil {
		return nil, err
	}

	readIters := cfg.Iterations / 10
	if readIters < 1 {
		readIters = 1
	}

	updates := benchmarkUpdates(book, cfg.Iterations, cfg.UpdateBatchSize)
	churn := benchmarkChurn(book, cfg.Iterations, cfg.UpdateBatchSize, cfg.Seed)
	spread := benchmarkSpread(book, readIters, cfg.BatchSize)
	bestBid := benchmarkBestBid(book, readIters, cfg.BatchSize)
	bestAsk := benchmarkBestAsk(book, readIters, cfg.BatchSize)
	random := benchmarkRandomReads(book, readIters, cfg.BatchSize)

	sorted := append([]float64(nil), updates...)
	sort.Float64s(sorted)

	return &Result{
		RunID:           xid.New().String(),
		Name:            name,
		AvgUpdateNs:     average(updates),
		AvgChurnNs:      average(churn),
		AvgSpreadNs:     average(spread),
		AvgBestBidNs:    average(bestBid),
		AvgBestAskNs:    average(bestAsk),
		AvgRandomReadNs: average(random),
		P50UpdateNs:     sorted[len(sorted)/2],
		P95UpdateNs:     sorted[len(sorted)*95/100],
		P99UpdateNs:     sorted[len(sorted)*99/100],
		TotalOps:        cfg.Iterations,
	}, nil
}

// warmup seeds the book with `levels` bid and ask levels on the fixed grid
// the update and read phases probe.
func warmup(book Book, levels int) error {
	for i := 0; i < levels; i++ {
		off := lob.Price(i) * tickStep
		if err := book.ApplyUpdate(lob.Bid, basePrice+off, warmQty); err != nil {
			return err
		}
		if err := book.ApplyUpdate(lob.Ask, basePrice+askOffset+off, warmQty); err != nil {
			return err
		}
	}
	return nil
}

func batchCount(n, size int) int {
	return (n + size - 1) / size
}

// benchmarkUpdates times alternating bid/ask overwrites at two fixed
// ticks: the steady-state cost of a level that already exists.
func benchmarkUpdates(book Book, iterations, batchSize int) []float64 {
	timings := make([]float64, 0, batchCount(iterations, batchSize))
	for i := 0; i < iterations; {
		end := i + batchSize
		if end > iterations {
			end = iterations
		}
		count := end - i

		start := time.Now()
		for j := i; j < end; j++ {
			if j%2 == 0 {
				_ = book.ApplyUpdate(lob.Bid, basePrice, 100)
			} else {
				_ = book.ApplyUpdate(lob.Ask, basePrice+tickStep, 120)
			}
		}
		elapsed := float64(time.Since(start).Nanoseconds())

		timings = append(timings, elapsed/float64(count))
		i = end
	}
	return timings
}

// benchmarkChurn times a seeded mixed feed: inserts, overwrites and
// removals spread over the book depth, weighted toward the top.
func benchmarkChurn(book Book, iterations, batchSize int, seed int64) []float64 {
	gen := NewGenerator(seed)
	timings := make([]float64, 0, batchCount(iterations, batchSize))
	for i := 0; i < iterations; {
		end := i + batchSize
		if end > iterations {
			end = iterations
		}
		count := end - i
		batch := gen.Updates(count)

		start := time.Now()
		for _, u := range batch {
			_ = book.ApplyUpdate(u.Side, u.Price, u.Quantity)
		}
		elapsed := float64(time.Since(start).Nanoseconds())

		timings = append(timings, elapsed/float64(count))
		i = end
	}
	return timings
}

func benchmarkSpread(book Book, iterations, batchSize int) []float64 {
	timings := make([]float64, 0, batchCount(iterations, batchSize))
	for i := 0; i < iterations; {
		end := i + batchSize
		if end > iterations {
			end = iterations
		}
		count := end - i

		start := time.Now()
		for j := i; j < end; j++ {
			book.Spread()
		}
		elapsed := float64(time.Since(start).Nanoseconds())

		timings = append(timings, elapsed/float64(count))
		i = end
	}
	return timings
}

func benchmarkBestBid(book Book, iterations, batchSize int) []float64 {
	timings := make([]float64, 0, batchCount(iterations, batchSize))
	for i := 0; i < iterations; {
		end := i + batchSize
		if end > iterations {
			end = iterations
		}
		count := end - i

		start := time.Now()
		for j := i; j < end; j++ {
			book.BestBid()
		}
		elapsed := float64(time.Since(start).Nanoseconds())

		timings = append(timings, elapsed/float64(count))
		i = end
	}
	return timings
}

func benchmarkBestAsk(book Book, iterations, batchSize int) []float64 {
	timings := make([]float64, 0, batchCount(iterations, batchSize))
	for i := 0; i < iterations; {
		end := i + batchSize
		if end > iterations {
			end = iterations
		}
		count := end - i

		start := time.Now()
		for j := i; j < end; j++ {
			book.BestAsk()
		}
		elapsed := float64(time.Since(start).Nanoseconds())

		timings = append(timings, elapsed/float64(count))
		i = end
	}
	return timings
}

// benchmarkRandomReads times point lookups cycling over 500 ticks per
// side, hitting present and absent levels alike.
func benchmarkRandomReads(book Book, iterations, batchSize int) []float64 {
	timings := make([]float64, 0, batchCount(iterations, batchSize))
	for i := 0; i < iterations; {
		end := i + batchSize
		if end > iterations {
			end = iterations
		}
		count := end - i

		start := time.Now()
		for j := i; j < end; j++ {
			price := basePrice + lob.Price(j%500)*tickStep
			side := lob.Bid
			if j%2 == 1 {
				side = lob.Ask
			}
			book.QuantityAt(side, price)
		}
		elapsed := float64(time.Since(start).Nanoseconds())

		timings = append(timings, elapsed/float64(count))
		i = end
	}
	return timings
}

func average(timings []float64) float64 {
	if len(timings) == 0 {
		return 0
	}
	var sum float64
	for _, t := range timings {
		sum += t
	}
	return sum / float64(len(timings))
}
