package lob

// SnapshotSchemaVersion is the current version of the snapshot schema.
// Increment this when the snapshot format changes in a backward-incompatible way.
const SnapshotSchemaVersion = 1

// BookSnapshot contains the full state of a single OrderBook.
//
// Levels are stored best price first: bids descending, asks ascending. The
// struct marshals cleanly to JSON so snapshots can be persisted or shipped
// to downstream consumers.
type BookSnapshot struct {
	SchemaVersion int          `json:"schema_version"`
	Bids          []PriceLevel `json:"bids"` // Ordered list of bid levels (best price first)
	Asks          []PriceLevel `json:"asks"` // Ordered list of ask levels (best price first)
	TotalBidQty   Quantity     `json:"total_bid_qty"`
	TotalAskQty   Quantity     `json:"total_ask_qty"`
}

// validateSide checks one snapshot side before it is loaded: prices must be
// positive and strictly monotonic in book order, quantities positive, and
// the recorded total must match the level sum.
func validateSide(levels []PriceLevel, desc bool, total Quantity) error {
	var sum Quantity
	for i, lvl := range levels {
		if lvl.Price <= 0 {
			return ErrCorruptSnapshot
		}
		if lvl.Quantity <= 0 {
			return ErrCorruptSnapshot
		}
		if i > 0 {
			prev := levels[i-1].Price
			if desc && lvl.Price >= prev {
				return ErrCorruptSnapshot
			}
			if !desc && lvl.Price <= prev {
				return ErrCorruptSnapshot
			}
		}
		sum += lvl.Quantity
	}
	if sum != total {
		return ErrCorruptSnapshot
	}
	return nil
}
