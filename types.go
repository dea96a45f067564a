package lob

// Side selects the bid (buy interest) or ask (sell interest) half of the book.
// The zero value is not a valid side.
type Side int8

const (
	Bid Side = 1
	Ask Side = 2
)

func (s Side) String() string {
	switch s {
	case Bid:
		return "bid"
	case Ask:
		return "ask"
	}
	return "unknown"
}

// Price is a discrete tick count. Feeds that quote decimal prices convert
// them at the boundary (see Instrument); the book itself never compares
// floating point values.
type Price int64

// Quantity is the aggregated size resting at a price level. A quantity of
// zero in an update means "remove this price level" and is never stored.
type Quantity int64

// PriceLevel is the aggregated quantity available at one price on one side.
// Levels are passed and returned by value; callers never hold references
// into book storage.
type PriceLevel struct {
	Price    Price    `json:"price"`
	Quantity Quantity `json:"quantity"`
}

// Update is a single price-level change from a market data stream.
type Update struct {
	Side     Side     `json:"side"`
	Price    Price    `json:"price"`
	Quantity Quantity `json:"quantity"`
}
