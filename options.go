package lob

// DefaultCapacity is the number of price levels one side can hold unless
// overridden through Options. Sized to cover the visible depth of typical
// L2 feeds while keeping insert shifts cheap.
const DefaultCapacity = 1024

// CapacityPolicy decides how an insert into a full side is handled.
type CapacityPolicy int8

const (
	// RejectUpdate fails the update with ErrCapacityExceeded and leaves
	// the book in its prior state. This is the default.
	RejectUpdate CapacityPolicy = iota

	// EvictWorst drops the least competitive level to make room when the
	// incoming price ranks ahead of it, and silently discards the update
	// when the incoming price ranks behind every stored level.
	EvictWorst
)

// QuantityPolicy decides how a negative update quantity is interpreted.
type QuantityPolicy int8

const (
	// RejectQuantity fails the update with ErrInvalidQuantity. This is
	// the default.
	RejectQuantity QuantityPolicy = iota

	// TreatAsRemove handles a negative quantity like the zero deletion
	// sentinel: any level at that price is removed.
	TreatAsRemove
)

// Options configure an OrderBook. The zero value selects the defaults.
type Options struct {
	// Capacity sets the maximum number of price levels per side.
	// Values below 1 fall back to DefaultCapacity.
	Capacity int

	// OnFull selects the behavior of inserts into a full side.
	OnFull CapacityPolicy

	// NegativeQty selects the behavior of updates with a negative quantity.
	NegativeQty QuantityPolicy
}

func (opts Options) capacity() int {
	if opts.Capacity < 1 {
		return DefaultCapacity
	}
	return opts.Capacity
}
