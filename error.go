package lob

import "errors"

var (
	// ErrCapacityExceeded reports an insert that would grow a side past its
	// fixed capacity under the RejectUpdate policy. The book is unchanged.
	ErrCapacityExceeded = errors.New("side is at level capacity")

	// ErrInvalidPrice reports a non-positive tick price, or a decimal price
	// that is not aligned to the instrument tick size.
	ErrInvalidPrice = errors.New("the price is invalid")

	// ErrInvalidQuantity reports a negative quantity under the
	// RejectQuantity policy, or a decimal quantity that is not aligned to
	// the instrument lot size.
	ErrInvalidQuantity = errors.New("the quantity is invalid")

	// ErrInvalidSide reports a side other than Bid or Ask.
	ErrInvalidSide = errors.New("the side is invalid")

	// ErrInvalidInstrument reports a non-positive tick or lot size.
	ErrInvalidInstrument = errors.New("the instrument definition is invalid")

	// ErrCorruptSnapshot reports snapshot data that violates book
	// invariants (schema version, sort order, duplicate or zero-quantity
	// levels, totals).
	ErrCorruptSnapshot = errors.New("the snapshot violates book invariants")
)
