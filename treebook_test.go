package lob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreeBook_BasicOperations(t *testing.T) {
	book := NewTreeBook()

	assert.NoError(t, book.ApplyUpdate(Bid, 10000, 100))
	assert.NoError(t, book.ApplyUpdate(Bid, 9950, 150))
	assert.NoError(t, book.ApplyUpdate(Ask, 10050, 80))

	best, ok := book.BestBid()
	assert.True(t, ok)
	assert.Equal(t, PriceLevel{Price: 10000, Quantity: 100}, best)

	spread, ok := book.Spread()
	assert.True(t, ok)
	assert.Equal(t, Price(50), spread)

	assert.Equal(t, Quantity(250), book.TotalQuantity(Bid))

	// Overwrite nets the total.
	assert.NoError(t, book.ApplyUpdate(Bid, 10000, 50))
	assert.Equal(t, Quantity(200), book.TotalQuantity(Bid))

	// Zero quantity removes, absent removal is a no-op.
	assert.NoError(t, book.ApplyUpdate(Bid, 10000, 0))
	assert.NoError(t, book.ApplyUpdate(Bid, 12345, 0))
	assert.Equal(t, 1, book.Len(Bid))

	assert.NoError(t, book.Remove(Bid, 9950))
	_, ok = book.BestBid()
	assert.False(t, ok)
	assert.Equal(t, Quantity(0), book.TotalQuantity(Bid))
}

func TestTreeBook_Unbounded(t *testing.T) {
	book := NewTreeBook()

	// No capacity limit: grow well past the slab default.
	for i := 1; i <= DefaultCapacity+100; i++ {
		assert.NoError(t, book.ApplyUpdate(Ask, Price(i), 1))
	}
	assert.Equal(t, DefaultCapacity+100, book.Len(Ask))

	top := book.TopLevels(Ask, 3)
	assert.Equal(t, []PriceLevel{
		{Price: 1, Quantity: 1},
		{Price: 2, Quantity: 1},
		{Price: 3, Quantity: 1},
	}, top)

	book.Reset()
	assert.Equal(t, 0, book.Len(Ask))
	assert.Equal(t, Quantity(0), book.TotalQuantity(Ask))
}

func TestTreeBook_Validation(t *testing.T) {
	book := NewTreeBook()

	assert.ErrorIs(t, book.ApplyUpdate(Side(0), 10, 1), ErrInvalidSide)
	assert.ErrorIs(t, book.ApplyUpdate(Bid, 0, 1), ErrInvalidPrice)
	assert.ErrorIs(t, book.ApplyUpdate(Bid, 10, -1), ErrInvalidQuantity)
	assert.ErrorIs(t, book.Remove(Side(5), 10), ErrInvalidSide)

	treat := NewTreeBookWithOptions(Options{NegativeQty: TreatAsRemove})
	assert.NoError(t, treat.ApplyUpdate(Bid, 10, 5))
	assert.NoError(t, treat.ApplyUpdate(Bid, 10, -1))
	assert.Equal(t, 0, treat.Len(Bid))
}
