package lob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipBook_BasicOperations(t *testing.T) {
	book := NewSkipBook()

	assert.NoError(t, book.ApplyUpdate(Ask, 10050, 80))
	assert.NoError(t, book.ApplyUpdate(Ask, 10100, 120))
	assert.NoError(t, book.ApplyUpdate(Bid, 10000, 100))

	best, ok := book.BestAsk()
	assert.True(t, ok)
	assert.Equal(t, PriceLevel{Price: 10050, Quantity: 80}, best)

	spread, ok := book.Spread()
	assert.True(t, ok)
	assert.Equal(t, Price(50), spread)

	// Point lookups go through the price index, not the list.
	qty, ok := book.QuantityAt(Ask, 10100)
	assert.True(t, ok)
	assert.Equal(t, Quantity(120), qty)
	_, ok = book.QuantityAt(Ask, 10101)
	assert.False(t, ok)

	// Overwrite nets the total.
	assert.NoError(t, book.ApplyUpdate(Ask, 10050, 100))
	assert.Equal(t, Quantity(220), book.TotalQuantity(Ask))

	assert.NoError(t, book.ApplyUpdate(Ask, 10050, 0))
	best, _ = book.BestAsk()
	assert.Equal(t, Price(10100), best.Price)

	assert.NoError(t, book.Remove(Ask, 10100))
	_, ok = book.BestAsk()
	assert.False(t, ok)
	assert.Equal(t, Quantity(0), book.TotalQuantity(Ask))
	assert.Equal(t, 1, book.Len(Bid))
}

func TestSkipBook_TopLevelsAndReset(t *testing.T) {
	book := NewSkipBook()
	for _, p := range []Price{30, 10, 50, 20, 40} {
		assert.NoError(t, book.ApplyUpdate(Bid, p, Quantity(p)))
	}

	assert.Equal(t, []PriceLevel{
		{Price: 50, Quantity: 50},
		{Price: 40, Quantity: 40},
	}, book.TopLevels(Bid, 2))
	assert.Len(t, book.TopLevels(Bid, 99), 5)
	assert.Nil(t, book.TopLevels(Bid, 0))

	book.Reset()
	assert.Equal(t, 0, book.Len(Bid))
	_, ok := book.BestBid()
	assert.False(t, ok)

	assert.NoError(t, book.ApplyUpdate(Bid, 5, 5))
	assert.Equal(t, 1, book.Len(Bid))
}

func TestSkipBook_Validation(t *testing.T) {
	book := NewSkipBook()

	assert.ErrorIs(t, book.ApplyUpdate(Side(0), 10, 1), ErrInvalidSide)
	assert.ErrorIs(t, book.ApplyUpdate(Ask, -3, 1), ErrInvalidPrice)
	assert.ErrorIs(t, book.ApplyUpdate(Ask, 10, -1), ErrInvalidQuantity)
	assert.ErrorIs(t, book.Remove(Ask, 0), ErrInvalidPrice)

	treat := NewSkipBookWithOptions(Options{NegativeQty: TreatAsRemove})
	assert.NoError(t, treat.ApplyUpdate(Ask, 10, 5))
	assert.NoError(t, treat.ApplyUpdate(Ask, 10, -1))
	assert.Equal(t, 0, treat.Len(Ask))
}
