package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartIncrement(t *testing.T) {
	c := Cart{}

	c.Increment(5, 2)
	c.Increment(5, 1)
	assert.Equal(t, Cart{"5": 3}, c)

	// Non-positive quantities are ignored, never stored.
	c.Increment(7, 0)
	c.Increment(7, -4)
	assert.Equal(t, Cart{"5": 3}, c)
}

func TestCartDecrementRemovesAtZero(t *testing.T) {
	c := Cart{"5": 2}

	c.Decrement(5)
	assert.Equal(t, Cart{"5": 1}, c)

	c.Decrement(5)
	_, exists := c["5"]
	assert.False(t, exists, "zero-quantity entries are purged, not kept")

	// Decrementing something absent is a no-op.
	c.Decrement(9)
	assert.Empty(t, c)
}

func TestCartRemoveAndClear(t *testing.T) {
	c := Cart{"1": 1, "2": 2, "3": 3}

	c.Remove(2)
	assert.Equal(t, Cart{"1": 1, "3": 3}, c)

	c.Clear()
	assert.Empty(t, c)
}

func TestCartClean(t *testing.T) {
	c := Cart{
		"5":     2,
		"junk":  1,
		"7":     0,
		"8":     -3,
		"12345": 1,
	}

	c.Clean()

	assert.Equal(t, Cart{"5": 2, "12345": 1}, c)
}
