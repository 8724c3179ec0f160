package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPutUpdatesExistingEntryWithoutGrowing(t *testing.T) {
	c := NewLRU[string, string](2)

	c.Put("alpha", "x")
	c.Put("beta", "value")
	c.Put("alpha", "y")

	assert.Equal(t, 2, c.Len())

	value, hit := c.Get("alpha")
	assert.True(t, hit)
	assert.Equal(t, "y", value)

	value, hit = c.Get("beta")
	assert.True(t, hit)
	assert.Equal(t, "value", value)
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[int, string](2)

	c.Put(1, "one")
	c.Put(2, "two")
	_, hit := c.Get(1)
	assert.True(t, hit, "expected key 1 to be cached")
	c.Put(3, "three")

	_, hit = c.Get(2)
	assert.False(t, hit, "expected key 2 to be evicted")
	for _, key := range []int{1, 3} {
		_, hit := c.Get(key)
		assert.True(t, hit, "expected key %d to be cached", key)
	}
}

func TestSizeBelowOneHoldsOneEntry(t *testing.T) {
	c := NewLRU[string, int](0)

	c.Put("a", 1)
	c.Put("b", 2)

	assert.Equal(t, 1, c.Len())
	_, hit := c.Get("a")
	assert.False(t, hit, "expected a to be evicted")
}

func TestPurge(t *testing.T) {
	c := NewLRU[string, int](4)
	c.Put("a", 1)
	c.Put("b", 2)

	c.Purge()

	assert.Zero(t, c.Len())
	_, hit := c.Get("a")
	assert.False(t, hit, "expected a to be gone")

	c.Put("c", 3)
	v, hit := c.Get("c")
	assert.True(t, hit)
	assert.Equal(t, 3, v)
}
