package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/they4kman/termsweep/util/collections"
)

func TestAddRemoveContains(t *testing.T) {
	set := collections.NewSet(1, 2)
	set.Add(3)
	set.Add(3)

	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains(3))

	set.Remove(2)
	set.Remove(42)
	assert.False(t, set.Contains(2))
	assert.Equal(t, 2, set.Len())
}

func TestDifference(t *testing.T) {
	left := collections.NewSet("a", "b", "c")
	right := collections.NewSet("b", "d")

	assert.Equal(t, collections.NewSet("a", "c"), left.Difference(right))
	assert.Equal(t, collections.NewSet("d"), right.Difference(left))
}

func TestSubsetAndIntersects(t *testing.T) {
	small := collections.NewSet(1, 2)
	large := collections.NewSet(1, 2, 3)
	other := collections.NewSet(7)

	assert.True(t, small.IsSubsetOf(large))
	assert.False(t, large.IsSubsetOf(small))
	assert.True(t, collections.NewSet[int]().IsSubsetOf(other))

	assert.True(t, small.Intersects(large))
	assert.False(t, small.Intersects(other))

	assert.True(t, small.Equal(collections.NewSet(2, 1)))
	assert.False(t, small.Equal(large))
}
