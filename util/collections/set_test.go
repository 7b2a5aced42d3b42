package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := NewSet(1, 2, 2)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(1))
	assert.False(t, set.Contains(3))

	set.Add(3)
	set.Remove(1)
	set.Remove(4)
	assert.False(t, set.Contains(1))
	assert.ElementsMatch(t, []int{2, 3}, set.Values())
}

func TestSetValuesAllowsRemoval(t *testing.T) {
	set := NewSet("a", "b", "c")
	for _, value := range set.Values() {
		set.Remove(value)
	}
	assert.Zero(t, set.Len())
	assert.Empty(t, set.Values())
}
