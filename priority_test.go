package pulse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityClassOrder(t *testing.T) {
	assert.True(t, Child < Pure)
	assert.True(t, Pure < Barrier)
	assert.True(t, Barrier < Sampler)
	assert.True(t, Sampler < Effect)
}

func TestPriorityClassUsesSharedHeap(t *testing.T) {
	t.Run("barrier and sampler share the heap", func(t *testing.T) {
		assert.True(t, Barrier.usesSharedHeap())
		assert.True(t, Sampler.usesSharedHeap())
	})

	t.Run("child, pure, and effect are FIFO", func(t *testing.T) {
		assert.False(t, Child.usesSharedHeap())
		assert.False(t, Pure.usesSharedHeap())
		assert.False(t, Effect.usesSharedHeap())
	})
}

func TestPriorityClassString(t *testing.T) {
	assert.Equal(t, "child", Child.String())
	assert.Equal(t, "pure", Pure.String())
	assert.Equal(t, "barrier", Barrier.String())
	assert.Equal(t, "sampler", Sampler.String())
	assert.Equal(t, "effect", Effect.String())
}
