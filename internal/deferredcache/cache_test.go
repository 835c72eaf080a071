package deferredcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeferFirstTimeFalseThenTrue(t *testing.T) {
	c := New()
	assert.False(t, c.Defer(111, DeferDepth))
	assert.True(t, c.Defer(111, DeferDepth), "a second peer must see the first still searching")
}

func TestReleaseAllowsDeferAgain(t *testing.T) {
	c := New()
	require := assert.New(t)
	require.False(c.Defer(222, DeferDepth))
	require.True(c.Defer(222, DeferDepth))

	c.Release(222, DeferDepth)
	require.False(c.Defer(222, DeferDepth))
}

func TestDeferBelowDeferDepthIsNoop(t *testing.T) {
	c := New()
	assert.False(t, c.Defer(333, DeferDepth-1))
	assert.False(t, c.Defer(333, DeferDepth-1), "below DeferDepth, Defer never remembers a hash")
}

func TestReleaseIsIdempotent(t *testing.T) {
	c := New()
	c.Defer(444, DeferDepth)
	c.Release(444, DeferDepth)
	c.Release(444, DeferDepth)
	assert.False(t, c.Defer(444, DeferDepth))
}

func TestSlotHoldsUpToWidthSimultaneousHashes(t *testing.T) {
	c := New()
	// Different hashes landing in the same slot (same slot index) are
	// independent entries up to width; beyond that duplicates are an
	// accepted inefficiency, not a correctness bug.
	base := uint64(7)
	for i := 0; i < width; i++ {
		assert.False(t, c.Defer(base+uint64(i)*size, DeferDepth))
	}
	for i := 0; i < width; i++ {
		assert.True(t, c.Defer(base+uint64(i)*size, DeferDepth))
	}
}
