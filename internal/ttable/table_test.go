package ttable

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isSorted(bk *bucket) bool {
	for i := 0; i < EntriesPerBucket-1; i++ {
		if outranks(bk.entries[i+1], bk.entries[i]) {
			return false
		}
	}
	return true
}

func allBucketsSorted(t *testing.T, tbl *Table) {
	t.Helper()
	for i := range tbl.buckets {
		assert.True(t, isSorted(&tbl.buckets[i]), "bucket %d out of priority order", i)
		for _, e := range tbl.buckets[i].entries {
			assert.GreaterOrEqual(t, e.info.Proc, int8(0))
		}
	}
}

func TestProbeMissInstallsEvaluatingAtDeferDepth(t *testing.T) {
	tbl := NewTable(1, DepthFirst{})
	found, info, cutoff := tbl.Probe(42, DeferDepth, false)
	assert.False(t, found)
	assert.Equal(t, None, cutoff)
	_ = info

	found, info, cutoff = tbl.Probe(42, DeferDepth, true)
	require.True(t, found)
	assert.Equal(t, BoundEvaluating, info.Bound)
	assert.Equal(t, PeerSearching, cutoff)
	allBucketsSorted(t, tbl)
}

func TestProbeMissBelowDeferDepthInstallsNothing(t *testing.T) {
	tbl := NewTable(1, DepthFirst{})
	found, _, cutoff := tbl.Probe(7, DeferDepth-1, false)
	assert.False(t, found)
	assert.Equal(t, None, cutoff)

	found, _, _ = tbl.Probe(7, DeferDepth-1, false)
	assert.False(t, found, "a depth below DeferDepth must never install a marker")
}

func TestProbeExactHitIsCutoffWithoutIncrement(t *testing.T) {
	tbl := NewTable(1, DepthFirst{})
	tbl.Insert(99, Info{Eval: 123, Move: Move(5), Depth: 4, Bound: BoundExact}, 4)

	found, info, cutoff := tbl.Probe(99, 4, false)
	require.True(t, found)
	assert.Equal(t, TTCutoff, cutoff)
	assert.EqualValues(t, 123, info.Eval)
	assert.Equal(t, int8(0), info.Proc, "EXACT hits must not be incremented")
}

func TestInsertThenProbeRoundTrip(t *testing.T) {
	tbl := NewTable(1, DepthFirst{})
	want := Info{Eval: 77, Move: Move(9), Depth: 5, Bound: BoundLower}
	tbl.Insert(12345, want, 5)

	found, got, _ := tbl.Probe(12345, 5, false)
	require.True(t, found)
	assert.Equal(t, want.Eval, got.Eval)
	assert.Equal(t, want.Move, got.Move)
	assert.Equal(t, want.Bound, got.Bound)
}

func TestClearResetsWritesAndKeys(t *testing.T) {
	tbl := NewTable(1, DepthFirst{})
	tbl.Insert(1, Info{Eval: 1, Depth: 1, Bound: BoundUpper}, 1)
	tbl.Insert(2, Info{Eval: 2, Depth: 1, Bound: BoundUpper}, 1)
	require.Greater(t, tbl.Writes(), uint64(0))

	tbl.Clear()
	assert.EqualValues(t, 0, tbl.Writes())
	for i := range tbl.buckets {
		for _, e := range tbl.buckets[i].entries {
			assert.EqualValues(t, 0, e.key)
		}
	}
}

func TestDecrementProcSaturatesAtZero(t *testing.T) {
	tbl := NewTable(1, DepthFirst{})
	tbl.Probe(5, DeferDepth, true) // installs Proc=1
	tbl.DecrementProc(5, DeferDepth)
	tbl.DecrementProc(5, DeferDepth) // imbalanced extra decrement

	_, info, _ := tbl.Probe(5, DeferDepth, true)
	assert.Equal(t, int8(0), info.Proc)
}

func TestProcNumberNeverGoesNegativeUnderConcurrentProbes(t *testing.T) {
	tbl := NewTable(1, TwoTwoSplit{})
	const key = uint64(555)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tbl.Probe(key, DeferDepth, false)
			tbl.DecrementProc(key, DeferDepth)
		}()
	}
	wg.Wait()
	allBucketsSorted(t, tbl)
}

func TestAllFourPoliciesKeepBucketsSorted(t *testing.T) {
	policies := []ReplacementPolicy{DepthFirst{}, ReplaceLastEntry{}, TwoTwoSplit{}, RandomReplace{}}
	for _, p := range policies {
		tbl := NewTable(1, p)
		for i := uint64(0); i < 64; i++ {
			tbl.Insert(i+1, Info{Eval: int16(i), Depth: int8(i % 8), Bound: BoundUpper}, int8(i%8))
		}
		allBucketsSorted(t, tbl)
	}
}

func TestPvWalkStopsOnMiss(t *testing.T) {
	tbl := NewTable(1, DepthFirst{})
	walk := tbl.PvWalk(&fakePosition{key: 1}, 5)
	assert.Empty(t, walk)
}

type fakePosition struct {
	key uint64
}

func (f *fakePosition) Key() uint64 { return f.key }
func (f *fakePosition) Make(Move)   {}
func (f *fakePosition) Unmake()     {}
func (f *fakePosition) Clone() pvPosition {
	cp := *f
	return &cp
}
