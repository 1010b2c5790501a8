package statictree

import (
	"math"
	"math/rand/v2"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// treeFactory builds a Searcher for the tests.
type treeFactory func(keys []int32) Searcher

// treeImplementations holds every layout under test.
var treeImplementations = map[string]treeFactory{
	"BTree/Recursive": func(keys []int32) Searcher { return NewBTree(keys, Config{Addressing: Recursive}) },
	"BTree/Eytzinger": func(keys []int32) Searcher { return NewBTree(keys, Config{Addressing: Eytzinger}) },
	"BPlus":           func(keys []int32) Searcher { return NewBPlus(keys, Config{}) },
	"Batch":           func(keys []int32) Searcher { return NewBatch(keys, Config{}) },
}

// forEachTree builds every layout over keys and runs fn as a subtest.
func forEachTree(t *testing.T, keys []int32, fn func(t *testing.T, tree Searcher)) {
	t.Helper()
	for name, factory := range treeImplementations {
		t.Run(name, func(t *testing.T) {
			tree := factory(keys)
			defer tree.Close()
			fn(t, tree)
		})
	}
}

// reference is the binary search oracle: the first key >= target, or Sentinel.
func reference(keys []int32, target int32) int32 {
	i := sort.Search(len(keys), func(i int) bool { return keys[i] >= target })
	if i < len(keys) {
		return keys[i]
	}
	return Sentinel
}

// sortedRandom returns n sorted keys drawn from [lo, hi).
func sortedRandom(rng *rand.Rand, n int, lo, hi int64) []int32 {
	keys := make([]int32, n)
	for i := range keys {
		keys[i] = int32(lo + rng.Int64N(hi-lo))
	}
	slices.Sort(keys)
	return keys
}

// probes returns targets around every key plus the int32 extremes.
func probes(rng *rand.Rand, keys []int32, random int) []int32 {
	out := []int32{math.MinInt32, math.MaxInt32, 0, -1, 1}
	for _, k := range keys {
		out = append(out, k)
		if k > math.MinInt32 {
			out = append(out, k-1)
		}
		if k < math.MaxInt32 {
			out = append(out, k+1)
		}
	}
	for i := 0; i < random; i++ {
		out = append(out, int32(rng.Uint32()))
	}
	return out
}

// requireMatchesReference checks LowerBound and Find against the oracle.
func requireMatchesReference(t *testing.T, tree Searcher, keys, targets []int32) {
	t.Helper()
	for _, target := range targets {
		want := reference(keys, target)
		got := tree.LowerBound(target)
		require.Equalf(t, want, got, "LowerBound(%d) over %d keys", target, len(keys))

		key, ok := tree.Find(target)
		require.Equal(t, got, key)
		wantOK := sort.Search(len(keys), func(i int) bool { return keys[i] >= target }) < len(keys)
		require.Equalf(t, wantOK, ok, "Find(%d) found flag", target)
	}
}

// oddKeys returns 1, 3, 5, ..., 2n-1.
func oddKeys(n int) []int32 {
	keys := make([]int32, n)
	for i := range keys {
		keys[i] = int32(2*i + 1)
	}
	return keys
}
