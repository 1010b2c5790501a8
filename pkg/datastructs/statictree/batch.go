package statictree

import (
	"fmt"
	"sync"
	"unsafe"
)

// Batch is a BPlus whose batch lookup advances a fixed number of queries
// through the tree in lockstep, one layer at a time. Right after a query's
// next block is known its cache line is prefetched, so by the time the loop
// comes back to that query the load is already in flight. B independent miss
// chains overlap instead of running back to back: single-query latency is
// traded for throughput.
//
// The per-query state is B ints. Up to 64 queries it lives on the stack;
// wider batches borrow a slice from a per-tree pool and grow the working set
// held across the pass accordingly.
type Batch struct {
	layered
	width   int
	scratch sync.Pool
}

// NewBatch builds a Batch over keys, which must be sorted ascending, with
// batch width cfg.BatchSize.
func NewBatch(keys []int32, cfg Config) *Batch {
	cfg = cfg.withDefaults()
	t := &Batch{
		layered: newLayered(keys, cfg),
		width:   cfg.BatchSize,
	}
	t.scratch.New = func() any {
		s := make([]int, t.width)
		return &s
	}
	return t
}

// BatchSize returns the fixed batch width.
func (t *Batch) BatchSize() int {
	return t.width
}

// LowerBoundBatch writes LowerBound(targets[i]) into results[i]. It panics if
// len(targets) != BatchSize() or len(results) < BatchSize().
func (t *Batch) LowerBoundBatch(targets, results []int32) {
	w := t.width
	if len(targets) != w || len(results) < w {
		panic(fmt.Sprintf("statictree: batch of %d targets into %d results, want %d",
			len(targets), len(results), w))
	}

	var stack [maxStackBatch]int
	var pos []int
	if w <= maxStackBatch {
		pos = stack[:w]
	} else {
		p := t.scratch.Get().(*[]int)
		defer t.scratch.Put(p)
		pos = *p
		clear(pos)
	}

	data := t.data
	for h := t.geo.Height() - 1; h > 0; h-- {
		off, next := t.geo.offsets[h], t.geo.offsets[h-1]
		for q := 0; q < w; q++ {
			k := pos[q]
			i := firstGE(blockAt(data, off+k*BlockLen), targets[q])
			k = k*Fanout + i
			pos[q] = k
			prefetch(unsafe.Pointer(&data[next+k*BlockLen]))
		}
	}

	for q := 0; q < w; q++ {
		results[q] = t.keyAt(t.leafRank(pos[q], targets[q]))
	}
}

// LowerBoundAll answers any number of lookups: whole batches go through
// LowerBoundBatch and the remainder through LowerBound. It panics if
// len(results) < len(targets).
func (t *Batch) LowerBoundAll(targets, results []int32) {
	if len(results) < len(targets) {
		panic(fmt.Sprintf("statictree: %d targets into %d results", len(targets), len(results)))
	}
	w := t.width
	i := 0
	for ; i+w <= len(targets); i += w {
		t.LowerBoundBatch(targets[i:i+w], results[i:i+w])
	}
	for ; i < len(targets); i++ {
		results[i] = t.LowerBound(targets[i])
	}
}

// Stats returns layout statistics.
func (t *Batch) Stats() Stats {
	s := t.stats(KindBatch, t.geo.Height())
	s.BatchSize = t.width
	return s
}

// Close releases the backing array. The tree must not be used afterwards.
func (t *Batch) Close() error {
	if t == nil {
		return nil
	}
	return t.release()
}
