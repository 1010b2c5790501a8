package statictree

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// layered is the storage and lookup core of BPlus and Batch: distinct layers
// in one array, leaf layer first. Every separator is a copy of the minimum of
// the subtree to its right, so "first separator >= target" in a block is the
// index of the child that holds the lower bound, or whose right neighbour
// starts with it.
type layered struct {
	backing
	geo Geometry
}

func newLayered(keys []int32, cfg Config) layered {
	geo := NewGeometry(len(keys))
	l := layered{
		backing: newBacking(keys, geo.Size(), cfg),
		geo:     geo,
	}
	l.build(keys, cfg.BuildWorkers)

	l.logger.Debug("layered tree built",
		zap.Int("keys", len(keys)),
		zap.Int("layers", geo.Height()),
		zap.Int("blocks", geo.TotalBlocks()),
		zap.Int("workers", cfg.BuildWorkers))
	return l
}

// build copies keys into the leaf layer, pads every other slot with Sentinel
// and fills the separator layers. Separators read only the leaf layer, so the
// separator work of all layers can run in parallel once the leaves are written.
func (l *layered) build(keys []int32, workers int) {
	n := copy(l.data, keys)
	leafEnd := l.geo.Offset(1)
	for i := n; i < leafEnd; i++ {
		l.data[i] = Sentinel
	}

	var g errgroup.Group
	g.SetLimit(workers)

	span := 1 // leaf blocks under one block of layer h-1
	for h := 1; h < l.geo.Height(); h++ {
		start, end := l.geo.Offset(h), l.geo.Offset(h+1)
		sp := span
		if workers == 1 {
			l.fillSeparators(h, start, end, sp)
		} else {
			chunk := max(minParallelSlots, (end-start+workers-1)/workers)
			for lo := start; lo < end; lo += chunk {
				hi := min(lo+chunk, end)
				g.Go(func() error {
					l.fillSeparators(h, lo, hi, sp)
					return nil
				})
			}
		}
		span *= Fanout
	}
	_ = g.Wait()
}

// fillSeparators writes slots [lo, hi) of layer h. Slot i of block b routes to
// child b*17+i on layer h-1; its separator is the first leaf key of child
// b*17+i+1, found by following leftmost children span levels down.
func (l *layered) fillSeparators(h, lo, hi, span int) {
	start := l.geo.Offset(h)
	for p := lo; p < hi; p++ {
		i := p - start
		right := (i/BlockLen)*Fanout + i%BlockLen + 1
		leaf := right * span * BlockLen
		if leaf < l.n {
			l.data[p] = l.data[leaf]
		} else {
			l.data[p] = Sentinel
		}
	}
}

// descend walks the separator layers and returns the leaf block to scan.
func (l *layered) descend(target int32) int {
	k := 0
	for h := l.geo.Height() - 1; h > 0; h-- {
		i := firstGE(blockAt(l.data, l.geo.offsets[h]+k*BlockLen), target)
		k = k*Fanout + i
	}
	return k
}

// leafRank scans leaf block k. A miss in the block (16) lands on the first key
// of the next block, which is the lower bound by the separator invariant.
func (l *layered) leafRank(k int, target int32) int {
	off := k * BlockLen
	return off + firstGE(blockAt(l.data, off), target)
}

// keyAt maps a leaf rank to its key. Ranks at or past n hold padding or lie
// beyond the leaf layer, both of which mean "not found".
func (l *layered) keyAt(idx int) int32 {
	if idx < l.n {
		return l.data[idx]
	}
	return Sentinel
}

// LowerBound returns the smallest stored key >= target, or Sentinel.
func (l *layered) LowerBound(target int32) int32 {
	return l.keyAt(l.leafRank(l.descend(target), target))
}

// Rank returns the position of LowerBound(target) in the sorted input, or Len()
// if every stored key is smaller than target.
func (l *layered) Rank(target int32) int {
	return min(l.leafRank(l.descend(target), target), l.n)
}

// Find returns LowerBound(target) and whether it is a stored key.
func (l *layered) Find(target int32) (int32, bool) {
	idx := l.leafRank(l.descend(target), target)
	if idx < l.n {
		return l.data[idx], true
	}
	return Sentinel, false
}

// Geometry returns the layer layout.
func (l *layered) Geometry() Geometry {
	return l.geo
}
