package statictree

import (
	"go.uber.org/zap"
)

// BTree is an implicit 17-ary search tree of 16-key blocks laid out in one flat
// array. There are no child pointers: children are found by index arithmetic
// (see Addressing). Every slot of every block is populated; slots past the
// input hold Sentinel. An in-order walk yields the input sequence.
type BTree struct {
	backing
	addr Addressing
	root int
	end  int // first block index past the tree
}

// NewBTree builds a BTree over keys, which must be sorted ascending. Unsorted
// input is not detected and makes lookups meaningless.
func NewBTree(keys []int32, cfg Config) *BTree {
	cfg = cfg.withDefaults()
	nblocks := max(BlockCount(len(keys)), 1)

	t := &BTree{
		backing: newBacking(keys, nblocks*BlockLen, cfg),
		addr:    cfg.Addressing,
		root:    cfg.Addressing.root(),
	}
	t.end = t.root + nblocks

	pos := 0
	t.build(keys, &pos, t.root)

	t.logger.Debug("btree built",
		zap.Int("keys", len(keys)),
		zap.Int("blocks", nblocks),
		zap.Stringer("addressing", t.addr))
	return t
}

// build fills block b and its subtree in order: for each slot, the left child
// first, then the slot itself, and the rightmost child last.
func (t *BTree) build(keys []int32, pos *int, b int) {
	if b >= t.end {
		return
	}
	base := t.addr.base(b)
	for i := 0; i < BlockLen; i++ {
		t.build(keys, pos, t.addr.child(b, i))
		if *pos < len(keys) {
			t.data[base+i] = keys[*pos]
			*pos++
		} else {
			t.data[base+i] = Sentinel
		}
	}
	t.build(keys, pos, t.addr.child(b, BlockLen))
}

// LowerBound returns the smallest stored key >= target, or Sentinel.
func (t *BTree) LowerBound(target int32) int32 {
	res := Sentinel
	for b := t.root; b < t.end; {
		base := t.addr.base(b)
		i := firstGE(blockAt(t.data, base), target)
		if i < BlockLen {
			res = t.data[base+i]
		}
		b = t.addr.child(b, i)
	}
	return res
}

// Find returns LowerBound(target) and whether it is a stored key.
func (t *BTree) Find(target int32) (int32, bool) {
	k := t.LowerBound(target)
	return k, t.found(k)
}

// Addressing returns the child numbering the tree was built with.
func (t *BTree) Addressing() Addressing {
	return t.addr
}

// Stats returns layout statistics.
func (t *BTree) Stats() Stats {
	kind := KindBTree
	if t.addr == Eytzinger {
		kind = KindBTreeEytzinger
	}
	return t.stats(kind, t.depth())
}

// depth returns the number of blocks on the longest root-to-leaf path.
func (t *BTree) depth() int {
	d := 0
	for b := t.root; b < t.end; b = t.addr.child(b, 0) {
		d++
	}
	return d
}

// Close releases the backing array. The tree must not be used afterwards.
func (t *BTree) Close() error {
	if t == nil {
		return nil
	}
	return t.release()
}
