package statictree

import "github.com/huynhanx03/go-statictree/pkg/utils"

// BlockCount returns the number of blocks needed to hold n keys.
func BlockCount(n int) int {
	return utils.CeilDiv(n, BlockLen)
}

// ParentLayerKeys returns the slot count of the layer above a layer of n keys:
// one block of 16 separators per 17 child blocks.
func ParentLayerKeys(n int) int {
	return utils.CeilDiv(BlockCount(n), Fanout) * BlockLen
}

// Height returns the number of layers, leaf layer included, of a layered tree
// over n keys.
func Height(n int) int {
	h := 1
	for n > BlockLen {
		n = ParentLayerKeys(n)
		h++
	}
	return h
}

// Geometry is the layer layout of a layered tree over N keys. Layer 0 is the
// leaf layer and starts at offset 0; layer h starts where layer h-1 ends.
// It is computed once and shared by build and lookup.
type Geometry struct {
	n       int
	blocks  []int // per layer
	offsets []int // per layer, plus the total size at index Height
}

// NewGeometry computes the layout for n keys. The leaf layer always has at
// least one block, so n == 0 yields a single all-sentinel block.
func NewGeometry(n int) Geometry {
	if n < 0 {
		panic("statictree: negative key count")
	}
	height := Height(n)
	g := Geometry{
		n:       n,
		blocks:  make([]int, height),
		offsets: make([]int, height+1),
	}

	keys := n
	for h := 0; h < height; h++ {
		g.blocks[h] = max(BlockCount(keys), 1)
		g.offsets[h+1] = g.offsets[h] + g.blocks[h]*BlockLen
		keys = ParentLayerKeys(keys)
	}
	return g
}

// N returns the number of real keys.
func (g Geometry) N() int { return g.n }

// Height returns the number of layers.
func (g Geometry) Height() int { return len(g.blocks) }

// Blocks returns the block count of a layer.
func (g Geometry) Blocks(layer int) int { return g.blocks[layer] }

// Offset returns the first slot of a layer. Offset(Height()) equals Size().
func (g Geometry) Offset(layer int) int { return g.offsets[layer] }

// Size returns the total slot count over all layers.
func (g Geometry) Size() int { return g.offsets[len(g.blocks)] }

// TotalBlocks returns the block count over all layers.
func (g Geometry) TotalBlocks() int { return g.Size() / BlockLen }
