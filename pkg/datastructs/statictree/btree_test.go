package statictree

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressing(t *testing.T) {
	tests := []struct {
		name     string
		addr     Addressing
		root     int
		child    [3]int // child(root, 0), child(root, 16), child(root+1, 0)
		rootBase int
	}{
		{"recursive", Recursive, 0, [3]int{1, 17, 18}, 0},
		{"eytzinger", Eytzinger, 1, [3]int{2, 18, 19}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.addr.String())
			assert.Equal(t, tt.root, tt.addr.root())
			assert.Equal(t, tt.child[0], tt.addr.child(tt.root, 0))
			assert.Equal(t, tt.child[1], tt.addr.child(tt.root, BlockLen))
			assert.Equal(t, tt.child[2], tt.addr.child(tt.root+1, 0))
			assert.Equal(t, tt.rootBase, tt.addr.base(tt.root))
			assert.Equal(t, BlockLen, tt.addr.base(tt.root+1))
		})
	}
}

func TestBTree_AddressingsShareLayout(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 4))
	for _, n := range []int{0, 1, 16, 17, 300, 16*17*17 + 1, 50_000} {
		keys := sortedRandom(rng, n, 0, 1<<30)
		rec := NewBTree(keys, Config{Addressing: Recursive})
		eyt := NewBTree(keys, Config{Addressing: Eytzinger})

		assert.Equalf(t, rec.Fingerprint(), eyt.Fingerprint(), "n=%d", n)
		assert.Equal(t, rec.Stats().Layers, eyt.Stats().Layers)
		require.NoError(t, rec.Close())
		require.NoError(t, eyt.Close())
	}
}

// An in-order walk of the blocks reproduces the input.
func TestBTree_InOrder(t *testing.T) {
	keys := oddKeys(16*17*2 + 5)
	for _, addr := range []Addressing{Recursive, Eytzinger} {
		tree := NewBTree(keys, Config{Addressing: addr})

		var walk []int32
		var visit func(b int)
		visit = func(b int) {
			if b >= tree.end {
				return
			}
			base := addr.base(b)
			for i := 0; i < BlockLen; i++ {
				visit(addr.child(b, i))
				walk = append(walk, tree.data[base+i])
			}
			visit(addr.child(b, BlockLen))
		}
		visit(tree.root)

		require.Len(t, walk, len(tree.data))
		assert.Equal(t, keys, walk[:len(keys)])
		for _, v := range walk[len(keys):] {
			assert.Equal(t, Sentinel, v)
		}
		assert.Equal(t, addr, tree.Addressing())
		require.NoError(t, tree.Close())
	}
}

func TestBTree_Depth(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{16, 1},
		{17, 2},
		{16 * 18, 2},
		{16*18 + 1, 3},
	}
	for _, tt := range tests {
		tree := NewBTree(oddKeys(tt.n), Config{})
		assert.Equalf(t, tt.want, tree.Stats().Layers, "n=%d", tt.n)
		require.NoError(t, tree.Close())
	}
}
