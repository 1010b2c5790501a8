package statictree

import "fmt"

// Addressing maps (block, slot) to the child block of a BTree. Both numberings
// lay out the same implicit 17-ary tree; they differ only in where the root
// sits and therefore in the child and storage formulas.
type Addressing uint8

const (
	// Recursive numbers blocks from 0: the children of b are 1+17b .. 17+17b.
	Recursive Addressing = iota
	// Eytzinger numbers blocks from 1 like a classic heap: the children of b are
	// 17(b-1)+2 .. 17(b-1)+18, and block b is stored at slot 16(b-1).
	Eytzinger
)

// String implements fmt.Stringer.
func (a Addressing) String() string {
	switch a {
	case Recursive:
		return "recursive"
	case Eytzinger:
		return "eytzinger"
	default:
		return fmt.Sprintf("addressing(%d)", uint8(a))
	}
}

// root returns the index of the root block.
func (a Addressing) root() int {
	if a == Eytzinger {
		return 1
	}
	return 0
}

// child returns the block reached from slot i of block b; i == BlockLen is the
// rightmost child.
func (a Addressing) child(b, i int) int {
	if a == Eytzinger {
		return (b-1)*Fanout + i + 2
	}
	return b*Fanout + i + 1
}

// base returns the first slot of block b in the backing array.
func (a Addressing) base(b int) int {
	return (b - a.root()) * BlockLen
}
