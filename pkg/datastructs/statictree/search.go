package statictree

import "math/bits"

// firstGEGeneric returns the index of the first slot holding a key >= target,
// or BlockLen if there is none. Bit 16 of the mask is always set so an empty
// match counts to BlockLen, the same as the vector path.
func firstGEGeneric(block *[BlockLen]int32, target int32) int {
	mask := uint32(1) << BlockLen
	for i, k := range block {
		if k >= target {
			mask |= 1 << i
		}
	}
	return bits.TrailingZeros32(mask)
}

// blockAt returns the block starting at slot off.
func blockAt(data []int32, off int) *[BlockLen]int32 {
	return (*[BlockLen]int32)(data[off : off+BlockLen])
}
