package statictree

import "math"

const (
	// BlockLen is the number of int32 slots in a block: one 64-byte cache line.
	BlockLen = 16

	// Fanout is the number of children per internal block.
	Fanout = BlockLen + 1

	// Sentinel fills unused slots and is returned when no stored key is >= target.
	// It equals math.MaxInt32, so it collides with a stored MaxInt32 key; use Find
	// to tell the two apart.
	Sentinel = int32(math.MaxInt32)

	// DefaultBatchSize is the batch width used when Config.BatchSize is not set.
	DefaultBatchSize = 16

	// maxStackBatch is the widest batch whose per-query state stays on the stack.
	maxStackBatch = 64

	// minParallelSlots is the smallest amount of separator work handed to one
	// build worker.
	minParallelSlots = 1 << 15
)
