package arena

const (
	// HugePageSize is the transparent huge page size on x86-64 and arm64 (4K base pages).
	HugePageSize = 2 << 20

	// cacheLine is the minimum alignment of every arena; one tree block fills one line.
	cacheLine = 64

	// slotSize is the byte width of one int32 slot.
	slotSize = 4
)
