package statictree

// BPlus is a layered B+ tree: the leaf layer is the sorted input padded to
// whole blocks, and each layer above holds one 16-separator block per 17
// blocks of the layer below. Lookup costs Height() block compares.
type BPlus struct {
	layered
}

// NewBPlus builds a BPlus over keys, which must be sorted ascending.
func NewBPlus(keys []int32, cfg Config) *BPlus {
	cfg = cfg.withDefaults()
	return &BPlus{layered: newLayered(keys, cfg)}
}

// Stats returns layout statistics.
func (t *BPlus) Stats() Stats {
	return t.stats(KindBPlus, t.geo.Height())
}

// Close releases the backing array. The tree must not be used afterwards.
func (t *BPlus) Close() error {
	if t == nil {
		return nil
	}
	return t.release()
}
