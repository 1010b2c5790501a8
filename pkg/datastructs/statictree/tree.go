package statictree

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-statictree/pkg/datastructs/arena"
	"github.com/huynhanx03/go-statictree/pkg/hash"
)

// Searcher is the read-only surface shared by every layout. A Searcher is
// immutable once its constructor returns, so any number of goroutines may call
// its lookup methods concurrently without synchronisation. Close must not race
// with lookups.
type Searcher interface {
	// LowerBound returns the smallest stored key >= target, or Sentinel.
	LowerBound(target int32) int32
	// Find is LowerBound with an explicit found flag.
	Find(target int32) (int32, bool)
	// Len returns the number of stored keys.
	Len() int
	// Stats describes the layout and its memory.
	Stats() Stats
	// Fingerprint hashes the backing array.
	Fingerprint() uint64
	// Close releases the backing array.
	Close() error
}

// BatchSearcher answers a fixed-width batch of lookups in one pipelined pass.
type BatchSearcher interface {
	Searcher
	// LowerBoundBatch writes LowerBound(targets[i]) to results[i]. len(targets)
	// must equal BatchSize() and len(results) must be at least BatchSize().
	LowerBoundBatch(targets, results []int32)
	// BatchSize returns the fixed batch width.
	BatchSize() int
}

// Kind names a layout.
type Kind string

const (
	KindBTree          Kind = "btree"
	KindBTreeEytzinger Kind = "btree-eytzinger"
	KindBPlus          Kind = "bplus"
	KindBatch          Kind = "bplus-batch"
)

// Kinds returns every registered layout.
func Kinds() []Kind {
	return []Kind{KindBTree, KindBTreeEytzinger, KindBPlus, KindBatch}
}

// ParseKind validates a layout name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownKind, "%q", s)
}

// New builds the layout named by kind over keys, which must be sorted ascending.
func New(kind Kind, keys []int32, cfg Config) (Searcher, error) {
	switch kind {
	case KindBTree:
		cfg.Addressing = Recursive
		return NewBTree(keys, cfg), nil
	case KindBTreeEytzinger:
		cfg.Addressing = Eytzinger
		return NewBTree(keys, cfg), nil
	case KindBPlus:
		return NewBPlus(keys, cfg), nil
	case KindBatch:
		return NewBatch(keys, cfg), nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
}

// Stats describes a built tree.
type Stats struct {
	Kind      Kind
	Keys      int     // Stored keys.
	Layers    int     // Tree levels, leaf level included.
	Blocks    int     // Blocks over all levels.
	Bytes     int     // Derived: Blocks * 64.
	Allocated int     // Page-rounded bytes held by the arena.
	PageSize  int     // Arena alignment and rounding unit.
	HugePages bool    // Kernel accepted the huge page advice.
	BatchSize int     // Batch width, 0 for non-batched layouts.
	Occupancy float64 // Derived: percentage of slots holding real keys.
}

// backing owns the arena shared by every layout. Slots are written only by the
// constructors.
type backing struct {
	arena  *arena.Arena
	data   []int32
	n      int
	hasMax bool // the largest stored key equals Sentinel
	logger *zap.Logger
}

// newBacking allocates size slots. Allocation failure is fatal: a half-built
// index cannot be queried, so it panics after logging.
func newBacking(keys []int32, size int, cfg Config) backing {
	a, err := arena.New(size, arena.Config{
		DisableHugePages: cfg.DisableHugePages,
		Logger:           cfg.Logger,
	})
	if err != nil {
		cfg.Logger.Error("allocate backing array", zap.Int("slots", size), zap.Error(err))
		panic(errors.Wrap(err, "statictree: allocate backing array"))
	}
	n := len(keys)
	return backing{
		arena:  a,
		data:   a.Int32s(),
		n:      n,
		hasMax: n > 0 && keys[n-1] == Sentinel,
		logger: cfg.Logger,
	}
}

// found reports whether key, a LowerBound result, is a stored key. A Sentinel
// result is real only if Sentinel itself is stored, in which case every int32
// target has a lower bound.
func (b *backing) found(key int32) bool {
	return key != Sentinel || b.hasMax
}

// Len returns the number of stored keys.
func (b *backing) Len() int {
	return b.n
}

// Fingerprint returns the xxhash64 of the backing array. It never changes
// between construction and Close.
func (b *backing) Fingerprint() uint64 {
	return hash.Int32s(b.data)
}

func (b *backing) stats(kind Kind, layers int) Stats {
	s := Stats{
		Kind:      kind,
		Keys:      b.n,
		Layers:    layers,
		Blocks:    len(b.data) / BlockLen,
		Bytes:     len(b.data) * 4,
		Allocated: b.arena.Allocated(),
		PageSize:  b.arena.PageSize(),
		HugePages: b.arena.HugePages(),
	}
	if len(b.data) > 0 {
		s.Occupancy = 100.0 * float64(b.n) / float64(len(b.data))
	}
	return s
}

func (b *backing) release() error {
	b.data = nil
	return b.arena.Release()
}
