package arena

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-statictree/pkg/utils"
)

// Config controls how an Arena is backed.
type Config struct {
	// DisableHugePages skips the MADV_HUGEPAGE advice.
	DisableHugePages bool
	// Logger receives allocation diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// Arena is a single page-aligned, page-padded allocation of int32 slots.
// It is the sole owner of its memory: the memory is returned to the OS by
// Release and must not be touched afterwards.
// It is NOT thread-safe to Release concurrently with readers.
type Arena struct {
	mem       []byte  // whole allocation, released as a unit
	region    []byte  // aligned, page-rounded window of mem
	data      []int32 // exactly elems slots at the start of region
	pageSize  int
	huge      bool
	released  bool
	releaseFn func(mem []byte) error
}

// New allocates room for elems int32 slots. The byte size is rounded up to a
// whole number of pages and the start is aligned to the page size, which is
// HugePageSize on Linux.
func New(elems int, cfg Config) (*Arena, error) {
	if elems < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "elems=%d", elems)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	pageSize := platformPageSize()
	size := utils.RoundUp(max(elems*slotSize, 1), pageSize)

	a, err := allocate(size, pageSize)
	if err != nil {
		return nil, err
	}
	a.pageSize = pageSize
	a.data = utils.BytesToInt32Slice(a.region)[:elems:elems]

	if !cfg.DisableHugePages {
		huge, err := adviseHugePages(a.region)
		if err != nil {
			logger.Warn("huge page advice rejected",
				zap.Int("bytes", len(a.region)),
				zap.Error(err))
		}
		a.huge = huge
	}

	logger.Debug("arena allocated",
		zap.Int("elems", elems),
		zap.Int("bytes", len(a.region)),
		zap.Int("page_size", pageSize),
		zap.Bool("huge_pages", a.huge))
	return a, nil
}

// Int32s returns the slot view. Writes are allowed until the owner publishes
// the arena as immutable.
func (a *Arena) Int32s() []int32 {
	return a.data
}

// Len returns the number of usable int32 slots.
func (a *Arena) Len() int {
	return len(a.data)
}

// Allocated returns the page-rounded size in bytes.
func (a *Arena) Allocated() int {
	return len(a.region)
}

// PageSize returns the alignment and rounding unit used for this arena.
func (a *Arena) PageSize() int {
	return a.pageSize
}

// HugePages reports whether the kernel accepted the huge page advice.
func (a *Arena) HugePages() bool {
	return a.huge
}

// Released reports whether Release has been called.
func (a *Arena) Released() bool {
	return a.released
}

// Release returns the memory to the OS. Calling it more than once is a no-op.
func (a *Arena) Release() error {
	if a == nil || a.released {
		return nil
	}
	a.released = true
	mem := a.mem
	a.mem, a.region, a.data = nil, nil, nil
	if err := a.releaseFn(mem); err != nil {
		return errors.Wrap(err, "arena: release")
	}
	return nil
}

// Close implements io.Closer.
func (a *Arena) Close() error {
	return a.Release()
}
