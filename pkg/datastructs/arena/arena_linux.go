//go:build linux

package arena

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/huynhanx03/go-statictree/pkg/utils"
)

func platformPageSize() int {
	return HugePageSize
}

// allocate maps size+pageSize anonymous bytes and keeps the first pageSize-aligned
// window of size bytes. The slack is never touched, so it is never backed.
func allocate(size, pageSize int) (*Arena, error) {
	mem, err := unix.Mmap(-1, 0, size+pageSize,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, errors.Wrapf(err, "arena: mmap %d bytes", size+pageSize)
	}

	off := utils.AlignOffset(uintptr(unsafe.Pointer(unsafe.SliceData(mem))), pageSize)
	return &Arena{
		mem:       mem,
		region:    mem[off : off+size : off+size],
		releaseFn: unix.Munmap,
	}, nil
}

func adviseHugePages(region []byte) (bool, error) {
	if err := unix.Madvise(region, unix.MADV_HUGEPAGE); err != nil {
		return false, errors.Wrap(err, "arena: madvise")
	}
	return true, nil
}
