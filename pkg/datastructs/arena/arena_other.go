//go:build !linux

package arena

import (
	"os"
	"unsafe"

	"github.com/huynhanx03/go-statictree/pkg/utils"
)

func platformPageSize() int {
	return os.Getpagesize()
}

// allocate falls back to the Go heap, aligned to a cache line.
func allocate(size, _ int) (*Arena, error) {
	mem := make([]byte, size+cacheLine)
	off := utils.AlignOffset(uintptr(unsafe.Pointer(unsafe.SliceData(mem))), cacheLine)
	return &Arena{
		mem:       mem,
		region:    mem[off : off+size : off+size],
		releaseFn: func([]byte) error { return nil },
	}, nil
}

// adviseHugePages is a no-op: there is no portable huge page advice.
func adviseHugePages([]byte) (bool, error) {
	return false, nil
}
