package hash

import (
	"github.com/cespare/xxhash/v2"

	"github.com/huynhanx03/go-statictree/pkg/utils"
)

// Int32s returns the xxhash64 of the native-endian bytes of s. The slice is
// hashed in place, without copying.
func Int32s(s []int32) uint64 {
	return xxhash.Sum64(utils.Int32SliceToBytes(s))
}
