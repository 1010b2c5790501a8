package utils

import (
	"unsafe"
)

// BytesToInt32Slice reinterprets b as native-endian int32 values without copying.
// It is the caller's responsibility to ensure 4-byte alignment; trailing bytes
// that do not fill a whole value are ignored.
func BytesToInt32Slice(b []byte) []int32 {
	if len(b) < 4 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/4)
}

// Int32SliceToBytes returns the raw native-endian bytes backing s without copying.
func Int32SliceToBytes(s []int32) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*4)
}
