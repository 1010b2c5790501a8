package utils

// IsPowerOfTwo reports whether the given n is a power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// CeilDiv returns ceil(n / d) for n >= 0 and d > 0.
func CeilDiv(n, d int) int {
	return (n + d - 1) / d
}

// RoundUp rounds n up to the next multiple of align. align must be a power of two.
func RoundUp(n, align int) int {
	if !IsPowerOfTwo(align) {
		panic("utils: alignment is not a power of two")
	}
	return (n + align - 1) &^ (align - 1)
}

// AlignOffset returns how many bytes must be skipped from addr to reach the
// next multiple of align. align must be a power of two.
func AlignOffset(addr uintptr, align int) int {
	a := uintptr(align)
	return int((a - addr&(a-1)) & (a - 1))
}
