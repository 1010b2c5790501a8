//go:build amd64 || arm64

package statictree

import "unsafe"

// prefetch hints the cache line at addr into L1. It never faults.
//
//go:noescape
func prefetch(addr unsafe.Pointer)
