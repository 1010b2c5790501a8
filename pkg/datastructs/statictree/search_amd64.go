package statictree

import "golang.org/x/sys/cpu"

var hasAVX2 = cpu.X86.HasAVX2

// firstGEAVX2 compares all 16 keys against target with two 8-lane compares.
//
//go:noescape
func firstGEAVX2(block *[BlockLen]int32, target int32) int

func firstGE(block *[BlockLen]int32, target int32) int {
	if hasAVX2 {
		return firstGEAVX2(block, target)
	}
	return firstGEGeneric(block, target)
}
