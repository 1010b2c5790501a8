//go:build !amd64

package statictree

func firstGE(block *[BlockLen]int32, target int32) int {
	return firstGEGeneric(block, target)
}
