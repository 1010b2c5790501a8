// Package dataset produces the sorted int32 key sets the trees are built over:
// seeded uniform generation and flat files of native-endian int32 values.
package dataset

import (
	"io"
	"math/rand/v2"
	"os"
	"slices"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-statictree/pkg/hash"
	"github.com/huynhanx03/go-statictree/pkg/utils"
)

const keySize = 4

// Generate returns n keys drawn uniformly from [0, MaxInt32]. The same seed
// always yields the same keys.
func Generate(n int, seed uint64) []int32 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	keys := make([]int32, n)
	for i := range keys {
		keys[i] = int32(rng.Uint32() >> 1)
	}
	return keys
}

// GenerateSorted returns Generate(n, seed) sorted ascending.
func GenerateSorted(n int, seed uint64) []int32 {
	keys := Generate(n, seed)
	slices.Sort(keys)
	return keys
}

// CheckSorted returns an error wrapping ErrUnsorted naming the first position
// whose key is smaller than its predecessor.
func CheckSorted(keys []int32) error {
	for i := 1; i < len(keys); i++ {
		if keys[i] < keys[i-1] {
			return errors.Wrapf(ErrUnsorted, "keys[%d]=%d < keys[%d]=%d", i, keys[i], i-1, keys[i-1])
		}
	}
	return nil
}

// Checksum returns the xxhash64 of the keys' native-endian bytes.
func Checksum(keys []int32) uint64 {
	return hash.Int32s(keys)
}

// WriteFile stores keys as a flat array of native-endian int32 values.
func WriteFile(path string, keys []int32) error {
	if err := os.WriteFile(path, utils.Int32SliceToBytes(keys), 0o644); err != nil {
		return errors.Wrapf(err, "dataset: write %s", path)
	}
	return nil
}

// ReadFile loads a file written by WriteFile. The keys are read straight into
// an []int32 so the result is correctly aligned.
func ReadFile(path string) ([]int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: stat %s", path)
	}
	size := info.Size()
	switch {
	case size == 0:
		return nil, errors.Wrap(ErrEmptyFile, path)
	case size%keySize != 0:
		return nil, errors.Wrapf(ErrMisaligned, "%s: %d bytes", path, size)
	}

	keys := make([]int32, size/keySize)
	if _, err := io.ReadFull(f, utils.Int32SliceToBytes(keys)); err != nil {
		return nil, errors.Wrapf(err, "dataset: read %s", path)
	}
	return keys, nil
}
