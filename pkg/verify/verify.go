// Package verify checks a tree against a binary-search oracle over the same
// sorted keys.
package verify

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-statictree/pkg/datastructs/statictree"
)

const (
	// maxReported bounds the mismatches kept per worker; the rest are only counted.
	maxReported = 16
	// cancelCheckEvery is how many queries a worker answers between context checks.
	cancelCheckEvery = 4096
)

// Reference returns the smallest key >= target by binary search, or
// statictree.Sentinel with ok == false when every key is smaller.
func Reference(keys []int32, target int32) (int32, bool) {
	i := sort.Search(len(keys), func(i int) bool { return keys[i] >= target })
	if i < len(keys) {
		return keys[i], true
	}
	return statictree.Sentinel, false
}

// Mismatch is one lookup whose answer differs from the oracle.
type Mismatch struct {
	Target  int32
	Got     int32
	Want    int32
	GotOK   bool
	WantOK  bool
	Batched bool
}

func (m *Mismatch) Error() string {
	path := "LowerBound"
	if m.Batched {
		path = "LowerBoundBatch"
	}
	return fmt.Sprintf("%s(%d) = %d (found=%t), want %d (found=%t)",
		path, m.Target, m.Got, m.GotOK, m.Want, m.WantOK)
}

// Report summarises a Check run.
type Report struct {
	Queries    int  // Lookups compared on the single-query path.
	Batched    int  // Lookups compared on the batch path.
	Found      int  // Queries with a stored lower bound.
	Mismatches int  // All mismatches, including unreported ones.
	Workers    int  // Goroutines used.
	BatchPath  bool // The tree implements statictree.BatchSearcher.
}

// Check answers every query with s, concurrently from up to workers
// goroutines, and compares each answer to Reference over keys. Find is checked
// for the found flag. When s is a statictree.BatchSearcher, whole batches of
// queries are also answered through LowerBoundBatch and compared.
//
// The returned error combines up to a bounded number of *Mismatch values per
// worker, or is the context error if ctx was cancelled first.
func Check(ctx context.Context, s statictree.Searcher, keys, queries []int32, workers int) (Report, error) {
	workers = max(workers, 1)
	bs, batched := s.(statictree.BatchSearcher)
	rep := Report{Workers: workers, BatchPath: batched}

	var found, mismatches, batchedCount atomic.Int64
	reported := make([]error, workers)

	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(queries) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := min(w*chunk, len(queries))
		hi := min(lo+chunk, len(queries))
		g.Go(func() error {
			var errs error
			kept := 0
			record := func(m *Mismatch) {
				mismatches.Add(1)
				if kept < maxReported {
					errs = multierr.Append(errs, m)
					kept++
				}
			}

			for i, target := range queries[lo:hi] {
				if i%cancelCheckEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				want, wantOK := Reference(keys, target)
				got, gotOK := s.Find(target)
				if wantOK {
					found.Add(1)
				}
				if got != want || gotOK != wantOK {
					record(&Mismatch{Target: target, Got: got, Want: want, GotOK: gotOK, WantOK: wantOK})
				}
			}

			if batched {
				n := checkBatches(bs, keys, queries[lo:hi], record)
				batchedCount.Add(int64(n))
			}
			reported[w] = errs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return rep, errors.Wrap(err, "verify: check cancelled")
	}

	rep.Queries = len(queries)
	rep.Found = int(found.Load())
	rep.Mismatches = int(mismatches.Load())
	rep.Batched = int(batchedCount.Load())
	return rep, multierr.Combine(reported...)
}

// checkBatches runs every whole batch of queries through LowerBoundBatch and
// returns the number of queries compared.
func checkBatches(bs statictree.BatchSearcher, keys, queries []int32, record func(*Mismatch)) int {
	w := bs.BatchSize()
	results := make([]int32, w)
	// A Sentinel result is a stored key only when Sentinel itself is stored.
	hasMax := len(keys) > 0 && keys[len(keys)-1] == statictree.Sentinel
	n := 0
	for ; n+w <= len(queries); n += w {
		batch := queries[n : n+w]
		bs.LowerBoundBatch(batch, results)
		for i, target := range batch {
			want, wantOK := Reference(keys, target)
			if got := results[i]; got != want {
				gotOK := got != statictree.Sentinel || hasMax
				record(&Mismatch{Target: target, Got: got, Want: want, GotOK: gotOK, WantOK: wantOK, Batched: true})
			}
		}
	}
	return n
}
