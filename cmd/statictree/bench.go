package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-statictree/pkg/dataset"
	"github.com/huynhanx03/go-statictree/pkg/datastructs/statictree"
	"github.com/huynhanx03/go-statictree/pkg/runtime"
)

// benchResult is the best of the configured iterations for one tree and path.
type benchResult struct {
	kind    statictree.Kind
	path    string
	best    time.Duration
	queries int
	sink    int32
}

func (r benchResult) nsPerQuery() float64 {
	return float64(r.best.Nanoseconds()) / float64(r.queries)
}

func (r benchResult) mqps() float64 {
	return float64(r.queries) / r.best.Seconds() / 1e6
}

func newBenchCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure lookup latency and throughput",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keys, err := a.keys()
			if err != nil {
				return err
			}
			kinds, err := a.kinds(all)
			if err != nil {
				return err
			}
			b := a.cfg.Bench
			queries := dataset.Generate(b.Queries, b.Seed)

			var results []benchResult
			for _, kind := range kinds {
				tree, err := a.build(kind, keys)
				if err != nil {
					return err
				}
				rs, err := a.benchTree(cmd.Context(), tree, queries)
				_ = tree.Close()
				if err != nil {
					return err
				}
				results = append(results, rs...)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tPATH\tWORKERS\tNS/QUERY\tMQPS\tSINK")
			for _, r := range results {
				fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\t%d\n",
					r.kind, r.path, b.Workers, r.nsPerQuery(), r.mqps(), r.sink)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "benchmark every tree kind")
	return cmd
}

// benchTree times the single-query path and, for batch trees, the batch path.
func (a *app) benchTree(ctx context.Context, tree statictree.Searcher, queries []int32) ([]benchResult, error) {
	kind := tree.Stats().Kind
	single := func(part []int32) int32 {
		var sink int32
		for _, q := range part {
			sink ^= tree.LowerBound(q)
		}
		return sink
	}

	r, err := a.measure(ctx, kind, "single", queries, single)
	if err != nil {
		return nil, err
	}
	out := []benchResult{r}

	bs, ok := tree.(statictree.BatchSearcher)
	if !ok {
		return out, nil
	}
	batch := func(part []int32) int32 {
		width := bs.BatchSize()
		results := make([]int32, width)
		var sink int32
		i := 0
		for ; i+width <= len(part); i += width {
			bs.LowerBoundBatch(part[i:i+width], results)
			for _, k := range results {
				sink ^= k
			}
		}
		for ; i < len(part); i++ {
			sink ^= bs.LowerBound(part[i])
		}
		return sink
	}
	r, err = a.measure(ctx, kind, fmt.Sprintf("batch/%d", bs.BatchSize()), queries, batch)
	if err != nil {
		return nil, err
	}
	return append(out, r), nil
}

// measure runs fn over queries split across bench.workers goroutines,
// bench.iterations times, and keeps the fastest wall-clock run.
func (a *app) measure(ctx context.Context, kind statictree.Kind, path string, queries []int32, fn func([]int32) int32) (benchResult, error) {
	b := a.cfg.Bench
	res := benchResult{kind: kind, path: path, queries: len(queries), best: time.Duration(1<<63 - 1)}
	chunk := (len(queries) + b.Workers - 1) / b.Workers
	sinks := make([]int32, b.Workers)

	for it := 0; it < b.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		var g errgroup.Group
		start := runtime.NanoTime()
		for w := 0; w < b.Workers; w++ {
			lo := min(w*chunk, len(queries))
			hi := min(lo+chunk, len(queries))
			g.Go(func() error {
				sinks[w] = fn(queries[lo:hi])
				return nil
			})
		}
		_ = g.Wait()
		elapsed := runtime.Since(start)
		if elapsed < res.best {
			res.best = elapsed
		}
		a.log.Debug("bench iteration",
			zap.String("kind", string(kind)),
			zap.String("path", path),
			zap.Int("iteration", it),
			zap.Duration("elapsed", elapsed))
	}
	for _, s := range sinks {
		res.sink ^= s
	}
	return res, nil
}
