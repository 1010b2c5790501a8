package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-statictree/pkg/dataset"
	"github.com/huynhanx03/go-statictree/pkg/verify"
)

func newCheckCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare tree lookups with binary search",
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
			queries := dataset.Generate(a.cfg.Bench.Queries, a.cfg.Bench.Seed)

			var failed error
			for _, kind := range kinds {
				tree, err := a.build(kind, keys)
				if err != nil {
					return err
				}
				before := tree.Fingerprint()
				rep, checkErr := verify.Check(cmd.Context(), tree, keys, queries, a.cfg.Bench.Workers)
				if after := tree.Fingerprint(); after != before {
					checkErr = multierr.Append(checkErr,
						errors.Errorf("%s: backing array changed during lookups", kind))
				}
				_ = tree.Close()

				fmt.Fprintf(cmd.OutOrStdout(), "%-16s queries=%d batched=%d found=%d mismatches=%d\n",
					kind, rep.Queries, rep.Batched, rep.Found, rep.Mismatches)
				if checkErr != nil {
					a.log.Error("check failed", zap.String("kind", string(kind)), zap.Error(checkErr))
					failed = multierr.Append(failed, errors.Wrapf(checkErr, "%s", kind))
				}
			}
			return failed
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "check every tree kind")
	return cmd
}
