package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-statictree/pkg/dataset"
)

func newGenCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a sorted random key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				return errors.New("gen: --out is required")
			}
			ds := a.cfg.Dataset
			keys := dataset.GenerateSorted(ds.Size, ds.Seed)
			if err := dataset.WriteFile(out, keys); err != nil {
				return err
			}
			a.log.Info("key file written",
				zap.String("path", out),
				zap.Int("keys", len(keys)),
				zap.Uint64("checksum", dataset.Checksum(keys)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path")
	return cmd
}
