package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-statictree/pkg/dataset"
	"github.com/huynhanx03/go-statictree/pkg/datastructs/statictree"
	"github.com/huynhanx03/go-statictree/pkg/logger"
	"github.com/huynhanx03/go-statictree/pkg/settings"
)

// app carries what every subcommand shares once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	kind       string
	size       int
	workers    int

	cfg settings.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "statictree",
		Short:        "Static search trees over sorted int32 keys",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	f.StringVar(&a.logLevel, "log-level", "", "override logger.log_level")
	f.StringVarP(&a.kind, "kind", "k", "", "override tree.kind")
	f.IntVarP(&a.size, "size", "n", -1, "override dataset.size")
	f.IntVarP(&a.workers, "workers", "w", 0, "override bench.workers")

	root.AddCommand(newGenCmd(a), newCheckCmd(a), newBenchCmd(a))
	return root
}

// setup loads the config file, applies flag overrides, validates and builds
// the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := settings.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logger.LogLevel = a.logLevel
	}
	if flags.Changed("kind") {
		cfg.Tree.Kind = a.kind
	}
	if flags.Changed("size") {
		cfg.Dataset.Size = a.size
	}
	if flags.Changed("workers") {
		cfg.Bench.Workers = a.workers
	}
	if err := settings.Validate(cfg); err != nil {
		return err
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	return nil
}

// keys returns the configured key set: the file at dataset.path, or a seeded
// sorted sample of dataset.size keys.
func (a *app) keys() ([]int32, error) {
	ds := a.cfg.Dataset
	if ds.Path == "" {
		keys := dataset.GenerateSorted(ds.Size, ds.Seed)
		a.log.Info("keys generated", zap.Int("keys", len(keys)), zap.Uint64("seed", ds.Seed))
		return keys, nil
	}

	keys, err := dataset.ReadFile(ds.Path)
	if err != nil {
		return nil, err
	}
	if err := dataset.CheckSorted(keys); err != nil {
		return nil, errors.Wrap(err, ds.Path)
	}
	a.log.Info("keys loaded",
		zap.String("path", ds.Path),
		zap.Int("keys", len(keys)),
		zap.Uint64("checksum", dataset.Checksum(keys)))
	return keys, nil
}

// treeConfig maps the tree section onto construction options.
func (a *app) treeConfig() statictree.Config {
	t := a.cfg.Tree
	return statictree.Config{
		BatchSize:        t.BatchSize,
		BuildWorkers:     t.BuildWorkers,
		DisableHugePages: t.DisableHugePages,
		Logger:           a.log,
	}
}

// build constructs the tree named by kind and logs its layout.
func (a *app) build(kind statictree.Kind, keys []int32) (statictree.Searcher, error) {
	tree, err := statictree.New(kind, keys, a.treeConfig())
	if err != nil {
		return nil, err
	}
	s := tree.Stats()
	a.log.Info("tree built",
		zap.String("kind", string(s.Kind)),
		zap.Int("keys", s.Keys),
		zap.Int("layers", s.Layers),
		zap.Int("blocks", s.Blocks),
		zap.Int("allocated", s.Allocated),
		zap.Bool("huge_pages", s.HugePages),
		zap.Float64("occupancy", s.Occupancy))
	return tree, nil
}

// kinds returns every layout when all is set, the configured one otherwise.
func (a *app) kinds(all bool) ([]statictree.Kind, error) {
	if all {
		return statictree.Kinds(), nil
	}
	k, err := statictree.ParseKind(a.cfg.Tree.Kind)
	if err != nil {
		return nil, err
	}
	return []statictree.Kind{k}, nil
}
