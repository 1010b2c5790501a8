package statictree

import "go.uber.org/zap"

// Config holds construction options shared by every layout. The zero value is
// a valid configuration.
type Config struct {
	// Addressing selects the child numbering of a BTree.
	Addressing Addressing
	// BatchSize is the fixed batch width of a Batch tree. Values <= 0 select
	// DefaultBatchSize.
	BatchSize int
	// BuildWorkers bounds the goroutines used to fill separator layers of the
	// layered trees. Values <= 1 build on the calling goroutine.
	BuildWorkers int
	// DisableHugePages skips the huge page advice on the backing array.
	DisableHugePages bool
	// Logger receives build diagnostics. Nil means no logging.
	Logger *zap.Logger
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.BuildWorkers < 1 {
		c.BuildWorkers = 1
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
