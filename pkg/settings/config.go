package settings

// Config is the root configuration of the statictree tool.
type Config struct {
	Logger  Logger  `mapstructure:"logger" yaml:"logger"`
	Tree    Tree    `mapstructure:"tree" yaml:"tree"`
	Dataset Dataset `mapstructure:"dataset" yaml:"dataset"`
	Bench   Bench   `mapstructure:"bench" yaml:"bench"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age" validate:"gte=0"`   // Days
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// Tree is the configuration for tree construction
type Tree struct {
	Kind             string `mapstructure:"kind" yaml:"kind" validate:"oneof=btree btree-eytzinger bplus bplus-batch"`
	BatchSize        int    `mapstructure:"batch_size" yaml:"batch_size" validate:"gte=1"`
	BuildWorkers     int    `mapstructure:"build_workers" yaml:"build_workers" validate:"gte=1"`
	DisableHugePages bool   `mapstructure:"disable_huge_pages" yaml:"disable_huge_pages"`
}

// Dataset is the configuration for the key set. Keys are read from Path when
// it is set, generated from Size and Seed otherwise.
type Dataset struct {
	Path string `mapstructure:"path" yaml:"path"`
	Size int    `mapstructure:"size" yaml:"size" validate:"gte=0"`
	Seed uint64 `mapstructure:"seed" yaml:"seed"`
}

// Bench is the configuration for query runs
type Bench struct {
	Queries    int    `mapstructure:"queries" yaml:"queries" validate:"gte=1"`
	Iterations int    `mapstructure:"iterations" yaml:"iterations" validate:"gte=1"`
	Workers    int    `mapstructure:"workers" yaml:"workers" validate:"gte=1"`
	Seed       uint64 `mapstructure:"seed" yaml:"seed"`
}
