package settings

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Default returns the configuration used when no file overrides a value.
func Default() Config {
	return Config{
		Logger: Logger{
			LogLevel:   "info",
			MaxBackups: 3,
			MaxAge:     28,
			MaxSize:    100,
		},
		Tree: Tree{
			Kind:         "bplus-batch",
			BatchSize:    16,
			BuildWorkers: 1,
		},
		Dataset: Dataset{
			Size: 1 << 20,
			Seed: 1,
		},
		Bench: Bench{
			Queries:    1 << 20,
			Iterations: 5,
			Workers:    1,
			Seed:       2,
		},
	}
}

// Load reads a YAML file over Default and validates the result. An empty path
// yields the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "settings: read %s", path)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "settings: parse %s", path)
		}
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section's constraints.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "settings: invalid config")
	}
	return nil
}
