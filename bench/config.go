package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	lob "github.com/tickerlab/lob-engine"
)

// Config controls one harness run.
type Config struct {
	// Iterations is the number of timed update operations. Read phases run
	// a tenth of this each.
	Iterations int `yaml:"iterations" json:"iterations"`
	// BatchSize is the number of read operations timed per clock sample.
	BatchSize int `yaml:"batch_size" json:"batch_size"`
	// UpdateBatchSize is the number of update operations timed per clock
	// sample.
	UpdateBatchSize int `yaml:"update_batch_size" json:"update_batch_size"`
	// Levels is the number of price levels seeded per side before timing.
	Levels int `yaml:"levels" json:"levels"`
	// Seed drives the churn-phase feed generator.
	Seed int64 `yaml:"seed" json:"seed"`
	// Capacity is the per-side level capacity for capacity-bounded books.
	Capacity int `yaml:"capacity" json:"capacity"`
}

// DefaultConfig returns the stock run shape: 100k timed updates sampled in
// 100k-op batches, reads sampled in 10k-op batches, 100 warmup levels per
// side.
func DefaultConfig() Config {
	return Config{
		Iterations:      100_000,
		BatchSize:       10_000,
		UpdateBatchSize: 100_000,
		Levels:          100,
		Seed:            42,
		Capacity:        lob.DefaultCapacity,
	}
}

// LoadConfig reads a YAML run config. Fields absent from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read bench config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse bench config: %w", err)
	}
	return cfg, nil
}

// withDefaults replaces non-positive fields with their DefaultConfig
// values so a zero Config is runnable.
func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.Iterations <= 0 {
		cfg.Iterations = def.Iterations
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.UpdateBatchSize <= 0 {
		cfg.UpdateBatchSize = def.UpdateBatchSize
	}
	if cfg.Levels <= 0 {
		cfg.Levels = def.Levels
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = def.Capacity
	}
	return cfg
}
