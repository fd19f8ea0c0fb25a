package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	BoardsDir        string        `json:"boards_dir"`
	RandomMaxSize    int           `json:"random_max_size"`
	RandomDensity    float64       `json:"random_density"`
	UseParallel      bool          `json:"use_parallel"`
	UseMemoryPool    bool          `json:"use_memory_pool"`
	StopWhenStable   bool          `json:"stop_when_stable"`
	ShowStats        bool          `json:"show_stats"`
	DefaultFrameRate time.Duration `json:"default_frame_rate"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		BoardsDir:        "boards",
		RandomMaxSize:    50,
		RandomDensity:    0.5,
		UseParallel:      false,
		UseMemoryPool:    true,
		StopWhenStable:   false,
		ShowStats:        false,
		DefaultFrameRate: 100 * time.Millisecond,
	}
}

// Validate checks that the configuration values are usable
func (c Config) Validate() error {
	if c.RandomMaxSize < 1 {
		return errors.Errorf("[Validate] random_max_size must be at least 1, got %d", c.RandomMaxSize)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	}
	if c.DefaultFrameRate < 0 {
		return errors.Errorf("[Validate] default_frame_rate must not be negative, got %v", c.DefaultFrameRate)
	}
	return nil
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}
