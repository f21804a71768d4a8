// Package config handles numvm.toml benchmark driver configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// BenchConfig configures one invocation of the benchmark driver.
type BenchConfig struct {
	Memory  MemoryConfig  `toml:"memory"`
	Samples SamplesConfig `toml:"samples"`
	Results ResultsConfig `toml:"results"`
	Log     LogConfig     `toml:"log"`
}

// MemoryConfig sizes the Context shared by all three backends.
type MemoryConfig struct {
	Size int `toml:"size"`
}

// SamplesConfig controls the inputs to the two reference programs.
type SamplesConfig struct {
	FibonacciIterations int `toml:"fibonacci_iterations"`
	SortSize            int `toml:"sort_size"`
}

// ResultsConfig controls whether and where timing rows are persisted.
type ResultsConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// LogConfig holds a commonlog verbosity level. cmd/benchrun loads it but
// does not pass it to commonlog.
type LogConfig struct {
	Level int `toml:"level"`
}

// Default returns the configuration used when no numvm.toml is present.
func Default() *BenchConfig {
	return &BenchConfig{
		Memory: MemoryConfig{Size: 65536},
		Samples: SamplesConfig{
			FibonacciIterations: 1000,
			SortSize:            100,
		},
		Results: ResultsConfig{
			Enabled: false,
			Path:    "numvm-results.db",
		},
		Log: LogConfig{Level: 1},
	}
}

// Load parses path, falling back to Default() for any field the file
// doesn't set and for the whole config if path doesn't exist.
func Load(path string) (*BenchConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: cannot read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse error in %s: %w", path, err)
	}
	return cfg, nil
}
