package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if *cfg != *want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	tomlContent := `
[memory]
size = 1024

[samples]
fibonacci_iterations = 500
sort_size = 50

[results]
enabled = true
path = "out.db"

[log]
level = 2
`
	path := filepath.Join(dir, "numvm.toml")
	if err := os.WriteFile(path, []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Memory.Size != 1024 {
		t.Errorf("Memory.Size = %d, want 1024", cfg.Memory.Size)
	}
	if cfg.Samples.FibonacciIterations != 500 {
		t.Errorf("FibonacciIterations = %d, want 500", cfg.Samples.FibonacciIterations)
	}
	if cfg.Samples.SortSize != 50 {
		t.Errorf("SortSize = %d, want 50", cfg.Samples.SortSize)
	}
	if !cfg.Results.Enabled || cfg.Results.Path != "out.db" {
		t.Errorf("Results = %+v, want enabled with path out.db", cfg.Results)
	}
	if cfg.Log.Level != 2 {
		t.Errorf("Log.Level = %d, want 2", cfg.Log.Level)
	}
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "numvm.toml")
	if err := os.WriteFile(path, []byte("not = [valid toml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with malformed TOML: want error, got nil")
	}
}
