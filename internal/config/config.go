// Package config loads bigint.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"bigint/internal/bignum"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = "bigint.toml"

// Config is the decoded, validated configuration. Unset fields keep the
// values from Default.
type Config struct {
	// Path is the file the config was read from; empty when none was found.
	Path  string
	Demo  Demo
	Batch Batch
	Color string
}

// Demo holds the operands of the demo command.
type Demo struct {
	A bignum.BigInt
	B bignum.BigInt
}

// Batch holds defaults for the batch command.
type Batch struct {
	Jobs     int
	FailFast bool
	Format   string
}

type fileConfig struct {
	Demo   demoSection   `toml:"demo"`
	Batch  batchSection  `toml:"batch"`
	Output outputSection `toml:"output"`
}

type demoSection struct {
	A string `toml:"a"`
	B string `toml:"b"`
}

type batchSection struct {
	Jobs     int64  `toml:"jobs"`
	FailFast bool   `toml:"fail_fast"`
	Format   string `toml:"format"`
}

type outputSection struct {
	Color string `toml:"color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Demo: Demo{
			A: bignum.MustParseInt("348975"),
			B: bignum.IntFromInt64(123),
		},
		Batch: Batch{Format: "text"},
		Color: "auto",
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads path when non-empty, otherwise searches from startDir. A
// missing file yields Default without error; an explicit path must exist.
func Load(path, startDir string) (Config, error) {
	if path == "" {
		found, ok, err := Find(startDir)
		if err != nil {
			return Config{}, err
		}
		if !ok {
			return Default(), nil
		}
		path = found
	}
	return LoadFile(path)
}

// LoadFile decodes and validates a single file on top of Default.
func LoadFile(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}

	cfg := Default()
	cfg.Path = path
	if meta.IsDefined("demo", "a") {
		if cfg.Demo.A, err = bignum.ParseInt(strings.TrimSpace(raw.Demo.A)); err != nil {
			return Config{}, fmt.Errorf("%s: [demo].a: %w", path, err)
		}
	}
	if meta.IsDefined("demo", "b") {
		if cfg.Demo.B, err = bignum.ParseInt(strings.TrimSpace(raw.Demo.B)); err != nil {
			return Config{}, fmt.Errorf("%s: [demo].b: %w", path, err)
		}
	}
	if meta.IsDefined("batch", "jobs") {
		jobs, err := safecast.Conv[int](raw.Batch.Jobs)
		if err != nil || jobs < 0 {
			return Config{}, fmt.Errorf("%s: [batch].jobs out of range: %d", path, raw.Batch.Jobs)
		}
		cfg.Batch.Jobs = jobs
	}
	if meta.IsDefined("batch", "fail_fast") {
		cfg.Batch.FailFast = raw.Batch.FailFast
	}
	if meta.IsDefined("batch", "format") {
		switch f := strings.ToLower(strings.TrimSpace(raw.Batch.Format)); f {
		case "text", "json", "msgpack":
			cfg.Batch.Format = f
		default:
			return Config{}, fmt.Errorf("%s: [batch].format must be text|json|msgpack, got %q", path, raw.Batch.Format)
		}
	}
	if meta.IsDefined("output", "color") {
		switch c := strings.ToLower(strings.TrimSpace(raw.Output.Color)); c {
		case "auto", "on", "off":
			cfg.Color = c
		default:
			return Config{}, fmt.Errorf("%s: [output].color must be auto|on|off, got %q", path, raw.Output.Color)
		}
	}
	return cfg, nil
}
