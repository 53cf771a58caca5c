// Package config loads textanalyzer.toml into an explicit Config that is
// passed to constructors; nothing in the module reads global settings.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"textanalyzer/internal/scanner"
	"textanalyzer/internal/stats"
)

// FileName is the file Discover looks for.
const FileName = "textanalyzer.toml"

// DefaultMaxFileSize is 100 MiB.
const DefaultMaxFileSize int64 = 100 << 20

// Config mirrors the TOML layout.
type Config struct {
	Scanner  ScannerConfig  `toml:"scanner"`
	Stats    StatsConfig    `toml:"stats"`
	Input    InputConfig    `toml:"input"`
	Parallel ParallelConfig `toml:"parallel"`
	Output   OutputConfig   `toml:"output"`

	// Path is the file the config came from, empty for defaults.
	Path string `toml:"-"`
}

type ScannerConfig struct {
	BufferSize     int    `toml:"buffer_size"`
	MaxTokenLength int    `toml:"max_token_length"`
	Words          string `toml:"words"`
	Numbers        string `toml:"numbers"`
	EmitSpace      bool   `toml:"emit_space"`
}

type StatsConfig struct {
	Normalize string `toml:"normalize"`
	NFC       bool   `toml:"nfc"`
}

type InputConfig struct {
	MaxFileSize int64 `toml:"max_file_size"` // 0: без ограничения
}

type ParallelConfig struct {
	Jobs         int   `toml:"jobs"` // 0: по числу CPU
	MinChunkSize int64 `toml:"min_chunk_size"`
}

type OutputConfig struct {
	Top int `toml:"top"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scanner: ScannerConfig{
			BufferSize:     scanner.DefaultBufferSize,
			MaxTokenLength: scanner.DefaultMaxTokenLength,
			Words:          scanner.WordsLetters.String(),
			Numbers:        scanner.NumbersSplit.String(),
		},
		Stats: StatsConfig{
			Normalize: stats.NormalizeLower.String(),
		},
		Input: InputConfig{MaxFileSize: DefaultMaxFileSize},
		Parallel: ParallelConfig{
			Jobs:         0,
			MinChunkSize: 1 << 20,
		},
		Output: OutputConfig{Top: 10},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
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

// Discover loads the nearest FileName above startDir, or Default if none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks ranges and enum values.
func (c Config) Validate() error {
	if c.Scanner.BufferSize < 0 {
		return errors.New("[scanner].buffer_size must be >= 0")
	}
	if c.Scanner.MaxTokenLength < 0 {
		return errors.New("[scanner].max_token_length must be >= 0")
	}
	if _, err := scanner.ParseWordClass(c.Scanner.Words); err != nil {
		return fmt.Errorf("[scanner].words: %w", err)
	}
	if _, err := scanner.ParseNumberMode(c.Scanner.Numbers); err != nil {
		return fmt.Errorf("[scanner].numbers: %w", err)
	}
	if _, err := stats.ParseNormalizeMode(c.Stats.Normalize); err != nil {
		return fmt.Errorf("[stats].normalize: %w", err)
	}
	if c.Input.MaxFileSize < 0 {
		return errors.New("[input].max_file_size must be >= 0")
	}
	if c.Parallel.Jobs < 0 {
		return errors.New("[parallel].jobs must be >= 0")
	}
	if c.Parallel.MinChunkSize < 0 {
		return errors.New("[parallel].min_chunk_size must be >= 0")
	}
	if c.Output.Top < 0 {
		return errors.New("[output].top must be >= 0")
	}
	return nil
}

// ScannerOptions converts the [scanner] section. Call after Validate.
func (c Config) ScannerOptions() scanner.Options {
	words, _ := scanner.ParseWordClass(c.Scanner.Words)
	numbers, _ := scanner.ParseNumberMode(c.Scanner.Numbers)
	return scanner.Options{
		BufferSize:     c.Scanner.BufferSize,
		MaxTokenLength: c.Scanner.MaxTokenLength,
		Words:          words,
		Numbers:        numbers,
		EmitSpace:      c.Scanner.EmitSpace,
	}
}

// StatsOptions converts the [stats] section. Call after Validate.
func (c Config) StatsOptions() stats.Options {
	mode, _ := stats.ParseNormalizeMode(c.Stats.Normalize)
	return stats.Options{Normalize: mode, NFC: c.Stats.NFC}
}

// Jobs resolves [parallel].jobs, 0 meaning one per CPU.
func (c Config) Jobs() int {
	if c.Parallel.Jobs > 0 {
		return c.Parallel.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

// Encode writes the configuration as TOML.
func (c Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
