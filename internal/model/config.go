package model

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Config holds all runtime settings for an extraction run
type Config struct {
	Loader      LoaderConfig      `yaml:"loader" mapstructure:"loader"`
	Parser      ParserConfig      `yaml:"parser" mapstructure:"parser"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// LoaderConfig controls directory enumeration and file reads
type LoaderConfig struct {
	Extension      string  `yaml:"extension" mapstructure:"extension"`               // Matched exactly, without the dot
	ReadWorkers    int     `yaml:"read_workers" mapstructure:"read_workers"`         // Concurrent file reads
	ReadsPerSecond float64 `yaml:"reads_per_second" mapstructure:"reads_per_second"` // 0 disables pacing
	ReadBurst      int     `yaml:"read_burst" mapstructure:"read_burst"`
}

// ParserConfig toggles the opt-in parser behaviours
type ParserConfig struct {
	FlushTrailing    bool `yaml:"flush_trailing" mapstructure:"flush_trailing"`         // Emit unterminated text at end of input
	KeepCodeHeadings bool `yaml:"keep_code_headings" mapstructure:"keep_code_headings"` // Keep '#' lines inside code blocks
}

// ConcurrencyConfig sizes the parse worker pool
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// CacheConfig controls the parse cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Format  string `yaml:"format" mapstructure:"format"` // text, json or html
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Loader: LoaderConfig{
			Extension:   "md",
			ReadWorkers: 4,
			ReadBurst:   8,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 10 * time.Minute,
			DiskTTL:   7 * 24 * time.Hour,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "sentex")
	}
	return filepath.Join(dir, "sentex")
}
