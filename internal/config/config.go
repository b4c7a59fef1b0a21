// Package config loads analyzer settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hn275/vigenere-cryptanalysis/corpus"
	"github.com/hn275/vigenere-cryptanalysis/ioc"
	"github.com/hn275/vigenere-cryptanalysis/keylen"
)

// DefaultCiphertext is analyzed when neither the config file nor the command
// line supplies one.
const DefaultCiphertext = "COTKXNHWJGXABFZPKGJCWGHMYQGEBJYBGQXJIRDCVLVPPWNKSIPXAMTKUQFHQJDKVBGAETTEOGFTSTJVKHKITSLOZYYBANBZALLPIMTKHCMBCTYHPQZNQUPKJFYPPEXDXFGUQMYWEEDXFMOQRECYQVSHDNBMCAXNRZWNTNTJQKEHEXFCKMYSVFHRZVWUSIJOVCOUSKPBKFPRRQKPFNZCRXNTTWKGSEUBMZXURCQEEPPOKWNSHGEPLFKQLATMWMKQBPKSELDVYVPFAWZSMDBMEFNERSXWRGGMBEXDSFDIQRPIGNZTPTZACHHQDTTASREJDLTFLSJLGKJPJKUXIAGNMIAEUFNKVOGVPBXUOHFBIYQLMRZEJOGHQFSYOUUXBWVCBLFLUDGXJCEXEWQZOHZMLAK"

// Environment variables that override file values.
const (
	EnvCiphertext = "VIGENERE_CIPHERTEXT"
	EnvTargetIoC  = "VIGENERE_TARGET_IOC"
	EnvLogLevel   = "VIGENERE_LOG_LEVEL"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all analyzer settings.
type Config struct {
	// Ciphertext is the literal input. Ignored when CiphertextFile is set.
	Ciphertext string `yaml:"ciphertext"`

	// CiphertextFile names a file to read the input from; "-" means stdin.
	CiphertextFile string `yaml:"ciphertext_file"`

	Detection   DetectionConfig   `yaml:"detection"`
	Enumeration EnumerationConfig `yaml:"enumeration"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// DetectionConfig configures key-length selection.
type DetectionConfig struct {
	// TargetIoC overrides the reference IoC; nil keeps the strategy default.
	TargetIoC *float64 `yaml:"target_ioc,omitempty"`
	MinLength int      `yaml:"min_length"`
	MaxLength int      `yaml:"max_length"`
	Mode      string   `yaml:"mode"`     // contiguous, interleaved
	Strategy  string   `yaml:"strategy"` // sum-of-squares, column-average
}

// Target returns the reference IoC the detection runs against: TargetIoC
// when set, otherwise the default for Strategy.
func (d DetectionConfig) Target() float64 {
	if d.TargetIoC != nil {
		return *d.TargetIoC
	}
	if s, err := keylen.ParseStrategy(d.Strategy); err == nil && s == keylen.ColumnAverage {
		return ioc.EnglishStream
	}

	return ioc.English
}

// EnumerationConfig configures the key-space sweep.
type EnumerationConfig struct {
	// MaxKeyLength refuses sweeps above this length unless forced.
	MaxKeyLength int `yaml:"max_key_length"`

	// Limit caps visited keys; 0 means no cap.
	Limit uint64 `yaml:"limit"`

	// ProgressEvery logs progress every N keys; 0 disables it.
	ProgressEvery uint64 `yaml:"progress_every"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Ciphertext: DefaultCiphertext,
		Detection: DetectionConfig{
			MinLength: keylen.DefaultMinLength,
			MaxLength: keylen.DefaultMaxLength,
			Mode:      corpus.Contiguous.String(),
			Strategy:  keylen.SumOfSquares.String(),
		},
		Enumeration: EnumerationConfig{
			MaxKeyLength:  4,
			ProgressEvery: 1_000_000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults.
// A missing file yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// Return defaults if config file doesn't exist
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvCiphertext); v != "" {
		c.Ciphertext = v
		c.CiphertextFile = ""
	}
	if v := os.Getenv(EnvTargetIoC); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTargetIoC, err)
		}
		c.Detection.TargetIoC = &f
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}

	return nil
}

// Validate checks the configuration for values the analyzer cannot run with.
func (c *Config) Validate() error {
	d := c.Detection
	if d.MinLength < 1 || d.MaxLength < d.MinLength {
		return fmt.Errorf("%w: detection range %d..%d", ErrInvalidConfig, d.MinLength, d.MaxLength)
	}
	if t := d.TargetIoC; t != nil && (math.IsNaN(*t) || math.IsInf(*t, 0) || *t <= 0) {
		return fmt.Errorf("%w: target_ioc %v", ErrInvalidConfig, *t)
	}
	if _, err := corpus.ParseMode(d.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := keylen.ParseStrategy(d.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Enumeration.MaxKeyLength < 1 {
		return fmt.Errorf("%w: enumeration.max_key_length %d", ErrInvalidConfig, c.Enumeration.MaxKeyLength)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}

	return nil
}

// DetectionOptions translates the detection section into keylen options.
// Validate must have succeeded first.
func (c *Config) DetectionOptions() []keylen.Option {
	mode, _ := corpus.ParseMode(c.Detection.Mode)
	strategy, _ := keylen.ParseStrategy(c.Detection.Strategy)
	opts := []keylen.Option{
		keylen.WithRange(c.Detection.MinLength, c.Detection.MaxLength),
		keylen.WithMode(mode),
		keylen.WithStrategy(strategy),
	}
	if c.Detection.TargetIoC != nil {
		opts = append(opts, keylen.WithTarget(*c.Detection.TargetIoC))
	}

	return opts
}

// ReadCiphertext returns the normalized input: the file contents when
// CiphertextFile is set (stdin for "-"), the literal Ciphertext otherwise.
func (c *Config) ReadCiphertext(stdin io.Reader) (string, error) {
	raw := c.Ciphertext
	switch c.CiphertextFile {
	case "":
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read ciphertext from stdin: %w", err)
		}
		raw = string(data)
	default:
		data, err := os.ReadFile(c.CiphertextFile)
		if err != nil {
			return "", fmt.Errorf("failed to read ciphertext: %w", err)
		}
		raw = string(data)
	}

	return corpus.Normalize(raw)
}
