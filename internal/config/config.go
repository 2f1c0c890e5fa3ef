// File: internal/config/config.go
package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/xkilldash9x/typogen/internal/typo"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Typo() typo.Config
	Batch() BatchConfig
	Database() DatabaseConfig
	Output() OutputConfig
	Corpus() CorpusConfig

	// Typo Setters
	SetTypoConfig(tc typo.Config)

	// Batch Setters
	SetBatchWorkers(int)
	SetBatchVariants(int)
	SetBatchSeed(int64)

	// Output Setters
	SetOutputFormat(string)
	SetOutputPath(string)
}

// Config holds the entire application configuration.
// Fields are exported so viper can unmarshal into them; consumers go through
// the Interface getters.
type Config struct {
	LoggerCfg   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	TypoCfg     typo.Config    `mapstructure:"typo" yaml:"typo"`
	BatchCfg    BatchConfig    `mapstructure:"batch" yaml:"batch"`
	DatabaseCfg DatabaseConfig `mapstructure:"database" yaml:"database"`
	OutputCfg   OutputConfig   `mapstructure:"output" yaml:"output"`
	CorpusCfg   CorpusConfig   `mapstructure:"corpus" yaml:"corpus"`
}

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig     { return c.LoggerCfg }
func (c *Config) Typo() typo.Config        { return c.TypoCfg }
func (c *Config) Batch() BatchConfig       { return c.BatchCfg }
func (c *Config) Database() DatabaseConfig { return c.DatabaseCfg }
func (c *Config) Output() OutputConfig     { return c.OutputCfg }
func (c *Config) Corpus() CorpusConfig     { return c.CorpusCfg }

// --- Interface Method Implementations (Setters) ---

func (c *Config) SetTypoConfig(tc typo.Config) { c.TypoCfg = tc }

func (c *Config) SetBatchWorkers(n int)   { c.BatchCfg.Workers = n }
func (c *Config) SetBatchVariants(n int)  { c.BatchCfg.Variants = n }
func (c *Config) SetBatchSeed(seed int64) { c.BatchCfg.Seed = seed }

func (c *Config) SetOutputFormat(f string) { c.OutputCfg.Format = f }
func (c *Config) SetOutputPath(p string)   { c.OutputCfg.Path = p }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// BatchConfig configures corpus augmentation runs.
type BatchConfig struct {
	Workers  int `mapstructure:"workers" yaml:"workers"`
	Variants int `mapstructure:"variants" yaml:"variants"`
	// RateLimit caps processed samples per second; 0 disables the cap.
	RateLimit float64 `mapstructure:"rate_limit" yaml:"rate_limit"`
	// Seed makes a run reproducible when non-zero.
	Seed int64 `mapstructure:"seed" yaml:"seed"`
}

// DatabaseConfig holds the database connection details.
type DatabaseConfig struct {
	URL string `mapstructure:"url" yaml:"url"`
}

// OutputConfig selects how results are written.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
	Path   string `mapstructure:"path" yaml:"path"`
}

// CorpusConfig points at an input corpus. An empty path selects the built-in samples.
type CorpusConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// Supported output formats.
var outputFormats = map[string]bool{"text": true, "jsonl": true, "yaml": true}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "typogen")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")

	// -- Typo --
	setTypoDefaults(v)

	// -- Batch --
	v.SetDefault("batch.workers", 4)
	v.SetDefault("batch.variants", 1)
	v.SetDefault("batch.rate_limit", 0.0)
	v.SetDefault("batch.seed", 0)

	// -- Output --
	v.SetDefault("output.format", "text")
	v.SetDefault("output.path", "")

	// -- Corpus --
	v.SetDefault("corpus.path", "")
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config

	// Bind environment variables for sensitive data
	_ = v.BindEnv("database.url", "TYPOGEN_DATABASE_URL")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// expandPaths resolves "~" in user-supplied file paths.
func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.LoggerCfg.LogFile, &c.OutputCfg.Path, &c.CorpusCfg.Path} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("could not resolve path '%s': %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

// Validate checks the configuration for required fields and sane values.
// Typo rates are deliberately not range checked; see typo.Config.
func (c *Config) Validate() error {
	if err := c.BatchCfg.Validate(); err != nil {
		return fmt.Errorf("batch configuration invalid: %w", err)
	}
	format := strings.ToLower(c.OutputCfg.Format)
	if !outputFormats[format] {
		return fmt.Errorf("output.format must be one of text, jsonl, yaml (got %q)", c.OutputCfg.Format)
	}
	c.OutputCfg.Format = format
	return nil
}

// Validate checks the BatchConfig settings.
func (b *BatchConfig) Validate() error {
	if b.Workers <= 0 {
		return fmt.Errorf("batch.workers must be a positive integer")
	}
	if b.Variants <= 0 {
		return fmt.Errorf("batch.variants must be a positive integer")
	}
	if b.RateLimit < 0 {
		return fmt.Errorf("batch.rate_limit must not be negative")
	}
	return nil
}
