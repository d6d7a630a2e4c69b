package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLogFile   = "data_quality.log"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

type Config struct {
	Log      LogConfig    `yaml:"log"`
	Snapshot string       `yaml:"snapshot"`
	Checks   ChecksConfig `yaml:"checks"`
}

type LogConfig struct {
	File    string `yaml:"file"`
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Console bool   `yaml:"console"`
}

type ChecksConfig struct {
	Completeness    []string `yaml:"completeness"`
	Uniqueness      []string `yaml:"uniqueness"`
	TypeConsistency bool     `yaml:"typeConsistency"`
}

// LoadConfig reads the YAML file at path, applies TABLECHECK_* environment
// overrides and defaults, and validates the result. A relative snapshot path
// is resolved against the directory of the config file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is required")
	}

	_, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	if cfg.Snapshot != "" && !filepath.IsAbs(cfg.Snapshot) {
		cfg.Snapshot = filepath.Join(filepath.Dir(path), cfg.Snapshot)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"TABLECHECK_LOG_FILE":   &c.Log.File,
		"TABLECHECK_LOG_LEVEL":  &c.Log.Level,
		"TABLECHECK_LOG_FORMAT": &c.Log.Format,
		"TABLECHECK_SNAPSHOT":   &c.Snapshot,
	}
	for key, field := range overrides {
		if v := os.Getenv(key); v != "" {
			*field = v
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Log.File == "" {
		c.Log.File = DefaultLogFile
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

func (c *Config) validate() error {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	// Check outcomes are logged at INFO and WARNING; a higher level drops them.
	if level > zapcore.InfoLevel {
		return fmt.Errorf("log.level must be debug or info, got %s", c.Log.Level)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return errors.New("log.format must be console or json")
	}
	if c.Snapshot == "" {
		return errors.New("snapshot is required")
	}
	if len(c.Checks.Completeness) == 0 && len(c.Checks.Uniqueness) == 0 && !c.Checks.TypeConsistency {
		return errors.New("at least one check is required")
	}
	for _, column := range c.Checks.Completeness {
		if column == "" {
			return errors.New("checks.completeness: column name is required")
		}
	}
	for _, column := range c.Checks.Uniqueness {
		if column == "" {
			return errors.New("checks.uniqueness: column name is required")
		}
	}
	return nil
}
