package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Duration       time.Duration `toml:"duration" yaml:"duration"`
	Entities       int           `toml:"entities" yaml:"entities"`
	Teams          int           `toml:"teams" yaml:"teams"`
	ChunkSize      int           `toml:"chunk_size" yaml:"chunk_size"`
	DefectChance   float64       `toml:"defect_chance" yaml:"defect_chance"` // per wounded entity per frame (0.0-1.0)
	Parallel       bool          `toml:"parallel" yaml:"parallel"`
	Seed           int64         `toml:"seed" yaml:"seed"`
	GCPauseMetrics bool          `toml:"gc_pause_metrics" yaml:"gc_pause_metrics"`
	Logging        LoggingConfig `toml:"logging" yaml:"logging"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

// LoadConfig reads a TOML or YAML file, chosen by extension, over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read config %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, eris.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, eris.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Entities < 0 {
		return eris.Errorf("entities must not be negative, got %d", c.Entities)
	}
	if c.Teams <= 0 {
		return eris.Errorf("teams must be positive, got %d", c.Teams)
	}
	if c.ChunkSize <= 0 {
		return eris.Errorf("chunk_size must be positive, got %d", c.ChunkSize)
	}
	if c.DefectChance < 0 || c.DefectChance > 1 {
		return eris.Errorf("defect_chance must be within [0, 1], got %g", c.DefectChance)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		Duration:     10 * time.Second,
		Entities:     10000,
		Teams:        8,
		ChunkSize:    64,
		DefectChance: 0.05,
		Parallel:     true,
		Seed:         1,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func newLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
