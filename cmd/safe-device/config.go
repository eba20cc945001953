package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/safebox-project/safebox-go/pkg/safe"
)

// Config holds the device configuration.
type Config struct {
	ConfigFile     string
	Name           string
	Image          string
	Size           int
	MasterPassword string
	EventLog       string
	LogLevel       string
	Sync           bool
	Interactive    bool
}

// fileConfig is the YAML representation of Config.
type fileConfig struct {
	Name           string `yaml:"name"`
	Image          string `yaml:"image"`
	Size           int    `yaml:"size"`
	MasterPassword string `yaml:"master_password"`
	EventLog       string `yaml:"event_log"`
	LogLevel       string `yaml:"log_level"`
	Sync           *bool  `yaml:"sync"`
}

const (
	defaultImage = "safe.img"
	defaultSize  = 1024
)

// loadConfigFile reads a YAML configuration file.
func loadConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

// mergeConfig applies file values to cfg. Flags named in explicit win over
// the file.
func mergeConfig(cfg *Config, fc *fileConfig, explicit map[string]bool) {
	if fc.Name != "" && !explicit["name"] {
		cfg.Name = fc.Name
	}
	if fc.Image != "" && !explicit["image"] {
		cfg.Image = fc.Image
	}
	if fc.Size != 0 && !explicit["size"] {
		cfg.Size = fc.Size
	}
	if fc.MasterPassword != "" && !explicit["master-password"] {
		cfg.MasterPassword = fc.MasterPassword
	}
	if fc.EventLog != "" && !explicit["event-log"] {
		cfg.EventLog = fc.EventLog
	}
	if fc.LogLevel != "" && !explicit["log-level"] {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.Sync != nil && !explicit["sync"] {
		cfg.Sync = *fc.Sync
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Size < safe.AddrCode {
		return fmt.Errorf("image size must be at least %d bytes, got %d", safe.AddrCode, cfg.Size)
	}
	if cfg.MasterPassword == "" {
		return errors.New("master password must not be empty")
	}
	if len(cfg.MasterPassword) > safe.MaxCodeLength {
		return fmt.Errorf("master password longer than %d characters", safe.MaxCodeLength)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		return fmt.Errorf("unknown log level: %s", cfg.LogLevel)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Image == "" {
		cfg.Image = defaultImage
	}
	if cfg.Name == "" {
		cfg.Name = "safe"
	}
}
