// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config provides configuration management for the intentGate server.
// It handles loading and parsing YAML configuration files, and provides
// structured access to application settings including server host/port,
// classifier thresholds, model artifact locations, conversation history
// storage, and logging behavior.
package config

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"gopkg.in/yaml.v3"
)

// Config represents the application's configuration, loaded from a YAML file.
type Config struct {
	// Host is the network host/interface on which the API server will bind.
	// Default is empty ("") to bind all interfaces. Use "127.0.0.1" for
	// local-only access.
	Host string `yaml:"host"`

	// Port is the network port on which the API server will listen.
	Port int `yaml:"port"`

	// Debug enables or disables debug-level logging.
	Debug bool `yaml:"debug"`

	// LoggingToFile controls whether application logs are written to
	// rotating files or stdout.
	LoggingToFile bool `yaml:"logging-to-file"`

	// LogDir is the directory rotating log files are written to when
	// LoggingToFile is set.
	LogDir string `yaml:"log-dir"`

	// Classifier holds the intent classification settings.
	Classifier ClassifierConfig `yaml:"classifier"`

	// History configures conversation history persistence.
	History HistoryConfig `yaml:"history"`

	// Prompt configures response prompt selection.
	Prompt PromptConfig `yaml:"prompt"`
}

// ClassifierConfig holds the two-tier classifier settings.
type ClassifierConfig struct {
	// EscalationThreshold is the fast-tier confidence at or above which the
	// semantic tier is skipped. Zero keeps the built-in default.
	EscalationThreshold float64 `yaml:"escalation-threshold"`

	// SemanticThreshold is the semantic tier's own demotion threshold.
	// Zero keeps the built-in default.
	SemanticThreshold float64 `yaml:"semantic-threshold"`

	// SemanticEnabled toggles the semantic tier. When false the engine
	// runs fast-path only.
	SemanticEnabled bool `yaml:"semantic-enabled"`

	// WarmupOnStart loads the semantic tier at startup instead of on the
	// first low-confidence query.
	WarmupOnStart bool `yaml:"warmup-on-start"`

	// ModelPath overrides the default location of the ONNX model file.
	ModelPath string `yaml:"model-path"`

	// VocabPath overrides the default location of the WordPiece vocabulary.
	VocabPath string `yaml:"vocab-path"`

	// SharedLibraryPath overrides the ONNX runtime shared library location.
	SharedLibraryPath string `yaml:"shared-library-path"`

	// CatalogFile optionally replaces the built-in fast route catalog with
	// a YAML catalog on disk.
	CatalogFile string `yaml:"catalog-file"`
}

// HistoryConfig holds conversation history storage settings.
type HistoryConfig struct {
	// Enabled toggles history persistence.
	Enabled bool `yaml:"enabled"`

	// DatabasePath is the SQLite database file. Empty uses an in-process
	// default under the working directory.
	DatabasePath string `yaml:"database-path"`

	// MaxTurns caps how many prior turns a session context includes.
	MaxTurns int `yaml:"max-turns"`
}

// PromptConfig holds response prompt selection settings.
type PromptConfig struct {
	// FallbackAfter is the number of consecutive low-confidence turns after
	// which the normal_qa token budget is tightened.
	FallbackAfter int `yaml:"fallback-after"`
}

// LoadConfig reads YAML from configFile and applies defaults for absent keys.
func LoadConfig(configFile string) (*Config, error) {
	return LoadConfigOptional(configFile, false)
}

// LoadConfigOptional reads YAML from configFile.
// If optional is true and the file is missing or empty, it returns a default
// Config instead of an error.
func LoadConfigOptional(configFile string, optional bool) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		if optional {
			if os.IsNotExist(err) || errors.Is(err, syscall.EISDIR) {
				return defaultConfig(), nil
			}
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if optional && len(data) == 0 {
		return defaultConfig(), nil
	}

	// Set defaults before unmarshal so that absent keys keep defaults.
	cfg := defaultConfig()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Host:   "",
		Port:   8317,
		LogDir: "logs",
		Classifier: ClassifierConfig{
			SemanticEnabled: true,
		},
		History: HistoryConfig{
			Enabled:      true,
			DatabasePath: "intentgate.db",
			MaxTurns:     10,
		},
		Prompt: PromptConfig{
			FallbackAfter: 2,
		},
	}
}

// Validate rejects settings the server cannot run with.
func (cfg *Config) Validate() error {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d", cfg.Port)
	}
	if t := cfg.Classifier.EscalationThreshold; t < 0 || t > 1 {
		return fmt.Errorf("escalation-threshold %v out of range [0,1]", t)
	}
	if t := cfg.Classifier.SemanticThreshold; t < 0 || t > 1 {
		return fmt.Errorf("semantic-threshold %v out of range [0,1]", t)
	}
	if cfg.History.MaxTurns < 0 {
		return fmt.Errorf("history max-turns must not be negative")
	}
	return nil
}
