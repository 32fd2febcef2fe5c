// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package config manages the TOML config for tagcloud.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/tagcloud/internal/utils"
	"github.com/bastiangx/tagcloud/pkg/cloud"
	"github.com/bastiangx/tagcloud/pkg/document"
	"github.com/charmbracelet/log"
)

// AppDir is the directory name used under the user's config dir.
const AppDir = "tagcloud"

// Config holds the entire config structure
type Config struct {
	Cloud  CloudConfig  `toml:"cloud"`
	HTML   HTMLConfig   `toml:"html"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// CloudConfig controls selection and font scaling.
type CloudConfig struct {
	MinFont     int `toml:"min_font"`
	MaxFont     int `toml:"max_font"`
	DefaultSize int `toml:"default_size"`
}

// HTMLConfig holds page options.
type HTMLConfig struct {
	Stylesheet string `toml:"stylesheet"`
}

// ServerConfig has IPC server limits.
type ServerConfig struct {
	MaxWords     int `toml:"max_words"`
	MaxTextBytes int `toml:"max_text_bytes"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	ExploreLimit int `toml:"explore_limit"`
}

// Fonts returns the configured font range.
func (c *Config) Fonts() cloud.FontRange {
	return cloud.FontRange{Min: c.Cloud.MinFont, Max: c.Cloud.MaxFont}
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Cloud: CloudConfig{
			MinFont:     cloud.DefaultMinFont,
			MaxFont:     cloud.DefaultMaxFont,
			DefaultSize: 0,
		},
		HTML: HTMLConfig{
			Stylesheet: document.DefaultStylesheet,
		},
		Server: ServerConfig{
			MaxWords:     1000,
			MaxTextBytes: 10 << 20,
		},
		CLI: CliConfig{
			ExploreLimit: 24,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/tagcloud
// 2. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", AppDir)
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: ~/.config/tagcloud/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Unparseable files keep whatever
// sections can still be read.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		config = tryPartialParse(configPath)
	}
	config.normalize()
	return config, nil
}

// tryPartialParse extracts known sections from a loosely parsed TOML file
func tryPartialParse(configPath string) *Config {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config
	}

	if section, ok := utils.ExtractSection(tempConfig, "cloud"); ok {
		extractCloudConfig(section, &config.Cloud)
	}
	if section, ok := utils.ExtractSection(tempConfig, "html"); ok {
		if val, ok := utils.ExtractString(section, "stylesheet"); ok {
			config.HTML.Stylesheet = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		if val, ok := utils.ExtractInt64(section, "explore_limit"); ok {
			config.CLI.ExploreLimit = val
		}
	}
	return config
}

func extractCloudConfig(data map[string]any, c *CloudConfig) {
	if val, ok := utils.ExtractInt64(data, "min_font"); ok {
		c.MinFont = val
	}
	if val, ok := utils.ExtractInt64(data, "max_font"); ok {
		c.MaxFont = val
	}
	if val, ok := utils.ExtractInt64(data, "default_size"); ok {
		c.DefaultSize = val
	}
}

func extractServerConfig(data map[string]any, s *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_words"); ok {
		s.MaxWords = val
	}
	if val, ok := utils.ExtractInt64(data, "max_text_bytes"); ok {
		s.MaxTextBytes = val
	}
}

// normalize replaces out of range values with defaults.
func (c *Config) normalize() {
	defaults := DefaultConfig()
	if !c.Fonts().Valid() {
		log.Warnf("Invalid font range [%d, %d], using [%d, %d]",
			c.Cloud.MinFont, c.Cloud.MaxFont, defaults.Cloud.MinFont, defaults.Cloud.MaxFont)
		c.Cloud.MinFont = defaults.Cloud.MinFont
		c.Cloud.MaxFont = defaults.Cloud.MaxFont
	}
	if c.Cloud.DefaultSize < 0 {
		log.Warnf("Negative default_size %d ignored", c.Cloud.DefaultSize)
		c.Cloud.DefaultSize = 0
	}
	if c.HTML.Stylesheet == "" {
		c.HTML.Stylesheet = defaults.HTML.Stylesheet
	}
	if c.Server.MaxWords < 1 {
		c.Server.MaxWords = defaults.Server.MaxWords
	}
	if c.Server.MaxTextBytes < 1 {
		c.Server.MaxTextBytes = defaults.Server.MaxTextBytes
	}
	if c.CLI.ExploreLimit < 1 {
		c.CLI.ExploreLimit = defaults.CLI.ExploreLimit
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "builtin defaults"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
