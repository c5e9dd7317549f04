// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/spf13/viper"

	"github.com/helpview/helpview-cli/internal/errors"
)

const (
	KeyTopicsDir     = "topics_dir"
	KeyOpenByDefault = "open_by_default"
	KeyCodeStyle     = "code_style"
	KeyDebug         = "debug"
)

type Config struct {
	TopicsDir     string `mapstructure:"topics_dir"`
	OpenByDefault bool   `mapstructure:"open_by_default"`
	CodeStyle     string `mapstructure:"code_style"`
	Debug         bool   `mapstructure:"debug"`
}

var (
	defaultConfig = Config{
		OpenByDefault: false,
		CodeStyle:     "monokai",
		Debug:         false,
	}
)

// Default returns the built-in configuration
func Default() *Config {
	cfg := defaultConfig
	return &cfg
}

// Dir returns the helpview config directory.
// XDG_CONFIG_HOME is read at call time so tests can redirect it.
func Dir() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		configDir = xdg.ConfigHome
	}
	return filepath.Join(configDir, "helpview")
}

// DefaultTopicsDir is where user topic files are looked up
func DefaultTopicsDir() string {
	return filepath.Join(Dir(), "topics")
}

// DefaultFile returns the default config file path
func DefaultFile() string {
	return filepath.Join(Dir(), "config.yaml")
}

func newViper(configFile string, withEnv bool) *viper.Viper {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
		v.AddConfigPath(".")
	}

	if withEnv {
		v.SetEnvPrefix(EnvPrefix)
		v.AutomaticEnv()
	}

	v.SetDefault(KeyOpenByDefault, defaultConfig.OpenByDefault)
	v.SetDefault(KeyCodeStyle, defaultConfig.CodeStyle)
	v.SetDefault(KeyDebug, defaultConfig.Debug)
	v.SetDefault(KeyTopicsDir, "")

	return v
}

// LoadConfig reads the config file (configFile, or the default search
// path when empty) and HELPVIEW_* environment overrides.
func LoadConfig(configFile string) (*Config, error) {
	return load(newViper(configFile, true), configFile)
}

// LoadFile reads the config file alone, without environment overrides.
// Use it for read-modify-write so overrides never end up on disk.
func LoadFile(configFile string) (*Config, error) {
	return load(newViper(configFile, false), configFile)
}

func load(v *viper.Viper, configFile string) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// An explicit file that does not exist is not an error either
			if configFile == "" || !os.IsNotExist(err) {
				return nil, &errors.ConfigError{Message: "error reading config file", Err: err}
			}
		}
	}

	config := Default()
	if err := v.Unmarshal(config); err != nil {
		return nil, &errors.ConfigError{Message: "unable to decode config", Err: err}
	}

	if config.CodeStyle == "" {
		config.CodeStyle = defaultConfig.CodeStyle
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks values that cannot be checked by decoding alone
func (c *Config) Validate() error {
	if !slices.Contains(styles.Names(), c.CodeStyle) {
		return &errors.ConfigError{
			Key:     KeyCodeStyle,
			Message: fmt.Sprintf("unknown style %q", c.CodeStyle),
		}
	}

	if c.TopicsDir != "" {
		info, err := os.Stat(c.TopicsDir)
		if err == nil && !info.IsDir() {
			return &errors.ConfigError{
				Key:     KeyTopicsDir,
				Message: fmt.Sprintf("%s is not a directory", c.TopicsDir),
			}
		}
	}

	return nil
}

// TopicDirs returns the directories topics are loaded from, in override order
func (c *Config) TopicDirs() []string {
	dirs := []string{DefaultTopicsDir()}
	if c.TopicsDir != "" && c.TopicsDir != dirs[0] {
		dirs = append(dirs, c.TopicsDir)
	}
	return dirs
}

// Set assigns key from its string form
func (c *Config) Set(key, value string) error {
	switch key {
	case KeyTopicsDir:
		c.TopicsDir = value
	case KeyOpenByDefault:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &errors.ValidationError{Field: key, Value: value, Message: "must be true or false"}
		}
		c.OpenByDefault = b
	case KeyCodeStyle:
		c.CodeStyle = value
	case KeyDebug:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &errors.ValidationError{Field: key, Value: value, Message: "must be true or false"}
		}
		c.Debug = b
	default:
		return &errors.ConfigError{Key: key, Message: "unknown configuration key"}
	}
	return c.Validate()
}

// Get returns key in its string form
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeyTopicsDir:
		return c.TopicsDir, nil
	case KeyOpenByDefault:
		return strconv.FormatBool(c.OpenByDefault), nil
	case KeyCodeStyle:
		return c.CodeStyle, nil
	case KeyDebug:
		return strconv.FormatBool(c.Debug), nil
	default:
		return "", &errors.ConfigError{Key: key, Message: "unknown configuration key"}
	}
}

// Keys lists the configurable keys
func Keys() []string {
	return []string{KeyTopicsDir, KeyOpenByDefault, KeyCodeStyle, KeyDebug}
}

// SaveConfig writes config to configFile, or the default file when empty
func SaveConfig(config *Config, configFile string) error {
	if configFile == "" {
		configFile = DefaultFile()
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set(KeyTopicsDir, config.TopicsDir)
	v.Set(KeyOpenByDefault, config.OpenByDefault)
	v.Set(KeyCodeStyle, config.CodeStyle)
	v.Set(KeyDebug, config.Debug)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
