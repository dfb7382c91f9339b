// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config loads the mdagen configuration from mdagen.yaml, the
// environment (MDAGEN_ prefix) and command-line flags.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the configuration file name, without extension.
const FileName = "mdagen"

// EnvPrefix prefixes environment overrides: MDAGEN_PROFILE,
// MDAGEN_PATHS_METADATA, ...
const EnvPrefix = "MDAGEN"

// Log levels and formats.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"console", "json"}
)

// Config represents the mdagen configuration.
type Config struct {
	// Profile is the generation profile to run.
	Profile string `mapstructure:"profile"`

	// BasePackage overrides the application base namespace declared by
	// the metadata.
	BasePackage string `mapstructure:"basePackage"`

	Application Application `mapstructure:"application"`
	Paths       Paths       `mapstructure:"paths"`
	Descriptors Descriptors `mapstructure:"descriptors"`

	// Templates is a directory whose templates override the built-in ones.
	Templates string `mapstructure:"templates"`

	// TypeMappings maps a language name to a type-mapping file applied
	// on top of the built-in table.
	TypeMappings map[string]string `mapstructure:"typeMappings"`

	// Options holds free-form generator settings.
	Options map[string]string `mapstructure:"options"`

	// Dependencies are projects whose types the application may use.
	Dependencies []Dependency `mapstructure:"dependencies"`

	// Parallelism is the number of targets generated at once.
	Parallelism int `mapstructure:"parallelism"`

	Log Log `mapstructure:"log"`
}

// Application describes the generated project.
type Application struct {
	Name     string `mapstructure:"name"`
	Group    string `mapstructure:"group"`
	Artifact string `mapstructure:"artifact"`
	Version  string `mapstructure:"version"`
}

// Paths holds the directories used by a run. All but Basedir are relative
// to Basedir.
type Paths struct {
	Basedir         string `mapstructure:"basedir"`
	MainSource      string `mapstructure:"mainSource"`
	GeneratedSource string `mapstructure:"generatedSource"`
	Metadata        string `mapstructure:"metadata"`
}

// Descriptors lists extra target and profile descriptor files. They are
// loaded after the built-in ones and may replace them by name.
type Descriptors struct {
	Targets  []string `mapstructure:"targets"`
	Profiles []string `mapstructure:"profiles"`
}

// Dependency is a project loaded next to the application.
type Dependency struct {
	Name        string `mapstructure:"name"`
	BasePackage string `mapstructure:"basePackage"`
	Metadata    string `mapstructure:"metadata"`
}

// Log configures the logger.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New returns a viper instance with the defaults and environment
// overrides set. Callers may bind flags to it before calling [Load].
func New() *viper.Viper {
	v := viper.New()

	// Set defaults
	v.SetDefault("profile", "")
	v.SetDefault("basePackage", "")
	v.SetDefault("application.name", "")
	v.SetDefault("application.group", "")
	v.SetDefault("application.artifact", "")
	v.SetDefault("application.version", "")
	v.SetDefault("paths.mainSource", "src")
	v.SetDefault("paths.generatedSource", "generated")
	v.SetDefault("paths.metadata", "metadata")
	v.SetDefault("templates", "")
	v.SetDefault("parallelism", 1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Enable environment variable support
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration file into v and decodes it. An explicit
// file must exist; otherwise mdagen.yaml is looked up in dir and skipped
// when absent.
func Load(v *viper.Viper, file, dir string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Paths.Basedir == "" {
		cfg.Paths.Basedir = dir
		if used := v.ConfigFileUsed(); used != "" {
			cfg.Paths.Basedir = filepath.Dir(used)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration and reports every problem found. The
// profile is not checked; commands that generate require it.
func (c *Config) Validate() error {
	var errs []error
	if c.Parallelism < 1 {
		errs = append(errs, fmt.Errorf("parallelism must be at least 1, got: %d", c.Parallelism))
	}
	if c.Paths.Metadata == "" {
		errs = append(errs, errors.New("paths.metadata is required"))
	}
	if !slices.Contains(LogLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of %s, got: %s", strings.Join(LogLevels, ", "), c.Log.Level))
	}
	if !slices.Contains(LogFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of %s, got: %s", strings.Join(LogFormats, ", "), c.Log.Format))
	}
	for i, d := range c.Dependencies {
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("dependencies[%d].name is required", i))
		}
		if d.Metadata == "" {
			errs = append(errs, fmt.Errorf("dependencies[%d].metadata is required", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Path resolves p against the base directory. Absolute paths and the
// empty path are returned unchanged.
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Paths.Basedir, p)
}
