package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the survey command.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatMsgpack}

// DirName is the directory holding config files, both in the home directory
// and in a project.
const DirName = ".langsurvey"

// Config holds all configuration for langsurvey
type Config struct {
	// Format is the default output format for survey results
	Format string `yaml:"format" env:"LANGSURVEY_FORMAT"`

	// ShowCounts prints per-language file counts in text output
	ShowCounts bool `yaml:"show_counts" env:"LANGSURVEY_SHOW_COUNTS"`

	// FollowSymlinks visits symlinks to regular files inside the surveyed root
	FollowSymlinks bool `yaml:"follow_symlinks" env:"LANGSURVEY_FOLLOW_SYMLINKS"`

	// Logging
	Verbose bool `yaml:"verbose" env:"LANGSURVEY_VERBOSE"`
	LogJSON bool `yaml:"log_json" env:"LANGSURVEY_LOG_JSON"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Format:         FormatText,
		ShowCounts:     false,
		FollowSymlinks: false,
		Verbose:        false,
		LogJSON:        false,
	}
}

// GlobalConfigFilePath returns the global config file path (~/.langsurvey/config.yaml)
func GlobalConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(DirName, "config.yaml")
	}
	return filepath.Join(home, DirName, "config.yaml")
}

// ProjectConfigFilePath returns the project-level config file path (./.langsurvey/config.yaml)
func ProjectConfigFilePath() string {
	return filepath.Join(DirName, "config.yaml")
}

// EffectiveConfigFilePath returns the highest-priority config file that
// exists, or "" when neither the project nor the global file exists.
func EffectiveConfigFilePath() string {
	for _, path := range []string{ProjectConfigFilePath(), GlobalConfigFilePath()} {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Load reads configuration with the following priority (highest to lowest):
// 1. Project-level config (./.langsurvey/config.yaml)
// 2. Environment variables
// 3. Global config (~/.langsurvey/config.yaml)
// 4. Defaults
func Load() (*Config, error) {
	return load(GlobalConfigFilePath(), ProjectConfigFilePath())
}

// LoadFiles reads only the file layers (project over global over defaults),
// ignoring environment variables. It is used when the result is written back
// to a config file.
func LoadFiles() (*Config, error) {
	return loadLayers(GlobalConfigFilePath(), ProjectConfigFilePath(), false)
}

func load(globalPath, projectPath string) (*Config, error) {
	return loadLayers(globalPath, projectPath, true)
}

func loadLayers(globalPath, projectPath string, withEnv bool) (*Config, error) {
	cfg := DefaultConfig()

	if err := mergeFile(cfg, globalPath); err != nil {
		return nil, err
	}

	if withEnv {
		applyEnvOverrides(cfg)
	}

	if err := mergeFile(cfg, projectPath); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeFile overlays the YAML file at path onto cfg. A missing file is not an error.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// LoadFromFile reads configuration from a specific YAML file path, in place of
// the global and project files. Environment variables still override it.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if data, err := os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified YAML file path.
// It creates parent directories if they don't exist.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LANGSURVEY_FORMAT"); v != "" {
		cfg.Format = strings.ToLower(v)
	}
	if v := os.Getenv("LANGSURVEY_SHOW_COUNTS"); v != "" {
		cfg.ShowCounts = parseBool(v)
	}
	if v := os.Getenv("LANGSURVEY_FOLLOW_SYMLINKS"); v != "" {
		cfg.FollowSymlinks = parseBool(v)
	}
	if v := os.Getenv("LANGSURVEY_VERBOSE"); v != "" {
		cfg.Verbose = parseBool(v)
	}
	if v := os.Getenv("LANGSURVEY_LOG_JSON"); v != "" {
		cfg.LogJSON = parseBool(v)
	}
}

// Validate checks that the configuration has valid fields
func (c *Config) Validate() error {
	if !ValidFormat(c.Format) {
		return fmt.Errorf("invalid format: %s (must be one of %s)", c.Format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidFormat reports whether format is one of Formats.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	}
	return false
}
