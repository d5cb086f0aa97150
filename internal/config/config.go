// Package config loads postfmt settings from a TOML file, POSTFMT_*
// environment variables and command line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

const (
	appName   = "postfmt"
	envPrefix = "POSTFMT"
)

// Config holds the effective settings.
type Config struct {
	// Platforms selected when no --platform flag is given.
	Platforms []string `toml:"platforms" mapstructure:"platforms" json:"platforms" yaml:"platforms"`

	// Output is one of text, json or yaml.
	Output string `toml:"output" mapstructure:"output" json:"output" yaml:"output"`

	// Copy copies the first platform's text to the clipboard.
	Copy bool `toml:"copy" mapstructure:"copy" json:"copy" yaml:"copy"`

	// Normalize applies Unicode NFC to input before formatting.
	Normalize bool `toml:"normalize" mapstructure:"normalize" json:"normalize" yaml:"normalize"`

	Stats StatsConfig `toml:"stats" mapstructure:"stats" json:"stats" yaml:"stats"`
}

// StatsConfig controls local usage analytics.
type StatsConfig struct {
	Enabled bool   `toml:"enabled" mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	Path    string `toml:"path" mapstructure:"path" json:"path" yaml:"path"`
}

// Dir returns the directory holding postfmt's config and data.
func Dir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "."+appName)
	}
	return "." + appName
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Platforms: []string{"linkedin"},
		Output:    "text",
		Stats: StatsConfig{
			Enabled: true,
			Path:    filepath.Join(Dir(), "stats.db"),
		},
	}
}

// New returns a viper instance seeded with defaults and environment bindings.
// Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	def := Default()

	v := viper.New()
	v.SetDefault("platforms", def.Platforms)
	v.SetDefault("output", def.Output)
	v.SetDefault("copy", def.Copy)
	v.SetDefault("normalize", def.Normalize)
	v.SetDefault("stats.enabled", def.Stats.Enabled)
	v.SetDefault("stats.path", def.Stats.Path)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file at path (or the default location when path is
// empty) into v and returns the validated result. A missing default file is
// not an error; a missing explicit file is.
func Load(v *viper.Viper, path string) (Config, error) {
	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values a user can get wrong.
func (c Config) Validate() error {
	switch c.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output %q (want text, json or yaml)", c.Output)
	}
	if c.Stats.Enabled && strings.TrimSpace(c.Stats.Path) == "" {
		return errors.New("stats.path must be set when stats are enabled")
	}
	return nil
}

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDefault writes the built-in configuration to path. Existing files are
// kept unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
		}
	}
	data, err := Default().Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
