// Package config holds the YAML configuration file and the application
// constants.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// DataDir overrides where the database file lives. Empty selects the
	// XDG data directory.
	DataDir string `yaml:"data_dir"`

	// HolidayBaseURL is the public-holiday API endpoint.
	HolidayBaseURL string `yaml:"holiday_base_url"`

	// HolidayCountry is the ISO 3166-1 alpha-2 country code for the
	// public-holiday feed.
	HolidayCountry string `yaml:"holiday_country"`

	// AssistantAPIKey enables the natural-language command box when set.
	// The GEMINI_API_KEY environment variable takes precedence.
	AssistantAPIKey string `yaml:"assistant_api_key"`

	// AssistantModel is the model name used for command interpretation.
	AssistantModel string `yaml:"assistant_model"`

	// Theme selects the color theme ("default" or "dracula").
	Theme string `yaml:"theme"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		HolidayBaseURL: "https://date.nager.at",
		HolidayCountry: "US",
		AssistantModel: "gemini-2.5-flash",
		Theme:          "default",
	}
}

// Normalize fills in missing values so partially-filled configs still
// behave correctly.
func (c *Config) Normalize() {
	if c.HolidayBaseURL == "" {
		c.HolidayBaseURL = "https://date.nager.at"
	}
	if c.HolidayCountry == "" {
		c.HolidayCountry = "US"
	}
	if c.AssistantModel == "" {
		c.AssistantModel = "gemini-2.5-flash"
	}
	if c.Theme == "" {
		c.Theme = "default"
	}
}

// APIKey resolves the assistant key, preferring the environment.
func (c *Config) APIKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return c.AssistantAPIKey
}

// Load reads the YAML config at path. A missing file is first-run: a
// default config is written with 0600 perms and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the config atomically via a temp file and rename, with the
// final file at 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".daykeeper-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
