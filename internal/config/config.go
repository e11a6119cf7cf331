package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/akyairhashvil/HABT/internal/util"
)

// Config holds user-tunable settings read from the optional config file.
// Everything has a sensible default; the file may be absent entirely.
type Config struct {
	// Theme selects the lipgloss theme by name.
	Theme string `yaml:"theme"`

	// DataDir overrides the XDG data directory for the database and log.
	DataDir string `yaml:"data_dir"`

	// Debug lowers the log level to debug.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Theme:   "default",
		DataDir: util.DataDir(AppName),
	}
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. The HABT_DATA_DIR environment variable overrides
// the data directory regardless of the file contents.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Theme == "" {
		cfg.Theme = "default"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = util.DataDir(AppName)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// DefaultPath returns the standard location of the config file.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

func (c *Config) applyEnvOverrides() {
	if dir := strings.TrimSpace(os.Getenv("HABT_DATA_DIR")); dir != "" {
		c.DataDir = dir
	}
}

// DBPath returns the full path of the sqlite database file.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, DBFileName)
}

// LogPath returns the full path of the log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, LogFileName)
}
