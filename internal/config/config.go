// Package config handles mgutil configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	// DirName is the name of the mgutil directory under the home directory.
	DirName = ".mgutil"
	// BookmarksFile is the name of the bookmark file.
	BookmarksFile = "bookmarks.csv"
	// ConfigFile is the name of the optional config file.
	ConfigFile = "config.yaml"
	// IndexFile is the name of the SQLite search index.
	IndexFile = "bookmarks.db"
	// EnvFile is the name of the optional env file.
	EnvFile = ".env"

	// EnvLogLevel overrides log.level.
	EnvLogLevel = "MGUTIL_LOG_LEVEL"
)

// Config represents the mgutil configuration.
type Config struct {
	Launcher LauncherConfig `yaml:"launcher"`
	Log      LogConfig      `yaml:"log"`
}

// LauncherConfig holds the commands used to open paths and run commands.
type LauncherConfig struct {
	// Terminal is invoked with the bookmarked path appended.
	Terminal []string `yaml:"terminal"`
	// Shell is invoked with the bookmarked command appended.
	Shell []string `yaml:"shell"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Default returns a default configuration.
func Default() *Config {
	return &Config{
		Launcher: LauncherConfig{
			Terminal: []string{"open", "-a", "iTerm"},
			Shell:    []string{"sh", "-c"},
		},
		Log: LogConfig{
			Level:  "warn",
			Pretty: true,
		},
	}
}

// Load reads the configuration from a file. Fields missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if len(cfg.Launcher.Terminal) == 0 {
		return nil, fmt.Errorf("parse config: launcher.terminal cannot be empty")
	}
	if len(cfg.Launcher.Shell) == 0 {
		return nil, fmt.Errorf("parse config: launcher.shell cannot be empty")
	}

	return cfg, nil
}

// LoadOrDefault loads the config at paths.Config, falling back to defaults
// if it does not exist. The env file is loaded first and MGUTIL_LOG_LEVEL
// overrides the configured level.
func LoadOrDefault(paths *Paths) (*Config, error) {
	if err := godotenv.Load(paths.Env); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg, err := Load(paths.Config)
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

// Paths holds the resolved paths for an mgutil installation.
type Paths struct {
	Root      string // .mgutil directory
	Bookmarks string // bookmarks.csv
	Config    string // config.yaml
	Index     string // bookmarks.db
	Env       string // .env
}

// ResolvePaths returns the paths for an mgutil installation under home.
func ResolvePaths(home string) *Paths {
	root := filepath.Join(home, DirName)
	return &Paths{
		Root:      root,
		Bookmarks: filepath.Join(root, BookmarksFile),
		Config:    filepath.Join(root, ConfigFile),
		Index:     filepath.Join(root, IndexFile),
		Env:       filepath.Join(root, EnvFile),
	}
}

// HomePaths resolves the current user's home directory and returns the
// paths under it.
func HomePaths() (*Paths, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return ResolvePaths(home), nil
}

// ExpandPath expands a leading ~ to the home directory. Other paths are
// returned unchanged.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return expanded, nil
}
