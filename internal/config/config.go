// Package config loads hookman configuration from
// ~/.config/hookman/config.toml with per-project overrides from
// .hookman.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-project config file name.
const LocalConfigFileName = ".hookman.toml"

// SelectConfig holds selection preference defaults.
type SelectConfig struct {
	Minimal           bool     `toml:"minimal"`
	Include           []string `toml:"include"`
	Exclude           []string `toml:"exclude"`
	IncludeCategories []string `toml:"include_categories"`
	ExcludeCategories []string `toml:"exclude_categories"`
	MinImportance     string   `toml:"min_importance"`
	NoCritical        bool     `toml:"no_critical"`
}

// Config holds the hookman configuration.
type Config struct {
	HooksDir    string       `toml:"hooks_dir"`    // hooks library root
	ProjectType string       `toml:"project_type"` // skip detection when set
	InstallDir  string       `toml:"install_dir"`  // where hooks get installed
	Select      SelectConfig `toml:"select"`
}

// DefaultInstallDir is where selected hooks are copied, relative to the
// project directory.
const DefaultInstallDir = ".claude/hooks"

// Default returns the default configuration.
func Default() Config {
	return Config{
		InstallDir: DefaultInstallDir,
	}
}

// configPath returns the path to the global config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "hookman", "config.toml"), nil
}

// Load reads config from ~/.config/hookman/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return loadFile(path)
}

func loadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadLocal reads a per-project .hookman.toml from the given directory.
// Returns nil (no error) if the file doesn't exist.
func LoadLocal(dir string) (*Config, error) {
	path := filepath.Join(dir, LocalConfigFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read local config %s: %w", path, err)
	}

	var local Config
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("parse local config %s: %w", path, err)
	}

	if err := validate(local); err != nil {
		return nil, fmt.Errorf("invalid local config %s: %w", path, err)
	}

	return &local, nil
}

// MergeLocal merges a local per-project config into the global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global Config, local *Config) Config {
	if local == nil {
		return global
	}

	merged := global

	if local.HooksDir != "" {
		merged.HooksDir = local.HooksDir
	}
	if local.ProjectType != "" {
		merged.ProjectType = local.ProjectType
	}
	if local.InstallDir != "" {
		merged.InstallDir = local.InstallDir
	}

	// Select preferences replace wholesale when any local field is set;
	// merging individual lists would make overrides impossible to reason
	// about.
	if !isZeroSelect(local.Select) {
		merged.Select = local.Select
	}

	return merged
}

func isZeroSelect(s SelectConfig) bool {
	return !s.Minimal && !s.NoCritical && s.MinImportance == "" &&
		len(s.Include) == 0 && len(s.Exclude) == 0 &&
		len(s.IncludeCategories) == 0 && len(s.ExcludeCategories) == 0
}

func validate(cfg Config) error {
	switch cfg.Select.MinImportance {
	case "", "critical", "important", "optional", "utility":
	default:
		return fmt.Errorf("invalid select.min_importance %q", cfg.Select.MinImportance)
	}

	if cfg.ProjectType != "" {
		valid := false
		for _, t := range knownProjectTypes {
			if cfg.ProjectType == t {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown project_type %q", cfg.ProjectType)
		}
	}

	return nil
}

var knownProjectTypes = []string{"node", "typescript", "react", "python", "monorepo", "api", "default"}
