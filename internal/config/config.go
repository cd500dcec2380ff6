package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pluqqy/pluqqy-columns/pkg/models"
)

// EnvPrefix is the prefix of environment overrides, e.g. PLUQQY_COLUMNS_EDITOR_MIN_HEIGHT.
const EnvPrefix = "PLUQQY_COLUMNS"

// ConfigEnv names the environment variable pointing at an explicit config file.
const ConfigEnv = EnvPrefix + "_CONFIG"

// DefaultPath returns the settings file location used when none is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "pluqqy-columns", "settings.yaml")
}

// Load reads settings from path (or the config env var, or the default
// location), applying env overrides. A missing file is not an error.
func Load(path string) (*models.Settings, error) {
	v := viper.New()

	defaults := models.DefaultSettings()
	v.SetDefault("editor.min_height", defaults.Editor.MinHeight)
	v.SetDefault("editor.show_line_numbers", defaults.Editor.ShowLineNumbers)
	v.SetDefault("editor.read_only", defaults.Editor.ReadOnly)
	v.SetDefault("save.drain_timeout", defaults.Save.DrainTimeout)
	v.SetDefault("log.path", defaults.Log.Path)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetConfigType("yaml")
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("settings")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var s models.Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if s.Editor.MinHeight <= 0 {
		s.Editor.MinHeight = defaults.Editor.MinHeight
	}
	if s.Save.DrainTimeout < 0 {
		s.Save.DrainTimeout = 0
	}
	return &s, nil
}

// Save writes settings to path, creating the directory if needed.
func Save(path string, s *models.Settings) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("editor.min_height", s.Editor.MinHeight)
	v.Set("editor.show_line_numbers", s.Editor.ShowLineNumbers)
	v.Set("editor.read_only", s.Editor.ReadOnly)
	v.Set("save.drain_timeout", s.Save.DrainTimeout.String())
	v.Set("log.path", s.Log.Path)
	v.Set("log.level", s.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
