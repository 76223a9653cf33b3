package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides (SKYEDIT_INSTALL_PATH...)
const EnvPrefix = "SKYEDIT"

// Config holds the runtime configuration of the editor.
// Values come from config.toml, SKYEDIT_* env vars and CLI flags.
type Config struct {
	InstallPath string `mapstructure:"install_path" toml:"install_path"`
	SaveDir     string `mapstructure:"save_dir" toml:"save_dir"`
	LogFile     string `mapstructure:"log_file" toml:"log_file"`
	LogLevel    string `mapstructure:"log_level" toml:"log_level"`
	HistoryDB   string `mapstructure:"history_db" toml:"history_db"`
	Theme       string `mapstructure:"theme" toml:"theme"`
	Images      string `mapstructure:"images" toml:"images"`
}

// SetDefaults registers the built-in defaults on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("install_path", "")
	v.SetDefault("save_dir", DefaultSaveDir())
	v.SetDefault("log_file", "skyedit_debug.log")
	v.SetDefault("log_level", "info")
	v.SetDefault("history_db", defaultHistoryDB())
	v.SetDefault("theme", "classic")
	v.SetDefault("images", "auto")
}

// Load reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Init points v at the config file (explicit path, or config.toml in the
// user config dir and the working directory) and enables env overrides.
// A missing config file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "skyedit"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if cfgFile == "" {
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
	}
	return nil
}

// DefaultPath returns where `config init` writes the config file
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "skyedit", "config.toml")
}

// WriteDefault writes cfg as TOML to path, creating parent directories.
// An existing file is left alone unless overwrite is set.
func WriteDefault(path string, cfg Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func defaultHistoryDB() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "skyedit_history.db"
	}
	return filepath.Join(dir, "skyedit", "history.db")
}
