package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI UIConfig `mapstructure:"ui"`
	// Keys maps action names to replacement key lists; decoded by hand
	// so list values survive env overrides.
	Keys map[string][]string `mapstructure:"-"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DefaultStatus string  `mapstructure:"default_status"`
	StatusRatio   float64 `mapstructure:"status_ratio"`
	MountStatus   string  `mapstructure:"mount_status"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// FOOTLINE_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.default_status", "Ready")
	v.SetDefault("ui.status_ratio", 0.25)
	v.SetDefault("ui.mount_status", "Application loaded successfully")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FOOTLINE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "footline"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FOOTLINE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Keys = keyOverrides(v)
	if c.UI.StatusRatio <= 0 || c.UI.StatusRatio >= 1 {
		c.UI.StatusRatio = 0.25
	}
	return c, nil
}

// keyOverrides reads the [keys] table: action name -> list of keys.
func keyOverrides(v *viper.Viper) map[string][]string {
	raw := v.GetStringMapStringSlice("keys")
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string][]string, len(raw))
	for action, keys := range raw {
		trimmed := make([]string, 0, len(keys))
		for _, k := range keys {
			if k = strings.TrimSpace(k); k != "" {
				trimmed = append(trimmed, k)
			}
		}
		if len(trimmed) > 0 {
			out[action] = trimmed
		}
	}
	return out
}

// Save writes the provided config to disk, creating the config directory
// if needed.
func Save(cfg Config) error {
	path := os.Getenv("FOOTLINE_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "footline", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.default_status", cfg.UI.DefaultStatus)
	v.Set("ui.status_ratio", cfg.UI.StatusRatio)
	v.Set("ui.mount_status", cfg.UI.MountStatus)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
