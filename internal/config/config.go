package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds demo program configuration.
type Config struct {
	UI  UIConfig
	Log LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent     string `mapstructure:"accent"`
	BusyCursor string `mapstructure:"busy_cursor"`
	IdleReset  bool   `mapstructure:"idle_reset"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Debug bool   `mapstructure:"debug"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// TEAKIT_; a missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.accent", "#89b4fa")
	v.SetDefault("ui.busy_cursor", "steady-bar")
	v.SetDefault("ui.idle_reset", true)
	v.SetDefault("log.file", filepath.Join(os.Getenv("HOME"), ".local", "state", "teakit", "teakit.log"))
	v.SetDefault("log.debug", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TEAKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "teakit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TEAKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
