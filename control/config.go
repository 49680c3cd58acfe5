// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Viper-backed configuration loader for the diagnostics flags.
// Env var overrides use prefix AGENT_DIAG_; an optional TOML config
// file may be pointed at with AGENT_DIAG_CONFIG.

package control

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/momentics/agent-diag/api"
)

// Config holds the diagnostics configuration.
type Config struct {
	Log LogConfig
}

// LogConfig holds verbosity settings.
type LogConfig struct {
	Level          string `mapstructure:"level"`
	CallstackDebug bool   `mapstructure:"callstack_debug"`
}

// Load reads configuration from file and env.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("log.level", api.LevelError.String())
	v.SetDefault("log.callstack_debug", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("AGENT_DIAG_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "agent-diag"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("AGENT_DIAG")
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

// Apply validates cfg, stores it into the process-wide flags and
// notifies reload hooks.
func Apply(cfg Config) error {
	level, ok := api.ParseLogLevel(cfg.Log.Level)
	if !ok {
		return fmt.Errorf("unknown log level %q", cfg.Log.Level)
	}
	SetLogLevel(level)
	SetCallstackDebug(cfg.Log.CallstackDebug)
	notifyReload()
	return nil
}
