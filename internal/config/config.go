// Package config loads ambient settings (logging) from defaults, an optional YAML file and MINIGREP_* env variables
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	EnvPrefix     = "MINIGREP"
	EnvConfigPath = "MINIGREP_CONFIG"
)

type Config struct {
	Log LogConfig
}

type LogConfig struct {
	Level      zerolog.Level
	File       string // пусто - лог только в stderr
	MaxSize    int    // Max size in megabytes
	MaxBackups int    // Max number of backups
	MaxAge     int    // Max age in days
	Compress   bool   // Compress backups
}

// Load never touches search semantics: pattern, file and case sensitivity come
// only from the command line.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.compress", true)

	// MINIGREP_LOG_LEVEL -> log.level
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv(EnvConfigPath); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString("log.level")))
	if err != nil {
		return nil, fmt.Errorf("incorrect log level provided: %w", err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	return &Config{
		Log: LogConfig{
			Level:      level,
			File:       v.GetString("log.file"),
			MaxSize:    v.GetInt("log.max_size_mb"),
			MaxBackups: v.GetInt("log.max_backups"),
			MaxAge:     v.GetInt("log.max_age_days"),
			Compress:   v.GetBool("log.compress"),
		},
	}, nil
}
