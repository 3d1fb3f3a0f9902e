// Package config loads hourlog settings from defaults, an optional
// hourlog.yaml and HOURLOG_* environment variables, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	Backup  BackupConfig  `mapstructure:"backup"`
}

type StorageConfig struct {
	DBPath string `mapstructure:"db_path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type BackupConfig struct {
	Dir           string `mapstructure:"dir"`
	IntervalHours int    `mapstructure:"interval_hours"`
	Keep          int    `mapstructure:"keep"`
}

// Interval is the auto-backup period, at least one hour.
func (b BackupConfig) Interval() time.Duration {
	return time.Duration(max(1, b.IntervalHours)) * time.Hour
}

// Load reads configuration. An empty configPath searches for hourlog.yaml
// in the working directory and in ~/.hourlog; a missing file is not an
// error.
func Load(configPath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	base := filepath.Join(home, ".hourlog")

	v := viper.New()
	setDefaults(v, base)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("hourlog")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(base)
	}

	v.SetEnvPrefix("HOURLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Short form kept for the common override.
	_ = v.BindEnv("storage.db_path", "HOURLOG_STORAGE_DB_PATH", "HOURLOG_DB_PATH")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		slog.Debug("config file loaded", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Storage.DBPath = expandHome(cfg.Storage.DBPath, home)
	cfg.Backup.Dir = expandHome(cfg.Backup.Dir, home)
	return &cfg, nil
}

func setDefaults(v *viper.Viper, base string) {
	v.SetDefault("storage.db_path", filepath.Join(base, "hourlog.db"))
	v.SetDefault("log.level", "warn")
	v.SetDefault("backup.dir", filepath.Join(base, "backups"))
	v.SetDefault("backup.interval_hours", 24)
	v.SetDefault("backup.keep", 7)
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger installs a text handler on w as the default slog logger and
// returns it.
func SetupLogger(w io.Writer, level string) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
	slog.SetDefault(logger)
	return logger
}
