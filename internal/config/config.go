// Package config loads process settings from a YAML file, CANVASYNC_*
// environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "CANVASYNC"

// Config holds all process settings.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Remote    RemoteConfig    `mapstructure:"remote"`
	Autosave  AutosaveConfig  `mapstructure:"autosave"`
	Workspace WorkspaceConfig `mapstructure:"workspace"`
	DataDir   string          `mapstructure:"data_dir"`
}

// LogConfig configures internal/logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File включает запись в файл с ротацией
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// ServerConfig configures the HTTP daemon.
type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// SyncRateLimit - запросов в минуту на эндпоинты запуска синхронизации
	SyncRateLimit int `mapstructure:"sync_rate_limit"`
}

// StorageConfig selects the backing stores.
type StorageConfig struct {
	BoltPath string `mapstructure:"bolt_path"`
	Driver   string `mapstructure:"driver"`
	DSN      string `mapstructure:"dsn"`
	// RedisURL переключает fallback и метаданные на Redis
	RedisURL    string `mapstructure:"redis_url"`
	RedisPrefix string `mapstructure:"redis_prefix"`
}

// RemoteConfig holds pacing and the passphrase that seals the API key.
type RemoteConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Passphrase string        `mapstructure:"passphrase"`
	ItemDelay  time.Duration `mapstructure:"item_delay"`
	PageDelay  time.Duration `mapstructure:"page_delay"`
}

// AutosaveConfig configures the debounced autosave.
type AutosaveConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

// WorkspaceConfig names the workspace this process serves.
type WorkspaceConfig struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

// Supported log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// ErrInvalidConfig is wrapped by Validate errors.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultDataDir returns ~/.canvasync, or the working directory when the
// home directory is unknown.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".canvasync"
	}
	return filepath.Join(home, ".canvasync")
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", DefaultDataDir())

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", LogFormatText)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	v.SetDefault("server.address", "127.0.0.1:8787")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.sync_rate_limit", 30)

	v.SetDefault("storage.bolt_path", "")
	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.dsn", "")
	v.SetDefault("storage.redis_url", "")
	v.SetDefault("storage.redis_prefix", "canvasync:")

	v.SetDefault("remote.base_url", "")
	v.SetDefault("remote.passphrase", "")
	v.SetDefault("remote.item_delay", 500*time.Millisecond)
	v.SetDefault("remote.page_delay", 2*time.Second)

	v.SetDefault("autosave.delay", 2*time.Second)

	v.SetDefault("workspace.id", "default")
	v.SetDefault("workspace.name", "Default workspace")
}

// New returns a viper instance with defaults and environment binding.
// Nested keys map to variables like CANVASYNC_STORAGE_DSN.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads settings. An empty path looks for canvasync.yaml in the data
// directory and the working directory; a missing file is not an error
// unless path was given explicitly.
func Load(path string) (*Config, error) {
	return LoadWith(New(), path)
}

// LoadWith reads settings into an existing viper instance, so callers can
// bind command-line flags first.
func LoadWith(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("canvasync")
		v.SetConfigType("yaml")
		v.AddConfigPath(v.GetString("data_dir"))
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.resolvePaths()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Watch calls fn with the re-read settings every time the config file
// used by v changes. It reports false when v has no config file.
func Watch(v *viper.Viper, fn func(*Config, error)) bool {
	if v.ConfigFileUsed() == "" {
		return false
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		fn(decode(v))
	})
	v.WatchConfig()
	return true
}

// resolvePaths fills file locations derived from DataDir.
func (c *Config) resolvePaths() {
	if c.Storage.BoltPath == "" {
		c.Storage.BoltPath = filepath.Join(c.DataDir, "sync.db")
	}
	if c.Storage.DSN == "" && c.Storage.Driver == "sqlite" {
		c.Storage.DSN = filepath.Join(c.DataDir, "canvas.db")
	}
}

// Validate checks settings that have no usable fallback.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: log.format must be %q or %q, got %q", ErrInvalidConfig, LogFormatText, LogFormatJSON, c.Log.Format)
	}
	switch c.Storage.Driver {
	case "sqlite", "pgx":
	default:
		return fmt.Errorf("%w: storage.driver must be sqlite or pgx, got %q", ErrInvalidConfig, c.Storage.Driver)
	}
	if c.Storage.Driver == "pgx" && c.Storage.DSN == "" {
		return fmt.Errorf("%w: storage.dsn is required for pgx", ErrInvalidConfig)
	}
	if c.Workspace.ID == "" {
		return fmt.Errorf("%w: workspace.id is required", ErrInvalidConfig)
	}
	if c.Autosave.Delay < 0 || c.Remote.ItemDelay < 0 || c.Remote.PageDelay < 0 {
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidConfig)
	}
	return nil
}

// EnsureDataDir creates the data directory with owner-only permissions.
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0o700); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	return nil
}
