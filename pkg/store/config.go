package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"tableflip.dev/luggage/pkg/timeutil"
)

// Backend names accepted by the storage and session.backend settings.
const (
	BackendDisk   = "disk"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds everything needed to open the durable and session stores.
type Config struct {
	Path    string        `mapstructure:"path"`
	Storage string        `mapstructure:"storage"`
	SQLite  SQLiteConfig  `mapstructure:"sqlite"`
	Session SessionConfig `mapstructure:"session"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Log     LogConfig     `mapstructure:"log"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// SQLiteConfig configures the sqlite durable backend.
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// SessionConfig configures the session-scoped store that holds UI state.
type SessionConfig struct {
	Backend string        `mapstructure:"backend"`
	Dir     string        `mapstructure:"dir"`
	ID      string        `mapstructure:"id"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// RedisConfig holds Redis connection settings for the redis session backend.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
	// File redirects log output, used by the terminal UI.
	File string `mapstructure:"file"`
}

// BasePath is the directory holding durable data.
func (c *Config) BasePath() string {
	return c.Path
}

// LoadConfig reads .luggage.yaml from $LUGGAGE_CONFIG_PATH or the working
// directory. Every key can be overridden by a LUGGAGE_ prefixed environment
// variable (LUGGAGE_PATH, LUGGAGE_SESSION_BACKEND, ...). A missing config
// file is fine.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.luggage")
	v.SetDefault("storage", BackendDisk)
	v.SetDefault("sqlite.path", "")
	v.SetDefault("session.backend", BackendDisk)
	v.SetDefault("session.dir", os.TempDir())
	v.SetDefault("session.id", "")
	v.SetDefault("session.ttl", "12h")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.development", false)
	v.SetDefault("log.file", "")

	v.SetConfigName(".luggage") // .yaml is implicit
	v.SetEnvPrefix("LUGGAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("LUGGAGE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	cfg := &Config{}
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		durationHook,
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, hooks); err != nil {
		return nil, fmt.Errorf("store: decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	path, err := homedir.Expand(c.Path)
	if err != nil {
		return fmt.Errorf("store: expand path %q: %w", c.Path, err)
	}
	c.Path = path
	if c.SQLite.Path == "" {
		c.SQLite.Path = filepath.Join(c.Path, "luggage.db")
	}
	if c.SQLite.Path, err = homedir.Expand(c.SQLite.Path); err != nil {
		return fmt.Errorf("store: expand sqlite path: %w", err)
	}
	if c.Session.Dir, err = homedir.Expand(c.Session.Dir); err != nil {
		return fmt.Errorf("store: expand session dir: %w", err)
	}
	if c.Log.File, err = homedir.Expand(c.Log.File); err != nil {
		return fmt.Errorf("store: expand log file: %w", err)
	}
	if c.Session.ID == "" {
		c.Session.ID = SessionID()
	}
	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))
	c.Session.Backend = strings.ToLower(strings.TrimSpace(c.Session.Backend))
	return nil
}

// SessionID identifies the current terminal session: $LUGGAGE_SESSION when
// set, otherwise the id of the parent process (usually the shell).
func SessionID() string {
	if id := strings.TrimSpace(os.Getenv("LUGGAGE_SESSION")); id != "" {
		return id
	}
	return fmt.Sprintf("%d", os.Getppid())
}

// SessionPath is the directory of the disk session store.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Session.Dir, "luggage-session-"+c.Session.ID)
}

// durationHook lets duration settings use day and week units ("2d", "1w").
func durationHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(time.Duration(0)) {
		return data, nil
	}
	return timeutil.Parse(data.(string))
}
