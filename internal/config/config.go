package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Board    BoardConfig
	Database DatabaseConfig
	History  HistoryConfig
	Suggest  SuggestConfig
	Log      LogConfig
}

// BoardConfig locates the board file and picks the malformed-line policy.
type BoardConfig struct {
	Path   string
	Strict bool
}

// DatabaseConfig holds sqlite settings. An empty Migrations uses the
// migrations built into the binary.
type DatabaseConfig struct {
	Path       string
	Migrations string
}

// HistoryConfig controls the spoken-phrase log.
type HistoryConfig struct {
	Enabled bool
	Limit   int
}

// SuggestConfig bounds "did you mean" suggestions.
type SuggestConfig struct {
	MaxDistance int `mapstructure:"max_distance"`
}

// LogConfig holds the process log destination. The TUI owns the terminal,
// so logs always go to a file.
type LogConfig struct {
	Path string
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "aacboard")
}

// Path returns the config file location, honouring AACBOARD_CONFIG.
func Path() string {
	if p := os.Getenv("AACBOARD_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "aacboard", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix AACBOARD_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("board.path", filepath.Join(dataDir(), "board.txt"))
	v.SetDefault("board.strict", false)
	v.SetDefault("database.path", filepath.Join(dataDir(), "aacboard.db"))
	v.SetDefault("database.migrations", "")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.limit", 8)
	v.SetDefault("suggest.max_distance", 4)
	v.SetDefault("log.path", filepath.Join(dataDir(), "aacboard.log"))

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("AACBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine; defaults and env apply
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.History.Limit <= 0 {
		c.History.Limit = 8
	}
	if c.Suggest.MaxDistance < 0 {
		c.Suggest.MaxDistance = 0
	}
	return c, nil
}

// Save writes cfg to the config file, creating the directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("board.path", cfg.Board.Path)
	v.Set("board.strict", cfg.Board.Strict)
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.migrations", cfg.Database.Migrations)
	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("history.limit", cfg.History.Limit)
	v.Set("suggest.max_distance", cfg.Suggest.MaxDistance)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// EnsureFile writes cfg to the config file when none exists yet and
// reports whether it did.
func EnsureFile(cfg Config) (bool, error) {
	if _, err := os.Stat(Path()); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config: %w", err)
	}
	if err := Save(cfg); err != nil {
		return false, err
	}
	return true, nil
}
