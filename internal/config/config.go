package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// TelegramConfig holds the optional Telegram notification channel.
type TelegramConfig struct {
	Token  string `yaml:"token"`
	ChatID int64  `yaml:"chat_id"`
}

// Config is the top-level application configuration.
type Config struct {
	// DatabasePath is the SQLite file backing the record store.
	DatabasePath string `yaml:"database"`

	// ReminderRebuildMinutes is how often the reminder set is recomputed
	// so items drifting into the 24-hour arm window pick up timers.
	ReminderRebuildMinutes int `yaml:"reminder_rebuild_minutes"`

	// DailySummaryTime is the local HH:MM at which the daily summary is
	// delivered. Empty disables the job.
	DailySummaryTime string `yaml:"daily_summary_time"`

	// Telegram, if configured, receives reminders and summaries in
	// addition to the process log.
	Telegram *TelegramConfig `yaml:"telegram,omitempty"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		DatabasePath:           "dayplanner.db",
		ReminderRebuildMinutes: 60,
		DailySummaryTime:       "08:00",
	}
}

// Normalize fills in missing/zero values so partially-filled configs still
// behave correctly.
func (c *Config) Normalize() {
	if c.DatabasePath == "" {
		c.DatabasePath = "dayplanner.db"
	}
	if c.ReminderRebuildMinutes <= 0 {
		c.ReminderRebuildMinutes = 60
	}
	if c.Telegram != nil && c.Telegram.Token == "" {
		c.Telegram = nil
	}
}

// RebuildInterval returns the reminder recomputation period.
func (c *Config) RebuildInterval() time.Duration {
	return time.Duration(c.ReminderRebuildMinutes) * time.Minute
}

// Load loads configuration from the given YAML path. A missing file is
// created with defaults on first run. Environment variables TELEGRAM_TOKEN
// and TELEGRAM_CHAT_ID override the file so secrets can stay out of it.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	if token := strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")); token != "" {
		if cfg.Telegram == nil {
			cfg.Telegram = &TelegramConfig{}
		}
		cfg.Telegram.Token = token
	}
	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" && cfg.Telegram != nil {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.Telegram.ChatID = id
		}
	}

	cfg.Normalize()
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: create default config file.
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration atomically with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	// Atomic write: temp file in the same directory, then rename.
	tmp, err := os.CreateTemp(dir, ".dayplanner-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
