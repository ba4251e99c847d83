package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "dayplanner.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabasePath != "dayplanner.db" {
		t.Errorf("database = %q", cfg.DatabasePath)
	}
	if cfg.RebuildInterval() != time.Hour {
		t.Errorf("rebuild interval = %v, want 1h", cfg.RebuildInterval())
	}
	if cfg.DailySummaryTime != "08:00" {
		t.Errorf("summary time = %q", cfg.DailySummaryTime)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestLoadExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayplanner.yaml")
	content := "database: /tmp/p.db\nreminder_rebuild_minutes: 15\ndaily_summary_time: \"07:30\"\ntelegram:\n  token: abc\n  chat_id: 42\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabasePath != "/tmp/p.db" {
		t.Errorf("database = %q", cfg.DatabasePath)
	}
	if cfg.RebuildInterval() != 15*time.Minute {
		t.Errorf("rebuild interval = %v", cfg.RebuildInterval())
	}
	if cfg.Telegram == nil || cfg.Telegram.Token != "abc" || cfg.Telegram.ChatID != 42 {
		t.Errorf("telegram = %+v", cfg.Telegram)
	}
}

func TestNormalizeFillsZeroValues(t *testing.T) {
	cfg := &Config{ReminderRebuildMinutes: -5, Telegram: &TelegramConfig{}}
	cfg.Normalize()
	if cfg.DatabasePath == "" || cfg.ReminderRebuildMinutes != 60 {
		t.Errorf("normalize left %+v", cfg)
	}
	if cfg.Telegram != nil {
		t.Error("tokenless telegram config should be dropped")
	}
}

func TestEnvOverridesTelegram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayplanner.yaml")
	t.Setenv("TELEGRAM_TOKEN", "env-token")
	t.Setenv("TELEGRAM_CHAT_ID", "77")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Telegram == nil || cfg.Telegram.Token != "env-token" || cfg.Telegram.ChatID != 77 {
		t.Errorf("telegram = %+v", cfg.Telegram)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayplanner.yaml")
	want := &Config{
		DatabasePath:           "x.db",
		ReminderRebuildMinutes: 30,
		DailySummaryTime:       "09:15",
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("permissions = %o, want 600", perm)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.DatabasePath != "x.db" || got.ReminderRebuildMinutes != 30 || got.DailySummaryTime != "09:15" {
		t.Errorf("round trip = %+v", got)
	}
}
