package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/sitecheck")
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("PORT", "")
	t.Setenv("REMINDER_CRON", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want default 8080", cfg.Port)
	}
	if cfg.ReminderCron != "0 0 6 * * *" {
		t.Errorf("ReminderCron = %q, want default daily spec", cfg.ReminderCron)
	}
}

func TestLoadRequiredValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("AUTH_JWT_SECRET", "secret")
	if _, err := Load(); err == nil {
		t.Error("Load() without DATABASE_URL succeeded, want error")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/sitecheck")
	t.Setenv("AUTH_JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Error("Load() without AUTH_JWT_SECRET succeeded, want error")
	}
}
