package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DOCUCHAT_ADMIN_URL", "DOCUCHAT_AGENT_URL", "APP_API_TOKEN",
		"DOCUCHAT_CLIENT_TIMEOUT", "DOCUCHAT_LOG_FILE", "DOCUCHAT_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.AdminURL != "http://127.0.0.1:8001" {
		t.Errorf("AdminURL = %q", cfg.AdminURL)
	}
	if cfg.AgentURL != "http://localhost:8000" {
		t.Errorf("AgentURL = %q", cfg.AgentURL)
	}
	if cfg.Token != "" {
		t.Errorf("Token = %q, want empty", cfg.Token)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DOCUCHAT_ADMIN_URL", "http://admin.internal:9000")
	t.Setenv("DOCUCHAT_AGENT_URL", "http://agent.internal:9001")
	t.Setenv("APP_API_TOKEN", "tok-xyz")
	t.Setenv("DOCUCHAT_CLIENT_TIMEOUT", "5s")
	t.Setenv("DOCUCHAT_LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.AdminURL != "http://admin.internal:9000" {
		t.Errorf("AdminURL = %q", cfg.AdminURL)
	}
	if cfg.AgentURL != "http://agent.internal:9001" {
		t.Errorf("AgentURL = %q", cfg.AgentURL)
	}
	if cfg.Token != "tok-xyz" {
		t.Errorf("Token = %q", cfg.Token)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
}

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"30s", 30 * time.Second},
		{"2m", 2 * time.Minute},
		{"garbage", 60 * time.Second},
		{"-5s", 60 * time.Second},
		{"", 60 * time.Second},
	}
	for _, tt := range tests {
		if got := parseTimeout(tt.in); got != tt.want {
			t.Errorf("parseTimeout(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
