// Package config resolves runtime settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/gatetrack/internal/domain"
	"github.com/joho/godotenv"
)

const (
	EnvDB       = "GATETRACK_DB"
	EnvPlan     = "GATETRACK_PLAN"
	EnvLogLevel = "GATETRACK_LOG_LEVEL"
	EnvTheme    = "GATETRACK_THEME"
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Config holds everything main needs to wire the application.
type Config struct {
	DBPath   string
	PlanFile string // empty means the built-in plan
	LogLevel string
	// Theme, when set, replaces the terminal background probe.
	Theme domain.ThemeMode
}

// DefaultConfig stores the database under ~/.gatetrack and logs warnings only.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DBPath:   filepath.Join(home, ".gatetrack", "gatetrack.db"),
		LogLevel: "warn",
	}
}

// LoadConfig loads the given .env files (default ".env") without
// overriding variables already set, then reads GATETRACK_* variables over
// the defaults. Invalid values are ignored.
func LoadConfig(envFiles ...string) Config {
	_ = godotenv.Load(envFiles...)

	cfg := DefaultConfig()
	if v := strings.TrimSpace(os.Getenv(EnvDB)); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPlan)); v != "" {
		cfg.PlanFile = v
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel))); validLogLevels[v] {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		if m, err := domain.ParseThemeMode(v); err == nil {
			cfg.Theme = m
		}
	}
	return cfg
}
