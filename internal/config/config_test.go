package config_test

import (
	"strings"
	"testing"

	"github.com/medcard/medcard/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_PATH", "test.db")
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("PORT", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("COOKIE_SECURE", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("expected default bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if !cfg.CookieSecure {
		t.Error("expected secure cookies by default")
	}
}

func TestLoad_MissingDatabasePath(t *testing.T) {
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("SESSION_SECRET", testSecret)

	_, err := config.Load()
	if err == nil || !strings.Contains(err.Error(), "DATABASE_PATH") {
		t.Fatalf("expected DATABASE_PATH error, got %v", err)
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("DATABASE_PATH", "test.db")
	t.Setenv("SESSION_SECRET", "too-short")

	_, err := config.Load()
	if err == nil || !strings.Contains(err.Error(), "SESSION_SECRET") {
		t.Fatalf("expected SESSION_SECRET error, got %v", err)
	}
}

func TestLoad_BcryptCostOutOfRange(t *testing.T) {
	t.Setenv("DATABASE_PATH", "test.db")
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("BCRYPT_COST", "20")

	_, err := config.Load()
	if err == nil || !strings.Contains(err.Error(), "BCRYPT_COST") {
		t.Fatalf("expected BCRYPT_COST error, got %v", err)
	}
}

func TestLoad_CookieSecureDisabled(t *testing.T) {
	t.Setenv("DATABASE_PATH", "test.db")
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("COOKIE_SECURE", "false")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CookieSecure {
		t.Error("expected CookieSecure false")
	}
}
