package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(WithSearchPaths(t.TempDir()))
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if c.Season != "current" {
		t.Errorf("expected season '%s' but found '%s'", "current", c.Season)
	}
	if c.API.Timeout != 10*time.Second {
		t.Errorf("expected timeout %s but found %s", 10*time.Second, c.API.Timeout)
	}
	if !c.LiveTiming.Enabled {
		t.Errorf("expected live timing to be enabled by default")
	}
	if c.Locale.Language != "cs" || c.Locale.Timezone != "Europe/Prague" {
		t.Errorf("expected locale cs/Europe/Prague but found %s/%s", c.Locale.Language, c.Locale.Timezone)
	}
	if c.Server.Addr != ":8080" {
		t.Errorf("expected addr '%s' but found '%s'", ":8080", c.Server.Addr)
	}
	if c.Server.CacheTTL != 5*time.Minute {
		t.Errorf("expected cache ttl %s but found %s", 5*time.Minute, c.Server.CacheTTL)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "f1cal.yaml"), `
season: "2025"
api:
  timeout: 3s
locale:
  language: en
log:
  level: debug
server:
  addr: ":9000"
  cache_ttl: 1m
`)

	t.Run("File", func(t *testing.T) {
		c, err := Load(WithSearchPaths(dir))
		if err != nil {
			t.Fatalf("expected no error but found %v", err)
		}
		if c.Season != "2025" {
			t.Errorf("expected season '%s' but found '%s'", "2025", c.Season)
		}
		if c.API.Timeout != 3*time.Second {
			t.Errorf("expected timeout %s but found %s", 3*time.Second, c.API.Timeout)
		}
		if c.Server.CacheTTL != time.Minute {
			t.Errorf("expected cache ttl %s but found %s", time.Minute, c.Server.CacheTTL)
		}
		if c.API.BaseURL != "https://api.jolpi.ca/ergast/f1" {
			t.Errorf("expected default base url to survive but found '%s'", c.API.BaseURL)
		}
	})

	t.Run("EnvOverFile", func(t *testing.T) {
		t.Setenv("F1CAL_SEASON", "2024")
		t.Setenv("F1CAL_SERVER_ADDR", ":7000")
		c, err := Load(WithSearchPaths(dir))
		if err != nil {
			t.Fatalf("expected no error but found %v", err)
		}
		if c.Season != "2024" {
			t.Errorf("expected season '%s' but found '%s'", "2024", c.Season)
		}
		if c.Server.Addr != ":7000" {
			t.Errorf("expected addr '%s' but found '%s'", ":7000", c.Server.Addr)
		}
		if c.Locale.Language != "en" {
			t.Errorf("expected language '%s' but found '%s'", "en", c.Locale.Language)
		}
	})

	t.Run("OverridesOverEnv", func(t *testing.T) {
		t.Setenv("F1CAL_SEASON", "2024")
		c, err := Load(WithSearchPaths(dir), WithOverrides(Config{Season: "2026", Locale: LocaleConfig{Language: "cs"}}))
		if err != nil {
			t.Fatalf("expected no error but found %v", err)
		}
		if c.Season != "2026" {
			t.Errorf("expected season '%s' but found '%s'", "2026", c.Season)
		}
		if c.Locale.Language != "cs" {
			t.Errorf("expected language '%s' but found '%s'", "cs", c.Locale.Language)
		}
		if c.Log.Level != "debug" {
			t.Errorf("expected zero override to keep level '%s' but found '%s'", "debug", c.Log.Level)
		}
	})
}

func TestLoadErrors(t *testing.T) {
	t.Run("MissingExplicitFile", func(t *testing.T) {
		if _, err := Load(WithFile(filepath.Join(t.TempDir(), "missing.yaml"))); err == nil {
			t.Errorf("expected error for missing file but found nil")
		}
	})

	t.Run("InvalidSeason", func(t *testing.T) {
		_, err := Load(WithSearchPaths(t.TempDir()), WithOverrides(Config{Season: "next"}))
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("expected ErrInvalid but found %v", err)
		}
	})

	t.Run("InvalidTimezone", func(t *testing.T) {
		_, err := Load(WithSearchPaths(t.TempDir()), WithOverrides(Config{Locale: LocaleConfig{Timezone: "Mars/Olympus"}}))
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("expected ErrInvalid but found %v", err)
		}
	})
}

func TestMerge(t *testing.T) {
	dst := Config{Season: "current", Server: ServerConfig{Addr: ":8080"}}
	if err := Merge(&dst, Config{Server: ServerConfig{Addr: ":1234"}}); err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if dst.Server.Addr != ":1234" {
		t.Errorf("expected addr '%s' but found '%s'", ":1234", dst.Server.Addr)
	}
	if dst.Season != "current" {
		t.Errorf("expected season '%s' but found '%s'", "current", dst.Season)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unable to write %s: %v", path, err)
	}
}
