package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"biaslab/internal/config"
)

func TestDefaultsValidate(t *testing.T) {
	loaded, _, exists, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load with missing file returned error: %v", err)
	}
	if exists {
		t.Fatal("missing config reported as existing")
	}
	if loaded.API.BaseURL != "http://127.0.0.1:8000" {
		t.Fatalf("unexpected default base url %q", loaded.API.BaseURL)
	}
	if loaded.API.NarrativeOrder != "desc" {
		t.Fatalf("unexpected default narrative order %q", loaded.API.NarrativeOrder)
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[api]",
		`base_url = "https://bias.example.com/"`,
		"article_limit = 10",
		`narrative_order = "ASC"`,
		"[logging]",
		`level = "DEBUG"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("Load resolved %q exists=%v", resolved, exists)
	}
	if cfg.API.BaseURL != "https://bias.example.com" {
		t.Fatalf("base url not normalized: %q", cfg.API.BaseURL)
	}
	if cfg.API.ArticleLimit != 10 {
		t.Fatalf("article limit = %d, want 10", cfg.API.ArticleLimit)
	}
	if cfg.API.NarrativeOrder != "asc" {
		t.Fatalf("narrative order not lowercased: %q", cfg.API.NarrativeOrder)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level not lowercased: %q", cfg.Logging.Level)
	}
	// Unset sections keep defaults.
	if cfg.API.HighlightLimit != 50 {
		t.Fatalf("highlight limit default lost: %d", cfg.API.HighlightLimit)
	}
}

func TestEnvOverrideWins(t *testing.T) {
	t.Setenv("BIASLAB_API_BASE", "https://override.example.com")
	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.BaseURL != "https://override.example.com" {
		t.Fatalf("env override ignored: %q", cfg.API.BaseURL)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name    string
		content string
	}{
		{"bad scheme", "[api]\nbase_url = \"ftp://x\""},
		{"bad order", "[api]\nnarrative_order = \"newest\""},
		{"zero limit", "[api]\narticle_limit = -1"},
		{"bad format", "[logging]\nformat = \"xml\""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatalf("expected validation error for %s", tc.name)
			}
		})
	}
}

func TestSampleConfigNotEmpty(t *testing.T) {
	if !strings.Contains(config.SampleConfig(), "[api]") {
		t.Fatal("embedded sample config looks wrong")
	}
}
