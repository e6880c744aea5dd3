package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"stylist-demo/internal/domain/services"
)

// isolate points every config lookup at an empty temp dir and clears the
// environment overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{
		"STYLIST_CONFIG", "API_KEY", "GEMINI_API_KEY", "PORT", "TEXT_MODEL", "VISION_MODEL",
		"IMAGE_MODEL", "IMAGEN_MODEL", "IMAGE_BACKEND", "TREND_COUNT", "MAX_CONCURRENT_IMAGES", "GEMINI_BASE_URL",
	} {
		t.Setenv(key, "")
	}
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != "8080" {
		t.Errorf("Port: got %q, want %q", cfg.Server.Port, "8080")
	}
	if cfg.Models.Text != services.DefaultTextModel {
		t.Errorf("Text model: got %q", cfg.Models.Text)
	}
	if cfg.Models.Vision != services.DefaultVisionModel {
		t.Errorf("Vision model: got %q", cfg.Models.Vision)
	}
	if cfg.Models.Image != services.DefaultImageModel {
		t.Errorf("Image model: got %q", cfg.Models.Image)
	}
	if cfg.Models.ImageBackend != ImageBackendGemini {
		t.Errorf("Image backend: got %q", cfg.Models.ImageBackend)
	}
	if cfg.Trends.Count != 3 {
		t.Errorf("Trend count: got %d, want 3", cfg.Trends.Count)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	isolate(t)

	_, err := Load()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("Expected ErrMissingAPIKey, got %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("GEMINI_API_KEY", "fallback-key")
	t.Setenv("PORT", "9090")
	t.Setenv("IMAGE_BACKEND", "Imagen")
	t.Setenv("TREND_COUNT", "5")
	t.Setenv("MAX_CONCURRENT_IMAGES", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIKey != "fallback-key" {
		t.Errorf("APIKey: got %q", cfg.APIKey)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Port: got %q", cfg.Server.Port)
	}
	if cfg.Models.ImageBackend != ImageBackendImagen {
		t.Errorf("Image backend: got %q", cfg.Models.ImageBackend)
	}

	opts := cfg.StylistOptions()
	if opts.TrendCount != 5 || opts.MaxConcurrentImages != 2 {
		t.Errorf("StylistOptions: got %#v", opts)
	}
}

func TestLoad_APIKeyTakesPrecedence(t *testing.T) {
	isolate(t)
	t.Setenv("API_KEY", "primary")
	t.Setenv("GEMINI_API_KEY", "fallback")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "primary" {
		t.Errorf("APIKey: got %q, want %q", cfg.APIKey, "primary")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("API_KEY", "key")

	path := filepath.Join(dir, "stylist.toml")
	content := `
[server]
port = "7070"

[models]
text = "gemini-2.0-flash"

[trends]
count = 4
max_concurrent_images = 3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STYLIST_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("Port: got %q", cfg.Server.Port)
	}
	if cfg.Models.Text != "gemini-2.0-flash" {
		t.Errorf("Text model: got %q", cfg.Models.Text)
	}
	// unspecified keys keep defaults
	if cfg.Models.Vision != services.DefaultVisionModel {
		t.Errorf("Vision model: got %q", cfg.Models.Vision)
	}
	if cfg.Trends.Count != 4 || cfg.Trends.MaxConcurrentImages != 3 {
		t.Errorf("Trends: got %#v", cfg.Trends)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("API_KEY", "key")

	path := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(path, []byte("[server\nport ="), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STYLIST_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatal("Expected parse error")
	}
}

func TestLoad_InvalidNumber(t *testing.T) {
	isolate(t)
	t.Setenv("API_KEY", "key")
	t.Setenv("TREND_COUNT", "three")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for non-numeric TREND_COUNT")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "blank key", mutate: func(c *Config) { c.APIKey = "  " }, wantErr: true},
		{name: "unknown backend", mutate: func(c *Config) { c.Models.ImageBackend = "dalle" }, wantErr: true},
		{name: "zero trend count", mutate: func(c *Config) { c.Trends.Count = 0 }, wantErr: true},
		{name: "negative concurrency", mutate: func(c *Config) { c.Trends.MaxConcurrentImages = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.APIKey = "key"
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
