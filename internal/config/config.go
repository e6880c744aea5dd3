package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"stylist-demo/internal/domain/services"
)

// ErrMissingAPIKey means no credential was supplied; nothing can be called.
var ErrMissingAPIKey = errors.New("API_KEY environment variable is not set")

const (
	ImageBackendGemini = "gemini"
	ImageBackendImagen = "imagen"

	DefaultImagenModel = "imagen-4.0-generate-001"
)

// Config holds all stylist configuration.
type Config struct {
	// 環境変数からのみ設定する
	APIKey string `toml:"-"`

	Server  ServerConfig  `toml:"server"`
	Models  ModelsConfig  `toml:"models"`
	Trends  TrendsConfig  `toml:"trends"`
	Gateway GatewayConfig `toml:"gateway"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type ModelsConfig struct {
	Text         string `toml:"text"`
	Vision       string `toml:"vision"`
	Image        string `toml:"image"`
	Imagen       string `toml:"imagen"`
	ImageBackend string `toml:"image_backend"`
}

type TrendsConfig struct {
	Count               int `toml:"count"`
	MaxConcurrentImages int `toml:"max_concurrent_images"`
}

type GatewayConfig struct {
	// 空の場合はSDKのデフォルト
	BaseURL string `toml:"base_url"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Models: ModelsConfig{
			Text:         services.DefaultTextModel,
			Vision:       services.DefaultVisionModel,
			Image:        services.DefaultImageModel,
			Imagen:       DefaultImagenModel,
			ImageBackend: ImageBackendGemini,
		},
		Trends: TrendsConfig{
			Count:               services.DefaultTrendCount,
			MaxConcurrentImages: 0,
		},
	}
}

// Load reads the optional config file, applies environment overrides and
// validates the result.
func Load() (Config, error) {
	cfg := DefaultConfig()

	for _, p := range configPaths() {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(getenv func(string) string) error {
	c.APIKey = getenv("API_KEY")
	if c.APIKey == "" {
		c.APIKey = getenv("GEMINI_API_KEY")
	}

	setString(&c.Server.Port, getenv("PORT"))
	setString(&c.Models.Text, getenv("TEXT_MODEL"))
	setString(&c.Models.Vision, getenv("VISION_MODEL"))
	setString(&c.Models.Image, getenv("IMAGE_MODEL"))
	setString(&c.Models.Imagen, getenv("IMAGEN_MODEL"))
	setString(&c.Models.ImageBackend, strings.ToLower(getenv("IMAGE_BACKEND")))
	setString(&c.Gateway.BaseURL, getenv("GEMINI_BASE_URL"))

	if err := setInt(&c.Trends.Count, "TREND_COUNT", getenv("TREND_COUNT")); err != nil {
		return err
	}
	if err := setInt(&c.Trends.MaxConcurrentImages, "MAX_CONCURRENT_IMAGES", getenv("MAX_CONCURRENT_IMAGES")); err != nil {
		return err
	}
	return nil
}

// Validate reports configuration that makes the service unusable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}

	switch c.Models.ImageBackend {
	case ImageBackendGemini, ImageBackendImagen:
	default:
		return fmt.Errorf("unknown image backend %q (want %q or %q)", c.Models.ImageBackend, ImageBackendGemini, ImageBackendImagen)
	}

	if c.Trends.Count < 1 {
		return fmt.Errorf("trends.count must be at least 1, got %d", c.Trends.Count)
	}
	if c.Trends.MaxConcurrentImages < 0 {
		return fmt.Errorf("trends.max_concurrent_images must not be negative, got %d", c.Trends.MaxConcurrentImages)
	}
	return nil
}

// StylistOptions maps the config onto the domain service options.
func (c Config) StylistOptions() services.Options {
	return services.Options{
		Models: services.ModelConfig{
			Text:   c.Models.Text,
			Vision: c.Models.Vision,
			Image:  c.Models.Image,
		},
		TrendCount:          c.Trends.Count,
		MaxConcurrentImages: c.Trends.MaxConcurrentImages,
	}
}

func configPaths() []string {
	var paths []string

	if p := os.Getenv("STYLIST_CONFIG"); p != "" {
		paths = append(paths, p)
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "stylist", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "stylist", "config.toml"))
	}

	return paths
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func setInt(dst *int, name, value string) error {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	*dst = n
	return nil
}
