package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"headless-broker"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	PostgresDSN   string   `env:"POSTGRES_DSN" envDefault:"host=localhost user=postgres password=postgres dbname=cms sslmode=disable"`
	AutoMigrate   bool     `env:"AUTO_MIGRATE" envDefault:"true"`
	RedisAddr     string   `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string   `env:"REDIS_PASSWORD"`
	RedisDB       int      `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string   `env:"REDIS_PREFIX" envDefault:"headless:"`
	KafkaBrokers  []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`
	ContentTopic  string   `env:"CONTENT_TOPIC" envDefault:"content-events"`
	ConsumerGroup string   `env:"CONSUMER_GROUP" envDefault:"headless-broker"`
	OTLPEndpoint  string   `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	JWTSecret     string `env:"JWT_SECRET"`
	AuthKey       string `env:"AUTH_KEY"`
	SecureAuthKey string `env:"SECURE_AUTH_KEY"`

	PreviewTTL         time.Duration `env:"PREVIEW_TTL" envDefault:"300s"`
	SiteURL            string        `env:"SITE_URL" envDefault:"http://localhost"`
	FrontendURL        string        `env:"FRONTEND_URL"`
	FrontendOrigin     string        `env:"FRONTEND_ORIGIN"`
	FrontendPreviewURL string        `env:"FRONTEND_PREVIEW_URL"`

	BuildHookURL   string        `env:"NETLIFY_BUILD_HOOK_URL"`
	DeployHook     string        `env:"NETLIFY_DEPLOY_HOOK"`
	DeployThrottle time.Duration `env:"DEPLOY_THROTTLE" envDefault:"60s"`
	DeployTimeout  time.Duration `env:"DEPLOY_TIMEOUT" envDefault:"10s"`
	DeployRetries  uint64        `env:"DEPLOY_RETRIES" envDefault:"3"`

	TargetTaxonomies []string `env:"TARGET_TAXONOMIES" envSeparator:","`
}

// Taxonomies whose term selections always carry their ancestors.
var defaultTargetTaxonomies = []string{
	"material_category",
	"recommended_uses",
	"limitations",
	"pattern_orientation",
	"opacity",
	"lustre",
	"fray_tendency",
	"care_instructions",
	"classification",
	"fineness_unit",
	"form",
	"cross-section_shape",
	"hydrophilicity",
	"chemical_resistance",
	"heat_sensitivity",
	"hand___handle_descriptors",
	"lustre___sheen",
	"warmth___insulation_tendency",
	"breathability_tendency",
	"wicking_tendency",
	"drying_rate",
	"odour_retention_tendency",
	"static_propensity",
	"prickle___irritation_risk",
	"stretch___recovery",
	"uv_resistance",
	"sustainability_flags_",
	"primary_uses",
	"common_applications",
	"flammability___class",
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("failed to load .env file, using environment and defaults", "error", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.TargetTaxonomies) == 0 {
		cfg.TargetTaxonomies = append([]string(nil), defaultTargetTaxonomies...)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.PreviewSecret() == "" {
		return nil, fmt.Errorf("AUTH_KEY or SECURE_AUTH_KEY is required")
	}

	slog.Info("config loaded",
		"http_addr", cfg.HTTPAddr,
		"redis_addr", cfg.RedisAddr,
		"kafka_brokers", cfg.KafkaBrokers,
		"content_topic", cfg.ContentTopic,
		"preview_frontend", cfg.PreviewFrontendURL(),
		"build_hook_configured", cfg.WebhookURL() != "")
	return cfg, nil
}

// TokenConfig is the subset of the environment needed to mint editor tokens.
type TokenConfig struct {
	JWTSecret string `env:"JWT_SECRET"`
}

// LoadTokenConfig reads only JWT_SECRET, so tooling runs without the service's other secrets.
func LoadTokenConfig() (*TokenConfig, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file, using environment", "error", err)
	}

	cfg := &TokenConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

// PreviewSecret is the HMAC key for preview tokens.
func (c *Config) PreviewSecret() string {
	if c.AuthKey != "" {
		return c.AuthKey
	}
	return c.SecureAuthKey
}

// PreviewFrontendURL returns the frontend preview page, or "" when previews stay in the CMS.
func (c *Config) PreviewFrontendURL() string {
	if c.FrontendPreviewURL != "" {
		return c.FrontendPreviewURL
	}
	base := c.FrontendURL
	if base == "" {
		base = c.FrontendOrigin
	}
	if base == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/preview"
}

func (c *Config) WebhookURL() string {
	if c.BuildHookURL != "" {
		return c.BuildHookURL
	}
	return c.DeployHook
}

func (c *Config) CORSOrigin() string {
	switch {
	case c.FrontendURL != "":
		return c.FrontendURL
	case c.FrontendOrigin != "":
		return c.FrontendOrigin
	}
	return c.SiteURL
}

func (c *Config) TargetTaxonomyNames() []string {
	return c.TargetTaxonomies
}

func (c *Config) IsTargetTaxonomy(name string) bool {
	for _, t := range c.TargetTaxonomies {
		if t == name {
			return true
		}
	}
	return false
}
