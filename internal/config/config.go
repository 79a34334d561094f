package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const minJWTSecretLength = 16

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	Port           int    `env:"PORT" envDefault:"8080"`
	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"pgx"`
	DatabaseURL    string `env:"DATABASE_URL,required,notEmpty"`

	JWTSecret       string `env:"JWT_SECRET,required,notEmpty"`
	JWTIssuer       string `env:"JWT_ISSUER" envDefault:"nexus"`
	TokenTTLSeconds int64  `env:"TOKEN_TTL_SECONDS" envDefault:"86400"`
	AuthRequired    bool   `env:"AUTH_REQUIRED" envDefault:"false"`

	CorsOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3001"`

	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`
	MediaFolder         string `env:"MEDIA_FOLDER" envDefault:"nexus"`
	MaxUploadMB         int64  `env:"MAX_UPLOAD_MB" envDefault:"32"`

	StatsIntervalSeconds int    `env:"STATS_INTERVAL_SECONDS" envDefault:"10"`
	MetricsDiskPath      string `env:"METRICS_DISK_PATH" envDefault:"/"`

	Log LogConfig
}

// LogConfig controls the zap logger. Output is one of stdout, file or both.
type LogConfig struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
	Format     string `env:"LOG_FORMAT" envDefault:"json"`
	Output     string `env:"LOG_OUTPUT" envDefault:"stdout"`
	FilePath   string `env:"LOG_FILE_PATH" envDefault:"storage/logs/app.log"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"7"`
	MaxAgeDays int    `env:"LOG_RETENTION_DAYS" envDefault:"7"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	driver, err := normalizeDriver(cfg.DatabaseDriver)
	if err != nil {
		return Config{}, err
	}
	cfg.DatabaseDriver = driver
	if len(cfg.JWTSecret) < minJWTSecretLength {
		return Config{}, fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretLength)
	}
	if cfg.TokenTTLSeconds <= 0 {
		return Config{}, errors.New("TOKEN_TTL_SECONDS must be positive")
	}
	if cfg.StatsIntervalSeconds <= 0 {
		cfg.StatsIntervalSeconds = 10
	}
	cfg.CorsOrigins = cleanList(cfg.CorsOrigins)
	return cfg, nil
}

// SeedConfig drives cmd/seed. It needs no JWT or media settings.
type SeedConfig struct {
	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"pgx"`
	DatabaseURL    string `env:"DATABASE_URL,required,notEmpty"`
	AdminEmail     string `env:"SEED_ADMIN_EMAIL" envDefault:"admin@nexus.com"`
	AdminName      string `env:"SEED_ADMIN_NAME" envDefault:"Admin User"`
	AdminPassword  string `env:"SEED_ADMIN_PASSWORD" envDefault:"admin123"`

	Log LogConfig
}

func LoadSeed() (SeedConfig, error) {
	var cfg SeedConfig
	if err := env.Parse(&cfg); err != nil {
		return SeedConfig{}, fmt.Errorf("parsing config: %w", err)
	}
	driver, err := normalizeDriver(cfg.DatabaseDriver)
	if err != nil {
		return SeedConfig{}, err
	}
	cfg.DatabaseDriver = driver
	return cfg, nil
}

func normalizeDriver(driver string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "pgx", "postgres", "postgresql":
		return "pgx", nil
	case "sqlite", "sqlite3":
		return "sqlite", nil
	}
	return "", fmt.Errorf("unsupported DATABASE_DRIVER %q", driver)
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLSeconds) * time.Second
}

func (c Config) StatsInterval() time.Duration {
	return time.Duration(c.StatsIntervalSeconds) * time.Second
}

func (c Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// MediaEnabled reports whether Cloudinary credentials are present.
func (c Config) MediaEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func cleanList(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		value := strings.TrimSpace(item)
		if value != "" {
			cleaned = append(cleaned, value)
		}
	}
	return cleaned
}
