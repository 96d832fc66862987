// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// maxPageSize mirrors the hard cap applied by the listing queries.
const maxPageSize = 100

// Config is the top-level application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Storage    StorageConfig    `yaml:"storage"`
	Auth       AuthConfig       `yaml:"auth"`
	Pagination PaginationConfig `yaml:"pagination"`
	Cache      CacheConfig      `yaml:"cache"`
	Schedule   ScheduleConfig   `yaml:"schedule"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// RedisConfig defines the image path cache backend. An empty address
// disables caching.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Enabled reports whether a Redis address is configured.
func (r *RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// StorageConfig defines the S3-compatible bucket holding product images.
type StorageConfig struct {
	Endpoint     string  `yaml:"endpoint"`
	AccessKey    string  `yaml:"access_key"`
	SecretKey    string  `yaml:"secret_key"`
	Bucket       string  `yaml:"bucket"`
	Region       string  `yaml:"region"`
	UseSSL       bool    `yaml:"use_ssl"`
	CDNBaseURL   string  `yaml:"cdn_base_url"`
	MaxImageSize int64   `yaml:"max_image_size"`
	DeleteRate   float64 `yaml:"delete_rate"`
	DeleteBurst  int     `yaml:"delete_burst"`
}

// AuthConfig defines bearer token settings.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	Issuer    string        `yaml:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

// PaginationConfig defines listing page sizes.
type PaginationConfig struct {
	DefaultSize int `yaml:"default_size"`
	MaxSize     int `yaml:"max_size"`
}

// CacheConfig defines cache lifetimes.
type CacheConfig struct {
	ImageTTL time.Duration `yaml:"image_ttl"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	ImageCleanupInterval time.Duration `yaml:"image_cleanup_interval"`
	ImageCleanupBatch    int           `yaml:"image_cleanup_batch"`
	StaleClaimAfter      time.Duration `yaml:"stale_claim_after"`
}

// TelemetryConfig defines OpenTelemetry export settings.
type TelemetryConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Endpoint       string        `yaml:"endpoint"`
	Insecure       bool          `yaml:"insecure"`
	ServiceName    string        `yaml:"service_name"`
	SampleRatio    float64       `yaml:"sample_ratio"`
	MetricInterval time.Duration `yaml:"metric_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyStorageDefaults(&cfg.Storage)
	applyAuthDefaults(&cfg.Auth)
	applyPaginationDefaults(&cfg.Pagination)
	applyCacheDefaults(&cfg.Cache)
	applyScheduleDefaults(&cfg.Schedule)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
	if s.MaxUploadBytes == 0 {
		s.MaxUploadBytes = 60 << 20
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyStorageDefaults(s *StorageConfig) {
	if s.Region == "" {
		s.Region = "us-east-1"
	}
	if s.MaxImageSize == 0 {
		s.MaxImageSize = 10 << 20
	}
	if s.DeleteRate == 0 {
		s.DeleteRate = 10
	}
	if s.DeleteBurst == 0 {
		s.DeleteBurst = 5
	}
}

func applyAuthDefaults(a *AuthConfig) {
	if a.Issuer == "" {
		a.Issuer = "market-api"
	}
	if a.TokenTTL == 0 {
		a.TokenTTL = 24 * time.Hour
	}
}

func applyPaginationDefaults(p *PaginationConfig) {
	if p.DefaultSize == 0 {
		p.DefaultSize = 20
	}
	if p.MaxSize == 0 {
		p.MaxSize = 100
	}
}

func applyCacheDefaults(c *CacheConfig) {
	if c.ImageTTL == 0 {
		c.ImageTTL = 10 * time.Minute
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.ImageCleanupInterval == 0 {
		s.ImageCleanupInterval = 5 * time.Minute
	}
	if s.ImageCleanupBatch == 0 {
		s.ImageCleanupBatch = 50
	}
	if s.StaleClaimAfter == 0 {
		s.StaleClaimAfter = 10 * time.Minute
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "market-api"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1
	}
	if t.MetricInterval == 0 {
		t.MetricInterval = 30 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Storage.Endpoint == "" {
		errs = append(errs, fmt.Errorf("storage.endpoint is required"))
	}
	if cfg.Storage.Bucket == "" {
		errs = append(errs, fmt.Errorf("storage.bucket is required"))
	}
	if u, err := url.Parse(cfg.Storage.CDNBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("storage.cdn_base_url must be an absolute URL (got %q)", cfg.Storage.CDNBaseURL))
	}
	if cfg.Storage.DeleteRate < 0 || cfg.Storage.DeleteBurst < 1 {
		errs = append(errs, fmt.Errorf("storage.delete_rate must be positive and storage.delete_burst at least 1"))
	}

	if len(cfg.Auth.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 bytes"))
	}

	if cfg.Pagination.DefaultSize < 1 || cfg.Pagination.DefaultSize > cfg.Pagination.MaxSize {
		errs = append(errs, fmt.Errorf(
			"pagination.default_size must be between 1 and pagination.max_size (got %d, max %d)",
			cfg.Pagination.DefaultSize, cfg.Pagination.MaxSize,
		))
	}

	if cfg.Pagination.MaxSize > maxPageSize {
		errs = append(errs, fmt.Errorf("pagination.max_size must be at most %d (got %d)", maxPageSize, cfg.Pagination.MaxSize))
	}

	if cfg.Telemetry.SampleRatio < 0 || cfg.Telemetry.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("telemetry.sample_ratio must be between 0 and 1 (got %g)", cfg.Telemetry.SampleRatio))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
