package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // Embedded zone database for report.timezone

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Reports and export history
	Postgres PostgresConfig

	// Redis - Report list cache
	Redis RedisConfig

	// MinIO - Exported PDF storage
	MinIO MinIOConfig

	// Kafka - Export events
	Kafka KafkaConfig

	// JWT - Authentication
	JWT JWTConfig

	// Domain Configuration
	Resource ResourceConfig
	Report   ReportConfig
	Export   ExportConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// KafkaConfig is the configuration for Kafka. An empty broker list disables events.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	CacheTTL time.Duration
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// JWTConfig is used to verify tokens (same secret/issuer as auth service). This service does not issue tokens.
type JWTConfig struct {
	Issuer     string
	Audience   []string
	SecretKey  string
	CookieName string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// ResourceConfig locates the visualization images of the classification back end.
type ResourceConfig struct {
	BaseURL       string
	Timeout       time.Duration
	MaxImageBytes int64
}

// ReportConfig controls how reports are compiled.
type ReportConfig struct {
	ModelAName string
	ModelBName string
	Timezone   string
}

// ExportConfig controls the export job lifecycle.
type ExportConfig struct {
	Timeout        time.Duration
	AutoCloseAfter time.Duration
	JobRetention   time.Duration
	DownloadExpiry time.Duration
	SweepInterval  time.Duration
	PDFAuthor      string
	PDFFontPath    string // UTF-8 TrueType font; empty keeps the cp1252 core font
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("diagnosis-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/diagnosis/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.CacheTTL = viper.GetDuration("redis.cache_ttl")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Kafka - Event publishing (optional)
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// JWT
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.CookieName = viper.GetString("jwt.cookie_name")

	// Remote resources
	cfg.Resource.BaseURL = viper.GetString("resource.base_url")
	cfg.Resource.Timeout = viper.GetDuration("resource.timeout")
	cfg.Resource.MaxImageBytes = viper.GetInt64("resource.max_image_bytes")

	// Report compilation
	cfg.Report.ModelAName = viper.GetString("report.model_a_name")
	cfg.Report.ModelBName = viper.GetString("report.model_b_name")
	cfg.Report.Timezone = viper.GetString("report.timezone")

	// Export jobs
	cfg.Export.Timeout = viper.GetDuration("export.timeout")
	cfg.Export.AutoCloseAfter = viper.GetDuration("export.auto_close_after")
	cfg.Export.JobRetention = viper.GetDuration("export.job_retention")
	cfg.Export.DownloadExpiry = viper.GetDuration("export.download_expiry")
	cfg.Export.SweepInterval = viper.GetDuration("export.sweep_interval")
	cfg.Export.PDFAuthor = viper.GetString("export.pdf_author")
	cfg.Export.PDFFontPath = viper.GetString("export.pdf_font_path")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Location returns the time zone report dates are rendered in.
func (c ReportConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "public")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	// Reports are inserted by the classification back end without invalidating
	// the cache, so new uploads show up at most one TTL late
	viper.SetDefault("redis.cache_ttl", "30s")

	// MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "diagnosis-exports")

	// Kafka
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "diagnosis.export.events")

	// JWT
	viper.SetDefault("jwt.issuer", "diagnosis-auth")
	viper.SetDefault("jwt.audience", []string{"diagnosis-srv"})
	viper.SetDefault("jwt.cookie_name", "access_token")

	// Remote resources
	viper.SetDefault("resource.base_url", "http://localhost:5000")
	viper.SetDefault("resource.timeout", "15s")
	viper.SetDefault("resource.max_image_bytes", 10<<20)

	// Report
	viper.SetDefault("report.model_a_name", "Model A")
	viper.SetDefault("report.model_b_name", "Model B")
	viper.SetDefault("report.timezone", "UTC")

	// Export
	viper.SetDefault("export.timeout", "2m")
	viper.SetDefault("export.auto_close_after", "30m")
	viper.SetDefault("export.job_retention", "24h")
	viper.SetDefault("export.download_expiry", "15m")
	viper.SetDefault("export.sweep_interval", "1m")
}

func validate(cfg *Config) error {
	// Validate JWT fields
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if cfg.JWT.Issuer == "" {
		return fmt.Errorf("jwt.issuer is required")
	}
	if len(cfg.JWT.Audience) == 0 {
		return fmt.Errorf("jwt.audience must have at least one value")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	// Validate MinIO Configuration
	if cfg.MinIO.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is required")
	}
	if cfg.MinIO.AccessKey == "" {
		return fmt.Errorf("minio.access_key is required")
	}
	if cfg.MinIO.SecretKey == "" {
		return fmt.Errorf("minio.secret_key is required")
	}
	if cfg.MinIO.Bucket == "" {
		return fmt.Errorf("minio.bucket is required")
	}

	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required")
	}

	if cfg.Resource.BaseURL == "" {
		return fmt.Errorf("resource.base_url is required")
	}
	if cfg.Resource.MaxImageBytes <= 0 {
		return fmt.Errorf("resource.max_image_bytes must be greater than 0")
	}

	if _, err := cfg.Report.Location(); err != nil {
		return fmt.Errorf("report.timezone is invalid: %w", err)
	}

	if cfg.Export.Timeout <= 0 {
		return fmt.Errorf("export.timeout must be greater than 0")
	}
	if cfg.Export.DownloadExpiry <= 0 {
		return fmt.Errorf("export.download_expiry must be greater than 0")
	}
	if cfg.Export.DownloadExpiry > 7*24*time.Hour {
		return fmt.Errorf("export.download_expiry cannot exceed 7 days")
	}

	return nil
}
