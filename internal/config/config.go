package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Source kinds
const (
	SourceDir      = "dir"
	SourceHTTP     = "http"
	SourceS3       = "s3"
	SourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Server    Server    `yaml:"server"`
	Source    Source    `yaml:"source"`
	S3        S3        `yaml:"s3"`
	Database  Database  `yaml:"database"`
	Scheduler Scheduler `yaml:"scheduler"`
	Insights  Insights  `yaml:"insights"`
	Log       Log       `yaml:"log"`
}

// Server holds HTTP server configuration
type Server struct {
	Host         string        `yaml:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port         string        `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" env-default:"60s"`
}

// Address returns the full server address
func (s Server) Address() string {
	return s.Host + ":" + s.Port
}

// Source selects where the export documents are read from
type Source struct {
	Kind    string        `yaml:"kind" env:"SOURCE_KIND" env-default:"dir"`
	Dir     string        `yaml:"dir" env:"SOURCE_DIR" env-default:"./data"`
	BaseURL string        `yaml:"base_url" env:"SOURCE_BASE_URL"`
	Timeout time.Duration `yaml:"timeout" env:"SOURCE_TIMEOUT" env-default:"10s"`
	Retries uint64        `yaml:"retries" env:"SOURCE_RETRIES" env-default:"3"`
}

// Validate checks that the selected kind has what it needs
func (s Source) Validate() error {
	switch s.Kind {
	case SourceDir:
		if s.Dir == "" {
			return fmt.Errorf("source dir is required for kind %q", s.Kind)
		}
	case SourceHTTP:
		if s.BaseURL == "" {
			return fmt.Errorf("source base url is required for kind %q", s.Kind)
		}
	case SourceS3, SourcePostgres:
	default:
		return fmt.Errorf("unknown source kind %q", s.Kind)
	}
	return nil
}

// S3 holds S3/MinIO storage configuration
type S3 struct {
	Endpoint        string `yaml:"endpoint" env:"S3_ENDPOINT" env-default:"http://localhost:9000"`
	AccessKeyID     string `yaml:"access_key_id" env:"S3_ACCESS_KEY_ID" env-default:"minioadmin"`
	SecretAccessKey string `yaml:"secret_access_key" env:"S3_SECRET_ACCESS_KEY" env-default:"minioadmin"`
	Bucket          string `yaml:"bucket" env:"S3_BUCKET" env-default:"insights"`
	Region          string `yaml:"region" env:"S3_REGION" env-default:"us-east-1"`
	Prefix          string `yaml:"prefix" env:"S3_PREFIX" env-default:"data"`
}

// Database holds database configuration
type Database struct {
	// PostgreSQL
	PostgresDSN string `yaml:"postgres_dsn" env:"DATABASE_URL"`

	// Connection pool settings
	MaxConns     int32         `yaml:"max_conns" env:"DB_MAX_CONNS" env-default:"10"`
	MinConns     int32         `yaml:"min_conns" env:"DB_MIN_CONNS" env-default:"1"`
	ConnLifetime time.Duration `yaml:"conn_lifetime" env:"DB_CONN_LIFETIME" env-default:"5m"`
}

// Scheduler holds dataset reload scheduler configuration
type Scheduler struct {
	Enabled  bool          `yaml:"enabled" env:"SCHEDULER_ENABLED" env-default:"false"`
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"15m"`
	Timeout  time.Duration `yaml:"timeout" env:"SCHEDULER_TIMEOUT" env-default:"1m"`
}

// Insights holds defaults for insight queries
type Insights struct {
	MilestoneDate string `yaml:"milestone_date" env:"MILESTONE_DATE" env-default:"2026-01-01"`
	Timezone      string `yaml:"timezone" env:"TIMEZONE" env-default:"Asia/Seoul"`
}

// Milestone parses MilestoneDate
func (i Insights) Milestone() (time.Time, error) {
	t, err := time.Parse(time.DateOnly, i.MilestoneDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing milestone date %q: %w", i.MilestoneDate, err)
	}
	return t, nil
}

// Location loads Timezone
func (i Insights) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(i.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", i.Timezone, err)
	}
	return loc, nil
}

// Log holds logging configuration
type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// SlogLevel maps Level to a slog level, defaulting to info
func (l Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MustLoad loads configuration from environment and panics on error
func MustLoad() Config {
	// Load .env file if exists (for development)
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Source.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	return cfg
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Source.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
