package config

import (
	"fmt"
	"time"

	"bonehealth-backend/internal/models"

	"github.com/caarlos0/env/v11"
)

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Env      string `env:"GO_ENV" envDefault:"dev"`
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	I18n     I18nConfig
	MinIO    MinIOConfig
}

type ServerConfig struct {
	Port         string        `env:"SERVER_PORT" envDefault:"8010"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"memory"`
}

type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName          string        `env:"DB_NAME" envDefault:"bonehealth"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	QueryTimeout    time.Duration `env:"DB_QUERY_TIMEOUT" envDefault:"10s"`
}

type I18nConfig struct {
	DefaultLanguage string `env:"I18N_DEFAULT_LANGUAGE" envDefault:"en"`
	// Optional directory of static {lang}.json catalogs used as the base layer.
	CatalogDir string `env:"I18N_CATALOG_DIR"`
}

type MinIOConfig struct {
	Enabled         bool   `env:"MINIO_ENABLED" envDefault:"false"`
	Endpoint        string `env:"AWS_ENDPOINT"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	BucketName      string `env:"AWS_BUCKET" envDefault:"bonehealth"`
	Region          string `env:"AWS_DEFAULT_REGION" envDefault:"us-east-1"`
	UseSSL          bool   `env:"AWS_USE_SSL" envDefault:"true"`
	PublicURL       string `env:"AWS_URL"`
	CatalogPrefix   string `env:"CATALOG_PREFIX" envDefault:"translations"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		c.Host,
		c.User,
		c.Password,
		c.DBName,
		c.Port,
		c.SSLMode,
	)
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "dev" || c.Env == "development"
}

func (c *Config) UsePostgres() bool {
	return c.Storage.Driver == DriverPostgres
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required when STORAGE_DRIVER=%s", DriverPostgres)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMemory, c.Storage.Driver)
	}

	if !models.IsSupportedLanguage(c.I18n.DefaultLanguage) {
		return fmt.Errorf("I18N_DEFAULT_LANGUAGE %q is not a supported language", c.I18n.DefaultLanguage)
	}

	if c.MinIO.Enabled {
		if c.MinIO.Endpoint == "" {
			return fmt.Errorf("AWS_ENDPOINT is required for MinIO")
		}
		if c.MinIO.AccessKeyID == "" {
			return fmt.Errorf("AWS_ACCESS_KEY_ID is required for MinIO")
		}
		if c.MinIO.SecretAccessKey == "" {
			return fmt.Errorf("AWS_SECRET_ACCESS_KEY is required for MinIO")
		}
	}
	return nil
}
