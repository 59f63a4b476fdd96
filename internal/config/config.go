package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/necfeedback/coursefeedback/internal/pkg/validation"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port           string   `yaml:"port" env:"SERVER_PORT"`
		Mode           string   `yaml:"mode" env:"SERVER_MODE"`
		StoragePath    string   `yaml:"storage_path" env:"SERVER_STORAGE_PATH"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS"`
		MaxUploadBytes int64    `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
	} `yaml:"database"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Mail struct {
		Host       string `yaml:"host" env:"MAIL_HOST"`
		Port       int    `yaml:"port" env:"MAIL_PORT"`
		Username   string `yaml:"username" env:"MAIL_USER"`
		Password   string `yaml:"password" env:"MAIL_PASS"`
		UseTLS     bool   `yaml:"use_tls" env:"MAIL_SECURE"`
		From       string `yaml:"from" env:"MAIL_FROM"`
		FromName   string `yaml:"from_name" env:"MAIL_FROM_NAME"`
		AdminEmail string `yaml:"admin_email" env:"ADMIN_EMAIL"`
	} `yaml:"mail"`

	Institution struct {
		Name        string `yaml:"name" env:"INSTITUTION_NAME"`
		EmailDomain string `yaml:"email_domain" env:"INSTITUTION_EMAIL_DOMAIN"`
	} `yaml:"institution"`
}

// LoadConfig loads configuration from a file, a .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	config.Institution.EmailDomain = validation.NormalizeDomain(config.Institution.EmailDomain)
	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "development"
	config.Server.StoragePath = "uploads"
	config.Server.AllowedOrigins = []string{"*"}
	config.Server.MaxUploadBytes = 5 << 20

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "coursefeedback"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"

	config.JWT.AccessTokenExpiration = "12h"
	config.JWT.Issuer = "coursefeedback"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Mail.Port = 587
	config.Mail.FromName = "Course Feedback"

	config.Institution.Name = "NEC"
	config.Institution.EmailDomain = "nec.edu.in"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection lifetime format: %w", err)
	}

	if validation.NormalizeDomain(config.Institution.EmailDomain) == "" {
		return fmt.Errorf("institution email domain is required")
	}

	if config.Mail.Host != "" && config.Mail.Port <= 0 {
		return fmt.Errorf("mail port must be positive when a mail host is set")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// MailConfigured reports whether SMTP delivery can be attempted
func (c *Config) MailConfigured() bool {
	return c.Mail.Host != "" && c.Mail.Username != "" && c.Mail.Password != ""
}
