package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Session  SessionConfig
	I18n     I18nConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // API base URL used to build RFC 7807 URIs
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

// StorageConfig points at the S3-compatible blob store holding uploads.
type StorageConfig struct {
	URL        string
	ServiceKey string
	Bucket     string
}

// SessionConfig verifies the session cookie issued by the OAuth collaborator.
type SessionConfig struct {
	Secret     string
	CookieName string
}

type I18nConfig struct {
	LocalesDir      string
	DefaultLanguage string
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// Load reads configuration from the .env file and the environment.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine in production; everything can come from
		// env vars. With an explicit config file the absence surfaces as a
		// path error, not a ConfigFileNotFoundError.
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("I18N_LOCALES_DIR", "./internal/infrastructure/i18n/locales")
	viper.SetDefault("I18N_DEFAULT_LANGUAGE", "ar")
	viper.SetDefault("SESSION_COOKIE_NAME", "rex_session")
	viper.SetDefault("LOG_LEVEL", "info")

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port:    viper.GetString("PORT"),
			Host:    viper.GetString("HOST"),
			BaseURL: viper.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetInt("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			DBName:      viper.GetString("DB_NAME"),
			SSLMode:     viper.GetString("DB_SSL_MODE"),
			MaxConns:    viper.GetInt("DB_MAX_CONNS"),
			MinConns:    viper.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: viper.GetInt("DB_MAX_IDLE_TIME"),
		},
		Storage: StorageConfig{
			URL:        viper.GetString("STORAGE_URL"),
			ServiceKey: viper.GetString("STORAGE_SERVICE_KEY"),
			Bucket:     viper.GetString("STORAGE_BUCKET"),
		},
		Session: SessionConfig{
			Secret:     viper.GetString("SESSION_SECRET"),
			CookieName: viper.GetString("SESSION_COOKIE_NAME"),
		},
		I18n: I18nConfig{
			LocalesDir:      viper.GetString("I18N_LOCALES_DIR"),
			DefaultLanguage: viper.GetString("I18N_DEFAULT_LANGUAGE"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetString("CORS_ALLOWED_ORIGINS"),
		},
	}

	return config, nil
}

// DSN returns the PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
