package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/geo-registry/internal/pkg/apikey"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Log        LogConfig
	Encryption EncryptionConfig
	Auth       AuthConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	SearchCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// EncryptionConfig carries the process-wide static key used to encrypt API
// keys for reversible display. Fixed at startup, never mutated.
type EncryptionConfig struct {
	SecretKey string
}

// AuthConfig carries the admin allowlist and the identities seeded at
// startup. Both are fixed at startup, never mutated.
type AuthConfig struct {
	AdminEmails []string
	AdminNames  []string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SearchCacheTTL: time.Duration(viper.GetInt("SEARCH_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Encryption: EncryptionConfig{
			SecretKey: viper.GetString("ENCRYPTION_SECRET_KEY"),
		},
		Auth: AuthConfig{
			AdminEmails: parseList(viper.GetString("ADMIN_EMAILS")),
			AdminNames:  parseList(viper.GetString("ADMIN_NAMES")),
		},
	}

	// Set default values if not provided
	if cfg.Cache.SearchCacheTTL == 0 {
		cfg.Cache.SearchCacheTTL = 60 * time.Second
	}
	if len(cfg.Auth.AdminEmails) == 0 {
		cfg.Auth.AdminEmails = []string{
			"admin1@example.com",
			"admin2@example.com",
			"admin3@example.com",
		}
	}
	if len(cfg.Auth.AdminNames) == 0 {
		cfg.Auth.AdminNames = []string{
			"Admin One",
			"Admin Two",
			"Admin Three",
		}
	}

	if len(cfg.Encryption.SecretKey) != apikey.KeyLength {
		return nil, fmt.Errorf(
			"ENCRYPTION_SECRET_KEY must be exactly %d characters long",
			apikey.KeyLength,
		)
	}
	if len(cfg.Auth.AdminNames) != len(cfg.Auth.AdminEmails) {
		return nil, fmt.Errorf("ADMIN_NAMES and ADMIN_EMAILS must have the same length")
	}

	return cfg, nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
