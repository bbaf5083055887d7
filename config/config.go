package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string `mapstructure:"server_port"`
	ServerHost string `mapstructure:"server_host"`

	// Database configuration
	DBDriver   string `mapstructure:"db_driver"`
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSSLMode  string `mapstructure:"db_ssl_mode"`
	// Path of the sqlite database when DBDriver is sqlite
	DBPath string `mapstructure:"db_path"`

	// Redis configuration
	RedisHost     string `mapstructure:"redis_host"`
	RedisPort     string `mapstructure:"redis_port"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	RedisURL      string `mapstructure:"redis_url"`

	// JWT configuration
	JWTSecret string `mapstructure:"jwt_secret"`

	// Requests per minute allowed on the scaling endpoints, per client
	ScaleRateLimit int `mapstructure:"scale_rate_limit"`

	// Allowed CORS origins
	CORSOrigins []string `mapstructure:"cors_origins"`
}

var keys = []string{
	"server_port",
	"server_host",
	"db_driver",
	"db_host",
	"db_port",
	"db_user",
	"db_password",
	"db_name",
	"db_ssl_mode",
	"db_path",
	"redis_host",
	"redis_port",
	"redis_password",
	"redis_db",
	"redis_url",
	"jwt_secret",
	"scale_rate_limit",
	"cors_origins",
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	v := viper.New()
	setDefaults(v, env)
	for _, key := range keys {
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	// Outside CI, Docker secrets fill anything the environment left unset
	if env != CI {
		for _, key := range keys {
			if os.Getenv(strings.ToUpper(key)) != "" {
				continue
			}
			if secret := readSecret(key); secret != "" {
				v.Set(key, secret)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.CORSOrigins = splitList(v.GetString("cors_origins"), cfg.CORSOrigins)

	if err := ValidateConfig(cfg, env); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, env Environment) {
	v.SetDefault("server_port", "8080")
	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("db_driver", "postgres")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_name", "larder")
	v.SetDefault("db_ssl_mode", "disable")
	v.SetDefault("db_path", "larder.db")
	v.SetDefault("redis_host", "localhost")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("scale_rate_limit", 120)
	v.SetDefault("cors_origins", "http://localhost:5173")

	if env == Development || env == Test {
		v.SetDefault("db_password", "postgres")
		v.SetDefault("jwt_secret", "dev-secret-change-me")
	}
}

// splitList accepts either a comma separated string or an already decoded list
func splitList(raw string, fallback []string) []string {
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DSN returns the postgres connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
