package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	AllowOrigins   string
	TZDefault      string
	ReqTimeoutSec  int
	RateLimitRPS   float64
	RateLimitBurst int
	GinMode        string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	LogLevel string
	LogFile  string
}

var defaults = map[string]any{
	"PORT":                    "8080",
	"ALLOW_ORIGINS":           "*",
	"TZ_DEFAULT":              "UTC",
	"REQUEST_TIMEOUT_SECONDS": 30,
	"RATE_LIMIT_RPS":          5.0,
	"RATE_LIMIT_BURST":        10,
	"GIN_MODE":                "release",
	"DB_DRIVER":               "sqlite",
	"DB_HOST":                 "localhost",
	"DB_PORT":                 "5432",
	"DB_USER":                 "postgres",
	"DB_PASSWORD":             "",
	"DB_NAME":                 "habits",
	"DB_SSLMODE":              "disable",
	"SQLITE_PATH":             "habits.db",
	"LOG_LEVEL":               "info",
	"LOG_FILE":                "",
}

// Load reads configuration from the environment, falling back to an optional
// habits.yaml in the working directory and then to built-in defaults.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom is Load with an explicit directory to search for habits.yaml.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.SetConfigName("habits")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read habits.yaml: %w", err)
		}
	}

	cfg := &Config{
		Port:           v.GetString("PORT"),
		AllowOrigins:   v.GetString("ALLOW_ORIGINS"),
		TZDefault:      v.GetString("TZ_DEFAULT"),
		ReqTimeoutSec:  v.GetInt("REQUEST_TIMEOUT_SECONDS"),
		RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
		GinMode:        v.GetString("GIN_MODE"),
		DBDriver:       strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		DBSSLMode:      v.GetString("DB_SSLMODE"),
		SQLitePath:     v.GetString("SQLITE_PATH"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFile:        v.GetString("LOG_FILE"),
	}

	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("unsupported GIN_MODE %q", cfg.GinMode)
	}
	if cfg.ReqTimeoutSec <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT_SECONDS must be positive, got %d", cfg.ReqTimeoutSec)
	}
	return cfg, nil
}

// PostgresDSN builds the connection URL for the postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}
