package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all process configuration. It is loaded once at startup and
// treated as immutable for the process lifetime.
type Config struct {
	AppPort     string
	DBDriver    string // "sqlite" or "postgres"
	DBDSN       string
	RabbitMQURL string // empty disables event publishing

	PageSize int

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	TokenExpiry time.Duration

	// Seed credentials for the back-office admin account.
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from environment variables (with defaults) and
// validates it. Missing or invalid required values must fail process startup,
// not surface at request time.
func Load() (*Config, error) {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "sportsstore.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("PAGE_SIZE", 4)
	viper.SetDefault("JWT_ISSUER", "SportsStore")
	viper.SetDefault("JWT_AUDIENCE", "SportsStoreClient")
	viper.SetDefault("JWT_EXPIRY_MINUTES", 30)
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "Admin@123")
	viper.AutomaticEnv()

	cfg := &Config{
		AppPort:     viper.GetString("APP_PORT"),
		DBDriver:    viper.GetString("DB_DRIVER"),
		DBDSN:       viper.GetString("DB_DSN"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
		PageSize:    viper.GetInt("PAGE_SIZE"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
		JWTIssuer:   viper.GetString("JWT_ISSUER"),
		JWTAudience: viper.GetString("JWT_AUDIENCE"),
		TokenExpiry: time.Duration(viper.GetInt("JWT_EXPIRY_MINUTES")) * time.Minute,

		AdminUsername: viper.GetString("ADMIN_USERNAME"),
		AdminPassword: viper.GetString("ADMIN_PASSWORD"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be a positive integer, got %d", c.PageSize)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.JWTIssuer == "" {
		return fmt.Errorf("JWT_ISSUER is required")
	}
	if c.JWTAudience == "" {
		return fmt.Errorf("JWT_AUDIENCE is required")
	}
	if c.TokenExpiry <= 0 {
		return fmt.Errorf("JWT_EXPIRY_MINUTES must be a positive integer, got %s", c.TokenExpiry)
	}
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("DB_DRIVER must be \"sqlite\" or \"postgres\", got %q", c.DBDriver)
	}
	return nil
}
