// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Config holds application configuration.
type Config struct {
	// HTTP Server
	Port       string
	CORSOrigin string
	RateLimit  string // ulule/limiter format, e.g. "300-M"

	// Database
	DBPath string

	LogLevel string

	// Share links
	ShareTokenSecret string
	ShareTokenTTL    time.Duration

	// Balance cache
	BalanceCacheSize int
	BalanceCacheTTL  time.Duration

	// AMQP, empty URL disables event publishing
	AMQPURL      string
	AMQPExchange string
}

// Load reads configuration from a .env file, if present, and the environment.
// Environment variables take precedence over .env values. A duration that
// does not parse loads as zero and is rejected by Validate.
func Load() *Config {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("DB_PATH", "./data/ledger.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SHARE_TOKEN_SECRET", "insecure-share-secret-change-me")
	v.SetDefault("SHARE_TOKEN_TTL", "720h")
	v.SetDefault("BALANCE_CACHE_SIZE", 256)
	v.SetDefault("BALANCE_CACHE_TTL", "5m")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "ledger.events")
	v.AutomaticEnv()

	return &Config{
		Port:             v.GetString("PORT"),
		CORSOrigin:       v.GetString("CORS_ORIGIN"),
		RateLimit:        v.GetString("RATE_LIMIT"),
		DBPath:           v.GetString("DB_PATH"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		ShareTokenSecret: v.GetString("SHARE_TOKEN_SECRET"),
		ShareTokenTTL:    v.GetDuration("SHARE_TOKEN_TTL"),
		BalanceCacheSize: v.GetInt("BALANCE_CACHE_SIZE"),
		BalanceCacheTTL:  v.GetDuration("BALANCE_CACHE_TTL"),
		AMQPURL:          v.GetString("AMQP_URL"),
		AMQPExchange:     v.GetString("AMQP_EXCHANGE"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	}

	if _, err := limiter.NewRateFromFormatted(c.RateLimit); err != nil {
		errors = append(errors, fmt.Sprintf("invalid rate limit '%s': %v", c.RateLimit, err))
	}

	if c.ShareTokenSecret == "" {
		errors = append(errors, "share token secret cannot be empty")
	}
	if c.ShareTokenTTL <= 0 {
		errors = append(errors, fmt.Sprintf("invalid share token TTL %v: must be positive", c.ShareTokenTTL))
	}

	if c.BalanceCacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid balance cache size %d: must be at least 1", c.BalanceCacheSize))
	}
	if c.BalanceCacheTTL <= 0 {
		errors = append(errors, fmt.Sprintf("invalid balance cache TTL %v: must be positive", c.BalanceCacheTTL))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
