package cache

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds Redis connection parameters.
type Config struct {
	Host        string        `envconfig:"HOST" default:"127.0.0.1"`
	Port        int           `envconfig:"PORT" default:"6379"`
	DB          int           `envconfig:"DB" default:"0"`
	Password    string        `envconfig:"PASSWORD" default:""`
	DialTimeout time.Duration `envconfig:"DIAL_TIMEOUT" default:"2s"`
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"2s"`
}

// LoadConfig reads configuration from CACHE_* environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("CACHE", &cfg); err != nil {
		return nil, fmt.Errorf("cache: load config: %w", err)
	}
	return &cfg, nil
}

// Addr returns the host:port dial address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
