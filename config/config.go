package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the file-backed service configuration. Credentials never live
// here; they come from the environment (STRIPE_SECRET_KEY, AWS_*).

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Platform PlatformConfig `yaml:"platform"`
	Redis    RedisConfig    `yaml:"redis"`
	Booking  BookingConfig  `yaml:"booking"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type PlatformConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (p PlatformConfig) Timeout() time.Duration {
	if p.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(p.TimeoutSeconds) * time.Second
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type BookingConfig struct {
	BeachesCacheTTLSeconds int    `yaml:"beaches_cache_ttl_seconds"`
	CountdownTickSeconds   int    `yaml:"countdown_tick_seconds"`
	Currency               string `yaml:"currency"`
}

func (b BookingConfig) BeachesCacheTTL() time.Duration {
	if b.BeachesCacheTTLSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(b.BeachesCacheTTLSeconds) * time.Second
}

func (b BookingConfig) CountdownTick() time.Duration {
	if b.CountdownTickSeconds <= 0 {
		return time.Second
	}
	return time.Duration(b.CountdownTickSeconds) * time.Second
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	return &cfg, nil
}
