package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/nulzo/assist-router/pkg/api"
	"github.com/spf13/viper"
)

type Config struct {
	Server          ServerConfig    `mapstructure:"server"`
	Redis           RedisConfig     `mapstructure:"redis"`
	RateLimit       RateLimitConfig `mapstructure:"rate_limit"`
	Store           StoreConfig     `mapstructure:"store"`
	Cache           CacheConfig     `mapstructure:"cache"`
	DefaultProvider string          `mapstructure:"default_provider"`
	Models          []ModelSeed     `mapstructure:"models"`
}

type ServerConfig struct {
	Port    string   `mapstructure:"port"`
	Env     string   `mapstructure:"env"`
	APIKeys []string `mapstructure:"api_keys"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Enabled  bool   `mapstructure:"enabled"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type StoreConfig struct {
	Path    string `mapstructure:"path"`
	Enabled bool   `mapstructure:"enabled"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// ModelSeed is a model definition as written in the config file; it is
// resolved to an api.ModelConfig before registration.
type ModelSeed struct {
	Name         string   `mapstructure:"name"`
	Provider     string   `mapstructure:"provider"`
	Capabilities []string `mapstructure:"capabilities"`
}

// Resolve validates the seed against the capability and provider
// vocabularies.
func (m ModelSeed) Resolve() (api.ModelConfig, error) {
	provider, err := api.ParseProvider(m.Provider)
	if err != nil {
		return api.ModelConfig{}, fmt.Errorf("model %q: %w", m.Name, err)
	}

	caps := make([]api.Capability, 0, len(m.Capabilities))
	for _, c := range m.Capabilities {
		cap, err := api.ParseCapability(c)
		if err != nil {
			return api.ModelConfig{}, fmt.Errorf("model %q: %w", m.Name, err)
		}
		caps = append(caps, cap)
	}

	return api.ModelConfig{
		Name:         m.Name,
		Provider:     provider,
		Capabilities: caps,
	}, nil
}

// ResolveModels resolves every configured seed.
func (c *Config) ResolveModels() ([]api.ModelConfig, error) {
	models := make([]api.ModelConfig, 0, len(c.Models))
	for _, seed := range c.Models {
		m, err := seed.Resolve()
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, nil
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig() (*Config, error) {
	// Load .env file if present
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Default Values
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("rate_limit.requests_per_second", 10.0)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("store.enabled", true)
	v.SetDefault("store.path", "assist.db")
	v.SetDefault("cache.ttl", "60s")
	v.SetDefault("default_provider", string(api.ProviderOpenAI))

	// Environment Variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if _, err := api.ParseProvider(cfg.DefaultProvider); err != nil {
		return nil, fmt.Errorf("invalid default_provider: %w", err)
	}

	return &cfg, nil
}
