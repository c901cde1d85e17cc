package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"lgsmfleet/hub/adapters/myredis"
	"lgsmfleet/hub/service"

	"gopkg.in/yaml.v3"
)

const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"

	defaultHTTPPort = 49950
	defaultDBPath   = "hub.db"
)

type HubConfig struct {
	APIKey            string
	HTTPPort          int
	Store             string
	DBPath            string
	Redis             myredis.RedisConfig
	HeartbeatInterval time.Duration
	HeartbeatTimeout  time.Duration
	DiscordWebhook    string
	// Settings are written to the settings store at startup when the key is not set yet.
	Settings map[string]string
}

// fileConfig is the optional YAML file named by CONFIG_PATH.
type fileConfig struct {
	Settings map[string]string `yaml:"settings"`
}

// LoadConfig loads configuration from environment variables and the optional
// CONFIG_PATH YAML file. HUB_API_KEY is required, and REDIS_ADDR when STORE=redis.
func LoadConfig() (*HubConfig, error) {
	apiKey := os.Getenv("HUB_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("HUB_API_KEY is required")
	}

	cfg := &HubConfig{
		APIKey:            apiKey,
		HTTPPort:          defaultHTTPPort,
		Store:             StoreSQLite,
		DBPath:            defaultDBPath,
		Redis:             myredis.RedisConfig{Addr: os.Getenv("REDIS_ADDR")},
		HeartbeatInterval: service.DefaultHeartbeatInterval,
		HeartbeatTimeout:  service.DefaultPollTimeout,
		DiscordWebhook:    os.Getenv("DISCORD_WEBHOOK"),
		Settings:          map[string]string{},
	}

	if s := os.Getenv("PORT"); s != "" {
		port, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		cfg.HTTPPort = port
	}
	if s := os.Getenv("STORE"); s != "" {
		cfg.Store = s
	}
	if s := os.Getenv("DB_PATH"); s != "" {
		cfg.DBPath = s
	}
	for key, dst := range map[string]*time.Duration{
		"HEARTBEAT_INTERVAL": &cfg.HeartbeatInterval,
		"HEARTBEAT_TIMEOUT":  &cfg.HeartbeatTimeout,
	} {
		s := os.Getenv(key)
		if s == "" {
			continue
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", key, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid %s: must be positive", key)
		}
		*dst = d
	}

	switch cfg.Store {
	case StoreSQLite:
	case StoreRedis:
		if cfg.Redis.Addr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required when STORE=redis")
		}
	default:
		return nil, fmt.Errorf("invalid STORE %q: want %s or %s", cfg.Store, StoreSQLite, StoreRedis)
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("open CONFIG_PATH: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return nil, fmt.Errorf("invalid CONFIG_PATH %s: %w", path, err)
		}
		for k, v := range fc.Settings {
			cfg.Settings[k] = v
		}
	}
	return cfg, nil
}
