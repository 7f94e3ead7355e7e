package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config defines assistant service configuration.
type Config struct {
	HTTP struct {
		Port      string `yaml:"port" env:"ASSISTANT_HTTP_PORT"`
		StaticDir string `yaml:"staticDir" env:"ASSISTANT_STATIC_DIR"`
	} `yaml:"http"`
	Database struct {
		DSN string `yaml:"dsn" env:"ASSISTANT_POSTGRES_DSN"`
	} `yaml:"database"`
	NLU struct {
		URL            string  `yaml:"url" env:"ASSISTANT_NLU_URL"`
		Threshold      float64 `yaml:"threshold" env:"ASSISTANT_NLU_THRESHOLD"`
		TimeoutSeconds int     `yaml:"timeoutSeconds" env:"ASSISTANT_NLU_TIMEOUT"`
	} `yaml:"nlu"`
	Redis struct {
		Addr         string `yaml:"addr" env:"ASSISTANT_REDIS_ADDR"`
		Password     string `yaml:"password" env:"ASSISTANT_REDIS_PASSWORD"`
		HistoryLimit int    `yaml:"historyLimit" env:"ASSISTANT_HISTORY_LIMIT"`
	} `yaml:"redis"`
	Feed struct {
		WriteTimeoutSeconds int `yaml:"writeTimeoutSeconds" env:"ASSISTANT_FEED_WRITE_TIMEOUT"`
		PingIntervalSeconds int `yaml:"pingIntervalSeconds" env:"ASSISTANT_FEED_PING_INTERVAL"`
	} `yaml:"feed"`
}

// Load reads configuration from CONFIG_FILE and environment.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8080"
	cfg.HTTP.StaticDir = "web"
	cfg.NLU.Threshold = 0.6
	cfg.NLU.TimeoutSeconds = 5
	cfg.Redis.HistoryLimit = 50
	cfg.Feed.WriteTimeoutSeconds = 10
	cfg.Feed.PingIntervalSeconds = 30

	if err := load(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return nil, errors.New("config: database dsn required")
	}
	if cfg.NLU.Threshold < 0 || cfg.NLU.Threshold > 1 {
		return nil, errors.New("config: nlu threshold must be within [0, 1]")
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// NLUTimeout returns the classifier request timeout.
func (c *Config) NLUTimeout() time.Duration {
	if c.NLU.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.NLU.TimeoutSeconds) * time.Second
}

// FeedWriteTimeout returns the websocket write deadline.
func (c *Config) FeedWriteTimeout() time.Duration {
	if c.Feed.WriteTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Feed.WriteTimeoutSeconds) * time.Second
}

// FeedPingInterval returns the websocket keepalive interval.
func (c *Config) FeedPingInterval() time.Duration {
	if c.Feed.PingIntervalSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Feed.PingIntervalSeconds) * time.Second
}
