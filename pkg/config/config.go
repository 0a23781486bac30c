package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		RateLimit       struct {
			Enabled      bool    `yaml:"enabled"`
			Capacity     float64 `yaml:"capacity"`
			RefillPerSec float64 `yaml:"refill_per_sec"`
		} `yaml:"rate_limit"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Market struct {
		Provider string `yaml:"provider"` // finnhub or yahoo
	} `yaml:"market"`
	Finnhub struct {
		BaseURL   string        `yaml:"base_url"`
		APIKey    string        `yaml:"api_key"`
		Timeout   time.Duration `yaml:"timeout"`
		NewsLimit int           `yaml:"news_limit"`
		NewsDays  int           `yaml:"news_days"`
	} `yaml:"finnhub"`
	Sentiment struct {
		URL     string        `yaml:"url"`
		Token   string        `yaml:"token"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"sentiment"`
	Report struct {
		Dir      string `yaml:"dir"`
		Template string `yaml:"template"`
	} `yaml:"report"`
	Cache struct {
		Enabled bool          `yaml:"enabled"`
		Backend string        `yaml:"backend"`
		TTL     time.Duration `yaml:"ttl"`
		Redis   struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Events struct {
		Enabled     bool     `yaml:"enabled"`
		Brokers     []string `yaml:"brokers"`
		Topic       string   `yaml:"topic"`
		LogTopic    string   `yaml:"log_topic"`
		Compression string   `yaml:"compression"`
	} `yaml:"events"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parse(b, false)
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parse(b, true)
}

// Parse decodes YAML bytes, applies defaults and validates the result.
func Parse(b []byte) (*Config, error) { return parse(b, false) }

func parse(b []byte, withEnv bool) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if withEnv {
		c.applyEnv()
	}
	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		c.Finnhub.APIKey = v
	}
	if v := os.Getenv("MARKET_PROVIDER"); v != "" {
		c.Market.Provider = v
	}
	if v := os.Getenv("SENTIMENT_URL"); v != "" {
		c.Sentiment.URL = v
	}
	if v := os.Getenv("SENTIMENT_TOKEN"); v != "" {
		c.Sentiment.Token = v
	}
	if v := os.Getenv("REPORT_DIR"); v != "" {
		c.Report.Dir = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Events.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 60 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Finnhub.BaseURL == "" {
		c.Finnhub.BaseURL = "https://finnhub.io/api/v1"
	}
	if c.Finnhub.Timeout == 0 {
		c.Finnhub.Timeout = 10 * time.Second
	}
	if c.Finnhub.NewsLimit == 0 {
		c.Finnhub.NewsLimit = 5
	}
	if c.Finnhub.NewsDays == 0 {
		c.Finnhub.NewsDays = 30
	}
	if c.Sentiment.Timeout == 0 {
		c.Sentiment.Timeout = 15 * time.Second
	}
	if c.Report.Dir == "" {
		c.Report.Dir = "."
	}
	if c.Market.Provider == "" {
		c.Market.Provider = "finnhub"
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 30 * time.Second
	}
	if c.Events.Topic == "" {
		c.Events.Topic = "marketintel.analysis"
	}
	if c.Events.LogTopic == "" {
		c.Events.LogTopic = "marketintel.logs"
	}
	if c.Events.Compression == "" {
		c.Events.Compression = "gzip"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Finnhub.APIKey == "" {
		return fmt.Errorf("finnhub.api_key is required")
	}
	if c.Finnhub.NewsLimit < 0 {
		return fmt.Errorf("finnhub.news_limit must be positive, got %d", c.Finnhub.NewsLimit)
	}
	if c.Market.Provider != "finnhub" && c.Market.Provider != "yahoo" {
		return fmt.Errorf("market.provider must be 'finnhub' or 'yahoo', got '%s'", c.Market.Provider)
	}
	if c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be 'memory' or 'redis', got '%s'", c.Cache.Backend)
	}
	if c.Cache.Enabled && c.Cache.Backend == "redis" && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required for the redis backend")
	}
	if c.Events.Enabled && len(c.Events.Brokers) == 0 {
		return fmt.Errorf("events.brokers cannot be empty when events are enabled")
	}
	if c.Server.RateLimit.Enabled && (c.Server.RateLimit.Capacity < 1 || c.Server.RateLimit.RefillPerSec <= 0) {
		return fmt.Errorf("server.rate_limit needs capacity >= 1 and refill_per_sec > 0")
	}
	return nil
}
