package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`

	SentryEnabled bool `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// openai
	OpenAIModel     string `toml:"openai_model"`
	OpenAIMaxTokens int    `toml:"openai_max_tokens"`

	// workout generation
	TimeBlocks          int `toml:"time_blocks"`
	QueuePollIntervalS  int `toml:"queue_poll_interval_seconds"`
	QueueClaimBatchSize int `toml:"queue_claim_batch_size"`
	GenLockTTLMinutes   int `toml:"gen_lock_ttl_minutes"`

	// prometheus metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	tomlBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var configToml Toml
	if err := toml.Unmarshal(tomlBytes, &configToml); err != nil {
		return nil, fmt.Errorf("unmarshal config file: %w", err)
	}

	cfg, err := configToml.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.TimeBlocks <= 0 {
		c.TimeBlocks = 10
	}
	if c.QueuePollIntervalS <= 0 {
		c.QueuePollIntervalS = 30
	}
	if c.QueueClaimBatchSize <= 0 {
		c.QueueClaimBatchSize = 10
	}
	if c.GenLockTTLMinutes <= 0 {
		c.GenLockTTLMinutes = 10
	}
	if c.OpenAIModel == "" {
		c.OpenAIModel = "gpt-3.5-turbo"
	}
	if c.OpenAIMaxTokens <= 0 {
		c.OpenAIMaxTokens = 1600
	}
}
