package config

import (
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database   DatabaseConfig   `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Schedule   ScheduleConfig   `yaml:"schedule" json:"schedule" jsonschema:"description=Ingestion and retention schedule"`
	LLM        LLMConfig        `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for entity extraction and fact writing"`
	Embedding  EmbeddingConfig  `yaml:"embedding" json:"embedding" jsonschema:"description=Embedding model configuration for semantic search"`
	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Content extraction configuration"`
	Feeds      []Feed           `yaml:"feeds" json:"feeds" jsonschema:"description=RSS/Atom feeds to ingest"`
	Admin      AdminConfig      `yaml:"admin" json:"admin" jsonschema:"description=Admin API credentials"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS feeds and external links"`
}

// DatabaseConfig holds SQLite connection settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:uselessfacts.db?cache=shared&mode=rwc&_txlock=immediate&_pragma=foreign_keys(1),description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// ScheduleConfig holds ingestion and purge settings
type ScheduleConfig struct {
	UpdateInterval time.Duration `yaml:"update_interval" json:"update_interval" jsonschema:"default=30m,description=Feed update interval"`
	MaxWorkers     int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,minimum=1,description=Maximum concurrent feed workers"`
	PurgeCron      string        `yaml:"purge_cron" json:"purge_cron" jsonschema:"default=0 3 * * *,description=Cron spec for the retention purge"`
	RetentionDays  int           `yaml:"retention_days" json:"retention_days" jsonschema:"default=30,minimum=1,description=Days to keep articles and trending topics"`
}

// EntityConfig holds entity extraction settings
type EntityConfig struct {
	MaxEntities   int     `yaml:"max_entities" json:"max_entities" jsonschema:"default=10,minimum=1,description=Maximum entities extracted per article"`
	MinConfidence float64 `yaml:"min_confidence" json:"min_confidence" jsonschema:"default=0.5,minimum=0,maximum=1,description=Entities below this confidence are dropped"`
	MaxChars      int     `yaml:"max_chars" json:"max_chars" jsonschema:"default=4000,description=Article text is cut to this many characters before extraction"`
	UseJSONMode   bool    `yaml:"use_json_mode" json:"use_json_mode" jsonschema:"default=false,description=Use JSON response format (not all models support this)"`
}

// LLMConfig holds LLM configuration for entity extraction and fact writing
type LLMConfig struct {
	Endpoint          string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=OpenAI-compatible API endpoint"`
	APIKey            string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model             string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature       float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens         int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	RequestsPerMinute int           `yaml:"requests_per_minute" json:"requests_per_minute" jsonschema:"default=60,description=Client side rate limit for LLM and embedding calls"`
	SystemPrompt      string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for entity extraction (optional)"`
	FactPrompt        string        `yaml:"fact_prompt" json:"fact_prompt" jsonschema:"description=System prompt for fact writing (optional)"`
	Entities          EntityConfig  `yaml:"entities" json:"entities" jsonschema:"description=Entity extraction settings"`
}

// EmbeddingConfig holds embedding model settings, empty endpoint and key are taken from llm section
type EmbeddingConfig struct {
	Endpoint   string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible embeddings endpoint (defaults to llm.endpoint)"`
	APIKey     string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (defaults to llm.api_key)"`
	Model      string        `yaml:"model" json:"model" jsonschema:"default=text-embedding-3-small,description=Embedding model name"`
	Dimensions int           `yaml:"dimensions" json:"dimensions" jsonschema:"default=0,description=Requested vector dimensions (0 keeps the model default)"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Request timeout"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable full article extraction"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=UselessFacts/1.0,description=User agent for HTTP requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to consider extraction valid"`
}

// Feed is a single feed source
type Feed struct {
	URL      string        `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	Name     string        `yaml:"name" json:"name" jsonschema:"description=Source name (defaults to URL)"`
	Interval time.Duration `yaml:"interval" json:"interval" jsonschema:"description=Per-feed update interval (defaults to schedule.update_interval)"`
}

// AdminConfig holds basic auth credentials for admin endpoints, empty password disables them
type AdminConfig struct {
	User     string `yaml:"user" json:"user" jsonschema:"default=admin,description=Admin user name"`
	Password string `yaml:"password" json:"password" jsonschema:"description=Admin password (can use environment variable)"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:uselessfacts.db?cache=shared&mode=rwc&_txlock=immediate&_pragma=foreign_keys(1)"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	if cfg.Schedule.UpdateInterval == 0 {
		cfg.Schedule.UpdateInterval = 30 * time.Minute
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}
	if cfg.Schedule.PurgeCron == "" {
		cfg.Schedule.PurgeCron = "0 3 * * *"
	}
	if cfg.Schedule.RetentionDays == 0 {
		cfg.Schedule.RetentionDays = 30
	}

	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 500
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}
	if cfg.LLM.RequestsPerMinute == 0 {
		cfg.LLM.RequestsPerMinute = 60
	}
	if cfg.LLM.Entities.MaxEntities == 0 {
		cfg.LLM.Entities.MaxEntities = 10
	}
	if cfg.LLM.Entities.MinConfidence == 0 {
		cfg.LLM.Entities.MinConfidence = 0.5
	}
	if cfg.LLM.Entities.MaxChars == 0 {
		cfg.LLM.Entities.MaxChars = 4000
	}

	if cfg.Embedding.Endpoint == "" {
		cfg.Embedding.Endpoint = cfg.LLM.Endpoint
	}
	if cfg.Embedding.APIKey == "" {
		cfg.Embedding.APIKey = cfg.LLM.APIKey
	}
	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = "text-embedding-3-small"
	}
	if cfg.Embedding.Timeout == 0 {
		cfg.Embedding.Timeout = 15 * time.Second
	}

	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = 30 * time.Second
	}
	if cfg.Extraction.UserAgent == "" {
		cfg.Extraction.UserAgent = "UselessFacts/1.0"
	}
	if cfg.Extraction.MinTextLength == 0 {
		cfg.Extraction.MinTextLength = 100
	}

	for i := range cfg.Feeds {
		if cfg.Feeds[i].Name == "" {
			cfg.Feeds[i].Name = cfg.Feeds[i].URL
		}
		if cfg.Feeds[i].Interval == 0 {
			cfg.Feeds[i].Interval = cfg.Schedule.UpdateInterval
		}
	}

	if cfg.Admin.User == "" {
		cfg.Admin.User = "admin"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.LLM.Endpoint == "" {
		return fmt.Errorf("llm.endpoint is required")
	}
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.Entities.MinConfidence < 0 || cfg.LLM.Entities.MinConfidence > 1 {
		return fmt.Errorf("llm.entities.min_confidence must be between 0 and 1")
	}
	if cfg.Embedding.Dimensions < 0 {
		return fmt.Errorf("embedding.dimensions must be non-negative")
	}

	if cfg.Schedule.MaxWorkers < 1 {
		return fmt.Errorf("schedule.max_workers must be at least 1")
	}
	if cfg.Schedule.RetentionDays < 1 {
		return fmt.Errorf("schedule.retention_days must be at least 1")
	}
	if _, err := cron.ParseStandard(cfg.Schedule.PurgeCron); err != nil {
		return fmt.Errorf("schedule.purge_cron %q is invalid: %w", cfg.Schedule.PurgeCron, err)
	}

	for i, f := range cfg.Feeds {
		if f.URL == "" {
			return fmt.Errorf("feeds[%d].url is required", i)
		}
	}

	if cfg.Extraction.Enabled {
		if cfg.Extraction.Timeout < time.Second {
			return fmt.Errorf("extraction timeout must be at least 1 second")
		}
		if cfg.Extraction.MinTextLength < 0 {
			return fmt.Errorf("extraction min_text_length must be non-negative")
		}
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// Retention returns how long articles and trending topics are kept
func (c *Config) Retention() time.Duration {
	return time.Duration(c.Schedule.RetentionDays) * 24 * time.Hour
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetFeeds returns configured feeds
func (c *Config) GetFeeds() []Feed {
	return c.Feeds
}

// GetAdmin returns admin credentials
func (c *Config) GetAdmin() AdminConfig {
	return c.Admin
}

// GetBaseURL returns the public base URL used in generated links
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}
