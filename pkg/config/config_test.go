package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configPath := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
llm:
  endpoint: https://api.example.com/v1
  api_key: llm-key
  model: gpt-4o-mini
  entities:
    max_entities: 7
embedding:
  model: text-embedding-3-large
  dimensions: 256
schedule:
  update_interval: 10m
  purge_cron: "30 4 * * *"
  retention_days: 14
feeds:
  - url: https://example.com/feed1.xml
    name: Feed1
    interval: 5m
  - url: https://example.com/feed2.xml
admin:
  password: secret
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 7, cfg.LLM.Entities.MaxEntities)
		assert.Equal(t, "text-embedding-3-large", cfg.Embedding.Model)
		assert.Equal(t, 256, cfg.Embedding.Dimensions)
		assert.Equal(t, "https://api.example.com/v1", cfg.Embedding.Endpoint, "embedding endpoint inherited")
		assert.Equal(t, "llm-key", cfg.Embedding.APIKey, "embedding key inherited")
		assert.Equal(t, "30 4 * * *", cfg.Schedule.PurgeCron)
		assert.Equal(t, 14*24*time.Hour, cfg.Retention())

		require.Len(t, cfg.Feeds, 2)
		assert.Equal(t, "Feed1", cfg.Feeds[0].Name)
		assert.Equal(t, 5*time.Minute, cfg.Feeds[0].Interval)
		assert.Equal(t, "https://example.com/feed2.xml", cfg.Feeds[1].Name, "name defaults to url")
		assert.Equal(t, 10*time.Minute, cfg.Feeds[1].Interval, "interval defaults to schedule")

		assert.Equal(t, "admin", cfg.Admin.User)
		assert.Equal(t, "secret", cfg.Admin.Password)
	})

	t.Run("defaults", func(t *testing.T) {
		configPath := writeConfig(t, `
llm:
  endpoint: http://localhost:11434/v1
  model: llama3
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "file:uselessfacts.db?cache=shared&mode=rwc&_txlock=immediate&_pragma=foreign_keys(1)", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 30*time.Minute, cfg.Schedule.UpdateInterval)
		assert.Equal(t, 5, cfg.Schedule.MaxWorkers)
		assert.Equal(t, "0 3 * * *", cfg.Schedule.PurgeCron)
		assert.Equal(t, 30, cfg.Schedule.RetentionDays)
		assert.InDelta(t, 0.3, cfg.LLM.Temperature, 0.001)
		assert.Equal(t, 60, cfg.LLM.RequestsPerMinute)
		assert.InDelta(t, 0.5, cfg.LLM.Entities.MinConfidence, 0.001)
		assert.Equal(t, "text-embedding-3-small", cfg.Embedding.Model)
		assert.Equal(t, 15*time.Second, cfg.Embedding.Timeout)
		assert.Equal(t, "UselessFacts/1.0", cfg.Extraction.UserAgent)
		assert.Empty(t, cfg.Feeds)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("UF_TEST_KEY", "from-env")
		configPath := writeConfig(t, `
llm:
  endpoint: http://localhost/v1
  model: m
  api_key: ${UF_TEST_KEY}
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.LLM.APIKey)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configPath := writeConfig(t, `
invalid yaml content
  with bad indentation
    and no structure
`)
		cfg, err := Load(configPath)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("validation failure", func(t *testing.T) {
		configPath := writeConfig(t, "server:\n  listen: \":8080\"\n")
		cfg, err := Load(configPath)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "llm.endpoint is required")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{LLM: LLMConfig{Endpoint: "http://localhost/v1", Model: "m"}}
		setDefaults(cfg)
		return cfg
	}
	require.NoError(t, validate(valid()))

	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"missing model", func(c *Config) { c.LLM.Model = "" }, "llm.model is required"},
		{"temperature", func(c *Config) { c.LLM.Temperature = 2.5 }, "llm.temperature"},
		{"confidence", func(c *Config) { c.LLM.Entities.MinConfidence = 1.5 }, "min_confidence"},
		{"dimensions", func(c *Config) { c.Embedding.Dimensions = -1 }, "embedding.dimensions"},
		{"workers", func(c *Config) { c.Schedule.MaxWorkers = -1 }, "max_workers"},
		{"retention", func(c *Config) { c.Schedule.RetentionDays = -3 }, "retention_days"},
		{"bad cron", func(c *Config) { c.Schedule.PurgeCron = "every day" }, "purge_cron"},
		{"feed url", func(c *Config) { c.Feeds = []Feed{{Name: "no url"}} }, "feeds[0].url is required"},
		{"extraction timeout", func(c *Config) {
			c.Extraction.Enabled = true
			c.Extraction.Timeout = time.Millisecond
		}, "extraction timeout"},
		{"server timeout", func(c *Config) { c.Server.Timeout = time.Millisecond }, "server timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			err := validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_Accessors(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Listen: ":9090", Timeout: 45 * time.Second},
		Feeds:  []Feed{{URL: "https://feed1.com", Name: "Feed1", Interval: 5 * time.Minute}},
		Admin:  AdminConfig{User: "root", Password: "pw"},
	}
	cfg.Server.BaseURL = "https://facts.example.com"

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)
	assert.Equal(t, cfg.Feeds, cfg.GetFeeds())
	assert.Equal(t, AdminConfig{User: "root", Password: "pw"}, cfg.GetAdmin())
	assert.Equal(t, "https://facts.example.com", cfg.GetBaseURL())
}
