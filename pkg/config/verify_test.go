package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{LLM: LLMConfig{Endpoint: "http://localhost/v1", Model: "m"}}
		setDefaults(cfg)
		return cfg
	}

	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{name: "valid config", modify: func(*Config) {}},
		{name: "missing server listen", modify: func(c *Config) { c.Server.Listen = "" }, errMsg: "server.listen is required"},
		{name: "missing server timeout", modify: func(c *Config) { c.Server.Timeout = 0 }, errMsg: "server.timeout is required"},
		{name: "missing dsn", modify: func(c *Config) { c.Database.DSN = "" }, errMsg: "database.dsn is required"},
		{name: "missing embedding model", modify: func(c *Config) { c.Embedding.Model = "" }, errMsg: "embedding.model"},
		{name: "extraction enabled without timeout", modify: func(c *Config) {
			c.Extraction.Enabled = true
			c.Extraction.Timeout = 0
		}, errMsg: "extraction.timeout is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestEmbeddedSchemaMatchesConfig(t *testing.T) {
	var embedded, generated struct {
		Defs map[string]struct {
			Properties map[string]json.RawMessage `json:"properties"`
		} `json:"$defs"`
	}
	require.NoError(t, json.Unmarshal([]byte(embeddedSchema), &embedded))

	data, err := json.Marshal(GenerateSchema())
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &generated))

	for name, def := range generated.Defs {
		emb, ok := embedded.Defs[name]
		require.True(t, ok, "definition %s missing in schema.json, run go generate", name)
		for prop := range def.Properties {
			assert.Contains(t, emb.Properties, prop, "%s.%s missing in schema.json", name, prop)
		}
	}
}

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema()
	require.NotNil(t, schema)
	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), "purge_cron")
	assert.Contains(t, string(data), "retention_days")
}
