package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, EngineHeuristic, cfg.Chatbot.Engine)
	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Storage, cfg.Storage)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[chatbot]
engine = "openai"

[storage]
backend = "badger"
path = "/var/lib/phonerec"

[ai]
host = "http://ai.internal:8080"
token = "file-token"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, EngineOpenAI, cfg.Chatbot.Engine)
	assert.Equal(t, BackendBadger, cfg.Storage.Backend)
	assert.Equal(t, "/var/lib/phonerec", cfg.Storage.Path)
	assert.Equal(t, "http://ai.internal:8080", cfg.AI.Host)
	assert.Equal(t, "file-token", cfg.AI.Token)
	assert.Equal(t, Default().AI.ChatModel, cfg.AI.ChatModel, "unset keys keep defaults")
}

func TestLoadTokenEnvOverride(t *testing.T) {
	t.Setenv(tokenEnvVar, "env-token")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.AI.Token)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("chatbot = {"), 0o600))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"unknown engine", func(c *Config) { c.Chatbot.Engine = "oracle" }, false},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "csv" }, false},
		{"missing path", func(c *Config) { c.Storage.Path = "" }, false},
		{"openai without host", func(c *Config) {
			c.Chatbot.Engine = EngineOpenAI
			c.AI.Host = ""
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}
