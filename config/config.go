// Copyright 2025 Vietphone Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Chatbot engine selectors.
const (
	EngineHeuristic = "heuristic"
	EngineLocal     = "local"
	EngineOpenAI    = "openai"
)

// Storage backend selectors.
const (
	BackendJSON   = "json"
	BackendBadger = "badger"
)

// tokenEnvVar overrides the configured AI token when set. Keeps secrets
// out of config files in production.
const tokenEnvVar = "OPENAI_API_KEY"

// Config is the application configuration. Zero values fall back to
// Default() during Load, so a config file only needs the keys it changes.
type Config struct {
	Chatbot ChatbotConfig `toml:"chatbot"`
	Storage StorageConfig `toml:"storage"`
	AI      AIConfig      `toml:"ai"`
	Scraper ScraperConfig `toml:"scraper"`
}

// ChatbotConfig selects the answering engine.
type ChatbotConfig struct {
	// Engine is one of "heuristic", "local" or "openai".
	Engine string `toml:"engine"`
}

// StorageConfig selects the catalog backend.
type StorageConfig struct {
	// Backend is one of "json" or "badger".
	Backend string `toml:"backend"`
	// Path is the JSON file path or the badger directory.
	Path string `toml:"path"`
}

// AIConfig holds the OpenAI-compatible server settings used when the
// chatbot engine is "openai".
type AIConfig struct {
	Host           string `toml:"host"`
	EmbeddingModel string `toml:"embedding_model"`
	ChatModel      string `toml:"chat_model"`
	Token          string `toml:"token"`
}

// ScraperConfig holds the catalog scraper settings.
type ScraperConfig struct {
	BaseURL string `toml:"base_url"`
}

// Default returns the configuration used when no file is present: the
// heuristic engine over a local JSON catalog.
func Default() Config {
	return Config{
		Chatbot: ChatbotConfig{Engine: EngineHeuristic},
		Storage: StorageConfig{Backend: BackendJSON, Path: "data/phones.json"},
		AI: AIConfig{
			Host:           "http://localhost:1234",
			EmbeddingModel: "text-embedding-nomic-embed-text-v1.5",
			ChatModel:      "meta-llama-3.1-8b-instruct",
		},
	}
}

// Load reads a TOML configuration file over the defaults. A missing file
// is not an error: defaults apply. The AI token can always be supplied
// through the OPENAI_API_KEY environment variable, which takes priority
// over the file.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return Config{}, err
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if token := strings.TrimSpace(os.Getenv(tokenEnvVar)); token != "" {
		cfg.AI.Token = token
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the selector fields and required paths.
func (c Config) Validate() error {
	switch c.Chatbot.Engine {
	case EngineHeuristic, EngineLocal, EngineOpenAI:
	default:
		return fmt.Errorf("%w: unknown chatbot engine %q", ErrInvalidConfig, c.Chatbot.Engine)
	}

	switch c.Storage.Backend {
	case BackendJSON, BackendBadger:
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("%w: storage path is required", ErrInvalidConfig)
	}

	if c.Chatbot.Engine == EngineOpenAI && c.AI.Host == "" {
		return fmt.Errorf("%w: ai host is required for the openai engine", ErrInvalidConfig)
	}
	return nil
}
