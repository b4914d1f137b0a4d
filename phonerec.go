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

// Package phonerec wires the phone recommendation components into an
// application: a catalog repository, filter/search sessions and a chatbot
// engine, all selected through config.Config.
package phonerec

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vietphone/phonerec/ai"
	"github.com/vietphone/phonerec/ai/local"
	"github.com/vietphone/phonerec/ai/openai"
	"github.com/vietphone/phonerec/catalog"
	"github.com/vietphone/phonerec/chatbot"
	"github.com/vietphone/phonerec/config"
	"github.com/vietphone/phonerec/filter"
	"github.com/vietphone/phonerec/search"
	"github.com/vietphone/phonerec/storage"
	badgerrepo "github.com/vietphone/phonerec/storage/badger"
	"github.com/vietphone/phonerec/storage/jsonfile"
)

// App bundles the repository and the engines configured for one run.
type App struct {
	cfg      config.Config
	repo     storage.PhoneRepository
	provider ai.Provider
	logger   *slog.Logger
}

// Open validates the configuration, opens the selected storage backend and,
// for the openai engine, connects the AI provider.
func Open(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		repo storage.PhoneRepository
		err  error
	)
	switch cfg.Storage.Backend {
	case config.BackendBadger:
		repo, err = badgerrepo.Open(cfg.Storage.Path)
	default:
		repo, err = jsonfile.Open(cfg.Storage.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s storage: %w", cfg.Storage.Backend, err)
	}

	app := &App{
		cfg:    cfg,
		repo:   repo,
		logger: slog.Default().With("component", "app"),
	}

	if cfg.Chatbot.Engine == config.EngineOpenAI {
		aiCfg := ai.NewConfig(
			ai.WithHost(cfg.AI.Host),
			ai.WithEmbeddingModel(cfg.AI.EmbeddingModel),
			ai.WithChatModel(cfg.AI.ChatModel),
			ai.WithToken(cfg.AI.Token),
		)
		provider, err := openai.NewProvider(aiCfg)
		if err != nil {
			repo.Close()
			return nil, err
		}
		app.provider = provider
	}

	return app, nil
}

// Repository exposes the catalog repository.
func (a *App) Repository() storage.PhoneRepository {
	return a.repo
}

// NewChatbot creates the configured chatbot engine. The engine is returned
// uninitialized; call Initialize before asking questions.
func (a *App) NewChatbot() chatbot.Chatbot {
	switch a.cfg.Chatbot.Engine {
	case config.EngineOpenAI:
		return chatbot.NewGenerativeEngine(a.repo, a.provider)
	case config.EngineLocal:
		return chatbot.NewRetrievalEngine(a.repo, local.NewEmbedder())
	default:
		return chatbot.NewHeuristicEngine(a.repo)
	}
}

// NewSession creates a filter/search session over the catalog.
func (a *App) NewSession(mode filter.Mode) *Session {
	return &Session{
		repo:    a.repo,
		filters: filter.NewComposite(mode),
	}
}

// Close releases the AI provider and the storage backend.
func (a *App) Close() error {
	if a.provider != nil {
		if err := a.provider.Close(); err != nil {
			a.logger.Error("error closing AI provider", "err", err)
		}
	}
	if err := a.repo.Close(); err != nil {
		a.logger.Error("error closing repository", "err", err)
		return err
	}
	return nil
}

// Session narrows the catalog through a composite filter and a search
// query. Filters accumulate across calls; Results applies the current set
// against a fresh catalog read.
type Session struct {
	repo    storage.PhoneRepository
	filters *filter.Composite
}

// AddFilter adds a filter to the session's composite.
func (s *Session) AddFilter(f filter.Filter) {
	s.filters.Add(f)
}

// RemoveFilter removes a filter by ID. Returns true if one was removed.
func (s *Session) RemoveFilter(id string) bool {
	return s.filters.RemoveByID(id)
}

// ClearFilters removes every filter from the session.
func (s *Session) ClearFilters() {
	s.filters.Clear()
}

// Filters returns a copy of the active filters.
func (s *Session) Filters() []filter.Filter {
	return s.filters.Filters()
}

// Results loads the catalog, applies the composite filter and then the
// search query.
func (s *Session) Results(ctx context.Context, query search.Query) ([]*catalog.Phone, error) {
	phones, err := s.repo.GetAllPhones(ctx)
	if err != nil {
		return nil, err
	}
	return search.Search(s.filters.Apply(phones), query), nil
}
