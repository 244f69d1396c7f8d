package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/tesso57/headlines/internal/application/settings"
	"github.com/tesso57/headlines/internal/application/usecase"
	"github.com/tesso57/headlines/internal/infrastructure/config"
	"github.com/tesso57/headlines/internal/infrastructure/fixture"
	"github.com/tesso57/headlines/internal/infrastructure/logging"
	"github.com/tesso57/headlines/internal/infrastructure/newsapi"
	"github.com/tesso57/headlines/internal/presentation/tui/update"
	"go.uber.org/zap"
)

type app struct {
	settings   settings.Settings
	logger     *zap.Logger
	aggregator *usecase.Aggregator
	search     *usecase.SearchFeed
}

// loadSettings reads the config file and applies command-line overrides.
func loadSettings(g *Globals) (settings.Settings, error) {
	store, err := config.Load(g.Config)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := store.Settings
	if key := strings.TrimSpace(g.APIKey); key != "" {
		cfg.NewsAPI.APIKey = key
	}
	return cfg, nil
}

// newApp wires the sources. When logToFile is false logs go to stderr.
func newApp(g *Globals, logToFile bool) (*app, error) {
	cfg, err := loadSettings(g)
	if err != nil {
		return nil, err
	}

	logOpts := logging.Options{Level: cfg.Log.Level}
	if logToFile {
		logOpts.File = cfg.Log.File
	}
	logger, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}

	client := newsapi.NewClient(newsapi.ClientOptions{
		Endpoints: newsapi.Endpoints{
			BaseURL:  cfg.NewsAPI.BaseURL,
			APIKey:   cfg.NewsAPI.APIKey,
			Country:  cfg.NewsAPI.Country,
			Language: cfg.NewsAPI.Language,
		},
		Timeout:           cfg.NewsAPI.Timeout(),
		RequestsPerSecond: cfg.NewsAPI.RequestsPerSecond,
	})
	decoder := newsapi.NewDecoder(time.Local)
	source := fixture.Source{Path: cfg.NewsAPI.FixtureFile}

	agg := usecase.NewAggregator(usecase.AggregatorOptions{
		APIKey:    cfg.NewsAPI.APIKey,
		ForceMock: g.Mock,
	}, client, decoder, source, logger)

	a := &app{settings: cfg, logger: logger, aggregator: agg}
	if cfg.NewsAPI.Query != "" {
		a.search = usecase.NewSearchFeed(usecase.SearchFeedOptions{
			Query: cfg.NewsAPI.Query,
			Mode:  agg.Mode(),
		}, client, decoder, source, logger)
	}

	logger.Info("headlines started",
		zap.String("mode", string(agg.Mode())),
		zap.String("country", cfg.NewsAPI.Country),
		zap.Bool("search", a.search != nil),
	)
	return a, nil
}

// searchSource keeps a nil feed from becoming a non-nil interface.
func (a *app) searchSource() update.SearchSource {
	if a.search == nil {
		return nil
	}
	return a.search
}

func (a *app) close() {
	a.aggregator.Close()
	_ = a.logger.Sync()
}
