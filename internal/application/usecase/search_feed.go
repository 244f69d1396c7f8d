package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/tesso57/headlines/internal/domain/news"
	"go.uber.org/zap"
)

// ErrSearchExhausted is returned when no further pages exist.
var ErrSearchExhausted = errors.New("search feed exhausted")

// PageFetcher retrieves one page of the everything search.
type PageFetcher interface {
	FetchEverything(ctx context.Context, query string, page int) ([]byte, error)
}

// PageResult describes one successful page load.
type PageResult struct {
	Page      int
	Added     int
	Total     int
	Exhausted bool
}

// SearchFeedOptions configures a SearchFeed.
type SearchFeedOptions struct {
	Query string
	Mode  Mode
}

// SearchFeed is an append-only, page-by-page view of a search query.
type SearchFeed struct {
	query   string
	mode    Mode
	fetcher PageFetcher
	decoder PayloadDecoder
	fixture FixtureSource
	logger  *zap.Logger

	loadMu sync.Mutex

	mu        sync.RWMutex
	articles  []news.Article
	nextPage  int
	received  int
	exhausted bool
}

// NewSearchFeed constructs a SearchFeed starting at page one.
func NewSearchFeed(opts SearchFeedOptions, fetcher PageFetcher, decoder PayloadDecoder, fixture FixtureSource, logger *zap.Logger) *SearchFeed {
	if logger == nil {
		logger = zap.NewNop()
	}
	mode := opts.Mode
	if mode == "" {
		mode = ModeLive
	}
	query := strings.TrimSpace(opts.Query)
	return new(SearchFeed{
		query:    query,
		mode:     mode,
		fetcher:  fetcher,
		decoder:  decoder,
		fixture:  fixture,
		logger:   logger.With(zap.String("query", query), zap.String("mode", string(mode))),
		articles: []news.Article{},
		nextPage: 1,
	})
}

// Query returns the trimmed search query.
func (f *SearchFeed) Query() string {
	return f.query
}

// LoadNextPage fetches the next page and appends its articles.
// A page that failed is requested again on the next call.
func (f *SearchFeed) LoadNextPage(ctx context.Context) (PageResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	f.loadMu.Lock()
	defer f.loadMu.Unlock()

	f.mu.RLock()
	page, exhausted := f.nextPage, f.exhausted
	f.mu.RUnlock()
	if exhausted {
		return PageResult{Page: page - 1, Exhausted: true}, ErrSearchExhausted
	}

	raw, err := f.load(ctx, page)
	if err != nil {
		f.logger.Warn("search page fetch failed", zap.Int("page", page), zap.Error(err))
		return PageResult{Page: page}, err
	}
	decoded, err := f.decoder.DecodePage(raw)
	if errors.Is(err, news.ErrResultsCapped) {
		f.mu.Lock()
		f.exhausted = true
		f.mu.Unlock()
		f.logger.Info("search result limit reached", zap.Int("page", page))
		return PageResult{Page: page, Exhausted: true}, fmt.Errorf("%w: %w", ErrSearchExhausted, err)
	}
	if err != nil {
		f.logger.Warn("search page decode failed", zap.Int("page", page), zap.Error(err))
		return PageResult{Page: page}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.articles = append(f.articles, decoded.Articles...)
	f.received += decoded.Received
	f.nextPage++
	if f.mode == ModeMock || decoded.Received == 0 || f.received >= decoded.TotalResults {
		f.exhausted = true
	}
	f.logger.Debug("search page loaded", zap.Int("page", page), zap.Int("added", len(decoded.Articles)))
	return PageResult{
		Page:      page,
		Added:     len(decoded.Articles),
		Total:     decoded.TotalResults,
		Exhausted: f.exhausted,
	}, nil
}

func (f *SearchFeed) load(ctx context.Context, page int) ([]byte, error) {
	if f.mode == ModeMock {
		return f.fixture.Load()
	}
	return f.fetcher.FetchEverything(ctx, f.query, page)
}

// Articles returns a copy of every article loaded so far.
func (f *SearchFeed) Articles() []news.Article {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.articles)
}

// Exhausted reports whether no further pages exist.
func (f *SearchFeed) Exhausted() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.exhausted
}

// Loaded reports how many pages have been appended.
func (f *SearchFeed) Loaded() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.nextPage - 1
}
