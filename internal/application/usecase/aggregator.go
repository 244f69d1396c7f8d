// Package usecase contains application-level services.
package usecase

import (
	"context"
	"maps"
	"strings"
	"sync"

	"github.com/tesso57/headlines/internal/domain/news"
	"go.uber.org/zap"
)

// CategoryFetcher retrieves the raw top-headlines payload for one category.
type CategoryFetcher interface {
	FetchCategory(ctx context.Context, category news.Category) ([]byte, error)
}

// PayloadDecoder turns a raw payload into validated articles.
type PayloadDecoder interface {
	DecodePage(raw []byte) (news.Page, error)
}

// FixtureSource provides the offline payload.
type FixtureSource interface {
	Load() ([]byte, error)
}

// Mode selects where articles come from.
type Mode string

const (
	// ModeLive fetches every category from the API.
	ModeLive Mode = "live"
	// ModeMock decodes the bundled fixture once for every category.
	ModeMock Mode = "mock"
)

// AggregatorOptions configures an Aggregator.
type AggregatorOptions struct {
	APIKey string
	// ForceMock selects mock mode even when an API key is set.
	ForceMock bool
}

// LoadReport summarizes the loads started by Initialize.
type LoadReport struct {
	Requested int
	Succeeded int
	Failed    int
	Errors    map[news.Category]error
}

// Aggregator starts the category loads and merges their results into a FeedState.
type Aggregator struct {
	mode    Mode
	fetcher CategoryFetcher
	decoder PayloadDecoder
	fixture FixtureSource
	logger  *zap.Logger

	state *FeedState
	once  sync.Once
	wg    sync.WaitGroup

	mu     sync.Mutex
	report LoadReport
}

// NewAggregator constructs an Aggregator with an empty FeedState.
func NewAggregator(opts AggregatorOptions, fetcher CategoryFetcher, decoder PayloadDecoder, fixture FixtureSource, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	mode := ModeLive
	if opts.ForceMock || strings.TrimSpace(opts.APIKey) == "" {
		mode = ModeMock
	}
	return new(Aggregator{
		mode:    mode,
		fetcher: fetcher,
		decoder: decoder,
		fixture: fixture,
		logger:  logger.With(zap.String("mode", string(mode))),
		state:   NewFeedState(),
		report:  LoadReport{Errors: map[news.Category]error{}},
	})
}

// Mode reports whether the aggregator runs live or from the fixture.
func (a *Aggregator) Mode() Mode {
	return a.mode
}

// State returns the state handle. It is valid before Initialize.
func (a *Aggregator) State() *FeedState {
	return a.state
}

// Initialize starts the loads once and returns immediately.
func (a *Aggregator) Initialize(ctx context.Context) *FeedState {
	if ctx == nil {
		ctx = context.Background()
	}
	a.once.Do(func() {
		categories := news.Categories()
		a.mu.Lock()
		a.report.Requested = len(categories)
		a.mu.Unlock()

		if a.mode == ModeMock {
			a.wg.Go(func() { a.loadFixture(categories) })
			return
		}
		for _, category := range categories {
			a.wg.Go(func() {
				raw, err := a.fetcher.FetchCategory(ctx, category)
				a.onCategoryResult(category, raw, err)
			})
		}
	})
	return a.state
}

func (a *Aggregator) loadFixture(categories []news.Category) {
	raw, err := a.fixture.Load()
	var page news.Page
	if err == nil {
		page, err = a.decoder.DecodePage(raw)
	}
	if err != nil {
		a.logger.Warn("fixture load failed", zap.Error(err))
		for _, category := range categories {
			a.fail(category, err)
		}
		return
	}
	a.logDropped(news.General, page)
	for _, category := range categories {
		a.succeed(category, page.Articles)
	}
}

func (a *Aggregator) onCategoryResult(category news.Category, raw []byte, err error) {
	if err != nil {
		a.logger.Warn("category fetch failed", zap.String("category", string(category)), zap.Error(err))
		a.fail(category, err)
		return
	}
	page, err := a.decoder.DecodePage(raw)
	if err != nil {
		a.logger.Warn("category decode failed", zap.String("category", string(category)), zap.Error(err))
		a.fail(category, err)
		return
	}
	a.logDropped(category, page)
	a.succeed(category, page.Articles)
}

func (a *Aggregator) logDropped(category news.Category, page news.Page) {
	if dropped := page.Received - len(page.Articles); dropped > 0 {
		a.logger.Debug("dropped incomplete articles",
			zap.String("category", string(category)),
			zap.Int("dropped", dropped),
		)
	}
}

func (a *Aggregator) succeed(category news.Category, articles []news.Article) {
	a.state.Append(category, articles)
	a.mu.Lock()
	a.report.Succeeded++
	a.mu.Unlock()
}

func (a *Aggregator) fail(category news.Category, err error) {
	a.state.Fail(category, err)
	a.mu.Lock()
	a.report.Failed++
	a.report.Errors[category] = err
	a.mu.Unlock()
}

// Wait blocks until every load started by Initialize has been applied.
func (a *Aggregator) Wait() LoadReport {
	a.wg.Wait()
	a.mu.Lock()
	defer a.mu.Unlock()
	out := a.report
	out.Errors = maps.Clone(a.report.Errors)
	return out
}

// Close releases the state goroutine.
func (a *Aggregator) Close() {
	a.state.Close()
}
