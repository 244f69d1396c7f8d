package usecase

import (
	"slices"
	"sync"

	"github.com/tesso57/headlines/internal/domain/news"
)

// CategoryStatus reports the load state of one category.
type CategoryStatus int

const (
	// StatusPending means no load has finished yet.
	StatusPending CategoryStatus = iota
	// StatusLoaded means at least one load succeeded.
	StatusLoaded
	// StatusFailed means the most recent load failed.
	StatusFailed
)

func (s CategoryStatus) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "pending"
	}
}

// CategoryState is a read-only copy of one category collection.
type CategoryState struct {
	Category news.Category
	Articles []news.Article
	Status   CategoryStatus
	Err      error
}

// Snapshot holds every category in display order.
type Snapshot []CategoryState

// Get returns the state for category.
func (s Snapshot) Get(category news.Category) (CategoryState, bool) {
	for _, st := range s {
		if st.Category == category {
			return st, true
		}
	}
	return CategoryState{}, false
}

// Change describes one applied mutation.
type Change struct {
	Category news.Category
	Added    int
	Status   CategoryStatus
	Err      error
}

// Observer is notified after each applied mutation.
// Calls are serialized and arrive in application order.
type Observer func(Change)

type mutation struct {
	category news.Category
	articles []news.Article
	err      error
	applied  chan struct{}
}

// FeedState owns the per-category article collections.
// Writes go through a single goroutine; reads take a copy.
type FeedState struct {
	mu         sync.RWMutex
	categories map[news.Category]*CategoryState

	obsMu     sync.Mutex
	observers map[int]Observer
	nextObs   int

	updates   chan mutation
	done      chan struct{}
	closeOnce sync.Once
	loopDone  chan struct{}
}

// NewFeedState returns an empty state with one pending collection per category.
func NewFeedState() *FeedState {
	s := new(FeedState{
		categories: make(map[news.Category]*CategoryState, len(news.Categories())),
		observers:  map[int]Observer{},
		updates:    make(chan mutation),
		done:       make(chan struct{}),
		loopDone:   make(chan struct{}),
	})
	for _, c := range news.Categories() {
		s.categories[c] = &CategoryState{Category: c, Articles: []news.Article{}}
	}
	go s.run()
	return s
}

func (s *FeedState) run() {
	defer close(s.loopDone)
	for {
		select {
		case <-s.done:
			return
		case m := <-s.updates:
			change, ok := s.apply(m)
			if ok {
				s.notify(change)
			}
			close(m.applied)
		}
	}
}

func (s *FeedState) apply(m mutation) (Change, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.categories[m.category]
	if !ok {
		return Change{}, false
	}
	if m.err != nil {
		st.Status = StatusFailed
		st.Err = m.err
		return Change{Category: m.category, Status: st.Status, Err: m.err}, true
	}
	st.Articles = append(st.Articles, m.articles...)
	st.Status = StatusLoaded
	st.Err = nil
	return Change{Category: m.category, Added: len(m.articles), Status: st.Status}, true
}

func (s *FeedState) notify(change Change) {
	s.obsMu.Lock()
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	obs := make([]Observer, 0, len(ids))
	for _, id := range ids {
		obs = append(obs, s.observers[id])
	}
	s.obsMu.Unlock()

	for _, fn := range obs {
		fn(change)
	}
}

func (s *FeedState) submit(m mutation) {
	m.applied = make(chan struct{})
	select {
	case <-s.done:
		return
	case s.updates <- m:
	}
	select {
	case <-m.applied:
	case <-s.loopDone:
	}
}

// Subscribe registers fn and returns a function that removes it.
func (s *FeedState) Subscribe(fn Observer) func() {
	if fn == nil {
		return func() {}
	}
	s.obsMu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.obsMu.Unlock()

	return func() {
		s.obsMu.Lock()
		delete(s.observers, id)
		s.obsMu.Unlock()
	}
}

// Append adds articles to category and returns once observers have seen the change.
// Unknown categories are ignored.
func (s *FeedState) Append(category news.Category, articles []news.Article) {
	s.submit(mutation{category: category, articles: slices.Clone(articles)})
}

// Fail records err for category without touching its articles.
func (s *FeedState) Fail(category news.Category, err error) {
	if err == nil {
		return
	}
	s.submit(mutation{category: category, err: err})
}

// Articles returns a copy of the category collection.
func (s *FeedState) Articles(category news.Category) []news.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.categories[category]
	if !ok {
		return nil
	}
	return slices.Clone(st.Articles)
}

// Snapshot copies every category in display order.
func (s *FeedState) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(Snapshot, 0, len(s.categories))
	for _, c := range news.Categories() {
		st := s.categories[c]
		out = append(out, CategoryState{
			Category: st.Category,
			Articles: slices.Clone(st.Articles),
			Status:   st.Status,
			Err:      st.Err,
		})
	}
	return out
}

// Close stops the update goroutine. Later mutations are dropped.
func (s *FeedState) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	<-s.loopDone
}
