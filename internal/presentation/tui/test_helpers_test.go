package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/headlines/internal/application/settings"
	"github.com/tesso57/headlines/internal/application/usecase"
	"github.com/tesso57/headlines/internal/domain/news"
)

func testSettings() settings.Settings {
	return settings.Settings{
		KeyMap: settings.KeyMapConfig{
			Up: "k", Down: "j", Left: "h", Right: "l",
			UpPage: "ctrl+u", DownPage: "ctrl+d", Top: "g", Bottom: "G",
			Open: "enter", Back: "esc", Quit: "q",
			Browser: "o", More: "m",
		},
		Theme: settings.ThemeConfig{Source: "244", TopStory: "205", Failed: "203"},
	}
}

// msgRecorder collects messages sent by ForwardChanges.
type msgRecorder struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *msgRecorder) send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *msgRecorder) drain() []tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.msgs
	r.msgs = nil
	return out
}

type mockSearch struct {
	mock.Mock
}

func (m *mockSearch) Query() string { return m.Called().String(0) }

func (m *mockSearch) LoadNextPage(ctx context.Context) (usecase.PageResult, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(usecase.PageResult)
	return res, args.Error(1)
}

func (m *mockSearch) Articles() []news.Article {
	articles, _ := m.Called().Get(0).([]news.Article)
	return articles
}

func (m *mockSearch) Exhausted() bool { return m.Called().Bool(0) }

func articles(titles ...string) []news.Article {
	out := make([]news.Article, len(titles))
	for i, title := range titles {
		out[i] = news.Article{
			ID:          title,
			Title:       title,
			Description: title + " description",
			URL:         "https://example.com/" + title,
			Source:      "Example",
		}
	}
	return out
}

// newTestModel wires a model to a live FeedState and returns a pump that
// delivers recorded changes to the model.
func newTestModel(t *testing.T, search *mockSearch, opts ...Option) (*Model, *usecase.FeedState, func()) {
	feed := usecase.NewFeedState()
	t.Cleanup(feed.Close)
	rec := &msgRecorder{}
	feed.Subscribe(ForwardChanges(rec.send))

	var m *Model
	if search != nil {
		m = NewModel(testSettings(), feed, search, opts...)
	} else {
		m = NewModel(testSettings(), feed, nil, opts...)
	}
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	pump := func() {
		for _, msg := range rec.drain() {
			m.Update(msg)
		}
	}
	return m, feed, pump
}
