package state

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/headlines/internal/application/usecase"
	"github.com/tesso57/headlines/internal/domain/news"
)

// SearchKey identifies the search section in the sidebar.
const SearchKey = "search"

// SearchState mirrors the paginated search feed.
type SearchState struct {
	Query     string
	Articles  []news.Article
	Loading   bool
	Exhausted bool
	Err       error
}

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session       Session
	CategoryList  list.Model
	ArticleList   list.Model
	Viewport      viewport.Model
	Help          help.Model
	Spinner       spinner.Model
	Keys          KeyMap
	Width         int
	Height        int
	Snapshot      usecase.Snapshot
	Search        *SearchState
	CurrentKey    string
	Err           error
	StatusMessage string
	Previous      Session
	Now           func() time.Time
}

// Loading reports whether the visible section is still waiting for its first load.
func (s *ModelState) Loading() bool {
	if s == nil {
		return false
	}
	if s.CurrentKey == SearchKey {
		return s.Search != nil && s.Search.Loading && len(s.Search.Articles) == 0
	}
	st, ok := s.Snapshot.Get(news.Category(s.CurrentKey))
	return ok && st.Status == usecase.StatusPending
}

// Clock returns the time source used for relative dates.
func (s *ModelState) Clock() time.Time {
	if s == nil || s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
