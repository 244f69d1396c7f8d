// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/headlines/internal/application/usecase"
	"github.com/tesso57/headlines/internal/domain/news"
	"github.com/tesso57/headlines/internal/presentation/tui/intent"
	"github.com/tesso57/headlines/internal/presentation/tui/presenter"
	"github.com/tesso57/headlines/internal/presentation/tui/state"
)

// FeedSource exposes the aggregated category state.
type FeedSource interface {
	Snapshot() usecase.Snapshot
}

// SearchSource is the paginated search feed.
type SearchSource interface {
	Query() string
	LoadNextPage(ctx context.Context) (usecase.PageResult, error)
	Articles() []news.Article
	Exhausted() bool
}

// Deps groups external dependencies for updates.
type Deps struct {
	// Ctx bounds background requests; it is cancelled when the program exits.
	Ctx         context.Context
	Feed        FeedSource
	Search      SearchSource
	OpenBrowser func(string) error
}

// CategoryChangedMsg is emitted when the aggregator applies a change.
type CategoryChangedMsg struct {
	Change usecase.Change
}

// SearchPageLoadedMsg is emitted after a search page request finishes.
type SearchPageLoadedMsg struct {
	Result    usecase.PageResult
	Articles  []news.Article
	Exhausted bool
	Err       error
}

// BrowserOpenedMsg is emitted after asking the OS to open a link.
type BrowserOpenedMsg struct {
	URL string
	Err error
}

// LoadSearchPageCmd creates a command that loads the next search page.
func LoadSearchPageCmd(ctx context.Context, search SearchSource) tea.Cmd {
	if ctx == nil {
		ctx = context.Background()
	}
	return func() tea.Msg {
		result, err := search.LoadNextPage(ctx)
		return SearchPageLoadedMsg{
			Result:    result,
			Articles:  search.Articles(),
			Exhausted: search.Exhausted(),
			Err:       err,
		}
	}
}

// OpenBrowserCmd creates a command that opens url with the system browser.
func OpenBrowserCmd(open func(string) error, url string) tea.Cmd {
	url = strings.TrimSpace(url)
	return func() tea.Msg {
		if open == nil {
			return BrowserOpenedMsg{URL: url, Err: errors.New("no browser opener configured")}
		}
		return BrowserOpenedMsg{URL: url, Err: open(url)}
	}
}

// HandleKeyMsg processes key input based on the current session.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if parsed.Type == intent.Quit {
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	}
	if parsed.Type == intent.ToggleHelp {
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	}
	if parsed.Type == intent.More {
		return startSearchPage(s, deps), true
	}

	switch s.Session {
	case state.CategoryView:
		return handleCategoryViewIntent(s, parsed, deps)
	case state.ArticleView:
		return handleArticleViewIntent(s, parsed, deps)
	case state.DetailView:
		return handleDetailViewIntent(s, parsed, deps)
	default:
		return nil, false
	}
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func handleCategoryViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Open:
		if len(s.ArticleList.Items()) == 0 {
			return nil, true
		}
		s.Session = state.ArticleView
		return nil, true
	case intent.Browser:
		if i, ok := selectedArticleItem(s); ok {
			return OpenBrowserCmd(deps.OpenBrowser, i.Link), true
		}
		return nil, true
	}
	return nil, false
}

func handleArticleViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Back:
		s.Session = state.CategoryView
		return nil, true
	case intent.Open:
		if i, ok := selectedArticleItem(s); ok {
			s.Session = state.DetailView
			refreshDetailViewport(s, i)
		}
		return nil, true
	case intent.Browser:
		if i, ok := selectedArticleItem(s); ok {
			return OpenBrowserCmd(deps.OpenBrowser, i.Link), true
		}
		return nil, true
	}
	return nil, false
}

func handleDetailViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Back:
		s.Session = state.ArticleView
		return nil, true
	case intent.Open, intent.Browser:
		if i, ok := selectedArticleItem(s); ok {
			return OpenBrowserCmd(deps.OpenBrowser, i.Link), true
		}
		return nil, true
	}
	return nil, false
}

func startSearchPage(s *state.ModelState, deps Deps) tea.Cmd {
	if deps.Search == nil || s.Search == nil || s.CurrentKey != state.SearchKey {
		return nil
	}
	if s.Search.Loading {
		return nil
	}
	if s.Search.Exhausted {
		s.StatusMessage = "No more search results"
		return nil
	}
	s.Search.Loading = true
	s.StatusMessage = ""
	return tea.Batch(s.Spinner.Tick, LoadSearchPageCmd(deps.Ctx, deps.Search))
}

// HandleWindowSize updates layout sizing based on terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateListSizes(s)
	if s.Session == state.DetailView {
		if i, ok := selectedArticleItem(s); ok {
			refreshDetailViewport(s, i)
		}
	}
}

// HandleCategoryChangedMsg refreshes the sidebar and, when visible, the article list.
func HandleCategoryChangedMsg(s *state.ModelState, msg CategoryChangedMsg, deps Deps) {
	if deps.Feed != nil {
		s.Snapshot = deps.Feed.Snapshot()
	}
	s.StatusMessage = failureStatus(s.Snapshot)
	presenter.ApplySectionList(&s.CategoryList, s.Snapshot, SearchSection(s))
	if string(msg.Change.Category) == s.CurrentKey {
		SyncArticleList(s)
	}
	UpdateListSizes(s)
}

// HandleSearchPageLoadedMsg applies a loaded search page.
func HandleSearchPageLoadedMsg(s *state.ModelState, msg SearchPageLoadedMsg) {
	if s.Search == nil {
		return
	}
	s.Search.Loading = false
	defer UpdateListSizes(s)

	if msg.Err != nil {
		if errors.Is(msg.Err, usecase.ErrSearchExhausted) {
			s.Search.Exhausted = true
			s.StatusMessage = "No more search results"
			return
		}
		s.Search.Err = msg.Err
		s.StatusMessage = fmt.Sprintf("Search page %d failed: %s", msg.Result.Page, strings.TrimSpace(msg.Err.Error()))
	} else {
		s.Search.Err = nil
		s.Search.Articles = msg.Articles
		s.Search.Exhausted = msg.Exhausted
		s.StatusMessage = fmt.Sprintf("Search page %d: %d new articles", msg.Result.Page, msg.Result.Added)
	}

	presenter.ApplySectionList(&s.CategoryList, s.Snapshot, SearchSection(s))
	if s.CurrentKey == state.SearchKey {
		SyncArticleList(s)
	}
}

// HandleBrowserOpenedMsg reports the result of opening a link.
func HandleBrowserOpenedMsg(s *state.ModelState, msg BrowserOpenedMsg) {
	if msg.Err != nil {
		s.StatusMessage = fmt.Sprintf("Could not open browser: %s", strings.TrimSpace(msg.Err.Error()))
		return
	}
	s.StatusMessage = ""
}

// SelectSection points the article list at the sidebar selection.
func SelectSection(s *state.ModelState) {
	item, ok := s.CategoryList.SelectedItem().(*presenter.SectionItem)
	if !ok || item == nil {
		return
	}
	if item.Key == s.CurrentKey {
		return
	}
	s.CurrentKey = item.Key
	s.ArticleList.ResetSelected()
	s.ArticleList.ResetFilter()
	SyncArticleList(s)
	UpdateListSizes(s)
}

// SyncArticleList rebuilds the article rows for the current section.
func SyncArticleList(s *state.ModelState) {
	articles, topStories := currentArticles(s)
	presenter.ApplyArticleList(&s.ArticleList, articles, topStories, s.Clock())
	s.ArticleList.Title = SectionTitle(s)
}

func currentArticles(s *state.ModelState) ([]news.Article, bool) {
	if s.CurrentKey == state.SearchKey {
		if s.Search == nil {
			return nil, false
		}
		return s.Search.Articles, false
	}
	st, ok := s.Snapshot.Get(news.Category(s.CurrentKey))
	if !ok {
		return nil, false
	}
	return st.Articles, st.Category == news.General
}

// SectionTitle returns the label of the section shown in the main pane.
func SectionTitle(s *state.ModelState) string {
	if s.CurrentKey == state.SearchKey && s.Search != nil {
		return "Search: " + s.Search.Query
	}
	if c, err := news.ParseCategory(s.CurrentKey); err == nil {
		return c.Label()
	}
	return ""
}

// SearchSection returns the sidebar entry for the search feed, or nil.
func SearchSection(s *state.ModelState) *presenter.SearchSection {
	if s.Search == nil {
		return nil
	}
	status := usecase.StatusLoaded
	switch {
	case s.Search.Err != nil:
		status = usecase.StatusFailed
	case s.Search.Loading && len(s.Search.Articles) == 0:
		status = usecase.StatusPending
	}
	return &presenter.SearchSection{
		Key:    state.SearchKey,
		Query:  s.Search.Query,
		Count:  len(s.Search.Articles),
		Status: status,
		Err:    s.Search.Err,
	}
}

func failureStatus(snapshot usecase.Snapshot) string {
	var failed []string
	for _, st := range snapshot {
		if st.Status == usecase.StatusFailed {
			failed = append(failed, st.Category.Label())
		}
	}
	if len(failed) == 0 {
		return ""
	}
	return "Failed to load: " + strings.Join(failed, ", ")
}

// AnyLoading reports whether a category or the search feed is still loading.
func AnyLoading(s *state.ModelState) bool {
	for _, st := range s.Snapshot {
		if st.Status == usecase.StatusPending {
			return true
		}
	}
	return s.Search != nil && s.Search.Loading
}

func selectedArticleItem(s *state.ModelState) (*presenter.Item, bool) {
	item, ok := s.ArticleList.SelectedItem().(*presenter.Item)
	if !ok || item == nil {
		return nil, false
	}
	return item, true
}

func refreshDetailViewport(s *state.ModelState, item *presenter.Item) {
	if s == nil {
		return
	}
	wrapWidth := detailWrapWidth(s)
	s.Viewport.SetContent(buildDetailContentForWidth(item, SectionTitle(s), wrapWidth))
	s.Viewport.GotoTop()
}

func detailWrapWidth(s *state.ModelState) int {
	if s == nil {
		return 0
	}
	viewportContentWidth := s.Viewport.Width - s.Viewport.Style.GetHorizontalFrameSize()
	if viewportContentWidth > 0 {
		return viewportContentWidth
	}
	mainContentWidth := s.ArticleList.Width() - 1
	return clampMin(mainContentWidth-s.Viewport.Style.GetHorizontalFrameSize(), 1)
}
