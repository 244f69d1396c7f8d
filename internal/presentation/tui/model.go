package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/headlines/internal/application/settings"
	"github.com/tesso57/headlines/internal/domain/news"
	"github.com/tesso57/headlines/internal/presentation/tui/presenter"
	"github.com/tesso57/headlines/internal/presentation/tui/state"
	"github.com/tesso57/headlines/internal/presentation/tui/update"
	"github.com/tesso57/headlines/internal/presentation/tui/view"
	listview "github.com/tesso57/headlines/internal/presentation/tui/view/list"
)

// Model represents the main application state.
type Model struct {
	ctx      context.Context
	settings settings.Settings
	feed     update.FeedSource
	search   update.SearchSource
	live     bool
	open     func(string) error
	state    *state.ModelState
}

// Option customizes a Model.
type Option func(*Model)

// WithBrowserOpener replaces the function used to open article links.
func WithBrowserOpener(open func(string) error) Option {
	return func(m *Model) { m.open = open }
}

// WithContext sets the context for background requests such as search pages.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// WithLive marks the model as reading from the live API.
func WithLive(live bool) Option {
	return func(m *Model) { m.live = live }
}

// NewModel creates a new application model. search may be nil.
func NewModel(cfg settings.Settings, feed update.FeedSource, search update.SearchSource, opts ...Option) *Model {
	m := &Model{
		ctx:      context.Background(),
		settings: cfg,
		feed:     feed,
		search:   search,
		open:     openBrowser,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.state = newModelState(cfg, feed, search)
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.state.Spinner.Tick}
	if m.search != nil && m.state.Search != nil {
		cmds = append(cmds, update.LoadSearchPageCmd(m.ctx, m.search))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateListSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.CategoryChangedMsg:
		update.HandleCategoryChangedMsg(m.state, msg, m.deps())
	case update.SearchPageLoadedMsg:
		update.HandleSearchPageLoadedMsg(m.state, msg)
	case update.BrowserOpenedMsg:
		update.HandleBrowserOpenedMsg(m.state, msg)
	case spinner.TickMsg:
		if update.AnyLoading(m.state) {
			m.state.Spinner, cmd = m.state.Spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	switch m.state.Session {
	case state.CategoryView:
		prevIdx := m.state.CategoryList.Index()
		m.state.CategoryList, cmd = m.state.CategoryList.Update(msg)
		if m.state.CategoryList.Index() != prevIdx {
			m.state.Err = nil
			update.SelectSection(m.state)
		}
		cmds = append(cmds, cmd)
	case state.ArticleView:
		m.state.ArticleList, cmd = m.state.ArticleList.Update(msg)
		cmds = append(cmds, cmd)
	case state.DetailView:
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Ctx:         m.ctx,
		Feed:        m.feed,
		Search:      m.search,
		OpenBrowser: m.open,
	}
}

func newModelState(cfg settings.Settings, feed update.FeedSource, search update.SearchSource) *state.ModelState {
	st := &state.ModelState{
		Session:      state.CategoryView,
		CategoryList: newCategoryList(cfg),
		ArticleList:  newArticleList(cfg),
		Viewport:     newViewport(),
		Help:         help.New(),
		Spinner:      newSpinner(),
		Keys:         state.NewKeyMap(cfg.KeyMap),
		CurrentKey:   string(news.General),
	}
	if feed != nil {
		st.Snapshot = feed.Snapshot()
	}
	if search != nil {
		st.Search = &state.SearchState{Query: search.Query(), Loading: true}
	}

	st.CategoryList.KeyMap.PrevPage = st.Keys.UpPage
	st.CategoryList.KeyMap.NextPage = st.Keys.DownPage
	st.ArticleList.KeyMap.PrevPage = st.Keys.UpPage
	st.ArticleList.KeyMap.NextPage = st.Keys.DownPage

	presenter.ApplySectionList(&st.CategoryList, st.Snapshot, update.SearchSection(st))
	update.SyncArticleList(st)

	return st
}

func newCategoryList(cfg settings.Settings) list.Model {
	l := list.New([]list.Item{}, listview.NewSectionDelegate(lipgloss.Color(cfg.Theme.Failed)), 0, 0)
	l.Title = "Categories"
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newArticleList(cfg settings.Settings) list.Model {
	delegate := listview.NewArticleDelegate(lipgloss.Color(cfg.Theme.Source), lipgloss.Color(cfg.Theme.TopStory))
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Articles"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	return vp
}
