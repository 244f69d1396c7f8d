package update

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/headlines/internal/application/settings"
	"github.com/tesso57/headlines/internal/presentation/tui/metrics"
	"github.com/tesso57/headlines/internal/presentation/tui/state"
)

func TestFooterHeight_ReflectsStatusMessage(t *testing.T) {
	s := newLayoutTestState()
	s.Width = 100
	s.Session = state.ArticleView

	base := footerHeight(s)
	s.StatusMessage = "Failed to load: Sports"
	withStatus := footerHeight(s)
	if withStatus <= base {
		t.Fatalf("footer height should grow with status: base=%d with=%d", base, withStatus)
	}

	s.Session = state.QuitView
	inQuitView := footerHeight(s)
	if inQuitView != base {
		t.Fatalf("footer height should ignore status in quit view: base=%d quit=%d", base, inQuitView)
	}
}

func TestBuildLayoutMetrics_MainWidthSubtractsSidebarBorder(t *testing.T) {
	s := newLayoutTestState()
	s.Width = 120
	s.Height = 40

	layout := buildLayoutMetrics(s)
	sidebarWidth := s.Width / 3
	wantMainWidth := clampMin(s.Width-sidebarWidth-metrics.SidebarRightBorderWidth, 1)
	if layout.mainWidth != wantMainWidth {
		t.Fatalf("main width = %d, want %d", layout.mainWidth, wantMainWidth)
	}
	if layout.sidebarWidth != sidebarWidth {
		t.Fatalf("sidebar width = %d, want %d", layout.sidebarWidth, sidebarWidth)
	}
}

func TestUpdateListSizes_IgnoresZeroSize(t *testing.T) {
	s := newLayoutTestState()
	s.Width = 0
	s.Height = 0
	UpdateListSizes(s)
	if s.ArticleList.Width() != 0 || s.Viewport.Width != 0 {
		t.Fatalf("zero-sized terminal should leave lists alone")
	}

	s.Width = 90
	s.Height = 30
	UpdateListSizes(s)
	if s.ArticleList.Width() == 0 || s.CategoryList.Height() == 0 {
		t.Fatalf("lists should be sized, got article=%d sidebar=%d", s.ArticleList.Width(), s.CategoryList.Height())
	}
	if s.Viewport.Width != s.ArticleList.Width() {
		t.Fatalf("viewport width = %d, want %d", s.Viewport.Width, s.ArticleList.Width())
	}
}

func newLayoutTestState() *state.ModelState {
	keys := state.NewKeyMap(settings.KeyMapConfig{
		Up: "k", Down: "j", Left: "h", Right: "l",
		Open: "enter", Back: "esc", Quit: "q",
		Browser: "o", More: "m",
		UpPage: "pgup", DownPage: "pgdn", Top: "g", Bottom: "G",
	})
	return &state.ModelState{
		Session:      state.CategoryView,
		Help:         help.New(),
		Keys:         keys,
		CategoryList: list.New(nil, list.NewDefaultDelegate(), 0, 0),
		ArticleList:  list.New(nil, list.NewDefaultDelegate(), 0, 0),
		Width:        100,
		Height:       40,
	}
}
