package state

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/tesso57/headlines/internal/application/settings"
	"github.com/tesso57/headlines/internal/application/usecase"
	"github.com/tesso57/headlines/internal/domain/news"
)

func TestFooterText(t *testing.T) {
	tests := []struct {
		name          string
		session       Session
		loading       bool
		statusMessage string
		helpText      string
		want          string
	}{
		{
			name:     "help only when no status",
			session:  ArticleView,
			helpText: "help",
			want:     "help",
		},
		{
			name:          "status shown in category view",
			session:       CategoryView,
			statusMessage: "1 category failed to load",
			helpText:      "help",
			want:          "1 category failed to load\nhelp",
		},
		{
			name:          "help only while loading",
			session:       ArticleView,
			loading:       true,
			statusMessage: "page 2 loaded",
			helpText:      "help",
			want:          "help",
		},
		{
			name:          "status hidden in quit dialog",
			session:       QuitView,
			statusMessage: "page 2 loaded",
			helpText:      "help",
			want:          "help",
		},
		{
			name:          "status without help",
			session:       DetailView,
			statusMessage: "  opened in browser ",
			want:          "opened in browser",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FooterText(tt.session, tt.loading, tt.statusMessage, tt.helpText)
			if got != tt.want {
				t.Fatalf("FooterText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyMapHelpIncludesBrowserAndMore(t *testing.T) {
	keys := NewKeyMap(settings.KeyMapConfig{
		Up: "k", Down: "j", Left: "h", Right: "l",
		Open: "enter", Back: "esc", Quit: "q",
		Browser: "o", More: "m",
		UpPage: "pgup", DownPage: "pgdn", Top: "g", Bottom: "G",
	})
	h := help.New()
	h.ShowAll = true
	h.Width = 200
	out := h.View(&keys)
	for _, want := range []string{"browser", "more results", "toggle help"} {
		if !strings.Contains(out, want) {
			t.Errorf("full help missing %q:\n%s", want, out)
		}
	}
}

func TestSplitKeys(t *testing.T) {
	got := splitKeys(" enter, l ,,pgdn")
	want := []string{"enter", "l", "pgdn", "pgdown"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("splitKeys() = %v, want %v", got, want)
	}
}

func TestModelStateLoading(t *testing.T) {
	snapshot := usecase.Snapshot{
		{Category: news.General, Status: usecase.StatusPending},
		{Category: news.Sports, Status: usecase.StatusLoaded},
		{Category: news.Health, Status: usecase.StatusFailed, Err: errors.New("x")},
	}
	tests := []struct {
		name string
		key  string
		st   *SearchState
		want bool
	}{
		{name: "pending category", key: "general", want: true},
		{name: "loaded category", key: "sports", want: false},
		{name: "failed category", key: "health", want: false},
		{name: "search loading first page", key: SearchKey, st: &SearchState{Loading: true}, want: true},
		{name: "search loading more", key: SearchKey, st: &SearchState{Loading: true, Articles: []news.Article{{}}}, want: false},
		{name: "search disabled", key: SearchKey, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &ModelState{Snapshot: snapshot, CurrentKey: tt.key, Search: tt.st}
			if got := s.Loading(); got != tt.want {
				t.Fatalf("Loading() = %v, want %v", got, tt.want)
			}
		})
	}
}
