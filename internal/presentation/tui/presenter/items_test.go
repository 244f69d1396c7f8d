package presenter

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/headlines/internal/application/usecase"
	"github.com/tesso57/headlines/internal/domain/news"
)

func sampleArticles(n int) []news.Article {
	out := make([]news.Article, n)
	for i := range out {
		out[i] = news.Article{
			ID:          string(rune('a' + i)),
			Title:       "Story " + string(rune('A'+i)),
			URL:         "http://example.com/" + string(rune('a'+i)),
			ImageURL:    "http://img",
			PublishedAt: "2021-01-01T10:00:00Z",
			DisplayDate: "Jan. 1, 2021 10:00 AM UTC",
			Source:      "Wire",
		}
	}
	return out
}

func TestBuildArticleItems(t *testing.T) {
	now := time.Date(2021, 1, 1, 13, 0, 0, 0, time.UTC)
	items := BuildArticleItems(sampleArticles(7), true, now)
	if len(items) != 7 {
		t.Fatalf("Expected 7 items, got %d", len(items))
	}

	for idx, it := range items {
		item := it.(*Item)
		wantTop := idx < TopStoryCount
		if item.TopStory != wantTop {
			t.Errorf("item %d TopStory = %v, want %v", idx, item.TopStory, wantTop)
		}
	}

	first := items[0].(*Item)
	if first.Relative != "3 hours ago" {
		t.Errorf("Relative = %q, want %q", first.Relative, "3 hours ago")
	}
	if got := first.Description(); got != "Wire - 3 hours ago" {
		t.Errorf("Description() = %q", got)
	}
}

func TestBuildArticleItemsWithoutTopStories(t *testing.T) {
	items := BuildArticleItems(sampleArticles(3), false, time.Now())
	for _, it := range items {
		if it.(*Item).TopStory {
			t.Fatal("no item should be a top story")
		}
	}
}

func TestItemDescriptionFallbacks(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{name: "author when no source", item: Item{Author: "Ann", DisplayDate: "Jan. 1"}, want: "Ann - Jan. 1"},
		{name: "date only", item: Item{DisplayDate: "2021-13-45"}, want: "2021-13-45"},
		{name: "empty", item: Item{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Description(); got != tt.want {
				t.Fatalf("Description() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestItemByline(t *testing.T) {
	if got := (&Item{Author: "Jay Peters"}).Byline(); got != "By Jay Peters" {
		t.Errorf("Byline() = %q", got)
	}
	if got := (&Item{Author: "  "}).Byline(); got != "By Unknown author" {
		t.Errorf("Byline() = %q", got)
	}
}

func TestBuildSectionItems(t *testing.T) {
	snapshot := usecase.Snapshot{
		{Category: news.General, Articles: sampleArticles(2), Status: usecase.StatusLoaded},
		{Category: news.Sports, Status: usecase.StatusFailed, Err: errors.New("boom")},
		{Category: news.Health, Status: usecase.StatusPending},
	}
	items := BuildSectionItems(snapshot, &SearchSection{Key: "search", Query: "apple", Count: 4, Status: usecase.StatusLoaded})
	if len(items) != 4 {
		t.Fatalf("Expected 4 items, got %d", len(items))
	}

	want := []string{"General (2)", "Sports (0) !", "Health …", "Search: apple (4)"}
	for idx, it := range items {
		got := it.(*SectionItem).Title()
		if got != want[idx] {
			t.Errorf("item %d Title() = %q, want %q", idx, got, want[idx])
		}
	}
	if !items[1].(*SectionItem).Failed() {
		t.Error("sports should be marked failed")
	}
	if items[3].(*SectionItem).Key != "search" {
		t.Error("search entry should carry its key")
	}
}

func TestApplyArticleListKeepsSelection(t *testing.T) {
	l := list.New(nil, list.NewDefaultDelegate(), 80, 40)
	articles := sampleArticles(3)
	ApplyArticleList(&l, articles, false, time.Now())
	l.Select(1)

	grown := append([]news.Article{{ID: "new", Title: "Fresh"}}, articles...)
	ApplyArticleList(&l, grown, false, time.Now())

	got := l.SelectedItem().(*Item)
	if !strings.HasPrefix(got.TitleText, "Story B") {
		t.Fatalf("selection moved to %q", got.TitleText)
	}
}

func TestApplySectionListKeepsIndex(t *testing.T) {
	l := list.New(nil, list.NewDefaultDelegate(), 80, 40)
	snapshot := usecase.Snapshot{
		{Category: news.General},
		{Category: news.Sports},
		{Category: news.Health},
	}
	ApplySectionList(&l, snapshot, nil)
	l.Select(2)
	snapshot[2].Status = usecase.StatusLoaded
	ApplySectionList(&l, snapshot, nil)
	if l.Index() != 2 {
		t.Fatalf("Index() = %d, want 2", l.Index())
	}
}
