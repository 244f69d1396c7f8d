// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/dustin/go-humanize"
	"github.com/tesso57/headlines/internal/application/usecase"
	"github.com/tesso57/headlines/internal/domain/news"
)

// TopStoryCount is how many leading General articles are marked as top stories.
const TopStoryCount = 5

// Item is a view model for article rows.
type Item struct {
	ID          string
	TitleText   string
	Desc        string
	Content     string
	Link        string
	ImageURL    string
	Author      string
	Source      string
	DisplayDate string
	Relative    string
	TopStory    bool
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.TitleText }

// Title returns the item title.
func (i *Item) Title() string { return i.TitleText }

// URL returns the item's URL.
func (i *Item) URL() string { return i.Link }

// IsTopStory reports whether the item is one of the leading General stories.
func (i *Item) IsTopStory() bool { return i.TopStory }

// Byline returns "By <author>" with a fallback for unknown authors.
func (i *Item) Byline() string {
	author := strings.TrimSpace(i.Author)
	if author == "" {
		author = "Unknown author"
	}
	return "By " + author
}

// Description returns the second list line: source and relative time.
func (i *Item) Description() string {
	parts := make([]string, 0, 2)
	origin := strings.TrimSpace(i.Source)
	if origin == "" {
		origin = strings.TrimSpace(i.Author)
	}
	if origin != "" {
		parts = append(parts, origin)
	}
	when := i.Relative
	if when == "" {
		when = i.DisplayDate
	}
	if when != "" {
		parts = append(parts, when)
	}
	return strings.Join(parts, " - ")
}

// SectionItem is a sidebar row for one category or the search section.
type SectionItem struct {
	Key    string
	Label  string
	Count  int
	Status usecase.CategoryStatus
	Err    error
}

// FilterValue implements list.Item.
func (i *SectionItem) FilterValue() string { return i.Label }

// Title returns the sidebar label with its article count.
func (i *SectionItem) Title() string {
	switch i.Status {
	case usecase.StatusPending:
		return fmt.Sprintf("%s …", i.Label)
	case usecase.StatusFailed:
		return fmt.Sprintf("%s (%d) !", i.Label, i.Count)
	default:
		return fmt.Sprintf("%s (%d)", i.Label, i.Count)
	}
}

// Description implements list.DefaultItem.
func (i *SectionItem) Description() string { return "" }

// Failed reports whether the last load for this section failed.
func (i *SectionItem) Failed() bool { return i.Status == usecase.StatusFailed }

// BuildArticleItems converts articles into list rows. When topStories is set the
// first TopStoryCount rows are flagged.
func BuildArticleItems(articles []news.Article, topStories bool, now time.Time) []list.Item {
	items := make([]list.Item, len(articles))
	for idx, a := range articles {
		item := &Item{
			ID:          a.ID,
			TitleText:   a.Title,
			Desc:        a.Description,
			Content:     a.Content,
			Link:        a.URL,
			ImageURL:    a.ImageURL,
			Author:      a.Author,
			Source:      a.Source,
			DisplayDate: a.DisplayDate,
			TopStory:    topStories && idx < TopStoryCount,
		}
		if published, ok := a.Published(); ok {
			item.Relative = humanize.RelTime(published, now, "ago", "from now")
		}
		items[idx] = item
	}
	return items
}

// BuildSectionItems lists the categories in display order, then the search section.
func BuildSectionItems(snapshot usecase.Snapshot, search *SearchSection) []list.Item {
	items := make([]list.Item, 0, len(snapshot)+1)
	for _, st := range snapshot {
		items = append(items, &SectionItem{
			Key:    string(st.Category),
			Label:  st.Category.Label(),
			Count:  len(st.Articles),
			Status: st.Status,
			Err:    st.Err,
		})
	}
	if search != nil {
		items = append(items, &SectionItem{
			Key:    search.Key,
			Label:  "Search: " + search.Query,
			Count:  search.Count,
			Status: search.Status,
			Err:    search.Err,
		})
	}
	return items
}

// SearchSection describes the optional search entry in the sidebar.
type SearchSection struct {
	Key    string
	Query  string
	Count  int
	Status usecase.CategoryStatus
	Err    error
}

// ApplySectionList updates the sidebar while keeping the selection.
func ApplySectionList(model *list.Model, snapshot usecase.Snapshot, search *SearchSection) {
	idx := model.Index()
	model.SetItems(BuildSectionItems(snapshot, search))
	if idx >= 0 && idx < len(model.Items()) {
		model.Select(idx)
	}
}

// ApplyArticleList replaces the article rows, keeping the cursor on the same article when possible.
func ApplyArticleList(model *list.Model, articles []news.Article, topStories bool, now time.Time) {
	selectedID := ""
	if i, ok := model.SelectedItem().(*Item); ok && i != nil {
		selectedID = i.ID
	}
	model.SetItems(BuildArticleItems(articles, topStories, now))
	if selectedID == "" {
		return
	}
	for idx, it := range model.Items() {
		if item, ok := it.(*Item); ok && item.ID == selectedID {
			model.Select(idx)
			return
		}
	}
}
