// Package listview provides list item delegates for the view layer.
package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const topStoryMarker = "★ "

// ArticleItem interface for items that can be rendered by ArticleDelegate.
type ArticleItem interface {
	list.Item
	Title() string
	Description() string
	IsTopStory() bool
}

// ArticleDelegate renders an article as a title line and a source/time line.
type ArticleDelegate struct {
	Styles   list.DefaultItemStyles
	Meta     lipgloss.Style
	TopStory lipgloss.Style
}

// NewArticleDelegate creates a new ArticleDelegate.
func NewArticleDelegate(metaColor, topStoryColor lipgloss.Color) *ArticleDelegate {
	return &ArticleDelegate{
		Styles:   withItemPadding(list.NewDefaultItemStyles()),
		Meta:     lipgloss.NewStyle().Foreground(metaColor),
		TopStory: lipgloss.NewStyle().Foreground(topStoryColor).Bold(true),
	}
}

// Height returns the height of the item.
func (d *ArticleDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d *ArticleDelegate) Spacing() int {
	return 1
}

// Update handles messages for the delegate.
func (d *ArticleDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *ArticleDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(ArticleItem)
	if !ok {
		return
	}

	titleStyle := itemStyle(d.Styles, m, index)
	descStyle := d.Styles.NormalDesc
	if index == m.Index() {
		descStyle = d.Styles.SelectedDesc
	}

	prefix := ""
	if i.IsTopStory() {
		prefix = d.TopStory.Render(topStoryMarker)
	}
	title := truncateItemText(m, titleStyle, prefix+i.Title())
	desc := truncateItemText(m, descStyle, i.Description())

	renderItemText(w, titleStyle, title)
	_, _ = io.WriteString(w, "\n")
	renderItemText(w, descStyle, d.Meta.Render(desc))
}
