package listview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SectionItem interface for items that can be rendered by SectionDelegate.
type SectionItem interface {
	list.Item
	Title() string
	Failed() bool
}

// SectionDelegate handles rendering of sidebar sections.
type SectionDelegate struct {
	Styles list.DefaultItemStyles
	Failed lipgloss.Color
}

// NewSectionDelegate creates a new SectionDelegate.
func NewSectionDelegate(failedColor lipgloss.Color) *SectionDelegate {
	return &SectionDelegate{
		Styles: withItemPadding(list.NewDefaultItemStyles()),
		Failed: failedColor,
	}
}

// Height returns the height of the item.
func (d SectionDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d SectionDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d SectionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d SectionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(SectionItem)
	if !ok {
		return
	}

	style := itemStyle(d.Styles, m, index)
	if i.Failed() && index != m.Index() {
		style = style.Foreground(d.Failed)
	}
	title := truncateItemText(m, style, i.Title())
	_, _ = fmt.Fprint(w, style.Render(title))
}
