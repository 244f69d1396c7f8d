// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"

	"github.com/tesso57/headlines/internal/domain/news"
	"github.com/tesso57/headlines/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/headlines/internal/presentation/tui/components/main"
	"github.com/tesso57/headlines/internal/presentation/tui/components/modal"
	"github.com/tesso57/headlines/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/headlines/internal/presentation/tui/metrics"
	"github.com/tesso57/headlines/internal/presentation/tui/presenter"
	"github.com/tesso57/headlines/internal/presentation/tui/state"
	"github.com/tesso57/headlines/internal/presentation/tui/textutil"
	"github.com/tesso57/headlines/internal/presentation/tui/update"
	"github.com/tesso57/headlines/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Sidebar: m.buildSidebarProps(),
		Header:  m.buildHeaderProps(),
		Main:    m.buildMainProps(),
		Modal:   m.buildModalProps(),
		Footer:  m.buildFooterProps(),
	}
}

func (m *Model) buildSidebarProps() sidebar.Props {
	subtitle := "mock data"
	if m.live {
		subtitle = "live"
	}
	return sidebar.Props{
		View:     m.state.CategoryList.View(),
		Width:    m.state.CategoryList.Width(),
		Height:   m.state.CategoryList.Height(),
		Active:   m.state.Session == state.CategoryView,
		Title:    "Headlines",
		Subtitle: subtitle,
	}
}

func (m *Model) buildHeaderProps() header.Props {
	visible := headerVisible(m.state)
	var link, section string

	if visible {
		if i, ok := m.state.ArticleList.SelectedItem().(*presenter.Item); ok && i != nil {
			mainWidth := m.state.Width - update.SidebarWidth(m.state.Width) - metrics.SidebarRightBorderWidth
			availableWidth := mainWidth - metrics.HeaderWidthPadding
			link = headerLine(i.Link, availableWidth)

			label := update.SectionTitle(m.state)
			if i.Source != "" {
				label = fmt.Sprintf("%s · %s", label, i.Source)
			}
			section = headerLine(label, availableWidth)
		}
	}

	return header.Props{
		Visible: visible && link != "",
		Link:    link,
		Section: section,
	}
}

func (m *Model) buildMainProps() mainview.Props {
	var body string
	switch {
	case m.state.Loading() && m.state.Session != state.DetailView:
		body = fmt.Sprintf("\n\n   %s %s", m.state.Spinner.View(), "Loading headlines...")
	case m.state.Session == state.DetailView:
		body = m.state.Viewport.View()
	case len(m.state.ArticleList.Items()) == 0:
		body = emptyBody(m.state)
	default:
		body = m.state.ArticleList.View()
	}
	if m.state.Err != nil && m.state.Session != state.DetailView && !m.state.Loading() {
		body = fmt.Sprintf("Error: %v\n\n%s", m.state.Err, body)
	}

	headerHeight := 0
	if m.buildHeaderProps().Visible {
		headerHeight = metrics.HeaderLines
	}

	return mainview.Props{
		Width:  m.state.ArticleList.Width(),
		Height: m.state.ArticleList.Height() + headerHeight,
		Body:   body,
	}
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.Session == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Quit headlines?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.Session, m.state.Loading(), m.state.StatusMessage, helpText)
}

func headerVisible(st *state.ModelState) bool {
	if st == nil {
		return false
	}
	switch st.Session {
	case state.ArticleView, state.DetailView:
		return true
	default:
		return false
	}
}

func emptyBody(st *state.ModelState) string {
	if st.CurrentKey == state.SearchKey {
		if st.Search != nil && st.Search.Err != nil {
			return fmt.Sprintf("\n   Search failed: %v", st.Search.Err)
		}
		return "\n   No search results."
	}
	if cs, ok := st.Snapshot.Get(news.Category(st.CurrentKey)); ok && cs.Err != nil {
		return fmt.Sprintf("\n   Could not load %s: %v", cs.Category.Label(), cs.Err)
	}
	return "\n   No articles."
}

func headerLine(text string, width int) string {
	return textutil.Truncate(textutil.SingleLine(text), width)
}
