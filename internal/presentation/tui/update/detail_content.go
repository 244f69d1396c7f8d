package update

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/headlines/internal/presentation/tui/presenter"
)

const detailSectionDivider = "----------------------------------------"

// NewsAPI truncates content and appends a marker such as "[+1843 chars]".
var truncationMarker = regexp.MustCompile(`\s*\[\+\d+ chars\]\s*$`)

func buildDetailContent(i *presenter.Item, section string) string {
	if i == nil {
		return ""
	}

	lines := make([]string, 0, 16)
	if title := strings.TrimSpace(i.TitleText); title != "" {
		lines = append(lines, title, "")
	}
	lines = append(lines, i.Byline())

	meta := make([]string, 0, 3)
	if d := strings.TrimSpace(i.DisplayDate); d != "" {
		meta = append(meta, d)
	}
	if src := strings.TrimSpace(i.Source); src != "" {
		meta = append(meta, src)
	}
	if section != "" {
		meta = append(meta, section)
	}
	if len(meta) > 0 {
		lines = append(lines, strings.Join(meta, " · "))
	}

	summary := strings.TrimSpace(i.Desc)
	if summary == "" {
		summary = "(No description available.)"
	}
	body := strings.TrimSpace(truncationMarker.ReplaceAllString(i.Content, ""))
	if body == "" {
		body = "(No article body available. Open it in the browser.)"
	}

	lines = append(lines,
		"",
		detailSectionDivider,
		summary,
		"",
		detailSectionDivider,
		"Article Body",
		body,
		"",
		detailSectionDivider,
		i.Link,
	)
	return strings.Join(lines, "\n")
}

func buildDetailContentForWidth(i *presenter.Item, section string, width int) string {
	content := buildDetailContent(i, section)
	if content == "" || width <= 0 {
		return content
	}
	return lipgloss.NewStyle().Width(width).Render(content)
}
