// Package news defines the core headline models.
package news

import "time"

// DisplayLayout is the human-facing rendering of a publication timestamp.
const DisplayLayout = "Jan. 2, 2006 3:04 PM MST"

var publishedLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05Z",
}

// Article represents a single headline.
type Article struct {
	ID          string
	Author      string
	Title       string
	Description string
	ImageURL    string
	URL         string
	PublishedAt string
	Content     string
	Source      string
	DisplayDate string
}

// Published parses PublishedAt. The boolean is false when the timestamp is not ISO-8601.
func (a Article) Published() (time.Time, bool) {
	return ParsePublished(a.PublishedAt)
}

// ParsePublished parses a NewsAPI publishedAt value.
func ParsePublished(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDisplayDate renders raw in loc using DisplayLayout.
// The raw string is returned unchanged when it cannot be parsed.
func FormatDisplayDate(raw string, loc *time.Location) string {
	t, ok := ParsePublished(raw)
	if !ok {
		return raw
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DisplayLayout)
}

// Page is one decoded API response.
type Page struct {
	Articles     []Article
	TotalResults int
	// Received counts the articles in the payload before filtering.
	Received int
}
