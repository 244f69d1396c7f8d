package newsapi

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/tesso57/headlines/internal/domain/news"
)

// DefaultBaseURL is the public NewsAPI host.
const DefaultBaseURL = "https://newsapi.org"

// Endpoints builds request URLs for the NewsAPI v2 routes.
type Endpoints struct {
	BaseURL  string
	APIKey   string
	Country  string
	Language string
}

func (e Endpoints) base() string {
	base := strings.TrimRight(strings.TrimSpace(e.BaseURL), "/")
	if base == "" {
		return DefaultBaseURL
	}
	return base
}

// TopHeadlines returns the top-headlines URL for one category.
func (e Endpoints) TopHeadlines(category news.Category) string {
	country := e.Country
	if country == "" {
		country = "us"
	}
	q := url.Values{}
	q.Set("country", country)
	q.Set("category", string(category))
	q.Set("apiKey", e.APIKey)
	return e.base() + "/v2/top-headlines?" + q.Encode()
}

// Everything returns the paginated everything-search URL.
func (e Endpoints) Everything(query string, page int) string {
	language := e.Language
	if language == "" {
		language = "en"
	}
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("apiKey", e.APIKey)
	q.Set("language", language)
	q.Set("page", strconv.Itoa(page))
	return e.base() + "/v2/everything?" + q.Encode()
}

// redact hides the apiKey query parameter so URLs can be logged.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if q.Get("apiKey") == "" {
		return rawURL
	}
	q.Set("apiKey", "REDACTED")
	u.RawQuery = q.Encode()
	return u.String()
}
