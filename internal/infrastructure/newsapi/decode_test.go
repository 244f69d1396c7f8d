package newsapi

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/headlines/internal/domain/news"
)

const twoArticles = `{"status":"ok","totalResults":2,"articles":[` +
	`{"title":"A","url":"http://x","urlToImage":"http://img","publishedAt":"2021-01-01T00:00:00Z"},` +
	`{"title":"B","url":"","urlToImage":"http://img2","publishedAt":"2021-01-02T00:00:00Z"}]}`

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestDecodeDropsArticleWithoutURL(t *testing.T) {
	articles, err := NewDecoder(time.UTC).Decode([]byte(twoArticles))
	require.NoError(t, err)
	require.Len(t, articles, 1)

	a := articles[0]
	assert.Equal(t, "A", a.Title)
	assert.Equal(t, "http://x", a.URL)
	assert.Equal(t, "http://img", a.ImageURL)
	assert.Equal(t, "2021-01-01T00:00:00Z", a.PublishedAt)
	assert.Equal(t, "Jan. 1, 2021 12:00 AM UTC", a.DisplayDate)
	assert.NotEmpty(t, a.ID)
}

func TestDecodeFilter(t *testing.T) {
	payload := `{"status":"ok","totalResults":6,"articles":[
		{"source":{"id":null,"name":"Wire"},"author":"Ann","title":"keep-1","description":"d","urlToImage":"http://i/1","url":"http://a/1","publishedAt":"2021-01-01T00:00:00Z","content":"c"},
		{"author":null,"title":"no-image","description":null,"urlToImage":null,"url":"http://a/2","publishedAt":"2021-01-01T00:00:00Z","content":null},
		{"title":"empty-image","urlToImage":"","url":"http://a/3","publishedAt":"2021-01-01T00:00:00Z"},
		{"title":"keep-2","urlToImage":"http://i/4","url":"http://a/4","publishedAt":"bad date"},
		{"title":"no-url","urlToImage":"http://i/5","publishedAt":"2021-01-01T00:00:00Z"},
		{"title":"keep-3","urlToImage":"http://i/6","url":"http://a/6","publishedAt":"2021-01-03T10:00:00Z"}
	]}`

	d := &Decoder{Location: time.UTC, NewID: sequentialIDs()}
	page, err := d.DecodePage([]byte(payload))
	require.NoError(t, err)

	assert.Equal(t, 6, page.TotalResults)
	assert.Equal(t, 6, page.Received)
	require.Len(t, page.Articles, 3)

	titles := []string{page.Articles[0].Title, page.Articles[1].Title, page.Articles[2].Title}
	assert.Equal(t, []string{"keep-1", "keep-2", "keep-3"}, titles)
	assert.Equal(t, []string{"id-1", "id-2", "id-3"}, []string{page.Articles[0].ID, page.Articles[1].ID, page.Articles[2].ID})

	first := page.Articles[0]
	assert.Equal(t, "Ann", first.Author)
	assert.Equal(t, "Wire", first.Source)
	assert.Equal(t, "c", first.Content)
	assert.Equal(t, "bad date", page.Articles[1].DisplayDate)
}

func TestDecodeNonOKStatus(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "error status", payload: `{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid.","articles":[{"title":"A","url":"http://x","urlToImage":"http://img","publishedAt":"2021"}]}`},
		{name: "missing status", payload: `{"totalResults":1,"articles":[{"title":"A","url":"http://x","urlToImage":"http://img","publishedAt":"2021"}]}`},
		{name: "json null", payload: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articles, err := Decode([]byte(tt.payload))
			assert.Empty(t, articles)
			require.Error(t, err)
			assert.True(t, errors.Is(err, news.ErrAPIStatus), "got %v", err)

			var statusErr *APIStatusError
			require.True(t, errors.As(err, &statusErr))
		})
	}
}

func TestDecodeAPIStatusErrorDetails(t *testing.T) {
	_, err := Decode([]byte(`{"status":"error","code":"rateLimited","message":"slow down"}`))
	var statusErr *APIStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "error", statusErr.Status)
	assert.Equal(t, "rateLimited", statusErr.Code)
	assert.Contains(t, statusErr.Error(), "slow down")
}

func TestDecodeMalformed(t *testing.T) {
	inputs := map[string][]byte{
		"empty":     {},
		"truncated": []byte(`{"status":"ok","articles":[`),
		"not json":  []byte("<html>502</html>"),
		"array":     []byte(`[]`),
		"bad types": []byte(`{"status":"ok","totalResults":"two"}`),
	}
	for name, raw := range inputs {
		t.Run(name, func(t *testing.T) {
			articles, err := Decode(raw)
			assert.Empty(t, articles)
			assert.True(t, errors.Is(err, news.ErrDecode), "got %v", err)
			assert.False(t, errors.Is(err, news.ErrAPIStatus))
		})
	}
}

func TestDecodeMissingArticles(t *testing.T) {
	articles, err := Decode([]byte(`{"status":"ok","totalResults":0}`))
	require.NoError(t, err)
	assert.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestDecodeTwiceGeneratesFreshIDs(t *testing.T) {
	d := NewDecoder(time.UTC)
	first, err := d.Decode([]byte(twoArticles))
	require.NoError(t, err)
	second, err := d.Decode([]byte(twoArticles))
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.NotEqual(t, first[0].ID, second[0].ID)

	first[0].ID, second[0].ID = "", ""
	assert.Equal(t, first[0], second[0])
}

func TestDecodeIDsAreDistinct(t *testing.T) {
	payload := `{"status":"ok","totalResults":3,"articles":[
		{"title":"same","url":"http://same","urlToImage":"http://img","publishedAt":"2021-01-01T00:00:00Z"},
		{"title":"same","url":"http://same","urlToImage":"http://img","publishedAt":"2021-01-01T00:00:00Z"},
		{"title":"same","url":"http://same","urlToImage":"http://img","publishedAt":"2021-01-01T00:00:00Z"}
	]}`
	articles, err := Decode([]byte(payload))
	require.NoError(t, err)
	require.Len(t, articles, 3)

	seen := map[string]bool{}
	for _, a := range articles {
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
}

func TestDecodeMaximumResultsReached(t *testing.T) {
	_, err := Decode([]byte(`{"status":"error","code":"maximumResultsReached","message":"You have requested too many results."}`))
	assert.ErrorIs(t, err, news.ErrResultsCapped)
	assert.ErrorIs(t, err, news.ErrAPIStatus)

	_, err = Decode([]byte(`{"status":"error","code":"rateLimited"}`))
	assert.NotErrorIs(t, err, news.ErrResultsCapped)
}
