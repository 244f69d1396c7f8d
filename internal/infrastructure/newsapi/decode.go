package newsapi

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tesso57/headlines/internal/domain/news"
)

const statusOK = "ok"

type envelope struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []rawArticle `json:"articles"`
	Code         string       `json:"code"`
	Message      string       `json:"message"`
}

type rawSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type rawArticle struct {
	Source      *rawSource `json:"source"`
	Author      string     `json:"author"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URLToImage  string     `json:"urlToImage"`
	URL         string     `json:"url"`
	PublishedAt string     `json:"publishedAt"`
	Content     string     `json:"content"`
}

// Decoder turns an API envelope into validated articles.
// It holds no state between calls.
type Decoder struct {
	// Location is used for DisplayDate. Nil means time.Local.
	Location *time.Location
	// NewID generates article identifiers. Nil means uuid.NewString.
	NewID func() string
}

// NewDecoder constructs a Decoder rendering dates in loc.
func NewDecoder(loc *time.Location) *Decoder {
	return new(Decoder{Location: loc, NewID: uuid.NewString})
}

// Decode is DecodePage without the paging metadata.
func (d *Decoder) Decode(raw []byte) ([]news.Article, error) {
	page, err := d.DecodePage(raw)
	if err != nil {
		return nil, err
	}
	return page.Articles, nil
}

// DecodePage parses raw and keeps articles that have both a link and an image.
// A malformed payload yields news.ErrDecode, a non-ok status yields *APIStatusError.
func (d *Decoder) DecodePage(raw []byte) (news.Page, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return news.Page{}, fmt.Errorf("%w: %w", news.ErrDecode, err)
	}
	if env.Status != statusOK {
		return news.Page{}, &APIStatusError{Status: env.Status, Code: env.Code, Message: env.Message}
	}

	articles := make([]news.Article, 0, len(env.Articles))
	for _, a := range env.Articles {
		if a.URL == "" || a.URLToImage == "" {
			continue
		}
		articles = append(articles, d.article(a))
	}
	return news.Page{
		Articles:     articles,
		TotalResults: env.TotalResults,
		Received:     len(env.Articles),
	}, nil
}

func (d *Decoder) article(a rawArticle) news.Article {
	newID := d.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	var source string
	if a.Source != nil {
		source = a.Source.Name
	}
	return news.Article{
		ID:          newID(),
		Author:      a.Author,
		Title:       a.Title,
		Description: a.Description,
		ImageURL:    a.URLToImage,
		URL:         a.URL,
		PublishedAt: a.PublishedAt,
		Content:     a.Content,
		Source:      source,
		DisplayDate: news.FormatDisplayDate(a.PublishedAt, d.Location),
	}
}

// Decode decodes raw with a default Decoder.
func Decode(raw []byte) ([]news.Article, error) {
	return NewDecoder(nil).Decode(raw)
}
