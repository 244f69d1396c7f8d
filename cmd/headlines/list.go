package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tesso57/headlines/internal/domain/news"
	"go.uber.org/zap"
)

// ListCmd prints headlines once every category has finished loading.
type ListCmd struct {
	Category string `short:"c" help:"Only print this category (general, sports, health, entertainment, business, science, technology)."`
	Limit    int    `short:"n" help:"Maximum articles per category; 0 prints all." default:"0"`

	out io.Writer
	now func() time.Time
}

// Run loads the feed and writes it to stdout.
func (c *ListCmd) Run(ctx context.Context, g *Globals) error {
	var only news.Category
	if c.Category != "" {
		category, err := news.ParseCategory(c.Category)
		if err != nil {
			return err
		}
		only = category
	}

	a, err := newApp(g, false)
	if err != nil {
		return err
	}
	defer a.close()

	a.aggregator.Initialize(ctx)
	report := a.aggregator.Wait()

	out := c.out
	if out == nil {
		out = os.Stdout
	}
	now := time.Now()
	if c.now != nil {
		now = c.now()
	}

	for _, st := range a.aggregator.State().Snapshot() {
		if only != "" && st.Category != only {
			continue
		}
		writeSection(out, st.Category.Label(), st.Articles, st.Err, c.Limit, now)
	}

	if a.search != nil && only == "" {
		if _, err := a.search.LoadNextPage(ctx); err != nil {
			a.logger.Warn("search page failed", zap.Error(err))
			writeSection(out, "Search: "+a.search.Query(), nil, err, c.Limit, now)
		} else {
			writeSection(out, "Search: "+a.search.Query(), a.search.Articles(), nil, c.Limit, now)
		}
	}

	if report.Requested > 0 && report.Failed == report.Requested {
		return errors.New("no category could be loaded")
	}
	return nil
}

func writeSection(w io.Writer, label string, articles []news.Article, loadErr error, limit int, now time.Time) {
	if loadErr != nil {
		_, _ = fmt.Fprintf(w, "== %s (failed: %v) ==\n\n", label, loadErr)
		return
	}
	_, _ = fmt.Fprintf(w, "== %s (%d) ==\n", label, len(articles))
	for i, a := range articles {
		if limit > 0 && i >= limit {
			break
		}
		_, _ = fmt.Fprintf(w, "%2d. %s\n", i+1, strings.TrimSpace(a.Title))
		_, _ = fmt.Fprintf(w, "    %s\n", articleMeta(a, now))
		_, _ = fmt.Fprintf(w, "    %s\n", a.URL)
	}
	_, _ = fmt.Fprintln(w)
}

func articleMeta(a news.Article, now time.Time) string {
	parts := make([]string, 0, 2)
	switch {
	case a.Source != "":
		parts = append(parts, a.Source)
	case a.Author != "":
		parts = append(parts, a.Author)
	}
	if published, ok := a.Published(); ok {
		parts = append(parts, humanize.RelTime(published, now, "ago", "from now"))
	} else if a.DisplayDate != "" {
		parts = append(parts, a.DisplayDate)
	}
	return strings.Join(parts, " · ")
}
