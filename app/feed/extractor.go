package feed

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/lysyi3m/vendor-daily/app/config"
)

// Extractor is the standard feed path: fetch the source endpoint, parse
// it as a syndication feed and map entries to Items. Fetch and parse
// errors propagate to the caller; individual entries missing a date,
// title or link are dropped silently.
type Extractor struct {
	httpClient   *http.Client
	gofeedParser *gofeed.Parser
	normalizer   *Normalizer
	userAgent    string
	timeout      time.Duration
}

func NewExtractor(httpClient *http.Client, normalizer *Normalizer, userAgent string, timeout time.Duration) *Extractor {
	return &Extractor{
		httpClient:   httpClient,
		gofeedParser: gofeed.NewParser(),
		normalizer:   normalizer,
		userAgent:    userAgent,
		timeout:      timeout,
	}
}

func (e *Extractor) Run(ctx context.Context, source config.Source) ([]Item, error) {
	data, err := fetchURL(ctx, e.httpClient, source.RSS, e.userAgent, e.timeout)
	if err != nil {
		return nil, err
	}

	parsed, err := e.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		view := entryView{entry}

		published, ok := e.normalizer.ParseFirst(view.dateCandidates())
		if !ok {
			slog.Debug("Dropping entry without usable date", "source", source.Name, "title", entry.Title)
			continue
		}

		title := strings.TrimSpace(entry.Title)
		link := strings.TrimSpace(entry.Link)
		if title == "" || link == "" {
			continue
		}

		items = append(items, Item{
			Source:    source.Name,
			Title:     title,
			Link:      link,
			Published: published,
			Summary:   Sanitize(view.summary()),
		})
	}

	return items, nil
}

// entryView is a read-only view over a parsed feed entry with typed
// accessors for the loosely populated fields the pipeline cares about.
type entryView struct {
	entry *gofeed.Item
}

// dateCandidates lists the raw date values in resolution order:
// published, then updated, then created. The first one that parses wins.
func (v entryView) dateCandidates() []string {
	return []string{v.entry.Published, v.entry.Updated, v.entry.Custom["created"]}
}

func (v entryView) summary() string {
	if v.entry.Description != "" {
		return v.entry.Description
	}
	return v.entry.Content
}
