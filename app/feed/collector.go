package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lysyi3m/vendor-daily/app/config"
)

// Collector orchestrates ingestion across all configured sources.
// Sources are independent, so they are fetched by a bounded pool of
// workers; each source's items and health land in a slot indexed by
// configuration order, keeping the output identical to a sequential run.
type Collector struct {
	extractor *Extractor
	transform *TransformExtractor
	workers   int
}

func NewCollector(extractor *Extractor, transform *TransformExtractor, workers int) *Collector {
	if workers < 1 {
		workers = 1
	}
	return &Collector{
		extractor: extractor,
		transform: transform,
		workers:   workers,
	}
}

// Run fetches every source and returns the concatenated items plus one
// health row per source. A failing source contributes an error row and
// zero items without affecting the rest of the run.
func (c *Collector) Run(ctx context.Context, sources []config.Source, reportDate time.Time) ([]Item, []Health) {
	perSource := make([][]Item, len(sources))
	health := make([]Health, len(sources))

	var wg sync.WaitGroup
	sem := make(chan struct{}, c.workers)
	for i := range sources {
		wg.Add(1)
		go func(idx int, source config.Source) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			perSource[idx], health[idx] = c.collectSource(ctx, source, reportDate)
		}(i, sources[i])
	}
	wg.Wait()

	var items []Item
	for _, sourceItems := range perSource {
		items = append(items, sourceItems...)
	}

	return items, health
}

func (c *Collector) collectSource(ctx context.Context, source config.Source, reportDate time.Time) ([]Item, Health) {
	started := time.Now()

	items, err := c.extractor.Run(ctx, source)
	if err != nil {
		slog.Warn("Failed to fetch source", "source", source.Name, "error", err)
		return nil, Health{Name: source.Name, Err: err.Error()}
	}

	// Transform endpoints are configuration-driven proxies whose primary
	// feed may legitimately be empty; scrape the mapped target instead.
	if len(items) == 0 && IsTransformEndpoint(source.RSS) {
		fallback, err := c.transform.Run(ctx, source)
		if err != nil {
			slog.Debug("Transform fallback failed", "source", source.Name, "error", err)
		} else {
			items = fallback
		}
	}

	row := Health{Name: source.Name, TotalItems: len(items)}
	for _, item := range items {
		if item.Published.After(row.Latest) {
			row.Latest = item.Published
		}
		if sameDate(item.Published, reportDate) {
			row.OnDate++
		}
	}

	slog.Info("Source collected",
		"source", source.Name,
		"items", len(items),
		"duration", time.Since(started).Round(time.Millisecond))

	return items, row
}
