package digest

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/lysyi3m/vendor-daily/app/feed"
)

const systemPrompt = "You are an assistant that writes concise daily vendor digests. " +
	"Return markdown with two top-level sections: '## English' and '## 中文'. " +
	"Within each section, group by vendor using '### Vendor'. " +
	"Each item should be a single bullet with 1-2 sentences, always include the source link."

// Writer authors the daily digest text for a set of normalized items.
type Writer struct {
	client *chatClient
}

func NewWriter() *Writer {
	return &Writer{client: newChatClient()}
}

// Run renders the digest for the labeled report date. When a chat API
// key is configured the digest is model-authored; otherwise, or when the
// call fails, a deterministic grouped listing is produced instead.
func (w *Writer) Run(items []feed.Item, reportDate string) string {
	if !w.client.enabled() {
		return fallbackDigest(items)
	}

	content, err := w.client.complete(systemPrompt, userPrompt(items, reportDate))
	if err != nil {
		slog.Warn("Digest generation failed, using fallback listing", "error", err)
		return fallbackDigest(items)
	}

	return strings.TrimRight(content, "\n") + "\n"
}

func userPrompt(items []feed.Item, reportDate string) string {
	grouped, names := groupBySource(items)

	var bullets []string
	for _, name := range names {
		for _, item := range grouped[name] {
			bullets = append(bullets, fmt.Sprintf("[%s] %s | %s | %s", name, item.Title, item.Link, item.Summary))
		}
	}

	return fmt.Sprintf("Write a bilingual daily digest for %s.\nItems:\n%s",
		reportDate, strings.Join(bullets, "\n"))
}

// fallbackDigest is the deterministic rendering: items grouped by
// source, sources sorted, one bullet per item, emitted once per language
// section.
func fallbackDigest(items []feed.Item) string {
	grouped, names := groupBySource(items)

	var lines []string
	for _, section := range []string{"## English", "## 中文"} {
		lines = append(lines, section)
		for _, name := range names {
			lines = append(lines, "### "+name)
			for _, item := range grouped[name] {
				entry := fmt.Sprintf("[%s](%s) (%s)", item.Title, item.Link, item.Published.Format("2006-01-02 15:04"))
				if item.Summary != "" {
					entry += " - " + truncate(item.Summary, 240)
				}
				lines = append(lines, "- "+entry)
			}
			lines = append(lines, "")
		}
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n"
}

func groupBySource(items []feed.Item) (map[string][]feed.Item, []string) {
	grouped := make(map[string][]feed.Item)
	for _, item := range items {
		grouped[item.Source] = append(grouped[item.Source], item)
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	return grouped, names
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimRight(string(runes[:limit-3]), " ") + "..."
}
