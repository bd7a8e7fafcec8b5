package report

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/lysyi3m/vendor-daily/app/feed"
)

var reportFilePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\.md$`)

// Write stores the digest body as the report document for the date and
// returns the file path.
func Write(dir string, reportDate time.Time, body string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	date := reportDate.Format("2006-01-02")
	header := fmt.Sprintf("# Daily Digest / 日报摘要 (%s)\n\n", date)
	path := filepath.Join(dir, date+".md")

	if err := os.WriteFile(path, []byte(header+body), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}

// FeedItems builds one feed entry per stored daily report, newest first,
// capped at limit. Each entry links into the repository when a slug is
// known and carries the report body (header stripped) as its summary.
func FeedItems(dir, repoSlug string, loc *time.Location, limit int) []feed.Item {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() && reportFilePattern.MatchString(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	if limit < 1 {
		limit = 1
	}

	var items []feed.Item
	for _, name := range names {
		if len(items) >= limit {
			break
		}

		stem := strings.TrimSuffix(name, ".md")
		reportDate, err := time.ParseInLocation("2006-01-02", stem, loc)
		if err != nil {
			continue
		}

		link := "https://github.com/"
		if repoSlug != "" {
			link = fmt.Sprintf("https://github.com/%s/blob/master/data/daily/%s", repoSlug, name)
		}

		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		summary := "No digest content."
		if body := stripHeader(string(content)); body != "" {
			summary = truncate(body, 12000)
		}

		items = append(items, feed.Item{
			Source:    "Daily Digest",
			Title:     fmt.Sprintf("Daily Digest / 日报摘要 (%s)", stem),
			Link:      link,
			Published: time.Date(reportDate.Year(), reportDate.Month(), reportDate.Day(), 12, 0, 0, 0, loc),
			Summary:   summary,
		})
	}

	return items
}

// stripHeader removes the leading "# " title line (and the blank line
// after it) from a report document.
func stripHeader(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], "# ") {
		lines = lines[1:]
		if len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
			lines = lines[1:]
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimRight(string(runes[:limit-3]), " ") + "..."
}
