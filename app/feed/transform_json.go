package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lysyi3m/vendor-daily/app/config"
)

func (t *TransformExtractor) runJSON(ctx context.Context, source config.Source, fm FieldMap) ([]Item, error) {
	data, err := fetchURL(ctx, t.httpClient, fm.Target, t.userAgent, t.timeout)
	if err != nil {
		return nil, err
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		// an unparseable body is zero items, not a failed source
		slog.Debug("Transform target is not valid JSON", "source", source.Name, "error", err)
		return nil, nil
	}

	list, ok := walkPath(payload, fm.Item).([]any)
	if !ok {
		return nil, nil
	}

	items := make([]Item, 0, len(list))
	for _, element := range list {
		entry, ok := element.(map[string]any)
		if !ok {
			continue
		}

		title := strings.TrimSpace(stringValue(entry, fm.Title))
		link := strings.TrimSpace(stringValue(entry, fm.Link))
		if title == "" || link == "" {
			continue
		}
		if fm.LinkPrefix != "" && !strings.HasPrefix(link, "http") {
			link = joinURL(fm.LinkPrefix, link)
		}

		published, ok := t.normalizer.Parse(stringValue(entry, fm.PubDate))
		if !ok {
			continue
		}

		items = append(items, Item{
			Source:    source.Name,
			Title:     title,
			Link:      link,
			Published: published,
			Summary:   Sanitize(stringValue(entry, fm.Desc)),
		})
	}

	return items, nil
}

// walkPath resolves a dot-separated key path against decoded JSON. Any
// non-object intermediate value fails the lookup.
func walkPath(value any, path string) any {
	if path == "" {
		return nil
	}
	current := value
	for _, key := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = obj[key]
	}
	return current
}

// stringValue reads a key from a decoded JSON object and renders scalar
// values as text. Missing keys, nulls and non-scalar values yield "".
func stringValue(entry map[string]any, key string) string {
	if key == "" {
		return ""
	}
	switch v := entry[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
