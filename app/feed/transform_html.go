package feed

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lysyi3m/vendor-daily/app/config"
)

func (t *TransformExtractor) runHTML(ctx context.Context, source config.Source, fm FieldMap) ([]Item, error) {
	data, err := fetchURL(ctx, t.httpClient, fm.Target, t.userAgent, t.timeout)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	candidates := selectCandidates(doc, fm.Item)
	if candidates == nil {
		return nil, nil
	}

	var items []Item
	candidates.Each(func(_ int, node *goquery.Selection) {
		title := selectFirstText(node, fm.Title)
		if title == "" {
			return
		}

		linkNode := selectFirstNode(node, fm.Link)
		if linkNode == nil && goquery.NodeName(node) == "a" {
			// the candidate element is itself the hyperlink
			linkNode = node
		}
		var link string
		if linkNode != nil {
			link, _ = linkNode.Attr(fm.LinkAttr)
		}
		if link == "" {
			return
		}
		if fm.LinkPrefix != "" && !strings.HasPrefix(link, "http") {
			link = joinURL(fm.LinkPrefix, link)
		}

		dateNode := selectFirstNode(node, fm.PubDate)
		if dateNode == nil {
			if found := node.Find("time").First(); found.Length() > 0 {
				dateNode = found
			}
		}
		var dateValue string
		if dateNode != nil {
			if fm.PubDateAttr != "" {
				dateValue, _ = dateNode.Attr(fm.PubDateAttr)
			}
			if dateValue == "" {
				dateValue, _ = dateNode.Attr("datetime")
			}
			if dateValue == "" {
				dateValue = nodeText(dateNode)
			}
		}
		published, ok := t.normalizer.Parse(dateValue)
		if !ok {
			return
		}

		var summary string
		if descNode := selectFirstNode(node, fm.Desc); descNode != nil {
			if fm.DescAttr != "" {
				summary, _ = descNode.Attr(fm.DescAttr)
			}
			if summary == "" {
				summary = nodeText(descNode)
			}
		}

		items = append(items, Item{
			Source:    source.Name,
			Title:     title,
			Link:      link,
			Published: published,
			Summary:   Sanitize(summary),
		})
	})

	return items, nil
}

// selectCandidates tries each comma-separated selector in order and
// returns the first non-empty match set.
func selectCandidates(doc *goquery.Document, selectors string) *goquery.Selection {
	for _, selector := range splitSelectors(selectors) {
		if found := doc.Find(selector); found.Length() > 0 {
			return found
		}
	}
	return nil
}

// selectFirstText returns the text of the first selector that matches an
// element with non-empty text.
func selectFirstText(node *goquery.Selection, selectors string) string {
	for _, selector := range splitSelectors(selectors) {
		found := node.Find(selector).First()
		if found.Length() == 0 {
			continue
		}
		if text := nodeText(found); text != "" {
			return text
		}
	}
	return ""
}

// selectFirstNode returns the first element matched by the selector
// list, or nil when nothing matches.
func selectFirstNode(node *goquery.Selection, selectors string) *goquery.Selection {
	for _, selector := range splitSelectors(selectors) {
		if found := node.Find(selector).First(); found.Length() > 0 {
			return found
		}
	}
	return nil
}

func splitSelectors(selectors string) []string {
	parts := strings.Split(selectors, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// nodeText renders an element's text content with whitespace collapsed.
func nodeText(node *goquery.Selection) string {
	return strings.Join(strings.Fields(node.Text()), " ")
}
