package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"time"

	"github.com/lysyi3m/vendor-daily/app/cfg"
)

// ChannelOptions carries the channel-level metadata for the generated
// output feed.
type ChannelOptions struct {
	Title       string
	Link        string
	Description string
	FeedURL     string // public URL of the feed itself, optional
}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Run serializes the items into an RSS 2.0 document. Publication times
// are emitted in UTC.
func (g *Generator) Run(items []Item, opts ChannelOptions) string {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", opts.Title, 4)
	g.writeElement(&buf, "link", opts.Link, 4)
	g.writeElement(&buf, "description", opts.Description, 4)

	if opts.FeedURL != "" {
		buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
			html.EscapeString(opts.FeedURL)))
	}

	g.writeElement(&buf, "generator", fmt.Sprintf("vendor-daily/%s", cfg.GetVersion()), 4)

	for _, item := range items {
		g.writeItem(&buf, item)
	}

	buf.WriteString("  </channel>\n</rss>\n")

	return buf.String()
}

func (g *Generator) writeItem(buf *bytes.Buffer, item Item) {
	buf.WriteString("    <item>\n")

	g.writeElement(buf, "title", item.Title, 6)
	g.writeElement(buf, "link", item.Link, 6)

	buf.WriteString(fmt.Sprintf("      <guid isPermaLink=\"%t\">", g.isURL(item.Link)))
	xml.EscapeText(buf, []byte(item.Link))
	buf.WriteString("</guid>\n")

	g.writeElement(buf, "pubDate", item.Published.UTC().Format(time.RFC1123Z), 6)

	if item.Summary != "" {
		g.writeElement(buf, "description", item.Summary, 6)
	}

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func (g *Generator) isURL(s string) bool {
	return (len(s) > 7 && s[:7] == "http://") || (len(s) > 8 && s[:8] == "https://")
}
