package feed

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lysyi3m/vendor-daily/app/config"
)

const (
	transformHTMLMarker = "/transform/html"
	transformJSONMarker = "/transform/json"
)

// IsTransformEndpoint reports whether the endpoint is a structured
// transform proxy URL rather than a native feed. Such endpoints may
// legitimately serve an empty feed, which triggers the fallback scrape.
func IsTransformEndpoint(endpoint string) bool {
	return strings.Contains(endpoint, transformHTMLMarker) ||
		strings.Contains(endpoint, transformJSONMarker)
}

// FieldMap carries the extraction parameters parsed from a transform
// endpoint's query string. It is derived once per fetch; absent
// parameters stay empty except LinkAttr, which defaults to "href".
type FieldMap struct {
	Target      string // url: the actual resource to scrape
	Item        string // item list selector (HTML) or dot path (JSON)
	Title       string
	Link        string
	LinkAttr    string
	LinkPrefix  string
	PubDate     string
	PubDateAttr string
	Desc        string
	DescAttr    string
}

func parseFieldMap(endpoint string) FieldMap {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return FieldMap{LinkAttr: "href"}
	}

	query := parsed.Query()
	fm := FieldMap{
		Target:      query.Get("url"),
		Item:        query.Get("item"),
		Title:       query.Get("itemTitle"),
		Link:        query.Get("itemLink"),
		LinkAttr:    query.Get("itemLinkAttr"),
		LinkPrefix:  query.Get("itemLinkPrefix"),
		PubDate:     query.Get("itemPubDate"),
		PubDateAttr: query.Get("itemPubDateAttr"),
		Desc:        query.Get("itemDesc"),
		DescAttr:    query.Get("itemDescAttr"),
	}
	if fm.LinkAttr == "" {
		fm.LinkAttr = "href"
	}

	return fm
}

// TransformExtractor is the fallback path for structured transform
// endpoints. It fetches the mapped target resource and extracts items
// according to the field mapping carried in the endpoint's query string.
type TransformExtractor struct {
	httpClient *http.Client
	normalizer *Normalizer
	userAgent  string
	timeout    time.Duration
}

func NewTransformExtractor(httpClient *http.Client, normalizer *Normalizer, userAgent string, timeout time.Duration) *TransformExtractor {
	return &TransformExtractor{
		httpClient: httpClient,
		normalizer: normalizer,
		userAgent:  userAgent,
		timeout:    timeout,
	}
}

// Run dispatches on the transform mode encoded in the endpoint. A
// missing url parameter means there is nothing to scrape: zero items,
// no error.
func (t *TransformExtractor) Run(ctx context.Context, source config.Source) ([]Item, error) {
	fm := parseFieldMap(source.RSS)
	if fm.Target == "" {
		return nil, nil
	}

	switch {
	case strings.Contains(source.RSS, transformHTMLMarker):
		return t.runHTML(ctx, source, fm)
	case strings.Contains(source.RSS, transformJSONMarker):
		return t.runJSON(ctx, source, fm)
	}

	return nil, nil
}

// joinURL resolves a scraped relative link against the configured
// prefix, mirroring how browsers resolve hrefs.
func joinURL(prefix, ref string) string {
	base, err := url.Parse(prefix)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(refURL).String()
}
