package feed

import (
	"time"

	"github.com/araddon/dateparse"
)

// Normalizer turns loosely formatted date strings into timezone-aware
// instants. Values carrying no explicit offset are assumed to be UTC,
// then converted into the configured local zone.
type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(loc *time.Location) *Normalizer {
	return &Normalizer{loc: loc}
}

// Parse reports the normalized instant and whether the value was usable.
// Malformed or empty values yield ok=false, never an error.
func (n *Normalizer) Parse(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	parsed, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}

	if n.loc != nil {
		parsed = parsed.In(n.loc)
	}

	return parsed, true
}

// ParseFirst returns the first candidate value that parses.
func (n *Normalizer) ParseFirst(values []string) (time.Time, bool) {
	for _, value := range values {
		if parsed, ok := n.Parse(value); ok {
			return parsed, true
		}
	}
	return time.Time{}, false
}
