package feed

import (
	"regexp"
	"strings"
)

var markupPattern = regexp.MustCompile(`<[^>]+>`)

// Sanitize strips markup tags out of free-text summaries, collapses
// embedded newlines to spaces and trims the result. An empty return
// value means "no summary".
func Sanitize(text string) string {
	text = markupPattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.TrimSpace(text)
}
