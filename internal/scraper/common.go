package scraper

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// excludedLabels are navigation headings that look like titles on some boards.
var excludedLabels = map[string]struct{}{
	"search":     {},
	"department": {},
	"office":     {},
}

// IsExcludedLabel reports whether title is a misparsed header rather than a posting.
func IsExcludedLabel(title string) bool {
	_, ok := excludedLabels[strings.ToLower(cleanText(title))]
	return ok
}

func parseDocument(body []byte) (*goquery.Document, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrNoDocument
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}

func cleanText(value string) string {
	value = html.UnescapeString(value)
	return strings.Join(strings.Fields(value), " ")
}
