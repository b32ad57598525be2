package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jimezsa/jobscan/internal/models"
)

var (
	departmentBoundaryPattern = regexp.MustCompile(`\b(\d{3,})\s+([A-Z][^\n]*)`)
	postingLinePattern        = regexp.MustCompile(`(?m)^[ \t]*-[ \t]+([^|\n]+?)[ \t]*\|[ \t]*([^\n]*?)[ \t]*$`)
)

var blockElements = map[string]struct{}{
	"address": {}, "article": {}, "br": {}, "div": {}, "footer": {}, "h1": {}, "h2": {},
	"h3": {}, "h4": {}, "h5": {}, "h6": {}, "header": {}, "li": {}, "ol": {}, "p": {},
	"section": {}, "table": {}, "td": {}, "th": {}, "tr": {}, "ul": {},
}

// HealthVerity reads a plain-text board where departments are introduced by
// "<numeric id> <Label>" and postings are "- Title | Location" lines.
type HealthVerity struct {
	profile models.SourceProfile
}

func NewHealthVerity() *HealthVerity {
	return &HealthVerity{profile: models.SourceProfile{
		Name:              SiteHealthVerity,
		Company:           "HealthVerity",
		ListingURL:        "https://healthverity.com/careers/",
		BaseURL:           "https://healthverity.com",
		DefaultLocation:   "Not specified",
		DefaultDepartment: "General",
	}}
}

func (h *HealthVerity) Name() string {
	return SiteHealthVerity
}

func (h *HealthVerity) Profile() models.SourceProfile {
	return h.profile
}

func (h *HealthVerity) Extract(body []byte) ([]models.Candidate, error) {
	doc, err := parseDocument(body)
	if err != nil {
		return nil, err
	}
	text := string(body)
	if doc.Find("body *").Length() > 0 {
		text = blockText(doc.Find("body"))
	}
	return scanDepartmentWindows(text), nil
}

// blockText renders markup as text, one line per block element, so the
// line-oriented patterns never see tags.
func blockText(root *goquery.Selection) string {
	var b strings.Builder
	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, node *goquery.Selection) {
			name := goquery.NodeName(node)
			switch name {
			case "#text":
				b.WriteString(node.Text())
				return
			case "script", "style", "noscript", "#comment":
				return
			}
			_, block := blockElements[name]
			if block {
				b.WriteByte('\n')
			}
			walk(node)
			if block {
				b.WriteByte('\n')
			}
		})
	}
	walk(root)
	return b.String()
}

type departmentBoundary struct {
	start int
	end   int
	id    string
	label string
}

// findDepartmentBoundaries restarts the search right after each id, so a
// boundary starting inside another boundary's label is kept too.
func findDepartmentBoundaries(text string) []departmentBoundary {
	var boundaries []departmentBoundary

	offset := 0
	for offset < len(text) {
		loc := departmentBoundaryPattern.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			break
		}
		boundaries = append(boundaries, departmentBoundary{
			start: offset + loc[0],
			end:   offset + loc[1],
			id:    text[offset+loc[2] : offset+loc[3]],
			label: cleanText(text[offset+loc[4] : offset+loc[5]]),
		})
		offset += loc[3]
	}

	return boundaries
}

// scanDepartmentWindows re-scans the text after each boundary and stops at
// the first boundary starting at or after that boundary's end. Overlapping
// boundaries share a window and attribute the same postings to each.
func scanDepartmentWindows(text string) []models.Candidate {
	var candidates []models.Candidate

	boundaries := findDepartmentBoundaries(text)
	for i, boundary := range boundaries {
		limit := len(text)
		for _, next := range boundaries[i+1:] {
			if next.start >= boundary.end {
				limit = next.start
				break
			}
		}

		rest := text[boundary.end:]
		for _, match := range postingLinePattern.FindAllStringSubmatchIndex(rest, -1) {
			if boundary.end+match[0] >= limit {
				break
			}
			title := cleanText(rest[match[2]:match[3]])
			if title == "" || IsExcludedLabel(title) {
				continue
			}
			candidates = append(candidates, models.Candidate{
				Title:      title,
				Location:   cleanText(rest[match[4]:match[5]]),
				Department: boundary.label,
			})
		}
	}

	return candidates
}
