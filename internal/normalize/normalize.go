package normalize

import (
	"net/url"
	"strings"

	"github.com/jimezsa/jobscan/internal/models"
)

const (
	fallbackLocation   = "Not specified"
	fallbackDepartment = "N/A"
)

// Normalize completes a candidate using the source profile. It never fails:
// missing optional fields get the profile defaults, and company and source
// always come from the profile rather than parsed content.
func Normalize(c models.Candidate, p models.SourceProfile) models.Job {
	return models.Job{
		Title:      cleanText(c.Title),
		Company:    firstNonEmpty(p.Company, p.Name),
		Location:   firstNonEmpty(cleanText(c.Location), p.DefaultLocation, fallbackLocation),
		Link:       resolveLink(c.Link, p),
		Department: firstNonEmpty(cleanText(c.Department), p.DefaultDepartment, fallbackDepartment),
		Source:     p.Name,
	}
}

// All normalizes candidates in order.
func All(candidates []models.Candidate, p models.SourceProfile) []models.Job {
	jobs := make([]models.Job, 0, len(candidates))
	for _, c := range candidates {
		jobs = append(jobs, Normalize(c, p))
	}
	return jobs
}

func resolveLink(href string, p models.SourceProfile) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return p.ListingURL
	}
	base := p.BaseURL
	if base == "" {
		base = p.ListingURL
	}
	link := absoluteURL(base, href)
	if !isWebURL(link) {
		return p.ListingURL
	}
	return link
}

func absoluteURL(base string, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

func isWebURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func cleanText(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
