package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jimezsa/jobscan/internal/models"
)

// CylinderHealth reads the careers page, where every opening is a
// div.career-opening holding an h3 title and an apply anchor.
type CylinderHealth struct {
	profile models.SourceProfile
}

func NewCylinderHealth() *CylinderHealth {
	return &CylinderHealth{profile: models.SourceProfile{
		Name:              SiteCylinderHealth,
		Company:           "Cylinder Health",
		ListingURL:        "https://cylinderhealth.com/about-us/careers/#open-positions",
		BaseURL:           "https://cylinderhealth.com",
		DefaultLocation:   "Remote",
		DefaultDepartment: "N/A",
	}}
}

func (c *CylinderHealth) Name() string {
	return SiteCylinderHealth
}

func (c *CylinderHealth) Profile() models.SourceProfile {
	return c.profile
}

func (c *CylinderHealth) Extract(body []byte) ([]models.Candidate, error) {
	doc, err := parseDocument(body)
	if err != nil {
		return nil, err
	}
	return parseCareerOpenings(doc), nil
}

func parseCareerOpenings(doc *goquery.Document) []models.Candidate {
	var candidates []models.Candidate

	doc.Find("div.career-opening").Each(func(_ int, s *goquery.Selection) {
		title := cleanText(s.Find("h3").First().Text())
		if title == "" || IsExcludedLabel(title) {
			return
		}

		anchor := s.Find("a").First()
		if anchor.Length() == 0 {
			return
		}
		href := strings.TrimSpace(anchor.AttrOr("href", ""))
		if href == "" {
			return
		}

		candidates = append(candidates, models.Candidate{
			Title: title,
			Link:  href,
		})
	})

	return candidates
}
