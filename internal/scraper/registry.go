package scraper

import (
	"strings"
)

const (
	SiteCylinderHealth = "cylinder-health"
	SiteMedeAnalytics  = "medeanalytics"
	SiteHealthVerity   = "healthverity"
)

var siteOrder = []string{
	SiteCylinderHealth,
	SiteMedeAnalytics,
	SiteHealthVerity,
}

var siteAliases = map[string]string{
	"cylinder":        SiteCylinderHealth,
	"cylinder health": SiteCylinderHealth,
	"cylinderhealth":  SiteCylinderHealth,
	"medanalytics":    SiteMedeAnalytics,
	"mede":            SiteMedeAnalytics,
	"mede-analytics":  SiteMedeAnalytics,
	"health-verity":   SiteHealthVerity,
	"health verity":   SiteHealthVerity,
}

func Registry() map[string]Adapter {
	return map[string]Adapter{
		SiteCylinderHealth: NewCylinderHealth(),
		SiteMedeAnalytics:  NewMedeAnalytics(),
		SiteHealthVerity:   NewHealthVerity(),
	}
}

// Sites returns every registered source id in display order.
func Sites() []string {
	return append([]string{}, siteOrder...)
}

func NormalizeSites(sites []string) []string {
	out := make([]string, 0, len(sites))
	for _, site := range sites {
		site = strings.ToLower(strings.TrimSpace(site))
		if site == "" {
			continue
		}
		site = strings.TrimPrefix(site, "www.")
		if canonical, ok := siteAliases[site]; ok {
			site = canonical
		}
		out = append(out, site)
	}
	return out
}
