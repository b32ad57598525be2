package normalize

import (
	"testing"

	"github.com/jimezsa/jobscan/internal/models"
)

var testProfile = models.SourceProfile{
	Name:              "example",
	Company:           "Example Health",
	ListingURL:        "https://example.com/careers/",
	BaseURL:           "https://example.com",
	DefaultLocation:   "Remote",
	DefaultDepartment: "N/A",
}

func TestNormalizeFillsDefaults(t *testing.T) {
	job := Normalize(models.Candidate{Title: "  Data   Analyst "}, testProfile)

	want := models.Job{
		Title:      "Data Analyst",
		Company:    "Example Health",
		Location:   "Remote",
		Link:       "https://example.com/careers/",
		Department: "N/A",
		Source:     "example",
	}
	if job != want {
		t.Fatalf("Normalize() = %+v, want %+v", job, want)
	}
}

func TestNormalizeKeepsExtractedFields(t *testing.T) {
	job := Normalize(models.Candidate{
		Title:      "ML Engineer",
		Location:   "Nashville, TN",
		Department: "Data Science",
		Link:       "https://jobs.example.org/42",
	}, testProfile)

	if job.Location != "Nashville, TN" || job.Department != "Data Science" || job.Link != "https://jobs.example.org/42" {
		t.Fatalf("unexpected job: %+v", job)
	}
	if job.Company != "Example Health" || job.Source != "example" {
		t.Fatalf("company/source must come from the profile: %+v", job)
	}
}

func TestResolveLink(t *testing.T) {
	cases := []struct {
		href string
		want string
	}{
		{"/careers/data-analyst", "https://example.com/careers/data-analyst"},
		{"apply?id=7", "https://example.com/apply?id=7"},
		{"//cdn.example.com/job", "https://cdn.example.com/job"},
		{"https://other.org/a", "https://other.org/a"},
		{"mailto:jobs@example.com", "https://example.com/careers/"},
		{"   ", "https://example.com/careers/"},
	}
	for _, tc := range cases {
		if got := resolveLink(tc.href, testProfile); got != tc.want {
			t.Fatalf("resolveLink(%q) = %q, want %q", tc.href, got, tc.want)
		}
	}
}

func TestNormalizeIsTotal(t *testing.T) {
	candidates := []models.Candidate{
		{Title: "a"},
		{Title: "b", Location: "  ", Department: "\t", Link: "::bad"},
		{Title: "c", Link: "/x"},
	}
	bare := models.SourceProfile{Name: "bare", ListingURL: "https://bare.example.com"}

	for _, p := range []models.SourceProfile{testProfile, bare} {
		jobs := All(candidates, p)
		if len(jobs) != len(candidates) {
			t.Fatalf("All() dropped candidates: %d != %d", len(jobs), len(candidates))
		}
		for _, job := range jobs {
			if job.Title == "" || job.Company == "" || job.Location == "" || job.Link == "" || job.Department == "" || job.Source == "" {
				t.Fatalf("field left empty for profile %q: %+v", p.Name, job)
			}
			if !isWebURL(job.Link) {
				t.Fatalf("link is not a web URL: %q", job.Link)
			}
		}
	}
}
