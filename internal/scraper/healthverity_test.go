package scraper

import (
	"strings"
	"testing"
)

func TestHealthVerityExtract_AssignsPostingsToPrecedingDepartment(t *testing.T) {
	body := `Open roles
- Receptionist | Philadelphia, PA
101 Data Science
- Senior Data Scientist | Remote
- Analytics Engineer | Philadelphia, PA
202 Sales
- Account Executive | New York, NY
`

	candidates, err := NewHealthVerity().Extract([]byte(body))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	want := []struct{ title, department, location string }{
		{"Senior Data Scientist", "Data Science", "Remote"},
		{"Analytics Engineer", "Data Science", "Philadelphia, PA"},
		{"Account Executive", "Sales", "New York, NY"},
	}
	if len(candidates) != len(want) {
		t.Fatalf("expected %d candidates, got %d: %+v", len(want), len(candidates), candidates)
	}
	for i, w := range want {
		c := candidates[i]
		if c.Title != w.title || c.Department != w.department || c.Location != w.location {
			t.Fatalf("candidate %d = %+v, want %+v", i, c, w)
		}
	}
}

func TestHealthVerityExtract_OverlappingBoundariesDuplicatePostings(t *testing.T) {
	body := `310 Data Platform 420 Machine Learning
- Senior Data Engineer | Remote
- ML Scientist | Boston, MA
512 Sales
- Account Executive | New York, NY
`

	candidates, err := NewHealthVerity().Extract([]byte(body))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	want := []struct{ title, department string }{
		{"Senior Data Engineer", "Data Platform 420 Machine Learning"},
		{"ML Scientist", "Data Platform 420 Machine Learning"},
		{"Senior Data Engineer", "Machine Learning"},
		{"ML Scientist", "Machine Learning"},
		{"Account Executive", "Sales"},
	}
	if len(candidates) != len(want) {
		t.Fatalf("expected %d candidates, got %d: %+v", len(want), len(candidates), candidates)
	}
	for i, w := range want {
		if candidates[i].Title != w.title || candidates[i].Department != w.department {
			t.Fatalf("candidate %d = %+v, want %+v", i, candidates[i], w)
		}
	}
}

func TestHealthVerityExtract_SkipsExcludedAndMalformedLines(t *testing.T) {
	body := `700 Research
- Office | Remote
- Missing separator line
-   | Remote
- Research Scientist | 
`

	candidates, err := NewHealthVerity().Extract([]byte(body))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d: %+v", len(candidates), candidates)
	}
	if candidates[0].Title != "Research Scientist" || candidates[0].Location != "" {
		t.Fatalf("unexpected candidate: %+v", candidates[0])
	}
}

func TestFindDepartmentBoundaries(t *testing.T) {
	boundaries := findDepartmentBoundaries("4105 Data\n12 Short\n999 Ops")
	if len(boundaries) != 2 {
		t.Fatalf("expected 2 boundaries, got %d: %+v", len(boundaries), boundaries)
	}
	if boundaries[0].id != "4105" || boundaries[0].label != "Data" {
		t.Fatalf("unexpected first boundary: %+v", boundaries[0])
	}
	if boundaries[1].id != "999" || boundaries[1].label != "Ops" {
		t.Fatalf("unexpected second boundary: %+v", boundaries[1])
	}
}

func TestHealthVerityExtractEmptyBody(t *testing.T) {
	if _, err := NewHealthVerity().Extract([]byte("   ")); err == nil {
		t.Fatalf("expected error for empty body")
	}
}

func TestHealthVerityExtract_Markup(t *testing.T) {
	body := `<html><body>
<h2>101 Data Science</h2>
- Data Scientist | Remote
<ul>
  <li>- Analytics Engineer | <b>Philadelphia, PA</b></li>
</ul>
<script>var x = "202 Tracking";</script>
<div><h2>303 Sales</h2><p>- Account Executive | New York, NY</p></div>
</body></html>`

	candidates, err := NewHealthVerity().Extract([]byte(body))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	want := []struct{ title, department, location string }{
		{"Data Scientist", "Data Science", "Remote"},
		{"Analytics Engineer", "Data Science", "Philadelphia, PA"},
		{"Account Executive", "Sales", "New York, NY"},
	}
	if len(candidates) != len(want) {
		t.Fatalf("expected %d candidates, got %d: %+v", len(want), len(candidates), candidates)
	}
	for i, w := range want {
		c := candidates[i]
		if c.Title != w.title || c.Department != w.department || c.Location != w.location {
			t.Fatalf("candidate %d = %+v, want %+v", i, c, w)
		}
		if strings.ContainsAny(c.Title+c.Department+c.Location, "<>") {
			t.Fatalf("markup leaked into candidate %d: %+v", i, c)
		}
	}
}
