package scraper

import "testing"

func TestMedeAnalyticsExtract_PlainText(t *testing.T) {
	body := "Engineering - Backend\n**Senior Data Scientist** Remote, USA\n**Search**\n"

	candidates, err := NewMedeAnalytics().Extract([]byte(body))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d: %+v", len(candidates), candidates)
	}
	got := candidates[0]
	if got.Title != "Senior Data Scientist" {
		t.Fatalf("unexpected title: %q", got.Title)
	}
	if got.Department != "Backend" {
		t.Fatalf("unexpected department: %q", got.Department)
	}
	if got.Location != "Remote, USA" {
		t.Fatalf("unexpected location: %q", got.Location)
	}
}

func TestMedeAnalyticsExtract_DepartmentDoesNotLeakBackward(t *testing.T) {
	body := "**Data Analyst** Nashville, TN\nProduct - Analytics\n**BI Developer** Richardson, TX\n**Data Engineer**\n"

	candidates, err := NewMedeAnalytics().Extract([]byte(body))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(candidates))
	}
	want := []struct{ title, department, location string }{
		{"Data Analyst", "General", "Nashville, TN"},
		{"BI Developer", "Analytics", "Richardson, TX"},
		{"Data Engineer", "Analytics", ""},
	}
	for i, w := range want {
		c := candidates[i]
		if c.Title != w.title || c.Department != w.department || c.Location != w.location {
			t.Fatalf("candidate %d = %+v, want %+v", i, c, w)
		}
	}
}

func TestMedeAnalyticsExtract_ResetsDepartmentPerCall(t *testing.T) {
	adapter := NewMedeAnalytics()
	if _, err := adapter.Extract([]byte("Clinical - Informatics\n**Data Manager**\n")); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	candidates, err := adapter.Extract([]byte("**Data Steward**\n"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(candidates) != 1 || candidates[0].Department != "General" {
		t.Fatalf("expected default department on fresh call, got %+v", candidates)
	}
}

func TestMedeAnalyticsExtract_Markup(t *testing.T) {
	body := `
<html><body>
  <h3>Technology - Data Science</h3>
  <p>**Machine Learning Engineer** Remote **Office** Richardson, TX</p>
  <p>Department - ignored because paragraphs are not headers</p>
  <p>**Staff Analyst</p>
  <p>**Principal Scientist**</p>
</body></html>`

	candidates, err := NewMedeAnalytics().Extract([]byte(body))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d: %+v", len(candidates), candidates)
	}
	if candidates[0].Title != "Machine Learning Engineer" || candidates[0].Location != "Remote" {
		t.Fatalf("unexpected first candidate: %+v", candidates[0])
	}
	if candidates[1].Title != "Principal Scientist" || candidates[1].Department != "Data Science" {
		t.Fatalf("unexpected second candidate: %+v", candidates[1])
	}
}

func TestDepartmentFromHeader(t *testing.T) {
	cases := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{"Engineering - Backend", "Backend", true},
		{"A - B - C", "B", true},
		{"No delimiter", "", false},
		{"Trailing - ", "", false},
	}
	for _, tc := range cases {
		got, ok := departmentFromHeader(tc.text)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("departmentFromHeader(%q) = (%q, %v), want (%q, %v)", tc.text, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestMedeAnalyticsExtract_LocationOnFollowingLine(t *testing.T) {
	body := "Engineering - Data\n**Data Scientist**\nRichardson, TX\n**Data Analyst**\nNashville, TN\nProduct - Insights\nRemote\n**BI Developer**\n"

	candidates, err := NewMedeAnalytics().Extract([]byte(body))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	want := []struct{ title, department, location string }{
		{"Data Scientist", "Data", "Richardson, TX"},
		{"Data Analyst", "Data", "Nashville, TN"},
		{"BI Developer", "Insights", ""},
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
