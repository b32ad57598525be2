package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jimezsa/jobscan/internal/models"
)

const (
	titleMarker     = "**"
	headerDelimiter = " - "
)

// Longest literal first so "Remote, USA" is not cut to "Remote".
var medeLocationPattern = regexp.MustCompile(`Remote, USA|Richardson, TX|Nashville, TN|Remote`)

// MedeAnalytics reads a board rendered as flat text: "Group - Department"
// headers followed by **Title** spans with the office after each span.
type MedeAnalytics struct {
	profile models.SourceProfile
}

func NewMedeAnalytics() *MedeAnalytics {
	return &MedeAnalytics{profile: models.SourceProfile{
		Name:              SiteMedeAnalytics,
		Company:           "MedAnalytics",
		ListingURL:        "https://job-boards.greenhouse.io/medeanalytics",
		BaseURL:           "https://job-boards.greenhouse.io",
		DefaultLocation:   "Remote, USA",
		DefaultDepartment: "General",
	}}
}

func (m *MedeAnalytics) Name() string {
	return SiteMedeAnalytics
}

func (m *MedeAnalytics) Profile() models.SourceProfile {
	return m.profile
}

func (m *MedeAnalytics) Extract(body []byte) ([]models.Candidate, error) {
	tokens, err := textTokens(body)
	if err != nil {
		return nil, err
	}
	return scanTextTokens(tokens, m.profile.DefaultDepartment), nil
}

type textToken struct {
	text string
	// header reports whether the token may carry a department header.
	header bool
}

// textTokens flattens the body into an ordered token stream: h3, strong
// and p texts for markup, plain lines otherwise.
func textTokens(body []byte) ([]textToken, error) {
	doc, err := parseDocument(body)
	if err != nil {
		return nil, err
	}

	var tokens []textToken
	elements := doc.Find("h3, strong, p")
	if elements.Length() > 0 {
		elements.Each(func(_ int, s *goquery.Selection) {
			tokens = append(tokens, textToken{
				text:   cleanText(s.Text()),
				header: goquery.NodeName(s) != "p",
			})
		})
		return tokens, nil
	}

	for _, line := range strings.Split(string(body), "\n") {
		line = cleanText(line)
		if line == "" {
			continue
		}
		tokens = append(tokens, textToken{text: line, header: true})
	}
	return tokens, nil
}

// scanTextTokens walks tokens in order. The current department is local to
// one call and only applies to titles seen after its header. A title's
// location window is the free text after its span up to the next marker or
// header, which may run across several tokens.
func scanTextTokens(tokens []textToken, defaultDepartment string) []models.Candidate {
	var (
		candidates []models.Candidate
		window     locationWindow
	)
	department := defaultDepartment

	for _, token := range tokens {
		if token.text == "" {
			continue
		}
		if !strings.Contains(token.text, titleMarker) {
			if token.header {
				if value, ok := departmentFromHeader(token.text); ok {
					window.close(candidates)
					department = value
					continue
				}
			}
			window.add(token.text)
			continue
		}
		candidates = markedTitles(candidates, &window, token.text, department)
	}
	window.close(candidates)

	return candidates
}

// locationWindow collects the free text following the latest title span.
type locationWindow struct {
	index int
	open  bool
	text  []string
}

func (w *locationWindow) start(index int, text string) {
	w.index = index
	w.open = true
	w.text = append(w.text[:0], text)
}

func (w *locationWindow) add(text string) {
	if w.open {
		w.text = append(w.text, text)
	}
}

func (w *locationWindow) close(candidates []models.Candidate) {
	if !w.open {
		return
	}
	candidates[w.index].Location = medeLocationPattern.FindString(strings.Join(w.text, "\n"))
	w.open = false
	w.text = w.text[:0]
}

func departmentFromHeader(text string) (string, bool) {
	parts := strings.Split(text, headerDelimiter)
	if len(parts) < 2 {
		return "", false
	}
	department := strings.TrimSpace(parts[1])
	if department == "" {
		return "", false
	}
	return department, true
}

// markedTitles appends one candidate per **span** in text. Text before the
// first marker still belongs to the previous title's window; the text after
// the last closed span stays open for the following tokens.
func markedTitles(candidates []models.Candidate, window *locationWindow, text string, department string) []models.Candidate {
	parts := strings.Split(text, titleMarker)
	window.add(parts[0])

	// Inside-marker segments sit at odd indexes; the last one is unterminated.
	for i := 1; i < len(parts)-1; i += 2 {
		window.close(candidates)
		title := cleanText(parts[i])
		if title == "" || IsExcludedLabel(title) {
			continue
		}
		candidates = append(candidates, models.Candidate{
			Title:      title,
			Department: department,
		})
		window.start(len(candidates)-1, parts[i+1])
	}
	if len(parts)%2 == 0 {
		// An unterminated marker still ends the window.
		window.close(candidates)
	}

	return candidates
}
