package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jimezsa/jobscan/internal/models"
)

type Mode string

const (
	ModeFiltered Mode = "filtered"
	ModeAll      Mode = "all"
)

func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(ModeFiltered):
		return ModeFiltered, nil
	case string(ModeAll):
		return ModeAll, nil
	default:
		return "", fmt.Errorf("unknown filter mode: %s", value)
	}
}

// IsRelevant reports whether any keyword is a case-insensitive substring of
// the job title.
func IsRelevant(job models.Job, keywords Keywords) bool {
	title := strings.ToLower(job.Title)
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		if strings.Contains(title, keyword) {
			return true
		}
	}
	return false
}

// Apply keeps relevant jobs in their original order. ModeAll bypasses the
// filter entirely.
func Apply(jobs []models.Job, keywords Keywords, mode Mode) []models.Job {
	if mode == ModeAll {
		return jobs
	}
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if IsRelevant(job, keywords) {
			out = append(out, job)
		}
	}
	return out
}

// ByDepartment keeps jobs whose department is in allow. An empty allow-list
// keeps everything.
func ByDepartment(jobs []models.Job, allow []string) []models.Job {
	allowed := map[string]struct{}{}
	for _, department := range allow {
		department = strings.ToLower(strings.TrimSpace(department))
		if department == "" {
			continue
		}
		allowed[department] = struct{}{}
	}
	if len(allowed) == 0 {
		return jobs
	}

	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if _, ok := allowed[strings.ToLower(strings.TrimSpace(job.Department))]; ok {
			out = append(out, job)
		}
	}
	return out
}

// Departments returns the sorted distinct departments present in jobs.
func Departments(jobs []models.Job) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, job := range jobs {
		if _, ok := seen[job.Department]; ok {
			continue
		}
		seen[job.Department] = struct{}{}
		out = append(out, job.Department)
	}
	sort.Strings(out)
	return out
}
