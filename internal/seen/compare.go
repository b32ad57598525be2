package seen

import (
	"strings"

	"github.com/jimezsa/jobscan/internal/models"
)

const keySeparator = "::"

// DiffStats summarises one history comparison.
type DiffStats struct {
	TotalNew  int
	TotalSeen int
	Invalid   int
	Unseen    int
}

// MergeStats summarises one history update.
type MergeStats struct {
	TotalSeen  int
	TotalInput int
	Invalid    int
	Added      int
	TotalOut   int
}

// Normalize lowercases and collapses whitespace.
func Normalize(value string) string {
	return strings.Join(strings.Fields(strings.ToLower(value)), " ")
}

// Key identifies a posting across runs by source, company and title.
// Department is left out so a posting moved between groups stays seen.
func Key(job models.Job) (string, bool) {
	source := Normalize(job.Source)
	title := Normalize(job.Title)
	if source == "" || title == "" {
		return "", false
	}
	return strings.Join([]string{source, Normalize(job.Company), title}, keySeparator), true
}

// Diff returns jobs from current whose key is not in history, keeping the
// first job for each key.
func Diff(current []models.Job, history []models.Job) ([]models.Job, DiffStats) {
	stats := DiffStats{TotalNew: len(current), TotalSeen: len(history)}

	known := keySet(history, &stats.Invalid)
	emitted := map[string]struct{}{}
	unseen := make([]models.Job, 0, len(current))
	for _, job := range current {
		key, ok := Key(job)
		if !ok {
			stats.Invalid++
			continue
		}
		if _, dup := emitted[key]; dup {
			continue
		}
		emitted[key] = struct{}{}
		if _, ok := known[key]; ok {
			continue
		}
		unseen = append(unseen, job)
	}

	stats.Unseen = len(unseen)
	return unseen, stats
}

// Merge appends input jobs with new keys to history. History entries win.
func Merge(history []models.Job, input []models.Job) ([]models.Job, MergeStats) {
	stats := MergeStats{TotalSeen: len(history), TotalInput: len(input)}

	keys := map[string]struct{}{}
	out := make([]models.Job, 0, len(history)+len(input))
	for _, job := range history {
		if key, ok := Key(job); ok {
			if _, dup := keys[key]; dup {
				continue
			}
			keys[key] = struct{}{}
		}
		out = append(out, job)
	}

	for _, job := range input {
		key, ok := Key(job)
		if !ok {
			stats.Invalid++
			continue
		}
		if _, dup := keys[key]; dup {
			continue
		}
		keys[key] = struct{}{}
		out = append(out, job)
		stats.Added++
	}

	stats.TotalOut = len(out)
	return out, stats
}

func keySet(jobs []models.Job, invalid *int) map[string]struct{} {
	keys := make(map[string]struct{}, len(jobs))
	for _, job := range jobs {
		key, ok := Key(job)
		if !ok {
			*invalid++
			continue
		}
		keys[key] = struct{}{}
	}
	return keys
}
