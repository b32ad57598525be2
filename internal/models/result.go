package models

// Outcome is the per-source result of one scan.
type Outcome struct {
	Source string
	OK     bool
	Count  int
	Err    error
}

// Reason returns the failure text, or an empty string on success.
func (o Outcome) Reason() string {
	if o.OK || o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// ScanResult is the aggregate of one scan. Outcomes follow request order.
type ScanResult struct {
	Jobs     []Job
	Outcomes []Outcome
}

// Outcome returns the recorded outcome for source.
func (r ScanResult) Outcome(source string) (Outcome, bool) {
	for _, outcome := range r.Outcomes {
		if outcome.Source == source {
			return outcome, true
		}
	}
	return Outcome{}, false
}

// Failed lists outcomes of sources that did not complete.
func (r ScanResult) Failed() []Outcome {
	var failed []Outcome
	for _, outcome := range r.Outcomes {
		if !outcome.OK {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// Succeeded reports how many sources completed.
func (r ScanResult) Succeeded() int {
	total := 0
	for _, outcome := range r.Outcomes {
		if outcome.OK {
			total++
		}
	}
	return total
}
