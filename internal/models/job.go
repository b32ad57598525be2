package models

// Job is the normalized posting produced for every source.
// Fields are never mutated after normalization.
type Job struct {
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	Link       string `json:"link"`
	Department string `json:"department"`
	Source     string `json:"source"`
}

// Candidate is the raw, possibly incomplete record an adapter extracts.
// Only Title is required.
type Candidate struct {
	Title      string
	Location   string
	Department string
	Link       string
}

// SourceProfile describes the fixed identity and defaults of one source.
type SourceProfile struct {
	Name              string `json:"name"`
	Company           string `json:"company"`
	ListingURL        string `json:"listing_url"`
	BaseURL           string `json:"base_url"`
	DefaultLocation   string `json:"default_location"`
	DefaultDepartment string `json:"default_department"`
}
