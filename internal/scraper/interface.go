package scraper

import (
	"errors"

	"github.com/jimezsa/jobscan/internal/models"
)

var ErrNoDocument = errors.New("empty document")

// Adapter turns one source's raw response into candidates. A malformed
// fragment is skipped; an error means the whole body was unusable.
type Adapter interface {
	Name() string
	Profile() models.SourceProfile
	Extract(body []byte) ([]models.Candidate, error)
}
