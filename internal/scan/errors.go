package scan

import (
	"errors"
	"fmt"
)

var ErrUnknownSource = errors.New("unknown source")

// Stage names the step of a source pipeline that failed.
type Stage string

const (
	StageFetch    Stage = "fetch"
	StageExtract  Stage = "extract"
	StagePanic    Stage = "panic"
	StageCanceled Stage = "canceled"
)

// SourceError is recorded as the outcome of a source that could not finish.
// It never aborts the scan.
type SourceError struct {
	Source string
	Stage  Stage
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Source, e.Stage, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
