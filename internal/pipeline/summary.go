package pipeline

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Document statuses recorded in the run summary.
const (
	StatusSucceeded = "succeeded"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// DocResult is the outcome of one lesson's pipeline run.
type DocResult struct {
	RelPath string `json:"relPath"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// RunSummary records the last batch run for `deckgen status` and
// `deckgen doctor`.
type RunSummary struct {
	RunID     string      `json:"runId"`
	StartedAt time.Time   `json:"startedAt"`
	EndedAt   time.Time   `json:"endedAt"`
	Results   []DocResult `json:"results"`
}

func summaryPath(outputDir string) string {
	return filepath.Join(outputDir, "last-run.json")
}

// LoadSummary reads the last run summary. Returns nil without error when
// no run has happened yet.
func LoadSummary(outputDir string) (*RunSummary, error) {
	data, err := os.ReadFile(summaryPath(outputDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var s RunSummary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Failed returns the failed results from the summary.
func (s *RunSummary) Failed() []DocResult {
	var failed []DocResult
	for _, r := range s.Results {
		if r.Status == StatusFailed {
			failed = append(failed, r)
		}
	}
	return failed
}

func (s *RunSummary) save(outputDir string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(summaryPath(outputDir), append(data, '\n'), 0644)
}
