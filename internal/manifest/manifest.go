// Package manifest persists the index of generated presentations. The
// manifest file is the one piece of state shared across concurrent deckgen
// runs, so updates follow a merge-on-write protocol: only the keys this
// run touched are overlaid onto a freshly re-read copy at flush time.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FileName is the manifest's name in both publish locations.
const FileName = "manifest.json"

// Entry records one generated artifact, keyed by the lesson's relative
// source path.
type Entry struct {
	URL         string    `json:"url"`
	SlideCount  int       `json:"slideCount"`
	Duration    string    `json:"estimatedDuration"`
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generatedAt"`
	RunID       string    `json:"runId,omitempty"`
}

// Load reads a manifest file. A missing file is an empty manifest, not an
// error.
func Load(path string) (map[string]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]Entry), nil
		}
		return nil, err
	}
	var m map[string]Entry
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if m == nil {
		m = make(map[string]Entry)
	}
	return m, nil
}

// Tracker accumulates this run's manifest updates and remembers which
// keys the run is authoritative for.
type Tracker struct {
	entries  map[string]Entry
	modified map[string]bool
}

// NewTracker starts a tracker from the manifest at path. Entries written
// by other processes after this point survive the final Flush.
func NewTracker(path string) (*Tracker, error) {
	entries, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Tracker{
		entries:  entries,
		modified: make(map[string]bool),
	}, nil
}

// Record stores the entry for key and marks the key as owned by this run.
func (t *Tracker) Record(key string, e Entry) {
	t.entries[key] = e
	t.modified[key] = true
}

// Modified reports how many keys this run has recorded.
func (t *Tracker) Modified() int {
	return len(t.modified)
}

// Flush re-reads the manifest from primaryPath to pick up concurrent
// writes, overlays only this run's keys, and writes the merged result to
// both publish locations. Foreign keys are never clobbered; for a key both
// runs touched, last writer wins.
func (t *Tracker) Flush(primaryPath, mirrorPath string) error {
	merged, err := Load(primaryPath)
	if err != nil {
		return err
	}
	for key := range t.modified {
		merged[key] = t.entries[key]
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	for _, path := range []string{primaryPath, mirrorPath} {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating manifest directory: %w", err)
		}
		if err := writeFileAtomic(path, data, 0644); err != nil {
			return fmt.Errorf("writing manifest %s: %w", path, err)
		}
	}
	return nil
}
