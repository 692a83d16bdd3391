package manifest

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func entry(title string) Entry {
	return Entry{
		URL:         "/presentations/x.json",
		SlideCount:  10,
		Duration:    "10 min",
		Title:       title,
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func writeManifest(t *testing.T, path string, m map[string]Entry) {
	t.Helper()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_MissingIsEmpty(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "manifest.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 0 {
		t.Fatalf("got %v", m)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	os.WriteFile(path, []byte("{broken"), 0644)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error")
	}
}

func TestFlush_MergePreservesForeignKeys(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "manifest.json")
	mirror := filepath.Join(dir, "static", "manifest.json")

	writeManifest(t, primary, map[string]Entry{"A": entry("a"), "B": entry("b")})

	tracker, err := NewTracker(primary)
	if err != nil {
		t.Fatal(err)
	}
	tracker.Record("C", entry("c"))

	// A concurrent process rewrites the manifest mid-run: modifies A,
	// adds D.
	writeManifest(t, primary, map[string]Entry{
		"A": entry("a-modified"),
		"B": entry("b"),
		"D": entry("d"),
	})

	if err := tracker.Flush(primary, mirror); err != nil {
		t.Fatal(err)
	}

	final, err := Load(primary)
	if err != nil {
		t.Fatal(err)
	}
	if len(final) != 4 {
		t.Fatalf("expected keys A,B,C,D, got %v", final)
	}
	if final["A"].Title != "a-modified" {
		t.Fatal("concurrent modification of foreign key A was clobbered")
	}
	if final["C"].Title != "c" {
		t.Fatal("own key C missing")
	}
	if final["D"].Title != "d" {
		t.Fatal("concurrently added key D was lost")
	}
}

func TestFlush_OwnKeyWinsOverConcurrentWrite(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "manifest.json")
	mirror := filepath.Join(dir, "mirror.json")

	writeManifest(t, primary, map[string]Entry{"A": entry("old")})
	tracker, _ := NewTracker(primary)
	tracker.Record("A", entry("mine"))

	// Concurrent write to the same key: last writer (this run) wins.
	writeManifest(t, primary, map[string]Entry{"A": entry("theirs")})

	if err := tracker.Flush(primary, mirror); err != nil {
		t.Fatal(err)
	}
	final, _ := Load(primary)
	if final["A"].Title != "mine" {
		t.Fatalf("got %q", final["A"].Title)
	}
}

func TestFlush_MirrorsIdentically(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "manifest.json")
	mirror := filepath.Join(dir, "static", "manifest.json")

	tracker, err := NewTracker(primary)
	if err != nil {
		t.Fatal(err)
	}
	tracker.Record("A", entry("a"))
	if err := tracker.Flush(primary, mirror); err != nil {
		t.Fatal(err)
	}

	p, err := os.ReadFile(primary)
	if err != nil {
		t.Fatal(err)
	}
	m, err := os.ReadFile(mirror)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(p, m) {
		t.Fatal("mirror must be byte-identical to primary")
	}
	if !bytes.HasSuffix(p, []byte("\n")) {
		t.Fatal("manifest must end with a trailing newline")
	}
}

func TestWriteFileAtomic_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	if err := writeFileAtomic(path, []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.json" {
		t.Fatalf("unexpected directory contents: %v", entries)
	}
}

func TestModified(t *testing.T) {
	tracker, err := NewTracker(filepath.Join(t.TempDir(), "manifest.json"))
	if err != nil {
		t.Fatal(err)
	}
	if tracker.Modified() != 0 {
		t.Fatal("fresh tracker should have no modifications")
	}
	tracker.Record("A", entry("a"))
	tracker.Record("A", entry("a2"))
	tracker.Record("B", entry("b"))
	if tracker.Modified() != 2 {
		t.Fatalf("got %d", tracker.Modified())
	}
}
