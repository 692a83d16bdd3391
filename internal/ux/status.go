package ux

import (
	"fmt"
	"sort"

	"github.com/jorge-barreto/deckgen/internal/manifest"
)

// RunLine is one document outcome from the last run, pre-flattened so this
// package stays independent of the pipeline.
type RunLine struct {
	RelPath string
	Status  string // succeeded, skipped, failed
	Error   string
}

// RenderStatus prints the manifest contents and the last run summary.
func RenderStatus(entries map[string]manifest.Entry, runID string, lines []RunLine) {
	if len(entries) == 0 {
		fmt.Printf("%sNo presentations generated yet.%s\n", Dim, Reset)
	} else {
		fmt.Printf("%sPresentations:%s\n", Bold, Reset)
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			e := entries[k]
			fmt.Printf("  %-40s %s%2d slides%s  %s%s%s  %s\n",
				k, Dim, e.SlideCount, Reset, Dim, e.GeneratedAt.Format("2006-01-02 15:04"), Reset, e.Title)
		}
	}

	if runID == "" {
		return
	}
	fmt.Printf("\n%sLast run:%s %s\n", Bold, Reset, runID)
	for _, l := range lines {
		switch l.Status {
		case "succeeded":
			fmt.Printf("  %s✓%s %s\n", Green, Reset, l.RelPath)
		case "skipped":
			fmt.Printf("  %s–%s %s (skipped)\n", Dim, Reset, l.RelPath)
		case "failed":
			fmt.Printf("  %s✗%s %s — %s\n", Red, Reset, l.RelPath, firstLine(l.Error))
		}
	}
	fmt.Println()
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
