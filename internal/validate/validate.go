// Package validate runs the deterministic contract checks against a
// generated presentation. Validators are pure functions: they never mutate
// the artifact, they are order-independent, and all of them run on every
// artifact so the operator gets the full diagnostic picture in one pass.
package validate

import (
	"fmt"
	"strings"

	"github.com/jorge-barreto/deckgen/internal/deck"
	"github.com/jorge-barreto/deckgen/internal/markdown"
)

// Issue is one structured validation finding. Slide is the zero-based
// slide index, or -1 for document-level findings.
type Issue struct {
	Slide   int
	Message string
}

func (i Issue) String() string {
	if i.Slide < 0 {
		return i.Message
	}
	return fmt.Sprintf("slide %d: %s", i.Slide+1, i.Message)
}

// Result is the outcome of a single validator.
type Result struct {
	Valid  bool
	Issues []Issue
}

func failed(issues []Issue) Result {
	return Result{Valid: len(issues) == 0, Issues: issues}
}

// Source is the original lesson content a few validators cross-check
// against.
type Source struct {
	Markers []string         // [VISUAL_COMPONENT: X] names in order
	Fences  []markdown.Fence // fenced code blocks
}

// SourceOf extracts the cross-check inputs from raw lesson markdown.
func SourceOf(text string) Source {
	return Source{
		Markers: markdown.Markers(text),
		Fences:  markdown.Fences(text),
	}
}

// Report aggregates the full battery: warnings never block publication,
// errors mark the document as failed after publication.
type Report struct {
	Warnings []Issue
	Errors   []Issue
}

// Run executes all nine validators against the artifact. Nothing
// short-circuits: every check runs regardless of earlier failures.
func Run(p *deck.Presentation, src Source, components []string) Report {
	var rep Report

	warn := func(r Result) { rep.Warnings = append(rep.Warnings, r.Issues...) }
	fatal := func(r Result) { rep.Errors = append(rep.Errors, r.Issues...) }

	warn(ComponentPresence(p, src.Markers))
	warn(ComparisonOrder(p))
	fatal(ComponentMembership(p, components))
	fatal(ContentLength(p))
	fatal(PromptPlacement(p, src.Fences))
	fatal(CodeProvenance(p, src.Fences))
	fatal(NoTables(p))
	fatal(TakeawayWords(p))
	fatal(ObjectiveWords(p))

	return rep
}

// Err returns the aggregate validation error, or nil if no fatal check
// failed. The message enumerates every failure so a rejected generation
// can be diagnosed without re-reading the artifact.
func (r Report) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return &ValidationError{Issues: r.Errors}
}

// ValidationError is the aggregate failure raised after publication.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "validation failed with %d issue(s):", len(e.Issues))
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(issue.String())
	}
	return b.String()
}
