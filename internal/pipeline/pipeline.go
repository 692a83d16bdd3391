// Package pipeline runs the generate → validate → publish state machine
// for each selected lesson. One lesson's failure never aborts the batch;
// it is tallied and the loop continues.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jorge-barreto/deckgen/internal/config"
	"github.com/jorge-barreto/deckgen/internal/deck"
	"github.com/jorge-barreto/deckgen/internal/generate"
	"github.com/jorge-barreto/deckgen/internal/manifest"
	"github.com/jorge-barreto/deckgen/internal/markdown"
	"github.com/jorge-barreto/deckgen/internal/promptgen"
	"github.com/jorge-barreto/deckgen/internal/source"
	"github.com/jorge-barreto/deckgen/internal/ux"
	"github.com/jorge-barreto/deckgen/internal/validate"
)

// errSkipped marks a lesson whose content was too short to generate from.
var errSkipped = errors.New("skipped")

// Pipeline holds the fixed collaborators for one batch run.
type Pipeline struct {
	Config     *config.Config
	Invoker    generate.Invoker
	Components []string // registry snapshot, read fresh at run start
	Debug      bool
}

// ArtifactPath returns the working artifact path for a lesson.
func (p *Pipeline) ArtifactPath(doc source.Document) string {
	return filepath.Join(p.Config.OutputDir, jsonName(doc.RelPath))
}

// StaticPath returns the mirrored publish path for a lesson.
func (p *Pipeline) StaticPath(doc source.Document) string {
	return filepath.Join(p.Config.StaticDir, jsonName(doc.RelPath))
}

func jsonName(relPath string) string {
	return strings.TrimSuffix(relPath, filepath.Ext(relPath)) + ".json"
}

// Run processes every document in order and flushes the manifest once at
// the end. The returned error is non-nil iff any lesson failed, which the
// CLI converts into a non-zero exit.
func (p *Pipeline) Run(ctx context.Context, docs []source.Document) error {
	tracker, err := manifest.NewTracker(filepath.Join(p.Config.OutputDir, manifest.FileName))
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	summary := &RunSummary{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}

	var succeeded, skipped, failed int
	for i, doc := range docs {
		if ctx.Err() != nil {
			break
		}
		ux.DocHeader(i, len(docs), doc.RelPath)

		err := p.processDocument(ctx, doc, tracker, summary.RunID)
		switch {
		case err == nil:
			succeeded++
			summary.Results = append(summary.Results, DocResult{RelPath: doc.RelPath, Status: StatusSucceeded})
		case errors.Is(err, errSkipped):
			skipped++
			summary.Results = append(summary.Results, DocResult{RelPath: doc.RelPath, Status: StatusSkipped})
		default:
			failed++
			ux.DocFail(doc.RelPath, err.Error())
			summary.Results = append(summary.Results, DocResult{RelPath: doc.RelPath, Status: StatusFailed, Error: err.Error()})
		}
	}

	summary.EndedAt = time.Now().UTC()

	// Publish bookkeeping even on a failed or interrupted batch: the
	// entries recorded so far are authoritative for this run.
	if tracker.Modified() > 0 {
		if err := tracker.Flush(
			filepath.Join(p.Config.OutputDir, manifest.FileName),
			filepath.Join(p.Config.StaticDir, manifest.FileName),
		); err != nil {
			return fmt.Errorf("flushing manifest: %w", err)
		}
	}
	if err := summary.save(p.Config.OutputDir); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save run summary: %v\n", err)
	}

	ux.Summary(succeeded, skipped, failed)

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if failed > 0 {
		ux.DoctorHint()
		return fmt.Errorf("%d of %d lessons failed", failed, len(docs))
	}
	return nil
}

// processDocument runs one lesson through parsing, prompting, generation,
// validation, and publication. Validation failure is reported after
// publication, never before: the failing artifact stays on disk for
// inspection.
func (p *Pipeline) processDocument(ctx context.Context, doc source.Document, tracker *manifest.Tracker, runID string) error {
	start := time.Now()

	raw, err := doc.Read()
	if err != nil {
		return fmt.Errorf("reading lesson: %w", err)
	}
	content := markdown.PlainContent(raw, true)
	if len(content) < p.Config.MinContentChars {
		ux.DocSkip(doc.RelPath, fmt.Sprintf("content below %d chars", p.Config.MinContentChars))
		return errSkipped
	}

	outputPath := p.ArtifactPath(doc)

	ux.Stage("prompting")
	prompt := promptgen.Build(content, doc.DisplayName(), outputPath, p.Components)
	if p.Debug {
		if err := writeDebugPrompt(outputPath, prompt); err != nil {
			return fmt.Errorf("writing debug prompt: %w", err)
		}
	}

	ux.Stage("generating")
	pres, err := p.Invoker.Invoke(ctx, prompt, outputPath)
	if err != nil {
		return err
	}
	if n := len(pres.Slides); n < deck.MinSlides || n > deck.MaxSlides {
		ux.Warn(fmt.Sprintf("deck has %d slides (recommended %d-%d)", n, deck.MinSlides, deck.MaxSlides))
	}

	ux.Stage("validating")
	report := validate.Run(pres, validate.SourceOf(raw), p.Components)
	for _, w := range report.Warnings {
		ux.Warn(w.String())
	}
	for _, e := range report.Errors {
		ux.Fatal(e.String())
	}

	ux.Stage("publishing")
	if err := p.publish(doc, pres, outputPath); err != nil {
		return err
	}
	tracker.Record(doc.RelPath, manifest.Entry{
		URL:         "/presentations/" + filepath.ToSlash(jsonName(doc.RelPath)),
		SlideCount:  len(pres.Slides),
		Duration:    pres.Metadata.EstimatedDuration,
		Title:       pres.Metadata.Title,
		GeneratedAt: time.Now().UTC(),
		RunID:       runID,
	})

	if err := report.Err(); err != nil {
		return err
	}
	ux.DocComplete(doc.RelPath, len(pres.Slides), time.Since(start))
	return nil
}

// publish writes the canonical artifact to the mirrored static location.
// The working copy at outputPath was already written canonically by the
// invoker; both copies are byte-identical.
func (p *Pipeline) publish(doc source.Document, pres *deck.Presentation, outputPath string) error {
	data, err := pres.Marshal()
	if err != nil {
		return err
	}
	staticPath := p.StaticPath(doc)
	if err := os.MkdirAll(filepath.Dir(staticPath), 0755); err != nil {
		return fmt.Errorf("creating static directory: %w", err)
	}
	if err := os.WriteFile(staticPath, data, 0644); err != nil {
		return fmt.Errorf("writing static copy: %w", err)
	}
	return nil
}

// writeDebugPrompt persists the exact rendered prompt beside the artifact,
// with the artifact extension replaced.
func writeDebugPrompt(outputPath, prompt string) error {
	path := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".prompt.txt"
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(prompt), 0644)
}

// DryRunPrint prints the selected lessons and target paths without
// invoking the generator.
func (p *Pipeline) DryRunPrint(docs []source.Document) {
	fmt.Printf("\n%sDry run — %d lessons:%s\n\n", ux.Bold, len(docs), ux.Reset)
	for i, doc := range docs {
		fmt.Printf("  %s%d.%s %s%s%s\n", ux.Cyan, i+1, ux.Reset, ux.Bold, doc.RelPath, ux.Reset)
		fmt.Printf("     artifact: %s\n", p.ArtifactPath(doc))
		fmt.Printf("     static:   %s\n", p.StaticPath(doc))
	}
	fmt.Printf("\n  components: %s\n\n", strings.Join(p.Components, ", "))
}
