// Package doctor feeds the last failed run's context to claude for a
// diagnosis. Strictly advisory; it never touches pipeline state.
package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jorge-barreto/deckgen/internal/config"
	"github.com/jorge-barreto/deckgen/internal/pipeline"
	"github.com/jorge-barreto/deckgen/internal/ux"
)

const maxArtifactBytes = 16 * 1024

const diagPrompt = `You are diagnosing failed slide-deck generations. For each failed lesson
below you get the validation errors and the artifact the generator wrote.

%s
Instructions:
1. For each lesson, identify which contract rules the generator broke and why.
2. Classify each failure as a PROMPT problem (instructions unclear or
   conflicting), a CONTENT problem (the lesson itself makes the rules hard
   to satisfy), or a MODEL problem (instructions ignored).
3. Suggest specific changes, then recommend the next command:
   - deckgen generate --file <path>   (regenerate one lesson)
   - edit the lesson content first, then regenerate

Be direct and concise. Focus on actionable advice.`

// Run gathers failure context from the last run summary and sends it to
// claude for diagnosis.
func Run(ctx context.Context, cfg *config.Config) error {
	summary, err := pipeline.LoadSummary(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("loading run summary: %w", err)
	}
	if summary == nil {
		fmt.Println("No run to diagnose.")
		return nil
	}
	failed := summary.Failed()
	if len(failed) == 0 {
		fmt.Println("Last run had no failures.")
		return nil
	}

	fmt.Printf("\n%s%s══ Doctor: diagnosing %d failed lesson(s) ══%s\n\n",
		ux.Bold, ux.Cyan, len(failed), ux.Reset)

	var sections []string
	for _, r := range failed {
		sections = append(sections, gatherLesson(cfg.OutputDir, r))
	}

	prompt := fmt.Sprintf(diagPrompt, strings.Join(sections, "\n"))
	if err := runClaude(ctx, prompt); err != nil {
		return fmt.Errorf("failed to run claude: %w", err)
	}
	fmt.Println()
	return nil
}

func gatherLesson(outputDir string, r pipeline.DocResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Lesson %s\n\n", r.RelPath)
	fmt.Fprintf(&b, "### Errors\n%s\n\n", r.Error)

	artifactPath := filepath.Join(outputDir,
		strings.TrimSuffix(r.RelPath, filepath.Ext(r.RelPath))+".json")
	data, err := os.ReadFile(artifactPath)
	switch {
	case err != nil:
		fmt.Fprintf(&b, "### Artifact\n(no artifact at %s)\n", artifactPath)
	case len(data) > maxArtifactBytes:
		fmt.Fprintf(&b, "### Artifact (truncated to %d bytes)\n%s\n", maxArtifactBytes, data[:maxArtifactBytes])
	default:
		fmt.Fprintf(&b, "### Artifact\n%s\n", data)
	}
	return b.String()
}

func runClaude(ctx context.Context, prompt string) error {
	cmd := exec.CommandContext(ctx, "claude", "-p", prompt, "--model", "sonnet")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
