// Package generate drives the external generative process. The process is
// untrusted: a clean exit does not mean it wrote anything, and a written
// file does not mean valid JSON, so every step is re-verified here before
// the artifact is handed downstream.
package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/jorge-barreto/deckgen/internal/deck"
)

const previewBytes = 200

// Options configures one invocation of the external generator.
type Options struct {
	Model          string
	TimeoutMinutes int       // 0 disables the timeout
	Log            io.Writer // optional mirror of generator output
}

// Invoker materializes a presentation artifact at outputPath from a
// rendered prompt. Tests substitute a stub.
type Invoker interface {
	Invoke(ctx context.Context, prompt, outputPath string) (*deck.Presentation, error)
}

// ClaudeInvoker invokes the claude CLI restricted to file-writing tools.
type ClaudeInvoker struct {
	Opts Options
}

// Preflight checks that the claude binary is available on PATH.
func Preflight() error {
	if _, err := exec.LookPath("claude"); err != nil {
		return fmt.Errorf("claude CLI not found in PATH")
	}
	return nil
}

// Invoke removes any stale artifact, runs the generator with the prompt on
// stdin, and requires a parseable artifact at outputPath afterwards. On
// success the file is rewritten in canonical form so reruns diff cleanly.
func (c *ClaudeInvoker) Invoke(ctx context.Context, prompt, outputPath string) (*deck.Presentation, error) {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return nil, fmt.Errorf("creating artifact directory: %w", err)
	}
	// A stale artifact from a previous failed run must never be mistaken
	// for fresh output.
	if err := os.Remove(outputPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing stale artifact: %w", err)
	}

	timedOut := false
	if c.Opts.TimeoutMinutes > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.Opts.TimeoutMinutes)*time.Minute)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "claude", "-p",
		"--model", c.Opts.Model,
		"--allowed-tools", "Write,Edit")
	cmd.Stdin = strings.NewReader(prompt)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
	}
	cmd.WaitDelay = 5 * time.Second

	var captured bytes.Buffer
	out := io.Writer(&captured)
	if c.Opts.Log != nil {
		out = io.MultiWriter(c.Opts.Log, &captured)
	}
	cmd.Stdout = out
	cmd.Stderr = out

	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		timedOut = true
	}
	code, err := exitCode(err)
	if timedOut {
		return nil, &TimeoutError{Minutes: c.Opts.TimeoutMinutes}
	}
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return nil, &ProcessError{ExitCode: code, Output: captured.String()}
	}

	return Reload(outputPath)
}

// Reload reads, parses, and canonically rewrites the artifact at path.
// The exit status of the generator is deliberately not trusted: the file
// must exist and parse regardless of how the process claimed to finish.
func Reload(path string) (*deck.Presentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ArtifactMissingError{Path: path}
		}
		return nil, err
	}

	p, err := deck.Parse(data)
	if err != nil {
		return nil, &ArtifactParseError{Path: path, Preview: preview(data), Err: err}
	}

	canonical, err := p.Marshal()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, canonical, 0644); err != nil {
		return nil, fmt.Errorf("rewriting artifact canonically: %w", err)
	}
	return p, nil
}

func preview(data []byte) string {
	s := string(data)
	if len(s) > previewBytes {
		s = s[:previewBytes]
	}
	return s
}

// exitCode extracts an exit code from a command error.
// Returns (code, nil) for ExitError, (0, err) for other errors, (0, nil) for nil.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
