package generate

import "fmt"

// ProcessError means the external generator exited non-zero.
type ProcessError struct {
	ExitCode int
	Output   string
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("generator exited with code %d", e.ExitCode)
}

// TimeoutError means the external generator exceeded the configured wall
// clock limit and was killed.
type TimeoutError struct {
	Minutes int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("generator timed out after %d minutes", e.Minutes)
}

// ArtifactMissingError means the generator terminated cleanly but no file
// exists at the agreed output path.
type ArtifactMissingError struct {
	Path string
}

func (e *ArtifactMissingError) Error() string {
	return fmt.Sprintf("generator produced no artifact at %s", e.Path)
}

// ArtifactParseError means the artifact exists but is not valid JSON, or
// is missing a required top-level field. Preview carries the first bytes
// of the file for diagnostics.
type ArtifactParseError struct {
	Path    string
	Preview string
	Err     error
}

func (e *ArtifactParseError) Error() string {
	return fmt.Sprintf("artifact %s is not a valid presentation: %v (starts with: %q)", e.Path, e.Err, e.Preview)
}

func (e *ArtifactParseError) Unwrap() error { return e.Err }
