package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SelectInteractive presents an enumerated lesson list on out, blocks on a
// single line of operator input from in, and returns the chosen document.
// An out-of-range or non-numeric answer is a fatal selection error.
func SelectInteractive(ctx context.Context, docs []Document, in io.Reader, out io.Writer) ([]Document, error) {
	fmt.Fprintf(out, "\nLessons:\n\n")
	for i, d := range docs {
		fmt.Fprintf(out, "  %3d  %s\n", i+1, d.RelPath)
	}
	fmt.Fprintf(out, "\nSelect a lesson [1-%d]: ", len(docs))

	reader := bufio.NewReader(in)

	// Channel so a context cancellation does not leave us stuck on stdin.
	type readResult struct {
		input string
		err   error
	}
	ch := make(chan readResult, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- readResult{input: strings.TrimSpace(line), err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("reading selection: %w", r.err)
		}
		n, err := strconv.Atoi(r.input)
		if err != nil {
			return nil, fmt.Errorf("invalid selection %q: expected a number between 1 and %d", r.input, len(docs))
		}
		if n < 1 || n > len(docs) {
			return nil, fmt.Errorf("selection %d out of range [1-%d]", n, len(docs))
		}
		return []Document{docs[n-1]}, nil
	}
}
