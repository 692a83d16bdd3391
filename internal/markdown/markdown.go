package markdown

import (
	"regexp"
	"strings"
)

// Fence is a single fenced code block extracted from lesson markdown.
type Fence struct {
	Language string // tag after the opening fence, may be empty
	Body     string // content between the fences
}

var fenceOpenRe = regexp.MustCompile("^```([A-Za-z0-9_+-]*)\\s*$")

// Fences extracts fenced code blocks from markdown text. It recognizes
// opening fences like:
//
//	```python
//	```text
//	```
//
// Returns blocks in order of appearance. An unclosed fence at EOF is dropped.
func Fences(text string) []Fence {
	lines := strings.Split(text, "\n")
	var fences []Fence
	var current *Fence
	var buf strings.Builder

	for _, line := range lines {
		if current != nil {
			// Inside a block — look for closing fence
			if strings.TrimSpace(line) == "```" {
				current.Body = buf.String()
				fences = append(fences, *current)
				current = nil
				buf.Reset()
				continue
			}
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(line)
			continue
		}

		m := fenceOpenRe.FindStringSubmatch(strings.TrimSpace(line))
		if m != nil {
			current = &Fence{Language: m[1]}
			buf.Reset()
		}
	}

	return fences
}

var markerRe = regexp.MustCompile(`\[VISUAL_COMPONENT:\s*([A-Za-z][A-Za-z0-9]*)\s*\]`)

// Markers returns every [VISUAL_COMPONENT: Name] marker name in order of
// appearance, duplicates included.
func Markers(text string) []string {
	var names []string
	for _, m := range markerRe.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}
	return names
}

var (
	headingRe   = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	emphasisRe  = regexp.MustCompile(`(\*\*|\*|__|~~)`)
	linkRe      = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	htmlTagRe   = regexp.MustCompile(`<[^>]+>`)
	frontMatter = regexp.MustCompile(`(?s)\A---\n.*?\n---\n`)
)

// PlainContent renders markdown down to plain prose while keeping fenced
// code blocks (with their language tags) and VISUAL_COMPONENT markers
// intact, since both carry machine-readable signal for the prompt and the
// validators. When preserveCode is false, fenced blocks are dropped too.
func PlainContent(text string, preserveCode bool) string {
	text = frontMatter.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	var out []string
	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			if preserveCode {
				out = append(out, line)
			}
			continue
		}
		if inFence {
			if preserveCode {
				out = append(out, line)
			}
			continue
		}
		line = headingRe.ReplaceAllString(line, "")
		line = linkRe.ReplaceAllString(line, "$1")
		line = htmlTagRe.ReplaceAllString(line, "")
		line = emphasisRe.ReplaceAllString(line, "")
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}
