package markdown

import (
	"strings"
	"testing"
)

func TestFences_Basic(t *testing.T) {
	text := "intro\n```python\nprint(1)\nprint(2)\n```\noutro\n```\nplain\n```\n"
	fences := Fences(text)
	if len(fences) != 2 {
		t.Fatalf("expected 2 fences, got %d", len(fences))
	}
	if fences[0].Language != "python" {
		t.Fatalf("language = %q", fences[0].Language)
	}
	if fences[0].Body != "print(1)\nprint(2)" {
		t.Fatalf("body = %q", fences[0].Body)
	}
	if fences[1].Language != "" {
		t.Fatalf("language = %q", fences[1].Language)
	}
	if fences[1].Body != "plain" {
		t.Fatalf("body = %q", fences[1].Body)
	}
}

func TestFences_Unclosed(t *testing.T) {
	fences := Fences("```go\nfunc main() {}\n")
	if len(fences) != 0 {
		t.Fatalf("expected unclosed fence to be dropped, got %v", fences)
	}
}

func TestFences_None(t *testing.T) {
	if fences := Fences("just prose\nno code"); len(fences) != 0 {
		t.Fatalf("got %v", fences)
	}
}

func TestMarkers(t *testing.T) {
	text := "before\n[VISUAL_COMPONENT: ContextWindow]\nmiddle [VISUAL_COMPONENT:AgentLoop]\n[VISUAL_COMPONENT: ContextWindow]\n"
	markers := Markers(text)
	if len(markers) != 3 {
		t.Fatalf("expected 3 markers, got %v", markers)
	}
	if markers[0] != "ContextWindow" || markers[1] != "AgentLoop" || markers[2] != "ContextWindow" {
		t.Fatalf("got %v", markers)
	}
}

func TestMarkers_None(t *testing.T) {
	if m := Markers("no markers here [VISUAL: Nope]"); len(m) != 0 {
		t.Fatalf("got %v", m)
	}
}

func TestPlainContent_StripsMarkdown(t *testing.T) {
	text := "# Heading\n\nSome **bold** and a [link](https://example.com).\n"
	got := PlainContent(text, true)
	if strings.Contains(got, "#") || strings.Contains(got, "**") || strings.Contains(got, "](") {
		t.Fatalf("markdown not stripped: %q", got)
	}
	if !strings.Contains(got, "Heading") || !strings.Contains(got, "link") {
		t.Fatalf("content lost: %q", got)
	}
}

func TestPlainContent_KeepsFencesAndMarkers(t *testing.T) {
	text := "# T\n\n[VISUAL_COMPONENT: AgentLoop]\n\n```python\nx = 1\n```\n"
	got := PlainContent(text, true)
	if !strings.Contains(got, "[VISUAL_COMPONENT: AgentLoop]") {
		t.Fatalf("marker lost: %q", got)
	}
	if !strings.Contains(got, "```python") || !strings.Contains(got, "x = 1") {
		t.Fatalf("fence lost: %q", got)
	}
}

func TestPlainContent_DropCode(t *testing.T) {
	text := "prose\n```python\nx = 1\n```\nmore\n"
	got := PlainContent(text, false)
	if strings.Contains(got, "x = 1") || strings.Contains(got, "```") {
		t.Fatalf("code not dropped: %q", got)
	}
	if !strings.Contains(got, "prose") || !strings.Contains(got, "more") {
		t.Fatalf("prose lost: %q", got)
	}
}

func TestPlainContent_FrontMatter(t *testing.T) {
	text := "---\ntitle: x\n---\nbody text\n"
	got := PlainContent(text, true)
	if strings.Contains(got, "title: x") {
		t.Fatalf("front matter not stripped: %q", got)
	}
	if !strings.Contains(got, "body text") {
		t.Fatalf("body lost: %q", got)
	}
}
