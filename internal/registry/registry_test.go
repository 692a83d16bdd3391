package registry

import (
	"os"
	"path/filepath"
	"testing"
)

const viewerSource = `import React from 'react';

const SLIDE_COMPONENTS = {
  ContextWindow: ContextWindowDiagram,
  AgentLoop: AgentLoopDiagram,
  TokenFlow: (props) => {
    return render(props);
  },
  'RagPipeline': RagPipelineDiagram,
};

export default SlideViewer;
`

func writeViewer(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "SlideViewer.tsx")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestComponents(t *testing.T) {
	path := writeViewer(t, viewerSource)
	got, err := Components(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ContextWindow", "AgentLoop", "TokenFlow", "RagPipeline"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestComponents_NoDeclaration(t *testing.T) {
	path := writeViewer(t, "const other = {};\n")
	if _, err := Components(path); err == nil {
		t.Fatal("expected error for missing declaration")
	}
}

func TestComponents_Empty(t *testing.T) {
	path := writeViewer(t, "const SLIDE_COMPONENTS = {\n};\n")
	if _, err := Components(path); err == nil {
		t.Fatal("expected error for empty declaration")
	}
}

func TestComponents_MissingFile(t *testing.T) {
	if _, err := Components(filepath.Join(t.TempDir(), "nope.tsx")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestContains_ExactOnly(t *testing.T) {
	components := []string{"ContextWindow", "AgentLoop"}
	if !Contains(components, "AgentLoop") {
		t.Fatal("exact member not found")
	}
	if Contains(components, "agentloop") {
		t.Fatal("matching must be case-sensitive")
	}
	if Contains(components, "Agent") {
		t.Fatal("matching must not be partial")
	}
}
