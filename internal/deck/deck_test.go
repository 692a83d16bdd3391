package deck

import (
	"bytes"
	"strings"
	"testing"
)

const minimalArtifact = `{
  "metadata": {
    "title": "Intro",
    "lessonId": "01-intro",
    "estimatedDuration": "10 min",
    "learningObjectives": ["Understand agent loops"]
  },
  "slides": [
    {"type": "title", "title": "Intro", "subtitle": "Lesson one"},
    {"type": "concept", "title": "Ideas", "content": ["a", "b", "c"]}
  ]
}`

func TestParse_Valid(t *testing.T) {
	p, err := Parse([]byte(minimalArtifact))
	if err != nil {
		t.Fatal(err)
	}
	if p.Metadata.Title != "Intro" {
		t.Fatalf("title = %q", p.Metadata.Title)
	}
	if len(p.Slides) != 2 {
		t.Fatalf("slides = %d", len(p.Slides))
	}
	if p.Slides[1].Type != TypeConcept {
		t.Fatalf("type = %q", p.Slides[1].Type)
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Fatal("expected error")
	}
}

func TestParse_MissingTopLevelFields(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"no metadata", `{"slides": []}`, "metadata"},
		{"no slides", `{"metadata": {}}`, "slides"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q should name field %q", err, tc.want)
			}
		})
	}
}

func TestMarshal_Canonical(t *testing.T) {
	p, err := Parse([]byte(minimalArtifact))
	if err != nil {
		t.Fatal(err)
	}
	data, err := p.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		t.Fatal("canonical output must end with a newline")
	}
	if !bytes.Contains(data, []byte("\n  \"metadata\"")) {
		t.Fatal("canonical output must use 2-space indentation")
	}

	// Round trip is stable.
	p2, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	data2, err := p2.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, data2) {
		t.Fatal("canonical form must be a fixed point")
	}
}

func TestCodeBodies(t *testing.T) {
	s := Slide{
		Type: TypeCodeComparison,
		Before: &CodeBlock{Language: "go", Code: "a := 1"},
		After:  &CodeBlock{Language: "go", Code: "b := 2"},
	}
	bodies := s.CodeBodies()
	if len(bodies) != 2 || bodies[0] != "a := 1" || bodies[1] != "b := 2" {
		t.Fatalf("got %v", bodies)
	}

	plain := Slide{Type: TypeCode, Code: "x = 1"}
	if got := plain.CodeBodies(); len(got) != 1 || got[0] != "x = 1" {
		t.Fatalf("got %v", got)
	}

	concept := Slide{Type: TypeConcept, Content: []string{"a"}}
	if got := concept.CodeBodies(); got != nil {
		t.Fatalf("got %v", got)
	}
}

func TestContentGroups(t *testing.T) {
	s := Slide{
		Type:    TypeComparison,
		Left:    &Side{Label: "L", Content: []string{"1", "2", "3"}},
		Right:   &Side{Label: "R", Content: []string{"4", "5", "6"}},
		Content: []string{"x"},
	}
	groups := s.ContentGroups()
	if len(groups) != 3 {
		t.Fatalf("got %d groups", len(groups))
	}
	if len(groups["left.content"]) != 3 || len(groups["right.content"]) != 3 || len(groups["content"]) != 1 {
		t.Fatalf("got %v", groups)
	}
}
