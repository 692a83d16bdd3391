package deck

import (
	"encoding/json"
	"fmt"
)

// Slide type tags. A presentation is a sequence of these variants.
const (
	TypeTitle            = "title"
	TypeConcept          = "concept"
	TypeCode             = "code"
	TypeCodeComparison   = "codeComparison"
	TypeComparison       = "comparison"
	TypeMarketingReality = "marketingReality"
	TypeVisual           = "visual"
	TypeCodeExecution    = "codeExecution"
	TypeTakeaway         = "takeaway"
)

// MinSlides and MaxSlides bound the recommended deck length. The bound is a
// soft guideline: decks outside it are warned about, never rejected.
const (
	MinSlides = 8
	MaxSlides = 15
)

// Metadata describes the deck as a whole.
type Metadata struct {
	Title              string   `json:"title"`
	LessonID           string   `json:"lessonId"`
	EstimatedDuration  string   `json:"estimatedDuration"`
	LearningObjectives []string `json:"learningObjectives"`
}

// Side is one half of a comparison or marketingReality slide.
type Side struct {
	Label   string   `json:"label"`
	Content []string `json:"content"`
}

// CodeBlock is an embedded code snippet in a codeComparison slide.
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
	Label    string `json:"label,omitempty"`
}

// Slide is the tagged union over all slide variants. Type selects the
// variant; unused fields stay at their zero value and are omitted on output.
type Slide struct {
	Type     string   `json:"type"`
	Title    string   `json:"title,omitempty"`
	Subtitle string   `json:"subtitle,omitempty"`
	Content  []string `json:"content,omitempty"`

	// code / codeExecution
	Language string `json:"language,omitempty"`
	Code     string `json:"code,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Output   string `json:"output,omitempty"`

	// codeComparison
	Before *CodeBlock `json:"before,omitempty"`
	After  *CodeBlock `json:"after,omitempty"`

	// comparison
	Left    *Side `json:"left,omitempty"`
	Right   *Side `json:"right,omitempty"`
	Neutral bool  `json:"neutral,omitempty"`

	// marketingReality
	Metaphor *Side `json:"metaphor,omitempty"`
	Reality  *Side `json:"reality,omitempty"`

	// visual
	Component string `json:"component,omitempty"`
}

// Presentation is the generated slide-deck artifact, the contract between
// the pipeline and the viewer.
type Presentation struct {
	Metadata Metadata `json:"metadata"`
	Slides   []Slide  `json:"slides"`
}

// CodeBodies returns every code string embedded in the slide, in a stable
// order. Non-code variants return nil.
func (s *Slide) CodeBodies() []string {
	var bodies []string
	if s.Code != "" {
		bodies = append(bodies, s.Code)
	}
	if s.Before != nil && s.Before.Code != "" {
		bodies = append(bodies, s.Before.Code)
	}
	if s.After != nil && s.After.Code != "" {
		bodies = append(bodies, s.After.Code)
	}
	return bodies
}

// IsCodeSlide reports whether the slide carries verbatim code content.
func (s *Slide) IsCodeSlide() bool {
	return s.Type == TypeCode || s.Type == TypeCodeComparison
}

// ContentGroups returns every bulleted content array on the slide keyed by a
// field path for error messages. The slide's own content comes first.
func (s *Slide) ContentGroups() map[string][]string {
	groups := make(map[string][]string)
	if s.Content != nil {
		groups["content"] = s.Content
	}
	if s.Left != nil && s.Left.Content != nil {
		groups["left.content"] = s.Left.Content
	}
	if s.Right != nil && s.Right.Content != nil {
		groups["right.content"] = s.Right.Content
	}
	if s.Metaphor != nil && s.Metaphor.Content != nil {
		groups["metaphor.content"] = s.Metaphor.Content
	}
	if s.Reality != nil && s.Reality.Content != nil {
		groups["reality.content"] = s.Reality.Content
	}
	return groups
}

// Parse decodes raw JSON into a Presentation and checks the two required
// top-level fields. It does not run the full validator battery.
func Parse(data []byte) (*Presentation, error) {
	var probe struct {
		Metadata *json.RawMessage `json:"metadata"`
		Slides   *json.RawMessage `json:"slides"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	if probe.Metadata == nil {
		return nil, fmt.Errorf("artifact is missing required field %q", "metadata")
	}
	if probe.Slides == nil {
		return nil, fmt.Errorf("artifact is missing required field %q", "slides")
	}
	var p Presentation
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Marshal renders the presentation in canonical form: 2-space indentation
// and a trailing newline, so regenerated artifacts diff predictably.
func (p *Presentation) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
