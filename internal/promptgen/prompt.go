// Package promptgen renders the instruction text handed to the generative
// process. Build is a pure function of its inputs: the rules it communicates
// are the same rules the validators enforce afterwards, and both sides must
// see the same component whitelist within one run.
package promptgen

import (
	"fmt"
	"strings"
)

// Build renders the full generation prompt for one lesson. No I/O, no
// randomness: identical inputs always produce identical instructions.
func Build(content, displayName, outputPath string, components []string) string {
	var b strings.Builder
	b.WriteString(promptIntro)
	fmt.Fprintf(&b, "Lesson: %s\n\n", displayName)
	fmt.Fprintf(&b, "Write the finished JSON document to exactly this path: %s\n", outputPath)
	b.WriteString(promptSchema)
	fmt.Fprintf(&b, "Allowed visual components (use these names exactly, nothing else):\n")
	for _, c := range components {
		fmt.Fprintf(&b, "  - %s\n", c)
	}
	b.WriteString(promptRules)
	b.WriteString(promptContentHeader)
	b.WriteString(content)
	b.WriteString("\n")
	return b.String()
}

const promptIntro = `You are converting a written lesson into a slide-deck JSON document for a
presentation viewer. Read the lesson content at the end of this message and
produce one JSON file. Do not write any other file.

`

const promptSchema = `
The document shape is:

{
  "metadata": {
    "title": "...",
    "lessonId": "...",
    "estimatedDuration": "...",
    "learningObjectives": ["...", "..."]
  },
  "slides": [ ... ]
}

Each slide has a "type" field, one of: title, concept, code, codeComparison,
comparison, marketingReality, visual, codeExecution, takeaway.

- title: { "type": "title", "title", "subtitle" }
- concept: { "type": "concept", "title", "content": ["...", ...] }
- code: { "type": "code", "title", "language", "code", "caption" }
- codeComparison: { "type": "codeComparison", "title", "before": {"language", "code", "label"}, "after": {...}, "caption" }
- comparison: { "type": "comparison", "title", "left": {"label", "content": [...]}, "right": {...}, "neutral": true|false }
- marketingReality: { "type": "marketingReality", "title", "metaphor": {"label", "content": [...]}, "reality": {...} }
- visual: { "type": "visual", "title", "component", "caption" }
- codeExecution: { "type": "codeExecution", "title", "language", "code", "output" }
- takeaway: { "type": "takeaway", "title", "content": ["...", ...] }

`

const promptRules = `
Rules — every one of these is checked mechanically after you finish:

1. Produce between 8 and 15 slides. Start with a title slide, end with a
   takeaway slide.
2. Every "content" array (including left/right/metaphor/reality content)
   must have 3 to 5 items. The title slide has no content array.
3. Every learningObjectives item and every takeaway content item must be
   5 words or fewer.
4. A visual slide's "component" must be one of the allowed names above,
   spelled exactly. Every [VISUAL_COMPONENT: Name] marker in the lesson
   should become a visual slide using that component.
5. If the lesson contains an example prompt (instructional text addressed
   to an AI assistant, e.g. starting "Write ...", "You are ...",
   "Review ..."), preserve it verbatim in a code or codeComparison slide
   with language "text" or "markdown". Never paraphrase a prompt example
   into concept or comparison bullets.
6. Code in code/codeComparison slides must be copied verbatim from the
   lesson's fenced code blocks. You may excerpt a block, but never invent
   or rewrite code.
7. Never put markdown table syntax inside a code slide. Distill tables
   into comparison slides instead.
8. In comparison slides, put the weaker/older approach on the left and the
   stronger/recommended approach on the right.

Output only the JSON file. No commentary, no markdown wrapper.
`

const promptContentHeader = `
---- LESSON CONTENT ----

`
