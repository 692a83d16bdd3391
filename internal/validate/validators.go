package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jorge-barreto/deckgen/internal/deck"
	"github.com/jorge-barreto/deckgen/internal/markdown"
	"github.com/jorge-barreto/deckgen/internal/registry"
)

const (
	minContentItems = 3
	maxContentItems = 5
	maxWords        = 5

	// Snippets at or below this normalized length are too short for a
	// meaningful provenance match.
	shortSnippetChars = 20
)

// ComponentPresence checks that every [VISUAL_COMPONENT: X] marker in the
// source has at least one rendered visual slide using that component.
// Best-effort lint: warning severity.
func ComponentPresence(p *deck.Presentation, markers []string) Result {
	rendered := make(map[string]bool)
	for _, s := range p.Slides {
		if s.Type == deck.TypeVisual {
			rendered[s.Component] = true
		}
	}
	var issues []Issue
	seen := make(map[string]bool)
	for _, m := range markers {
		if seen[m] {
			continue
		}
		seen[m] = true
		if !rendered[m] {
			issues = append(issues, Issue{Slide: -1,
				Message: fmt.Sprintf("source marker [VISUAL_COMPONENT: %s] has no matching visual slide", m)})
		}
	}
	return failed(issues)
}

var (
	positiveWords = []string{"effective", "better", "cli", "improved", "modern", "recommended"}
	negativeWords = []string{"ineffective", "traditional", "outdated", "legacy", "worse", "naive"}
)

// ComparisonOrder heuristically checks that comparison slides put the
// weaker approach on the left and the stronger one on the right. Keyword
// lint only, so warning severity; false positives are expected. Slides
// marked neutral are exempt.
func ComparisonOrder(p *deck.Presentation) Result {
	var issues []Issue
	for i, s := range p.Slides {
		if s.Type != deck.TypeComparison || s.Neutral {
			continue
		}
		if s.Left != nil {
			if w := containsWord(s.Left.Label, positiveWords); w != "" {
				issues = append(issues, Issue{Slide: i,
					Message: fmt.Sprintf("left label %q sounds positive (%q) — sides may be reversed", s.Left.Label, w)})
			}
		}
		if s.Right != nil {
			if w := containsWord(s.Right.Label, negativeWords); w != "" {
				issues = append(issues, Issue{Slide: i,
					Message: fmt.Sprintf("right label %q sounds negative (%q) — sides may be reversed", s.Right.Label, w)})
			}
		}
	}
	return failed(issues)
}

// containsWord returns the first word from vocab appearing as a whole
// token in label, or "". Whole-token matching keeps "ineffective" from
// tripping the "effective" check.
func containsWord(label string, vocab []string) string {
	for _, tok := range strings.Fields(strings.ToLower(label)) {
		tok = strings.Trim(tok, ".,:;!?()\"'")
		for _, w := range vocab {
			if tok == w {
				return w
			}
		}
	}
	return ""
}

// ComponentMembership checks that every visual slide references a
// component the viewer can render. Exact match only.
func ComponentMembership(p *deck.Presentation, components []string) Result {
	var issues []Issue
	for i, s := range p.Slides {
		if s.Type != deck.TypeVisual {
			continue
		}
		if !registry.Contains(components, s.Component) {
			issues = append(issues, Issue{Slide: i,
				Message: fmt.Sprintf("visual component %q is not in the registry (known: %s)",
					s.Component, strings.Join(components, ", "))})
		}
	}
	return failed(issues)
}

// ContentLength checks that every content array on every non-title slide
// has between 3 and 5 items.
func ContentLength(p *deck.Presentation) Result {
	var issues []Issue
	for i, s := range p.Slides {
		if s.Type == deck.TypeTitle {
			continue
		}
		for field, items := range s.ContentGroups() {
			if len(items) < minContentItems || len(items) > maxContentItems {
				issues = append(issues, Issue{Slide: i,
					Message: fmt.Sprintf("%s slide %s has %d items (must be %d-%d)",
						s.Type, field, len(items), minContentItems, maxContentItems)})
			}
		}
	}
	return failed(issues)
}

// promptVerbs open instructional text addressed to an AI assistant.
var promptVerbs = []string{"Write ", "You are ", "Review ", "Create ", "Generate ", "Act as "}

func startsLikePrompt(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, v := range promptVerbs {
		if strings.HasPrefix(trimmed, v) {
			return true
		}
	}
	return false
}

// looksLikeFullPrompt reports whether a bullet reads as a complete prompt
// sentence rather than a summary of one. Heuristic: instructional opener
// plus enough words to be a real instruction.
func looksLikeFullPrompt(bullet string) bool {
	return startsLikePrompt(bullet) && len(strings.Fields(bullet)) >= 8
}

// PromptPlacement enforces the prompt-example preservation rule: when the
// source contains an instructional fenced block, the deck must carry it in
// a code/codeComparison slide, and must not smear prompt text into
// concept/comparison bullets.
func PromptPlacement(p *deck.Presentation, fences []markdown.Fence) Result {
	hasPromptFence := false
	for _, f := range fences {
		if startsLikePrompt(f.Body) {
			hasPromptFence = true
			break
		}
	}

	// Both checks apply only when the source actually carries a prompt
	// example; instructional-sounding prose on its own is fine.
	if !hasPromptFence {
		return failed(nil)
	}

	var issues []Issue
	hasCodeSlide := false
	for _, s := range p.Slides {
		if s.IsCodeSlide() {
			hasCodeSlide = true
			break
		}
	}
	if !hasCodeSlide {
		issues = append(issues, Issue{Slide: -1,
			Message: "source contains a prompt example but no code/codeComparison slide preserves it"})
	}

	for i, s := range p.Slides {
		if s.Type != deck.TypeConcept && s.Type != deck.TypeComparison {
			continue
		}
		for field, items := range s.ContentGroups() {
			for _, bullet := range items {
				if looksLikeFullPrompt(bullet) {
					issues = append(issues, Issue{Slide: i,
						Message: fmt.Sprintf("%s bullet looks like a full prompt example (%q) — move it to a code slide", field, truncate(bullet, 60))})
				}
			}
		}
	}
	return failed(issues)
}

// CodeProvenance checks that code slides carry code copied from the
// source. Excerpting either direction is allowed after whitespace
// normalization. Prompt blocks (text/markdown language) and short
// snippets are exempt.
func CodeProvenance(p *deck.Presentation, fences []markdown.Fence) Result {
	var normalized []string
	for _, f := range fences {
		normalized = append(normalized, normalizeWS(f.Body))
	}

	var issues []Issue
	for i, s := range p.Slides {
		if !s.IsCodeSlide() {
			continue
		}
		for _, part := range codeParts(&s) {
			if part.lang == "text" || part.lang == "markdown" {
				continue
			}
			code := normalizeWS(part.code)
			if len(code) <= shortSnippetChars {
				continue
			}
			found := false
			for _, fence := range normalized {
				if fence == "" {
					continue
				}
				if strings.Contains(fence, code) || strings.Contains(code, fence) {
					found = true
					break
				}
			}
			if !found {
				issues = append(issues, Issue{Slide: i,
					Message: fmt.Sprintf("code not found in any source code block (starts with %q)", truncate(code, 50))})
			}
		}
	}
	return failed(issues)
}

type codePart struct {
	lang string
	code string
}

func codeParts(s *deck.Slide) []codePart {
	var parts []codePart
	if s.Code != "" {
		parts = append(parts, codePart{lang: s.Language, code: s.Code})
	}
	if s.Before != nil && s.Before.Code != "" {
		parts = append(parts, codePart{lang: s.Before.Language, code: s.Before.Code})
	}
	if s.After != nil && s.After.Code != "" {
		parts = append(parts, codePart{lang: s.After.Language, code: s.After.Code})
	}
	return parts
}

var tableSeparatorRe = regexp.MustCompile(`^\s*\|?[\s:|-]*-+[\s:|-]*\|?\s*$`)

// NoTables rejects raw markdown table syntax inside code slides: a line
// with at least two pipes immediately followed by a dash/pipe separator
// line.
func NoTables(p *deck.Presentation) Result {
	var issues []Issue
	for i, s := range p.Slides {
		if !s.IsCodeSlide() {
			continue
		}
		for _, body := range s.CodeBodies() {
			lines := strings.Split(body, "\n")
			for j := 0; j+1 < len(lines); j++ {
				if strings.Count(lines[j], "|") >= 2 &&
					strings.Contains(lines[j+1], "-") &&
					tableSeparatorRe.MatchString(lines[j+1]) {
					issues = append(issues, Issue{Slide: i,
						Message: "code contains raw markdown table syntax — distill tables into comparison slides"})
					break
				}
			}
		}
	}
	return failed(issues)
}

// TakeawayWords checks that takeaway bullets stay at 5 words or fewer.
func TakeawayWords(p *deck.Presentation) Result {
	var issues []Issue
	for i, s := range p.Slides {
		if s.Type != deck.TypeTakeaway {
			continue
		}
		for _, item := range s.Content {
			if n := len(strings.Fields(item)); n > maxWords {
				issues = append(issues, Issue{Slide: i,
					Message: fmt.Sprintf("takeaway %q has %d words (max %d, excess %d)", item, n, maxWords, n-maxWords)})
			}
		}
	}
	return failed(issues)
}

// ObjectiveWords checks that learning objectives stay at 5 words or fewer.
func ObjectiveWords(p *deck.Presentation) Result {
	var issues []Issue
	for _, obj := range p.Metadata.LearningObjectives {
		if n := len(strings.Fields(obj)); n > maxWords {
			issues = append(issues, Issue{Slide: -1,
				Message: fmt.Sprintf("learning objective %q has %d words (max %d, excess %d)", obj, n, maxWords, n-maxWords)})
		}
	}
	return failed(issues)
}

func normalizeWS(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
