package docs

var topics = []Topic{
	{
		Name:    "schema",
		Title:   "Presentation schema",
		Summary: "The slide-deck JSON document shape",
		Content: `
Presentation schema
===================

A presentation is a single JSON document:

  {
    "metadata": {
      "title": "...",
      "lessonId": "...",
      "estimatedDuration": "...",
      "learningObjectives": ["...", ...]
    },
    "slides": [ ... ]
  }

Each slide is tagged with a "type" field, one of:

  title            title + subtitle, opens the deck
  concept          title + 3-5 content bullets
  code             language + code + caption
  codeComparison   before/after code blocks + caption
  comparison       left/right sides, each with label + 3-5 bullets
  marketingReality metaphor/reality sides, same shape as comparison
  visual           a named viewer component + caption
  codeExecution    code + its captured output
  takeaway         closing bullets, each 5 words or fewer

Decks should run 8-15 slides. That bound is a guideline: decks outside it
are published with a warning, not rejected.

Artifacts are written pretty-printed with 2-space indentation and a
trailing newline, in two byte-identical copies (working and static).
`,
	},
	{
		Name:    "validators",
		Title:   "Validator battery",
		Summary: "The nine checks every generated deck passes through",
		Content: `
Validator battery
=================

Every generated deck runs through all nine validators; nothing
short-circuits, so one run reports every problem at once.

Warnings (lint checks — published, logged, never blocking):

  1. marker coverage   every [VISUAL_COMPONENT: X] marker in the lesson
                       should have a matching visual slide
  2. comparison order  keyword heuristic that catches reversed good/bad
                       sides in comparison slides

Fatal checks (the deck is still published for inspection, but the lesson
is reported failed and the process exits non-zero):

  3. registry          visual components must exist in the viewer registry
  4. content length    every content array has 3-5 items (title exempt)
  5. prompt placement  prompt examples live in code slides with language
                       text/markdown, never as concept/comparison bullets
  6. code provenance   non-prompt code must appear verbatim (whitespace-
                       normalized, excerpting allowed) in a source fence
  7. no tables         code slides must not embed markdown table syntax
  8. takeaway words    takeaway bullets are 5 words or fewer
  9. objective words   learning objectives are 5 words or fewer

Publication is unconditional by design: a failing artifact on disk can be
inspected; a rejected-and-discarded one cannot.
`,
	},
	{
		Name:    "manifest",
		Title:   "Manifest semantics",
		Summary: "How concurrent runs share the manifest file",
		Content: `
Manifest semantics
==================

manifest.json maps each lesson's relative path to its artifact record
(url, slide count, duration, title, generation time, run id). It is
mirrored to the static publish directory.

Updates are merge-on-write: a run reads the manifest at start, tracks only
the keys it generates, then re-reads the file immediately before the final
write and overlays just its own keys. Two interleaved runs touching
different lessons therefore never clobber each other.

Known limitation: if two runs generate the same lesson, the last writer
wins for that key. There is no conflict detection on identical keys.

Writes go through a temp-file-and-rename so a crash mid-write never leaves
a truncated manifest.
`,
	},
	{
		Name:    "config",
		Title:   "Configuration",
		Summary: ".deckgen/config.yaml keys and defaults",
		Content: `
Configuration
=============

deckgen looks for .deckgen/config.yaml walking up from the current
directory. Keys:

  name               project name (required)
  content-dir        lesson markdown root (required)
  registry-file      viewer source declaring SLIDE_COMPONENTS (required)
  output-dir         working artifact dir    (default public/presentations)
  static-dir         mirrored publish dir    (default static/presentations)
  model              opus | sonnet | haiku   (default sonnet)
  timeout-minutes    generator wall clock    (default 15, 0 disables)
  min-content-chars  skip threshold          (default 100)

Relative paths resolve against the project root. The component registry is
re-read from registry-file on every run, never cached, so the whitelist
always matches what the viewer can render.
`,
	},
	{
		Name:    "contract",
		Title:   "Generator contract",
		Summary: "What the external generative process is trusted with (nothing)",
		Content: `
Generator contract
==================

The generator is an external claude process run in print mode, restricted
to file-writing tools, with the full instruction text on stdin. The
instructions tell it where to write the artifact; there is no structured
side channel for the output path. That in-prompt path contract is the
weakest link in the pipeline: a process can exit zero having written
nothing, or having written to the wrong place.

deckgen therefore trusts nothing:

  - any stale artifact is deleted before the generator starts
  - a non-zero exit aborts the lesson with the captured output
  - after a clean exit the artifact must exist, must parse as JSON, and
    must carry metadata and slides
  - the file is rewritten canonically so reruns diff predictably
  - the full validator battery runs regardless of what the prompt asked

A configurable timeout bounds the otherwise unbounded subprocess wait;
timeouts are reported as their own failure kind.
`,
	},
}
