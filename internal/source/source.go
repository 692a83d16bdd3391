package source

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// reservedName is the per-module configuration file that lives alongside
// lesson markdown and must never be treated as a lesson.
const reservedName = "module.yaml"

// Document is one unit of lesson content. It is read once per run and
// never mutated by the pipeline.
type Document struct {
	Path    string // absolute path
	RelPath string // path relative to the content root, manifest key
}

// DisplayName returns the human-readable lesson name derived from the
// relative path: directory separators become " / ", the extension is
// dropped.
func (d Document) DisplayName() string {
	name := strings.TrimSuffix(d.RelPath, filepath.Ext(d.RelPath))
	return strings.ReplaceAll(name, string(filepath.Separator), " / ")
}

// Read returns the raw markdown text of the document.
func (d Document) Read() (string, error) {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Discover walks contentDir recursively and returns every markdown file,
// excluding the reserved module config filename, sorted by relative path
// so batch runs are reproducible.
func Discover(contentDir string) ([]Document, error) {
	var docs []Document
	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".mdx" {
			return nil
		}
		if filepath.Base(path) == reservedName {
			return nil
		}
		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		docs = append(docs, Document{Path: path, RelPath: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering lessons in %s: %w", contentDir, err)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].RelPath < docs[j].RelPath })
	if len(docs) == 0 {
		return nil, fmt.Errorf("no lesson markdown found under %s", contentDir)
	}
	return docs, nil
}

// SelectFile returns the single document whose relative path matches
// exactly. No match is a fatal selection error.
func SelectFile(docs []Document, relPath string) ([]Document, error) {
	for _, d := range docs {
		if d.RelPath == relPath || d.RelPath == filepath.Clean(relPath) {
			return []Document{d}, nil
		}
	}
	return nil, fmt.Errorf("no lesson matches --file %q", relPath)
}

// SelectModule returns every document whose relative path starts with the
// given directory prefix. An empty result is a fatal selection error.
func SelectModule(docs []Document, prefix string) ([]Document, error) {
	prefix = filepath.Clean(prefix)
	var selected []Document
	for _, d := range docs {
		if d.RelPath == prefix || strings.HasPrefix(d.RelPath, prefix+string(filepath.Separator)) {
			selected = append(selected, d)
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no lessons match --module %q", prefix)
	}
	return selected, nil
}
