// Package registry reads the whitelist of visual-slide component names
// from the viewer's single source-of-truth declaration. The file is parsed
// fresh on every call so the whitelist always reflects what the viewer can
// actually render.
package registry

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	blockOpenRe = regexp.MustCompile(`const\s+SLIDE_COMPONENTS\s*(?::[^=]+)?=\s*\{`)
	entryRe     = regexp.MustCompile(`^\s*'?"?([A-Za-z][A-Za-z0-9]*)'?"?\s*:`)
)

// Components parses the viewer source at path and returns the component
// identifiers declared in its SLIDE_COMPONENTS map, in declaration order.
func Components(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading component registry: %w", err)
	}

	loc := blockOpenRe.FindStringIndex(string(data))
	if loc == nil {
		return nil, fmt.Errorf("no SLIDE_COMPONENTS declaration in %s", path)
	}

	var names []string
	depth := 1
	for _, line := range strings.Split(string(data)[loc[1]:], "\n") {
		if depth == 1 {
			if m := entryRe.FindStringSubmatch(line); m != nil {
				names = append(names, m[1])
			}
		}
		for _, r := range line {
			switch r {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					if len(names) == 0 {
						return nil, fmt.Errorf("SLIDE_COMPONENTS in %s declares no components", path)
					}
					return names, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("unterminated SLIDE_COMPONENTS declaration in %s", path)
}

// Contains reports whether name is an exact member of the whitelist. No
// fuzzy or case-insensitive matching.
func Contains(components []string, name string) bool {
	for _, c := range components {
		if c == name {
			return true
		}
	}
	return false
}
