// Package docs carries the embedded documentation shown by `deckgen docs`.
package docs

import "fmt"

// Topic is one embedded documentation article.
type Topic struct {
	Name    string // slug passed on the command line
	Title   string
	Summary string // shown in the topic listing
	Content string // plain text, no ANSI
}

var byName = func() map[string]Topic {
	m := make(map[string]Topic, len(topics))
	for _, t := range topics {
		m[t.Name] = t
	}
	return m
}()

// All returns the topics in display order.
func All() []Topic {
	return topics
}

// Get returns the topic registered under name.
func Get(name string) (Topic, error) {
	t, ok := byName[name]
	if !ok {
		return Topic{}, fmt.Errorf("unknown topic %q — run 'deckgen docs' to list available topics", name)
	}
	return t, nil
}
