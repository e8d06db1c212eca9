package abifsm

import (
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// maxSuggestions bounds the fuzzy candidates attached to a KeyNotFoundError
const maxSuggestions = 5

// lookup is one step of a key resolution chain
type lookup func(key string) (*Fragment, bool)

// firstMatch tries each lookup in turn and returns the first hit
func firstMatch(key string, lookups ...lookup) (*Fragment, bool) {
	for _, l := range lookups {
		if f, ok := l(key); ok {
			return f, true
		}
	}
	return nil, false
}

// FQNamer resolves a name, slug, topic or topic prefix to a table name,
// optionally qualified with a schema.
type FQNamer struct {
	set    *ABISet
	schema string
}

// NewFQNamer creates a resolver over set. An empty schema leaves names unqualified.
func NewFQNamer(set *ABISet, schema string) *FQNamer {
	return &FQNamer{set: set, schema: schema}
}

// Resolve looks key up by name or slug first, then by topic prefix
func (n *FQNamer) Resolve(key string) (string, error) {
	if key == "" {
		return "", KeyNotFoundError{Key: key}
	}

	event, ok := firstMatch(key,
		func(k string) (*Fragment, bool) { return n.set.GetByName(k, 0) },
		n.set.GetByTopic,
	)
	if !ok {
		return "", KeyNotFoundError{Key: key, Suggestions: n.suggest(key)}
	}

	table, err := n.set.PGTable(event, true)
	if err != nil {
		return "", err
	}
	if n.schema != "" {
		return n.schema + "." + table, nil
	}
	return table, nil
}

// suggest returns the closest event slugs to key
func (n *FQNamer) suggest(key string) []string {
	slugs := lo.Uniq(lo.FilterMap(n.set.Events(), func(f *Fragment, _ int) (string, bool) {
		return f.Slug()
	}))
	matches := fuzzy.Find(key, slugs)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	return lo.Map(matches, func(m fuzzy.Match, _ int) string { return m.Str })
}
