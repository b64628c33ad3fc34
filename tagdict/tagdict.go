// Package tagdict provides the auxiliary tag dictionary consumed by the
// rule-chain deinflection strategy: a map from dictionary-form words to the
// short part-of-speech tags (v1, v5k, vs, adj-i, …) that gate which
// conjugation rules may produce them.
package tagdict

import (
	"fmt"
	"os"
	"strings"

	jmdict "github.com/yomidevs/jmdict-go"
)

// Dict is an in-memory word → tags index. Immutable after construction,
// safe for concurrent lookups.
type Dict struct {
	tags map[string][]string
}

// New builds a Dict from an explicit word → tags map. Used directly in
// tests and wherever JMdict is not available.
func New(entries map[string][]string) *Dict {
	tags := make(map[string][]string, len(entries))
	for w, ts := range entries {
		tags[w] = append([]string(nil), ts...)
	}
	return &Dict{tags: tags}
}

// LoadJMdict parses a JMdict XML file and indexes every kanji expression
// and reading under the entry's short POS tags.
func LoadJMdict(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open jmdict: %w", err)
	}
	defer f.Close()

	dict, entities, err := jmdict.LoadJmdict(f)
	if err != nil {
		return nil, fmt.Errorf("load jmdict: %w", err)
	}
	// the parser expands DTD entities; invert the entity table to recover
	// the short tag names
	shortTag := make(map[string]string, len(entities))
	for name, expansion := range entities {
		shortTag[expansion] = name
	}

	tags := make(map[string][]string)
	add := func(word string, ts []string) {
		if word == "" || len(ts) == 0 {
			return
		}
		tags[word] = mergeTags(tags[word], ts)
	}
	for _, entry := range dict.Entries {
		var ts []string
		for _, sense := range entry.Sense {
			for _, pos := range sense.PartsOfSpeech {
				if t, ok := shortTag[pos]; ok {
					ts = append(ts, t)
				} else {
					ts = append(ts, pos)
				}
			}
		}
		for _, k := range entry.Kanji {
			add(k.Expression, ts)
		}
		for _, r := range entry.Readings {
			add(r.Reading, ts)
		}
	}
	return &Dict{tags: tags}, nil
}

func mergeTags(dst, src []string) []string {
	for _, t := range src {
		found := false
		for _, d := range dst {
			if d == t {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, t)
		}
	}
	return dst
}

// Tags returns the short POS tags recorded for word.
func (d *Dict) Tags(word string) ([]string, bool) {
	ts, ok := d.tags[word]
	return ts, ok
}

// Has reports whether word exists in the dictionary at all.
func (d *Dict) Has(word string) bool {
	_, ok := d.tags[word]
	return ok
}

// Len returns the number of indexed words.
func (d *Dict) Len() int { return len(d.tags) }

// VerbTags reports whether the word carries any verb or adjective tag,
// i.e. could be the base form of a conjugated word.
func (d *Dict) VerbTags(word string) []string {
	ts, ok := d.tags[word]
	if !ok {
		return nil
	}
	var out []string
	for _, t := range ts {
		if strings.HasPrefix(t, "v") || strings.HasPrefix(t, "adj") {
			out = append(out, t)
		}
	}
	return out
}
