// Package manual is the hand-curated dictionary consulted after the remote
// sources. It covers poetic and idiomatic words under both scripts.
package manual

import (
	"context"
	"sort"
	"strings"

	"github.com/heartmarshall/nazm-backend/internal/domain"
)

// Entry is one curated meaning.
type Entry struct {
	Meaning      string
	PartOfSpeech string
}

// Optional Devanagari marks ignored by the loose index:
// nukta, chandrabindu, anusvara, virama.
var looseReplacer = strings.NewReplacer(
	"़", "",
	"ँ", "",
	"ं", "",
	"्", "",
	" ", "",
)

// inflections lists suffix rewrites tried when the word itself is missing:
// oblique plural, plural, feminine, masculine and oblique endings.
var inflections = []struct {
	suffix       string
	replacements []string
}{
	{"ों", []string{"", "ा", "ी"}},
	{"ें", []string{"", "ा"}},
	{"ी", []string{"", "ा"}},
	{"ा", []string{"", "ी"}},
	{"े", []string{"", "ा"}},
}

// Dictionary is an immutable curated word list.
type Dictionary struct {
	entries map[string]Entry
	loose   map[string]string
}

// New builds a Dictionary. Keys are normalized with domain.NormalizeKey;
// blank keys and blank meanings are dropped.
func New(entries map[string]Entry) *Dictionary {
	d := &Dictionary{
		entries: make(map[string]Entry, len(entries)),
		loose:   make(map[string]string, len(entries)),
	}

	keys := make([]string, 0, len(entries))
	for k, e := range entries {
		key := domain.NormalizeKey(k)
		if key == "" || strings.TrimSpace(e.Meaning) == "" {
			continue
		}
		if _, dup := d.entries[key]; !dup {
			keys = append(keys, key)
		}
		d.entries[key] = e
	}

	sort.Strings(keys)
	for _, key := range keys {
		lk := looseKey(key)
		if _, taken := d.loose[lk]; !taken {
			d.loose[lk] = key
		}
	}
	return d
}

// Default returns the built-in curated dictionary.
func Default() *Dictionary {
	return New(builtin)
}

// Name returns the provenance label.
func (d *Dictionary) Name() string { return domain.SourceManual }

// Len returns the number of distinct keys.
func (d *Dictionary) Len() int { return len(d.entries) }

// Lookup never fails; a miss is nil, nil. The returned Word is the query as
// given, not the matched key.
func (d *Dictionary) Lookup(_ context.Context, word string) (*domain.WordMeaning, error) {
	key := domain.NormalizeKey(word)
	if key == "" {
		return nil, nil
	}

	for _, v := range variations(key) {
		if e, ok := d.entries[v]; ok {
			return d.meaning(word, e), nil
		}
		if match, ok := d.loose[looseKey(v)]; ok {
			return d.meaning(word, d.entries[match]), nil
		}
	}
	return nil, nil
}

func (d *Dictionary) meaning(word string, e Entry) *domain.WordMeaning {
	return &domain.WordMeaning{
		Word:         strings.TrimSpace(word),
		Meaning:      e.Meaning,
		PartOfSpeech: e.PartOfSpeech,
		Source:       domain.SourceManual,
	}
}

func looseKey(key string) string {
	return looseReplacer.Replace(key)
}

// variations returns key followed by its inflection rewrites, deduplicated.
func variations(key string) []string {
	out := []string{key}
	seen := map[string]struct{}{key: {}}
	for _, inf := range inflections {
		stem, ok := strings.CutSuffix(key, inf.suffix)
		if !ok || stem == "" {
			continue
		}
		for _, r := range inf.replacements {
			v := stem + r
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
