// Package glossary holds the translation table used to annotate poem lines:
// Devanagari headwords with a meaning and an optional Roman spelling, plus
// the reverse Roman index built once at construction.
package glossary

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/heartmarshall/nazm-backend/internal/domain"
)

// Translation is the glossary value for one headword.
type Translation struct {
	Meaning string `json:"meaning"`
	Roman   string `json:"roman,omitempty"`
}

// Collision records a Roman spelling claimed by more than one headword.
// The first headword in sorted order keeps the spelling.
type Collision struct {
	Roman   string
	Kept    string
	Skipped string
}

// Table is immutable after construction and safe for concurrent use.
type Table struct {
	entries    map[string]Translation
	reverse    map[string]string
	headwords  []string
	romanKeys  []string
	collisions []Collision
}

// New builds a Table from headword entries. The input map is copied.
func New(entries map[string]Translation) *Table {
	t := &Table{
		entries: make(map[string]Translation, len(entries)),
		reverse: make(map[string]string, len(entries)),
	}
	for headword, tr := range entries {
		if headword == "" {
			continue
		}
		t.entries[headword] = tr
		t.headwords = append(t.headwords, headword)
	}
	sort.Strings(t.headwords)

	for _, headword := range t.headwords {
		roman := strings.ToLower(t.entries[headword].Roman)
		if roman == "" {
			continue
		}
		if kept, ok := t.reverse[roman]; ok {
			t.collisions = append(t.collisions, Collision{Roman: roman, Kept: kept, Skipped: headword})
			continue
		}
		t.reverse[roman] = headword
		t.romanKeys = append(t.romanKeys, roman)
	}
	sort.Strings(t.romanKeys)

	return t
}

// Default returns the table built from the glossary bundled with the poems.
func Default() *Table {
	return New(builtin)
}

// LoadFile reads a JSON object of headword -> {meaning, roman}.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glossary: read %s: %w", path, err)
	}

	var entries map[string]Translation
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("glossary: decode %s: %w", path, err)
	}

	var fieldErrs []domain.FieldError
	for headword, tr := range entries {
		if strings.TrimSpace(tr.Meaning) == "" {
			fieldErrs = append(fieldErrs, domain.FieldError{Field: headword, Message: "meaning is empty"})
		}
	}
	if len(fieldErrs) > 0 {
		sort.Slice(fieldErrs, func(i, j int) bool { return fieldErrs[i].Field < fieldErrs[j].Field })
		return nil, fmt.Errorf("glossary: %s: %w", path, domain.NewValidationErrors(fieldErrs))
	}

	return New(entries), nil
}

// Lookup finds the translation for a word. Devanagari words must match a
// headword exactly; Roman words are lowercased and resolved through the
// reverse index first.
func (t *Table) Lookup(word string, script domain.Script) (Translation, bool) {
	headword := word
	if script == domain.ScriptRoman {
		var ok bool
		headword, ok = t.reverse[strings.ToLower(word)]
		if !ok {
			return Translation{}, false
		}
	}
	tr, ok := t.entries[headword]
	return tr, ok
}

// Headword returns the Devanagari headword registered for a Roman spelling.
func (t *Table) Headword(roman string) (string, bool) {
	h, ok := t.reverse[strings.ToLower(roman)]
	return h, ok
}

// Headwords returns all headwords in sorted order. The slice must not be modified.
func (t *Table) Headwords() []string { return t.headwords }

// RomanKeys returns the lowercased Roman spellings in sorted order.
// The slice must not be modified.
func (t *Table) RomanKeys() []string { return t.romanKeys }

func (t *Table) Len() int { return len(t.entries) }

func (t *Table) Collisions() []Collision { return t.collisions }
