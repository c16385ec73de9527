// Package corpus loads the poem corpus file and splits poem text into
// word-like tokens.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/heartmarshall/nazm-backend/internal/domain"
)

// Corpus is the read-only set of published poems.
type Corpus struct {
	poems []domain.Poem
	byID  map[int]int
}

// Load reads a JSON array of poems from path.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: read %s: %w", path, err)
	}

	var poems []domain.Poem
	if err := json.Unmarshal(data, &poems); err != nil {
		return nil, fmt.Errorf("corpus: decode %s: %w", path, err)
	}

	return New(poems)
}

// New indexes poems by id. Duplicate ids are rejected.
func New(poems []domain.Poem) (*Corpus, error) {
	c := &Corpus{
		poems: make([]domain.Poem, len(poems)),
		byID:  make(map[int]int, len(poems)),
	}
	copy(c.poems, poems)
	sort.SliceStable(c.poems, func(i, j int) bool { return c.poems[i].ID < c.poems[j].ID })

	for i, p := range c.poems {
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("corpus: duplicate poem id %d", p.ID)
		}
		c.byID[p.ID] = i
	}
	return c, nil
}

// Poems returns the poems ordered by id. The slice must not be modified.
func (c *Corpus) Poems() []domain.Poem { return c.poems }

// Poem returns the poem with the given id or domain.ErrNotFound.
func (c *Corpus) Poem(id int) (domain.Poem, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Poem{}, fmt.Errorf("poem %d: %w", id, domain.ErrNotFound)
	}
	return c.poems[i], nil
}

func (c *Corpus) Len() int { return len(c.poems) }

// Words collects the distinct Devanagari and Roman tokens across every
// line of every poem, in both scripts. Roman tokens are lowercased. Both
// results are sorted.
func (c *Corpus) Words() (devanagari, roman []string) {
	devSeen := make(map[string]struct{})
	romSeen := make(map[string]struct{})

	for _, p := range c.poems {
		lines := make([]string, 0, len(p.Lines)+len(p.RomanizedLines))
		lines = append(lines, p.Lines...)
		lines = append(lines, p.RomanizedLines...)
		for _, line := range lines {
			for _, tok := range Tokenize(line) {
				switch {
				case IsDevanagari(tok):
					devSeen[tok] = struct{}{}
				case IsRoman(tok):
					romSeen[strings.ToLower(tok)] = struct{}{}
				}
			}
		}
	}

	return sortedKeys(devSeen), sortedKeys(romSeen)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
