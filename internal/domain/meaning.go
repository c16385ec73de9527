package domain

// Provenance labels carried in WordMeaning.Source. They are informational
// only and never drive resolution logic.
const (
	SourceWiktionary    = "Wiktionary"
	SourceDictionaryAPI = "Dictionary API"
	SourceManual        = "Manual Dictionary"
)

// WordMeaning is a resolved lookup result for a single word. The JSON shape
// is the static cache file format and the REST payload.
type WordMeaning struct {
	Word         string   `json:"word"`
	Meaning      string   `json:"meaning"`
	Etymology    string   `json:"etymology,omitempty"`
	Examples     []string `json:"examples,omitempty"`
	PartOfSpeech string   `json:"partOfSpeech,omitempty"`
	Source       string   `json:"source"`
}

// Clone returns a deep copy so cached values are never mutated by callers.
func (m *WordMeaning) Clone() *WordMeaning {
	if m == nil {
		return nil
	}
	c := *m
	if m.Examples != nil {
		c.Examples = append([]string(nil), m.Examples...)
	}
	return &c
}
