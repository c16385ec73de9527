package domain

// Poem is a single entry of the poem corpus file.
type Poem struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Lines          []string `json:"lines"`
	Date           string   `json:"date,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	RomanizedTitle string   `json:"romanizedTitle,omitempty"`
	RomanizedLines []string `json:"romanizedLines,omitempty"`
}

// DisplayLines returns the lines to render for the given script. Poems
// without a romanized variant fall back to the Devanagari lines.
func (p Poem) DisplayLines(script Script) []string {
	if script == ScriptRoman && len(p.RomanizedLines) > 0 {
		return p.RomanizedLines
	}
	return p.Lines
}

// DisplayTitle mirrors DisplayLines for the title.
func (p Poem) DisplayTitle(script Script) string {
	if script == ScriptRoman && p.RomanizedTitle != "" {
		return p.RomanizedTitle
	}
	return p.Title
}
