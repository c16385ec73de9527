package domain

import "fmt"

// Script selects which rendering of a poem line is being processed.
type Script string

const (
	ScriptDevanagari Script = "devanagari"
	ScriptRoman      Script = "roman"
)

func (s Script) String() string { return string(s) }

func (s Script) IsValid() bool {
	switch s {
	case ScriptDevanagari, ScriptRoman:
		return true
	}
	return false
}

// ParseScript converts user input into a Script. An empty string selects
// Devanagari, the script poems are authored in.
func ParseScript(s string) (Script, error) {
	if s == "" {
		return ScriptDevanagari, nil
	}
	script := Script(s)
	if !script.IsValid() {
		return "", NewValidationError("script", fmt.Sprintf("unknown script %q", s))
	}
	return script, nil
}
