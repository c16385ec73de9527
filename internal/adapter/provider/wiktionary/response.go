package wiktionary

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// apiEntry is one usage entry from the REST definition endpoint. The endpoint
// returns an object keyed by language code, each holding a list of entries.
type apiEntry struct {
	Word         string          `json:"word"`
	Language     string          `json:"language"`
	PartOfSpeech string          `json:"partOfSpeech"`
	Etymology    string          `json:"etymology"`
	Definitions  []apiDefinition `json:"definitions"`
}

type apiDefinition struct {
	Definition string   `json:"definition"`
	Examples   []string `json:"examples"`
}

// decodeEntries flattens the language-keyed payload into a single list,
// keeping document order of both keys and entries. Values that are not
// arrays and items that are not entry objects are skipped.
func decodeEntries(data []byte) ([]apiEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var entries []apiEntry
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}

		var items []json.RawMessage
		if json.Unmarshal(raw, &items) != nil {
			continue
		}
		for _, item := range items {
			item = bytes.TrimSpace(item)
			if len(item) == 0 || item[0] != '{' {
				continue
			}
			var e apiEntry
			if json.Unmarshal(item, &e) != nil {
				continue
			}
			entries = append(entries, e)
		}
	}
	return entries, nil
}
