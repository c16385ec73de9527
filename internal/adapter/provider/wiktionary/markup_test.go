package wiktionary

import "testing"

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "heart", "heart"},
		{"tags", `<a href="/wiki/heart">heart</a> or <b>mind</b>`, "heart or mind"},
		{"entities", "a&amp;b&nbsp;&quot;c&quot; &#39;d&#39; &lt;e&gt;", `a&b "c" 'd' <e>`},
		{"whitespace", "  deep\n\t sea  ", "deep sea"},
		{"only tags", "<span></span>", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := sanitize(tt.in); got != tt.want {
				t.Errorf("sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestInflectionTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			name:   "nested link",
			markup: `<span class="form-of-definition use-with-mention">oblique plural of <span class="form-of-definition-link"><i class="Deva mention" lang="hi"><a rel="mw:WikiLink" href="/wiki/%E0%A4%A6%E0%A4%BF%E0%A4%B2#Hindi" title="दिल">दिल</a></i></span></span>`,
			want:   "दिल",
		},
		{
			name:   "link carries class",
			markup: `<span class="form-of-definition">plural of <a class="form-of-definition-link" href="/wiki/sagar_athah?x=1">sagar athah</a></span>`,
			want:   "sagar athah",
		},
		{
			name:   "not an inflection",
			markup: `<a href="/wiki/heart">heart</a>`,
			want:   "",
		},
		{
			name:   "marker without link",
			markup: `<span class="form-of-definition">plural</span>`,
			want:   "",
		},
		{
			name:   "external link ignored",
			markup: `<span class="form-of-definition-link"><a href="https://example.com/x">x</a></span>`,
			want:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := inflectionTarget(tt.markup); got != tt.want {
				t.Errorf("inflectionTarget() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeEntries_KeepsDocumentOrder(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"ur": [{"language": "Urdu", "partOfSpeech": "Noun"}],
		"hi": [{"language": "Hindi"}, 5, "skip", {"language": "Hindi", "partOfSpeech": "Verb"}],
		"meta": {"ignored": true}
	}`)

	entries, err := decodeEntries(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Urdu", "Hindi", "Hindi"}
	if len(entries) != len(want) {
		t.Fatalf("len(entries) = %d, want %d", len(entries), len(want))
	}
	for i, lang := range want {
		if entries[i].Language != lang {
			t.Errorf("entries[%d].Language = %q, want %q", i, entries[i].Language, lang)
		}
	}
	if entries[2].PartOfSpeech != "Verb" {
		t.Errorf("entries[2].PartOfSpeech = %q", entries[2].PartOfSpeech)
	}
}

func TestDecodeEntries_RejectsNonObject(t *testing.T) {
	t.Parallel()

	if _, err := decodeEntries([]byte(`[1,2]`)); err == nil {
		t.Fatal("expected error for array payload")
	}
}
