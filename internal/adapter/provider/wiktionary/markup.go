package wiktionary

import (
	"net/url"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var inflectionLink = cascadia.MustCompile(
	`.form-of-definition-link a[href^="/wiki/"], a.form-of-definition-link[href^="/wiki/"]`,
)

// sanitize strips tags, decodes entities and collapses whitespace.
// Returns "" when nothing readable remains.
func sanitize(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		default:
			b.WriteByte(' ')
		}
	}
}

// inflectionTarget returns the headword a "form of" definition points to,
// or "" when the definition is not an inflection pointer.
func inflectionTarget(markup string) string {
	if !strings.Contains(markup, "form-of-definition") {
		return ""
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return ""
	}

	for _, n := range nodes {
		link := inflectionLink.MatchFirst(n)
		if link == nil {
			continue
		}
		for _, a := range link.Attr {
			if a.Key == "href" {
				return targetFromHref(a.Val)
			}
		}
	}
	return ""
}

func targetFromHref(href string) string {
	target := strings.TrimPrefix(href, "/wiki/")
	if i := strings.IndexAny(target, "#?"); i >= 0 {
		target = target[:i]
	}
	if decoded, err := url.PathUnescape(target); err == nil {
		target = decoded
	}
	return strings.TrimSpace(strings.ReplaceAll(target, "_", " "))
}
