package svgtemplate

import (
	"regexp"
	"sort"
	"strings"
)

var placeholderKeyRe = regexp.MustCompile(`^ST\d+$`)

// Placeholders maps a %%KEY%% token to its substitution value.
type Placeholders map[string]string

// Token wraps a key in the placeholder delimiters.
func Token(key string) string {
	return "%%" + key + "%%"
}

// PlaceholdersFrom keeps only the keys matching ST<digits>; other keys are ignored.
func PlaceholdersFrom(values map[string]string) Placeholders {
	out := Placeholders{}
	for k, v := range values {
		if placeholderKeyRe.MatchString(k) {
			out[Token(k)] = v
		}
	}
	return out
}

// Tokens returns the placeholder tokens in sorted order.
func (p Placeholders) Tokens() []string {
	tokens := make([]string, 0, len(p))
	for tok := range p {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	return tokens
}

// ReplacePlaceholders substitutes every literal occurrence of each token, in
// sorted token order. Values are inserted verbatim; tokens without an entry
// stay in the markup.
func ReplacePlaceholders(markup string, p Placeholders) string {
	for _, tok := range p.Tokens() {
		markup = strings.ReplaceAll(markup, tok, p[tok])
	}
	return markup
}
