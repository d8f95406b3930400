package svgtemplate

import (
	"regexp"
	"strings"
)

const (
	OpenTag  = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1000 1000">`
	CloseTag = `</svg>`

	// BackgroundRectangle is an optional decorative layer callers may prepend
	// to the inner markup.
	BackgroundRectangle = `<rect x="0" y="0" width="1000" height="1000" fill="#FF5400"/>`
)

var (
	svgOpenRe  = regexp.MustCompile(`<svg[^>]*>`)
	svgCloseRe = regexp.MustCompile(`</svg>`)
)

// NormalizeTemplate removes every tab character and trims surrounding whitespace.
func NormalizeTemplate(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, "\t", ""))
}

// StripEnvelope removes the first <svg ...> opening tag and the first </svg>
// closing tag. Missing tags are tolerated.
func StripEnvelope(s string) string {
	s = removeFirst(svgOpenRe, s)
	return removeFirst(svgCloseRe, s)
}

// Wrap places inner markup inside the fixed 1000x1000 envelope.
func Wrap(inner string) string {
	var b strings.Builder
	b.Grow(len(OpenTag) + len(inner) + len(CloseTag))
	b.WriteString(OpenTag)
	b.WriteString(inner)
	b.WriteString(CloseTag)
	return b.String()
}

func removeFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}
