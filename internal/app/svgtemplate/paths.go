package svgtemplate

import (
	"regexp"
	"strings"
)

// pathTagRe matches self-closing <path .../> elements; [^>] also spans newlines.
var pathTagRe = regexp.MustCompile(`<path[^>]*/>`)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// NormalizePaths flattens line breaks inside self-closing path elements to a
// single space each. Markup outside those tags is left untouched.
func NormalizePaths(markup string) string {
	return pathTagRe.ReplaceAllStringFunc(markup, lineBreaks.Replace)
}
