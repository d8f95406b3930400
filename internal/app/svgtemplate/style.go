package svgtemplate

import (
	"regexp"
	"strings"
)

const (
	styleOpenMarker  = `<style type="text/css">`
	styleCloseMarker = `</style>`
)

var (
	styleBlockRe    = regexp.MustCompile(`(?is)<style\s+type="text/css">(.*?)</style>`)
	deprecatedCSSRe = regexp.MustCompile(`enable-background:\s*new\s*;`)
)

// ExtractStyle removes every <style type="text/css"> block from markup and
// returns the remaining markup (trimmed) with the text of the last block,
// wrapper tags included. The style is empty when no block is present.
func ExtractStyle(markup string) (rest string, style string) {
	rest = styleBlockRe.ReplaceAllStringFunc(markup, func(m string) string {
		style = m
		return ""
	})
	return strings.TrimSpace(rest), style
}

// RemoveDeprecatedCSS drops the obsolete "enable-background: new;" declaration
// emitted by older vector editors.
func RemoveDeprecatedCSS(style string) string {
	return deprecatedCSSRe.ReplaceAllString(style, "")
}

// StyleBody returns the stylesheet text between the literal style markers,
// trimmed. A missing opening marker keeps the text from the start, a missing
// closing marker keeps it to the end.
func StyleBody(style string) string {
	body := style
	if i := strings.Index(body, styleOpenMarker); i >= 0 {
		body = body[i+len(styleOpenMarker):]
	}
	if i := strings.LastIndex(body, styleCloseMarker); i >= 0 {
		body = body[:i]
	}
	return strings.TrimSpace(body)
}
