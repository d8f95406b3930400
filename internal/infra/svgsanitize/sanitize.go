package svgsanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy

	canonicalOnce sync.Once
	canonical     *strings.Replacer
)

var shapeElements = []string{
	"path", "circle", "rect", "line", "polyline", "polygon", "ellipse", "text", "tspan", "g", "use",
}

// containers may legitimately appear without attributes.
var containers = []string{"g", "defs", "text", "tspan", "title", "desc"}

var presentationAttrs = []string{
	"id", "d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2", "dx", "dy",
	"points", "rx", "ry", "width", "height", "transform", "opacity",
	"fill", "fill-opacity", "fill-rule", "clip-rule", "clip-path",
	"stroke", "stroke-width", "stroke-linecap", "stroke-linejoin", "stroke-miterlimit",
	"stroke-dasharray", "stroke-dashoffset", "stroke-opacity",
	"font-family", "font-size", "font-weight", "font-style", "letter-spacing",
	"text-anchor", "dominant-baseline", "class",
}

var gradientAttrs = []string{
	"id", "x1", "y1", "x2", "y2", "cx", "cy", "r", "fx", "fy",
	"gradientUnits", "gradientTransform", "spreadMethod", "href", "xlink:href",
}

// SVG is case-sensitive but bluemonday lowercases every element and
// attribute name it emits. These are restored after sanitizing.
var camelCaseElements = []string{"clipPath", "linearGradient", "radialGradient"}

var camelCaseAttrs = []string{"clipPathUnits", "gradientUnits", "gradientTransform", "spreadMethod"}

// Inner sanitizes inner SVG markup (no envelope): scripts, event handlers
// and foreign elements are removed. Empty input stays empty.
func Inner(markup string) string {
	trimmed := strings.TrimSpace(markup)
	if trimmed == "" {
		return ""
	}
	out := sanitizer().Sanitize(trimmed)
	return strings.TrimSpace(restoreCase().Replace(out))
}

// Filter returns Inner when enabled and nil otherwise, for svgtemplate.Compose.
func Filter(enabled bool) func(string) string {
	if !enabled {
		return nil
	}
	return Inner
}

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.StrictPolicy()

		// href="#id" references are relative URLs.
		p.AllowRelativeURLs(true)

		p.AllowElements(shapeElements...)
		p.AllowNoAttrs().OnElements(containers...)

		for _, el := range shapeElements {
			p.AllowAttrs(presentationAttrs...).OnElements(el)
		}

		p.AllowAttrs("href", "xlink:href").OnElements("use")
		p.AllowAttrs("id", "clipPathUnits").OnElements("clipPath")
		p.AllowAttrs("id").OnElements("defs")
		p.AllowAttrs(gradientAttrs...).OnElements("linearGradient", "radialGradient")
		p.AllowAttrs("offset", "stop-color", "stop-opacity").OnElements("stop")

		policy = p
	})
	return policy
}

func restoreCase() *strings.Replacer {
	canonicalOnce.Do(func() {
		var pairs []string
		for _, name := range camelCaseElements {
			lower := strings.ToLower(name)
			pairs = append(pairs,
				"<"+lower, "<"+name,
				"</"+lower+">", "</"+name+">",
			)
		}
		for _, name := range camelCaseAttrs {
			pairs = append(pairs, " "+strings.ToLower(name)+"=", " "+name+"=")
		}
		canonical = strings.NewReplacer(pairs...)
	})
	return canonical
}
