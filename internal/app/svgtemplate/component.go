package svgtemplate

import "strings"

// Component is a rendered, parameterized SVG template. It is built once by
// NewComponent and never mutated afterwards.
type Component struct {
	id           string
	inner        string
	style        string
	rules        Rules
	placeholders Placeholders
}

// NewComponent runs the full pipeline over raw template text:
// normalize, strip envelope, extract style, flatten paths, parse rules,
// inline rules, substitute placeholders, strip stNN classes.
//
// Empty raw text yields a component whose Render is the bare envelope.
func NewComponent(id, raw string, values map[string]string) *Component {
	markup := StripEnvelope(NormalizeTemplate(raw))

	markup, style := ExtractStyle(markup)
	style = RemoveDeprecatedCSS(style)

	markup = NormalizePaths(markup)

	rules := ParseRules(StyleBody(style))
	placeholders := PlaceholdersFrom(values)

	markup = InlineRules(markup, rules)
	markup = ReplacePlaceholders(markup, placeholders)
	markup = StripStateClasses(markup)

	return &Component{
		id:           id,
		inner:        markup,
		style:        style,
		rules:        rules,
		placeholders: placeholders,
	}
}

func (c *Component) ID() string { return c.id }

// InnerSVG returns the transformed markup without the envelope.
func (c *Component) InnerSVG() string { return c.inner }

// StyleElement returns the extracted <style> block, deprecated declarations removed.
func (c *Component) StyleElement() string { return c.style }

// Rules returns the parsed stylesheet.
func (c *Component) Rules() Rules { return c.rules }

// Placeholders returns a copy of the placeholders that were applied.
func (c *Component) Placeholders() Placeholders {
	out := make(Placeholders, len(c.placeholders))
	for k, v := range c.placeholders {
		out[k] = v
	}
	return out
}

// Unresolved lists the %%KEY%% tokens still present in the inner markup.
func (c *Component) Unresolved() []string {
	return unresolvedTokens(c.inner)
}

func (c *Component) BackgroundRectangle() string { return BackgroundRectangle }

// Render wraps the inner markup in the fixed envelope.
func (c *Component) Render() string { return Wrap(c.inner) }

// RenderWithBackground renders with the background rectangle as first layer.
func (c *Component) RenderWithBackground() string {
	return Wrap(BackgroundRectangle + c.inner)
}

func (c *Component) String() string { return c.Render() }

func unresolvedTokens(markup string) []string {
	var out []string
	seen := map[string]bool{}
	rest := markup
	for {
		start := strings.Index(rest, "%%")
		if start == -1 {
			return out
		}
		rest = rest[start+2:]

		end := strings.Index(rest, "%%")
		if end == -1 {
			return out
		}

		key := rest[:end]
		if key != "" && !strings.ContainsAny(key, " \t\r\n<>\"") {
			tok := Token(key)
			if !seen[tok] {
				seen[tok] = true
				out = append(out, tok)
			}
			rest = rest[end+2:]
		}
	}
}
