package svgtemplate

import (
	"regexp"
	"strings"
)

// Declaration is a single "property: value" pair. Neither side is trimmed
// beyond the split, so stored spacing is reproduced verbatim.
type Declaration struct {
	Property string
	Value    string
}

// Declarations keeps properties in the order they first appeared.
type Declarations []Declaration

// Get returns the value of a property.
func (d Declarations) Get(property string) (string, bool) {
	for _, decl := range d {
		if decl.Property == property {
			return decl.Value, true
		}
	}
	return "", false
}

// Attributes renders the declarations as `key="value"` pairs separated by a space.
func (d Declarations) Attributes() string {
	parts := make([]string, 0, len(d))
	for _, decl := range d {
		parts = append(parts, decl.Property+`="`+decl.Value+`"`)
	}
	return strings.Join(parts, " ")
}

func (d Declarations) set(property, value string) Declarations {
	for i := range d {
		if d[i].Property == property {
			d[i].Value = value
			return d
		}
	}
	return append(d, Declaration{Property: property, Value: value})
}

// Rule binds a selector name (leading dots stripped) to its declarations.
type Rule struct {
	Selector     string
	Declarations Declarations
}

// Rules maps selector names to declarations. A selector seen twice keeps its
// first position and the body of its last occurrence; properties are not merged.
type Rules struct {
	order []string
	bySel map[string]Declarations
}

// Len reports the number of distinct selectors.
func (r Rules) Len() int { return len(r.order) }

// Get returns the declarations of a selector.
func (r Rules) Get(selector string) (Declarations, bool) {
	d, ok := r.bySel[selector]
	return d, ok
}

// Each returns the rules in selector order. The slices are copies.
func (r Rules) Each() []Rule {
	out := make([]Rule, 0, len(r.order))
	for _, sel := range r.order {
		decls := r.bySel[sel]
		cp := make(Declarations, len(decls))
		copy(cp, decls)
		out = append(out, Rule{Selector: sel, Declarations: cp})
	}
	return out
}

func (r *Rules) put(selector string, decls Declarations) {
	if r.bySel == nil {
		r.bySel = map[string]Declarations{}
	}
	if _, ok := r.bySel[selector]; !ok {
		r.order = append(r.order, selector)
	}
	r.bySel[selector] = decls
}

var declSepRe = regexp.MustCompile(`\s*;\s*`)

// ParseRules parses a flat stylesheet of single-class rules such as
// ".st0{fill:#FFF;}.st1{stroke:#000;}".
//
// Selectors only lose their leading dots; combinators, attribute selectors and
// pseudo-classes pass through as opaque names. Blocks without "{" and
// declarations without ":" are dropped silently.
func ParseRules(css string) Rules {
	var rules Rules

	for _, block := range strings.Split(css, "}") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		selectorPart, body, ok := strings.Cut(block, "{")
		if !ok {
			continue
		}

		selector := strings.TrimLeft(selectorPart, ".")
		rules.put(selector, parseDeclarations(body))
	}

	return rules
}

func parseDeclarations(body string) Declarations {
	decls := Declarations{}
	for _, seg := range declSepRe.Split(body, -1) {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		prop, value, ok := strings.Cut(seg, ":")
		if !ok {
			continue
		}
		decls = decls.set(prop, value)
	}
	return decls
}
