package svgtemplate

import (
	"regexp"
	"strings"
)

var stateClassRe = regexp.MustCompile(`(?i) class="st\d+"`)

// InlineRules copies each rule's declarations onto every element carrying
// exactly class="<selector>". The attributes are inserted right after the
// class attribute. Rules without declarations leave the markup unchanged.
func InlineRules(markup string, rules Rules) string {
	for _, rule := range rules.Each() {
		// An empty rule would insert a lone space after the class attribute
		// (`class="st0"  d=` with two spaces); it is skipped instead.
		if len(rule.Declarations) == 0 {
			continue
		}

		classAttr := `class="` + rule.Selector + `"`
		re := regexp.MustCompile(regexp.QuoteMeta(classAttr) + `([^>]*)`)

		prefix := classAttr + " " + rule.Declarations.Attributes()
		markup = re.ReplaceAllStringFunc(markup, func(m string) string {
			return prefix + strings.TrimPrefix(m, classAttr)
		})
	}
	return markup
}

// StripStateClasses removes every ` class="stNN"` attribute (case-insensitive).
// Other class names are kept.
func StripStateClasses(markup string) string {
	return stateClassRe.ReplaceAllString(markup, "")
}
