package svgtemplate

import (
	"strings"
	"testing"
)

func TestExtractStyleRemovesBlock(t *testing.T) {
	in := "<style type=\"text/css\">\n.st0{fill:#FFF;}\n</style>\n<path class=\"st0\"/>"
	markup, style := ExtractStyle(in)

	if markup != `<path class="st0"/>` {
		t.Fatalf("unexpected markup: %q", markup)
	}
	if style != "<style type=\"text/css\">\n.st0{fill:#FFF;}\n</style>" {
		t.Fatalf("unexpected style: %q", style)
	}
}

func TestExtractStyleCaseInsensitive(t *testing.T) {
	markup, style := ExtractStyle(`<g/><STYLE type="text/css">.a{b:c}</STYLE>`)
	if markup != "<g/>" {
		t.Fatalf("unexpected markup: %q", markup)
	}
	if style == "" {
		t.Fatalf("expected style to be captured")
	}
}

func TestExtractStyleNoBlock(t *testing.T) {
	markup, style := ExtractStyle("  <g/>\n")
	if markup != "<g/>" {
		t.Fatalf("expected trimmed markup, got %q", markup)
	}
	if style != "" {
		t.Fatalf("expected empty style, got %q", style)
	}
}

func TestRemoveDeprecatedCSS(t *testing.T) {
	in := `.st0{enable-background:new    ;fill:red;}.st1{enable-background: new;}`
	got := RemoveDeprecatedCSS(in)
	if strings.Contains(got, "enable-background") {
		t.Fatalf("expected enable-background removed, got %q", got)
	}
	if got != `.st0{fill:red;}.st1{}` {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestStyleBody(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"<style type=\"text/css\">\n .a{b:c}\n</style>", ".a{b:c}"},
		{"", ""},
		{".a{b:c}", ".a{b:c}"},
	}
	for _, c := range cases {
		if got := StyleBody(c.in); got != c.want {
			t.Errorf("StyleBody(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
