package svgtemplate

import (
	"strings"
	"testing"
)

func TestCompose_WithoutFilterMatchesRender(t *testing.T) {
	c := NewComponent("c", `<svg><rect class="x"/></svg>`, nil)
	m := NewModule("m", `<svg><g/></svg>`)

	for _, r := range []Renderer{c, m} {
		if got := Compose(r, false, nil); got != r.Render() {
			t.Fatalf("Compose(bg=false) = %q, want %q", got, r.Render())
		}
		if got := Compose(r, true, nil); got != r.RenderWithBackground() {
			t.Fatalf("Compose(bg=true) = %q, want %q", got, r.RenderWithBackground())
		}
	}
}

func TestCompose_FilterRunsBeforeBackground(t *testing.T) {
	m := NewModule("m", `<svg><g/></svg>`)

	var seen string
	got := Compose(m, true, func(s string) string {
		seen = s
		return strings.ToUpper(s)
	})

	if seen != "<g/>" {
		t.Fatalf("filter saw %q, want inner markup only", seen)
	}
	want := OpenTag + BackgroundRectangle + "<G/>" + CloseTag
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
