package svgtemplate

import "testing"

func TestNormalizePathsFlattensNewlines(t *testing.T) {
	got := NormalizePaths("<path d=\"M0 0\nL1 1\"/>")
	if got != `<path d="M0 0 L1 1"/>` {
		t.Fatalf("unexpected path: %q", got)
	}
}

func TestNormalizePathsAllLineBreakStyles(t *testing.T) {
	got := NormalizePaths("<path d=\"M0 0\r\nL1 1\rL2 2\nZ\"/>")
	if got != `<path d="M0 0 L1 1 L2 2 Z"/>` {
		t.Fatalf("unexpected path: %q", got)
	}
}

func TestNormalizePathsLeavesOtherMarkup(t *testing.T) {
	in := "<g>\n<path d=\"M0\n0\"/>\n<polygon points=\"0,0\n1,1\"/>\n</g>"
	want := "<g>\n<path d=\"M0 0\"/>\n<polygon points=\"0,0\n1,1\"/>\n</g>"
	if got := NormalizePaths(in); got != want {
		t.Fatalf("unexpected markup:\n got %q\nwant %q", got, want)
	}
}
