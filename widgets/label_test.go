package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestLabelPadsToWidth(t *testing.T) {
	l := &Label{Text: "Ready"}
	out := l.Render(12, 1)
	if w := ansi.StringWidth(out); w != 12 {
		t.Fatalf("width = %d, want 12", w)
	}
	if !strings.HasPrefix(ansi.Strip(out), "Ready") {
		t.Fatalf("left-aligned label should start with text: %q", out)
	}
}

func TestLabelRightAlignment(t *testing.T) {
	l := &Label{Text: "Ready", Right: true}
	out := ansi.Strip(l.Render(12, 1))
	if !strings.HasSuffix(out, "Ready") {
		t.Fatalf("right-aligned label should end with text: %q", out)
	}
}

func TestLabelTruncatesWithEllipsis(t *testing.T) {
	l := &Label{Text: "Application loaded successfully"}
	out := ansi.Strip(l.Render(10, 1))
	if w := ansi.StringWidth(out); w != 10 {
		t.Fatalf("width = %d, want 10", w)
	}
	if !strings.HasSuffix(out, "…") {
		t.Fatalf("expected ellipsis cut: %q", out)
	}
}

func TestLabelFlattensNewlines(t *testing.T) {
	l := &Label{Text: "a\nb"}
	out := ansi.Strip(l.Render(5, 1))
	if strings.Contains(out, "\n") {
		t.Fatalf("label leaked a newline: %q", out)
	}
	if !strings.HasPrefix(out, "a b") {
		t.Fatalf("newline should become a space: %q", out)
	}
}

func TestRegistryLookupBeforeAttachIsNil(t *testing.T) {
	r := NewRegistry()
	if r.Lookup("footer-status") != nil {
		t.Fatal("lookup before attach should be nil")
	}
}

func TestRegistryAttachAndDetach(t *testing.T) {
	r := NewRegistry()
	l := &Label{ID: "footer-status", Text: "Ready"}
	id := r.Attach(l)
	if id != "footer-status" {
		t.Fatalf("id = %q", id)
	}
	if got := r.Lookup(id); got != l {
		t.Fatal("lookup should return the attached label")
	}
	r.Detach(id)
	if r.Lookup(id) != nil {
		t.Fatal("lookup after detach should be nil")
	}
}

func TestRegistryGeneratesIDs(t *testing.T) {
	r := NewRegistry()
	a := r.Attach(&Label{Text: "a"})
	b := r.Attach(&Label{Text: "b"})
	if a == "" || b == "" || a == b {
		t.Fatalf("expected distinct generated IDs, got %q and %q", a, b)
	}
	if r.Len() != 2 {
		t.Fatalf("len = %d, want 2", r.Len())
	}
}
