package core

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderStatusBarFillsWidth(t *testing.T) {
	m := newTestModel()
	m.width = 60
	m.mount()
	out := RenderStatusBar(m)
	if w := ansi.StringWidth(out); w != 60 {
		t.Fatalf("width = %d, want 60", w)
	}
}

func TestRenderStatusBarTruncatesAndFlattens(t *testing.T) {
	m := newTestModel()
	m.width = 20
	m.mount()
	m.SetStatus("first line\nsecond line that is far too long for the bar")
	out := RenderStatusBar(m)
	if strings.Contains(out, "\n") {
		t.Fatalf("status bar leaked a newline: %q", out)
	}
	if w := ansi.StringWidth(out); w != 20 {
		t.Fatalf("width = %d, want 20", w)
	}
}

func TestRenderFooterShowsScopedHints(t *testing.T) {
	m := newTestModel()
	m.mount()
	out := ansi.Strip(RenderFooter(m))
	if !strings.Contains(out, "quit") {
		t.Fatalf("footer missing quit hint: %q", out)
	}
	if !strings.Contains(out, "save file") {
		t.Fatalf("footer missing save hint: %q", out)
	}
	if strings.Contains(out, "tick status") {
		t.Fatalf("dynamic-only hint leaked into empty scope: %q", out)
	}
}

func TestRenderFooterFillsWidth(t *testing.T) {
	m := newTestModel()
	m.width = 44
	out := RenderFooter(m)
	if w := ansi.StringWidth(out); w != 44 {
		t.Fatalf("width = %d, want 44", w)
	}
}

func TestFooterHintsFallbackWhenNoBindings(t *testing.T) {
	m := NewModel(nil, NewKeyRegistry(nil), NewCommandRegistry(nil), "Ready")
	out := ansi.Strip(FooterHints(m))
	if !strings.Contains(out, "No shortcuts") {
		t.Fatalf("expected fallback hint, got %q", out)
	}
}

func TestTrimToWidth(t *testing.T) {
	if got := TrimToWidth("abcdef", 3); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := TrimToWidth("abc", 0); got != "" {
		t.Fatalf("got %q", got)
	}
}
