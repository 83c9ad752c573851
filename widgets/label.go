package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Label is a single-line text element. Overflowing text is cut with an
// ellipsis; short text is padded so the label always fills its width.
type Label struct {
	ID    string
	Text  string
	Style lipgloss.Style
	Right bool
}

// SetText replaces the displayed text. Callers holding a registry pointer
// use this to push updates without re-composing the tree.
func (l *Label) SetText(text string) {
	l.Text = text
}

func (l *Label) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.ReplaceAll(l.Text, "\n", " ")
	line = ansi.Truncate(line, width, "…")
	if w := ansi.StringWidth(line); w < width {
		pad := strings.Repeat(" ", width-w)
		if l.Right {
			line = pad + line
		} else {
			line += pad
		}
	}
	return l.Style.MaxWidth(width).Render(line)
}
