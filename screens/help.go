// Package screens contains modal overlays pushed onto the core screen
// stack.
package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"footline/core"
)

var (
	helpKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

// HelpScreen lists the bindings that were visible in the scope it was
// opened from.
type HelpScreen struct {
	forScope string
	bindings []core.KeyBinding
}

func NewHelpScreen(keys *core.KeyRegistry, forScope string) *HelpScreen {
	return &HelpScreen{
		forScope: forScope,
		bindings: keys.BindingsForScope(forScope),
	}
}

func (s *HelpScreen) Title() string { return "Help" }
func (s *HelpScreen) Scope() string { return "screen:help" }

func (s *HelpScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc", "q", "f1", "?":
			return s, nil, true
		}
	}
	return s, nil, false
}

func (s *HelpScreen) View(width, height int) string {
	rows := make([]string, 0, len(s.bindings)+2)
	rows = append(rows, helpKeyStyle.Render("Key bindings")+helpDescStyle.Render(" ("+s.forScope+")"))
	rows = append(rows, "")
	keyCol := 0
	for _, b := range s.bindings {
		if w := len(strings.Join(b.Keys, "/")); w > keyCol {
			keyCol = w
		}
	}
	for _, b := range s.bindings {
		if len(b.Keys) == 0 {
			continue
		}
		keys := strings.Join(b.Keys, "/")
		pad := strings.Repeat(" ", keyCol-len(keys)+2)
		rows = append(rows, helpKeyStyle.Render(keys)+pad+helpDescStyle.Render(b.Description))
	}
	if height > 0 && len(rows) > height {
		rows = rows[:height]
	}
	for i := range rows {
		rows[i] = core.TrimToWidth(rows[i], width)
	}
	return strings.Join(rows, "\n")
}
