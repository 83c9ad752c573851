package tabs

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"footline/core"
	"footline/widgets"
)

// Enhanced is the taller variant: a height-3 footer region with a static
// status section capped at a quarter of the width. Its label is owned by
// the tab, not the registry, so reactive updates leave it alone.
type Enhanced struct {
	label *widgets.Label
}

// NewEnhanced builds the variant with its static status text. An empty
// status falls back to "Ready".
func NewEnhanced(status string) *Enhanced {
	if status == "" {
		status = "Ready"
	}
	return &Enhanced{label: &widgets.Label{Text: status, Right: true}}
}

func (e *Enhanced) ID() string    { return "enhanced" }
func (e *Enhanced) Title() string { return "Enhanced" }
func (e *Enhanced) Scope() string { return "tab:enhanced" }

func (e *Enhanced) Update(m *core.Model, msg tea.Msg) tea.Cmd { return nil }

func (e *Enhanced) Build(m *core.Model) widgets.Widget {
	return widgets.Box{
		Title: "Enhanced footer",
		Content: "A three-row footer region with a static status section\n" +
			"capped at 25% of the width. This label is not bound to the\n" +
			"reactive value; ctrl+s changes the other variants only.",
	}
}

func (e *Enhanced) ComposeFooter(m *core.Model, width int) string {
	row := widgets.HStack{
		Widgets: []widgets.Widget{
			&widgets.Label{Text: core.FooterHints(*m)},
			e.label,
		},
		Ratios: []float64{3, 1},
		Gap:    1,
	}
	blank := strings.Repeat(" ", max(0, width))
	return blank + "\n" + row.Render(width, 1) + "\n" + blank
}
