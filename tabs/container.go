package tabs

import (
	tea "github.com/charmbracelet/bubbletea"

	"footline/core"
	"footline/widgets"
)

// Container renders the footer as a single-line horizontal grid: key hints
// in the wide column, the shared status label right-aligned in the narrow
// one.
type Container struct {
	// StatusRatio is the fraction of the footer given to the status
	// column. Zero or out-of-range means a quarter.
	StatusRatio float64
}

func (c Container) ID() string    { return "container" }
func (c Container) Title() string { return "Container" }
func (c Container) Scope() string { return "tab:container" }

func (c Container) Update(m *core.Model, msg tea.Msg) tea.Cmd { return nil }

func (c Container) Build(m *core.Model) widgets.Widget {
	return widgets.Box{
		Title: "Container footer",
		Content: "Key hints and the status label share one footer row,\n" +
			"split 2fr/1fr. Watch the right column: ctrl+s and ctrl+o\n" +
			"update the status through the shared label.",
	}
}

func (c Container) ComposeFooter(m *core.Model, width int) string {
	ratio := c.StatusRatio
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.25
	}
	row := widgets.HStack{
		Widgets: []widgets.Widget{
			&widgets.Label{Text: core.FooterHints(*m)},
			statusWidget(m),
		},
		Ratios: []float64{1 - ratio, ratio},
	}
	return row.Render(width, 1)
}

// statusWidget returns the mounted status label, or a stand-in carrying
// the current value while the label does not exist yet.
func statusWidget(m *core.Model) widgets.Widget {
	if label := m.Elements().Lookup(core.StatusLabelID); label != nil {
		return label
	}
	return &widgets.Label{Text: m.Status().Get(), Right: true}
}
