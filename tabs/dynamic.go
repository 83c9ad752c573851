package tabs

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"footline/core"
	"footline/widgets"
)

// Dynamic keeps the frame's default footer (status bar over key hints) and
// drives the reactive status value from its own keys: t ticks a timestamp,
// e simulates an error, r resets.
type Dynamic struct {
	// Now is swappable for tests; nil means time.Now.
	Now func() time.Time
}

func (d *Dynamic) ID() string    { return "dynamic" }
func (d *Dynamic) Title() string { return "Dynamic" }
func (d *Dynamic) Scope() string { return "tab:dynamic" }

func (d *Dynamic) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case m.Keys().IsAction(km, "tick-status", d.Scope()):
		return core.StatusCmd("Tick " + d.clock().Format("15:04:05"))
	case m.Keys().IsAction(km, "fail-status", d.Scope()):
		return core.ErrorCmd(errors.New("simulated failure"))
	case m.Keys().IsAction(km, "reset-status", d.Scope()):
		return core.StatusCmd("Ready")
	}
	return nil
}

func (d *Dynamic) Build(m *core.Model) widgets.Widget {
	return widgets.Box{
		Title: "Dynamic footer",
		Content: "The status bar mirrors a reactive value through the\n" +
			"label binder. Press t to tick a timestamp into it, e to\n" +
			"push an error, r to reset to Ready.",
	}
}

func (d *Dynamic) clock() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
