package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"footline/widgets"
)

type routerTab struct{ hits int }

func (t *routerTab) ID() string                    { return "r" }
func (t *routerTab) Title() string                 { return "Router" }
func (t *routerTab) Scope() string                 { return "tab:r" }
func (t *routerTab) Build(m *Model) widgets.Widget { return widgets.Box{Title: "t", Content: "x"} }
func (t *routerTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		t.hits++
	}
	return nil
}

type fakeScreen struct{ hits int }

func (s *fakeScreen) Title() string        { return "Screen" }
func (s *fakeScreen) Scope() string        { return "screen:help" }
func (s *fakeScreen) View(int, int) string { return "screen" }
func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		s.hits++
		if km.String() == "esc" {
			return s, nil, true
		}
	}
	return s, nil, false
}

func routedModel(tab Tab, cmds []Command) Model {
	return NewModel([]Tab{tab}, NewKeyRegistry(DefaultKeyBindings()), NewCommandRegistry(cmds), "Ready")
}

func drain(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return m
		}
		if _, quit := msg.(tea.QuitMsg); quit {
			return m
		}
		m, cmd = m.Update(msg)
	}
	return m
}

func TestWindowSizeMountsOnce(t *testing.T) {
	m := routedModel(&routerTab{}, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	nm := next.(Model)
	if !nm.Mounted() {
		t.Fatal("model should mount on first size msg")
	}
	if nm.Elements().Len() != 1 {
		t.Fatalf("expected 1 element, got %d", nm.Elements().Len())
	}
	next, _ = nm.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	nm = next.(Model)
	if nm.Elements().Len() != 1 {
		t.Fatalf("resize must not re-attach, got %d elements", nm.Elements().Len())
	}
}

func TestMountStatusScenario(t *testing.T) {
	m := routedModel(&routerTab{}, nil)
	m.MountStatus = "Application loaded successfully"
	if got := m.Binder().DisplayText(); got != "" {
		t.Fatalf("pre-mount display = %q, want empty", got)
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	nm := next.(Model)
	if got := nm.Binder().DisplayText(); got != "Application loaded successfully" {
		t.Fatalf("display = %q", got)
	}
	out := ansi.Strip(nm.View())
	if !strings.Contains(out, "Application loaded successfully") {
		t.Fatal("rendered view should contain the mount status")
	}
}

func TestStatusMsgRoutesToBinder(t *testing.T) {
	m := routedModel(&routerTab{}, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	next, _ = next.(Model).Update(StatusMsg{Text: "from message"})
	nm := next.(Model)
	if got := nm.Binder().DisplayText(); got != "from message" {
		t.Fatalf("display = %q", got)
	}
	next, _ = nm.Update(StatusMsg{Text: "bad", IsErr: true})
	nm = next.(Model)
	if !nm.StatusErr() {
		t.Fatal("IsErr should set the error flag")
	}
}

func TestKeyRunsMatchingCommand(t *testing.T) {
	save := Command{
		ID:   "save",
		Name: "Save",
		Execute: func(m *Model) tea.Cmd {
			return StatusCmd("File saved")
		},
	}
	m := routedModel(&routerTab{}, []Command{save})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	nm := next.(Model)
	next, cmd := nm.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	final := drain(t, next, cmd).(Model)
	if got := final.Binder().DisplayText(); got != "File saved" {
		t.Fatalf("display = %q", got)
	}
}

func TestScreenStackSwallowsKeysAndPopsOnEsc(t *testing.T) {
	tab := &routerTab{}
	scr := &fakeScreen{}
	m := routedModel(tab, nil)
	m.PushScreen(scr)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	nm := next.(Model)
	if tab.hits != 0 {
		t.Fatal("tab should not see keys while a screen is open")
	}
	if nm.ActiveScope() != "screen:help" {
		t.Fatalf("scope = %q", nm.ActiveScope())
	}
	next, _ = nm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	nm = next.(Model)
	if nm.ActiveScope() != "tab:r" {
		t.Fatalf("scope after esc = %q, want tab:r", nm.ActiveScope())
	}
	if scr.hits != 2 {
		t.Fatalf("screen hits = %d, want 2", scr.hits)
	}
}

func TestSwitchTabKeys(t *testing.T) {
	a, b := &routerTab{}, &routerTab{}
	m := NewModel([]Tab{a, b}, NewKeyRegistry(DefaultKeyBindings()), NewCommandRegistry(nil), "Ready")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	nm := next.(Model)
	if nm.activeTab != 1 {
		t.Fatalf("activeTab = %d, want 1", nm.activeTab)
	}
	next, _ = nm.Update(TabSwitchMsg{Index: 0})
	nm = next.(Model)
	if nm.activeTab != 0 {
		t.Fatalf("activeTab = %d, want 0", nm.activeTab)
	}
}

func TestQuitTearsDown(t *testing.T) {
	m := routedModel(&routerTab{}, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	nm := next.(Model)
	next, cmd := nm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	nm = next.(Model)
	if cmd == nil {
		t.Fatal("quit should produce tea.Quit")
	}
	if nm.Binder().Mounted() {
		t.Fatal("teardown should detach the label")
	}
	if !strings.Contains(nm.View(), "Goodbye") {
		t.Fatal("quitting view should say goodbye")
	}
}
