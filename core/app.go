package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"footline/reactive"
	"footline/widgets"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

// FooterComposer lets a tab take over the footer region. Tabs without it
// get the default status bar + key hint stack.
type FooterComposer interface {
	ComposeFooter(m *Model, width int) string
}

type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

type Model struct {
	width     int
	height    int
	mounted   bool
	tabs      []Tab
	activeTab int
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	elements  *widgets.Registry
	status    *reactive.Value[string]
	binder    *StatusBinder
	statusErr bool
	quitting  bool

	// MountStatus, when set, is applied right after the status label is
	// composed (first WindowSizeMsg).
	MountStatus string

	// OpenHelpScreen builds the help overlay; wired by the caller to keep
	// this package free of screen implementations.
	OpenHelpScreen func(m *Model, scope string) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry, defaultStatus string) Model {
	elements := widgets.NewRegistry()
	status := reactive.New(defaultStatus)
	binder := NewStatusBinder(elements, StatusLabelID)
	binder.Bind(status)
	return Model{
		tabs:      tabs,
		keys:      keys,
		commands:  commands,
		elements:  elements,
		status:    status,
		binder:    binder,
		activeTab: 0,
		width:     100,
		height:    32,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

// mount composes the status label and attaches it to the registry. From
// here on the binder is live; it first paints whatever the value holds so
// pre-mount sets are not lost, then applies MountStatus if configured.
func (m *Model) mount() {
	if m.mounted {
		return
	}
	m.elements.Attach(&widgets.Label{ID: StatusLabelID, Text: m.status.Get(), Right: true})
	if m.MountStatus != "" {
		m.status.Set(m.MountStatus)
	}
	m.mounted = true
}

// Teardown detaches the status label and drops the binder subscription.
func (m *Model) Teardown() {
	m.binder.Unbind()
	m.elements.Detach(StatusLabelID)
	m.mounted = false
}

func (m *Model) SetStatus(msg string) {
	m.statusErr = false
	m.status.Set(msg)
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.statusErr = false
		m.status.Set("")
		return
	}
	m.statusErr = true
	m.status.Set(err.Error())
}

func (m Model) Status() *reactive.Value[string] { return m.status }
func (m Model) Binder() *StatusBinder           { return m.binder }
func (m Model) Elements() *widgets.Registry     { return m.elements }
func (m Model) Keys() *KeyRegistry              { return m.keys }
func (m Model) CommandRegistry() *CommandRegistry {
	return m.commands
}
func (m Model) Mounted() bool   { return m.mounted }
func (m Model) StatusErr() bool { return m.statusErr }
func (m Model) Width() int      { return m.width }
func (m Model) Height() int     { return m.height }

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	m.activeTab = index
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}
