package core

import tea "github.com/charmbracelet/bubbletea"

// Command is an app action reachable from a key binding whose action name
// matches the command ID.
type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandRegistry struct {
	commands map[string]Command
	order    []string
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	if _, exists := r.commands[c.ID]; !exists {
		r.order = append(r.order, c.ID)
	}
	r.commands[c.ID] = c
}

// IDs returns command IDs in registration order.
func (r *CommandRegistry) IDs() []string {
	return append([]string(nil), r.order...)
}

// MatchKey resolves a key press to a runnable command in scope.
func (r *CommandRegistry) MatchKey(keys *KeyRegistry, msg tea.KeyMsg, scope string) (string, bool) {
	action, ok := keys.ActionFor(msg, scope)
	if !ok {
		return "", false
	}
	c, ok := r.commands[action]
	if !ok || !scopeMatch(scope, c.Scopes) {
		return "", false
	}
	return c.ID, true
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		disabled, reason := c.Disabled(m)
		if disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}
